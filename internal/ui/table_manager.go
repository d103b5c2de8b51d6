// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of smartlisting

package ui

import (
	"github.com/smartlisting/smartlisting/internal/model1"
	"github.com/smartlisting/smartlisting/internal/render"
)

// Accessors are the caller closures a TableManager pulls data from on every
// render pass. NumberOfSections, HeaderViewModel and FooterViewModel are
// optional: without a section count the list is a single flat section,
// without a header accessor no section has a header.
type Accessors struct {
	NumberOfSections func() int
	NumberOfRows     func(section int) int
	CellViewModel    func(at model1.IndexPath) model1.ViewModel
	HeaderViewModel  func(section int) model1.ViewModel
	FooterViewModel  func(section int) model1.ViewModel
}

// TableManager binds a host list to caller data through renderer registries.
// It keeps no state between passes besides its accessors and registries.
type TableManager struct {
	host          model1.Host
	accessors     Accessors
	cells         *render.CellRegistry
	headerFooters *render.HeaderFooterRegistry
}

var _ model1.DataSource = (*TableManager)(nil)

// NewTableManager returns a manager and installs it as the host data source.
func NewTableManager(host model1.Host, acc Accessors) *TableManager {
	m := TableManager{
		host:          host,
		accessors:     acc,
		cells:         render.NewCellRegistry(),
		headerFooters: render.NewHeaderFooterRegistry(),
	}
	host.SetDataSource(&m)

	return &m
}

// Host returns the managed list.
func (m *TableManager) Host() model1.Host {
	return m.host
}

// Cells returns the row registry.
func (m *TableManager) Cells() *render.CellRegistry {
	return m.cells
}

// HeaderFooters returns the header/footer registry.
func (m *TableManager) HeaderFooters() *render.HeaderFooterRegistry {
	return m.headerFooters
}

// RegisterCell adds a row handler. A handler for an already registered
// view-model kind replaces the previous one.
func (m *TableManager) RegisterCell(h *render.CellHandler) {
	m.cells.Register(m.host, h)
}

// RegisterHeaderFooter adds a header/footer handler. A handler for an already
// registered view-model kind replaces the previous one.
func (m *TableManager) RegisterHeaderFooter(h *render.HeaderFooterHandler) {
	m.headerFooters.Register(m.host, h)
}

// NumberOfSections returns the section count, 1 without an accessor.
func (m *TableManager) NumberOfSections() int {
	if m.accessors.NumberOfSections == nil {
		return 1
	}
	return m.accessors.NumberOfSections()
}

// NumberOfRows returns the row count of a section.
func (m *TableManager) NumberOfRows(section int) int {
	if m.accessors.NumberOfRows == nil {
		return 0
	}
	return m.accessors.NumberOfRows(section)
}

// CellViewModel returns the view model at a position.
func (m *TableManager) CellViewModel(at model1.IndexPath) model1.ViewModel {
	if m.accessors.CellViewModel == nil {
		return nil
	}
	return m.accessors.CellViewModel(at)
}

// HeaderViewModel returns the header view model of a section, if any.
func (m *TableManager) HeaderViewModel(section int) (model1.ViewModel, bool) {
	return optional(m.accessors.HeaderViewModel, section)
}

// FooterViewModel returns the footer view model of a section, if any.
func (m *TableManager) FooterViewModel(section int) (model1.ViewModel, bool) {
	return optional(m.accessors.FooterViewModel, section)
}

// CellForRow renders the row at a position.
func (m *TableManager) CellForRow(at model1.IndexPath) model1.View {
	return m.cells.Render(m.host, at, m.CellViewModel(at))
}

// HeaderHeight returns 0 when the section has no header.
func (m *TableManager) HeaderHeight(section int) int {
	if _, ok := m.HeaderViewModel(section); !ok {
		return 0
	}
	return model1.AutomaticDimension
}

// ViewForHeader renders the section header or returns nil.
func (m *TableManager) ViewForHeader(section int) model1.View {
	vm, ok := m.HeaderViewModel(section)
	if !ok {
		return nil
	}
	return m.headerFooters.Render(m.host, section, vm)
}

// FooterHeight returns 0 when the section has no footer.
func (m *TableManager) FooterHeight(section int) int {
	if _, ok := m.FooterViewModel(section); !ok {
		return 0
	}
	return model1.AutomaticDimension
}

// ViewForFooter renders the section footer or returns nil.
func (m *TableManager) ViewForFooter(section int) model1.View {
	vm, ok := m.FooterViewModel(section)
	if !ok {
		return nil
	}
	return m.headerFooters.Render(m.host, section, vm)
}

// DidSelectRow fires the selection callback of the row kind, if any.
func (m *TableManager) DidSelectRow(at model1.IndexPath) {
	m.cells.Select(m.host, at, m.CellViewModel(at))
}

// ReloadData asks the host to pull everything again.
func (m *TableManager) ReloadData() {
	m.host.ReloadData()
}

func optional(fn func(int) model1.ViewModel, section int) (model1.ViewModel, bool) {
	if fn == nil {
		return nil, false
	}
	vm := fn(section)
	return vm, vm != nil
}

// RegisterCell registers C views for VM view models with default drawing and
// no selection.
//
// Usage: RegisterCell[model1.Loadable[dao.SkillItem]](m, render.NewSkill).
func RegisterCell[VM model1.ViewModel, C render.CellRenderer[VM]](m *TableManager, newCell func() C) {
	m.RegisterCell(render.NewCellHandler[VM](newCell, nil, nil))
}

// RegisterSelectableCell registers C views for VM view models and reacts to
// their selection.
func RegisterSelectableCell[VM model1.ViewModel, C render.CellRenderer[VM]](
	m *TableManager,
	newCell func() C,
	didSelect render.SelectFunc[VM],
) {
	m.RegisterCell(render.NewCellHandler[VM](newCell, nil, didSelect))
}

// RegisterHeaderFooter registers V views for VM header/footer view models.
func RegisterHeaderFooter[VM model1.ViewModel, V render.HeaderFooterRenderer[VM]](m *TableManager, newView func() V) {
	m.RegisterHeaderFooter(render.NewHeaderFooterHandler[VM](newView, nil))
}
