// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of smartlisting

package render

import (
	"fmt"

	"github.com/smartlisting/smartlisting/internal/model1"
)

// CellRenderer represents a row view able to draw view models of kind VM.
type CellRenderer[VM model1.ViewModel] interface {
	model1.View

	// Configure applies a view model to the view.
	Configure(vm VM)
}

// HeaderFooterRenderer represents a header/footer view able to draw view
// models of kind VM.
type HeaderFooterRenderer[VM model1.ViewModel] interface {
	model1.View

	// Configure applies a view model to the view.
	Configure(vm VM)
}

// CellConfigureFunc customizes how a row view draws its view model.
type CellConfigureFunc[C, VM any] func(host model1.Host, at model1.IndexPath, cell C, vm VM)

// SelectFunc reacts to a row selection.
type SelectFunc[VM any] func(host model1.Host, at model1.IndexPath, vm VM)

// HeaderFooterConfigureFunc customizes how a header/footer view draws its view model.
type HeaderFooterConfigureFunc[V, VM any] func(host model1.Host, section int, view V, vm VM)

// CellHandler binds a row renderer kind to a view-model kind.
type CellHandler struct {
	cellIdentifier      string
	viewModelIdentifier string
	newCell             func() model1.View
	configure           func(model1.Host, model1.IndexPath, model1.ViewModel) model1.View
	didSelect           func(model1.Host, model1.IndexPath, model1.ViewModel)
}

// NewCellHandler returns a handler drawing VM view models with C views.
// A nil configure calls C.Configure; a nil didSelect makes selection a no-op.
// VM.Identifier is called on the zero VM, so it must not read fields through
// a nil pointer.
//
// Usage: NewCellHandler[model1.Loadable[dao.Skill]](NewSkillCell, nil, nil).
func NewCellHandler[VM model1.ViewModel, C CellRenderer[VM]](
	newCell func() C,
	configure CellConfigureFunc[C, VM],
	didSelect SelectFunc[VM],
) *CellHandler {
	h := CellHandler{
		cellIdentifier:      newCell().Identifier(),
		viewModelIdentifier: model1.IdentifierOf[VM](),
		newCell:             func() model1.View { return newCell() },
	}

	h.configure = func(host model1.Host, at model1.IndexPath, viewModel model1.ViewModel) model1.View {
		vm := mustViewModel[VM](viewModel)
		cell, ok := host.DequeueCell(h.cellIdentifier, at).(C)
		if !ok {
			panic(fmt.Sprintf("expected cell of type %T", *new(C)))
		}
		if configure != nil {
			configure(host, at, cell, vm)
		} else {
			cell.Configure(vm)
		}
		return cell
	}

	if didSelect != nil {
		h.didSelect = func(host model1.Host, at model1.IndexPath, viewModel model1.ViewModel) {
			didSelect(host, at, mustViewModel[VM](viewModel))
		}
	}

	return &h
}

// CellIdentifier returns the renderer kind identifier.
func (h *CellHandler) CellIdentifier() string {
	return h.cellIdentifier
}

// ViewModelIdentifier returns the view-model kind identifier.
func (h *CellHandler) ViewModelIdentifier() string {
	return h.viewModelIdentifier
}

// Selectable returns true if the handler reacts to selection.
func (h *CellHandler) Selectable() bool {
	return h.didSelect != nil
}

func (h *CellHandler) register(host model1.Host) {
	host.RegisterCell(h.cellIdentifier, h.newCell)
}

// HeaderFooterHandler binds a header/footer renderer kind to a view-model kind.
type HeaderFooterHandler struct {
	viewIdentifier      string
	viewModelIdentifier string
	newView             func() model1.View
	configure           func(model1.Host, int, model1.ViewModel) model1.View
}

// NewHeaderFooterHandler returns a handler drawing VM view models with V views.
// A nil configure calls V.Configure. As with NewCellHandler, VM.Identifier
// must work on the zero VM.
func NewHeaderFooterHandler[VM model1.ViewModel, V HeaderFooterRenderer[VM]](
	newView func() V,
	configure HeaderFooterConfigureFunc[V, VM],
) *HeaderFooterHandler {
	h := HeaderFooterHandler{
		viewIdentifier:      newView().Identifier(),
		viewModelIdentifier: model1.IdentifierOf[VM](),
		newView:             func() model1.View { return newView() },
	}

	h.configure = func(host model1.Host, section int, viewModel model1.ViewModel) model1.View {
		vm := mustViewModel[VM](viewModel)
		view, ok := host.DequeueHeaderFooter(h.viewIdentifier).(V)
		if !ok {
			panic(fmt.Sprintf("expected view of type %T", *new(V)))
		}
		if configure != nil {
			configure(host, section, view, vm)
		} else {
			view.Configure(vm)
		}
		return view
	}

	return &h
}

// ViewIdentifier returns the renderer kind identifier.
func (h *HeaderFooterHandler) ViewIdentifier() string {
	return h.viewIdentifier
}

// ViewModelIdentifier returns the view-model kind identifier.
func (h *HeaderFooterHandler) ViewModelIdentifier() string {
	return h.viewModelIdentifier
}

func (h *HeaderFooterHandler) register(host model1.Host) {
	host.RegisterHeaderFooter(h.viewIdentifier, h.newView)
}

// mustViewModel narrows a view model to its registered kind. A mismatch means
// two kinds share an identifier, which is a programming error.
func mustViewModel[VM model1.ViewModel](viewModel model1.ViewModel) VM {
	vm, ok := viewModel.(VM)
	if !ok {
		panic(fmt.Sprintf("expected view model of type %T, got %T", *new(VM), viewModel))
	}
	return vm
}
