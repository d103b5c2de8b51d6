// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of smartlisting

package render

import (
	"log/slog"

	"github.com/smartlisting/smartlisting/internal/model1"
)

type handler interface {
	*CellHandler | *HeaderFooterHandler

	ViewModelIdentifier() string
	register(model1.Host)
}

// registry maps view-model identifiers to handlers. Registering an identifier
// twice keeps the last handler.
type registry[H handler] struct {
	handlers map[string]H
}

func newRegistry[H handler]() registry[H] {
	return registry[H]{handlers: make(map[string]H)}
}

func (r registry[H]) register(host model1.Host, h H) {
	h.register(host)
	r.handlers[h.ViewModelIdentifier()] = h
}

func (r registry[H]) lookup(vm model1.ViewModel) (H, bool) {
	if vm == nil {
		return nil, false
	}
	h, ok := r.handlers[vm.Identifier()]
	return h, ok
}

func (r registry[H]) identifiers() []string {
	ids := make([]string, 0, len(r.handlers))
	for id := range r.handlers {
		ids = append(ids, id)
	}
	model1.SortNatural(ids)
	return ids
}

// CellRegistry tracks row handlers.
type CellRegistry struct {
	registry[*CellHandler]
}

// NewCellRegistry returns an empty row registry.
func NewCellRegistry() *CellRegistry {
	return &CellRegistry{registry: newRegistry[*CellHandler]()}
}

// Register records a handler and prepares its view pool on the host.
func (r *CellRegistry) Register(host model1.Host, h *CellHandler) {
	r.register(host, h)
}

// Lookup returns the handler registered for the view model kind.
func (r *CellRegistry) Lookup(vm model1.ViewModel) (*CellHandler, bool) {
	return r.lookup(vm)
}

// Identifiers returns the registered view-model identifiers.
func (r *CellRegistry) Identifiers() []string {
	return r.identifiers()
}

// Render draws a view model. Unregistered kinds render a blank row.
func (r *CellRegistry) Render(host model1.Host, at model1.IndexPath, vm model1.ViewModel) model1.View {
	h, ok := r.lookup(vm)
	if !ok {
		slog.Debug("No cell handler", "at", at, "kind", kindOf(vm))
		return NewBlank()
	}
	return h.configure(host, at, vm)
}

// Select fires the selection callback of the view model kind, if any.
func (r *CellRegistry) Select(host model1.Host, at model1.IndexPath, vm model1.ViewModel) {
	h, ok := r.lookup(vm)
	if !ok || h.didSelect == nil {
		return
	}
	h.didSelect(host, at, vm)
}

// HeaderFooterRegistry tracks header/footer handlers.
type HeaderFooterRegistry struct {
	registry[*HeaderFooterHandler]
}

// NewHeaderFooterRegistry returns an empty header/footer registry.
func NewHeaderFooterRegistry() *HeaderFooterRegistry {
	return &HeaderFooterRegistry{registry: newRegistry[*HeaderFooterHandler]()}
}

// Register records a handler and prepares its view pool on the host.
func (r *HeaderFooterRegistry) Register(host model1.Host, h *HeaderFooterHandler) {
	r.register(host, h)
}

// Lookup returns the handler registered for the view model kind.
func (r *HeaderFooterRegistry) Lookup(vm model1.ViewModel) (*HeaderFooterHandler, bool) {
	return r.lookup(vm)
}

// Identifiers returns the registered view-model identifiers.
func (r *HeaderFooterRegistry) Identifiers() []string {
	return r.identifiers()
}

// Render draws a view model. Unregistered kinds render nothing.
func (r *HeaderFooterRegistry) Render(host model1.Host, section int, vm model1.ViewModel) model1.View {
	h, ok := r.lookup(vm)
	if !ok {
		slog.Debug("No header/footer handler", "section", section, "kind", kindOf(vm))
		return nil
	}
	return h.configure(host, section, vm)
}

func kindOf(vm model1.ViewModel) string {
	if vm == nil {
		return "<nil>"
	}
	return vm.Identifier()
}
