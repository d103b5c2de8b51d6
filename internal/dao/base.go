package dao

import (
	"context"
	"embed"
	"fmt"
	"log/slog"
	"sync"
)

//go:embed assets
var assets embed.FS

// Resource is the base struct that all screen DAOs embed.
// It provides factory access, screen identification and document loading.
type Resource struct {
	Factory
	sid *ScreenID
	mx  sync.RWMutex
}

// Init initializes the Resource with factory and screen ID.
func (r *Resource) Init(f Factory, sid *ScreenID) {
	r.mx.Lock()
	defer r.mx.Unlock()
	r.Factory = f
	r.sid = sid
}

// ScreenID returns the screen identifier.
func (r *Resource) ScreenID() *ScreenID {
	r.mx.RLock()
	defer r.mx.RUnlock()
	return r.sid
}

// getFactory returns the factory in a thread-safe manner.
func (r *Resource) getFactory() Factory {
	r.mx.RLock()
	defer r.mx.RUnlock()
	return r.Factory
}

// document returns the raw screen document. With no configured source the
// embedded default named fallback is used.
func (r *Resource) document(ctx context.Context, fallback string) ([]byte, error) {
	f, sid := r.getFactory(), r.ScreenID()
	if f == nil || sid == nil {
		return nil, fmt.Errorf("%w: accessor not initialized", ErrNoSource)
	}

	location := f.Source(sid)
	if location == "" {
		slog.Debug("Using embedded document", "screen", sid, "asset", fallback)
		return DefaultDocument(fallback)
	}

	bb, err := f.Fetcher().Fetch(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s data from %q: %w", sid, location, err)
	}
	return bb, nil
}

// DefaultDocument returns an embedded demo document.
func DefaultDocument(name string) ([]byte, error) {
	bb, err := assets.ReadFile("assets/" + name)
	if err != nil {
		return nil, fmt.Errorf("%w: no embedded document %q", ErrNoSource, name)
	}
	return bb, nil
}
