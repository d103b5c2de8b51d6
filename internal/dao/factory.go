// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of smartlisting

package dao

import (
	"sync"
)

// ScreenFactory implements the Factory interface from configured sources.
type ScreenFactory struct {
	sources map[string]string
	fetcher Fetcher
	mx      sync.RWMutex
}

// NewFactory creates a new ScreenFactory with the given fetcher.
func NewFactory(fetcher Fetcher) *ScreenFactory {
	if fetcher == nil {
		fetcher = NewDocumentFetcher(nil, nil)
	}
	return &ScreenFactory{
		sources: make(map[string]string),
		fetcher: fetcher,
	}
}

// Fetcher returns the document fetcher.
func (f *ScreenFactory) Fetcher() Fetcher {
	return f.fetcher
}

// Source returns the document location of a screen.
func (f *ScreenFactory) Source(sid *ScreenID) string {
	f.mx.RLock()
	defer f.mx.RUnlock()

	return f.sources[sid.String()]
}

// SetSource changes the document location of a screen.
func (f *ScreenFactory) SetSource(sid *ScreenID, location string) {
	f.mx.Lock()
	defer f.mx.Unlock()

	f.sources[sid.String()] = location
}
