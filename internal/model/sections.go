package model

import (
	"sync"

	"github.com/smartlisting/smartlisting/internal/model1"
)

// Sections is the backing store list accessors read from. Sections are
// replaced wholesale, never mutated in place.
type Sections struct {
	sections  []Section
	loading   bool
	listeners []DataListener
	mx        sync.RWMutex
}

// NewSections returns a store holding the given placeholder sections.
func NewSections(skeleton []Section) *Sections {
	return &Sections{
		sections: skeleton,
		loading:  true,
	}
}

// AddListener registers a sections listener.
func (s *Sections) AddListener(l DataListener) {
	s.mx.Lock()
	defer s.mx.Unlock()

	s.listeners = append(s.listeners, l)
}

// RemoveListener unregisters a sections listener.
func (s *Sections) RemoveListener(l DataListener) {
	s.mx.Lock()
	defer s.mx.Unlock()

	victim := -1
	for i, lis := range s.listeners {
		if lis == l {
			victim = i
			break
		}
	}
	if victim == -1 {
		return
	}
	s.listeners = append(s.listeners[:victim], s.listeners[victim+1:]...)
}

// Set replaces all sections and notifies listeners.
func (s *Sections) Set(ss []Section) {
	s.mx.Lock()
	s.sections = ss
	s.loading = false
	s.mx.Unlock()

	for _, l := range s.snapshotListeners() {
		l.SectionsChanged()
	}
}

// Reset puts placeholder sections back and notifies listeners.
func (s *Sections) Reset(skeleton []Section) {
	s.mx.Lock()
	s.sections = skeleton
	s.loading = true
	s.mx.Unlock()

	for _, l := range s.snapshotListeners() {
		l.SectionsChanged()
	}
}

// Fail notifies listeners a load failed. Current sections are kept.
func (s *Sections) Fail(err error) {
	for _, l := range s.snapshotListeners() {
		l.SectionsLoadFailed(err)
	}
}

// IsLoading returns true until real sections are set.
func (s *Sections) IsLoading() bool {
	s.mx.RLock()
	defer s.mx.RUnlock()

	return s.loading
}

// NumberOfSections returns the section count.
func (s *Sections) NumberOfSections() int {
	s.mx.RLock()
	defer s.mx.RUnlock()

	return len(s.sections)
}

// NumberOfItems returns the row count of a section.
func (s *Sections) NumberOfItems(section int) int {
	s.mx.RLock()
	defer s.mx.RUnlock()

	return len(s.sections[section].Items)
}

// Item returns the view model at a position.
func (s *Sections) Item(at model1.IndexPath) model1.ViewModel {
	s.mx.RLock()
	defer s.mx.RUnlock()

	return s.sections[at.Section].Items[at.Row]
}

// Header returns the header view model of a section, or nil.
func (s *Sections) Header(section int) model1.ViewModel {
	s.mx.RLock()
	defer s.mx.RUnlock()

	return s.sections[section].Header
}

// Footer returns the footer view model of a section, or nil.
func (s *Sections) Footer(section int) model1.ViewModel {
	s.mx.RLock()
	defer s.mx.RUnlock()

	return s.sections[section].Footer
}

func (s *Sections) snapshotListeners() []DataListener {
	s.mx.RLock()
	defer s.mx.RUnlock()

	ll := make([]DataListener, len(s.listeners))
	copy(ll, s.listeners)
	return ll
}
