// Package session holds the shared application state: which semester is
// currently active, and a revision counter that observers use to recompute
// derived data (the materialized schedule) whenever semesters, courses or
// events change.
package session

import "sync"

// AllSemestersID is the sentinel selection meaning "no single active
// semester"; schedule materialization is skipped for it.
const AllSemestersID = "_ALL_SEMESTERS_"

// Session is an explicit application-state object passed to the components
// that need the active semester. It replaces the framework-managed
// singleton of the mobile client.
type Session struct {
	mu         sync.RWMutex
	selectedID *string
	revision   uint64
	listeners  []func()
}

// New creates an empty session: no explicit selection, revision zero.
func New() *Session {
	return &Session{}
}

// SelectSemester records the active semester selection. A nil id resets to
// the default ("first available") selection; AllSemestersID disables
// single-semester materialization. Selection changes notify observers.
func (s *Session) SelectSemester(id *string) {
	s.mu.Lock()
	s.selectedID = id
	s.revision++
	listeners := append([]func(){}, s.listeners...)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

// SelectedSemesterID returns the current selection, nil when defaulted.
func (s *Session) SelectedSemesterID() *string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedID
}

// Invalidate bumps the revision and notifies observers. Services call it
// after any mutation of semesters, courses or user events so that derived
// data is recomputed.
func (s *Session) Invalidate() {
	s.mu.Lock()
	s.revision++
	listeners := append([]func(){}, s.listeners...)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

// Revision returns the current data revision. Observers may memoize derived
// results keyed by this value.
func (s *Session) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}

// OnChange registers fn to run after every selection change or
// invalidation. Callbacks run synchronously on the mutating goroutine and
// must not call back into the session.
func (s *Session) OnChange(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}
