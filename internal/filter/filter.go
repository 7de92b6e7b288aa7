package filter

import (
	"sync"

	"innacri/internal/domain"
)

// State gates which alerts are visible: a set of crime-type ids and a set
// of severity levels. An empty set matches everything, it never means
// "matches nothing". Filter state is ephemeral, it is never persisted.
type State struct {
	mu         sync.RWMutex
	types      map[string]struct{}
	severities map[int]struct{}
}

func New() *State {
	return &State{
		types:      make(map[string]struct{}),
		severities: make(map[int]struct{}),
	}
}

// NewWithSelection builds a one-shot filter from explicit selections, the
// shape a request's query parameters arrive in.
func NewWithSelection(types []string, severities []int) *State {
	s := New()
	for _, t := range types {
		s.types[t] = struct{}{}
	}
	for _, sev := range severities {
		s.severities[sev] = struct{}{}
	}
	return s
}

func (s *State) SetType(id string, active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if active {
		s.types[id] = struct{}{}
	} else {
		delete(s.types, id)
	}
}

func (s *State) SetSeverity(id int, active bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if active {
		s.severities[id] = struct{}{}
	} else {
		delete(s.severities, id)
	}
}

func (s *State) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.types = make(map[string]struct{})
	s.severities = make(map[int]struct{})
}

// Matches reports whether the alert passes both selector sets and is
// approved. Non-approved alerts never match, regardless of filter state.
func (s *State) Matches(a domain.Alert) bool {
	if a.Status != domain.AlertApproved {
		return false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.types) > 0 {
		if _, ok := s.types[a.Type]; !ok {
			return false
		}
	}
	if len(s.severities) > 0 {
		if _, ok := s.severities[a.Severity]; !ok {
			return false
		}
	}
	return true
}
