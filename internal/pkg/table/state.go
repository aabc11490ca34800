package table

import (
	"maps"
	"strings"
	"sync"
)

// State remembers a screen's current query between requests.
//
// Changing the search text or any attribute filter sends the screen back to
// page 1. Changing only the page size keeps the requested page; Paginate clamps
// it if the page count shrank.
type State struct {
	mu              sync.Mutex
	current         Query
	defaultPageSize int
}

func NewState(defaultPageSize int) *State {
	if defaultPageSize <= 0 {
		defaultPageSize = DefaultPageSize
	}
	return &State{
		current:         Query{Page: 1, PageSize: defaultPageSize, Filters: map[string]string{}},
		defaultPageSize: defaultPageSize,
	}
}

// Resolve merges the incoming query into the stored one and returns the query to run.
func (s *State) Resolve(next Query) Query {
	s.mu.Lock()
	defer s.mu.Unlock()

	if next.PageSize <= 0 {
		next.PageSize = s.current.PageSize
	}
	if next.PageSize <= 0 {
		next.PageSize = s.defaultPageSize
	}
	if next.Page <= 0 {
		next.Page = s.current.Page
	}
	next.Filters = activeFilters(next.Filters)

	if filtersChanged(s.current, next) {
		next.Page = 1
	}

	s.current = next
	s.current.Filters = maps.Clone(next.Filters)
	return next
}

// Remember stores the page actually served after clamping.
func (s *State) Remember(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.Page = page
}

// Current returns a copy of the stored query.
func (s *State) Current() Query {
	s.mu.Lock()
	defer s.mu.Unlock()
	q := s.current
	q.Filters = maps.Clone(s.current.Filters)
	return q
}

// Reset clears every filter and goes back to the first page.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = Query{Page: 1, PageSize: s.defaultPageSize, Filters: map[string]string{}}
}

func filtersChanged(prev, next Query) bool {
	if !strings.EqualFold(strings.TrimSpace(prev.Search), strings.TrimSpace(next.Search)) {
		return true
	}
	return !maps.EqualFunc(activeFilters(prev.Filters), next.Filters, strings.EqualFold)
}
