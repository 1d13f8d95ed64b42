package store

import (
	"github.com/tallercr/workshop-api/internal/domain"
)

// Filters returns the three classification catalogs
func (s *Store) Filters() domain.FilterCatalogs {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyFilters(s.filters)
}

// SetFilters replaces the catalogs wholesale
func (s *Store) SetFilters(fc domain.FilterCatalogs) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = copyFilters(fc)
	if s.filters.Materials == nil {
		s.filters.Materials = []domain.FilterItem{}
	}
	if s.filters.Statuses == nil {
		s.filters.Statuses = []domain.FilterItem{}
	}
	if s.filters.Companies == nil {
		s.filters.Companies = []domain.FilterItem{}
	}
}

// EnsureCompany appends the company to the companies catalog when no entry
// with the same name exists yet. Reports whether an entry was added.
func (s *Store) EnsureCompany(name string) bool {
	if name == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.filters.Companies {
		if c.Name == name {
			return false
		}
	}
	s.filters.Companies = append(s.filters.Companies, domain.FilterItem{
		ID:   s.ids.next(s.now()),
		Name: name,
	})
	return true
}
