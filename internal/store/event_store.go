package store

import (
	"strings"

	"github.com/tallercr/workshop-api/internal/domain"
)

// CreateEvent assigns a fresh id and timestamps and stores the event
func (s *Store) CreateEvent(e domain.Event) domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	e.ID = s.ids.next(now)
	e.CreatedAt = now
	e.LastUpdated = now
	s.events = append(s.events, e)
	return e
}

// GetEvent returns the event with the given id
func (s *Store) GetEvent(id int64) (domain.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.events {
		if s.events[i].ID == id {
			return s.events[i], nil
		}
	}
	return domain.Event{}, ErrNotFound
}

// UpdateEvent applies mutate to the stored event under the lock and
// refreshes LastUpdated. Returns ErrNotFound when the id is absent.
func (s *Store) UpdateEvent(id int64, mutate func(*domain.Event)) (domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.events {
		if s.events[i].ID == id {
			mutate(&s.events[i])
			s.events[i].LastUpdated = s.now()
			return s.events[i], nil
		}
	}
	return domain.Event{}, ErrNotFound
}

// DeleteEvent removes the event with the given id
func (s *Store) DeleteEvent(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.events {
		if s.events[i].ID == id {
			s.events = append(s.events[:i], s.events[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// ListEvents returns all events, optionally restricted to one month given
// as "YYYY-MM".
func (s *Store) ListEvents(month string) []domain.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []domain.Event{}
	for i := range s.events {
		if month != "" && !strings.HasPrefix(s.events[i].Date, month) {
			continue
		}
		out = append(out, s.events[i])
	}
	return out
}
