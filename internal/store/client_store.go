package store

import (
	"github.com/tallercr/workshop-api/internal/domain"
)

func cloneClient(c domain.Client) domain.Client {
	out := c
	out.AuthorizedPersons = append([]domain.AuthorizedPerson{}, c.AuthorizedPersons...)
	return out
}

// CreateClient assigns a fresh id and timestamps and stores the client
func (s *Store) CreateClient(c domain.Client) domain.Client {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	c.ID = s.ids.next(now)
	c.CreatedAt = now
	c.LastUpdated = now
	if c.AuthorizedPersons == nil {
		c.AuthorizedPersons = []domain.AuthorizedPerson{}
	}
	s.clients = append(s.clients, cloneClient(c))
	return c
}

// GetClient returns the client with the given id
func (s *Store) GetClient(id int64) (domain.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.clients {
		if s.clients[i].ID == id {
			return cloneClient(s.clients[i]), nil
		}
	}
	return domain.Client{}, ErrNotFound
}

// UpdateClient applies mutate to the stored client under the lock and
// refreshes LastUpdated. Returns ErrNotFound when the id is absent.
func (s *Store) UpdateClient(id int64, mutate func(*domain.Client)) (domain.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.clients {
		if s.clients[i].ID == id {
			mutate(&s.clients[i])
			s.clients[i].LastUpdated = s.now()
			return cloneClient(s.clients[i]), nil
		}
	}
	return domain.Client{}, ErrNotFound
}

// DeleteClient removes the client and every job owned by it in one step
func (s *Store) DeleteClient(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.clients {
		if s.clients[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotFound
	}

	s.clients = append(s.clients[:idx], s.clients[idx+1:]...)

	kept := s.jobs[:0]
	for _, j := range s.jobs {
		if j.ClientID != id {
			kept = append(kept, j)
		}
	}
	s.jobs = kept
	return nil
}

// ListClients returns all clients in insertion order
func (s *Store) ListClients() []domain.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Client, 0, len(s.clients))
	for i := range s.clients {
		out = append(out, cloneClient(s.clients[i]))
	}
	return out
}
