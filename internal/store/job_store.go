package store

import (
	"github.com/tallercr/workshop-api/internal/domain"
)

func cloneJob(j domain.Job) domain.Job {
	out := j
	out.Files = append([]domain.JobFile{}, j.Files...)
	if j.Calculator != nil {
		calc := *j.Calculator
		out.Calculator = &calc
	}
	return out
}

// CreateJob assigns a fresh id and timestamps and stores the job. The
// owning client must exist.
func (s *Store) CreateJob(j domain.Job) (domain.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.clientExists(j.ClientID) {
		return domain.Job{}, ErrNotFound
	}

	now := s.now()
	j.ID = s.ids.next(now)
	j.CreatedAt = now
	j.LastUpdated = now
	if j.Files == nil {
		j.Files = []domain.JobFile{}
	}
	s.jobs = append(s.jobs, cloneJob(j))
	return j, nil
}

func (s *Store) clientExists(id int64) bool {
	for i := range s.clients {
		if s.clients[i].ID == id {
			return true
		}
	}
	return false
}

// GetJob returns the job with the given id
func (s *Store) GetJob(id int64) (domain.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.jobs {
		if s.jobs[i].ID == id {
			return cloneJob(s.jobs[i]), nil
		}
	}
	return domain.Job{}, ErrNotFound
}

// UpdateJob applies mutate to the stored job under the lock and refreshes
// LastUpdated. Returns ErrNotFound when the id is absent.
func (s *Store) UpdateJob(id int64, mutate func(*domain.Job)) (domain.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.jobs {
		if s.jobs[i].ID == id {
			mutate(&s.jobs[i])
			s.jobs[i].LastUpdated = s.now()
			return cloneJob(s.jobs[i]), nil
		}
	}
	return domain.Job{}, ErrNotFound
}

// DeleteJob removes the job with the given id
func (s *Store) DeleteJob(id int64) (domain.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.jobs {
		if s.jobs[i].ID == id {
			deleted := s.jobs[i]
			s.jobs = append(s.jobs[:i], s.jobs[i+1:]...)
			return deleted, nil
		}
	}
	return domain.Job{}, ErrNotFound
}

// ListJobs returns all jobs in insertion order
func (s *Store) ListJobs() []domain.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Job, 0, len(s.jobs))
	for i := range s.jobs {
		out = append(out, cloneJob(s.jobs[i]))
	}
	return out
}

// JobsForClient returns the jobs owned by one client, in insertion order
func (s *Store) JobsForClient(clientID int64) []domain.Job {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []domain.Job{}
	for i := range s.jobs {
		if s.jobs[i].ClientID == clientID {
			out = append(out, cloneJob(s.jobs[i]))
		}
	}
	return out
}
