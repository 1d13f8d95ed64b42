package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/tallercr/workshop-api/internal/domain"
	"github.com/tallercr/workshop-api/internal/snapshot"
	"github.com/tallercr/workshop-api/internal/store"
)

type ClientService struct {
	store     *store.Store
	persister *snapshot.Persister
	notifier  Notifier
	logger    *zap.Logger
}

func NewClientService(
	st *store.Store,
	persister *snapshot.Persister,
	notifier Notifier,
	logger *zap.Logger,
) *ClientService {
	return &ClientService{
		store:     st,
		persister: persister,
		notifier:  notifier,
		logger:    logger,
	}
}

func (s *ClientService) Create(ctx context.Context, req *domain.CreateClientRequest) (*domain.Client, error) {
	client := s.store.CreateClient(domain.Client{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
		Company: req.Company,
		Status:  req.Status,
		Avatar:  req.Avatar,
	})

	if s.store.EnsureCompany(req.Company) {
		s.logger.Info("company added to catalog", zap.String("company", req.Company))
	}

	s.save(ctx)
	s.logger.Info("client created", zap.Int64("id", client.ID), zap.String("name", client.Name))
	return &client, nil
}

func (s *ClientService) GetByID(ctx context.Context, id int64) (*domain.Client, error) {
	client, err := s.store.GetClient(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return &client, nil
}

// Update merges the fields present in the request onto the stored client
func (s *ClientService) Update(ctx context.Context, id int64, req *domain.UpdateClientRequest) (*domain.Client, error) {
	client, err := s.store.UpdateClient(id, func(c *domain.Client) {
		if req.Name != nil {
			c.Name = *req.Name
		}
		if req.Phone != nil {
			c.Phone = *req.Phone
		}
		if req.Email != nil {
			c.Email = *req.Email
		}
		if req.Address != nil {
			c.Address = *req.Address
		}
		if req.Company != nil {
			c.Company = *req.Company
		}
		if req.Status != nil {
			c.Status = *req.Status
		}
		if req.Avatar != nil {
			c.Avatar = *req.Avatar
		}
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to update client: %w", err)
	}

	if req.Company != nil && s.store.EnsureCompany(*req.Company) {
		s.logger.Info("company added to catalog", zap.String("company", *req.Company))
	}

	s.save(ctx)
	return &client, nil
}

// Delete removes the client and cascades to all jobs owned by it
func (s *ClientService) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteClient(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrClientNotFound
		}
		return fmt.Errorf("failed to delete client: %w", err)
	}

	s.save(ctx)
	s.logger.Info("client deleted", zap.Int64("id", id))
	return nil
}

// List returns the clients matching the query, filtered and sorted the way
// the client list view composes its filter bar.
func (s *ClientService) List(ctx context.Context, q domain.ClientListQuery) ([]domain.Client, error) {
	clients := s.store.ListClients()

	filtered := clients[:0]
	for _, c := range clients {
		if !s.matches(c, q) {
			continue
		}
		filtered = append(filtered, c)
	}

	switch q.SortBy {
	case "asc":
		sort.SliceStable(filtered, func(i, j int) bool {
			return strings.ToLower(filtered[i].Name) < strings.ToLower(filtered[j].Name)
		})
	case "desc":
		sort.SliceStable(filtered, func(i, j int) bool {
			return strings.ToLower(filtered[i].Name) > strings.ToLower(filtered[j].Name)
		})
	default:
		// most recently touched first
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].SortKey().After(filtered[j].SortKey())
		})
	}
	return filtered, nil
}

// matches applies the search, company, status and material predicates.
// Search is a case-insensitive substring match over name, phone and the
// authorized persons' id numbers. Material matches when any of the
// client's jobs carries it.
func (s *ClientService) matches(c domain.Client, q domain.ClientListQuery) bool {
	if q.Search != "" {
		term := strings.ToLower(q.Search)
		hit := strings.Contains(strings.ToLower(c.Name), term) ||
			strings.Contains(strings.ToLower(c.Phone), term)
		if !hit {
			for _, p := range c.AuthorizedPersons {
				if p.ID != "" && strings.Contains(strings.ToLower(p.ID), term) {
					hit = true
					break
				}
			}
		}
		if !hit {
			return false
		}
	}
	if q.Company != "" && c.Company != q.Company {
		return false
	}
	if q.Status != "" && c.Status != q.Status {
		return false
	}
	if q.Material != "" {
		hit := false
		for _, j := range s.store.JobsForClient(c.ID) {
			if j.Material == q.Material {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}
	return true
}

// AddAuthorizedPerson appends a person to the client's list
func (s *ClientService) AddAuthorizedPerson(ctx context.Context, clientID int64, req *domain.AddAuthorizedPersonRequest) (*domain.Client, error) {
	client, err := s.store.UpdateClient(clientID, func(c *domain.Client) {
		c.AuthorizedPersons = append(c.AuthorizedPersons, domain.AuthorizedPerson{
			ID:    req.ID,
			Name:  req.Name,
			Phone: req.Phone,
			Note:  req.Note,
		})
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to add authorized person: %w", err)
	}

	s.save(ctx)
	return &client, nil
}

// RemoveAuthorizedPerson removes the person at the given list position
func (s *ClientService) RemoveAuthorizedPerson(ctx context.Context, clientID int64, index int) (*domain.Client, error) {
	var indexOK bool
	client, err := s.store.UpdateClient(clientID, func(c *domain.Client) {
		if index < 0 || index >= len(c.AuthorizedPersons) {
			return
		}
		indexOK = true
		c.AuthorizedPersons = append(c.AuthorizedPersons[:index], c.AuthorizedPersons[index+1:]...)
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to remove authorized person: %w", err)
	}
	if !indexOK {
		return nil, ErrPersonNotFound
	}

	s.save(ctx)
	return &client, nil
}

// RecomputeStatus derives the client's status from its jobs and applies it
// when it changed. A change refreshes LastUpdated, persists the snapshot
// and notifies.
func (s *ClientService) RecomputeStatus(ctx context.Context, clientID int64) (*domain.Client, error) {
	client, err := s.store.GetClient(clientID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	jobs := s.store.JobsForClient(clientID)
	derived := DeriveClientStatus(client.Status, jobs)
	if derived == client.Status {
		return &client, nil
	}

	previous := client.Status
	updated, err := s.store.UpdateClient(clientID, func(c *domain.Client) {
		c.Status = derived
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update client status: %w", err)
	}

	s.save(ctx)
	s.notifier.ClientStatusChanged(ctx, updated, previous)
	return &updated, nil
}

// save persists the snapshot after a successful mutation. The mutation has
// already been applied in memory, so a failed write is logged and does not
// fail the operation.
func (s *ClientService) save(ctx context.Context) {
	if err := s.persister.Save(ctx); err != nil {
		s.logger.Warn("snapshot save failed", zap.Error(err))
	}
}
