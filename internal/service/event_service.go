package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/tallercr/workshop-api/internal/domain"
	"github.com/tallercr/workshop-api/internal/snapshot"
	"github.com/tallercr/workshop-api/internal/store"
)

type EventService struct {
	store     *store.Store
	persister *snapshot.Persister
	logger    *zap.Logger
}

func NewEventService(st *store.Store, persister *snapshot.Persister, logger *zap.Logger) *EventService {
	return &EventService{
		store:     st,
		persister: persister,
		logger:    logger,
	}
}

func (s *EventService) Create(ctx context.Context, req *domain.CreateEventRequest) (*domain.Event, error) {
	event := s.store.CreateEvent(domain.Event{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		ClientID:    req.ClientID,
	})

	s.save(ctx)
	s.logger.Info("event created",
		zap.Int64("id", event.ID),
		zap.String("title", event.Title),
		zap.String("date", event.Date))
	return &event, nil
}

func (s *EventService) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	event, err := s.store.GetEvent(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return &event, nil
}

// Update merges the fields present in the request onto the stored event
func (s *EventService) Update(ctx context.Context, id int64, req *domain.UpdateEventRequest) (*domain.Event, error) {
	event, err := s.store.UpdateEvent(id, func(e *domain.Event) {
		if req.Title != nil {
			e.Title = *req.Title
		}
		if req.Description != nil {
			e.Description = *req.Description
		}
		if req.Date != nil {
			e.Date = *req.Date
		}
		if req.Time != nil {
			e.Time = *req.Time
		}
		if req.ClientID != nil {
			e.ClientID = req.ClientID
		}
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to update event: %w", err)
	}

	s.save(ctx)
	return &event, nil
}

func (s *EventService) Delete(ctx context.Context, id int64) error {
	if err := s.store.DeleteEvent(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrEventNotFound
		}
		return fmt.Errorf("failed to delete event: %w", err)
	}

	s.save(ctx)
	s.logger.Info("event deleted", zap.Int64("id", id))
	return nil
}

// List returns all events, or only one month's when month is "YYYY-MM"
func (s *EventService) List(ctx context.Context, month string) ([]domain.Event, error) {
	return s.store.ListEvents(month), nil
}

func (s *EventService) save(ctx context.Context) {
	if err := s.persister.Save(ctx); err != nil {
		s.logger.Warn("snapshot save failed", zap.Error(err))
	}
}
