package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/tallercr/workshop-api/internal/domain"
	"github.com/tallercr/workshop-api/internal/snapshot"
	"github.com/tallercr/workshop-api/internal/store"
)

type FilterService struct {
	store     *store.Store
	persister *snapshot.Persister
	logger    *zap.Logger
}

func NewFilterService(st *store.Store, persister *snapshot.Persister, logger *zap.Logger) *FilterService {
	return &FilterService{
		store:     st,
		persister: persister,
		logger:    logger,
	}
}

// Get returns the three classification catalogs
func (s *FilterService) Get(ctx context.Context) (*domain.FilterCatalogs, error) {
	fc := s.store.Filters()
	return &fc, nil
}

// Update replaces the catalogs wholesale. Entries whose trimmed name is
// blank are pruned, and entries without an id get a fresh one.
func (s *FilterService) Update(ctx context.Context, req *domain.UpdateFiltersRequest) (*domain.FilterCatalogs, error) {
	fc := domain.FilterCatalogs{
		Materials: s.prune(req.Materials),
		Statuses:  s.prune(req.Statuses),
		Companies: s.prune(req.Companies),
	}
	s.store.SetFilters(fc)

	s.save(ctx)
	s.logger.Info("filter catalogs updated",
		zap.Int("materials", len(fc.Materials)),
		zap.Int("statuses", len(fc.Statuses)),
		zap.Int("companies", len(fc.Companies)))

	out := s.store.Filters()
	return &out, nil
}

func (s *FilterService) prune(items []domain.FilterItem) []domain.FilterItem {
	out := []domain.FilterItem{}
	for _, item := range items {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			continue
		}
		item.Name = name
		if item.ID == 0 {
			item.ID = s.store.NextID()
		}
		out = append(out, item)
	}
	return out
}

func (s *FilterService) save(ctx context.Context) {
	if err := s.persister.Save(ctx); err != nil {
		s.logger.Warn("snapshot save failed", zap.Error(err))
	}
}
