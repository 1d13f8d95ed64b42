package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/tallercr/workshop-api/internal/domain"
	"github.com/tallercr/workshop-api/internal/snapshot"
	"github.com/tallercr/workshop-api/internal/store"
)

type SnapshotService struct {
	store     *store.Store
	persister *snapshot.Persister
	logger    *zap.Logger
}

func NewSnapshotService(st *store.Store, persister *snapshot.Persister, logger *zap.Logger) *SnapshotService {
	return &SnapshotService{
		store:     st,
		persister: persister,
		logger:    logger,
	}
}

// Export returns the whole store as one snapshot document
func (s *SnapshotService) Export(ctx context.Context) (*domain.SnapshotDocument, error) {
	doc := s.store.Export()
	return &doc, nil
}

// Import parses the raw document and replaces the store contents with it.
// A document that is not valid JSON leaves the store untouched.
func (s *SnapshotService) Import(ctx context.Context, raw []byte) (*domain.SnapshotDocument, error) {
	doc, err := snapshot.Decode(raw)
	if err != nil {
		return nil, err
	}
	s.store.Replace(doc)

	if err := s.persister.Save(ctx); err != nil {
		return nil, fmt.Errorf("imported but failed to persist: %w", err)
	}
	s.logger.Info("snapshot imported",
		zap.Int("clients", len(doc.Clients)),
		zap.Int("jobs", len(doc.Jobs)),
		zap.Int("events", len(doc.Events)))

	applied := s.store.Export()
	return &applied, nil
}
