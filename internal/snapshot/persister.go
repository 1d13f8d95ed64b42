package snapshot

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/tallercr/workshop-api/internal/storage"
	"github.com/tallercr/workshop-api/internal/store"
)

// Persister saves and restores the store through a storage backend. Saves
// are serialized: concurrent callers queue on the mutex so two exports
// never interleave on disk.
type Persister struct {
	store   *store.Store
	storage storage.Storage
	logger  *zap.Logger

	mu sync.Mutex
}

// NewPersister creates a persister bound to one store and one backend
func NewPersister(st *store.Store, backend storage.Storage, logger *zap.Logger) *Persister {
	return &Persister{
		store:   st,
		storage: backend,
		logger:  logger,
	}
}

// Save exports the store and writes the document to the backend
func (p *Persister) Save(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	doc := p.store.Export()
	data, err := Encode(doc)
	if err != nil {
		return err
	}
	if err := p.storage.Write(ctx, data); err != nil {
		return fmt.Errorf("failed to persist snapshot: %w", err)
	}

	p.logger.Debug("snapshot saved",
		zap.Int("clients", len(doc.Clients)),
		zap.Int("jobs", len(doc.Jobs)),
		zap.Int("events", len(doc.Events)))
	return nil
}

// Load reads the backend document and replaces the store contents. When no
// document exists yet the store is seeded with first-run defaults instead.
func (p *Persister) Load(ctx context.Context) error {
	exists, err := p.storage.Exists(ctx)
	if err != nil {
		return err
	}
	if !exists {
		p.store.Seed()
		p.logger.Info("no snapshot found, seeded first-run defaults")
		return nil
	}

	data, err := p.storage.Read(ctx)
	if err != nil {
		return err
	}
	doc, err := Decode(data)
	if err != nil {
		return err
	}
	p.store.Replace(doc)

	p.logger.Info("snapshot loaded",
		zap.Int("clients", len(doc.Clients)),
		zap.Int("jobs", len(doc.Jobs)),
		zap.Int("events", len(doc.Events)),
		zap.Time("lastSaved", doc.LastSaved))
	return nil
}
