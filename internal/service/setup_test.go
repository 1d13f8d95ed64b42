package service_test

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tallercr/workshop-api/internal/domain"
	"github.com/tallercr/workshop-api/internal/service"
	"github.com/tallercr/workshop-api/internal/snapshot"
	"github.com/tallercr/workshop-api/internal/storage"
	"github.com/tallercr/workshop-api/internal/store"
)

func newTestPersister(t *testing.T, st *store.Store) *snapshot.Persister {
	t.Helper()
	backend, err := storage.NewLocalStorage(filepath.Join(t.TempDir(), "snapshot.json"))
	require.NoError(t, err)
	return snapshot.NewPersister(st, backend, zap.NewNop())
}

type statusChange struct {
	ClientID int64
	Previous domain.Status
	Current  domain.Status
}

// recordingNotifier captures status-change notifications for assertions
type recordingNotifier struct {
	mu      sync.Mutex
	changes []statusChange
}

func (n *recordingNotifier) ClientStatusChanged(ctx context.Context, client domain.Client, previous domain.Status) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.changes = append(n.changes, statusChange{
		ClientID: client.ID,
		Previous: previous,
		Current:  client.Status,
	})
}

func (n *recordingNotifier) Changes() []statusChange {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]statusChange{}, n.changes...)
}

func createClientService(t *testing.T, st *store.Store, notifier service.Notifier) *service.ClientService {
	t.Helper()
	if notifier == nil {
		notifier = service.NewLogNotifier(zap.NewNop())
	}
	return service.NewClientService(st, newTestPersister(t, st), notifier, zap.NewNop())
}

func createJobService(t *testing.T, st *store.Store) *service.JobService {
	t.Helper()
	persister := newTestPersister(t, st)
	clients := service.NewClientService(st, persister, service.NewLogNotifier(zap.NewNop()), zap.NewNop())
	thumbs := service.NewThumbnailFetcher(st, persister, 2*time.Second, zap.NewNop())
	t.Cleanup(thumbs.Close)
	return service.NewJobService(st, persister, clients, thumbs, zap.NewNop())
}

func createTestClient(t *testing.T, st *store.Store, name string, status domain.Status) domain.Client {
	t.Helper()
	return st.CreateClient(domain.Client{Name: name, Status: status})
}
