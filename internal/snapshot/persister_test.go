package snapshot_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tallercr/workshop-api/internal/domain"
	"github.com/tallercr/workshop-api/internal/snapshot"
	"github.com/tallercr/workshop-api/internal/storage"
	"github.com/tallercr/workshop-api/internal/store"
)

func newPersisterAt(t *testing.T, path string, st *store.Store) *snapshot.Persister {
	t.Helper()
	backend, err := storage.NewLocalStorage(path)
	require.NoError(t, err)
	return snapshot.NewPersister(st, backend, zap.NewNop())
}

func TestPersister_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	ctx := context.Background()

	st := store.New()
	persister := newPersisterAt(t, path, st)

	client := st.CreateClient(domain.Client{Name: "Persistida"})
	_, err := st.CreateJob(domain.Job{ClientID: client.ID, Name: "Trabajo"})
	require.NoError(t, err)

	require.NoError(t, persister.Save(ctx))
	assert.FileExists(t, path)

	restored := store.New()
	require.NoError(t, newPersisterAt(t, path, restored).Load(ctx))

	clients := restored.ListClients()
	require.Len(t, clients, 1)
	assert.Equal(t, "Persistida", clients[0].Name)
	assert.Equal(t, client.ID, clients[0].ID)
	assert.Len(t, restored.ListJobs(), 1)
}

func TestPersister_LoadSeedsWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")

	st := store.New()
	require.NoError(t, newPersisterAt(t, path, st).Load(context.Background()))

	fc := st.Filters()
	assert.Len(t, fc.Materials, 5)
	assert.Len(t, fc.Statuses, 3)
	assert.Len(t, st.ListEvents(""), 3)

	t.Run("seeding does not write a file", func(t *testing.T) {
		assert.NoFileExists(t, path)
	})
}

func TestPersister_LoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, os.WriteFile(path, []byte("{corrupt"), 0644))

	st := store.New()
	err := newPersisterAt(t, path, st).Load(context.Background())
	assert.ErrorIs(t, err, snapshot.ErrMalformed)
	assert.True(t, st.IsEmpty(), "a failed load leaves the store untouched")
}
