package snapshot_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallercr/workshop-api/internal/domain"
	"github.com/tallercr/workshop-api/internal/snapshot"
)

func TestEncode(t *testing.T) {
	doc := domain.SnapshotDocument{
		Clients: []domain.Client{{ID: 1, Name: "Ana", AuthorizedPersons: []domain.AuthorizedPerson{}}},
		Jobs:    []domain.Job{{ID: 2, ClientID: 1, Name: "Rótulo", Files: []domain.JobFile{}}},
		Events:  []domain.Event{},
		Filters: domain.FilterCatalogs{
			Materials: []domain.FilterItem{{ID: 1, Name: "Madera"}},
			Statuses:  []domain.FilterItem{},
			Companies: []domain.FilterItem{},
		},
		LastSaved: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}

	data, err := snapshot.Encode(doc)
	require.NoError(t, err)

	t.Run("output is indented", func(t *testing.T) {
		text := string(data)
		assert.True(t, strings.HasPrefix(text, "{\n  \""))
		assert.Contains(t, text, "\n  \"clients\"")
	})

	t.Run("round trip preserves the document", func(t *testing.T) {
		decoded, err := snapshot.Decode(data)
		require.NoError(t, err)

		require.Len(t, decoded.Clients, 1)
		assert.Equal(t, "Ana", decoded.Clients[0].Name)
		require.Len(t, decoded.Jobs, 1)
		assert.Equal(t, int64(1), decoded.Jobs[0].ClientID)
		assert.Equal(t, doc.LastSaved, decoded.LastSaved)
		require.Len(t, decoded.Filters.Materials, 1)
	})
}

func TestDecode(t *testing.T) {
	t.Run("malformed input", func(t *testing.T) {
		_, err := snapshot.Decode([]byte("{broken"))
		assert.ErrorIs(t, err, snapshot.ErrMalformed)
	})

	t.Run("missing fields stay at zero values", func(t *testing.T) {
		doc, err := snapshot.Decode([]byte("{}"))
		require.NoError(t, err)

		assert.Nil(t, doc.Clients)
		assert.Nil(t, doc.Jobs)
		assert.Nil(t, doc.Filters.Materials)
		assert.True(t, doc.LastSaved.IsZero())
	})

	t.Run("unknown top-level fields are ignored", func(t *testing.T) {
		doc, err := snapshot.Decode([]byte(`{"clients": [], "extra": true}`))
		require.NoError(t, err)
		assert.NotNil(t, doc.Clients)
	})
}
