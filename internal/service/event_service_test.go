package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tallercr/workshop-api/internal/domain"
	"github.com/tallercr/workshop-api/internal/service"
	"github.com/tallercr/workshop-api/internal/store"
)

func createEventService(t *testing.T, st *store.Store) *service.EventService {
	t.Helper()
	return service.NewEventService(st, newTestPersister(t, st), zap.NewNop())
}

func TestEventService_Create(t *testing.T) {
	st := store.New()
	svc := createEventService(t, st)

	clientID := int64(12345)
	event, err := svc.Create(context.Background(), &domain.CreateEventRequest{
		Title:       "Entrega de rótulo",
		Description: "Entrega e instalación",
		Date:        "2026-09-15",
		Time:        "14:00",
		ClientID:    &clientID,
	})
	require.NoError(t, err)
	require.NotNil(t, event)

	assert.NotZero(t, event.ID)
	assert.Equal(t, "Entrega de rótulo", event.Title)
	assert.Equal(t, "2026-09-15", event.Date)
	require.NotNil(t, event.ClientID)
	assert.Equal(t, clientID, *event.ClientID)
	assert.False(t, event.CreatedAt.IsZero())
}

func TestEventService_Update(t *testing.T) {
	st := store.New()
	svc := createEventService(t, st)
	ctx := context.Background()

	event, err := svc.Create(ctx, &domain.CreateEventRequest{
		Title: "Visita técnica",
		Date:  "2026-09-20",
	})
	require.NoError(t, err)

	t.Run("merges only the fields present", func(t *testing.T) {
		date := "2026-09-22"
		updated, err := svc.Update(ctx, event.ID, &domain.UpdateEventRequest{Date: &date})
		require.NoError(t, err)

		assert.Equal(t, "2026-09-22", updated.Date)
		assert.Equal(t, "Visita técnica", updated.Title)
	})

	t.Run("unknown id", func(t *testing.T) {
		title := "x"
		_, err := svc.Update(ctx, 999999, &domain.UpdateEventRequest{Title: &title})
		assert.ErrorIs(t, err, service.ErrEventNotFound)
	})
}

func TestEventService_Delete(t *testing.T) {
	st := store.New()
	svc := createEventService(t, st)
	ctx := context.Background()

	event, err := svc.Create(ctx, &domain.CreateEventRequest{Title: "Reunión", Date: "2026-10-01"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, event.ID))

	_, err = svc.GetByID(ctx, event.ID)
	assert.ErrorIs(t, err, service.ErrEventNotFound)

	t.Run("unknown id", func(t *testing.T) {
		assert.ErrorIs(t, svc.Delete(ctx, event.ID), service.ErrEventNotFound)
	})
}

func TestEventService_List(t *testing.T) {
	st := store.New()
	svc := createEventService(t, st)
	ctx := context.Background()

	_, err := svc.Create(ctx, &domain.CreateEventRequest{Title: "Marzo", Date: "2026-03-10"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &domain.CreateEventRequest{Title: "Abril", Date: "2026-04-02"})
	require.NoError(t, err)

	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	march, err := svc.List(ctx, "2026-03")
	require.NoError(t, err)
	require.Len(t, march, 1)
	assert.Equal(t, "Marzo", march[0].Title)
}
