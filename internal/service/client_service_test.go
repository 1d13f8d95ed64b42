package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallercr/workshop-api/internal/domain"
	"github.com/tallercr/workshop-api/internal/service"
	"github.com/tallercr/workshop-api/internal/store"
)

func TestClientService_Create(t *testing.T) {
	st := store.New()
	svc := createClientService(t, st, nil)
	ctx := context.Background()

	client, err := svc.Create(ctx, &domain.CreateClientRequest{
		Name:    "María Rodríguez",
		Phone:   "8888-1234",
		Email:   "maria@example.com",
		Company: "Soda La Esquina",
		Status:  domain.StatusSeguimiento,
	})
	require.NoError(t, err)
	require.NotNil(t, client)

	assert.NotZero(t, client.ID)
	assert.Equal(t, "María Rodríguez", client.Name)
	assert.Equal(t, domain.StatusSeguimiento, client.Status)
	assert.False(t, client.CreatedAt.IsZero())
	assert.NotNil(t, client.AuthorizedPersons)

	t.Run("company is added to the catalog", func(t *testing.T) {
		fc := st.Filters()
		require.Len(t, fc.Companies, 1)
		assert.Equal(t, "Soda La Esquina", fc.Companies[0].Name)
	})

	t.Run("same company is not added twice", func(t *testing.T) {
		_, err := svc.Create(ctx, &domain.CreateClientRequest{
			Name:    "Otro Cliente",
			Company: "Soda La Esquina",
		})
		require.NoError(t, err)
		assert.Len(t, st.Filters().Companies, 1)
	})
}

func TestClientService_Update(t *testing.T) {
	st := store.New()
	svc := createClientService(t, st, nil)
	ctx := context.Background()

	client := createTestClient(t, st, "Carlos Mora", domain.StatusSeguimiento)

	t.Run("merges only the fields present", func(t *testing.T) {
		name := "Carlos Mora Jiménez"
		updated, err := svc.Update(ctx, client.ID, &domain.UpdateClientRequest{Name: &name})
		require.NoError(t, err)

		assert.Equal(t, "Carlos Mora Jiménez", updated.Name)
		assert.Equal(t, domain.StatusSeguimiento, updated.Status)
	})

	t.Run("new company lands in the catalog", func(t *testing.T) {
		company := "Imprenta Central"
		_, err := svc.Update(ctx, client.ID, &domain.UpdateClientRequest{Company: &company})
		require.NoError(t, err)

		fc := st.Filters()
		require.Len(t, fc.Companies, 1)
		assert.Equal(t, "Imprenta Central", fc.Companies[0].Name)
	})

	t.Run("unknown id", func(t *testing.T) {
		name := "x"
		_, err := svc.Update(ctx, 999999, &domain.UpdateClientRequest{Name: &name})
		assert.ErrorIs(t, err, service.ErrClientNotFound)
	})
}

func TestClientService_Delete(t *testing.T) {
	st := store.New()
	svc := createClientService(t, st, nil)
	ctx := context.Background()

	client := createTestClient(t, st, "Ana Solano", domain.StatusSeguimiento)
	_, err := st.CreateJob(domain.Job{ClientID: client.ID, Name: "Rótulo"})
	require.NoError(t, err)
	_, err = st.CreateJob(domain.Job{ClientID: client.ID, Name: "Tarjetas"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, client.ID))

	_, err = svc.GetByID(ctx, client.ID)
	assert.ErrorIs(t, err, service.ErrClientNotFound)
	assert.Empty(t, st.ListJobs(), "jobs must be cascaded")

	t.Run("unknown id", func(t *testing.T) {
		assert.ErrorIs(t, svc.Delete(ctx, client.ID), service.ErrClientNotFound)
	})
}

func TestClientService_List(t *testing.T) {
	st := store.New()
	svc := createClientService(t, st, nil)
	ctx := context.Background()

	ana := st.CreateClient(domain.Client{Name: "Ana Brenes", Phone: "2222-1111", Company: "Ferretería Norte", Status: domain.StatusSeguimiento})
	beto := st.CreateClient(domain.Client{Name: "Beto Castro", Phone: "8888-5555", Status: domain.StatusCerrado})
	carla := st.CreateClient(domain.Client{
		Name:   "Carla Díaz",
		Status: domain.StatusPendiente,
		AuthorizedPersons: []domain.AuthorizedPerson{
			{ID: "1-2345-6789", Name: "Pedro Díaz"},
		},
	})

	_, err := st.CreateJob(domain.Job{ClientID: beto.ID, Material: "Madera"})
	require.NoError(t, err)

	t.Run("no filters returns everyone", func(t *testing.T) {
		clients, err := svc.List(ctx, domain.ClientListQuery{})
		require.NoError(t, err)
		assert.Len(t, clients, 3)
	})

	t.Run("search matches name case-insensitively", func(t *testing.T) {
		clients, err := svc.List(ctx, domain.ClientListQuery{Search: "ana b"})
		require.NoError(t, err)
		require.Len(t, clients, 1)
		assert.Equal(t, ana.ID, clients[0].ID)
	})

	t.Run("search matches phone", func(t *testing.T) {
		clients, err := svc.List(ctx, domain.ClientListQuery{Search: "8888"})
		require.NoError(t, err)
		require.Len(t, clients, 1)
		assert.Equal(t, beto.ID, clients[0].ID)
	})

	t.Run("search matches authorized person id", func(t *testing.T) {
		clients, err := svc.List(ctx, domain.ClientListQuery{Search: "2345-67"})
		require.NoError(t, err)
		require.Len(t, clients, 1)
		assert.Equal(t, carla.ID, clients[0].ID)
	})

	t.Run("company filter is exact", func(t *testing.T) {
		clients, err := svc.List(ctx, domain.ClientListQuery{Company: "Ferretería Norte"})
		require.NoError(t, err)
		require.Len(t, clients, 1)
		assert.Equal(t, ana.ID, clients[0].ID)
	})

	t.Run("status filter", func(t *testing.T) {
		clients, err := svc.List(ctx, domain.ClientListQuery{Status: domain.StatusCerrado})
		require.NoError(t, err)
		require.Len(t, clients, 1)
		assert.Equal(t, beto.ID, clients[0].ID)
	})

	t.Run("material filter matches through jobs", func(t *testing.T) {
		clients, err := svc.List(ctx, domain.ClientListQuery{Material: "Madera"})
		require.NoError(t, err)
		require.Len(t, clients, 1)
		assert.Equal(t, beto.ID, clients[0].ID)
	})

	t.Run("sort ascending by name", func(t *testing.T) {
		clients, err := svc.List(ctx, domain.ClientListQuery{SortBy: "asc"})
		require.NoError(t, err)
		require.Len(t, clients, 3)
		assert.Equal(t, "Ana Brenes", clients[0].Name)
		assert.Equal(t, "Carla Díaz", clients[2].Name)
	})

	t.Run("sort descending by name", func(t *testing.T) {
		clients, err := svc.List(ctx, domain.ClientListQuery{SortBy: "desc"})
		require.NoError(t, err)
		require.Len(t, clients, 3)
		assert.Equal(t, "Carla Díaz", clients[0].Name)
		assert.Equal(t, "Ana Brenes", clients[2].Name)
	})
}

func TestClientService_AuthorizedPersons(t *testing.T) {
	st := store.New()
	svc := createClientService(t, st, nil)
	ctx := context.Background()

	client := createTestClient(t, st, "Luis Vargas", domain.StatusSeguimiento)

	updated, err := svc.AddAuthorizedPerson(ctx, client.ID, &domain.AddAuthorizedPersonRequest{
		ID:    "1-1111-2222",
		Name:  "Sofía Vargas",
		Phone: "6000-0000",
	})
	require.NoError(t, err)
	require.Len(t, updated.AuthorizedPersons, 1)
	assert.Equal(t, "Sofía Vargas", updated.AuthorizedPersons[0].Name)

	t.Run("remove out of range index", func(t *testing.T) {
		_, err := svc.RemoveAuthorizedPerson(ctx, client.ID, 5)
		assert.ErrorIs(t, err, service.ErrPersonNotFound)

		_, err = svc.RemoveAuthorizedPerson(ctx, client.ID, -1)
		assert.ErrorIs(t, err, service.ErrPersonNotFound)
	})

	t.Run("remove by index", func(t *testing.T) {
		updated, err := svc.RemoveAuthorizedPerson(ctx, client.ID, 0)
		require.NoError(t, err)
		assert.Empty(t, updated.AuthorizedPersons)
	})

	t.Run("unknown client", func(t *testing.T) {
		_, err := svc.AddAuthorizedPerson(ctx, 999999, &domain.AddAuthorizedPersonRequest{Name: "x"})
		assert.ErrorIs(t, err, service.ErrClientNotFound)
	})
}

func TestClientService_RecomputeStatus(t *testing.T) {
	st := store.New()
	notifier := &recordingNotifier{}
	svc := createClientService(t, st, notifier)
	ctx := context.Background()

	client := createTestClient(t, st, "Rosa Quirós", domain.StatusSeguimiento)
	_, err := st.CreateJob(domain.Job{ClientID: client.ID, Status: domain.StatusPendiente})
	require.NoError(t, err)

	updated, err := svc.RecomputeStatus(ctx, client.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPendiente, updated.Status)

	changes := notifier.Changes()
	require.Len(t, changes, 1)
	assert.Equal(t, client.ID, changes[0].ClientID)
	assert.Equal(t, domain.StatusSeguimiento, changes[0].Previous)
	assert.Equal(t, domain.StatusPendiente, changes[0].Current)

	t.Run("no change means no notification", func(t *testing.T) {
		again, err := svc.RecomputeStatus(ctx, client.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPendiente, again.Status)
		assert.Len(t, notifier.Changes(), 1)
	})

	t.Run("unknown client", func(t *testing.T) {
		_, err := svc.RecomputeStatus(ctx, 999999)
		assert.ErrorIs(t, err, service.ErrClientNotFound)
	})
}
