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

func TestJobService_Create(t *testing.T) {
	st := store.New()
	svc := createJobService(t, st)
	ctx := context.Background()

	client := createTestClient(t, st, "Jorge Salas", domain.StatusSeguimiento)

	job, err := svc.Create(ctx, &domain.CreateJobRequest{
		ClientID: client.ID,
		Name:     "Rótulo luminoso",
		Material: "Acrílico",
		Measures: "120x60cm",
		Status:   domain.StatusPendiente,
	})
	require.NoError(t, err)
	require.NotNil(t, job)

	assert.NotZero(t, job.ID)
	assert.Equal(t, client.ID, job.ClientID)
	assert.Equal(t, "Rótulo luminoso", job.Name)
	assert.NotNil(t, job.Files)
	assert.False(t, job.CreatedAt.IsZero())

	t.Run("client status follows the new job", func(t *testing.T) {
		refreshed, err := st.GetClient(client.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPendiente, refreshed.Status)
	})

	t.Run("unknown client", func(t *testing.T) {
		_, err := svc.Create(ctx, &domain.CreateJobRequest{ClientID: 999999, Name: "x"})
		assert.ErrorIs(t, err, service.ErrClientNotFound)
	})
}

func TestJobService_Update(t *testing.T) {
	st := store.New()
	svc := createJobService(t, st)
	ctx := context.Background()

	client := createTestClient(t, st, "Elena Campos", domain.StatusSeguimiento)
	job, err := svc.Create(ctx, &domain.CreateJobRequest{
		ClientID: client.ID,
		Name:     "Sublimación camisetas",
		Status:   domain.StatusSeguimiento,
	})
	require.NoError(t, err)

	t.Run("merges only the fields present", func(t *testing.T) {
		material := "Sublimación"
		updated, err := svc.Update(ctx, job.ID, &domain.UpdateJobRequest{Material: &material})
		require.NoError(t, err)

		assert.Equal(t, "Sublimación", updated.Material)
		assert.Equal(t, "Sublimación camisetas", updated.Name)
	})

	t.Run("closing the only job closes the client", func(t *testing.T) {
		status := domain.StatusCerrado
		_, err := svc.Update(ctx, job.ID, &domain.UpdateJobRequest{Status: &status})
		require.NoError(t, err)

		refreshed, err := st.GetClient(client.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCerrado, refreshed.Status)
	})

	t.Run("unknown id", func(t *testing.T) {
		name := "x"
		_, err := svc.Update(ctx, 999999, &domain.UpdateJobRequest{Name: &name})
		assert.ErrorIs(t, err, service.ErrJobNotFound)
	})
}

func TestJobService_Delete(t *testing.T) {
	st := store.New()
	svc := createJobService(t, st)
	ctx := context.Background()

	client := createTestClient(t, st, "Diego Herrera", domain.StatusSeguimiento)
	job, err := svc.Create(ctx, &domain.CreateJobRequest{
		ClientID: client.ID,
		Name:     "Corte láser",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, job.ID))

	_, err = svc.GetByID(ctx, job.ID)
	assert.ErrorIs(t, err, service.ErrJobNotFound)

	t.Run("unknown id", func(t *testing.T) {
		assert.ErrorIs(t, svc.Delete(ctx, job.ID), service.ErrJobNotFound)
	})
}

func TestJobService_List(t *testing.T) {
	st := store.New()
	svc := createJobService(t, st)
	ctx := context.Background()

	first := createTestClient(t, st, "Cliente Uno", domain.StatusSeguimiento)
	second := createTestClient(t, st, "Cliente Dos", domain.StatusSeguimiento)

	_, err := svc.Create(ctx, &domain.CreateJobRequest{ClientID: first.ID, Name: "A"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &domain.CreateJobRequest{ClientID: first.ID, Name: "B"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &domain.CreateJobRequest{ClientID: second.ID, Name: "C"})
	require.NoError(t, err)

	all, err := svc.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	mine, err := svc.List(ctx, first.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}

func TestJobService_AddFile(t *testing.T) {
	st := store.New()
	svc := createJobService(t, st)
	ctx := context.Background()

	client := createTestClient(t, st, "Paula Rojas", domain.StatusSeguimiento)
	job, err := svc.Create(ctx, &domain.CreateJobRequest{ClientID: client.ID, Name: "Vinilo"})
	require.NoError(t, err)

	t.Run("local image upload is its own thumbnail", func(t *testing.T) {
		data := "data:image/png;base64,iVBORw0KGgo="
		updated, err := svc.AddFile(ctx, job.ID, &domain.AddJobFileRequest{
			Name: "boceto.png",
			Type: "image/png",
			Data: data,
		})
		require.NoError(t, err)
		require.Len(t, updated.Files, 1)

		file := updated.Files[0]
		assert.NotZero(t, file.ID)
		assert.True(t, file.IsLocal)
		assert.Equal(t, data, file.URL)
		assert.Equal(t, data, file.Thumbnail)
	})

	t.Run("external image link is its own thumbnail", func(t *testing.T) {
		updated, err := svc.AddFile(ctx, job.ID, &domain.AddJobFileRequest{
			Type: "image/jpeg",
			URL:  "https://example.com/fotos/mural.jpg",
		})
		require.NoError(t, err)

		file := updated.Files[len(updated.Files)-1]
		assert.Equal(t, "https://example.com/fotos/mural.jpg", file.Thumbnail)
		assert.Equal(t, "mural.jpg", file.Name, "name falls back to the url segment")
		assert.False(t, file.IsLocal)
	})

	t.Run("youtube link gets the video thumbnail", func(t *testing.T) {
		updated, err := svc.AddFile(ctx, job.ID, &domain.AddJobFileRequest{
			Name: "Video instalación",
			URL:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		})
		require.NoError(t, err)

		file := updated.Files[len(updated.Files)-1]
		assert.Equal(t, "https://img.youtube.com/vi/dQw4w9WgXcQ/0.jpg", file.Thumbnail)
	})

	t.Run("missing type defaults to octet-stream", func(t *testing.T) {
		updated, err := svc.AddFile(ctx, job.ID, &domain.AddJobFileRequest{
			URL: "https://example.com/files/contrato.pdf",
		})
		require.NoError(t, err)

		file := updated.Files[len(updated.Files)-1]
		assert.Equal(t, "application/octet-stream", file.Type)
		assert.Equal(t, "contrato.pdf", file.Name)
	})

	t.Run("link without a path segment gets the generic name", func(t *testing.T) {
		updated, err := svc.AddFile(ctx, job.ID, &domain.AddJobFileRequest{URL: "/"})
		require.NoError(t, err)

		file := updated.Files[len(updated.Files)-1]
		assert.Equal(t, "Archivo externo", file.Name)
	})

	t.Run("unknown job", func(t *testing.T) {
		_, err := svc.AddFile(ctx, 999999, &domain.AddJobFileRequest{URL: "https://example.com/a.png"})
		assert.ErrorIs(t, err, service.ErrJobNotFound)
	})
}

func TestJobService_RemoveFile(t *testing.T) {
	st := store.New()
	svc := createJobService(t, st)
	ctx := context.Background()

	client := createTestClient(t, st, "Marta León", domain.StatusSeguimiento)
	job, err := svc.Create(ctx, &domain.CreateJobRequest{ClientID: client.ID, Name: "Banner"})
	require.NoError(t, err)

	withFile, err := svc.AddFile(ctx, job.ID, &domain.AddJobFileRequest{
		Type: "image/png",
		URL:  "https://example.com/banner.png",
	})
	require.NoError(t, err)
	fileID := withFile.Files[0].ID

	t.Run("unknown file id", func(t *testing.T) {
		_, err := svc.RemoveFile(ctx, job.ID, 999999)
		assert.ErrorIs(t, err, service.ErrFileNotFound)
	})

	t.Run("removes by id", func(t *testing.T) {
		updated, err := svc.RemoveFile(ctx, job.ID, fileID)
		require.NoError(t, err)
		assert.Empty(t, updated.Files)
	})

	t.Run("unknown job", func(t *testing.T) {
		_, err := svc.RemoveFile(ctx, 999999, fileID)
		assert.ErrorIs(t, err, service.ErrJobNotFound)
	})
}

func TestJobService_SaveCalculator(t *testing.T) {
	st := store.New()
	svc := createJobService(t, st)
	ctx := context.Background()

	client := createTestClient(t, st, "Óscar Fallas", domain.StatusSeguimiento)
	job, err := svc.Create(ctx, &domain.CreateJobRequest{ClientID: client.ID, Name: "Mupi"})
	require.NoError(t, err)

	updated, err := svc.SaveCalculator(ctx, job.ID, &domain.CalculatorRequest{
		Publicity:    400,
		Services:     200,
		Transport:    1000,
		ProviderCost: 1000,
		ProfitMargin: 20,
		Iva:          13,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Calculator)

	assert.Equal(t, float64(2600), updated.Calculator.TotalCost)
	assert.Equal(t, float64(3120), updated.Calculator.PriceWithoutIva)
	assert.Equal(t, 3525.6, updated.Calculator.FinalPrice)

	t.Run("unknown job", func(t *testing.T) {
		_, err := svc.SaveCalculator(ctx, 999999, &domain.CalculatorRequest{})
		assert.ErrorIs(t, err, service.ErrJobNotFound)
	})
}
