package handler_test

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tallercr/workshop-api/internal/domain"
	"github.com/tallercr/workshop-api/internal/http/handler"
	"github.com/tallercr/workshop-api/internal/service"
	"github.com/tallercr/workshop-api/internal/snapshot"
	"github.com/tallercr/workshop-api/internal/storage"
	"github.com/tallercr/workshop-api/internal/store"
)

func setupReportRouter(t *testing.T) (*chi.Mux, *store.Store) {
	t.Helper()
	st := store.New()
	backend, err := storage.NewLocalStorage(filepath.Join(t.TempDir(), "snapshot.json"))
	require.NoError(t, err)
	persister := snapshot.NewPersister(st, backend, zap.NewNop())
	logger := zap.NewNop()
	reports := service.NewReportService(st, persister, logger)

	h := handler.NewReportHandler(reports, logger)
	r := chi.NewRouter()
	r.Route("/reports", func(r chi.Router) {
		r.Get("/history", h.History)
		r.Get("/{type}", h.Get)
		r.Post("/{type}/export", h.Export)
	})
	r.Get("/stats", h.Statistics)
	return r, st
}

func TestReportHandler_Get(t *testing.T) {
	router, st := setupReportRouter(t)
	st.CreateClient(domain.Client{Name: "A", Status: domain.StatusSeguimiento})
	st.CreateClient(domain.Client{Name: "B", Status: domain.StatusCerrado})

	t.Run("clients by status", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/reports/clientsByStatus", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var result domain.ReportResult
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
		assert.Equal(t, "Clientes por Estado", result.Title)
		assert.Equal(t, float64(2), result.Total)
	})

	t.Run("unknown type", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/reports/inventory", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestReportHandler_Export(t *testing.T) {
	router, _ := setupReportRouter(t)

	t.Run("valid export", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/reports/profits/export",
			domain.ExportReportRequest{Format: domain.ReportFormatPDF})
		require.Equal(t, http.StatusCreated, rec.Code)

		var report domain.Report
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&report))
		assert.Equal(t, domain.ReportProfits, report.Type)
		assert.Equal(t, domain.ReportFormatPDF, report.Format)
	})

	t.Run("export shows up in history", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/reports/history", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var history domain.ReportHistoryResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&history))
		assert.Len(t, history.Reports, 1)
	})

	t.Run("unknown format", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/reports/profits/export",
			domain.ExportReportRequest{Format: domain.ReportFormat("docx")})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing format", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/reports/profits/export", struct{}{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestReportHandler_Statistics(t *testing.T) {
	router, st := setupReportRouter(t)
	client := st.CreateClient(domain.Client{Name: "A", Status: domain.StatusSeguimiento})
	_, err := st.CreateJob(domain.Job{
		ClientID:   client.ID,
		Status:     domain.StatusCerrado,
		Calculator: &domain.Calculator{ProviderCost: 600, FinalPrice: 1000},
	})
	require.NoError(t, err)

	rec := doJSON(t, router, http.MethodGet, "/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var stats domain.Statistics
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&stats))
	assert.Equal(t, 1, stats.TotalClients)
	assert.Equal(t, 1, stats.CompletedJobs)
	assert.Equal(t, float64(1000), stats.TotalIncome)
	assert.Equal(t, float64(400), stats.TotalProfit)
}
