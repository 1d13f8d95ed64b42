package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tallercr/workshop-api/internal/domain"
	"github.com/tallercr/workshop-api/internal/service"
	"github.com/tallercr/workshop-api/internal/store"
)

func createReportService(t *testing.T, st *store.Store) *service.ReportService {
	t.Helper()
	return service.NewReportService(st, newTestPersister(t, st), zap.NewNop())
}

func pricedJob(finalPrice, providerCost, designCost float64, createdAt time.Time) domain.Job {
	return domain.Job{
		ClientID:  1,
		CreatedAt: createdAt,
		Calculator: &domain.Calculator{
			ProviderCost: providerCost,
			DesignCost:   designCost,
			FinalPrice:   finalPrice,
		},
	}
}

func TestReportService_ClientsByStatus(t *testing.T) {
	st := store.New()
	svc := createReportService(t, st)

	st.CreateClient(domain.Client{Name: "A", Status: domain.StatusSeguimiento})
	st.CreateClient(domain.Client{Name: "B", Status: domain.StatusSeguimiento})
	st.CreateClient(domain.Client{Name: "C", Status: domain.StatusCerrado})
	st.CreateClient(domain.Client{Name: "D", Status: domain.StatusPendiente})
	st.CreateClient(domain.Client{Name: "E", Status: domain.Status("archivado")})

	result, err := svc.Get(context.Background(), domain.ReportClientsByStatus)
	require.NoError(t, err)

	assert.Equal(t, "Clientes por Estado", result.Title)
	assert.Equal(t, float64(2), result.Data["seguimiento"])
	assert.Equal(t, float64(1), result.Data["cerrado"])
	assert.Equal(t, float64(1), result.Data["pendiente"])
	assert.NotContains(t, result.Data, "archivado")
	assert.Equal(t, float64(5), result.Total, "total covers every client")
}

func TestReportService_ClientsByStatus_Empty(t *testing.T) {
	svc := createReportService(t, store.New())

	result, err := svc.Get(context.Background(), domain.ReportClientsByStatus)
	require.NoError(t, err)

	assert.Zero(t, result.Total)
	assert.Len(t, result.Data, 3, "the three known statuses are always present")
}

func TestReportService_JobsByMaterial(t *testing.T) {
	st := store.New()
	svc := createReportService(t, st)

	st.Replace(domain.SnapshotDocument{Jobs: []domain.Job{
		{Material: "Madera"},
		{Material: "Madera"},
		{Material: "madera"},
		{Material: ""},
	}})

	result, err := svc.Get(context.Background(), domain.ReportJobsByMaterial)
	require.NoError(t, err)

	assert.Equal(t, "Trabajos por Material", result.Title)
	assert.Equal(t, float64(2), result.Data["Madera"])
	assert.Equal(t, float64(1), result.Data["madera"], "material names are not normalized")
	assert.NotContains(t, result.Data, "")
	assert.Equal(t, float64(4), result.Total)
}

func TestReportService_MonthlyIncome(t *testing.T) {
	st := store.New()
	svc := createReportService(t, st)

	january := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	february := time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC)

	st.Replace(domain.SnapshotDocument{Jobs: []domain.Job{
		pricedJob(1000, 0, 0, january),
		pricedJob(500, 0, 0, february),
		pricedJob(250, 0, 0, february),
		{ClientID: 1, CreatedAt: january},
		pricedJob(0, 100, 0, january),
	}})

	result, err := svc.Get(context.Background(), domain.ReportMonthlyIncome)
	require.NoError(t, err)

	assert.Equal(t, "Ingresos Mensuales", result.Title)
	assert.Equal(t, float64(1000), result.Data["2026-01"])
	assert.Equal(t, float64(750), result.Data["2026-02"])
	assert.Equal(t, float64(1750), result.Total, "total is the income sum, not a count")
}

func TestReportService_Profits(t *testing.T) {
	st := store.New()
	svc := createReportService(t, st)

	now := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	st.Replace(domain.SnapshotDocument{Jobs: []domain.Job{
		pricedJob(100, 120, 0, now),   // loss
		pricedJob(100, 95, 0, now),    // 5%
		pricedJob(100, 80, 0, now),    // 20%
		pricedJob(100, 70, 1000, now), // 30%, design cost does not count
		pricedJob(100, 40, 0, now),    // 60%
		{ClientID: 1, CreatedAt: now}, // unpriced
	}})

	result, err := svc.Get(context.Background(), domain.ReportProfits)
	require.NoError(t, err)

	assert.Equal(t, "Distribución de Ganancias", result.Title)
	assert.Equal(t, float64(1), result.Data["Negativa"])
	assert.Equal(t, float64(1), result.Data["0-10%"])
	assert.Equal(t, float64(1), result.Data["10-25%"])
	assert.Equal(t, float64(1), result.Data["25-50%"])
	assert.Equal(t, float64(1), result.Data["50%+"])
	assert.Equal(t, float64(6), result.Total, "total covers unpriced jobs too")
}

func TestReportService_Get_UnknownType(t *testing.T) {
	svc := createReportService(t, store.New())

	_, err := svc.Get(context.Background(), domain.ReportType("inventory"))
	assert.ErrorIs(t, err, service.ErrUnknownReportType)
}

func TestReportService_Export(t *testing.T) {
	st := store.New()
	svc := createReportService(t, st)
	ctx := context.Background()

	st.CreateClient(domain.Client{Name: "A", Status: domain.StatusSeguimiento})

	report, err := svc.Export(ctx, domain.ReportClientsByStatus, domain.ReportFormatPDF)
	require.NoError(t, err)

	assert.Equal(t, domain.ReportClientsByStatus, report.Type)
	assert.Equal(t, domain.ReportFormatPDF, report.Format)
	assert.Equal(t, "Clientes por Estado", report.Data.Title)
	assert.False(t, report.Date.IsZero())

	t.Run("export lands in the history", func(t *testing.T) {
		history, err := svc.History(ctx)
		require.NoError(t, err)

		require.Len(t, history.Reports, 1)
		day := report.Date.Format("2006-01-02")
		require.Contains(t, history.ReportsByDate, day)
		assert.Len(t, history.ReportsByDate[day], 1)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := svc.Export(ctx, domain.ReportClientsByStatus, domain.ReportFormat("docx"))
		assert.ErrorIs(t, err, service.ErrUnknownReportFormat)
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := svc.Export(ctx, domain.ReportType("inventory"), domain.ReportFormatPDF)
		assert.ErrorIs(t, err, service.ErrUnknownReportType)
	})
}

func TestReportService_Statistics(t *testing.T) {
	st := store.New()
	svc := createReportService(t, st)

	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	st.Replace(domain.SnapshotDocument{
		Clients: []domain.Client{
			{ID: 1, Name: "A", Status: domain.StatusSeguimiento},
			{ID: 2, Name: "B", Status: domain.StatusCerrado},
			{ID: 3, Name: "C", Status: domain.StatusPendiente},
		},
		Jobs: []domain.Job{
			{ClientID: 1, Status: domain.StatusCerrado, CreatedAt: now, Calculator: &domain.Calculator{
				ProviderCost: 600, DesignCost: 9999, FinalPrice: 1000,
			}},
			{ClientID: 2, Status: domain.StatusSeguimiento, CreatedAt: now, Calculator: &domain.Calculator{
				ProviderCost: 300, FinalPrice: 500,
			}},
			{ClientID: 3, CreatedAt: now},
			{ClientID: 3, CreatedAt: now},
		},
	})

	stats, err := svc.Statistics(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalClients)
	assert.Equal(t, 1, stats.ActiveClients)
	assert.Equal(t, 4, stats.TotalJobs)
	assert.Equal(t, 1, stats.CompletedJobs)
	assert.Equal(t, float64(1500), stats.TotalIncome)
	assert.Equal(t, float64(900), stats.TotalCost, "design cost is excluded")
	assert.Equal(t, float64(600), stats.TotalProfit)
	assert.Equal(t, float64(375), stats.AverageIncome, "average runs over all jobs")
	assert.InDelta(t, 40, stats.ProfitMargin, 0.001)
}

func TestReportService_Statistics_Empty(t *testing.T) {
	svc := createReportService(t, store.New())

	stats, err := svc.Statistics(context.Background())
	require.NoError(t, err)

	assert.Zero(t, stats.TotalClients)
	assert.Zero(t, stats.AverageIncome)
	assert.Zero(t, stats.ProfitMargin)
}
