package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/tallercr/workshop-api/internal/domain"
	"github.com/tallercr/workshop-api/internal/snapshot"
	"github.com/tallercr/workshop-api/internal/store"
)

// reportCost is the cost figure reports and statistics use: the calculator
// cost fields without designCost. This deviates from Calculator.TotalCost,
// which includes it; both figures are kept as-is.
func reportCost(c *domain.Calculator) float64 {
	return c.ProviderCost + c.PackagingCost + c.Publicity +
		c.Services + c.InstallationCost + c.Transport
}

type ReportService struct {
	store     *store.Store
	persister *snapshot.Persister
	logger    *zap.Logger
	now       func() time.Time
}

func NewReportService(st *store.Store, persister *snapshot.Persister, logger *zap.Logger) *ReportService {
	return &ReportService{
		store:     st,
		persister: persister,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Get runs the aggregation for the given report type over the live store
func (s *ReportService) Get(ctx context.Context, reportType domain.ReportType) (*domain.ReportResult, error) {
	switch reportType {
	case domain.ReportClientsByStatus:
		return s.clientsByStatus(), nil
	case domain.ReportJobsByMaterial:
		return s.jobsByMaterial(), nil
	case domain.ReportMonthlyIncome:
		return s.monthlyIncome(), nil
	case domain.ReportProfits:
		return s.profits(), nil
	default:
		return nil, ErrUnknownReportType
	}
}

// Export runs the aggregation and records it in the report history, both
// in the flat list and under the export day.
func (s *ReportService) Export(ctx context.Context, reportType domain.ReportType, format domain.ReportFormat) (*domain.Report, error) {
	if !format.IsValid() {
		return nil, ErrUnknownReportFormat
	}
	result, err := s.Get(ctx, reportType)
	if err != nil {
		return nil, err
	}

	report := domain.Report{
		Type:   reportType,
		Format: format,
		Date:   s.now(),
		Data:   *result,
	}
	s.store.AppendReport(report)

	s.save(ctx)
	s.logger.Info("report exported",
		zap.String("type", string(reportType)),
		zap.String("format", string(format)))
	return &report, nil
}

// History returns every recorded export and the by-day index
func (s *ReportService) History(ctx context.Context) (*domain.ReportHistoryResponse, error) {
	reports, byDate := s.store.ReportHistory()
	return &domain.ReportHistoryResponse{
		Reports:       reports,
		ReportsByDate: byDate,
	}, nil
}

// clientsByStatus counts clients per known status. Clients carrying a
// status outside the three known values are not counted, but the total
// still covers every client.
func (s *ReportService) clientsByStatus() *domain.ReportResult {
	clients := s.store.ListClients()
	data := map[string]float64{
		string(domain.StatusSeguimiento): 0,
		string(domain.StatusCerrado):     0,
		string(domain.StatusPendiente):   0,
	}
	for _, c := range clients {
		if _, ok := data[string(c.Status)]; ok {
			data[string(c.Status)]++
		}
	}
	return &domain.ReportResult{
		Title: "Clientes por Estado",
		Data:  data,
		Total: float64(len(clients)),
	}
}

// jobsByMaterial counts jobs per material name, skipping jobs with no
// material. Names are not normalized: "Madera" and "madera" count apart.
func (s *ReportService) jobsByMaterial() *domain.ReportResult {
	jobs := s.store.ListJobs()
	data := map[string]float64{}
	for _, j := range jobs {
		if j.Material == "" {
			continue
		}
		data[j.Material]++
	}
	return &domain.ReportResult{
		Title: "Trabajos por Material",
		Data:  data,
		Total: float64(len(jobs)),
	}
}

// monthlyIncome sums final prices per the job's creation year-month. Only
// jobs with a calculator and a non-zero final price contribute.
func (s *ReportService) monthlyIncome() *domain.ReportResult {
	jobs := s.store.ListJobs()
	data := map[string]float64{}
	var total float64
	for _, j := range jobs {
		if j.Calculator == nil || j.Calculator.FinalPrice == 0 {
			continue
		}
		month := j.CreatedAt.Format("2006-01")
		data[month] += j.Calculator.FinalPrice
		total += j.Calculator.FinalPrice
	}
	return &domain.ReportResult{
		Title: "Ingresos Mensuales",
		Data:  data,
		Total: total,
	}
}

// profits buckets priced jobs by their profit percentage relative to the
// final price, with negative-profit jobs in their own bucket. The total
// covers every job, priced or not.
func (s *ReportService) profits() *domain.ReportResult {
	jobs := s.store.ListJobs()
	data := map[string]float64{
		"Negativa": 0,
		"0-10%":    0,
		"10-25%":   0,
		"25-50%":   0,
		"50%+":     0,
	}
	for _, j := range jobs {
		if j.Calculator == nil || j.Calculator.FinalPrice == 0 {
			continue
		}
		cost := reportCost(j.Calculator)
		profit := j.Calculator.FinalPrice - cost
		pct := 0.0
		if j.Calculator.FinalPrice > 0 {
			pct = profit / j.Calculator.FinalPrice * 100
		}
		switch {
		case profit < 0:
			data["Negativa"]++
		case pct < 10:
			data["0-10%"]++
		case pct < 25:
			data["10-25%"]++
		case pct < 50:
			data["25-50%"]++
		default:
			data["50%+"]++
		}
	}
	return &domain.ReportResult{
		Title: "Distribución de Ganancias",
		Data:  data,
		Total: float64(len(jobs)),
	}
}

// Statistics computes the dashboard headline figures
func (s *ReportService) Statistics(ctx context.Context) (*domain.Statistics, error) {
	clients := s.store.ListClients()
	jobs := s.store.ListJobs()

	stats := &domain.Statistics{
		TotalClients: len(clients),
		TotalJobs:    len(jobs),
	}
	for _, c := range clients {
		if c.Status == domain.StatusSeguimiento {
			stats.ActiveClients++
		}
	}
	for _, j := range jobs {
		if j.Status == domain.StatusCerrado {
			stats.CompletedJobs++
		}
		if j.Calculator == nil || j.Calculator.FinalPrice == 0 {
			continue
		}
		cost := reportCost(j.Calculator)
		stats.TotalIncome += j.Calculator.FinalPrice
		stats.TotalCost += cost
		stats.TotalProfit += j.Calculator.FinalPrice - cost
	}
	if stats.TotalJobs > 0 {
		stats.AverageIncome = stats.TotalIncome / float64(stats.TotalJobs)
	}
	if stats.TotalIncome > 0 {
		stats.ProfitMargin = stats.TotalProfit / stats.TotalIncome * 100
	}
	return stats, nil
}

func (s *ReportService) save(ctx context.Context) {
	if err := s.persister.Save(ctx); err != nil {
		s.logger.Warn("snapshot save failed", zap.Error(err))
	}
}
