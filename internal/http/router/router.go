package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"github.com/tallercr/workshop-api/internal/config"
	"github.com/tallercr/workshop-api/internal/http/handler"
	"github.com/tallercr/workshop-api/internal/http/middleware"
	"go.uber.org/zap"

	_ "github.com/tallercr/workshop-api/docs" // generated swagger docs
)

type Router struct {
	cfg               *config.Config
	logger            *zap.Logger
	rateLimiter       *middleware.RateLimiter
	clientHandler     *handler.ClientHandler
	jobHandler        *handler.JobHandler
	eventHandler      *handler.EventHandler
	filterHandler     *handler.FilterHandler
	reportHandler     *handler.ReportHandler
	snapshotHandler   *handler.SnapshotHandler
	calculatorHandler *handler.CalculatorHandler
}

func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	rateLimiter *middleware.RateLimiter,
	clientHandler *handler.ClientHandler,
	jobHandler *handler.JobHandler,
	eventHandler *handler.EventHandler,
	filterHandler *handler.FilterHandler,
	reportHandler *handler.ReportHandler,
	snapshotHandler *handler.SnapshotHandler,
	calculatorHandler *handler.CalculatorHandler,
) *Router {
	return &Router{
		cfg:               cfg,
		logger:            logger,
		rateLimiter:       rateLimiter,
		clientHandler:     clientHandler,
		jobHandler:        jobHandler,
		eventHandler:      eventHandler,
		filterHandler:     filterHandler,
		reportHandler:     reportHandler,
		snapshotHandler:   snapshotHandler,
		calculatorHandler: calculatorHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logging(rt.logger))
	r.Use(middleware.Metrics())
	r.Use(middleware.SecurityHeaders(&rt.cfg.Security))
	r.Use(middleware.CORS(&rt.cfg.CORS, rt.cfg.App.Environment, rt.logger))
	r.Use(rt.rateLimiter.Limit)

	// Liveness probe
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus metrics
	r.Handle("/metrics", promhttp.Handler())

	// Swagger documentation
	if rt.cfg.Server.EnableSwagger {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Clients
		r.Route("/clients", func(r chi.Router) {
			r.Get("/", rt.clientHandler.List)
			r.Post("/", rt.clientHandler.Create)
			r.Get("/{id}", rt.clientHandler.GetByID)
			r.Put("/{id}", rt.clientHandler.Update)
			r.Delete("/{id}", rt.clientHandler.Delete)
			r.Post("/{id}/authorized-persons", rt.clientHandler.AddAuthorizedPerson)
			r.Delete("/{id}/authorized-persons/{index}", rt.clientHandler.RemoveAuthorizedPerson)
			r.Post("/{id}/recompute-status", rt.clientHandler.RecomputeStatus)
		})

		// Jobs
		r.Route("/jobs", func(r chi.Router) {
			r.Get("/", rt.jobHandler.List)
			r.Post("/", rt.jobHandler.Create)
			r.Get("/{id}", rt.jobHandler.GetByID)
			r.Put("/{id}", rt.jobHandler.Update)
			r.Delete("/{id}", rt.jobHandler.Delete)
			r.Post("/{id}/files", rt.jobHandler.AddFile)
			r.Delete("/{id}/files/{fileId}", rt.jobHandler.RemoveFile)
			r.Put("/{id}/calculator", rt.jobHandler.SaveCalculator)
		})

		// Calculator
		r.Get("/calculator/defaults", rt.calculatorHandler.Defaults)
		r.Post("/calculator/preview", rt.calculatorHandler.Preview)

		// Events
		r.Route("/events", func(r chi.Router) {
			r.Get("/", rt.eventHandler.List)
			r.Post("/", rt.eventHandler.Create)
			r.Get("/{id}", rt.eventHandler.GetByID)
			r.Put("/{id}", rt.eventHandler.Update)
			r.Delete("/{id}", rt.eventHandler.Delete)
		})

		// Filter catalogs
		r.Get("/filters", rt.filterHandler.Get)
		r.Put("/filters", rt.filterHandler.Update)

		// Reports
		r.Route("/reports", func(r chi.Router) {
			r.Get("/history", rt.reportHandler.History)
			r.Get("/{type}", rt.reportHandler.Get)
			r.Post("/{type}/export", rt.reportHandler.Export)
		})
		r.Get("/stats", rt.reportHandler.Statistics)

		// Snapshot
		r.Get("/snapshot", rt.snapshotHandler.Export)
		r.Post("/snapshot", rt.snapshotHandler.Import)
	})

	return r
}
