package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tallercr/workshop-api/docs"
	"github.com/tallercr/workshop-api/internal/config"
	"github.com/tallercr/workshop-api/internal/http/handler"
	"github.com/tallercr/workshop-api/internal/http/middleware"
	"github.com/tallercr/workshop-api/internal/http/router"
	"github.com/tallercr/workshop-api/internal/jobs"
	"github.com/tallercr/workshop-api/internal/logger"
	"github.com/tallercr/workshop-api/internal/service"
	"github.com/tallercr/workshop-api/internal/snapshot"
	"github.com/tallercr/workshop-api/internal/storage"
	"github.com/tallercr/workshop-api/internal/store"
	"go.uber.org/zap"
)

// @title Taller Workshop API
// @version 1.0
// @description Record keeping for a fabrication workshop: clients, jobs, calendar, pricing and reports

// @contact.name API Support
// @contact.email soporte@tallercr.dev

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewLogger(&cfg.Logging, &cfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Environment),
		zap.Int("port", cfg.App.Port),
	)

	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", cfg.App.Port)

	// Storage backend and persistence
	backend, err := storage.NewStorage(&cfg.Snapshot)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	log.Info("Storage initialized",
		zap.String("mode", cfg.Snapshot.StorageMode),
		zap.String("path", cfg.Snapshot.Path),
	)

	st := store.New()
	persister := snapshot.NewPersister(st, backend, log)
	if err := persister.Load(ctx); err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}

	// Services
	notifier := service.NewLogNotifier(log)
	thumbs := service.NewThumbnailFetcher(st, persister, cfg.Server.ThumbnailTimeoutDuration(), log)
	defer thumbs.Close()

	clientService := service.NewClientService(st, persister, notifier, log)
	jobService := service.NewJobService(st, persister, clientService, thumbs, log)
	eventService := service.NewEventService(st, persister, log)
	filterService := service.NewFilterService(st, persister, log)
	reportService := service.NewReportService(st, persister, log)
	snapshotService := service.NewSnapshotService(st, persister, log)

	// Middleware
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)

	// Handlers
	clientHandler := handler.NewClientHandler(clientService, log)
	jobHandler := handler.NewJobHandler(jobService, log)
	eventHandler := handler.NewEventHandler(eventService, log)
	filterHandler := handler.NewFilterHandler(filterService, log)
	reportHandler := handler.NewReportHandler(reportService, log)
	snapshotHandler := handler.NewSnapshotHandler(snapshotService, log)
	calculatorHandler := handler.NewCalculatorHandler(log)

	rt := router.NewRouter(
		cfg,
		log,
		rateLimiter,
		clientHandler,
		jobHandler,
		eventHandler,
		filterHandler,
		reportHandler,
		snapshotHandler,
		calculatorHandler,
	)

	// Background autosave
	var scheduler *jobs.Scheduler
	if cfg.Snapshot.AutosaveEnabled {
		scheduler = jobs.NewScheduler(log)
		if err := jobs.RegisterAutosaveJob(
			scheduler,
			persister,
			log,
			cfg.Snapshot.AutosaveSchedule,
			cfg.Snapshot.SaveTimeoutDuration(),
		); err != nil {
			log.Error("Failed to register autosave job", zap.Error(err))
		} else {
			scheduler.Start()
			log.Info("Scheduler started with snapshot autosave",
				zap.String("cron_expr", cfg.Snapshot.AutosaveSchedule),
				zap.Duration("timeout", cfg.Snapshot.SaveTimeoutDuration()),
			)
		}
	} else {
		log.Info("Snapshot autosave disabled")
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      rt.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		if scheduler != nil {
			ctx := scheduler.Stop()
			<-ctx.Done()
			log.Info("Scheduler stopped")
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}

		// Final save so nothing written since the last autosave is lost
		saveCtx, cancelSave := context.WithTimeout(context.Background(), cfg.Snapshot.SaveTimeoutDuration())
		defer cancelSave()
		if err := persister.Save(saveCtx); err != nil {
			log.Warn("Final snapshot save failed", zap.Error(err))
		}

		log.Info("Server stopped gracefully")
	}

	return nil
}
