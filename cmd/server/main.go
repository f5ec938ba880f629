package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"sentrydesk/internal/config"
	"sentrydesk/internal/email/noop"
	"sentrydesk/internal/email/ses"
	"sentrydesk/internal/handler"
	"sentrydesk/internal/port"
	"sentrydesk/internal/repository/postgres"
	"sentrydesk/internal/router"
	"sentrydesk/internal/service"
	s3storage "sentrydesk/internal/storage/s3"
	"sentrydesk/internal/suggest"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	tenantRepo := postgres.NewTenantRepo(db)
	userRepo := postgres.NewUserRepo(db)
	weekRepo := postgres.NewWeekRepo(db)
	dailyRepo := postgres.NewDailyReportRepo(db)
	themeRepo := postgres.NewThemeRepo(db)
	mediaRepo := postgres.NewMediaRepo(db)
	statsRepo := postgres.NewStatsRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize email sender
	var sender port.EmailSender
	switch cfg.Email.Provider {
	case "ses":
		sender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	default:
		sender = noop.NewNoopSender()
	}

	// Initialize services
	authSvc := service.NewAuthService(userRepo, tenantRepo, cfg.JWT)
	reportSvc := service.NewReportService(weekRepo, dailyRepo)
	suggestionSvc := service.NewSuggestionService(suggest.NewDefaultEngine())
	themeSvc := service.NewThemeService(themeRepo)
	mediaSvc := service.NewMediaService(mediaRepo, weekRepo, s3Client, &cfg.S3)
	statsSvc := service.NewStatsService(statsRepo)
	exportSvc := service.NewExportService(weekRepo, dailyRepo, themeRepo)
	tenantSvc := service.NewTenantService(tenantRepo)
	userSvc := service.NewUserService(userRepo)

	// Setup router
	r := router.Setup(authSvc, cfg.CORS.AllowedOrigins, router.Handlers{
		Health:  handler.NewHealthHandler(db),
		Auth:    handler.NewAuthHandler(authSvc),
		Week:    handler.NewWeekHandler(reportSvc),
		Suggest: handler.NewSuggestHandler(suggestionSvc),
		Theme:   handler.NewThemeHandler(themeSvc),
		Media:   handler.NewMediaHandler(mediaSvc),
		Export:  handler.NewExportHandler(exportSvc),
		Stats:   handler.NewStatsHandler(statsSvc),
		User:    handler.NewUserHandler(userSvc),
		Tenant:  handler.NewTenantHandler(tenantSvc),
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start the submission digest worker
	workerDone := make(chan struct{})
	if cfg.Digest.Enabled {
		worker := service.NewDigestWorker(dailyRepo, weekRepo, userRepo, sender, service.DigestWorkerConfig{
			PollInterval: time.Duration(cfg.Digest.PollIntervalSecs) * time.Second,
			BatchSize:    cfg.Digest.BatchSize,
			Concurrency:  cfg.Digest.Concurrency,
		})
		go func() {
			defer close(workerDone)
			worker.Start(ctx)
		}()
	} else {
		close(workerDone)
	}

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Printf("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	<-workerDone

	return nil
}
