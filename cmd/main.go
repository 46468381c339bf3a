package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "campus_match/docs"
	"campus_match/internal/config"
	"campus_match/internal/handlers"
	"campus_match/internal/logger"
	"campus_match/internal/metrics"
	"campus_match/internal/repository"
	"campus_match/internal/repository/db"
	"campus_match/internal/server"
	"campus_match/internal/service"
	"campus_match/internal/storage"
)

const (
	shutdownTimeout = 10 * time.Second
	startupTimeout  = 30 * time.Second
)

// @title                       Campus Match API
// @version                     1.0
// @description                 Same-college interest matching: registration, sessions and ranked dashboards.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load("configs")
	if err != nil {
		logger.New(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	log := logger.New(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	sqlDB, err := db.InitDB(cfg.DBPath)
	if err != nil {
		log.Fatalw("failed to init sqlite", "path", cfg.DBPath, "err", err)
	}
	defer func() {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	store, uploadsDir, err := openStore(ctx, cfg.Uploads)
	if err != nil {
		cancel()
		log.Fatalw("failed to init upload storage", "backend", cfg.Uploads.Backend, "err", err)
	}

	// wire dependencies
	repos := repository.NewRepository(sqlDB)
	m := metrics.New()
	services := service.NewService(repos, service.Deps{
		Store:   store,
		Metrics: m,
		Log:     log,
		Auth:    service.AuthConfig{SigningKey: cfg.Auth.SigningKey, TokenTTL: cfg.Auth.TokenTTL},
	})

	n, err := services.Catalog.Seed(ctx, cfg.Interests)
	cancel()
	if err != nil {
		log.Fatalw("failed to seed interests", "err", err)
	}
	log.Infow("interest catalog ready", "inserted", n)

	apiHandler := handlers.NewHandler(services, log.Named("http"), m, handlers.Config{
		CookieName:     cfg.Auth.CookieName,
		CookieSecure:   cfg.Auth.CookieSecure,
		TokenTTL:       cfg.Auth.TokenTTL,
		LoginPerMinute: cfg.Login.AttemptsPerMinute,
		LoginBurst:     cfg.Login.Burst,
		UploadsDir:     uploadsDir,
	})

	srv := server.New(cfg.Port, apiHandler.InitRoutes())
	runHTTPServer(srv, log)

	waitForShutdown(srv, log)
}

// openStore picks the profile picture backend. The returned directory is
// non-empty only for the local backend, whose files are served statically.
func openStore(ctx context.Context, cfg config.UploadsConfig) (storage.Store, string, error) {
	if cfg.Backend == config.StorageS3 {
		s3, err := storage.NewS3(storage.S3Config{
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			UseSSL:    cfg.S3UseSSL,
			Bucket:    cfg.S3Bucket,
			Prefix:    cfg.S3Prefix,
		})
		if err != nil {
			return nil, "", err
		}
		if err := s3.EnsureBucket(ctx); err != nil {
			return nil, "", err
		}
		return s3, "", nil
	}

	local, err := storage.NewLocal(cfg.Dir)
	if err != nil {
		return nil, "", err
	}
	return local, local.Dir(), nil
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, log *logger.Logger) {
	go func() {
		log.Infow("http server listening", "addr", srv.Addr())
		if err := srv.Run(); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
