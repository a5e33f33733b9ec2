package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"eventhub/config"
	_ "eventhub/docs"
	"eventhub/internal/adapters/email"
	deliveryhttp "eventhub/internal/delivery/http"
	"eventhub/internal/delivery/http/controllers"
	"eventhub/internal/delivery/http/middleware"
	"eventhub/internal/repository/postgres"
	"eventhub/internal/repository/rediscache"
	"eventhub/internal/services"
	"eventhub/migrations"
)

const (
	startupTimeout  = 5 * time.Second
	serviceTimeout  = 5 * time.Second
	shutdownTimeout = 10 * time.Second
)

// @title EventHub API
// @version 1.0
// @description Event management backend: event CRUD with conflict detection, attendee registration, notification log, and a keyword assistant.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}
	logger := config.NewLogger()

	startupCtx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.PingContext(startupCtx); err != nil {
		logger.Error("ping database", "err", err)
		os.Exit(1)
	}
	if err := migrations.Apply(startupCtx, db); err != nil {
		logger.Error("apply migrations", "err", err)
		os.Exit(1)
	}

	eventRepo := postgres.NewEventRepository(db)
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Error("parse redis url", "err", err)
			os.Exit(1)
		}
		eventRepo = rediscache.NewEventCache(eventRepo, redis.NewClient(opts), logger)
		logger.Info("event list cache enabled")
	}
	notificationRepo := postgres.NewNotificationRepository(db)

	mailer, err := email.NewMailer(cfg.Email, logger)
	if err != nil {
		logger.Error("create mailer", "err", err)
		os.Exit(1)
	}
	renderer := email.NewTemplateRenderer()

	eventSvc := services.NewEventService(eventRepo, serviceTimeout)
	registrationSvc := services.NewRegistrationService(eventRepo, serviceTimeout)
	notificationSvc := services.NewNotificationService(notificationRepo, eventRepo, mailer, renderer, logger, serviceTimeout)
	assistantSvc := services.NewAssistantService(eventRepo, cfg.AssistantDelay, serviceTimeout)

	mux := deliveryhttp.NewRouter(
		controllers.NewEventController(logger, eventSvc),
		controllers.NewRegistrationController(logger, registrationSvc),
		controllers.NewNotificationController(logger, notificationSvc),
		controllers.NewAssistantController(logger, assistantSvc),
	)
	handler := middleware.LoggingMiddleware(logger, middleware.CORS(cfg.AllowedOrigins, mux))

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)

	srvErr := make(chan error, 1)
	go func() {
		srvErr <- server.ListenAndServe()
	}()

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
		}
	case <-stopCtx.Done():
		logger.Info("shutdown signal received, stopping server")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server shutdown error", "err", err)
	}
	logger.Info("server stopped")
}
