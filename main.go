// File: /main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"teamsync-api/config"
	"teamsync-api/database"
	"teamsync-api/jobs"
	"teamsync-api/middleware"
	"teamsync-api/routes"
	"teamsync-api/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := setupLogger(cfg)
	logger.Info("Starting TeamSync API server", "environment", cfg.Environment)

	db, err := database.Initialize(cfg.DatabaseURL, cfg.DatabaseLogLevel)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(db, logger); err != nil {
		logger.Error("Failed to migrate database", "error", err)
		os.Exit(1)
	}
	if cfg.SeedData {
		if err := database.SeedData(context.Background(), db, logger); err != nil {
			logger.Warn("Failed to seed database", "error", err)
		}
	}

	gateway, err := newGateway(cfg)
	if err != nil {
		logger.Error("Failed to configure payment gateway", "error", err)
		os.Exit(1)
	}
	notifier := services.NewEmailService(cfg, logger)
	svc := routes.NewServices(db, cfg, notifier, gateway, logger)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	stop := make(chan struct{})
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.StructuredLogger(logger))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.SecurityHeaders())
	router.Use(routes.SetupCORS(cfg))

	routes.SetupRoutes(router, svc, cfg, func(ctx context.Context) error {
		return database.Ping(ctx, db)
	}, logger, stop)

	expirationJob := jobs.NewExpirationJob(cfg.JobInterval, logger,
		jobs.Task{Name: "pagamentos", Expirer: svc.Pagamento},
		jobs.Task{Name: "propostas", Expirer: svc.Proposta},
	)
	expirationJob.Start()

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Server is shutting down...")
	shutdown(server, expirationJob, db, stop, logger)
	logger.Info("Server exited")
}

// shutdown stops the jobs first, then drains requests, then closes the pool.
func shutdown(server *http.Server, job *jobs.ExpirationJob, db *gorm.DB, stop chan struct{}, logger *slog.Logger) {
	job.Stop()
	close(stop)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	if err := database.Close(db); err != nil {
		logger.Error("Error closing database", "error", err)
	}
}

func newGateway(cfg *config.Config) (services.PaymentGateway, error) {
	switch cfg.PaymentGateway {
	case "", "mock":
		return services.NewMockGateway(cfg.CardProcessingDelay, cfg.PaymentPublicKey), nil
	default:
		return nil, fmt.Errorf("unsupported payment gateway %q", cfg.PaymentGateway)
	}
}

func setupLogger(cfg *config.Config) *slog.Logger {
	var handler slog.Handler

	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	}

	return slog.New(handler)
}
