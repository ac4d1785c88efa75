package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/olzhasq/newsletter-service/config"
	"github.com/olzhasq/newsletter-service/internal/email"
	"github.com/olzhasq/newsletter-service/internal/health"
	"github.com/olzhasq/newsletter-service/internal/infrastructure/postgres"
	ctxlog "github.com/olzhasq/newsletter-service/internal/log"
	"github.com/olzhasq/newsletter-service/internal/metrics"
	"github.com/olzhasq/newsletter-service/internal/monitor"
	httptransport "github.com/olzhasq/newsletter-service/internal/transport/http"
	"github.com/olzhasq/newsletter-service/internal/transport/http/handler"
	"github.com/olzhasq/newsletter-service/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := newLogger(cfg.Env, cfg.SlogLevel())

	if cfg.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL.Expose())
	if err != nil {
		stop()
		log.Fatalf("db: %v", err)
	}
	defer pool.Close()

	subscriberRepo := postgres.NewSubscriberRepository(pool)
	tokenRepo := postgres.NewTokenRepository(pool)

	sender := email.NewSender(
		cfg.Env,
		cfg.ResendAPIKey.Expose(),
		cfg.SenderEmail,
		time.Duration(cfg.EmailTimeoutSec)*time.Second,
		logger,
	)

	subscriptionUsecase := usecase.NewSubscriptionUsecase(subscriberRepo, tokenRepo, sender, cfg.ConfirmBaseURL)
	subscriptionHandler := handler.NewSubscriptionHandler(subscriptionUsecase, logger)

	metrics.Register()
	checker := health.NewChecker(pool, logger, prometheus.DefaultRegisterer)

	sweeper := monitor.NewPendingSweeper(subscriberRepo, logger, time.Duration(cfg.PendingStaleSec)*time.Second)
	if err := sweeper.Start(ctx, cfg.PendingSweepSpec); err != nil {
		stop()
		log.Fatalf("pending sweeper: %v", err)
	}

	srv := http.Server{
		Addr:    ":" + cfg.Port,
		Handler: httptransport.NewRouter(logger, subscriptionHandler),
	}

	metricsSrv := metrics.NewServer(":"+cfg.MetricsPort, checker)

	go func() {
		logger.Info("server started", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server: %v", err)
		}
	}()

	go func() {
		logger.Info("metrics server started", "port", cfg.MetricsPort)
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", "error", err)
		}
	}()

	<-ctx.Done()
	stop()
	logger.Info("shutting down...")

	sweeper.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", "error", err)
	}
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("metrics server shutdown", "error", err)
	}
}

func newLogger(env string, level slog.Level) *slog.Logger {
	var inner slog.Handler
	if env == "local" {
		inner = tint.NewHandler(os.Stdout, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	} else {
		inner = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: level,
		})
	}
	return slog.New(ctxlog.NewContextHandler(inner))
}
