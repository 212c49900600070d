package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/autoshift-labs/autoshift-backend/api/controllers"
	"github.com/autoshift-labs/autoshift-backend/api/routes"
	"github.com/autoshift-labs/autoshift-backend/internal/auth"
	"github.com/autoshift-labs/autoshift-backend/internal/cargo"
	optimizerclient "github.com/autoshift-labs/autoshift-backend/internal/optimizer/client"
	"github.com/autoshift-labs/autoshift-backend/internal/scheduling"
	"github.com/autoshift-labs/autoshift-backend/internal/shifts"
	"github.com/autoshift-labs/autoshift-backend/internal/warehouses"
	"github.com/autoshift-labs/autoshift-backend/internal/workers"
	"github.com/autoshift-labs/autoshift-backend/pkg/config"
	"github.com/autoshift-labs/autoshift-backend/pkg/db"
	"github.com/autoshift-labs/autoshift-backend/pkg/logger"
	"github.com/autoshift-labs/autoshift-backend/pkg/metrics"
	"github.com/autoshift-labs/autoshift-backend/pkg/migrate"
	"github.com/autoshift-labs/autoshift-backend/pkg/redis"
)

const shutdownGrace = 15 * time.Second

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(logger.Options{
		ServiceName: "autoshift-api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})
	ctx := context.Background()

	dbClient, err := db.New(ctx, cfg.DB, log)
	if err != nil {
		log.Error(ctx, "database bootstrap failed", err)
		os.Exit(1)
	}
	defer dbClient.Close()

	if err := migrate.MaybeRunDev(ctx, cfg, log, dbClient); err != nil {
		log.Error(ctx, "auto-migration failed", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		log.Error(ctx, "redis bootstrap failed", err)
		os.Exit(1)
	}
	defer redisClient.Close()

	optimizerMetrics := metrics.NewOptimizerMetrics(prometheus.DefaultRegisterer)

	schedulingRepo := scheduling.NewRepository(dbClient)
	warehouseRepo := warehouses.NewRepository(dbClient)

	deps := routes.Dependencies{
		Log:        log,
		Config:     cfg,
		Auth:       auth.NewService(auth.NewRepository(dbClient), cfg.JWT, cfg.Password, log),
		Workers:    workers.NewService(workers.NewRepository(dbClient), warehouseRepo, log),
		Warehouses: warehouses.NewService(warehouseRepo, log),
		Cargo:      cargo.NewService(cargo.NewRepository(dbClient), warehouseRepo, log),
		Shifts:     shifts.NewService(shifts.NewRepository(dbClient), log),
		Scheduling: scheduling.NewService(
			schedulingRepo,
			schedulingRepo,
			schedulingRepo,
			schedulingRepo,
			optimizerclient.New(cfg.Optimizer),
			log,
			optimizerMetrics,
			cfg.Optimizer.MaxRangeDays,
		),
		Idempotency: redisClient,
		HealthChecks: map[string]controllers.Pinger{
			"database": dbClient,
			"redis":    redisClient,
		},
	}

	server := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           routes.NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info(log.WithField(ctx, "port", cfg.App.Port), "api server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(ctx, "api server stopped", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownGrace)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "graceful shutdown failed", err)
	}
	log.Info(ctx, "api server stopped")
}
