package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/autoshift-labs/autoshift-backend/internal/optimizer/rpc"
	"github.com/autoshift-labs/autoshift-backend/pkg/env"
	"github.com/autoshift-labs/autoshift-backend/pkg/logger"
	"github.com/autoshift-labs/autoshift-backend/pkg/metrics"
)

const shutdownGrace = 10 * time.Second

// The optimizer service is stateless: no database, no redis, just the
// planning engine behind one endpoint.
func main() {
	_ = godotenv.Load()

	log := logger.New(logger.Options{
		ServiceName: "shift-optimizer",
		Level:       logger.ParseLevel(env.Get("AUTOSHIFT_LOG_LEVEL", "info")),
	})
	ctx := context.Background()

	port := env.Get("AUTOSHIFT_OPTIMIZER_PORT", "50051")

	handler := rpc.NewHandler(log, metrics.NewOptimizerMetrics(prometheus.DefaultRegisterer))

	r := chi.NewRouter()
	r.Post("/v1/optimize", handler.OptimizeShifts)
	r.Get("/health/live", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info(log.WithField(ctx, "port", port), "optimizer service listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error(ctx, "optimizer service stopped", err)
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
	log.Info(ctx, "optimizer service stopped")
}
