package controllers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/autoshift-labs/autoshift-backend/api/responses"
	"github.com/autoshift-labs/autoshift-backend/pkg/logger"
)

// Pinger is any dependency that can answer a health probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthLive answers liveness probes; it carries no dependency checks.
func HealthLive() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

// HealthReady answers readiness probes by pinging each named dependency.
func HealthReady(log *logger.Logger, deps map[string]Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]string{}
		healthy := true
		for name, dep := range deps {
			if err := dep.Ping(r.Context()); err != nil {
				log.Error(log.WithField(r.Context(), "dependency", name), "readiness check failed", err)
				status[name] = "unreachable"
				healthy = false
				continue
			}
			status[name] = "ok"
		}
		code := http.StatusOK
		if !healthy {
			code = http.StatusServiceUnavailable
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(responses.Envelope{Success: healthy, Data: status})
	}
}
