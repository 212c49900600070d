package middleware

import (
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/autoshift-labs/autoshift-backend/pkg/logger"
)

// Logging emits one structured line per request with method, path, status,
// and duration.
func Logging(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			ctx := log.WithFields(r.Context(), map[string]any{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      ww.Status(),
				"duration_ms": time.Since(started).Milliseconds(),
				"bytes":       ww.BytesWritten(),
			})
			if ww.Status() >= http.StatusInternalServerError {
				log.Warn(ctx, "request completed with server error")
				return
			}
			log.Info(ctx, "request completed")
		})
	}
}
