package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/autoshift-labs/autoshift-backend/api/responses"
	"github.com/autoshift-labs/autoshift-backend/pkg/errors"
	"github.com/autoshift-labs/autoshift-backend/pkg/logger"
	"github.com/autoshift-labs/autoshift-backend/pkg/redis"
)

const (
	idempotencyHeader = "Idempotency-Key"
	idempotencyTTL    = 24 * time.Hour
)

// Idempotency requires an Idempotency-Key header on the wrapped route and
// claims it in Redis before the handler runs. Replays inside the TTL get a
// conflict instead of a second execution.
func Idempotency(store redis.IdempotencyStore, scope string, log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := strings.TrimSpace(r.Header.Get(idempotencyHeader))
			if key == "" {
				responses.Error(r.Context(), w, log, errors.New(errors.CodeValidation, "Idempotency-Key header is required"))
				return
			}

			claimed, err := store.SetNX(r.Context(), store.IdempotencyKey(scope, key), UserIDFrom(r.Context()).String(), idempotencyTTL)
			if err != nil {
				responses.Error(r.Context(), w, log, errors.Wrap(errors.CodeDependency, err, "claiming idempotency key"))
				return
			}
			if !claimed {
				responses.Error(r.Context(), w, log, errors.New(errors.CodeIdempotency, "request with this idempotency key was already accepted"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
