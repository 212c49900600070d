package middleware

import (
	"fmt"
	"net/http"

	"github.com/autoshift-labs/autoshift-backend/api/responses"
	"github.com/autoshift-labs/autoshift-backend/pkg/errors"
	"github.com/autoshift-labs/autoshift-backend/pkg/logger"
)

// Recover converts handler panics into opaque 500 responses.
func Recover(log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					err := errors.Wrap(errors.CodeInternal, fmt.Errorf("panic: %v", rec), "request handler panicked")
					responses.Error(r.Context(), w, log, err)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
