package responses

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/autoshift-labs/autoshift-backend/pkg/errors"
	"github.com/autoshift-labs/autoshift-backend/pkg/logger"
)

// Envelope is the uniform success wrapper for every API response body.
type Envelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

// ErrorEnvelope is the uniform failure wrapper.
type ErrorEnvelope struct {
	Success bool      `json:"success"`
	Error   ErrorBody `json:"error"`
}

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// JSON writes a success envelope with the given status code.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Envelope{Success: true, Data: data})
}

// NoContent writes an empty 204 response.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Error maps a typed error onto its HTTP status and public message. Unknown
// error values become opaque 500s; the real cause goes to the log, never the
// client.
func Error(ctx context.Context, w http.ResponseWriter, log *logger.Logger, err error) {
	typed := errors.As(err)
	if typed == nil {
		typed = errors.Wrap(errors.CodeInternal, err, "unhandled error")
	}

	meta := errors.MetadataFor(typed.Code())
	if meta.HTTPStatus >= http.StatusInternalServerError {
		dump := errors.Dump(err)
		ctx = log.WithFields(ctx, map[string]any{
			"error_code":    dump.Code,
			"error_chain":   dump.Chain,
			"pg_code":       dump.PGCode,
			"pg_detail":     dump.PGDetail,
			"pg_message":    dump.PGMessage,
			"pg_table":      dump.PGTable,
			"pg_column":     dump.PGColumn,
			"pg_constraint": dump.PGConstraint,
		})
		log.Error(ctx, "request failed", err)
	} else {
		log.Warn(log.WithField(ctx, "error_code", string(typed.Code())), typed.Message())
	}

	body := ErrorBody{
		Code:    string(typed.Code()),
		Message: typed.Message(),
	}
	if body.Message == "" || meta.HTTPStatus >= http.StatusInternalServerError {
		body.Message = meta.PublicMessage
	}
	if meta.DetailsAllowed {
		body.Details = typed.Details()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(meta.HTTPStatus)
	_ = json.NewEncoder(w).Encode(ErrorEnvelope{Success: false, Error: body})
}
