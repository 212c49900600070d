package responses

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoshift-labs/autoshift-backend/pkg/errors"
	"github.com/autoshift-labs/autoshift-backend/pkg/logger"
)

func newCapturedLogger(buf *bytes.Buffer) *logger.Logger {
	return logger.New(logger.Options{ServiceName: "responses-test", Level: zerolog.ErrorLevel, Output: buf})
}

func TestErrorLogsDriverDetailsButHidesThemFromClients(t *testing.T) {
	var buf bytes.Buffer
	log := newCapturedLogger(&buf)
	rec := httptest.NewRecorder()

	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "idx_cargo_load_warehouse_date", Message: "duplicate key"}
	Error(context.Background(), rec, log, errors.Wrap(errors.CodeInternal, pgErr, "creating cargo load"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body ErrorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "internal server error", body.Error.Message)
	assert.NotContains(t, rec.Body.String(), "23505", "driver details stay out of the response")

	logged := buf.String()
	assert.Contains(t, logged, "23505")
	assert.Contains(t, logged, "idx_cargo_load_warehouse_date")
}

func TestErrorEchoesClientFaultsWithoutErrorLogging(t *testing.T) {
	var buf bytes.Buffer
	log := newCapturedLogger(&buf)
	rec := httptest.NewRecorder()

	Error(context.Background(), rec, log, errors.New(errors.CodeValidation, "warehouse name is required"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body ErrorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "warehouse name is required", body.Error.Message)
	assert.Empty(t, buf.String(), "client faults log at warn, not error")
}
