package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoshift-labs/autoshift-backend/internal/optimizer/rpc"
	"github.com/autoshift-labs/autoshift-backend/pkg/config"
	"github.com/autoshift-labs/autoshift-backend/pkg/errors"
)

func newTestClient(baseURL string) *Client {
	return New(config.OptimizerConfig{BaseURL: baseURL, Timeout: 2 * time.Second})
}

func TestOptimizeShiftsRoundTrip(t *testing.T) {
	var captured rpc.OptimizeShiftsRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/optimize", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(rpc.OptimizeShiftsResponse{
			Success: true,
			Message: "scheduled 1 shifts",
			Shifts: []rpc.ShiftPayload{
				{WorkerID: "worker-1", WarehouseID: "wh-1", Day: "monday", StartTime: "08:00", EndTime: "16:00"},
			},
		})
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	resp, err := c.OptimizeShifts(context.Background(), &rpc.OptimizeShiftsRequest{
		Days: []string{"monday"},
	})

	require.NoError(t, err)
	assert.True(t, resp.Success)
	require.Len(t, resp.Shifts, 1)
	assert.Equal(t, "worker-1", resp.Shifts[0].WorkerID)
	assert.Equal(t, []string{"monday"}, captured.Days)
}

func TestOptimizeShiftsPassesThroughDomainFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(rpc.OptimizeShiftsResponse{Success: false, Message: "invalid day of week"})
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	resp, err := c.OptimizeShifts(context.Background(), &rpc.OptimizeShiftsRequest{})

	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "invalid day of week", resp.Message)
}

func TestOptimizeShiftsWrapsBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	c := newTestClient(server.URL)
	_, err := c.OptimizeShifts(context.Background(), &rpc.OptimizeShiftsRequest{})

	require.Error(t, err)
	typed := errors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, errors.CodeDependency, typed.Code())
}

func TestOptimizeShiftsWrapsConnectionFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	c := newTestClient(server.URL)
	_, err := c.OptimizeShifts(context.Background(), &rpc.OptimizeShiftsRequest{})

	require.Error(t, err)
	typed := errors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, errors.CodeDependency, typed.Code())
}

func TestOptimizeShiftsHonorsContextCancel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := newTestClient(server.URL)
	_, err := c.OptimizeShifts(ctx, &rpc.OptimizeShiftsRequest{})
	require.Error(t, err)
}
