package rpc

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/autoshift-labs/autoshift-backend/internal/optimizer"
	"github.com/autoshift-labs/autoshift-backend/pkg/enums"
	"github.com/autoshift-labs/autoshift-backend/pkg/logger"
	"github.com/autoshift-labs/autoshift-backend/pkg/metrics"
)

// Handler serves the optimizer wire API. Every well-formed HTTP exchange
// answers 200; domain and input failures are carried in the body's success
// and message fields, so callers never have to tell transport faults from
// planning faults.
type Handler struct {
	log     *logger.Logger
	metrics *metrics.OptimizerMetrics
}

func NewHandler(log *logger.Logger, m *metrics.OptimizerMetrics) *Handler {
	return &Handler{log: log, metrics: m}
}

// OptimizeShifts runs one full optimization over the snapshot in the request
// body. Each call gets a fresh engine; nothing is remembered between runs.
func (h *Handler) OptimizeShifts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	started := time.Now()

	var req OptimizeShiftsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(ctx, w, started, fmt.Sprintf("invalid request body: %v", err), err)
		return
	}

	workers, warehouses, loads, days, err := decodeRequest(&req)
	if err != nil {
		h.fail(ctx, w, started, err.Error(), err)
		return
	}

	shifts, reports, err := h.run(workers, warehouses, loads, days)
	if err != nil {
		h.fail(ctx, w, started, fmt.Sprintf("optimization failed: %v", err), err)
		return
	}

	ctx = h.log.WithFields(ctx, map[string]any{
		"workers":    len(workers),
		"warehouses": len(warehouses),
		"days":       len(days),
		"shifts":     len(shifts),
	})
	h.log.Info(ctx, "optimization run complete")
	h.metrics.ObserveRun("success", time.Since(started))
	h.metrics.IncSuccess("optimize_shifts")
	h.metrics.AddShifts(len(shifts))

	writeJSON(w, OptimizeShiftsResponse{
		Success:           true,
		Message:           fmt.Sprintf("scheduled %d shifts", len(shifts)),
		Shifts:            encodeShifts(shifts),
		WarehouseStaffing: encodeStaffing(reports),
	})
}

// run isolates the engine behind a recover so a planner bug degrades into a
// failed response instead of killing the process.
func (h *Handler) run(workers []optimizer.Worker, warehouses []optimizer.Warehouse, loads []optimizer.CargoLoad, days []enums.DayOfWeek) (shifts []optimizer.ScheduledShift, reports []optimizer.WarehouseStaffing, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic: %v", rec)
		}
	}()
	shifts, reports = optimizer.NewEngine().Optimize(workers, warehouses, loads, days)
	return shifts, reports, nil
}

func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, started time.Time, msg string, err error) {
	h.log.Error(ctx, "optimization run rejected", err)
	h.metrics.ObserveRun("failure", time.Since(started))
	h.metrics.IncFailure("optimize_shifts")
	writeJSON(w, OptimizeShiftsResponse{
		Success:           false,
		Message:           msg,
		Shifts:            []ShiftPayload{},
		WarehouseStaffing: []WarehouseStaffingPayload{},
	})
}

func writeJSON(w http.ResponseWriter, body OptimizeShiftsResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(body)
}
