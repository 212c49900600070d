package scheduling

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/multierr"

	"github.com/autoshift-labs/autoshift-backend/internal/optimizer/client"
	"github.com/autoshift-labs/autoshift-backend/internal/optimizer/rpc"
	"github.com/autoshift-labs/autoshift-backend/pkg/db/models"
	"github.com/autoshift-labs/autoshift-backend/pkg/errors"
	"github.com/autoshift-labs/autoshift-backend/pkg/logger"
	"github.com/autoshift-labs/autoshift-backend/pkg/metrics"
)

// Service drives optimization runs: it snapshots the roster, calls the
// optimizer service, and persists the shifts that come back.
type Service interface {
	OptimizeRange(ctx context.Context, input OptimizeRangeInput) (*Result, error)
}

// OptimizeRangeInput selects the date range and warehouses to plan for.
// EndDate defaults to StartDate; empty WarehouseIDs means every active
// warehouse.
type OptimizeRangeInput struct {
	StartDate    time.Time
	EndDate      *time.Time
	WarehouseIDs []uuid.UUID
}

// Result reports one run. Success=false with a message covers the soft
// failure modes (nothing to plan, optimizer rejected the snapshot); hard
// faults come back as errors instead.
type Result struct {
	Success     bool                           `json:"success"`
	Message     string                         `json:"message"`
	ShiftsSaved int                            `json:"shifts_saved"`
	Staffing    []rpc.WarehouseStaffingPayload `json:"warehouse_staffing"`
}

type workerRepo interface {
	ListWorkersWithDetails(ctx context.Context) ([]models.User, error)
}

type warehouseRepo interface {
	ListActiveWarehouses(ctx context.Context, ids []uuid.UUID) ([]models.Warehouse, error)
}

type cargoRepo interface {
	ListLoadsInRange(ctx context.Context, start, end time.Time, warehouseIDs []uuid.UUID) ([]models.CargoLoad, error)
}

type shiftRepo interface {
	UpsertOptimizedShift(ctx context.Context, userID, warehouseID uuid.UUID, day, startTime, endTime string) error
}

type service struct {
	workers      workerRepo
	warehouses   warehouseRepo
	cargo        cargoRepo
	shifts       shiftRepo
	optimizer    client.Optimizer
	log          *logger.Logger
	metrics      *metrics.OptimizerMetrics
	maxRangeDays int
}

func NewService(workers workerRepo, warehouses warehouseRepo, cargo cargoRepo, shifts shiftRepo, opt client.Optimizer, log *logger.Logger, m *metrics.OptimizerMetrics, maxRangeDays int) Service {
	if maxRangeDays <= 0 {
		maxRangeDays = 14
	}
	return &service{
		workers:      workers,
		warehouses:   warehouses,
		cargo:        cargo,
		shifts:       shifts,
		optimizer:    opt,
		log:          log,
		metrics:      m,
		maxRangeDays: maxRangeDays,
	}
}

func (s *service) OptimizeRange(ctx context.Context, input OptimizeRangeInput) (*Result, error) {
	started := time.Now()

	start := dateOnly(input.StartDate)
	end := start
	if input.EndDate != nil {
		end = dateOnly(*input.EndDate)
	}
	if end.Before(start) {
		return nil, errors.New(errors.CodeValidation, "end date must not be before start date")
	}
	if end.Sub(start) > time.Duration(s.maxRangeDays)*24*time.Hour {
		return nil, errors.New(errors.CodeValidation, fmt.Sprintf("date range exceeds %d days", s.maxRangeDays))
	}

	warehouses, err := s.warehouses.ListActiveWarehouses(ctx, input.WarehouseIDs)
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "listing warehouses")
	}
	if len(warehouses) == 0 {
		return &Result{Success: false, Message: "no active warehouses to optimize"}, nil
	}

	workers, err := s.workers.ListWorkersWithDetails(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "listing workers")
	}
	if len(workers) == 0 {
		return &Result{Success: false, Message: "no workers available for optimization"}, nil
	}

	warehouseIDs := make([]uuid.UUID, 0, len(warehouses))
	for _, wh := range warehouses {
		warehouseIDs = append(warehouseIDs, wh.ID)
	}
	loads, err := s.cargo.ListLoadsInRange(ctx, start, end, warehouseIDs)
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "listing cargo loads")
	}

	req := buildSnapshot(workers, warehouses, loads, expandDays(start, end))
	resp, err := s.optimizer.OptimizeShifts(ctx, req)
	if err != nil {
		s.metrics.ObserveRun("failure", time.Since(started))
		s.metrics.IncFailure("optimize_range")
		return nil, err
	}
	if !resp.Success {
		s.metrics.ObserveRun("failure", time.Since(started))
		s.metrics.IncFailure("optimize_range")
		return &Result{Success: false, Message: resp.Message, Staffing: resp.WarehouseStaffing}, nil
	}

	saved, saveErr := s.saveShifts(ctx, resp.Shifts, workers, warehouses)
	if saveErr != nil {
		s.log.Warn(s.log.WithField(ctx, "error", saveErr.Error()), "some optimized shifts failed to save")
	}

	s.metrics.ObserveRun("success", time.Since(started))
	s.metrics.IncSuccess("optimize_range")
	s.metrics.AddShifts(saved)

	ctx = s.log.WithFields(ctx, map[string]any{
		"start_date":   start.Format("2006-01-02"),
		"end_date":     end.Format("2006-01-02"),
		"shifts_saved": saved,
	})
	s.log.Info(ctx, "optimization run persisted")

	return &Result{
		Success:     true,
		Message:     fmt.Sprintf("optimization complete: saved %d shifts", saved),
		ShiftsSaved: saved,
		Staffing:    resp.WarehouseStaffing,
	}, nil
}

// saveShifts upserts each returned shift. Shifts referencing workers or
// warehouses outside the snapshot are logged and skipped rather than failing
// the run; individual write failures are collected for logging and do not
// abort the batch.
func (s *service) saveShifts(ctx context.Context, shifts []rpc.ShiftPayload, workers []models.User, warehouses []models.Warehouse) (int, error) {
	knownWorkers := make(map[string]struct{}, len(workers))
	for _, w := range workers {
		knownWorkers[w.ID.String()] = struct{}{}
	}
	knownWarehouses := make(map[string]struct{}, len(warehouses))
	for _, wh := range warehouses {
		knownWarehouses[wh.ID.String()] = struct{}{}
	}

	saved := 0
	var errs error
	for _, shift := range shifts {
		if _, ok := knownWorkers[shift.WorkerID]; !ok {
			s.log.Warn(s.log.WithWorkerID(ctx, shift.WorkerID), "skipping shift for unknown worker")
			continue
		}
		if _, ok := knownWarehouses[shift.WarehouseID]; !ok {
			s.log.Warn(s.log.WithWarehouseID(ctx, shift.WarehouseID), "skipping shift for unknown warehouse")
			continue
		}
		userID, err := uuid.Parse(shift.WorkerID)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("worker id %q: %w", shift.WorkerID, err))
			continue
		}
		warehouseID, err := uuid.Parse(shift.WarehouseID)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("warehouse id %q: %w", shift.WarehouseID, err))
			continue
		}
		if err := s.shifts.UpsertOptimizedShift(ctx, userID, warehouseID, shift.Day, shift.StartTime, shift.EndTime); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("shift for worker %s: %w", shift.WorkerID, err))
			continue
		}
		saved++
	}
	return saved, errs
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
