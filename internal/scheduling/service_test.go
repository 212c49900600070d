package scheduling

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoshift-labs/autoshift-backend/internal/optimizer/rpc"
	"github.com/autoshift-labs/autoshift-backend/pkg/db/models"
	"github.com/autoshift-labs/autoshift-backend/pkg/enums"
	"github.com/autoshift-labs/autoshift-backend/pkg/errors"
	"github.com/autoshift-labs/autoshift-backend/pkg/logger"
)

type stubWorkerRepo struct {
	workers []models.User
	err     error
}

func (s *stubWorkerRepo) ListWorkersWithDetails(context.Context) ([]models.User, error) {
	return s.workers, s.err
}

type stubWarehouseRepo struct {
	warehouses []models.Warehouse
	err        error
}

func (s *stubWarehouseRepo) ListActiveWarehouses(context.Context, []uuid.UUID) ([]models.Warehouse, error) {
	return s.warehouses, s.err
}

type stubCargoRepo struct {
	loads []models.CargoLoad
	err   error
}

func (s *stubCargoRepo) ListLoadsInRange(context.Context, time.Time, time.Time, []uuid.UUID) ([]models.CargoLoad, error) {
	return s.loads, s.err
}

type savedShift struct {
	userID      uuid.UUID
	warehouseID uuid.UUID
	day         string
	startTime   string
	endTime     string
}

type stubShiftRepo struct {
	saved []savedShift
	err   error
}

func (s *stubShiftRepo) UpsertOptimizedShift(_ context.Context, userID, warehouseID uuid.UUID, day, startTime, endTime string) error {
	if s.err != nil {
		return s.err
	}
	s.saved = append(s.saved, savedShift{userID, warehouseID, day, startTime, endTime})
	return nil
}

type stubOptimizer struct {
	resp    *rpc.OptimizeShiftsResponse
	err     error
	lastReq *rpc.OptimizeShiftsRequest
}

func (s *stubOptimizer) OptimizeShifts(_ context.Context, req *rpc.OptimizeShiftsRequest) (*rpc.OptimizeShiftsResponse, error) {
	s.lastReq = req
	return s.resp, s.err
}

type fixture struct {
	workers    *stubWorkerRepo
	warehouses *stubWarehouseRepo
	cargo      *stubCargoRepo
	shifts     *stubShiftRepo
	optimizer  *stubOptimizer
	service    Service
}

func newFixture() *fixture {
	f := &fixture{
		workers:    &stubWorkerRepo{},
		warehouses: &stubWarehouseRepo{},
		cargo:      &stubCargoRepo{},
		shifts:     &stubShiftRepo{},
		optimizer:  &stubOptimizer{resp: &rpc.OptimizeShiftsResponse{Success: true}},
	}
	log := logger.New(logger.Options{ServiceName: "scheduling-test", Level: zerolog.Disabled, Output: io.Discard})
	f.service = NewService(f.workers, f.warehouses, f.cargo, f.shifts, f.optimizer, log, nil, 14)
	return f
}

func rosterWorker(id uuid.UUID) models.User {
	return models.User{
		ID:        id,
		Email:     fmt.Sprintf("%s@example.com", id),
		FirstName: "Test",
		LastName:  "Worker",
		Role:      enums.UserRoleWorker,
		Qualifications: []models.WorkerQualification{
			{UserID: id, QualificationType: enums.QualificationBasicWorker, Level: 1},
		},
	}
}

func activeWarehouse(id uuid.UUID) models.Warehouse {
	return models.Warehouse{ID: id, Name: "North", MinBasicWorkers: 1, IsActive: true}
}

// 2026-03-02 is a Monday.
var rangeStart = time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

func TestOptimizeRangeRejectsReversedRange(t *testing.T) {
	f := newFixture()
	end := rangeStart.AddDate(0, 0, -1)

	_, err := f.service.OptimizeRange(context.Background(), OptimizeRangeInput{StartDate: rangeStart, EndDate: &end})

	require.Error(t, err)
	typed := errors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, errors.CodeValidation, typed.Code())
	assert.Nil(t, f.optimizer.lastReq)
}

func TestOptimizeRangeRejectsOversizedRange(t *testing.T) {
	f := newFixture()
	end := rangeStart.AddDate(0, 0, 15)

	_, err := f.service.OptimizeRange(context.Background(), OptimizeRangeInput{StartDate: rangeStart, EndDate: &end})

	require.Error(t, err)
	typed := errors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, errors.CodeValidation, typed.Code())
}

func TestOptimizeRangeAcceptsFourteenDayDelta(t *testing.T) {
	f := newFixture()
	f.warehouses.warehouses = []models.Warehouse{activeWarehouse(uuid.New())}
	f.workers.workers = []models.User{rosterWorker(uuid.New())}
	end := rangeStart.AddDate(0, 0, 14)

	result, err := f.service.OptimizeRange(context.Background(), OptimizeRangeInput{StartDate: rangeStart, EndDate: &end})

	require.NoError(t, err)
	assert.True(t, result.Success)
	require.NotNil(t, f.optimizer.lastReq)
	assert.Len(t, f.optimizer.lastReq.Days, 7)
}

func TestOptimizeRangeDefaultsEndDateToStart(t *testing.T) {
	f := newFixture()
	f.warehouses.warehouses = []models.Warehouse{activeWarehouse(uuid.New())}
	f.workers.workers = []models.User{rosterWorker(uuid.New())}

	result, err := f.service.OptimizeRange(context.Background(), OptimizeRangeInput{StartDate: rangeStart})

	require.NoError(t, err)
	assert.True(t, result.Success)
	require.NotNil(t, f.optimizer.lastReq)
	assert.Equal(t, []string{"monday"}, f.optimizer.lastReq.Days)
}

func TestOptimizeRangeExpandsWeekOfDays(t *testing.T) {
	f := newFixture()
	f.warehouses.warehouses = []models.Warehouse{activeWarehouse(uuid.New())}
	f.workers.workers = []models.User{rosterWorker(uuid.New())}
	end := rangeStart.AddDate(0, 0, 9)

	_, err := f.service.OptimizeRange(context.Background(), OptimizeRangeInput{StartDate: rangeStart, EndDate: &end})

	require.NoError(t, err)
	require.NotNil(t, f.optimizer.lastReq)
	assert.Len(t, f.optimizer.lastReq.Days, 7, "day names repeat past one week")
	assert.Equal(t, "monday", f.optimizer.lastReq.Days[0])
	assert.Equal(t, "sunday", f.optimizer.lastReq.Days[6])
}

func TestOptimizeRangeWithoutWarehousesIsSoftFailure(t *testing.T) {
	f := newFixture()

	result, err := f.service.OptimizeRange(context.Background(), OptimizeRangeInput{StartDate: rangeStart})

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "no active warehouses")
	assert.Nil(t, f.optimizer.lastReq, "optimizer must not be called")
}

func TestOptimizeRangeWithoutWorkersIsSoftFailure(t *testing.T) {
	f := newFixture()
	f.warehouses.warehouses = []models.Warehouse{activeWarehouse(uuid.New())}

	result, err := f.service.OptimizeRange(context.Background(), OptimizeRangeInput{StartDate: rangeStart})

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "no workers")
	assert.Nil(t, f.optimizer.lastReq)
}

func TestOptimizeRangeSavesReturnedShifts(t *testing.T) {
	f := newFixture()
	workerID := uuid.New()
	warehouseID := uuid.New()
	f.warehouses.warehouses = []models.Warehouse{activeWarehouse(warehouseID)}
	f.workers.workers = []models.User{rosterWorker(workerID)}
	f.optimizer.resp = &rpc.OptimizeShiftsResponse{
		Success: true,
		Shifts: []rpc.ShiftPayload{
			{WorkerID: workerID.String(), WarehouseID: warehouseID.String(), Day: "monday", StartTime: "08:00", EndTime: "16:00"},
		},
		WarehouseStaffing: []rpc.WarehouseStaffingPayload{
			{WarehouseID: warehouseID.String(), Day: "monday", IsFullyStaffed: true},
		},
	}

	result, err := f.service.OptimizeRange(context.Background(), OptimizeRangeInput{StartDate: rangeStart})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, 1, result.ShiftsSaved)
	require.Len(t, f.shifts.saved, 1)
	assert.Equal(t, workerID, f.shifts.saved[0].userID)
	assert.Equal(t, "monday", f.shifts.saved[0].day)
	assert.Equal(t, "08:00", f.shifts.saved[0].startTime)
	require.Len(t, result.Staffing, 1)
	assert.True(t, result.Staffing[0].IsFullyStaffed)
}

func TestOptimizeRangeSkipsShiftsForUnknownReferences(t *testing.T) {
	f := newFixture()
	workerID := uuid.New()
	warehouseID := uuid.New()
	f.warehouses.warehouses = []models.Warehouse{activeWarehouse(warehouseID)}
	f.workers.workers = []models.User{rosterWorker(workerID)}
	f.optimizer.resp = &rpc.OptimizeShiftsResponse{
		Success: true,
		Shifts: []rpc.ShiftPayload{
			{WorkerID: uuid.NewString(), WarehouseID: warehouseID.String(), Day: "monday", StartTime: "08:00", EndTime: "16:00"},
			{WorkerID: workerID.String(), WarehouseID: uuid.NewString(), Day: "monday", StartTime: "08:00", EndTime: "16:00"},
			{WorkerID: workerID.String(), WarehouseID: warehouseID.String(), Day: "monday", StartTime: "08:00", EndTime: "16:00"},
		},
	}

	result, err := f.service.OptimizeRange(context.Background(), OptimizeRangeInput{StartDate: rangeStart})

	require.NoError(t, err)
	assert.Equal(t, 1, result.ShiftsSaved)
	assert.Len(t, f.shifts.saved, 1)
}

func TestOptimizeRangePropagatesOptimizerFailureResponse(t *testing.T) {
	f := newFixture()
	f.warehouses.warehouses = []models.Warehouse{activeWarehouse(uuid.New())}
	f.workers.workers = []models.User{rosterWorker(uuid.New())}
	f.optimizer.resp = &rpc.OptimizeShiftsResponse{Success: false, Message: "invalid day of week"}

	result, err := f.service.OptimizeRange(context.Background(), OptimizeRangeInput{StartDate: rangeStart})

	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "invalid day of week", result.Message)
	assert.Empty(t, f.shifts.saved)
}

func TestOptimizeRangeReturnsTransportErrors(t *testing.T) {
	f := newFixture()
	f.warehouses.warehouses = []models.Warehouse{activeWarehouse(uuid.New())}
	f.workers.workers = []models.User{rosterWorker(uuid.New())}
	f.optimizer.resp = nil
	f.optimizer.err = errors.New(errors.CodeDependency, "optimizer unreachable")

	_, err := f.service.OptimizeRange(context.Background(), OptimizeRangeInput{StartDate: rangeStart})

	require.Error(t, err)
	typed := errors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, errors.CodeDependency, typed.Code())
}

func TestOptimizeRangeToleratesSaveFailures(t *testing.T) {
	f := newFixture()
	workerID := uuid.New()
	warehouseID := uuid.New()
	f.warehouses.warehouses = []models.Warehouse{activeWarehouse(warehouseID)}
	f.workers.workers = []models.User{rosterWorker(workerID)}
	f.shifts.err = fmt.Errorf("disk full")
	f.optimizer.resp = &rpc.OptimizeShiftsResponse{
		Success: true,
		Shifts: []rpc.ShiftPayload{
			{WorkerID: workerID.String(), WarehouseID: warehouseID.String(), Day: "monday", StartTime: "08:00", EndTime: "16:00"},
		},
		WarehouseStaffing: []rpc.WarehouseStaffingPayload{
			{WarehouseID: warehouseID.String(), Day: "monday"},
		},
	}

	result, err := f.service.OptimizeRange(context.Background(), OptimizeRangeInput{StartDate: rangeStart})

	require.NoError(t, err, "write failures are logged, not fatal")
	assert.True(t, result.Success)
	assert.Equal(t, 0, result.ShiftsSaved)
	assert.Len(t, result.Staffing, 1)
}
