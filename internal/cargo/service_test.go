package cargo

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/autoshift-labs/autoshift-backend/pkg/db/models"
	"github.com/autoshift-labs/autoshift-backend/pkg/errors"
	"github.com/autoshift-labs/autoshift-backend/pkg/logger"
)

type loadKey struct {
	warehouseID uuid.UUID
	date        time.Time
}

type stubCargoRepo struct {
	loads     map[loadKey]*models.CargoLoad
	forecasts map[loadKey]*models.CargoForecast
}

func newStubCargoRepo() *stubCargoRepo {
	return &stubCargoRepo{
		loads:     map[loadKey]*models.CargoLoad{},
		forecasts: map[loadKey]*models.CargoForecast{},
	}
}

func (s *stubCargoRepo) GetLoad(_ context.Context, warehouseID uuid.UUID, date time.Time) (*models.CargoLoad, error) {
	if load, ok := s.loads[loadKey{warehouseID, date}]; ok {
		copied := *load
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubCargoRepo) SaveLoad(_ context.Context, load *models.CargoLoad) error {
	s.loads[loadKey{load.WarehouseID, load.Date}] = load
	return nil
}

func (s *stubCargoRepo) ListLoads(_ context.Context, warehouseID uuid.UUID, start, end time.Time) ([]models.CargoLoad, error) {
	var out []models.CargoLoad
	for key, load := range s.loads {
		if key.warehouseID == warehouseID && !key.date.Before(start) && !key.date.After(end) {
			out = append(out, *load)
		}
	}
	return out, nil
}

func (s *stubCargoRepo) GetForecast(_ context.Context, warehouseID uuid.UUID, date time.Time) (*models.CargoForecast, error) {
	if forecast, ok := s.forecasts[loadKey{warehouseID, date}]; ok {
		copied := *forecast
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubCargoRepo) SaveForecast(_ context.Context, forecast *models.CargoForecast) error {
	s.forecasts[loadKey{forecast.WarehouseID, forecast.Date}] = forecast
	return nil
}

func (s *stubCargoRepo) ListForecasts(_ context.Context, warehouseID uuid.UUID, start, end time.Time) ([]models.CargoForecast, error) {
	var out []models.CargoForecast
	for key, forecast := range s.forecasts {
		if key.warehouseID == warehouseID && !key.date.Before(start) && !key.date.After(end) {
			out = append(out, *forecast)
		}
	}
	return out, nil
}

type stubWarehouseChecker struct {
	known map[uuid.UUID]bool
}

func (s *stubWarehouseChecker) WarehouseExists(_ context.Context, id uuid.UUID) (bool, error) {
	return s.known[id], nil
}

func newTestService(repo *stubCargoRepo, warehouseID uuid.UUID) Service {
	log := logger.New(logger.Options{ServiceName: "cargo-test", Level: zerolog.Disabled, Output: io.Discard})
	checker := &stubWarehouseChecker{known: map[uuid.UUID]bool{warehouseID: true}}
	return NewService(repo, checker, log)
}

var loadDate = time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

func TestUpsertLoadComputesStaffEstimates(t *testing.T) {
	repo := newStubCargoRepo()
	warehouseID := uuid.New()
	svc := newTestService(repo, warehouseID)

	load, err := svc.UpsertLoad(context.Background(), LoadInput{
		WarehouseID: warehouseID,
		Date:        loadDate,
		TotalWeight: 6000,
	})

	require.NoError(t, err)
	assert.Equal(t, 6, load.EstimatedBasicWorkers)
	assert.Equal(t, 2, load.EstimatedDrivers)
	assert.Equal(t, 1, load.EstimatedEngineers)
}

func TestUpsertLoadReplacesSameWarehouseDate(t *testing.T) {
	repo := newStubCargoRepo()
	warehouseID := uuid.New()
	svc := newTestService(repo, warehouseID)

	first, err := svc.UpsertLoad(context.Background(), LoadInput{WarehouseID: warehouseID, Date: loadDate, TotalWeight: 1000})
	require.NoError(t, err)

	second, err := svc.UpsertLoad(context.Background(), LoadInput{WarehouseID: warehouseID, Date: loadDate, TotalWeight: 2500})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "same warehouse-date keeps one row")
	assert.Equal(t, 3, second.EstimatedBasicWorkers)
	assert.Len(t, repo.loads, 1)
}

func TestUpsertLoadNormalizesDateToMidnight(t *testing.T) {
	repo := newStubCargoRepo()
	warehouseID := uuid.New()
	svc := newTestService(repo, warehouseID)

	load, err := svc.UpsertLoad(context.Background(), LoadInput{
		WarehouseID: warehouseID,
		Date:        loadDate.Add(13*time.Hour + 45*time.Minute),
		TotalWeight: 500,
	})

	require.NoError(t, err)
	assert.Equal(t, loadDate, load.Date)
}

func TestUpsertLoadRejectsUnknownWarehouse(t *testing.T) {
	repo := newStubCargoRepo()
	svc := newTestService(repo, uuid.New())

	_, err := svc.UpsertLoad(context.Background(), LoadInput{WarehouseID: uuid.New(), Date: loadDate, TotalWeight: 500})

	require.Error(t, err)
	typed := errors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, errors.CodeNotFound, typed.Code())
}

func TestUpsertLoadRejectsNegativeWeight(t *testing.T) {
	warehouseID := uuid.New()
	svc := newTestService(newStubCargoRepo(), warehouseID)

	_, err := svc.UpsertLoad(context.Background(), LoadInput{WarehouseID: warehouseID, Date: loadDate, TotalWeight: -5})

	require.Error(t, err)
	typed := errors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, errors.CodeValidation, typed.Code())
}

func TestUpsertForecastValidatesConfidence(t *testing.T) {
	warehouseID := uuid.New()
	svc := newTestService(newStubCargoRepo(), warehouseID)

	_, err := svc.UpsertForecast(context.Background(), ForecastInput{
		WarehouseID:      warehouseID,
		Date:             loadDate,
		ForecastedWeight: 2000,
		ConfidenceLevel:  decimal.NewFromInt(120),
	})

	require.Error(t, err)
	typed := errors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, errors.CodeValidation, typed.Code())
}

func TestUpsertForecastComputesEstimates(t *testing.T) {
	repo := newStubCargoRepo()
	warehouseID := uuid.New()
	svc := newTestService(repo, warehouseID)

	forecast, err := svc.UpsertForecast(context.Background(), ForecastInput{
		WarehouseID:      warehouseID,
		Date:             loadDate,
		ForecastedWeight: 10500,
		ConfidenceLevel:  decimal.NewFromFloat(87.5),
	})

	require.NoError(t, err)
	assert.Equal(t, 11, forecast.ForecastedBasicWorkers)
	assert.Equal(t, 3, forecast.ForecastedDrivers)
	assert.Equal(t, 2, forecast.ForecastedEngineers)
	assert.True(t, forecast.ConfidenceLevel.Equal(decimal.NewFromFloat(87.5)))
}

func TestListLoadsRejectsReversedRange(t *testing.T) {
	warehouseID := uuid.New()
	svc := newTestService(newStubCargoRepo(), warehouseID)

	_, err := svc.ListLoads(context.Background(), warehouseID, loadDate, loadDate.AddDate(0, 0, -1))

	require.Error(t, err)
	typed := errors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, errors.CodeValidation, typed.Code())
}
