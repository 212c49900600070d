package cargo

import (
	"context"
	stdErrors "errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/autoshift-labs/autoshift-backend/pkg/db/models"
	"github.com/autoshift-labs/autoshift-backend/pkg/errors"
	"github.com/autoshift-labs/autoshift-backend/pkg/logger"
)

// Kilograms of cargo one person of each category handles per shift. The
// denormalized estimates on loads and forecasts use the same bands the
// optimizer plans with.
const (
	kgPerBasicWorker = 1000
	kgPerDriver      = 5000
	kgPerEngineer    = 10000
)

var maxConfidence = decimal.NewFromInt(100)

// Service manages cargo loads and forecasts per warehouse-date.
type Service interface {
	UpsertLoad(ctx context.Context, input LoadInput) (*models.CargoLoad, error)
	ListLoads(ctx context.Context, warehouseID uuid.UUID, start, end time.Time) ([]models.CargoLoad, error)
	UpsertForecast(ctx context.Context, input ForecastInput) (*models.CargoForecast, error)
	ListForecasts(ctx context.Context, warehouseID uuid.UUID, start, end time.Time) ([]models.CargoForecast, error)
}

type LoadInput struct {
	WarehouseID uuid.UUID
	Date        time.Time
	TotalWeight int
}

type ForecastInput struct {
	WarehouseID      uuid.UUID
	Date             time.Time
	ForecastedWeight int
	ConfidenceLevel  decimal.Decimal
}

type warehouseChecker interface {
	WarehouseExists(ctx context.Context, id uuid.UUID) (bool, error)
}

type cargoRepo interface {
	GetLoad(ctx context.Context, warehouseID uuid.UUID, date time.Time) (*models.CargoLoad, error)
	SaveLoad(ctx context.Context, load *models.CargoLoad) error
	ListLoads(ctx context.Context, warehouseID uuid.UUID, start, end time.Time) ([]models.CargoLoad, error)
	GetForecast(ctx context.Context, warehouseID uuid.UUID, date time.Time) (*models.CargoForecast, error)
	SaveForecast(ctx context.Context, forecast *models.CargoForecast) error
	ListForecasts(ctx context.Context, warehouseID uuid.UUID, start, end time.Time) ([]models.CargoForecast, error)
}

type service struct {
	repo       cargoRepo
	warehouses warehouseChecker
	log        *logger.Logger
}

func NewService(repo cargoRepo, warehouses warehouseChecker, log *logger.Logger) Service {
	return &service{repo: repo, warehouses: warehouses, log: log}
}

// UpsertLoad records the expected cargo for a warehouse-date, recomputing the
// denormalized staff estimates from the weight. A second write for the same
// warehouse-date replaces the first.
func (s *service) UpsertLoad(ctx context.Context, input LoadInput) (*models.CargoLoad, error) {
	if input.TotalWeight < 0 {
		return nil, errors.New(errors.CodeValidation, "total weight must not be negative")
	}
	if err := s.checkWarehouse(ctx, input.WarehouseID); err != nil {
		return nil, err
	}

	date := dateOnly(input.Date)
	load, err := s.repo.GetLoad(ctx, input.WarehouseID, date)
	switch {
	case err == nil:
	case stdErrors.Is(err, gorm.ErrRecordNotFound):
		load = &models.CargoLoad{ID: uuid.New(), WarehouseID: input.WarehouseID, Date: date}
	default:
		return nil, errors.Wrap(errors.CodeInternal, err, "loading cargo load")
	}

	load.TotalWeight = input.TotalWeight
	load.EstimatedBasicWorkers = ceilDiv(input.TotalWeight, kgPerBasicWorker)
	load.EstimatedDrivers = ceilDiv(input.TotalWeight, kgPerDriver)
	load.EstimatedEngineers = ceilDiv(input.TotalWeight, kgPerEngineer)

	if err := s.repo.SaveLoad(ctx, load); err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "saving cargo load")
	}

	s.log.Info(s.log.WithWarehouseID(ctx, input.WarehouseID.String()), "cargo load saved")
	return load, nil
}

func (s *service) ListLoads(ctx context.Context, warehouseID uuid.UUID, start, end time.Time) ([]models.CargoLoad, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}
	loads, err := s.repo.ListLoads(ctx, warehouseID, dateOnly(start), dateOnly(end))
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "listing cargo loads")
	}
	return loads, nil
}

// UpsertForecast records a projected load. Forecast estimates use the same
// weight bands as real loads; confidence is a 0-100 percentage.
func (s *service) UpsertForecast(ctx context.Context, input ForecastInput) (*models.CargoForecast, error) {
	if input.ForecastedWeight < 0 {
		return nil, errors.New(errors.CodeValidation, "forecasted weight must not be negative")
	}
	if input.ConfidenceLevel.IsNegative() || input.ConfidenceLevel.GreaterThan(maxConfidence) {
		return nil, errors.New(errors.CodeValidation, "confidence level must be between 0 and 100")
	}
	if err := s.checkWarehouse(ctx, input.WarehouseID); err != nil {
		return nil, err
	}

	date := dateOnly(input.Date)
	forecast, err := s.repo.GetForecast(ctx, input.WarehouseID, date)
	switch {
	case err == nil:
	case stdErrors.Is(err, gorm.ErrRecordNotFound):
		forecast = &models.CargoForecast{ID: uuid.New(), WarehouseID: input.WarehouseID, Date: date}
	default:
		return nil, errors.Wrap(errors.CodeInternal, err, "loading cargo forecast")
	}

	forecast.ForecastedWeight = input.ForecastedWeight
	forecast.ForecastedBasicWorkers = ceilDiv(input.ForecastedWeight, kgPerBasicWorker)
	forecast.ForecastedDrivers = ceilDiv(input.ForecastedWeight, kgPerDriver)
	forecast.ForecastedEngineers = ceilDiv(input.ForecastedWeight, kgPerEngineer)
	forecast.ConfidenceLevel = input.ConfidenceLevel

	if err := s.repo.SaveForecast(ctx, forecast); err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "saving cargo forecast")
	}
	return forecast, nil
}

func (s *service) ListForecasts(ctx context.Context, warehouseID uuid.UUID, start, end time.Time) ([]models.CargoForecast, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}
	forecasts, err := s.repo.ListForecasts(ctx, warehouseID, dateOnly(start), dateOnly(end))
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "listing cargo forecasts")
	}
	return forecasts, nil
}

func (s *service) checkWarehouse(ctx context.Context, id uuid.UUID) error {
	exists, err := s.warehouses.WarehouseExists(ctx, id)
	if err != nil {
		return errors.Wrap(errors.CodeInternal, err, "checking warehouse")
	}
	if !exists {
		return errors.New(errors.CodeNotFound, "warehouse not found")
	}
	return nil
}

func validateRange(start, end time.Time) error {
	if dateOnly(end).Before(dateOnly(start)) {
		return errors.New(errors.CodeValidation, "end date must not be before start date")
	}
	return nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func ceilDiv(weight, perHead int) int {
	if perHead <= 0 {
		return 0
	}
	n := weight / perHead
	if weight%perHead != 0 {
		n++
	}
	return n
}
