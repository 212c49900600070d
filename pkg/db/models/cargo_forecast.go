package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CargoForecast is a projected cargo volume used for ahead-of-time staffing
// estimates. Confidence is a 0-100 percentage.
type CargoForecast struct {
	ID               uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	WarehouseID      uuid.UUID `gorm:"column:warehouse_id;type:uuid;not null;uniqueIndex:idx_cargo_forecast_warehouse_date"`
	Date             time.Time `gorm:"column:date;type:date;not null;uniqueIndex:idx_cargo_forecast_warehouse_date"`
	ForecastedWeight int       `gorm:"column:forecasted_weight;not null;default:0"`

	ForecastedBasicWorkers int `gorm:"column:forecasted_basic_workers;not null;default:0"`
	ForecastedDrivers      int `gorm:"column:forecasted_drivers;not null;default:0"`
	ForecastedEngineers    int `gorm:"column:forecasted_engineers;not null;default:0"`

	ConfidenceLevel decimal.Decimal `gorm:"column:confidence_level;type:numeric(5,2);not null;default:0"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
