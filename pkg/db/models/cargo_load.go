package models

import (
	"time"

	"github.com/google/uuid"
)

// CargoLoad is the expected cargo volume for one warehouse on one calendar
// date. Estimated staff counts are denormalized on save from the weight bands.
type CargoLoad struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	WarehouseID uuid.UUID `gorm:"column:warehouse_id;type:uuid;not null;uniqueIndex:idx_cargo_load_warehouse_date"`
	Date        time.Time `gorm:"column:date;type:date;not null;uniqueIndex:idx_cargo_load_warehouse_date"`
	TotalWeight int       `gorm:"column:total_weight;not null;default:0"`

	EstimatedBasicWorkers int `gorm:"column:estimated_basic_workers;not null;default:0"`
	EstimatedDrivers      int `gorm:"column:estimated_drivers;not null;default:0"`
	EstimatedEngineers    int `gorm:"column:estimated_engineers;not null;default:0"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
