package models

import (
	"time"

	"github.com/google/uuid"
)

// Warehouse holds the static staffing floor the optimizer starts from.
type Warehouse struct {
	ID              uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name            string    `gorm:"column:name;not null"`
	Address         string    `gorm:"column:address;not null"`
	Capacity        int       `gorm:"column:capacity;not null"`
	MinWorkers      int       `gorm:"column:min_workers;not null;default:0"`
	MinBasicWorkers int       `gorm:"column:min_basic_workers;not null;default:0"`
	MinDrivers      int       `gorm:"column:min_drivers;not null;default:0"`
	MinEngineers    int       `gorm:"column:min_engineers;not null;default:0"`
	IsActive        bool      `gorm:"column:is_active;not null"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
