package models

import (
	"time"

	"github.com/google/uuid"
)

// WorkerWarehousePreference ranks a warehouse for a worker. Lower priority is
// more preferred; distance (km) breaks priority ties.
type WorkerWarehousePreference struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID      uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:idx_worker_warehouse_pref"`
	WarehouseID uuid.UUID `gorm:"column:warehouse_id;type:uuid;not null;uniqueIndex:idx_worker_warehouse_pref"`
	Priority    int       `gorm:"column:priority;not null"`
	Distance    float64   `gorm:"column:distance;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
