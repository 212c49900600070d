package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/autoshift-labs/autoshift-backend/pkg/enums"
)

// Shift is one worker's assignment to a warehouse on a named weekday. Times
// are stored as "HH:MM" wall-clock strings; an end of "00:00" means midnight.
type Shift struct {
	ID          uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID      uuid.UUID       `gorm:"column:user_id;type:uuid;not null;uniqueIndex:idx_shift_user_day_start"`
	WarehouseID uuid.UUID       `gorm:"column:warehouse_id;type:uuid;not null"`
	DayOfWeek   enums.DayOfWeek `gorm:"column:day_of_week;type:day_of_week;not null;uniqueIndex:idx_shift_user_day_start"`
	StartTime   string          `gorm:"column:start_time;not null;uniqueIndex:idx_shift_user_day_start"`
	EndTime     string          `gorm:"column:end_time;not null"`
	IsOptimized bool            `gorm:"column:is_optimized;not null;default:false"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
