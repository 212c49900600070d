package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/autoshift-labs/autoshift-backend/pkg/enums"
)

// WorkerQualification certifies a worker for one staffing category. Level is
// informational only; assignment never ranks by it.
type WorkerQualification struct {
	ID                uuid.UUID               `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID            uuid.UUID               `gorm:"column:user_id;type:uuid;not null"`
	QualificationType enums.QualificationType `gorm:"column:qualification_type;type:qualification_type;not null"`
	Level             int                     `gorm:"column:level;not null;default:1"`
	CreatedAt         time.Time               `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time               `gorm:"column:updated_at;autoUpdateTime"`
}
