package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/autoshift-labs/autoshift-backend/pkg/enums"
)

// User is a platform account. Workers carry qualifications and warehouse
// preferences that feed the shift optimizer; admins manage the roster.
type User struct {
	ID           uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Email        string         `gorm:"column:email;not null;unique"`
	PasswordHash string         `gorm:"column:password_hash;not null"`
	FirstName    string         `gorm:"column:first_name;not null"`
	LastName     string         `gorm:"column:last_name;not null"`
	PhoneNumber  *string        `gorm:"column:phone_number"`
	Role         enums.UserRole `gorm:"column:role;type:user_role;not null;default:'worker'"`

	Qualifications []WorkerQualification       `gorm:"foreignKey:UserID"`
	Preferences    []WorkerWarehousePreference `gorm:"foreignKey:UserID"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// DisplayName renders the worker's name for staffing views.
func (u User) DisplayName() string {
	if u.FirstName == "" && u.LastName == "" {
		return u.Email
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
