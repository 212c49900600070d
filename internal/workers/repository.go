package workers

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/autoshift-labs/autoshift-backend/pkg/db"
	"github.com/autoshift-labs/autoshift-backend/pkg/db/models"
	"github.com/autoshift-labs/autoshift-backend/pkg/enums"
	"github.com/autoshift-labs/autoshift-backend/pkg/pagination"
)

type Repository struct {
	client *db.Client
}

func NewRepository(client *db.Client) *Repository {
	return &Repository{client: client}
}

func (r *Repository) GetWorker(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var worker models.User
	err := r.client.DB().WithContext(ctx).
		Preload("Qualifications").
		Preload("Preferences").
		Where("id = ? AND role = ?", id, enums.UserRoleWorker).
		First(&worker).Error
	if err != nil {
		return nil, err
	}
	return &worker, nil
}

func (r *Repository) ListWorkers(ctx context.Context, after *pagination.Cursor, limit int) ([]models.User, error) {
	query := r.client.DB().WithContext(ctx).
		Preload("Qualifications").
		Preload("Preferences").
		Where("role = ?", enums.UserRoleWorker).
		Order("created_at ASC, id ASC").
		Limit(limit)
	if after != nil {
		query = query.Where("(created_at, id) > (?, ?)", after.CreatedAt, after.ID)
	}
	var workers []models.User
	if err := query.Find(&workers).Error; err != nil {
		return nil, err
	}
	return workers, nil
}

// ReplaceQualifications swaps the worker's qualification rows in one
// transaction.
func (r *Repository) ReplaceQualifications(ctx context.Context, userID uuid.UUID, quals []models.WorkerQualification) error {
	return r.client.WithTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.WorkerQualification{}).Error; err != nil {
			return err
		}
		if len(quals) == 0 {
			return nil
		}
		return tx.Create(&quals).Error
	})
}

// ReplacePreferences swaps the worker's warehouse preference rows in one
// transaction.
func (r *Repository) ReplacePreferences(ctx context.Context, userID uuid.UUID, prefs []models.WorkerWarehousePreference) error {
	return r.client.WithTx(ctx, func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.WorkerWarehousePreference{}).Error; err != nil {
			return err
		}
		if len(prefs) == 0 {
			return nil
		}
		return tx.Create(&prefs).Error
	})
}
