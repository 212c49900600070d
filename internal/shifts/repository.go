package shifts

import (
	"context"

	"github.com/google/uuid"

	"github.com/autoshift-labs/autoshift-backend/pkg/db"
	"github.com/autoshift-labs/autoshift-backend/pkg/db/models"
)

type Repository struct {
	client *db.Client
}

func NewRepository(client *db.Client) *Repository {
	return &Repository{client: client}
}

func (r *Repository) ListShiftsByUser(ctx context.Context, userID uuid.UUID) ([]models.Shift, error) {
	var shifts []models.Shift
	err := r.client.DB().WithContext(ctx).
		Where("user_id = ?", userID).
		Order("day_of_week ASC, start_time ASC").
		Find(&shifts).Error
	if err != nil {
		return nil, err
	}
	return shifts, nil
}

func (r *Repository) ListShiftsByWarehouse(ctx context.Context, warehouseID uuid.UUID) ([]models.Shift, error) {
	var shifts []models.Shift
	err := r.client.DB().WithContext(ctx).
		Where("warehouse_id = ?", warehouseID).
		Order("day_of_week ASC, start_time ASC").
		Find(&shifts).Error
	if err != nil {
		return nil, err
	}
	return shifts, nil
}

func (r *Repository) GetShift(ctx context.Context, id uuid.UUID) (*models.Shift, error) {
	var shift models.Shift
	if err := r.client.DB().WithContext(ctx).Where("id = ?", id).First(&shift).Error; err != nil {
		return nil, err
	}
	return &shift, nil
}

func (r *Repository) DeleteShift(ctx context.Context, id uuid.UUID) error {
	return r.client.DB().WithContext(ctx).Where("id = ?", id).Delete(&models.Shift{}).Error
}
