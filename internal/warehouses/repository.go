package warehouses

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

func (r *Repository) CreateWarehouse(ctx context.Context, warehouse *models.Warehouse) error {
	return r.client.DB().WithContext(ctx).Create(warehouse).Error
}

func (r *Repository) SaveWarehouse(ctx context.Context, warehouse *models.Warehouse) error {
	return r.client.DB().WithContext(ctx).Save(warehouse).Error
}

func (r *Repository) GetWarehouse(ctx context.Context, id uuid.UUID) (*models.Warehouse, error) {
	var warehouse models.Warehouse
	if err := r.client.DB().WithContext(ctx).Where("id = ?", id).First(&warehouse).Error; err != nil {
		return nil, err
	}
	return &warehouse, nil
}

// WarehouseExists is the lightweight reference check other domains use
// before attaching records to a warehouse.
func (r *Repository) WarehouseExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := r.client.DB().WithContext(ctx).
		Model(&models.Warehouse{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) ListWarehouses(ctx context.Context, includeInactive bool) ([]models.Warehouse, error) {
	query := r.client.DB().WithContext(ctx).Order("created_at ASC")
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}
	var warehouses []models.Warehouse
	if err := query.Find(&warehouses).Error; err != nil {
		return nil, err
	}
	return warehouses, nil
}
