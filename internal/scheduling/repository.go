package scheduling

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/autoshift-labs/autoshift-backend/pkg/db"
	"github.com/autoshift-labs/autoshift-backend/pkg/db/models"
	"github.com/autoshift-labs/autoshift-backend/pkg/enums"
)

// Repository backs the scheduling service with the shared database. One
// struct satisfies all four repo interfaces the service consumes.
type Repository struct {
	client *db.Client
}

func NewRepository(client *db.Client) *Repository {
	return &Repository{client: client}
}

// ListWorkersWithDetails loads every worker account with the qualifications
// and warehouse preferences the optimizer needs.
func (r *Repository) ListWorkersWithDetails(ctx context.Context) ([]models.User, error) {
	var workers []models.User
	err := r.client.DB().WithContext(ctx).
		Preload("Qualifications").
		Preload("Preferences").
		Where("role = ?", enums.UserRoleWorker).
		Order("created_at ASC").
		Find(&workers).Error
	if err != nil {
		return nil, err
	}
	return workers, nil
}

// ListActiveWarehouses returns active warehouses, optionally narrowed to the
// given ids.
func (r *Repository) ListActiveWarehouses(ctx context.Context, ids []uuid.UUID) ([]models.Warehouse, error) {
	query := r.client.DB().WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at ASC")
	if len(ids) > 0 {
		query = query.Where("id IN ?", ids)
	}
	var warehouses []models.Warehouse
	if err := query.Find(&warehouses).Error; err != nil {
		return nil, err
	}
	return warehouses, nil
}

// ListLoadsInRange returns cargo loads dated within [start, end] for the
// given warehouses.
func (r *Repository) ListLoadsInRange(ctx context.Context, start, end time.Time, warehouseIDs []uuid.UUID) ([]models.CargoLoad, error) {
	var loads []models.CargoLoad
	err := r.client.DB().WithContext(ctx).
		Where("date >= ? AND date <= ?", start, end).
		Where("warehouse_id IN ?", warehouseIDs).
		Order("date ASC").
		Find(&loads).Error
	if err != nil {
		return nil, err
	}
	return loads, nil
}

// UpsertOptimizedShift writes one optimizer booking, keyed by worker,
// warehouse, and weekday. Re-running a day's optimization overwrites the
// previous times instead of stacking duplicates.
func (r *Repository) UpsertOptimizedShift(ctx context.Context, userID, warehouseID uuid.UUID, day, startTime, endTime string) error {
	conn := r.client.DB().WithContext(ctx)

	var existing models.Shift
	err := conn.
		Where("user_id = ? AND warehouse_id = ? AND day_of_week = ?", userID, warehouseID, day).
		First(&existing).Error
	switch {
	case err == nil:
		return conn.Model(&existing).Updates(map[string]any{
			"start_time":   startTime,
			"end_time":     endTime,
			"is_optimized": true,
		}).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		return conn.Create(&models.Shift{
			ID:          uuid.New(),
			UserID:      userID,
			WarehouseID: warehouseID,
			DayOfWeek:   enums.DayOfWeek(day),
			StartTime:   startTime,
			EndTime:     endTime,
			IsOptimized: true,
		}).Error
	default:
		return err
	}
}
