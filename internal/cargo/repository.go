package cargo

import (
	"context"
	"time"

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

func (r *Repository) GetLoad(ctx context.Context, warehouseID uuid.UUID, date time.Time) (*models.CargoLoad, error) {
	var load models.CargoLoad
	err := r.client.DB().WithContext(ctx).
		Where("warehouse_id = ? AND date = ?", warehouseID, date).
		First(&load).Error
	if err != nil {
		return nil, err
	}
	return &load, nil
}

func (r *Repository) SaveLoad(ctx context.Context, load *models.CargoLoad) error {
	return r.client.DB().WithContext(ctx).Save(load).Error
}

func (r *Repository) ListLoads(ctx context.Context, warehouseID uuid.UUID, start, end time.Time) ([]models.CargoLoad, error) {
	var loads []models.CargoLoad
	err := r.client.DB().WithContext(ctx).
		Where("warehouse_id = ?", warehouseID).
		Where("date >= ? AND date <= ?", start, end).
		Order("date ASC").
		Find(&loads).Error
	if err != nil {
		return nil, err
	}
	return loads, nil
}

func (r *Repository) GetForecast(ctx context.Context, warehouseID uuid.UUID, date time.Time) (*models.CargoForecast, error) {
	var forecast models.CargoForecast
	err := r.client.DB().WithContext(ctx).
		Where("warehouse_id = ? AND date = ?", warehouseID, date).
		First(&forecast).Error
	if err != nil {
		return nil, err
	}
	return &forecast, nil
}

func (r *Repository) SaveForecast(ctx context.Context, forecast *models.CargoForecast) error {
	return r.client.DB().WithContext(ctx).Save(forecast).Error
}

func (r *Repository) ListForecasts(ctx context.Context, warehouseID uuid.UUID, start, end time.Time) ([]models.CargoForecast, error) {
	var forecasts []models.CargoForecast
	err := r.client.DB().WithContext(ctx).
		Where("warehouse_id = ?", warehouseID).
		Where("date >= ? AND date <= ?", start, end).
		Order("date ASC").
		Find(&forecasts).Error
	if err != nil {
		return nil, err
	}
	return forecasts, nil
}
