package warehouses

import (
	"context"
	stdErrors "errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/autoshift-labs/autoshift-backend/pkg/db/models"
	"github.com/autoshift-labs/autoshift-backend/pkg/errors"
	"github.com/autoshift-labs/autoshift-backend/pkg/logger"
)

// Service manages the warehouse roster the optimizer plans against.
type Service interface {
	Create(ctx context.Context, input CreateInput) (*models.Warehouse, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*models.Warehouse, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Warehouse, error)
	List(ctx context.Context, includeInactive bool) ([]models.Warehouse, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type CreateInput struct {
	Name            string
	Address         string
	Capacity        int
	MinWorkers      int
	MinBasicWorkers int
	MinDrivers      int
	MinEngineers    int
}

// UpdateInput carries partial updates; nil fields are left untouched.
type UpdateInput struct {
	Name            *string
	Address         *string
	Capacity        *int
	MinWorkers      *int
	MinBasicWorkers *int
	MinDrivers      *int
	MinEngineers    *int
	IsActive        *bool
}

type warehouseRepo interface {
	CreateWarehouse(ctx context.Context, warehouse *models.Warehouse) error
	SaveWarehouse(ctx context.Context, warehouse *models.Warehouse) error
	GetWarehouse(ctx context.Context, id uuid.UUID) (*models.Warehouse, error)
	ListWarehouses(ctx context.Context, includeInactive bool) ([]models.Warehouse, error)
}

type service struct {
	repo warehouseRepo
	log  *logger.Logger
}

func NewService(repo warehouseRepo, log *logger.Logger) Service {
	return &service{repo: repo, log: log}
}

func (s *service) Create(ctx context.Context, input CreateInput) (*models.Warehouse, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.New(errors.CodeValidation, "warehouse name is required")
	}
	if err := validateStaffing(input.Capacity, input.MinWorkers, input.MinBasicWorkers, input.MinDrivers, input.MinEngineers); err != nil {
		return nil, err
	}

	warehouse := &models.Warehouse{
		ID:              uuid.New(),
		Name:            name,
		Address:         strings.TrimSpace(input.Address),
		Capacity:        input.Capacity,
		MinWorkers:      input.MinWorkers,
		MinBasicWorkers: input.MinBasicWorkers,
		MinDrivers:      input.MinDrivers,
		MinEngineers:    input.MinEngineers,
		IsActive:        true,
	}
	if err := s.repo.CreateWarehouse(ctx, warehouse); err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "creating warehouse")
	}

	s.log.Info(s.log.WithWarehouseID(ctx, warehouse.ID.String()), "warehouse created")
	return warehouse, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*models.Warehouse, error) {
	warehouse, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, errors.New(errors.CodeValidation, "warehouse name is required")
		}
		warehouse.Name = name
	}
	if input.Address != nil {
		warehouse.Address = strings.TrimSpace(*input.Address)
	}
	if input.Capacity != nil {
		warehouse.Capacity = *input.Capacity
	}
	if input.MinWorkers != nil {
		warehouse.MinWorkers = *input.MinWorkers
	}
	if input.MinBasicWorkers != nil {
		warehouse.MinBasicWorkers = *input.MinBasicWorkers
	}
	if input.MinDrivers != nil {
		warehouse.MinDrivers = *input.MinDrivers
	}
	if input.MinEngineers != nil {
		warehouse.MinEngineers = *input.MinEngineers
	}
	if input.IsActive != nil {
		warehouse.IsActive = *input.IsActive
	}
	if err := validateStaffing(warehouse.Capacity, warehouse.MinWorkers, warehouse.MinBasicWorkers, warehouse.MinDrivers, warehouse.MinEngineers); err != nil {
		return nil, err
	}

	if err := s.repo.SaveWarehouse(ctx, warehouse); err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "updating warehouse")
	}
	return warehouse, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.Warehouse, error) {
	warehouse, err := s.repo.GetWarehouse(ctx, id)
	if err != nil {
		if stdErrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New(errors.CodeNotFound, "warehouse not found")
		}
		return nil, errors.Wrap(errors.CodeInternal, err, "loading warehouse")
	}
	return warehouse, nil
}

func (s *service) List(ctx context.Context, includeInactive bool) ([]models.Warehouse, error) {
	warehouses, err := s.repo.ListWarehouses(ctx, includeInactive)
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "listing warehouses")
	}
	return warehouses, nil
}

// Deactivate pulls a warehouse out of optimization runs without deleting its
// history.
func (s *service) Deactivate(ctx context.Context, id uuid.UUID) error {
	inactive := false
	_, err := s.Update(ctx, id, UpdateInput{IsActive: &inactive})
	return err
}

func validateStaffing(capacity, minWorkers, minBasic, minDrivers, minEngineers int) error {
	for _, v := range []int{capacity, minWorkers, minBasic, minDrivers, minEngineers} {
		if v < 0 {
			return errors.New(errors.CodeValidation, "staffing counts must not be negative")
		}
	}
	return nil
}
