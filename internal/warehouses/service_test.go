package warehouses

import (
	"context"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/autoshift-labs/autoshift-backend/pkg/db/models"
	"github.com/autoshift-labs/autoshift-backend/pkg/errors"
	"github.com/autoshift-labs/autoshift-backend/pkg/logger"
)

type stubWarehouseRepo struct {
	byID map[uuid.UUID]*models.Warehouse
}

func newStubWarehouseRepo() *stubWarehouseRepo {
	return &stubWarehouseRepo{byID: map[uuid.UUID]*models.Warehouse{}}
}

func (s *stubWarehouseRepo) CreateWarehouse(_ context.Context, warehouse *models.Warehouse) error {
	s.byID[warehouse.ID] = warehouse
	return nil
}

func (s *stubWarehouseRepo) SaveWarehouse(_ context.Context, warehouse *models.Warehouse) error {
	s.byID[warehouse.ID] = warehouse
	return nil
}

func (s *stubWarehouseRepo) GetWarehouse(_ context.Context, id uuid.UUID) (*models.Warehouse, error) {
	if warehouse, ok := s.byID[id]; ok {
		copied := *warehouse
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubWarehouseRepo) ListWarehouses(_ context.Context, includeInactive bool) ([]models.Warehouse, error) {
	var out []models.Warehouse
	for _, warehouse := range s.byID {
		if !includeInactive && !warehouse.IsActive {
			continue
		}
		out = append(out, *warehouse)
	}
	return out, nil
}

func newTestService(repo *stubWarehouseRepo) Service {
	log := logger.New(logger.Options{ServiceName: "warehouses-test", Level: zerolog.Disabled, Output: io.Discard})
	return NewService(repo, log)
}

func TestCreateWarehouse(t *testing.T) {
	repo := newStubWarehouseRepo()
	svc := newTestService(repo)

	warehouse, err := svc.Create(context.Background(), CreateInput{
		Name:            "  North Hub ",
		Address:         "1 Dock Road",
		Capacity:        40,
		MinBasicWorkers: 2,
		MinDrivers:      1,
	})

	require.NoError(t, err)
	assert.Equal(t, "North Hub", warehouse.Name)
	assert.True(t, warehouse.IsActive)
	assert.Contains(t, repo.byID, warehouse.ID)
}

func TestCreateWarehouseRequiresName(t *testing.T) {
	svc := newTestService(newStubWarehouseRepo())

	_, err := svc.Create(context.Background(), CreateInput{Name: "   "})

	require.Error(t, err)
	typed := errors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, errors.CodeValidation, typed.Code())
}

func TestCreateWarehouseRejectsNegativeMinimum(t *testing.T) {
	svc := newTestService(newStubWarehouseRepo())

	_, err := svc.Create(context.Background(), CreateInput{Name: "North", MinDrivers: -1})

	require.Error(t, err)
	typed := errors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, errors.CodeValidation, typed.Code())
}

func TestUpdateWarehouseAppliesPartialChanges(t *testing.T) {
	repo := newStubWarehouseRepo()
	svc := newTestService(repo)
	created, err := svc.Create(context.Background(), CreateInput{Name: "North", MinBasicWorkers: 2})
	require.NoError(t, err)

	newMin := 5
	updated, err := svc.Update(context.Background(), created.ID, UpdateInput{MinBasicWorkers: &newMin})

	require.NoError(t, err)
	assert.Equal(t, 5, updated.MinBasicWorkers)
	assert.Equal(t, "North", updated.Name, "untouched fields survive")
}

func TestUpdateMissingWarehouseIsNotFound(t *testing.T) {
	svc := newTestService(newStubWarehouseRepo())

	name := "Renamed"
	_, err := svc.Update(context.Background(), uuid.New(), UpdateInput{Name: &name})

	require.Error(t, err)
	typed := errors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, errors.CodeNotFound, typed.Code())
}

func TestDeactivateHidesWarehouseFromActiveList(t *testing.T) {
	repo := newStubWarehouseRepo()
	svc := newTestService(repo)
	created, err := svc.Create(context.Background(), CreateInput{Name: "North"})
	require.NoError(t, err)

	require.NoError(t, svc.Deactivate(context.Background(), created.ID))

	active, err := svc.List(context.Background(), false)
	require.NoError(t, err)
	assert.Empty(t, active)

	all, err := svc.List(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
