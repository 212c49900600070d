package shifts

import (
	"context"
	stdErrors "errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/autoshift-labs/autoshift-backend/pkg/db/models"
	"github.com/autoshift-labs/autoshift-backend/pkg/enums"
	"github.com/autoshift-labs/autoshift-backend/pkg/errors"
	"github.com/autoshift-labs/autoshift-backend/pkg/logger"
)

// Actor is the authenticated caller a shift operation runs as.
type Actor struct {
	UserID uuid.UUID
	Role   enums.UserRole
}

func (a Actor) isAdmin() bool {
	return a.Role == enums.UserRoleAdmin
}

// Service reads and prunes the persisted schedule. Workers see their own
// shifts; warehouse views and deletions are admin operations.
type Service interface {
	ListForWorker(ctx context.Context, actor Actor, workerID uuid.UUID) ([]models.Shift, error)
	ListForWarehouse(ctx context.Context, actor Actor, warehouseID uuid.UUID) ([]models.Shift, error)
	Delete(ctx context.Context, actor Actor, shiftID uuid.UUID) error
}

type shiftRepo interface {
	ListShiftsByUser(ctx context.Context, userID uuid.UUID) ([]models.Shift, error)
	ListShiftsByWarehouse(ctx context.Context, warehouseID uuid.UUID) ([]models.Shift, error)
	GetShift(ctx context.Context, id uuid.UUID) (*models.Shift, error)
	DeleteShift(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo shiftRepo
	log  *logger.Logger
}

func NewService(repo shiftRepo, log *logger.Logger) Service {
	return &service{repo: repo, log: log}
}

func (s *service) ListForWorker(ctx context.Context, actor Actor, workerID uuid.UUID) ([]models.Shift, error) {
	if !actor.isAdmin() && actor.UserID != workerID {
		return nil, errors.New(errors.CodeForbidden, "cannot view another worker's shifts")
	}
	shifts, err := s.repo.ListShiftsByUser(ctx, workerID)
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "listing worker shifts")
	}
	return shifts, nil
}

func (s *service) ListForWarehouse(ctx context.Context, actor Actor, warehouseID uuid.UUID) ([]models.Shift, error) {
	if !actor.isAdmin() {
		return nil, errors.New(errors.CodeForbidden, "warehouse schedules are admin-only")
	}
	shifts, err := s.repo.ListShiftsByWarehouse(ctx, warehouseID)
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "listing warehouse shifts")
	}
	return shifts, nil
}

func (s *service) Delete(ctx context.Context, actor Actor, shiftID uuid.UUID) error {
	if !actor.isAdmin() {
		return errors.New(errors.CodeForbidden, "deleting shifts is admin-only")
	}

	shift, err := s.repo.GetShift(ctx, shiftID)
	if err != nil {
		if stdErrors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New(errors.CodeNotFound, "shift not found")
		}
		return errors.Wrap(errors.CodeInternal, err, "loading shift")
	}

	if err := s.repo.DeleteShift(ctx, shift.ID); err != nil {
		return errors.Wrap(errors.CodeInternal, err, "deleting shift")
	}

	ctx = s.log.WithFields(ctx, map[string]any{
		"shift_id":  shift.ID.String(),
		"worker_id": shift.UserID.String(),
	})
	s.log.Info(ctx, "shift deleted")
	return nil
}
