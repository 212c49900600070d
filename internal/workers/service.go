package workers

import (
	"context"
	stdErrors "errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/autoshift-labs/autoshift-backend/pkg/db/models"
	"github.com/autoshift-labs/autoshift-backend/pkg/enums"
	"github.com/autoshift-labs/autoshift-backend/pkg/errors"
	"github.com/autoshift-labs/autoshift-backend/pkg/logger"
	"github.com/autoshift-labs/autoshift-backend/pkg/pagination"
)

const (
	minQualificationLevel = 1
	maxQualificationLevel = 5
)

// Service manages worker profiles: the qualifications and warehouse
// preferences the optimizer ranks candidates by.
type Service interface {
	Get(ctx context.Context, id uuid.UUID) (*models.User, error)
	List(ctx context.Context, params pagination.Params) (*Page, error)
	SetQualifications(ctx context.Context, userID uuid.UUID, inputs []QualificationInput) (*models.User, error)
	SetPreferences(ctx context.Context, userID uuid.UUID, inputs []PreferenceInput) (*models.User, error)
}

// Page is one cursor-paginated slice of the worker roster.
type Page struct {
	Workers    []models.User
	NextCursor string
}

type QualificationInput struct {
	Type  enums.QualificationType
	Level int
}

type PreferenceInput struct {
	WarehouseID uuid.UUID
	Priority    int
	Distance    float64
}

type workerRepo interface {
	GetWorker(ctx context.Context, id uuid.UUID) (*models.User, error)
	ListWorkers(ctx context.Context, after *pagination.Cursor, limit int) ([]models.User, error)
	ReplaceQualifications(ctx context.Context, userID uuid.UUID, quals []models.WorkerQualification) error
	ReplacePreferences(ctx context.Context, userID uuid.UUID, prefs []models.WorkerWarehousePreference) error
}

type warehouseChecker interface {
	WarehouseExists(ctx context.Context, id uuid.UUID) (bool, error)
}

type service struct {
	repo       workerRepo
	warehouses warehouseChecker
	log        *logger.Logger
}

func NewService(repo workerRepo, warehouses warehouseChecker, log *logger.Logger) Service {
	return &service{repo: repo, warehouses: warehouses, log: log}
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*models.User, error) {
	worker, err := s.repo.GetWorker(ctx, id)
	if err != nil {
		if stdErrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New(errors.CodeNotFound, "worker not found")
		}
		return nil, errors.Wrap(errors.CodeInternal, err, "loading worker")
	}
	return worker, nil
}

func (s *service) List(ctx context.Context, params pagination.Params) (*Page, error) {
	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, errors.Wrap(errors.CodeValidation, err, "invalid cursor")
	}

	limit := pagination.NormalizeLimit(params.Limit)
	workers, err := s.repo.ListWorkers(ctx, cursor, pagination.LimitWithBuffer(params.Limit))
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "listing workers")
	}

	page := &Page{Workers: workers}
	if len(workers) > limit {
		page.Workers = workers[:limit]
		last := page.Workers[limit-1]
		page.NextCursor = pagination.EncodeCursor(pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.ID})
	}
	return page, nil
}

// SetQualifications replaces the worker's qualification set wholesale. The
// optimizer treats qualifications as capability flags, so replacing is
// simpler and safer than diffing.
func (s *service) SetQualifications(ctx context.Context, userID uuid.UUID, inputs []QualificationInput) (*models.User, error) {
	if _, err := s.Get(ctx, userID); err != nil {
		return nil, err
	}

	seen := make(map[enums.QualificationType]struct{}, len(inputs))
	quals := make([]models.WorkerQualification, 0, len(inputs))
	for _, input := range inputs {
		if !input.Type.IsValid() {
			return nil, errors.New(errors.CodeValidation, "invalid qualification type")
		}
		if input.Level < minQualificationLevel || input.Level > maxQualificationLevel {
			return nil, errors.New(errors.CodeValidation, "qualification level must be between 1 and 5")
		}
		if _, dup := seen[input.Type]; dup {
			return nil, errors.New(errors.CodeValidation, "duplicate qualification type")
		}
		seen[input.Type] = struct{}{}
		quals = append(quals, models.WorkerQualification{
			ID:                uuid.New(),
			UserID:            userID,
			QualificationType: input.Type,
			Level:             input.Level,
		})
	}

	if err := s.repo.ReplaceQualifications(ctx, userID, quals); err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "replacing qualifications")
	}

	s.log.Info(s.log.WithWorkerID(ctx, userID.String()), "worker qualifications updated")
	return s.Get(ctx, userID)
}

// SetPreferences replaces the worker's warehouse rankings wholesale.
func (s *service) SetPreferences(ctx context.Context, userID uuid.UUID, inputs []PreferenceInput) (*models.User, error) {
	if _, err := s.Get(ctx, userID); err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]struct{}, len(inputs))
	prefs := make([]models.WorkerWarehousePreference, 0, len(inputs))
	for _, input := range inputs {
		if input.Priority < 1 {
			return nil, errors.New(errors.CodeValidation, "preference priority must be at least 1")
		}
		if input.Distance < 0 {
			return nil, errors.New(errors.CodeValidation, "preference distance must not be negative")
		}
		if _, dup := seen[input.WarehouseID]; dup {
			return nil, errors.New(errors.CodeValidation, "duplicate warehouse preference")
		}
		exists, err := s.warehouses.WarehouseExists(ctx, input.WarehouseID)
		if err != nil {
			return nil, errors.Wrap(errors.CodeInternal, err, "checking warehouse")
		}
		if !exists {
			return nil, errors.New(errors.CodeNotFound, "warehouse not found")
		}
		seen[input.WarehouseID] = struct{}{}
		prefs = append(prefs, models.WorkerWarehousePreference{
			ID:          uuid.New(),
			UserID:      userID,
			WarehouseID: input.WarehouseID,
			Priority:    input.Priority,
			Distance:    input.Distance,
		})
	}

	if err := s.repo.ReplacePreferences(ctx, userID, prefs); err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "replacing preferences")
	}

	s.log.Info(s.log.WithWorkerID(ctx, userID.String()), "worker preferences updated")
	return s.Get(ctx, userID)
}
