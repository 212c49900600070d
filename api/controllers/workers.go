package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/autoshift-labs/autoshift-backend/api/middleware"
	"github.com/autoshift-labs/autoshift-backend/api/responses"
	"github.com/autoshift-labs/autoshift-backend/api/validators"
	"github.com/autoshift-labs/autoshift-backend/internal/workers"
	"github.com/autoshift-labs/autoshift-backend/pkg/enums"
	"github.com/autoshift-labs/autoshift-backend/pkg/errors"
	"github.com/autoshift-labs/autoshift-backend/pkg/logger"
	"github.com/autoshift-labs/autoshift-backend/pkg/pagination"
)

type setQualificationsRequest struct {
	Qualifications []qualificationRequest `json:"qualifications" validate:"required,dive"`
}

type qualificationRequest struct {
	Type  string `json:"type" validate:"required"`
	Level int    `json:"level" validate:"required,min=1,max=5"`
}

type setPreferencesRequest struct {
	Preferences []preferenceRequest `json:"preferences" validate:"required,dive"`
}

type preferenceRequest struct {
	WarehouseID string  `json:"warehouse_id" validate:"required,uuid4"`
	Priority    int     `json:"priority" validate:"required,min=1"`
	Distance    float64 `json:"distance" validate:"min=0"`
}

// GetWorker returns one worker profile. Workers may only read their own.
func GetWorker(svc workers.Service, log *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		workerID, err := validators.UUIDParam(chi.URLParam(r, "id"), "worker id")
		if err != nil {
			responses.Error(r.Context(), w, log, err)
			return
		}
		if err := requireSelfOrAdmin(r, workerID); err != nil {
			responses.Error(r.Context(), w, log, err)
			return
		}

		worker, err := svc.Get(r.Context(), workerID)
		if err != nil {
			responses.Error(r.Context(), w, log, err)
			return
		}
		responses.JSON(w, http.StatusOK, userView(worker))
	}
}

// ListWorkers pages through the roster.
func ListWorkers(svc workers.Service, log *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := svc.List(r.Context(), pagination.Params{
			Limit:  validators.IntQuery(r, "limit"),
			Cursor: r.URL.Query().Get("cursor"),
		})
		if err != nil {
			responses.Error(r.Context(), w, log, err)
			return
		}

		view := WorkerPageView{Workers: make([]UserView, 0, len(page.Workers)), NextCursor: page.NextCursor}
		for i := range page.Workers {
			view.Workers = append(view.Workers, userView(&page.Workers[i]))
		}
		responses.JSON(w, http.StatusOK, view)
	}
}

// SetWorkerQualifications replaces a worker's qualification set.
func SetWorkerQualifications(svc workers.Service, log *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		workerID, err := validators.UUIDParam(chi.URLParam(r, "id"), "worker id")
		if err != nil {
			responses.Error(r.Context(), w, log, err)
			return
		}

		var req setQualificationsRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.Error(r.Context(), w, log, err)
			return
		}

		inputs := make([]workers.QualificationInput, 0, len(req.Qualifications))
		for _, qual := range req.Qualifications {
			inputs = append(inputs, workers.QualificationInput{
				Type:  enums.QualificationType(qual.Type),
				Level: qual.Level,
			})
		}

		worker, err := svc.SetQualifications(r.Context(), workerID, inputs)
		if err != nil {
			responses.Error(r.Context(), w, log, err)
			return
		}
		responses.JSON(w, http.StatusOK, userView(worker))
	}
}

// SetWorkerPreferences replaces a worker's warehouse rankings. Workers manage
// their own; admins can adjust anyone's.
func SetWorkerPreferences(svc workers.Service, log *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		workerID, err := validators.UUIDParam(chi.URLParam(r, "id"), "worker id")
		if err != nil {
			responses.Error(r.Context(), w, log, err)
			return
		}
		if err := requireSelfOrAdmin(r, workerID); err != nil {
			responses.Error(r.Context(), w, log, err)
			return
		}

		var req setPreferencesRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.Error(r.Context(), w, log, err)
			return
		}

		inputs := make([]workers.PreferenceInput, 0, len(req.Preferences))
		for _, pref := range req.Preferences {
			warehouseID, err := validators.UUIDParam(pref.WarehouseID, "warehouse id")
			if err != nil {
				responses.Error(r.Context(), w, log, err)
				return
			}
			inputs = append(inputs, workers.PreferenceInput{
				WarehouseID: warehouseID,
				Priority:    pref.Priority,
				Distance:    pref.Distance,
			})
		}

		worker, err := svc.SetPreferences(r.Context(), workerID, inputs)
		if err != nil {
			responses.Error(r.Context(), w, log, err)
			return
		}
		responses.JSON(w, http.StatusOK, userView(worker))
	}
}

func requireSelfOrAdmin(r *http.Request, workerID uuid.UUID) error {
	if middleware.UserRoleFrom(r.Context()) == enums.UserRoleAdmin {
		return nil
	}
	if middleware.UserIDFrom(r.Context()) == workerID {
		return nil
	}
	return errors.New(errors.CodeForbidden, "cannot access another worker's profile")
}
