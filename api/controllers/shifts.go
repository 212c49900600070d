package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/autoshift-labs/autoshift-backend/api/middleware"
	"github.com/autoshift-labs/autoshift-backend/api/responses"
	"github.com/autoshift-labs/autoshift-backend/api/validators"
	"github.com/autoshift-labs/autoshift-backend/internal/scheduling"
	"github.com/autoshift-labs/autoshift-backend/internal/shifts"
	"github.com/autoshift-labs/autoshift-backend/pkg/logger"
)

type optimizeShiftsRequest struct {
	StartDate    string   `json:"start_date" validate:"required"`
	EndDate      string   `json:"end_date,omitempty"`
	WarehouseIDs []string `json:"warehouse_ids,omitempty" validate:"omitempty,dive,uuid4"`
}

// OptimizeShifts triggers a scheduling run over the requested date range.
func OptimizeShifts(svc scheduling.Service, log *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req optimizeShiftsRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.Error(r.Context(), w, log, err)
			return
		}

		start, err := parseDateField(req.StartDate)
		if err != nil {
			responses.Error(r.Context(), w, log, err)
			return
		}

		input := scheduling.OptimizeRangeInput{StartDate: start}
		if req.EndDate != "" {
			end, err := parseDateField(req.EndDate)
			if err != nil {
				responses.Error(r.Context(), w, log, err)
				return
			}
			input.EndDate = &end
		}
		for _, raw := range req.WarehouseIDs {
			id, err := validators.UUIDParam(raw, "warehouse id")
			if err != nil {
				responses.Error(r.Context(), w, log, err)
				return
			}
			input.WarehouseIDs = append(input.WarehouseIDs, id)
		}

		result, err := svc.OptimizeRange(r.Context(), input)
		if err != nil {
			responses.Error(r.Context(), w, log, err)
			return
		}
		responses.JSON(w, http.StatusOK, result)
	}
}

// MyShifts lists the authenticated worker's own schedule.
func MyShifts(svc shifts.Service, log *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor := actorFrom(r)
		list, err := svc.ListForWorker(r.Context(), actor, actor.UserID)
		if err != nil {
			responses.Error(r.Context(), w, log, err)
			return
		}
		responses.JSON(w, http.StatusOK, shiftViews(list))
	}
}

// WorkerShifts lists a worker's schedule; access control lives in the service.
func WorkerShifts(svc shifts.Service, log *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		workerID, err := validators.UUIDParam(chi.URLParam(r, "id"), "worker id")
		if err != nil {
			responses.Error(r.Context(), w, log, err)
			return
		}

		list, err := svc.ListForWorker(r.Context(), actorFrom(r), workerID)
		if err != nil {
			responses.Error(r.Context(), w, log, err)
			return
		}
		responses.JSON(w, http.StatusOK, shiftViews(list))
	}
}

// WarehouseShifts lists a warehouse's full schedule.
func WarehouseShifts(svc shifts.Service, log *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		warehouseID, err := validators.UUIDParam(chi.URLParam(r, "id"), "warehouse id")
		if err != nil {
			responses.Error(r.Context(), w, log, err)
			return
		}

		list, err := svc.ListForWarehouse(r.Context(), actorFrom(r), warehouseID)
		if err != nil {
			responses.Error(r.Context(), w, log, err)
			return
		}
		responses.JSON(w, http.StatusOK, shiftViews(list))
	}
}

// DeleteShift removes a single shift from the schedule.
func DeleteShift(svc shifts.Service, log *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shiftID, err := validators.UUIDParam(chi.URLParam(r, "id"), "shift id")
		if err != nil {
			responses.Error(r.Context(), w, log, err)
			return
		}

		if err := svc.Delete(r.Context(), actorFrom(r), shiftID); err != nil {
			responses.Error(r.Context(), w, log, err)
			return
		}
		responses.NoContent(w)
	}
}

func actorFrom(r *http.Request) shifts.Actor {
	return shifts.Actor{
		UserID: middleware.UserIDFrom(r.Context()),
		Role:   middleware.UserRoleFrom(r.Context()),
	}
}
