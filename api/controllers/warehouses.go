package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/autoshift-labs/autoshift-backend/api/responses"
	"github.com/autoshift-labs/autoshift-backend/api/validators"
	"github.com/autoshift-labs/autoshift-backend/internal/warehouses"
	"github.com/autoshift-labs/autoshift-backend/pkg/logger"
)

type createWarehouseRequest struct {
	Name            string `json:"name" validate:"required"`
	Address         string `json:"address"`
	Capacity        int    `json:"capacity" validate:"min=0"`
	MinWorkers      int    `json:"min_workers" validate:"min=0"`
	MinBasicWorkers int    `json:"min_basic_workers" validate:"min=0"`
	MinDrivers      int    `json:"min_drivers" validate:"min=0"`
	MinEngineers    int    `json:"min_engineers" validate:"min=0"`
}

type updateWarehouseRequest struct {
	Name            *string `json:"name,omitempty"`
	Address         *string `json:"address,omitempty"`
	Capacity        *int    `json:"capacity,omitempty"`
	MinWorkers      *int    `json:"min_workers,omitempty"`
	MinBasicWorkers *int    `json:"min_basic_workers,omitempty"`
	MinDrivers      *int    `json:"min_drivers,omitempty"`
	MinEngineers    *int    `json:"min_engineers,omitempty"`
	IsActive        *bool   `json:"is_active,omitempty"`
}

func CreateWarehouse(svc warehouses.Service, log *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createWarehouseRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.Error(r.Context(), w, log, err)
			return
		}

		warehouse, err := svc.Create(r.Context(), warehouses.CreateInput{
			Name:            req.Name,
			Address:         req.Address,
			Capacity:        req.Capacity,
			MinWorkers:      req.MinWorkers,
			MinBasicWorkers: req.MinBasicWorkers,
			MinDrivers:      req.MinDrivers,
			MinEngineers:    req.MinEngineers,
		})
		if err != nil {
			responses.Error(r.Context(), w, log, err)
			return
		}
		responses.JSON(w, http.StatusCreated, warehouseView(warehouse))
	}
}

func UpdateWarehouse(svc warehouses.Service, log *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.UUIDParam(chi.URLParam(r, "id"), "warehouse id")
		if err != nil {
			responses.Error(r.Context(), w, log, err)
			return
		}

		var req updateWarehouseRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.Error(r.Context(), w, log, err)
			return
		}

		warehouse, err := svc.Update(r.Context(), id, warehouses.UpdateInput{
			Name:            req.Name,
			Address:         req.Address,
			Capacity:        req.Capacity,
			MinWorkers:      req.MinWorkers,
			MinBasicWorkers: req.MinBasicWorkers,
			MinDrivers:      req.MinDrivers,
			MinEngineers:    req.MinEngineers,
			IsActive:        req.IsActive,
		})
		if err != nil {
			responses.Error(r.Context(), w, log, err)
			return
		}
		responses.JSON(w, http.StatusOK, warehouseView(warehouse))
	}
}

func GetWarehouse(svc warehouses.Service, log *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.UUIDParam(chi.URLParam(r, "id"), "warehouse id")
		if err != nil {
			responses.Error(r.Context(), w, log, err)
			return
		}

		warehouse, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.Error(r.Context(), w, log, err)
			return
		}
		responses.JSON(w, http.StatusOK, warehouseView(warehouse))
	}
}

func ListWarehouses(svc warehouses.Service, log *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.List(r.Context(), validators.BoolQuery(r, "include_inactive"))
		if err != nil {
			responses.Error(r.Context(), w, log, err)
			return
		}
		responses.JSON(w, http.StatusOK, warehouseViews(list))
	}
}

func DeactivateWarehouse(svc warehouses.Service, log *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.UUIDParam(chi.URLParam(r, "id"), "warehouse id")
		if err != nil {
			responses.Error(r.Context(), w, log, err)
			return
		}

		if err := svc.Deactivate(r.Context(), id); err != nil {
			responses.Error(r.Context(), w, log, err)
			return
		}
		responses.NoContent(w)
	}
}
