package controllers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/autoshift-labs/autoshift-backend/api/responses"
	"github.com/autoshift-labs/autoshift-backend/api/validators"
	"github.com/autoshift-labs/autoshift-backend/internal/cargo"
	"github.com/autoshift-labs/autoshift-backend/pkg/errors"
	"github.com/autoshift-labs/autoshift-backend/pkg/logger"
)

type upsertLoadRequest struct {
	WarehouseID string `json:"warehouse_id" validate:"required,uuid4"`
	Date        string `json:"date" validate:"required"`
	TotalWeight int    `json:"total_weight" validate:"min=0"`
}

type upsertForecastRequest struct {
	WarehouseID      string          `json:"warehouse_id" validate:"required,uuid4"`
	Date             string          `json:"date" validate:"required"`
	ForecastedWeight int             `json:"forecasted_weight" validate:"min=0"`
	ConfidenceLevel  decimal.Decimal `json:"confidence_level"`
}

func UpsertCargoLoad(svc cargo.Service, log *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req upsertLoadRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.Error(r.Context(), w, log, err)
			return
		}

		warehouseID, err := validators.UUIDParam(req.WarehouseID, "warehouse id")
		if err != nil {
			responses.Error(r.Context(), w, log, err)
			return
		}
		date, err := parseDateField(req.Date)
		if err != nil {
			responses.Error(r.Context(), w, log, err)
			return
		}

		load, err := svc.UpsertLoad(r.Context(), cargo.LoadInput{
			WarehouseID: warehouseID,
			Date:        date,
			TotalWeight: req.TotalWeight,
		})
		if err != nil {
			responses.Error(r.Context(), w, log, err)
			return
		}
		responses.JSON(w, http.StatusOK, cargoLoadView(load))
	}
}

func ListCargoLoads(svc cargo.Service, log *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		warehouseID, err := validators.UUIDParam(chi.URLParam(r, "id"), "warehouse id")
		if err != nil {
			responses.Error(r.Context(), w, log, err)
			return
		}
		start, err := validators.DateQuery(r, "start_date")
		if err != nil {
			responses.Error(r.Context(), w, log, err)
			return
		}
		end, err := validators.DateQuery(r, "end_date")
		if err != nil {
			responses.Error(r.Context(), w, log, err)
			return
		}

		loads, err := svc.ListLoads(r.Context(), warehouseID, start, end)
		if err != nil {
			responses.Error(r.Context(), w, log, err)
			return
		}

		views := make([]CargoLoadView, 0, len(loads))
		for i := range loads {
			views = append(views, cargoLoadView(&loads[i]))
		}
		responses.JSON(w, http.StatusOK, views)
	}
}

func UpsertCargoForecast(svc cargo.Service, log *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req upsertForecastRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.Error(r.Context(), w, log, err)
			return
		}

		warehouseID, err := validators.UUIDParam(req.WarehouseID, "warehouse id")
		if err != nil {
			responses.Error(r.Context(), w, log, err)
			return
		}
		date, err := parseDateField(req.Date)
		if err != nil {
			responses.Error(r.Context(), w, log, err)
			return
		}

		forecast, err := svc.UpsertForecast(r.Context(), cargo.ForecastInput{
			WarehouseID:      warehouseID,
			Date:             date,
			ForecastedWeight: req.ForecastedWeight,
			ConfidenceLevel:  req.ConfidenceLevel,
		})
		if err != nil {
			responses.Error(r.Context(), w, log, err)
			return
		}
		responses.JSON(w, http.StatusOK, cargoForecastView(forecast))
	}
}

func ListCargoForecasts(svc cargo.Service, log *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		warehouseID, err := validators.UUIDParam(chi.URLParam(r, "id"), "warehouse id")
		if err != nil {
			responses.Error(r.Context(), w, log, err)
			return
		}
		start, err := validators.DateQuery(r, "start_date")
		if err != nil {
			responses.Error(r.Context(), w, log, err)
			return
		}
		end, err := validators.DateQuery(r, "end_date")
		if err != nil {
			responses.Error(r.Context(), w, log, err)
			return
		}

		forecasts, err := svc.ListForecasts(r.Context(), warehouseID, start, end)
		if err != nil {
			responses.Error(r.Context(), w, log, err)
			return
		}

		views := make([]CargoForecastView, 0, len(forecasts))
		for i := range forecasts {
			views = append(views, cargoForecastView(&forecasts[i]))
		}
		responses.JSON(w, http.StatusOK, views)
	}
}

func parseDateField(raw string) (time.Time, error) {
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, errors.New(errors.CodeValidation, "invalid date, expected YYYY-MM-DD")
	}
	return t, nil
}
