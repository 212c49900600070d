package controllers

import (
	"github.com/shopspring/decimal"

	"github.com/autoshift-labs/autoshift-backend/internal/auth"
	"github.com/autoshift-labs/autoshift-backend/pkg/db/models"
)

// View structs shape persisted rows into stable wire payloads.

type SessionView struct {
	Token string   `json:"token"`
	User  UserView `json:"user"`
}

type UserView struct {
	ID             string              `json:"id"`
	Email          string              `json:"email"`
	FirstName      string              `json:"first_name"`
	LastName       string              `json:"last_name"`
	PhoneNumber    *string             `json:"phone_number,omitempty"`
	Role           string              `json:"role"`
	Qualifications []QualificationView `json:"qualifications"`
	Preferences    []PreferenceView    `json:"preferences"`
}

type QualificationView struct {
	Type  string `json:"type"`
	Level int    `json:"level"`
}

type PreferenceView struct {
	WarehouseID string  `json:"warehouse_id"`
	Priority    int     `json:"priority"`
	Distance    float64 `json:"distance"`
}

type WarehouseView struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Address         string `json:"address"`
	Capacity        int    `json:"capacity"`
	MinWorkers      int    `json:"min_workers"`
	MinBasicWorkers int    `json:"min_basic_workers"`
	MinDrivers      int    `json:"min_drivers"`
	MinEngineers    int    `json:"min_engineers"`
	IsActive        bool   `json:"is_active"`
}

type CargoLoadView struct {
	ID                    string `json:"id"`
	WarehouseID           string `json:"warehouse_id"`
	Date                  string `json:"date"`
	TotalWeight           int    `json:"total_weight"`
	EstimatedBasicWorkers int    `json:"estimated_basic_workers"`
	EstimatedDrivers      int    `json:"estimated_drivers"`
	EstimatedEngineers    int    `json:"estimated_engineers"`
}

type CargoForecastView struct {
	ID                     string          `json:"id"`
	WarehouseID            string          `json:"warehouse_id"`
	Date                   string          `json:"date"`
	ForecastedWeight       int             `json:"forecasted_weight"`
	ForecastedBasicWorkers int             `json:"forecasted_basic_workers"`
	ForecastedDrivers      int             `json:"forecasted_drivers"`
	ForecastedEngineers    int             `json:"forecasted_engineers"`
	ConfidenceLevel        decimal.Decimal `json:"confidence_level"`
}

type ShiftView struct {
	ID          string `json:"id"`
	WorkerID    string `json:"worker_id"`
	WarehouseID string `json:"warehouse_id"`
	Day         string `json:"day"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	IsOptimized bool   `json:"is_optimized"`
}

type WorkerPageView struct {
	Workers    []UserView `json:"workers"`
	NextCursor string     `json:"next_cursor,omitempty"`
}

func sessionView(session *auth.Session) SessionView {
	return SessionView{
		Token: session.Token,
		User: UserView{
			ID:             session.UserID.String(),
			Email:          session.Email,
			FirstName:      session.FirstName,
			LastName:       session.LastName,
			Role:           session.Role.String(),
			Qualifications: []QualificationView{},
			Preferences:    []PreferenceView{},
		},
	}
}

func userView(user *models.User) UserView {
	view := UserView{
		ID:             user.ID.String(),
		Email:          user.Email,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		PhoneNumber:    user.PhoneNumber,
		Role:           user.Role.String(),
		Qualifications: make([]QualificationView, 0, len(user.Qualifications)),
		Preferences:    make([]PreferenceView, 0, len(user.Preferences)),
	}
	for _, qual := range user.Qualifications {
		view.Qualifications = append(view.Qualifications, QualificationView{
			Type:  qual.QualificationType.String(),
			Level: qual.Level,
		})
	}
	for _, pref := range user.Preferences {
		view.Preferences = append(view.Preferences, PreferenceView{
			WarehouseID: pref.WarehouseID.String(),
			Priority:    pref.Priority,
			Distance:    pref.Distance,
		})
	}
	return view
}

func warehouseView(warehouse *models.Warehouse) WarehouseView {
	return WarehouseView{
		ID:              warehouse.ID.String(),
		Name:            warehouse.Name,
		Address:         warehouse.Address,
		Capacity:        warehouse.Capacity,
		MinWorkers:      warehouse.MinWorkers,
		MinBasicWorkers: warehouse.MinBasicWorkers,
		MinDrivers:      warehouse.MinDrivers,
		MinEngineers:    warehouse.MinEngineers,
		IsActive:        warehouse.IsActive,
	}
}

func warehouseViews(warehouses []models.Warehouse) []WarehouseView {
	views := make([]WarehouseView, 0, len(warehouses))
	for i := range warehouses {
		views = append(views, warehouseView(&warehouses[i]))
	}
	return views
}

func cargoLoadView(load *models.CargoLoad) CargoLoadView {
	return CargoLoadView{
		ID:                    load.ID.String(),
		WarehouseID:           load.WarehouseID.String(),
		Date:                  load.Date.Format(dateLayout),
		TotalWeight:           load.TotalWeight,
		EstimatedBasicWorkers: load.EstimatedBasicWorkers,
		EstimatedDrivers:      load.EstimatedDrivers,
		EstimatedEngineers:    load.EstimatedEngineers,
	}
}

func cargoForecastView(forecast *models.CargoForecast) CargoForecastView {
	return CargoForecastView{
		ID:                     forecast.ID.String(),
		WarehouseID:            forecast.WarehouseID.String(),
		Date:                   forecast.Date.Format(dateLayout),
		ForecastedWeight:       forecast.ForecastedWeight,
		ForecastedBasicWorkers: forecast.ForecastedBasicWorkers,
		ForecastedDrivers:      forecast.ForecastedDrivers,
		ForecastedEngineers:    forecast.ForecastedEngineers,
		ConfidenceLevel:        forecast.ConfidenceLevel,
	}
}

func shiftViews(shifts []models.Shift) []ShiftView {
	views := make([]ShiftView, 0, len(shifts))
	for _, shift := range shifts {
		views = append(views, ShiftView{
			ID:          shift.ID.String(),
			WorkerID:    shift.UserID.String(),
			WarehouseID: shift.WarehouseID.String(),
			Day:         shift.DayOfWeek.String(),
			StartTime:   shift.StartTime,
			EndTime:     shift.EndTime,
			IsOptimized: shift.IsOptimized,
		})
	}
	return views
}

const dateLayout = "2006-01-02"
