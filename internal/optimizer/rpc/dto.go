package rpc

// Wire contract for the optimizer service. The scheduler sends a full
// snapshot of the roster, warehouses, and cargo plan; the service answers
// with the shifts it booked plus a staffing report per warehouse-day.

type OptimizeShiftsRequest struct {
	Workers    []WorkerPayload    `json:"workers"`
	Warehouses []WarehousePayload `json:"warehouses"`
	CargoLoads []CargoLoadPayload `json:"cargo_loads"`
	Days       []string           `json:"days"`
}

type WorkerPayload struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name"`
	Qualifications []QualificationPayload `json:"qualifications"`
	Preferences    []PreferencePayload    `json:"preferences"`
}

type QualificationPayload struct {
	Type  string `json:"type"`
	Level int    `json:"level"`
}

type PreferencePayload struct {
	WarehouseID string  `json:"warehouse_id"`
	Priority    int     `json:"priority"`
	Distance    float64 `json:"distance"`
}

type WarehousePayload struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Capacity        int    `json:"capacity"`
	MinWorkers      int    `json:"min_workers"`
	MinBasicWorkers int    `json:"min_basic_workers"`
	MinDrivers      int    `json:"min_drivers"`
	MinEngineers    int    `json:"min_engineers"`
	IsActive        bool   `json:"is_active"`
}

type CargoLoadPayload struct {
	WarehouseID string `json:"warehouse_id"`
	Date        string `json:"date"`
	TotalWeight int    `json:"total_weight"`
}

type OptimizeShiftsResponse struct {
	Success           bool                       `json:"success"`
	Message           string                     `json:"message"`
	Shifts            []ShiftPayload             `json:"shifts"`
	WarehouseStaffing []WarehouseStaffingPayload `json:"warehouse_staffing"`
}

type ShiftPayload struct {
	WorkerID    string `json:"worker_id"`
	WarehouseID string `json:"warehouse_id"`
	Day         string `json:"day"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
}

type WarehouseStaffingPayload struct {
	WarehouseID           string `json:"warehouse_id"`
	WarehouseName         string `json:"warehouse_name"`
	Day                   string `json:"day"`
	RequiredBasicWorkers  int    `json:"required_basic_workers"`
	ScheduledBasicWorkers int    `json:"scheduled_basic_workers"`
	RequiredDrivers       int    `json:"required_drivers"`
	ScheduledDrivers      int    `json:"scheduled_drivers"`
	RequiredEngineers     int    `json:"required_engineers"`
	ScheduledEngineers    int    `json:"scheduled_engineers"`
	IsFullyStaffed        bool   `json:"is_fully_staffed"`
}
