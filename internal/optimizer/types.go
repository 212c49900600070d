package optimizer

import (
	"time"

	"github.com/autoshift-labs/autoshift-backend/pkg/enums"
)

// Worker is a roster entry the engine can schedule. Duplicate qualifications
// are tolerated and treated as "has capability".
type Worker struct {
	ID             string
	Name           string
	Qualifications []Qualification
	Preferences    []WarehousePreference
}

// Qualification marks a capability. Level is carried but never consulted when
// ranking candidates.
type Qualification struct {
	Type  enums.QualificationType
	Level int
}

// WarehousePreference ranks one warehouse for a worker: lower priority wins,
// distance breaks ties.
type WarehousePreference struct {
	WarehouseID string
	Priority    int
	Distance    float64
}

// Warehouse carries the static staffing minimums. Capacity is informational;
// the engine never enforces it.
type Warehouse struct {
	ID              string
	Name            string
	Capacity        int
	MinWorkers      int
	MinBasicWorkers int
	MinDrivers      int
	MinEngineers    int
	IsActive        bool
}

// CargoLoad is the cargo volume expected at a warehouse on a calendar date.
type CargoLoad struct {
	WarehouseID string
	Date        time.Time
	TotalWeight int
}

// ScheduledShift is one booking produced by the engine. Times are wall-clock
// "HH:MM" strings; a midnight end renders as "00:00".
type ScheduledShift struct {
	WorkerID    string
	WarehouseID string
	Day         enums.DayOfWeek
	StartTime   string
	EndTime     string
}

// WarehouseStaffing compares required against scheduled headcount for one
// warehouse-day.
type WarehouseStaffing struct {
	WarehouseID           string
	WarehouseName         string
	Day                   enums.DayOfWeek
	RequiredBasicWorkers  int
	ScheduledBasicWorkers int
	RequiredDrivers       int
	ScheduledDrivers      int
	RequiredEngineers     int
	ScheduledEngineers    int
	IsFullyStaffed        bool
}

func (w Worker) hasQualification(qual enums.QualificationType) bool {
	for _, q := range w.Qualifications {
		if q.Type == qual {
			return true
		}
	}
	return false
}
