package optimizer

import (
	"sort"
	"time"

	"github.com/autoshift-labs/autoshift-backend/pkg/enums"
)

// Sentinel rank for workers with no preference entry for a warehouse. They
// sort after every worker who expressed one.
const (
	unrankedPriority = 9999
	unrankedDistance = 9999.0
)

type shiftWindow struct {
	start time.Time
	end   time.Time
}

func (w shiftWindow) startClock() string { return w.start.Format("15:04") }
func (w shiftWindow) endClock() string   { return w.end.Format("15:04") }

func clock(hour, minute int) time.Time {
	return time.Date(0, time.January, 1, hour, minute, 0, 0, time.UTC)
}

// Engine schedules workers into shifts. It is stateless across runs; every
// Optimize call starts from an empty booking ledger.
type Engine struct {
	windows []shiftWindow
}

// NewEngine builds an engine with the standard shift windows. Only the day
// window is booked today; the evening window is declared for when split
// shifts land.
func NewEngine() *Engine {
	return &Engine{
		windows: []shiftWindow{
			{start: clock(8, 0), end: clock(16, 0)},
			{start: clock(16, 0), end: clock(0, 0)},
		},
	}
}

// bookingLedger tracks which workers already hold a shift on a given day.
// A booking at any warehouse blocks the worker for the whole day.
type bookingLedger map[enums.DayOfWeek]map[string]struct{}

func (l bookingLedger) booked(day enums.DayOfWeek, workerID string) bool {
	_, ok := l[day][workerID]
	return ok
}

func (l bookingLedger) book(day enums.DayOfWeek, workerID string) {
	byDay, ok := l[day]
	if !ok {
		byDay = make(map[string]struct{})
		l[day] = byDay
	}
	byDay[workerID] = struct{}{}
}

// Optimize assigns workers to shifts for the requested days. Pass one covers
// every warehouse's minimum staffing before pass two tops warehouses up to
// their cargo-driven totals, so scarce workers spread across sites instead of
// saturating the first one. Under-staffing is not an error; the staffing
// report carries the shortfall.
func (e *Engine) Optimize(workers []Worker, warehouses []Warehouse, loads []CargoLoad, days []enums.DayOfWeek) ([]ScheduledShift, []WarehouseStaffing) {
	reqs := CalculateRequirements(warehouses, loads, days)
	ledger := make(bookingLedger, len(days))
	shifts := make([]ScheduledShift, 0)

	for _, day := range days {
		for _, wh := range warehouses {
			req := reqs[day][wh.ID]
			ranked := rankForWarehouse(workers, wh.ID)
			for _, qual := range enums.QualificationTypes() {
				shifts = e.assign(shifts, ledger, ranked, day, wh.ID, qual, req.minFor(qual), req)
			}
		}
	}

	for _, day := range days {
		for _, wh := range warehouses {
			req := reqs[day][wh.ID]
			ranked := rankForWarehouse(workers, wh.ID)
			for _, qual := range enums.QualificationTypes() {
				needed := req.totalFor(qual) - req.scheduledFor(qual)
				if needed > 0 {
					shifts = e.assign(shifts, ledger, ranked, day, wh.ID, qual, needed, req)
				}
			}
		}
	}

	return shifts, BuildStaffingReports(days, warehouses, reqs)
}

// assign books up to count workers holding qual into the day window, walking
// candidates in preference order and skipping anyone already working that day.
func (e *Engine) assign(shifts []ScheduledShift, ledger bookingLedger, candidates []Worker, day enums.DayOfWeek, warehouseID string, qual enums.QualificationType, count int, req *Requirement) []ScheduledShift {
	if count <= 0 {
		return shifts
	}
	window := e.windows[0]
	assigned := 0
	for _, w := range candidates {
		if assigned >= count {
			break
		}
		if ledger.booked(day, w.ID) {
			continue
		}
		if !w.hasQualification(qual) {
			continue
		}
		shifts = append(shifts, ScheduledShift{
			WorkerID:    w.ID,
			WarehouseID: warehouseID,
			Day:         day,
			StartTime:   window.startClock(),
			EndTime:     window.endClock(),
		})
		ledger.book(day, w.ID)
		req.addScheduled(qual)
		assigned++
	}
	return shifts
}

type rankedWorker struct {
	worker   Worker
	priority int
	distance float64
}

// rankForWarehouse orders workers by their preference for a warehouse. The
// sort is stable so workers with identical ranks keep their input order.
func rankForWarehouse(workers []Worker, warehouseID string) []Worker {
	ranked := make([]rankedWorker, 0, len(workers))
	for _, w := range workers {
		rw := rankedWorker{worker: w, priority: unrankedPriority, distance: unrankedDistance}
		for _, pref := range w.Preferences {
			if pref.WarehouseID == warehouseID {
				rw.priority = pref.Priority
				rw.distance = pref.Distance
				break
			}
		}
		ranked = append(ranked, rw)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].priority != ranked[j].priority {
			return ranked[i].priority < ranked[j].priority
		}
		return ranked[i].distance < ranked[j].distance
	})
	out := make([]Worker, len(ranked))
	for i, rw := range ranked {
		out[i] = rw.worker
	}
	return out
}

func (r *Requirement) minFor(qual enums.QualificationType) int {
	switch qual {
	case enums.QualificationBasicWorker:
		return r.MinBasicWorkers
	case enums.QualificationCargoDriver:
		return r.MinDrivers
	case enums.QualificationEngineer:
		return r.MinEngineers
	}
	return 0
}

func (r *Requirement) totalFor(qual enums.QualificationType) int {
	switch qual {
	case enums.QualificationBasicWorker:
		return r.TotalBasicWorkers
	case enums.QualificationCargoDriver:
		return r.TotalDrivers
	case enums.QualificationEngineer:
		return r.TotalEngineers
	}
	return 0
}

func (r *Requirement) scheduledFor(qual enums.QualificationType) int {
	switch qual {
	case enums.QualificationBasicWorker:
		return r.ScheduledBasicWorkers
	case enums.QualificationCargoDriver:
		return r.ScheduledDrivers
	case enums.QualificationEngineer:
		return r.ScheduledEngineers
	}
	return 0
}

func (r *Requirement) addScheduled(qual enums.QualificationType) {
	switch qual {
	case enums.QualificationBasicWorker:
		r.ScheduledBasicWorkers++
	case enums.QualificationCargoDriver:
		r.ScheduledDrivers++
	case enums.QualificationEngineer:
		r.ScheduledEngineers++
	}
}
