package optimizer

import "github.com/autoshift-labs/autoshift-backend/pkg/enums"

// Kilograms of cargo one person of each category can handle per shift.
const (
	kgPerBasicWorker = 1000
	kgPerDriver      = 5000
	kgPerEngineer    = 10000
)

// Requirement is the staffing demand for one warehouse on one day. Min* is the
// baseline the first assignment pass must cover; Total* is the target the
// top-up pass works towards. The Scheduled* counters are filled in by the
// engine as shifts are booked.
type Requirement struct {
	WarehouseID   string
	WarehouseName string

	MinBasicWorkers int
	MinDrivers      int
	MinEngineers    int

	TotalBasicWorkers int
	TotalDrivers      int
	TotalEngineers    int

	ScheduledBasicWorkers int
	ScheduledDrivers      int
	ScheduledEngineers    int
}

// CalculateRequirements derives per-day, per-warehouse staffing demand.
// Every requested day gets an entry for every warehouse, seeded from the
// warehouse minimums. When several loads land on the same warehouse-day the
// heaviest one dictates the totals; loads are concurrent capacity demands,
// not additive work.
func CalculateRequirements(warehouses []Warehouse, loads []CargoLoad, days []enums.DayOfWeek) map[enums.DayOfWeek]map[string]*Requirement {
	reqs := make(map[enums.DayOfWeek]map[string]*Requirement, len(days))
	for _, day := range days {
		byWarehouse := make(map[string]*Requirement, len(warehouses))
		for _, wh := range warehouses {
			byWarehouse[wh.ID] = &Requirement{
				WarehouseID:       wh.ID,
				WarehouseName:     wh.Name,
				MinBasicWorkers:   wh.MinBasicWorkers,
				MinDrivers:        wh.MinDrivers,
				MinEngineers:      wh.MinEngineers,
				TotalBasicWorkers: wh.MinBasicWorkers,
				TotalDrivers:      wh.MinDrivers,
				TotalEngineers:    wh.MinEngineers,
			}
		}
		reqs[day] = byWarehouse
	}

	for _, load := range loads {
		day := enums.DayOfWeekFromTime(load.Date)
		req, ok := reqs[day][load.WarehouseID]
		if !ok {
			continue
		}
		basic := ceilDiv(load.TotalWeight, kgPerBasicWorker)
		drivers := ceilDiv(load.TotalWeight, kgPerDriver)
		engineers := ceilDiv(load.TotalWeight, kgPerEngineer)
		if basic < req.MinBasicWorkers {
			basic = req.MinBasicWorkers
		}
		if drivers < req.MinDrivers {
			drivers = req.MinDrivers
		}
		if engineers < req.MinEngineers {
			engineers = req.MinEngineers
		}
		if basic > req.TotalBasicWorkers {
			req.TotalBasicWorkers = basic
		}
		if drivers > req.TotalDrivers {
			req.TotalDrivers = drivers
		}
		if engineers > req.TotalEngineers {
			req.TotalEngineers = engineers
		}
	}

	return reqs
}

func ceilDiv(weight, perHead int) int {
	if perHead <= 0 {
		return 0
	}
	n := weight / perHead
	if weight%perHead != 0 {
		n++
	}
	return n
}
