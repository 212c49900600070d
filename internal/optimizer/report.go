package optimizer

import "github.com/autoshift-labs/autoshift-backend/pkg/enums"

// BuildStaffingReports flattens the requirement map into per warehouse-day
// staffing rows. A warehouse-day is fully staffed only when every category
// meets or exceeds its total requirement.
func BuildStaffingReports(days []enums.DayOfWeek, warehouses []Warehouse, reqs map[enums.DayOfWeek]map[string]*Requirement) []WarehouseStaffing {
	reports := make([]WarehouseStaffing, 0, len(days)*len(warehouses))
	for _, day := range days {
		for _, wh := range warehouses {
			req, ok := reqs[day][wh.ID]
			if !ok {
				continue
			}
			reports = append(reports, WarehouseStaffing{
				WarehouseID:           req.WarehouseID,
				WarehouseName:         req.WarehouseName,
				Day:                   day,
				RequiredBasicWorkers:  req.TotalBasicWorkers,
				ScheduledBasicWorkers: req.ScheduledBasicWorkers,
				RequiredDrivers:       req.TotalDrivers,
				ScheduledDrivers:      req.ScheduledDrivers,
				RequiredEngineers:     req.TotalEngineers,
				ScheduledEngineers:    req.ScheduledEngineers,
				IsFullyStaffed: req.ScheduledBasicWorkers >= req.TotalBasicWorkers &&
					req.ScheduledDrivers >= req.TotalDrivers &&
					req.ScheduledEngineers >= req.TotalEngineers,
			})
		}
	}
	return reports
}
