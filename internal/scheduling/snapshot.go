package scheduling

import (
	"time"

	"github.com/autoshift-labs/autoshift-backend/internal/optimizer/rpc"
	"github.com/autoshift-labs/autoshift-backend/pkg/db/models"
	"github.com/autoshift-labs/autoshift-backend/pkg/enums"
)

// expandDays lists the distinct weekday names covered by the range, in
// calendar order. Ranges of a week or more cover all seven days.
func expandDays(start, end time.Time) []string {
	seen := make(map[enums.DayOfWeek]struct{}, 7)
	days := make([]string, 0, 7)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		day := enums.DayOfWeekFromTime(d)
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		days = append(days, day.String())
		if len(days) == 7 {
			break
		}
	}
	return days
}

// buildSnapshot flattens the persisted roster into the optimizer's wire
// request.
func buildSnapshot(workers []models.User, warehouses []models.Warehouse, loads []models.CargoLoad, days []string) *rpc.OptimizeShiftsRequest {
	req := &rpc.OptimizeShiftsRequest{
		Workers:    make([]rpc.WorkerPayload, 0, len(workers)),
		Warehouses: make([]rpc.WarehousePayload, 0, len(warehouses)),
		CargoLoads: make([]rpc.CargoLoadPayload, 0, len(loads)),
		Days:       days,
	}

	for _, worker := range workers {
		wp := rpc.WorkerPayload{
			ID:             worker.ID.String(),
			Name:           worker.DisplayName(),
			Qualifications: make([]rpc.QualificationPayload, 0, len(worker.Qualifications)),
			Preferences:    make([]rpc.PreferencePayload, 0, len(worker.Preferences)),
		}
		for _, qual := range worker.Qualifications {
			wp.Qualifications = append(wp.Qualifications, rpc.QualificationPayload{
				Type:  qual.QualificationType.String(),
				Level: qual.Level,
			})
		}
		for _, pref := range worker.Preferences {
			wp.Preferences = append(wp.Preferences, rpc.PreferencePayload{
				WarehouseID: pref.WarehouseID.String(),
				Priority:    pref.Priority,
				Distance:    pref.Distance,
			})
		}
		req.Workers = append(req.Workers, wp)
	}

	for _, wh := range warehouses {
		req.Warehouses = append(req.Warehouses, rpc.WarehousePayload{
			ID:              wh.ID.String(),
			Name:            wh.Name,
			Capacity:        wh.Capacity,
			MinWorkers:      wh.MinWorkers,
			MinBasicWorkers: wh.MinBasicWorkers,
			MinDrivers:      wh.MinDrivers,
			MinEngineers:    wh.MinEngineers,
			IsActive:        wh.IsActive,
		})
	}

	for _, load := range loads {
		req.CargoLoads = append(req.CargoLoads, rpc.CargoLoadPayload{
			WarehouseID: load.WarehouseID.String(),
			Date:        load.Date.Format("2006-01-02"),
			TotalWeight: load.TotalWeight,
		})
	}

	return req
}
