package rpc

import (
	"fmt"
	"time"

	"github.com/autoshift-labs/autoshift-backend/internal/optimizer"
	"github.com/autoshift-labs/autoshift-backend/pkg/enums"
)

const dateLayout = "2006-01-02"

// decodeRequest converts the wire payload into engine inputs, validating
// enums and dates as it goes. Any malformed field fails the whole request;
// the engine only ever sees well-typed data.
func decodeRequest(req *OptimizeShiftsRequest) ([]optimizer.Worker, []optimizer.Warehouse, []optimizer.CargoLoad, []enums.DayOfWeek, error) {
	workers := make([]optimizer.Worker, 0, len(req.Workers))
	for _, wp := range req.Workers {
		worker := optimizer.Worker{ID: wp.ID, Name: wp.Name}
		for _, qp := range wp.Qualifications {
			qual, err := enums.ParseQualificationType(qp.Type)
			if err != nil {
				return nil, nil, nil, nil, fmt.Errorf("worker %s: %w", wp.ID, err)
			}
			worker.Qualifications = append(worker.Qualifications, optimizer.Qualification{Type: qual, Level: qp.Level})
		}
		for _, pp := range wp.Preferences {
			worker.Preferences = append(worker.Preferences, optimizer.WarehousePreference{
				WarehouseID: pp.WarehouseID,
				Priority:    pp.Priority,
				Distance:    pp.Distance,
			})
		}
		workers = append(workers, worker)
	}

	warehouses := make([]optimizer.Warehouse, 0, len(req.Warehouses))
	for _, wp := range req.Warehouses {
		warehouses = append(warehouses, optimizer.Warehouse{
			ID:              wp.ID,
			Name:            wp.Name,
			Capacity:        wp.Capacity,
			MinWorkers:      wp.MinWorkers,
			MinBasicWorkers: wp.MinBasicWorkers,
			MinDrivers:      wp.MinDrivers,
			MinEngineers:    wp.MinEngineers,
			IsActive:        wp.IsActive,
		})
	}

	loads := make([]optimizer.CargoLoad, 0, len(req.CargoLoads))
	for _, lp := range req.CargoLoads {
		date, err := time.Parse(dateLayout, lp.Date)
		if err != nil {
			return nil, nil, nil, nil, fmt.Errorf("cargo load for warehouse %s: invalid date %q", lp.WarehouseID, lp.Date)
		}
		loads = append(loads, optimizer.CargoLoad{
			WarehouseID: lp.WarehouseID,
			Date:        date,
			TotalWeight: lp.TotalWeight,
		})
	}

	days := make([]enums.DayOfWeek, 0, len(req.Days))
	for _, raw := range req.Days {
		day, err := enums.ParseDayOfWeek(raw)
		if err != nil {
			return nil, nil, nil, nil, err
		}
		days = append(days, day)
	}

	return workers, warehouses, loads, days, nil
}

func encodeShifts(shifts []optimizer.ScheduledShift) []ShiftPayload {
	out := make([]ShiftPayload, 0, len(shifts))
	for _, s := range shifts {
		out = append(out, ShiftPayload{
			WorkerID:    s.WorkerID,
			WarehouseID: s.WarehouseID,
			Day:         s.Day.String(),
			StartTime:   s.StartTime,
			EndTime:     s.EndTime,
		})
	}
	return out
}

func encodeStaffing(reports []optimizer.WarehouseStaffing) []WarehouseStaffingPayload {
	out := make([]WarehouseStaffingPayload, 0, len(reports))
	for _, r := range reports {
		out = append(out, WarehouseStaffingPayload{
			WarehouseID:           r.WarehouseID,
			WarehouseName:         r.WarehouseName,
			Day:                   r.Day.String(),
			RequiredBasicWorkers:  r.RequiredBasicWorkers,
			ScheduledBasicWorkers: r.ScheduledBasicWorkers,
			RequiredDrivers:       r.RequiredDrivers,
			ScheduledDrivers:      r.ScheduledDrivers,
			RequiredEngineers:     r.RequiredEngineers,
			ScheduledEngineers:    r.ScheduledEngineers,
			IsFullyStaffed:        r.IsFullyStaffed,
		})
	}
	return out
}
