package optimizer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autoshift-labs/autoshift-backend/pkg/enums"
)

// 2026-03-02 is a Monday.
var monday = time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)

func TestCalculateRequirementsSeedsWarehouseMinimums(t *testing.T) {
	warehouses := []Warehouse{
		{ID: "wh-1", Name: "North", MinBasicWorkers: 2, MinDrivers: 1, MinEngineers: 1},
		{ID: "wh-2", Name: "South", MinBasicWorkers: 4, MinDrivers: 2, MinEngineers: 0},
	}
	days := []enums.DayOfWeek{enums.Monday, enums.Tuesday}

	reqs := CalculateRequirements(warehouses, nil, days)

	require.Len(t, reqs, 2)
	for _, day := range days {
		require.Len(t, reqs[day], 2)
	}
	north := reqs[enums.Tuesday]["wh-1"]
	assert.Equal(t, 2, north.MinBasicWorkers)
	assert.Equal(t, 2, north.TotalBasicWorkers)
	assert.Equal(t, 1, north.TotalDrivers)
	assert.Equal(t, 1, north.TotalEngineers)
	assert.Equal(t, 0, north.ScheduledBasicWorkers)

	south := reqs[enums.Monday]["wh-2"]
	assert.Equal(t, "South", south.WarehouseName)
	assert.Equal(t, 0, south.TotalEngineers)
}

func TestCalculateRequirementsDerivesHeadcountFromWeight(t *testing.T) {
	warehouses := []Warehouse{{ID: "wh-1", Name: "North"}}
	loads := []CargoLoad{{WarehouseID: "wh-1", Date: monday, TotalWeight: 6000}}

	reqs := CalculateRequirements(warehouses, loads, []enums.DayOfWeek{enums.Monday})

	req := reqs[enums.Monday]["wh-1"]
	assert.Equal(t, 6, req.TotalBasicWorkers)
	assert.Equal(t, 2, req.TotalDrivers)
	assert.Equal(t, 1, req.TotalEngineers)
}

func TestCalculateRequirementsRoundsPartialHeadsUp(t *testing.T) {
	warehouses := []Warehouse{{ID: "wh-1", Name: "North"}}
	loads := []CargoLoad{{WarehouseID: "wh-1", Date: monday, TotalWeight: 1001}}

	reqs := CalculateRequirements(warehouses, loads, []enums.DayOfWeek{enums.Monday})

	req := reqs[enums.Monday]["wh-1"]
	assert.Equal(t, 2, req.TotalBasicWorkers)
	assert.Equal(t, 1, req.TotalDrivers)
	assert.Equal(t, 1, req.TotalEngineers)
}

func TestCalculateRequirementsTakesHeaviestLoadNotSum(t *testing.T) {
	warehouses := []Warehouse{{ID: "wh-1", Name: "North"}}
	loads := []CargoLoad{
		{WarehouseID: "wh-1", Date: monday, TotalWeight: 1200},
		{WarehouseID: "wh-1", Date: monday, TotalWeight: 2500},
	}

	reqs := CalculateRequirements(warehouses, loads, []enums.DayOfWeek{enums.Monday})

	req := reqs[enums.Monday]["wh-1"]
	assert.Equal(t, 3, req.TotalBasicWorkers, "concurrent loads should not be summed")
	assert.Equal(t, 1, req.TotalDrivers)
	assert.Equal(t, 1, req.TotalEngineers)
}

func TestCalculateRequirementsFloorsAtWarehouseMinimum(t *testing.T) {
	warehouses := []Warehouse{{ID: "wh-1", Name: "North", MinBasicWorkers: 5, MinDrivers: 3, MinEngineers: 2}}
	loads := []CargoLoad{{WarehouseID: "wh-1", Date: monday, TotalWeight: 1200}}

	reqs := CalculateRequirements(warehouses, loads, []enums.DayOfWeek{enums.Monday})

	req := reqs[enums.Monday]["wh-1"]
	assert.Equal(t, 5, req.TotalBasicWorkers)
	assert.Equal(t, 3, req.TotalDrivers)
	assert.Equal(t, 2, req.TotalEngineers)
}

func TestCalculateRequirementsIgnoresLoadsOutsideScope(t *testing.T) {
	warehouses := []Warehouse{{ID: "wh-1", Name: "North", MinBasicWorkers: 1}}
	loads := []CargoLoad{
		{WarehouseID: "wh-unknown", Date: monday, TotalWeight: 9000},
		{WarehouseID: "wh-1", Date: monday.AddDate(0, 0, 1), TotalWeight: 9000},
	}

	reqs := CalculateRequirements(warehouses, loads, []enums.DayOfWeek{enums.Monday})

	req := reqs[enums.Monday]["wh-1"]
	assert.Equal(t, 1, req.TotalBasicWorkers)
}

func TestCalculateRequirementsIsRepeatable(t *testing.T) {
	warehouses := []Warehouse{{ID: "wh-1", Name: "North", MinBasicWorkers: 2}}
	loads := []CargoLoad{{WarehouseID: "wh-1", Date: monday, TotalWeight: 4200}}
	days := []enums.DayOfWeek{enums.Monday, enums.Wednesday}

	first := CalculateRequirements(warehouses, loads, days)
	second := CalculateRequirements(warehouses, loads, days)

	assert.Equal(t, first, second)
}
