package export

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/carbon-cli/internal/engine"
	"github.com/sells-group/carbon-cli/internal/gwp"
)

func sampleInventory() *engine.Inventory {
	inv := &engine.Inventory{
		Name:          "FY2024",
		Year:          2024,
		GWPAssessment: gwp.AR6,
		CalculatedAt:  time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	inv.Scope1 = engine.ScopeTotal{
		TotalCO2eKG: 5307.45,
		Results: []engine.Result{{
			ActivityID:       "boiler-1",
			ActivityName:     "HQ boiler",
			Scope:            engine.Scope1,
			Scope1Category:   engine.StationaryCombustion,
			TotalCO2eKG:      5307.45,
			FactorID:         "epa_ng_therm",
			FactorSource:     "EPA_HUB",
			ActivityQuantity: 1000,
			ActivityUnit:     "therm",
			GWPAssessment:    gwp.AR5,
		}},
	}
	inv.Scope2Location = engine.ScopeTotal{
		TotalCO2eKG: 3700,
		Results: []engine.Result{{
			Scope:        engine.Scope2,
			Scope2Method: engine.LocationBased,
			TotalCO2eKG:  3700,
			FactorID:     "egrid_erct",
		}},
	}
	inv.Scope2Market = engine.ScopeTotal{
		TotalCO2eKG: 3700,
		Results: []engine.Result{{
			Scope:        engine.Scope2,
			Scope2Method: engine.MarketBased,
			TotalCO2eKG:  3700,
			FactorID:     "egrid_erct",
			Notes:        []string{"Market-based: using grid average as proxy (no supplier-specific data)"},
		}},
	}
	inv.Scope3 = engine.ScopeTotal{
		TotalCO2eKG: 400,
		Results: []engine.Result{{
			Scope:          engine.Scope3,
			Scope3Category: 1,
			TotalCO2eKG:    400,
			FactorID:       "useeio_5415",
		}},
	}
	return inv
}

func TestWriteXLSX(t *testing.T) {
	inv := sampleInventory()
	path := filepath.Join(t.TempDir(), "inventory.xlsx")

	require.NoError(t, WriteXLSX(inv, path))

	f, err := xlsx.OpenFile(path)
	require.NoError(t, err)

	summary, ok := f.Sheet["Summary"]
	require.True(t, ok)
	assert.Equal(t, "FY2024", summary.Rows[0].Cells[1].String())

	results, ok := f.Sheet["Results"]
	require.True(t, ok)
	// Header plus one row per result across all four buckets
	require.Len(t, results.Rows, 5)
	assert.Equal(t, "Activity ID", results.Rows[0].Cells[0].String())
	assert.Equal(t, "boiler-1", results.Rows[1].Cells[0].String())
	assert.Equal(t, "stationary_combustion", results.Rows[1].Cells[3].String())
	assert.Equal(t, "market_based", results.Rows[3].Cells[4].String())
	assert.Equal(t, "category 1 (purchased_goods)", results.Rows[4].Cells[3].String())

	_, hasFailures := f.Sheet["Failures"]
	assert.False(t, hasFailures)
}

func TestWriteXLSXSummaryTotals(t *testing.T) {
	inv := sampleInventory()
	path := filepath.Join(t.TempDir(), "inventory.xlsx")
	require.NoError(t, WriteXLSX(inv, path))

	f, err := xlsx.OpenFile(path)
	require.NoError(t, err)
	summary := f.Sheet["Summary"]

	var grandRow *xlsx.Row
	for _, row := range summary.Rows {
		if len(row.Cells) > 0 && row.Cells[0].String() == "Grand total (location-based Scope 2)" {
			grandRow = row
		}
	}
	require.NotNil(t, grandRow)

	got, err := grandRow.Cells[2].Float()
	require.NoError(t, err)
	// Market-based Scope 2 is excluded from the grand total
	assert.InDelta(t, 5307.45+3700+400, got, 0.01)
}

func TestWriteXLSXFailuresSheet(t *testing.T) {
	inv := sampleInventory()
	inv.Failures = []engine.Failure{{
		Index:        7,
		ActivityID:   "a8",
		ActivityName: "mystery fuel",
		Error:        "engine: no matching emission factor",
	}}
	path := filepath.Join(t.TempDir(), "inventory.xlsx")
	require.NoError(t, WriteXLSX(inv, path))

	f, err := xlsx.OpenFile(path)
	require.NoError(t, err)

	failures, ok := f.Sheet["Failures"]
	require.True(t, ok)
	require.Len(t, failures.Rows, 2)
	assert.Equal(t, "a8", failures.Rows[1].Cells[1].String())
	assert.Equal(t, "engine: no matching emission factor", failures.Rows[1].Cells[3].String())
}
