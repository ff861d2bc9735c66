package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/carbon-cli/internal/factors"
	"github.com/sells-group/carbon-cli/internal/gwp"
	"github.com/sells-group/carbon-cli/internal/units"
)

func newCalc(t *testing.T, opts ...Option) *Calculator {
	t.Helper()
	return New(factors.Load(), opts...)
}

func floatPtr(v float64) *float64 { return &v }

func TestStationaryNaturalGasTherms(t *testing.T) {
	c := newCalc(t, WithAssessment(gwp.AR5))

	results, err := c.CalculateSingle(Activity{
		Scope:          Scope1,
		Scope1Category: StationaryCombustion,
		FuelType:       "natural_gas",
		Quantity:       1000,
		Unit:           "therm",
	})
	require.NoError(t, err)
	require.Len(t, results, 1)

	r := results[0]
	// 5302 kg CO2 + 0.1 kg CH4 x 28 + 0.01 kg N2O x 265
	assert.InDelta(t, 5307.45, r.TotalCO2eKG, 0.01)
	assert.Equal(t, StationaryCombustion, r.Scope1Category)
	assert.Equal(t, factors.SourceEPAHub, r.FactorSource)
	require.Len(t, r.GasBreakdown, 3)
	assert.Equal(t, "co2", r.GasBreakdown[0].Gas)
	assert.InDelta(t, 5302, r.GasBreakdown[0].MassKG, 1e-9)
}

func TestStationaryDieselGallons(t *testing.T) {
	c := newCalc(t, WithAssessment(gwp.AR5))

	results, err := c.CalculateSingle(Activity{
		Scope:          Scope1,
		Scope1Category: StationaryCombustion,
		FuelType:       "diesel",
		Quantity:       100,
		Unit:           "gallon",
	})
	require.NoError(t, err)
	assert.InDelta(t, 1024.27, results[0].TotalCO2eKG, 0.01)
}

func TestStationaryUnitConversion(t *testing.T) {
	c := newCalc(t, WithAssessment(gwp.AR5))

	// No dekatherm factor exists; the therm factor plus unit
	// conversion covers it. 10 dekatherm = 100 therm.
	results, err := c.CalculateSingle(Activity{
		Scope:          Scope1,
		Scope1Category: StationaryCombustion,
		FuelType:       "natural_gas",
		Quantity:       10,
		Unit:           "dekatherm",
	})
	require.NoError(t, err)
	assert.InDelta(t, 530.745, results[0].TotalCO2eKG, 0.01)
}

func TestScope1CategoryInference(t *testing.T) {
	c := newCalc(t, WithAssessment(gwp.AR5))

	// refrigerant_type implies fugitive emissions
	results, err := c.CalculateSingle(Activity{
		Scope:           Scope1,
		RefrigerantType: "r-410a",
		Quantity:        10,
		Unit:            "kg",
	})
	require.NoError(t, err)
	assert.Equal(t, FugitiveEmissions, results[0].Scope1Category)
	assert.InDelta(t, 20880, results[0].TotalCO2eKG, 1e-6)

	// fuel_type implies stationary combustion
	results, err = c.CalculateSingle(Activity{
		Scope:    Scope1,
		FuelType: "natural_gas",
		Quantity: 100,
		Unit:     "therm",
	})
	require.NoError(t, err)
	assert.Equal(t, StationaryCombustion, results[0].Scope1Category)

	// neither set is an error
	_, err = c.CalculateSingle(Activity{Scope: Scope1, Quantity: 1, Unit: "kg"})
	assert.Error(t, err)
}

func TestFugitiveRefrigerantPounds(t *testing.T) {
	c := newCalc(t, WithAssessment(gwp.AR5))

	results, err := c.CalculateSingle(Activity{
		Scope:           Scope1,
		Scope1Category:  FugitiveEmissions,
		RefrigerantType: "hfc-134a",
		Quantity:        10,
		Unit:            "lb",
	})
	require.NoError(t, err)
	assert.InDelta(t, 10*0.45359237*1300, results[0].TotalCO2eKG, 0.01)
}

func TestFugitiveUnknownRefrigerantFallsBackToRegistry(t *testing.T) {
	c := newCalc(t)

	// R-448A is not in the GWP tables but the EPA Hub publishes an
	// aggregate factor for it.
	results, err := c.CalculateSingle(Activity{
		Scope:           Scope1,
		Scope1Category:  FugitiveEmissions,
		RefrigerantType: "R-448A",
		Quantity:        2,
		Unit:            "kg",
	})
	require.NoError(t, err)
	assert.InDelta(t, 2546, results[0].TotalCO2eKG, 1e-6)

	_, err = c.CalculateSingle(Activity{
		Scope:           Scope1,
		Scope1Category:  FugitiveEmissions,
		RefrigerantType: "unobtainium",
		Quantity:        1,
		Unit:            "kg",
	})
	assert.ErrorIs(t, err, ErrNoMatchingFactor)
}

func TestMobileCombustion(t *testing.T) {
	c := newCalc(t, WithAssessment(gwp.AR5))

	results, err := c.CalculateSingle(Activity{
		Scope:          Scope1,
		Scope1Category: MobileCombustion,
		FuelType:       "gasoline",
		Quantity:       500,
		Unit:           "mile",
	})
	require.NoError(t, err)
	r := results[0]
	assert.Equal(t, MobileCombustion, r.Scope1Category)
	assert.Equal(t, "epa_mob_gasoline_passenger_car_mile", r.FactorID)
}

func TestProcessEmissionsNeedCustomFactor(t *testing.T) {
	c := newCalc(t)

	_, err := c.CalculateSingle(Activity{
		Scope:          Scope1,
		Scope1Category: ProcessEmissions,
		Quantity:       100,
		Unit:           "tonne",
	})
	assert.ErrorIs(t, err, ErrNoMatchingFactor)

	results, err := c.CalculateSingle(Activity{
		Scope:          Scope1,
		Scope1Category: ProcessEmissions,
		Quantity:       100,
		Unit:           "tonne",
		CustomFactor:   floatPtr(510.0),
	})
	require.NoError(t, err)
	assert.InDelta(t, 51000, results[0].TotalCO2eKG, 1e-9)
}

func TestScope2DualMethod(t *testing.T) {
	c := newCalc(t, WithAssessment(gwp.AR5))

	results, err := c.CalculateSingle(Activity{
		Scope:         Scope2,
		GridSubregion: "ERCT",
		Quantity:      10000,
		Unit:          "kWh",
	})
	require.NoError(t, err)
	require.Len(t, results, 2)

	location, market := results[0], results[1]
	assert.Equal(t, LocationBased, location.Scope2Method)
	assert.Equal(t, MarketBased, market.Scope2Method)
	assert.InDelta(t, 3700, location.TotalCO2eKG, 10)
	assert.InDelta(t, location.TotalCO2eKG, market.TotalCO2eKG, 1e-9)
	assert.Contains(t, market.Notes, "Market-based: using grid average as proxy (no supplier-specific data)")
	assert.Equal(t, "egrid_erct", location.FactorID)
}

func TestScope2CountryFallback(t *testing.T) {
	c := newCalc(t, WithAssessment(gwp.AR5))

	results, err := c.CalculateSingle(Activity{
		Scope:    Scope2,
		Country:  "FR",
		Quantity: 5000,
		Unit:     "kWh",
	})
	require.NoError(t, err)
	assert.Equal(t, "ember_fr", results[0].FactorID)
	// 5000 x (0.06x0.97 + 0.06x0.01x28 + 0.06x0.002x265)
	assert.InDelta(t, 534.0, results[0].TotalCO2eKG, 0.5)
}

func TestScope2USAverageFallback(t *testing.T) {
	c := newCalc(t)

	// No location info at all still calculates against the US grid
	// average.
	results, err := c.CalculateSingle(Activity{
		Scope:    Scope2,
		Quantity: 1000,
		Unit:     "kWh",
	})
	require.NoError(t, err)
	assert.Equal(t, "ember_us", results[0].FactorID)
}

func TestScope2MWhConversion(t *testing.T) {
	c := newCalc(t, WithAssessment(gwp.AR5))

	kwh, err := c.CalculateSingle(Activity{
		Scope: Scope2, GridSubregion: "CAMX", Quantity: 2000, Unit: "kWh",
	})
	require.NoError(t, err)
	mwh, err := c.CalculateSingle(Activity{
		Scope: Scope2, GridSubregion: "CAMX", Quantity: 2, Unit: "MWh",
	})
	require.NoError(t, err)
	assert.InDelta(t, kwh[0].TotalCO2eKG, mwh[0].TotalCO2eKG, 1e-9)
}

func TestScope3SpendBasedNAICS(t *testing.T) {
	c := newCalc(t)

	results, err := c.CalculateSingle(Activity{
		Scope:          Scope3,
		Scope3Category: 1,
		SpendAmount:    floatPtr(10000),
		NAICSCode:      "5415",
		Quantity:       10000,
		Unit:           "USD",
	})
	require.NoError(t, err)
	r := results[0]
	assert.InDelta(t, 400, r.TotalCO2eKG, 1e-9)
	assert.Equal(t, factors.SourceUSEEIO, r.FactorSource)
	assert.Equal(t, "USD", r.ActivityUnit)
}

func TestScope3WasteKey(t *testing.T) {
	c := newCalc(t)

	results, err := c.CalculateSingle(Activity{
		Scope:          Scope3,
		Scope3Category: 5,
		WasteType:      "food",
		DisposalMethod: "landfill",
		Quantity:       2,
		Unit:           "tonne",
	})
	require.NoError(t, err)
	assert.InDelta(t, 1160, results[0].TotalCO2eKG, 1e-9)
	assert.Equal(t, "defra_waste_landfill_food_tonne", results[0].FactorID)
}

func TestScope3WasteDefaults(t *testing.T) {
	c := newCalc(t)

	// Missing type/disposal default to mixed/landfill.
	results, err := c.CalculateSingle(Activity{
		Scope:          Scope3,
		Scope3Category: 5,
		Quantity:       1,
		Unit:           "tonne",
	})
	require.NoError(t, err)
	assert.InDelta(t, 446, results[0].TotalCO2eKG, 1e-9)
}

func TestScope3DistanceBasedTravel(t *testing.T) {
	c := newCalc(t)

	results, err := c.CalculateSingle(Activity{
		Scope:          Scope3,
		Scope3Category: 6,
		TransportMode:  "taxi",
		Distance:       floatPtr(100),
		Quantity:       100,
		Unit:           "km",
	})
	require.NoError(t, err)
	assert.InDelta(t, 14.9, results[0].TotalCO2eKG, 1e-9)
	assert.Contains(t, results[0].Notes, "Distance-based: mode=taxi")
}

func TestScope3FreightTonneKM(t *testing.T) {
	c := newCalc(t)

	results, err := c.CalculateSingle(Activity{
		Scope:          Scope3,
		Scope3Category: 4,
		TransportMode:  "rail",
		Distance:       floatPtr(1000),
		Weight:         floatPtr(5),
		WeightUnit:     "tonne",
		Quantity:       1000,
		Unit:           "km",
	})
	require.NoError(t, err)
	r := results[0]
	assert.Equal(t, "defra_freight_rail_freight", r.FactorID)
	assert.InDelta(t, 5000*0.024, r.TotalCO2eKG, 1e-9)
	assert.InDelta(t, 5000, r.ActivityQuantity, 1e-9)
}

func TestScope3ActivityBasedCommuting(t *testing.T) {
	c := newCalc(t)

	// No spend or distance set: generic activity-based lookup against
	// the commuting category.
	results, err := c.CalculateSingle(Activity{
		Scope:          Scope3,
		Scope3Category: 7,
		Quantity:       100,
		Unit:           "km",
	})
	require.NoError(t, err)
	assert.Equal(t, factors.SourceDEFRA, results[0].FactorSource)
	assert.InDelta(t, 14.2, results[0].TotalCO2eKG, 1e-9)
}

func TestScope3RequiresCategory(t *testing.T) {
	c := newCalc(t)

	_, err := c.CalculateSingle(Activity{Scope: Scope3, Quantity: 1, Unit: "kg"})
	assert.Error(t, err)
}

func TestScope3Unresolved(t *testing.T) {
	c := newCalc(t)

	_, err := c.CalculateSingle(Activity{
		Scope:          Scope3,
		Scope3Category: 15,
		Quantity:       1,
		Unit:           "item",
	})
	assert.ErrorIs(t, err, ErrUnresolvedFactor)
	assert.True(t, Recoverable(err))
}

func TestValidateAll(t *testing.T) {
	err := ValidateAll([]Activity{
		{Scope: Scope1, FuelType: "diesel", Quantity: 10, Unit: "gallon"},
		{Scope: Scope2, Quantity: -5, Unit: "kWh"},
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, 1, verr.Index)
	assert.Equal(t, "quantity", verr.Field)

	cases := []Activity{
		{Scope: "scope_4", Quantity: 1, Unit: "kg"},
		{Scope: Scope1, Quantity: 1, Unit: ""},
		{Scope: Scope1, Scope1Category: "venting", Quantity: 1, Unit: "kg"},
		{Scope: Scope2, Scope2Method: "residual", Quantity: 1, Unit: "kWh"},
		{Scope: Scope3, Scope3Category: 16, Quantity: 1, Unit: "kg"},
	}
	for _, a := range cases {
		assert.Error(t, Validate(0, a))
	}
}

func TestCalculateInventoryPartialFailure(t *testing.T) {
	c := newCalc(t, WithAssessment(gwp.AR5), WithWorkers(4))

	activities := []Activity{
		{ID: "a1", Scope: Scope1, Scope1Category: StationaryCombustion,
			FuelType: "natural_gas", Quantity: 1000, Unit: "therm"},
		{ID: "a2", Scope: Scope2, GridSubregion: "ERCT", Quantity: 10000, Unit: "kWh"},
		{ID: "a3", Scope: Scope1, Scope1Category: StationaryCombustion,
			FuelType: "antimatter", Quantity: 5, Unit: "gallon"},
		{ID: "a4", Scope: Scope3, Scope3Category: 5, WasteType: "food",
			DisposalMethod: "landfill", Quantity: 2, Unit: "tonne"},
	}

	inv, err := c.CalculateInventory(context.Background(), activities, "FY2025", 2025)
	require.NoError(t, err)

	require.Len(t, inv.Failures, 1)
	assert.Equal(t, "a3", inv.Failures[0].ActivityID)
	assert.Equal(t, 2, inv.Failures[0].Index)

	assert.Len(t, inv.Scope1.Results, 1)
	assert.Len(t, inv.Scope2Location.Results, 1)
	assert.Len(t, inv.Scope2Market.Results, 1)
	assert.Len(t, inv.Scope3.Results, 1)

	// Grand total uses location-based Scope 2; the market-based bucket
	// never double counts.
	want := inv.Scope1.TotalCO2eKG + inv.Scope2Location.TotalCO2eKG + inv.Scope3.TotalCO2eKG
	assert.InDelta(t, want, inv.TotalCO2eKG(), 1e-9)
	assert.InDelta(t, want/1000, inv.TotalCO2eTonnes(), 1e-9)
	assert.Equal(t, "FY2025", inv.Name)
	assert.Equal(t, 2025, inv.Year)
	assert.Len(t, inv.AllResults(), 4)
}

func TestCalculateInventoryValidationIsFatal(t *testing.T) {
	c := newCalc(t)

	_, err := c.CalculateInventory(context.Background(), []Activity{
		{Scope: Scope1, FuelType: "diesel", Quantity: 10, Unit: "gallon"},
		{Scope: Scope1, FuelType: "diesel", Quantity: 0, Unit: "gallon"},
	}, "bad batch", 0)

	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestCalculateInventoryPreservesOrder(t *testing.T) {
	c := newCalc(t, WithWorkers(8))

	var activities []Activity
	for i := 0; i < 20; i++ {
		activities = append(activities, Activity{
			ID: string(rune('a' + i)), Scope: Scope1,
			Scope1Category: StationaryCombustion,
			FuelType:       "natural_gas", Quantity: float64(i + 1), Unit: "therm",
		})
	}

	inv, err := c.CalculateInventory(context.Background(), activities, "ordered", 0)
	require.NoError(t, err)
	require.Len(t, inv.Scope1.Results, 20)
	for i, r := range inv.Scope1.Results {
		assert.Equal(t, string(rune('a'+i)), r.ActivityID)
	}
}

func TestCalculateInventoryContextCancel(t *testing.T) {
	c := newCalc(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.CalculateInventory(ctx, []Activity{
		{Scope: Scope1, FuelType: "diesel", Quantity: 10, Unit: "gallon"},
	}, "cancelled", 0)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestCustomFactorShortCircuit(t *testing.T) {
	c := newCalc(t)

	for _, a := range []Activity{
		{Scope: Scope1, Scope1Category: StationaryCombustion, Quantity: 10, Unit: "widget", CustomFactor: floatPtr(2.5)},
		{Scope: Scope3, Scope3Category: 11, Quantity: 10, Unit: "widget", CustomFactor: floatPtr(2.5)},
	} {
		results, err := c.CalculateSingle(a)
		require.NoError(t, err)
		assert.InDelta(t, 25, results[0].TotalCO2eKG, 1e-9)
		assert.Contains(t, results[0].Notes[0], "Custom emission factor")
	}
}

func TestGWPAssessmentSelection(t *testing.T) {
	ar5 := newCalc(t, WithAssessment(gwp.AR5))
	ar6 := newCalc(t, WithAssessment(gwp.AR6))

	a := Activity{
		Scope: Scope1, Scope1Category: StationaryCombustion,
		FuelType: "natural_gas", Quantity: 1000, Unit: "therm",
	}

	r5, err := ar5.CalculateSingle(a)
	require.NoError(t, err)
	r6, err := ar6.CalculateSingle(a)
	require.NoError(t, err)

	// CH4 28 vs 27.9, N2O 265 vs 273: close but not equal.
	assert.NotEqual(t, r5[0].TotalCO2eKG, r6[0].TotalCO2eKG)
	assert.Equal(t, gwp.AR5, r5[0].GWPAssessment)
	assert.Equal(t, gwp.AR6, r6[0].GWPAssessment)

	// Default is AR6.
	def := newCalc(t)
	rd, err := def.CalculateSingle(a)
	require.NoError(t, err)
	assert.Equal(t, gwp.AR6, rd[0].GWPAssessment)
}

func TestFactorWithUnknownAssessmentFails(t *testing.T) {
	reg := factors.Load()
	reg.Add(&factors.Factor{
		ID:           "legacy_coal_kg",
		Name:         "Legacy coal boiler",
		Source:       factors.SourceCustom,
		Category:     "stationary_combustion",
		FuelType:     "legacy_coal",
		ActivityUnit: "kg",
		CO2:          2.4,
		GWP:          "ar4",
	})
	c := New(reg)

	results, err := c.CalculateSingle(Activity{
		Scope:          Scope1,
		Scope1Category: StationaryCombustion,
		FuelType:       "legacy_coal",
		Quantity:       100,
		Unit:           "kg",
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, "unknown assessment")
	assert.Nil(t, results)
}

func TestCalculateInventoryUnknownUnit(t *testing.T) {
	c := newCalc(t, WithAssessment(gwp.AR5))

	_, err := c.CalculateSingle(Activity{
		Scope: Scope1, Scope1Category: StationaryCombustion,
		FuelType: "natural_gas", Quantity: 10, Unit: "widget",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, units.ErrIncompatibleUnits)
	assert.True(t, Recoverable(err))

	inv, err := c.CalculateInventory(context.Background(), []Activity{
		{ID: "a1", Scope: Scope1, Scope1Category: StationaryCombustion, FuelType: "natural_gas", Quantity: 100, Unit: "therm"},
		{ID: "a2", Scope: Scope1, Scope1Category: StationaryCombustion, FuelType: "natural_gas", Quantity: 10, Unit: "widget"},
	}, "units", 2024)
	require.NoError(t, err)

	// The bad unit fails alone; the rest of the inventory stands.
	require.Len(t, inv.Failures, 1)
	assert.Equal(t, 1, inv.Failures[0].Index)
	assert.Equal(t, "a2", inv.Failures[0].ActivityID)
	assert.Contains(t, inv.Failures[0].Error, "incompatible units")
	require.Len(t, inv.Scope1.Results, 1)
	assert.InDelta(t, 530.745, inv.Scope1.TotalCO2eKG, 0.01)
}
