package factors

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCounts(t *testing.T) {
	r := Load()

	// All six embedded databases should be present.
	assert.Equal(t, []Source{
		SourceEPAHub, SourceEGRID, SourceEmber,
		SourceDEFRA, SourceUSEEIO, SourceEXIOBASE,
	}, r.Sources())
	assert.Greater(t, r.Count(), 500)
}

func TestGetByID(t *testing.T) {
	r := Load()

	f, ok := r.Get("egrid_erct")
	require.True(t, ok)
	assert.Equal(t, "ERCT", f.Region)
	assert.Equal(t, "kWh", f.ActivityUnit)

	_, ok = r.Get("nope")
	assert.False(t, ok)
}

func TestFindElectricityBySubregion(t *testing.T) {
	r := Load()

	f, ok := r.Find("electricity", "", "ERCT", "kWh", "")
	require.True(t, ok)
	assert.Equal(t, SourceEGRID, f.Source)
	assert.InDelta(t, 0.37*0.994, f.CO2, 1e-9)
}

func TestFindElectricityByCountry(t *testing.T) {
	r := Load()

	// No eGRID subregion is named "FR", so the Ember country factor
	// answers.
	f, ok := r.Find("electricity", "", "FR", "kWh", "")
	require.True(t, ok)
	assert.Equal(t, SourceEmber, f.Source)

	_, ok = r.Find("electricity", "", "XX", "kWh", "")
	assert.False(t, ok)
}

func TestFindStationaryFuel(t *testing.T) {
	r := Load()

	f, ok := r.Find("stationary_combustion", "natural_gas", "", "therm", "")
	require.True(t, ok)
	assert.Equal(t, SourceEPAHub, f.Source)
	assert.InDelta(t, 5.302, f.CO2, 1e-9)
}

func TestSourcePrecedenceWins(t *testing.T) {
	r := Load()

	// eGRID, Ember, and DEFRA all publish electricity factors in kWh;
	// eGRID ranks first so it must win an unconstrained lookup.
	f, ok := r.Find("electricity", "", "", "kWh", "")
	require.True(t, ok)
	assert.Equal(t, SourceEGRID, f.Source)
}

func TestSearchTextRanking(t *testing.T) {
	r := Load()

	results := r.Search(Query{Text: "diesel", Limit: 10})
	require.NotEmpty(t, results)
	// Exact fuel-type matches rank ahead of factors that merely
	// mention diesel somewhere in their description.
	assert.Equal(t, "diesel", results[0].FuelType)
}

func TestSearchFilters(t *testing.T) {
	r := Load()

	results := r.Search(Query{Source: SourceUSEEIO, FuelType: "5415"})
	require.Len(t, results, 1)
	assert.Equal(t, "Computer systems design", results[0].Name)
	assert.InDelta(t, 0.04, results[0].CO2e, 1e-9)

	results = r.Search(Query{Tags: []string{"spend_based", "mrio"}, Region: "EU", Limit: 100})
	require.NotEmpty(t, results)
	for _, f := range results {
		assert.Equal(t, SourceEXIOBASE, f.Source)
		assert.Equal(t, "EUR", f.ActivityUnit)
	}
}

func TestSearchLimit(t *testing.T) {
	r := Load()

	results := r.Search(Query{Category: "electricity", Limit: 5})
	assert.Len(t, results, 5)
}

func TestLoadCustomFile(t *testing.T) {
	const doc = `
factors:
  - id: my_boiler
    name: Site Boiler
    category: stationary_combustion
    fuel_type: biogas
    co2e_factor: 0.25
    activity_unit: kWh
  - id: my_fleet
    name: Fleet Van
    category: mobile_combustion
    fuel_type: diesel
    co2_factor: 10.0
    ch4_factor: 0.0001
    n2o_factor: 0.0001
    activity_unit: gallon
`
	path := filepath.Join(t.TempDir(), "factors.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	r := Load()
	before := r.Count()

	n, err := r.LoadCustomFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, before+2, r.Count())

	f, ok := r.Get("my_boiler")
	require.True(t, ok)
	assert.Equal(t, SourceCustom, f.Source)
	assert.True(t, f.AggregateOnly())

	f, ok = r.Get("my_fleet")
	require.True(t, ok)
	assert.False(t, f.HasCO2e)

	// Custom factors never shadow the embedded databases.
	got, ok := r.Find("mobile_combustion", "diesel", "", "gallon", "")
	require.True(t, ok)
	assert.Equal(t, SourceEPAHub, got.Source)
}

func TestLoadCustomFileErrors(t *testing.T) {
	r := Load()

	_, err := r.LoadCustomFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("factors:\n  - name: no id\n    activity_unit: kWh\n    co2e_factor: 1\n"), 0o644))
	_, err = r.LoadCustomFile(path)
	assert.ErrorContains(t, err, "missing id")

	// An assessment outside the GWP tables is rejected at load time.
	path = filepath.Join(t.TempDir(), "ar4.yaml")
	require.NoError(t, os.WriteFile(path, []byte("factors:\n  - id: old_boiler\n    category: stationary_combustion\n    fuel_type: coal\n    activity_unit: kg\n    co2_factor: 2.4\n    gwp_assessment: ar4\n"), 0o644))
	_, err = r.LoadCustomFile(path)
	assert.ErrorContains(t, err, "unknown assessment")
}

func TestParseSource(t *testing.T) {
	s, ok := ParseSource("defra")
	assert.True(t, ok)
	assert.Equal(t, SourceDEFRA, s)

	_, ok = ParseSource("wikipedia")
	assert.False(t, ok)

	s, ok = ParseSource("")
	assert.True(t, ok)
	assert.Equal(t, Source(""), s)
}
