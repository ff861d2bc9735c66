// Package units converts quantities between the units that appear in
// emission factor tables. Conversions are linear within a dimension;
// cross-dimension conversion is an error.
package units

import (
	"strings"

	"github.com/rotisserie/eris"
)

// ErrIncompatibleUnits is returned when two units belong to different
// dimensions or when a unit is not recognized at all.
var ErrIncompatibleUnits = eris.New("incompatible units")

// Dimension identifies a physical dimension a unit belongs to.
type Dimension string

const (
	DimEnergy      Dimension = "energy"
	DimVolume      Dimension = "volume"
	DimMass        Dimension = "mass"
	DimDistance    Dimension = "distance"
	DimPassengerKM Dimension = "passenger_distance"
	DimTonneKM     Dimension = "freight_distance"
	DimCurrency    Dimension = "currency"
	DimCount       Dimension = "count"
)

type unitDef struct {
	dim    Dimension
	toBase float64
}

// Factors express each unit in its dimension's base unit:
// kWh (energy), litre (volume), kg (mass), km (distance), USD (currency).
var table = map[string]unitDef{
	// Energy. therm = 100,000 BTU, MMBtu = 1,000,000 BTU.
	"btu":       {DimEnergy, 0.000293071},
	"kwh":       {DimEnergy, 1},
	"mwh":       {DimEnergy, 1000},
	"gj":        {DimEnergy, 277.778},
	"therm":     {DimEnergy, 29.3071},
	"dekatherm": {DimEnergy, 293.071},
	"mmbtu":     {DimEnergy, 293.071},

	// Volume. Gas volumes (scf, CCF, MCF, m3) are volumes, not energy.
	"litre":  {DimVolume, 1},
	"gallon": {DimVolume, 3.785411784},
	"barrel": {DimVolume, 158.987294928},
	"scf":    {DimVolume, 28.316846592},
	"ccf":    {DimVolume, 2831.6846592},
	"mcf":    {DimVolume, 28316.846592},
	"m3":     {DimVolume, 1000},

	// Mass. short_ton = 2,000 lb.
	"g":         {DimMass, 0.001},
	"kg":        {DimMass, 1},
	"lb":        {DimMass, 0.45359237},
	"tonne":     {DimMass, 1000},
	"short_ton": {DimMass, 907.18474},

	// Distance.
	"m":    {DimDistance, 0.001},
	"km":   {DimDistance, 1},
	"mile": {DimDistance, 1.609344},

	// Composite reporting units convert only to themselves.
	"passenger_km": {DimPassengerKM, 1},
	"tonne_km":     {DimTonneKM, 1},
	"night":        {DimCount, 1},

	// Currency is identity only; no FX conversion in this engine.
	"usd": {DimCurrency, 1},
}

var aliases = map[string]string{
	"kilowatt_hour": "kwh",
	"megawatt_hour": "mwh",
	"gigajoule":     "gj",
	"therms":        "therm",
	"gal":           "gallon",
	"gallons":       "gallon",
	"liter":         "litre",
	"l":             "litre",
	"bbl":           "barrel",
	"ft3":           "scf",
	"m^3":           "m3",
	"cubic_meter":   "m3",
	"gram":          "g",
	"lbs":           "lb",
	"pound":         "lb",
	"metric_ton":    "tonne",
	"t":             "tonne",
	"ton":           "short_ton",
	"kilometer":     "km",
	"kilometre":     "km",
	"mi":            "mile",
	"miles":         "mile",
	"pkm":           "passenger_km",
	"tkm":           "tonne_km",
	"nights":        "night",
	"$":             "usd",
}

func resolve(unit string) (unitDef, bool) {
	key := strings.ToLower(strings.TrimSpace(unit))
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}
	def, ok := table[key]
	return def, ok
}

// Convert converts value from one unit to another within the same dimension.
func Convert(value float64, from, to string) (float64, error) {
	f, ok := resolve(from)
	if !ok {
		return 0, eris.Wrapf(ErrIncompatibleUnits, "units: unknown unit %q", from)
	}
	t, ok := resolve(to)
	if !ok {
		return 0, eris.Wrapf(ErrIncompatibleUnits, "units: unknown unit %q", to)
	}
	if f.dim != t.dim {
		return 0, eris.Wrapf(ErrIncompatibleUnits, "units: cannot convert %s (%s) to %s (%s)", from, f.dim, to, t.dim)
	}
	return value * f.toBase / t.toBase, nil
}

// Compatible reports whether two units share a dimension.
func Compatible(a, b string) bool {
	da, ok := resolve(a)
	if !ok {
		return false
	}
	db, ok := resolve(b)
	if !ok {
		return false
	}
	return da.dim == db.dim
}

// DimensionOf returns the dimension of a unit, or false if unrecognized.
func DimensionOf(unit string) (Dimension, bool) {
	def, ok := resolve(unit)
	if !ok {
		return "", false
	}
	return def.dim, true
}

// Same reports whether two unit spellings normalize to the same unit.
func Same(a, b string) bool {
	da, ok := resolve(a)
	if !ok {
		return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
	}
	db, ok := resolve(b)
	if !ok {
		return false
	}
	return da == db
}
