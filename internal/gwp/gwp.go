// Package gwp holds the IPCC 100-year Global Warming Potential tables
// used to convert non-CO2 gas masses to CO2-equivalent.
package gwp

import (
	"sort"
	"strings"

	"github.com/rotisserie/eris"
)

// ErrUnknownGas is returned when a gas has no entry in the requested table.
var ErrUnknownGas = eris.New("unknown gas")

// Assessment selects which IPCC Assessment Report's values apply.
type Assessment string

const (
	AR5 Assessment = "ar5"
	AR6 Assessment = "ar6"
)

// DefaultAssessment applies when a factor does not declare one.
const DefaultAssessment = AR6

// ParseAssessment normalizes a user-supplied assessment name.
func ParseAssessment(s string) (Assessment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ar5":
		return AR5, nil
	case "ar6", "":
		return AR6, nil
	default:
		return "", eris.Errorf("gwp: unknown assessment %q (want ar5 or ar6)", s)
	}
}

// AR5 (2014) 100-year values.
var ar5 = map[string]float64{
	"co2": 1,
	"ch4": 28,
	"n2o": 265,
	"sf6": 23500,
	"nf3": 16100,

	"hfc-23":       12400,
	"hfc-32":       677,
	"hfc-125":      3170,
	"hfc-134a":     1300,
	"hfc-143a":     4800,
	"hfc-152a":     138,
	"hfc-227ea":    3350,
	"hfc-236fa":    8060,
	"hfc-245fa":    858,
	"hfc-365mfc":   804,
	"hfc-43-10mee": 1650,

	"cf4":   6630,
	"c2f6":  11100,
	"c3f8":  8900,
	"c4f10": 9200,
	"c5f12": 8550,
	"c6f14": 7910,

	// Refrigerant blends, weighted averages of components.
	"r-404a": 3922,
	"r-407a": 2107,
	"r-407c": 1774,
	"r-410a": 2088,
	"r-507a": 3985,
	"r-508b": 13396,
}

// AR6 (2021) 100-year values.
var ar6 = map[string]float64{
	"co2": 1,
	"ch4": 27.9,
	"n2o": 273,
	"sf6": 25200,
	"nf3": 17400,

	"hfc-23":       14600,
	"hfc-32":       771,
	"hfc-125":      3740,
	"hfc-134a":     1530,
	"hfc-143a":     5810,
	"hfc-152a":     164,
	"hfc-227ea":    3600,
	"hfc-236fa":    8690,
	"hfc-245fa":    962,
	"hfc-365mfc":   914,
	"hfc-43-10mee": 1600,

	"cf4":   7380,
	"c2f6":  12400,
	"c3f8":  9290,
	"c4f10": 10000,
	"c5f12": 9220,
	"c6f14": 8620,

	"r-404a": 4728,
	"r-407a": 2446,
	"r-407c": 2088,
	"r-410a": 2256,
	"r-507a": 4728,
	"r-508b": 14760,
}

var tables = map[Assessment]map[string]float64{
	AR5: ar5,
	AR6: ar6,
}

// Lookup returns the 100-year GWP multiplier for a gas.
// "co2e" is always 1 since the mass is already CO2-equivalent.
func Lookup(gas string, a Assessment) (float64, error) {
	table, ok := tables[a]
	if !ok {
		return 0, eris.Errorf("gwp: unknown assessment %q", a)
	}
	key := strings.ToLower(strings.TrimSpace(gas))
	if key == "co2e" {
		return 1, nil
	}
	v, ok := table[key]
	if !ok {
		return 0, eris.Wrapf(ErrUnknownGas, "gwp: no %s value for %q", a, gas)
	}
	return v, nil
}

// ToCO2e converts a gas mass in kg to kg CO2-equivalent.
func ToCO2e(massKg float64, gas string, a Assessment) (float64, error) {
	v, err := Lookup(gas, a)
	if err != nil {
		return 0, err
	}
	return massKg * v, nil
}

// Gases lists the gases available for an assessment, sorted.
func Gases(a Assessment) []string {
	table := tables[a]
	out := make([]string, 0, len(table))
	for g := range table {
		out = append(out, g)
	}
	sort.Strings(out)
	return out
}
