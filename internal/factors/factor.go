// Package factors embeds the emission factor databases and exposes a
// queryable registry over them.
package factors

import "github.com/sells-group/carbon-cli/internal/gwp"

// Source identifies which factor database a factor came from.
type Source string

const (
	SourceEPAHub   Source = "epa_hub"
	SourceEGRID    Source = "egrid"
	SourceDEFRA    Source = "defra"
	SourceUSEEIO   Source = "useeio"
	SourceEmber    Source = "ember"
	SourceEXIOBASE Source = "exiobase"
	SourceCustom   Source = "custom"
)

// Sources in precedence order. When several sources could answer the
// same query, the earlier one wins.
var SourcePrecedence = []Source{
	SourceEPAHub,
	SourceEGRID,
	SourceEmber,
	SourceDEFRA,
	SourceUSEEIO,
	SourceEXIOBASE,
	SourceCustom,
}

var sourceRank = func() map[Source]int {
	m := make(map[Source]int, len(SourcePrecedence))
	for i, s := range SourcePrecedence {
		m[s] = i
	}
	return m
}()

// ParseSource validates a source name. Empty input means "any source".
func ParseSource(s string) (Source, bool) {
	if s == "" {
		return "", true
	}
	src := Source(s)
	_, ok := sourceRank[src]
	return src, ok
}

// Factor is a single emission factor row. Per-gas values are kg of gas
// per ActivityUnit; CO2e is an aggregate kg CO2e per ActivityUnit for
// factors published without a gas breakdown.
type Factor struct {
	ID           string         `json:"id" yaml:"id"`
	Name         string         `json:"name" yaml:"name"`
	Source       Source         `json:"source" yaml:"source"`
	Category     string         `json:"category" yaml:"category"`
	Subcategory  string         `json:"subcategory,omitempty" yaml:"subcategory,omitempty"`
	FuelType     string         `json:"fuel_type,omitempty" yaml:"fuel_type,omitempty"`
	Region       string         `json:"region,omitempty" yaml:"region,omitempty"`
	Year         int            `json:"year,omitempty" yaml:"year,omitempty"`
	ActivityUnit string         `json:"activity_unit" yaml:"activity_unit"`
	CO2          float64        `json:"co2_factor" yaml:"co2_factor"`
	CH4          float64        `json:"ch4_factor" yaml:"ch4_factor"`
	N2O          float64        `json:"n2o_factor" yaml:"n2o_factor"`
	CO2e         float64        `json:"co2e_factor,omitempty" yaml:"co2e_factor,omitempty"`
	HasCO2e      bool           `json:"-" yaml:"-"`
	GWP          gwp.Assessment `json:"gwp_assessment,omitempty" yaml:"gwp_assessment,omitempty"`
	Description  string         `json:"description,omitempty" yaml:"description,omitempty"`
	Tags         []string       `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// AggregateOnly reports whether the factor carries only a pre-computed
// CO2e value and no per-gas breakdown.
func (f *Factor) AggregateOnly() bool {
	return f.HasCO2e && f.CO2 == 0 && f.CH4 == 0 && f.N2O == 0
}

// Assessment returns the GWP assessment the factor requires, falling
// back to def when the factor does not declare one.
func (f *Factor) Assessment(def gwp.Assessment) gwp.Assessment {
	if f.GWP != "" {
		return f.GWP
	}
	return def
}
