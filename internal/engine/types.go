// Package engine routes activity records to scope-specific calculators
// and aggregates the results into a GHG inventory.
package engine

import (
	"time"

	"github.com/sells-group/carbon-cli/internal/factors"
	"github.com/sells-group/carbon-cli/internal/gwp"
)

// Scope is a GHG Protocol emission scope.
type Scope string

const (
	Scope1 Scope = "scope_1"
	Scope2 Scope = "scope_2"
	Scope3 Scope = "scope_3"
)

// Scope1Category subdivides direct emissions.
type Scope1Category string

const (
	StationaryCombustion Scope1Category = "stationary_combustion"
	MobileCombustion     Scope1Category = "mobile_combustion"
	FugitiveEmissions    Scope1Category = "fugitive_emissions"
	ProcessEmissions     Scope1Category = "process_emissions"
)

// Scope2Method is the Scope 2 accounting method.
type Scope2Method string

const (
	LocationBased Scope2Method = "location_based"
	MarketBased   Scope2Method = "market_based"
)

// Scope3CategoryName maps the 15 GHG Protocol Scope 3 categories to the
// factor category each one resolves against.
var Scope3CategoryName = map[int]string{
	1:  "purchased_goods",
	2:  "capital_goods",
	3:  "fuel_energy",
	4:  "transport",
	5:  "waste",
	6:  "business_travel",
	7:  "commuting",
	8:  "leased_assets",
	9:  "transport",
	10: "processing",
	11: "product_use",
	12: "end_of_life",
	13: "leased_assets",
	14: "franchises",
	15: "investments",
}

// Activity is the universal input record for emission calculations. The
// required fields vary by scope and category.
type Activity struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`

	Scope          Scope          `json:"scope"`
	Scope1Category Scope1Category `json:"scope1_category,omitempty"`
	Scope2Method   Scope2Method   `json:"scope2_method,omitempty"`
	Scope3Category int            `json:"scope3_category,omitempty"`

	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`

	FuelType   string `json:"fuel_type,omitempty"`
	CustomFuel string `json:"custom_fuel,omitempty"`

	Country       string `json:"country,omitempty"`
	Region        string `json:"region,omitempty"`
	GridSubregion string `json:"grid_subregion,omitempty"`

	// CustomFactor overrides factor lookup entirely, in kg CO2e per
	// unit of quantity.
	CustomFactor     *float64 `json:"custom_factor,omitempty"`
	CustomFactorUnit string   `json:"custom_factor_unit,omitempty"`

	FactorSource factors.Source `json:"factor_source,omitempty"`

	Year int `json:"year,omitempty"`

	SpendAmount   *float64 `json:"spend_amount,omitempty"`
	SpendCurrency string   `json:"spend_currency,omitempty"`
	NAICSCode     string   `json:"naics_code,omitempty"`

	Distance      *float64 `json:"distance,omitempty"`
	DistanceUnit  string   `json:"distance_unit,omitempty"`
	Weight        *float64 `json:"weight,omitempty"`
	WeightUnit    string   `json:"weight_unit,omitempty"`
	VehicleType   string   `json:"vehicle_type,omitempty"`
	TransportMode string   `json:"transport_mode,omitempty"`

	WasteType      string `json:"waste_type,omitempty"`
	DisposalMethod string `json:"disposal_method,omitempty"`

	RefrigerantType string `json:"refrigerant_type,omitempty"`

	Tags map[string]string `json:"tags,omitempty"`
}

// GasBreakdown is the per-gas contribution to a result.
type GasBreakdown struct {
	Gas           string         `json:"gas"`
	MassKG        float64        `json:"mass_kg"`
	CO2eKG        float64        `json:"co2e_kg"`
	GWPUsed       float64        `json:"gwp_used"`
	GWPAssessment gwp.Assessment `json:"gwp_assessment"`
}

// Result is a single emission calculation outcome.
type Result struct {
	ActivityID   string `json:"activity_id,omitempty"`
	ActivityName string `json:"activity_name,omitempty"`

	Scope          Scope          `json:"scope"`
	Scope1Category Scope1Category `json:"scope1_category,omitempty"`
	Scope2Method   Scope2Method   `json:"scope2_method,omitempty"`
	Scope3Category int            `json:"scope3_category,omitempty"`

	TotalCO2eKG  float64        `json:"total_co2e_kg"`
	GasBreakdown []GasBreakdown `json:"gas_breakdown,omitempty"`

	FactorID     string         `json:"factor_id,omitempty"`
	FactorSource factors.Source `json:"factor_source,omitempty"`

	ActivityQuantity float64 `json:"activity_quantity,omitempty"`
	ActivityUnit     string  `json:"activity_unit,omitempty"`

	GWPAssessment gwp.Assessment `json:"gwp_assessment"`
	CalculatedAt  time.Time      `json:"calculated_at"`
	Notes         []string       `json:"notes,omitempty"`
}

// TotalCO2eTonnes returns the total in metric tonnes.
func (r Result) TotalCO2eTonnes() float64 { return r.TotalCO2eKG / 1000.0 }

// Failure records an activity whose calculation could not complete. The
// rest of the inventory is unaffected.
type Failure struct {
	Index        int    `json:"index"`
	ActivityID   string `json:"activity_id,omitempty"`
	ActivityName string `json:"activity_name,omitempty"`
	Error        string `json:"error"`
}

// ScopeTotal aggregates the results of one scope bucket.
type ScopeTotal struct {
	TotalCO2eKG float64  `json:"total_co2e_kg"`
	Results     []Result `json:"results"`
}

func (s *ScopeTotal) add(r Result) {
	s.Results = append(s.Results, r)
	s.TotalCO2eKG += r.TotalCO2eKG
}

// Inventory is a complete GHG inventory. Scope 2 keeps both accounting
// methods; the grand total uses the location-based figure so dual-method
// results are never double counted.
type Inventory struct {
	Name string `json:"name"`
	Year int    `json:"year,omitempty"`

	Scope1         ScopeTotal `json:"scope1"`
	Scope2Location ScopeTotal `json:"scope2_location"`
	Scope2Market   ScopeTotal `json:"scope2_market"`
	Scope3         ScopeTotal `json:"scope3"`

	Failures []Failure `json:"failures,omitempty"`

	GWPAssessment gwp.Assessment `json:"gwp_assessment"`
	CalculatedAt  time.Time      `json:"calculated_at"`
}

// TotalCO2eKG is the inventory grand total in kg, using location-based
// Scope 2.
func (inv *Inventory) TotalCO2eKG() float64 {
	return inv.Scope1.TotalCO2eKG + inv.Scope2Location.TotalCO2eKG + inv.Scope3.TotalCO2eKG
}

// TotalCO2eTonnes is the grand total in metric tonnes.
func (inv *Inventory) TotalCO2eTonnes() float64 { return inv.TotalCO2eKG() / 1000.0 }

// AllResults returns every result across all scope buckets.
func (inv *Inventory) AllResults() []Result {
	out := make([]Result, 0,
		len(inv.Scope1.Results)+len(inv.Scope2Location.Results)+
			len(inv.Scope2Market.Results)+len(inv.Scope3.Results))
	out = append(out, inv.Scope1.Results...)
	out = append(out, inv.Scope2Location.Results...)
	out = append(out, inv.Scope2Market.Results...)
	out = append(out, inv.Scope3.Results...)
	return out
}

func (inv *Inventory) addResult(r Result) {
	switch r.Scope {
	case Scope1:
		inv.Scope1.add(r)
	case Scope2:
		if r.Scope2Method == MarketBased {
			inv.Scope2Market.add(r)
		} else {
			inv.Scope2Location.add(r)
		}
	case Scope3:
		inv.Scope3.add(r)
	}
}
