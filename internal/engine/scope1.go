package engine

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rotisserie/eris"

	"github.com/sells-group/carbon-cli/internal/factors"
	"github.com/sells-group/carbon-cli/internal/gwp"
	"github.com/sells-group/carbon-cli/internal/units"
)

// calcScope1 routes direct emissions to the category calculator. When
// the category is unset it is inferred: a refrigerant type implies
// fugitive emissions, a fuel type implies stationary combustion.
func (c *Calculator) calcScope1(a Activity) ([]Result, error) {
	category := a.Scope1Category
	if category == "" {
		switch {
		case a.RefrigerantType != "":
			category = FugitiveEmissions
		case a.FuelType != "" || a.CustomFuel != "":
			category = StationaryCombustion
		default:
			return nil, eris.New("engine: cannot determine scope 1 category; set scope1_category")
		}
	}

	switch category {
	case StationaryCombustion:
		return c.calcCombustion(a, StationaryCombustion)
	case MobileCombustion:
		return c.calcCombustion(a, MobileCombustion)
	case FugitiveEmissions:
		return c.calcFugitive(a)
	case ProcessEmissions:
		return c.calcProcess(a)
	default:
		return nil, eris.Errorf("engine: unknown scope 1 category %q", category)
	}
}

// calcCombustion handles stationary and mobile fuel combustion. The two
// categories share the formula; only the factor category differs.
func (c *Calculator) calcCombustion(a Activity, category Scope1Category) ([]Result, error) {
	if a.CustomFactor != nil {
		r := c.customResult(a)
		r.Scope1Category = category
		return []Result{r}, nil
	}

	fuel := a.FuelType
	if fuel == "" {
		fuel = a.CustomFuel
	}
	if fuel == "" {
		return nil, eris.Wrapf(ErrNoMatchingFactor, "%s requires fuel_type or custom_fuel", category)
	}

	f, qty, err := c.resolveFactor(string(category), fuel, "", a)
	if err != nil {
		return nil, err
	}

	r, err := c.gasResult(a, f, qty)
	if err != nil {
		return nil, err
	}
	r.Scope1Category = category
	return []Result{r}, nil
}

// calcFugitive handles refrigerant leaks and other fugitive sources.
// For refrigerants the formula is mass released times the gas GWP.
func (c *Calculator) calcFugitive(a Activity) ([]Result, error) {
	if a.CustomFactor != nil {
		r := c.customResult(a)
		r.Scope1Category = FugitiveEmissions
		return []Result{r}, nil
	}

	if a.RefrigerantType == "" {
		// No refrigerant named; fall back to a registry factor.
		f, qty, err := c.resolveFactor(string(FugitiveEmissions), "", "", a)
		if err != nil {
			return nil, err
		}
		r, err := c.gasResult(a, f, qty)
		if err != nil {
			return nil, err
		}
		r.Scope1Category = FugitiveEmissions
		return []Result{r}, nil
	}

	qtyKG := a.Quantity
	if !units.Same(a.Unit, "kg") {
		var err error
		qtyKG, err = units.Convert(a.Quantity, a.Unit, "kg")
		if err != nil {
			return nil, eris.Wrap(err, "engine: fugitive quantity must convert to kg")
		}
	}

	gwpVal, err := gwp.Lookup(a.RefrigerantType, c.assessment)
	if err != nil {
		if !errors.Is(err, gwp.ErrUnknownGas) {
			return nil, err
		}
		// Not in the GWP tables; an aggregate factor from the EPA Hub
		// refrigerant list may still cover it.
		hits := c.registry.Search(factors.Query{
			Text:     a.RefrigerantType,
			Category: string(FugitiveEmissions),
			Limit:    1,
		})
		if len(hits) == 0 || !hits[0].HasCO2e {
			return nil, eris.Wrapf(ErrNoMatchingFactor, "unknown refrigerant %q", a.RefrigerantType)
		}
		gwpVal = hits[0].CO2e
	}

	total := qtyKG * gwpVal
	return []Result{{
		ActivityID:     a.ID,
		ActivityName:   a.Name,
		Scope:          Scope1,
		Scope1Category: FugitiveEmissions,
		TotalCO2eKG:    total,
		GasBreakdown: []GasBreakdown{{
			Gas:           strings.ToLower(a.RefrigerantType),
			MassKG:        qtyKG,
			CO2eKG:        total,
			GWPUsed:       gwpVal,
			GWPAssessment: c.assessment,
		}},
		ActivityQuantity: a.Quantity,
		ActivityUnit:     a.Unit,
		GWPAssessment:    c.assessment,
		CalculatedAt:     time.Now().UTC(),
		Notes:            []string{fmt.Sprintf("Refrigerant: %s, GWP: %g", a.RefrigerantType, gwpVal)},
	}}, nil
}

// calcProcess handles industrial process emissions. These are specific
// enough that a custom factor is the usual path.
func (c *Calculator) calcProcess(a Activity) ([]Result, error) {
	if a.CustomFactor != nil {
		r := c.customResult(a)
		r.Scope1Category = ProcessEmissions
		r.Notes = []string{"Custom emission factor used for process emissions"}
		return []Result{r}, nil
	}

	f, qty, err := c.resolveFactor(string(ProcessEmissions), "", "", a)
	if err != nil {
		return nil, eris.Wrap(err, "engine: process emissions usually need a custom_factor")
	}

	r, err := c.gasResult(a, f, qty)
	if err != nil {
		return nil, err
	}
	r.Scope1Category = ProcessEmissions
	return []Result{r}, nil
}
