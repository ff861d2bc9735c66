package engine

import (
	"fmt"

	"github.com/rotisserie/eris"

	"github.com/sells-group/carbon-cli/internal/factors"
	"github.com/sells-group/carbon-cli/internal/units"
)

// calcScope3 calculates value-chain emissions across the 15 GHG
// Protocol categories. Resolution order: custom factor, spend-based,
// distance-based (transport categories), waste-specific, then generic
// activity-based lookup.
func (c *Calculator) calcScope3(a Activity) ([]Result, error) {
	if a.CustomFactor != nil {
		r := c.customResult(a)
		r.Scope3Category = a.Scope3Category
		return []Result{r}, nil
	}

	if a.Scope3Category == 0 {
		return nil, eris.New("engine: scope3_category is required for scope 3 calculations")
	}

	if a.SpendAmount != nil {
		return c.calcSpendBased(a)
	}

	if a.Distance != nil && isDistanceCategory(a.Scope3Category) {
		return c.calcDistanceBased(a)
	}

	if a.Scope3Category == 5 {
		return c.calcWaste(a)
	}

	return c.calcActivityBased(a)
}

// Categories 4, 6, 7, and 9 are the transport-shaped ones.
func isDistanceCategory(cat int) bool {
	switch cat {
	case 4, 6, 7, 9:
		return true
	}
	return false
}

// calcSpendBased uses economic input-output factors, kg CO2e per unit
// of currency. USEEIO answers NAICS-coded spend; EXIOBASE catches the
// rest.
func (c *Calculator) calcSpendBased(a Activity) ([]Result, error) {
	var factor *factors.Factor

	if a.NAICSCode != "" {
		if f, ok := c.registry.Find("spend_based", a.NAICSCode, "", "", factors.SourceUSEEIO); ok {
			factor = f
		} else if hits := c.registry.Search(factors.Query{
			Text: a.NAICSCode, Source: factors.SourceUSEEIO, Limit: 1,
		}); len(hits) > 0 {
			factor = hits[0]
		}
	}

	if factor == nil {
		query := a.NAICSCode
		if query == "" {
			query = a.Description
		}
		if hits := c.registry.Search(factors.Query{
			Text: query, Source: factors.SourceEXIOBASE, Limit: 1,
		}); len(hits) > 0 {
			factor = hits[0]
		}
	}

	if factor == nil {
		return nil, eris.Wrapf(ErrNoMatchingFactor,
			"spend-based naics=%s; provide a custom_factor (kg CO2e per USD)", a.NAICSCode)
	}

	spend := *a.SpendAmount
	perUnit := factor.CO2e
	if !factor.HasCO2e {
		perUnit = factor.CO2
	}

	r := Result{
		ActivityID:       a.ID,
		ActivityName:     a.Name,
		Scope:            Scope3,
		Scope3Category:   a.Scope3Category,
		TotalCO2eKG:      spend * perUnit,
		FactorID:         factor.ID,
		FactorSource:     factor.Source,
		ActivityQuantity: spend,
		ActivityUnit:     factor.ActivityUnit,
		GWPAssessment:    c.assessment,
		CalculatedAt:     now(),
		Notes:            []string{fmt.Sprintf("Spend-based: %.4f kg CO2e/%s", perUnit, factor.ActivityUnit)},
	}
	return []Result{r}, nil
}

// calcDistanceBased handles transport, travel, and commuting distances.
// Freight factors priced per tonne-km multiply in the shipment weight.
func (c *Calculator) calcDistanceBased(a Activity) ([]Result, error) {
	mode := a.TransportMode
	if mode == "" {
		mode = a.VehicleType
	}
	if mode == "" {
		mode = "average"
	}

	catName := Scope3CategoryName[a.Scope3Category]
	distanceUnit := a.DistanceUnit
	if distanceUnit == "" {
		distanceUnit = "km"
	}

	factor, ok := c.registry.Find(catName, mode, "", distanceUnit, "")
	if !ok {
		hits := c.registry.Search(factors.Query{Text: catName + " " + mode, Limit: 1})
		if len(hits) == 0 {
			return nil, eris.Wrapf(ErrNoMatchingFactor,
				"distance-based category=%s mode=%s", catName, mode)
		}
		factor = hits[0]
	}

	distance := *a.Distance
	if a.DistanceUnit != "" && !units.Same(a.DistanceUnit, factor.ActivityUnit) {
		if converted, err := units.Convert(distance, a.DistanceUnit, factor.ActivityUnit); err == nil {
			distance = converted
		}
		// Conversion failures between passenger-km style units and
		// plain distance are tolerated; the distance is used as-is.
	}

	quantity := distance
	if a.Weight != nil && units.Same(factor.ActivityUnit, "tonne_km") {
		weightTonnes := *a.Weight
		if a.WeightUnit != "" && !units.Same(a.WeightUnit, "tonne") {
			if converted, err := units.Convert(*a.Weight, a.WeightUnit, "tonne"); err == nil {
				weightTonnes = converted
			}
		}
		quantity = distance * weightTonnes
	}

	perUnit := factor.CO2e
	if !factor.HasCO2e {
		perUnit = factor.CO2
	}

	r := Result{
		ActivityID:       a.ID,
		ActivityName:     a.Name,
		Scope:            Scope3,
		Scope3Category:   a.Scope3Category,
		TotalCO2eKG:      quantity * perUnit,
		FactorID:         factor.ID,
		FactorSource:     factor.Source,
		ActivityQuantity: quantity,
		ActivityUnit:     factor.ActivityUnit,
		GWPAssessment:    c.assessment,
		CalculatedAt:     now(),
		Notes:            []string{"Distance-based: mode=" + mode},
	}
	return []Result{r}, nil
}

// calcWaste resolves disposal factors keyed "{waste_type}_{disposal}".
func (c *Calculator) calcWaste(a Activity) ([]Result, error) {
	wasteType := a.WasteType
	if wasteType == "" {
		wasteType = "mixed"
	}
	disposal := a.DisposalMethod
	if disposal == "" {
		disposal = "landfill"
	}

	key := wasteType + "_" + disposal
	factor, ok := c.registry.Find("waste", key, "", "", "")
	if !ok {
		hits := c.registry.Search(factors.Query{Text: "waste " + wasteType + " " + disposal, Limit: 1})
		if len(hits) == 0 {
			return nil, eris.Wrapf(ErrNoMatchingFactor,
				"waste type=%s disposal=%s", wasteType, disposal)
		}
		factor = hits[0]
	}

	perUnit := factor.CO2e
	if !factor.HasCO2e {
		perUnit = factor.CO2
	}

	qty := a.Quantity
	if !units.Same(a.Unit, factor.ActivityUnit) {
		if converted, err := units.Convert(a.Quantity, a.Unit, factor.ActivityUnit); err == nil {
			qty = converted
		}
	}

	r := Result{
		ActivityID:       a.ID,
		ActivityName:     a.Name,
		Scope:            Scope3,
		Scope3Category:   5,
		TotalCO2eKG:      qty * perUnit,
		FactorID:         factor.ID,
		FactorSource:     factor.Source,
		ActivityQuantity: qty,
		ActivityUnit:     factor.ActivityUnit,
		GWPAssessment:    c.assessment,
		CalculatedAt:     now(),
		Notes:            []string{fmt.Sprintf("Waste: %s/%s", wasteType, disposal)},
	}
	return []Result{r}, nil
}

// calcActivityBased is the generic fallback for any Scope 3 category.
func (c *Calculator) calcActivityBased(a Activity) ([]Result, error) {
	catName := Scope3CategoryName[a.Scope3Category]

	factor, ok := c.registry.Find(catName, "", "", a.Unit, a.FactorSource)
	if !ok {
		hits := c.registry.Search(factors.Query{
			Text: catName, ActivityUnit: a.Unit, Limit: 1,
		})
		if len(hits) == 0 {
			return nil, eris.Wrapf(ErrUnresolvedFactor,
				"scope 3 category %d (%s) unit=%s; provide a custom_factor", a.Scope3Category, catName, a.Unit)
		}
		factor = hits[0]
	}

	r, err := c.gasResult(a, factor, a.Quantity)
	if err != nil {
		return nil, err
	}
	r.Scope3Category = a.Scope3Category
	return []Result{r}, nil
}
