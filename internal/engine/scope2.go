package engine

import (
	"github.com/rotisserie/eris"

	"github.com/sells-group/carbon-cli/internal/factors"
	"github.com/sells-group/carbon-cli/internal/units"
)

// calcScope2 calculates purchased electricity emissions. It always
// produces both accounting methods: a location-based result from grid
// average factors and a market-based result. Without supplier-specific
// data the market-based result proxies the grid average.
func (c *Calculator) calcScope2(a Activity) ([]Result, error) {
	qtyKWH := a.Quantity
	if !units.Same(a.Unit, "kWh") {
		var err error
		qtyKWH, err = units.Convert(a.Quantity, a.Unit, "kWh")
		if err != nil {
			return nil, eris.Wrap(err, "engine: electricity quantity must convert to kWh")
		}
	}

	if a.CustomFactor != nil {
		r := c.customResult(a)
		r.TotalCO2eKG = qtyKWH * (*a.CustomFactor)
		r.Scope2Method = a.Scope2Method
		if r.Scope2Method == "" {
			r.Scope2Method = LocationBased
		}
		return []Result{r}, nil
	}

	var results []Result

	if f := c.findLocationFactor(a); f != nil {
		r, err := c.gasResult(a, f, qtyKWH)
		if err != nil {
			return nil, err
		}
		r.Scope2Method = LocationBased
		results = append(results, r)
	}

	if f := c.findMarketFactor(a); f != nil {
		r, err := c.gasResult(a, f, qtyKWH)
		if err != nil {
			return nil, err
		}
		r.Scope2Method = MarketBased
		r.Notes = []string{"Market-based: using grid average as proxy (no supplier-specific data)"}
		results = append(results, r)
	}

	if len(results) == 0 {
		region := a.GridSubregion
		if region == "" {
			region = a.Country
		}
		return nil, eris.Wrapf(ErrNoMatchingFactor,
			"electricity region=%s; provide grid_subregion (eGRID code), country, or custom_factor", region)
	}
	return results, nil
}

// findLocationFactor resolves the grid average factor: eGRID subregion
// first, then Ember country, then the US national average.
func (c *Calculator) findLocationFactor(a Activity) *factors.Factor {
	if a.GridSubregion != "" {
		if f, ok := c.registry.Find("electricity", "", a.GridSubregion, "kWh", factors.SourceEGRID); ok {
			return f
		}
	}
	if a.Country != "" {
		if f, ok := c.registry.Find("electricity", "", a.Country, "kWh", factors.SourceEmber); ok {
			return f
		}
	}
	if f, ok := c.registry.Find("electricity", "", "US", "kWh", ""); ok {
		return f
	}
	return nil
}

// findMarketFactor resolves the market-based factor. A caller-pinned
// factor source wins; otherwise the grid average stands in, which is
// the conservative choice absent supplier data.
func (c *Calculator) findMarketFactor(a Activity) *factors.Factor {
	if a.FactorSource != "" {
		region := a.GridSubregion
		if region == "" {
			region = a.Country
		}
		if f, ok := c.registry.Find("electricity", "", region, "kWh", a.FactorSource); ok {
			return f
		}
	}
	return c.findLocationFactor(a)
}
