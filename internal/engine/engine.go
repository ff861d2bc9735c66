package engine

import (
	"context"
	"errors"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/carbon-cli/internal/factors"
	"github.com/sells-group/carbon-cli/internal/gwp"
	"github.com/sells-group/carbon-cli/internal/units"
)

const defaultWorkers = 8

func now() time.Time { return time.Now().UTC() }

// Calculator routes activities to scope calculators and aggregates the
// results. It is safe for concurrent use once constructed.
type Calculator struct {
	registry   *factors.Registry
	assessment gwp.Assessment
	workers    int
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithAssessment sets the run-level GWP assessment. A factor that
// declares its own assessment keeps it regardless.
func WithAssessment(a gwp.Assessment) Option {
	return func(c *Calculator) { c.assessment = a }
}

// WithWorkers bounds batch calculation concurrency.
func WithWorkers(n int) Option {
	return func(c *Calculator) {
		if n > 0 {
			c.workers = n
		}
	}
}

// New builds a Calculator over the given factor registry.
func New(registry *factors.Registry, opts ...Option) *Calculator {
	c := &Calculator{
		registry:   registry,
		assessment: gwp.DefaultAssessment,
		workers:    defaultWorkers,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CalculateSingle calculates emissions for one activity. It returns a
// slice because some activities produce multiple results; Scope 2
// produces both a location-based and a market-based result.
func (c *Calculator) CalculateSingle(a Activity) ([]Result, error) {
	switch a.Scope {
	case Scope1:
		return c.calcScope1(a)
	case Scope2:
		return c.calcScope2(a)
	case Scope3:
		return c.calcScope3(a)
	default:
		return nil, eris.Errorf("engine: unknown scope %q", a.Scope)
	}
}

// CalculateInventory calculates a complete inventory from a batch of
// activities. Validation failures reject the whole batch; calculation
// failures are recorded per activity and the partial inventory is
// returned. Results keep the input activity order.
func (c *Calculator) CalculateInventory(ctx context.Context, activities []Activity, name string, year int) (*Inventory, error) {
	if err := ValidateAll(activities); err != nil {
		return nil, err
	}

	log := zap.L().With(zap.String("inventory", name), zap.Int("activities", len(activities)))
	log.Debug("calculating inventory")

	results := make([][]Result, len(activities))
	errs := make([]error, len(activities))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)

	for i, a := range activities {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i], errs[i] = c.CalculateSingle(a)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, eris.Wrap(err, "engine: inventory calculation aborted")
	}

	inv := &Inventory{
		Name:          name,
		Year:          year,
		GWPAssessment: c.assessment,
		CalculatedAt:  time.Now().UTC(),
	}

	for i, a := range activities {
		if err := errs[i]; err != nil {
			log.Warn("activity calculation failed",
				zap.Int("index", i),
				zap.String("activity_id", a.ID),
				zap.Error(err))
			inv.Failures = append(inv.Failures, Failure{
				Index:        i,
				ActivityID:   a.ID,
				ActivityName: a.Name,
				Error:        err.Error(),
			})
			continue
		}
		for _, r := range results[i] {
			inv.addResult(r)
		}
	}

	log.Info("inventory calculated",
		zap.Float64("total_co2e_kg", inv.TotalCO2eKG()),
		zap.Int("failures", len(inv.Failures)))
	return inv, nil
}

// resolveFactor finds a factor matching the activity's unit, or any
// unit when conversion can bridge the gap. The returned quantity is the
// activity quantity expressed in the factor's unit.
func (c *Calculator) resolveFactor(category, fuelType, region string, a Activity) (*factors.Factor, float64, error) {
	if f, ok := c.registry.Find(category, fuelType, region, a.Unit, a.FactorSource); ok {
		return f, a.Quantity, nil
	}

	f, ok := c.registry.Find(category, fuelType, region, "", a.FactorSource)
	if !ok {
		return nil, 0, eris.Wrapf(ErrNoMatchingFactor,
			"category=%s fuel=%s unit=%s", category, fuelType, a.Unit)
	}

	qty, err := units.Convert(a.Quantity, a.Unit, f.ActivityUnit)
	if err != nil {
		return nil, 0, eris.Wrapf(err, "engine: factor %s wants %s", f.ID, f.ActivityUnit)
	}
	return f, qty, nil
}

// gasResult computes per-gas emissions for a quantity against a factor
// and assembles the result skeleton. A factor whose declared assessment
// has no GWP table entry is a corrupt row and fails the activity.
func (c *Calculator) gasResult(a Activity, f *factors.Factor, qty float64) (Result, error) {
	assessment := f.Assessment(c.assessment)

	var (
		breakdown []GasBreakdown
		total     float64
	)
	for _, g := range []struct {
		gas  string
		mass float64
	}{
		{"co2", qty * f.CO2},
		{"ch4", qty * f.CH4},
		{"n2o", qty * f.N2O},
	} {
		if g.mass <= 0 {
			continue
		}
		gwpVal, err := gwp.Lookup(g.gas, assessment)
		if err != nil {
			return Result{}, eris.Wrapf(err, "engine: factor %s declares assessment %q", f.ID, assessment)
		}
		co2e := g.mass * gwpVal
		breakdown = append(breakdown, GasBreakdown{
			Gas:           g.gas,
			MassKG:        g.mass,
			CO2eKG:        co2e,
			GWPUsed:       gwpVal,
			GWPAssessment: assessment,
		})
		total += co2e
	}

	// A factor published with a pre-computed aggregate is authoritative
	// over the reconstructed gas split.
	if f.HasCO2e {
		total = qty * f.CO2e
	}

	return Result{
		ActivityID:       a.ID,
		ActivityName:     a.Name,
		Scope:            a.Scope,
		TotalCO2eKG:      total,
		GasBreakdown:     breakdown,
		FactorID:         f.ID,
		FactorSource:     f.Source,
		ActivityQuantity: a.Quantity,
		ActivityUnit:     a.Unit,
		GWPAssessment:    assessment,
		CalculatedAt:     time.Now().UTC(),
	}, nil
}

// customResult applies a caller-provided factor directly.
func (c *Calculator) customResult(a Activity) Result {
	return Result{
		ActivityID:       a.ID,
		ActivityName:     a.Name,
		Scope:            a.Scope,
		TotalCO2eKG:      a.Quantity * (*a.CustomFactor),
		ActivityQuantity: a.Quantity,
		ActivityUnit:     a.Unit,
		GWPAssessment:    c.assessment,
		CalculatedAt:     time.Now().UTC(),
		Notes:            []string{"Custom emission factor used"},
	}
}

// Recoverable reports whether a calculation error should be recorded as
// a per-activity failure instead of failing the batch.
func Recoverable(err error) bool {
	return errors.Is(err, ErrNoMatchingFactor) ||
		errors.Is(err, ErrUnresolvedFactor) ||
		errors.Is(err, units.ErrIncompatibleUnits) ||
		errors.Is(err, gwp.ErrUnknownGas)
}
