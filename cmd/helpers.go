package main

import (
	"context"

	"github.com/sells-group/carbon-cli/internal/engine"
	"github.com/sells-group/carbon-cli/internal/factors"
	"github.com/sells-group/carbon-cli/internal/gwp"
	"github.com/sells-group/carbon-cli/internal/store"
)

func initStore(ctx context.Context) (store.Store, error) {
	dsn := cfg.Store.DatabaseURL
	if dsn == "" && cfg.Store.Driver == "sqlite" {
		dsn = "carbon.db"
	}
	return store.Open(ctx, cfg.Store.Driver, dsn)
}

// initRegistry loads the embedded factors plus any custom file from the
// flag or config.
func initRegistry(factorsFile string) (*factors.Registry, error) {
	reg := factors.Load()

	path := factorsFile
	if path == "" {
		path = cfg.Engine.FactorsFile
	}
	if path != "" {
		if _, err := reg.LoadCustomFile(path); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// initCalculator builds a calculator from config, with the GWP
// assessment optionally overridden by a flag.
func initCalculator(reg *factors.Registry, gwpFlag string) (*engine.Calculator, error) {
	raw := gwpFlag
	if raw == "" {
		raw = cfg.Engine.GWPAssessment
	}
	assessment, err := gwp.ParseAssessment(raw)
	if err != nil {
		return nil, err
	}
	return engine.New(reg,
		engine.WithAssessment(assessment),
		engine.WithWorkers(cfg.Engine.Workers),
	), nil
}
