// Package store persists calculated inventories as runs.
package store

import (
	"context"
	"time"

	"github.com/rotisserie/eris"

	"github.com/sells-group/carbon-cli/internal/engine"
)

// Run is a persisted inventory calculation.
type Run struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Year          int               `json:"year,omitempty"`
	GWPAssessment string            `json:"gwp_assessment"`
	TotalCO2eKG   float64           `json:"total_co2e_kg"`
	FailureCount  int               `json:"failure_count"`
	Inventory     *engine.Inventory `json:"inventory,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
}

// RunFilter specifies criteria for listing runs. Listings omit the full
// inventory payload; GetRun returns it.
type RunFilter struct {
	Year   int    `json:"year,omitempty"`
	Name   string `json:"name,omitempty"`
	Limit  int    `json:"limit,omitempty"`
	Offset int    `json:"offset,omitempty"`
}

// Store defines the persistence interface for inventory runs.
type Store interface {
	SaveInventory(ctx context.Context, inv *engine.Inventory) (*Run, error)
	GetRun(ctx context.Context, runID string) (*Run, error)
	ListRuns(ctx context.Context, filter RunFilter) ([]Run, error)
	DeleteRun(ctx context.Context, runID string) error

	Migrate(ctx context.Context) error
	Close() error
}

// ErrRunNotFound is returned when a run ID does not exist.
var ErrRunNotFound = eris.New("store: run not found")

// Open builds a Store for the configured driver.
func Open(ctx context.Context, driver, databaseURL string) (Store, error) {
	switch driver {
	case "sqlite":
		return NewSQLite(databaseURL)
	case "postgres":
		return NewPostgres(ctx, databaseURL)
	default:
		return nil, eris.Errorf("store: unknown driver %q", driver)
	}
}

func runFromInventory(inv *engine.Inventory) *Run {
	return &Run{
		Name:          inv.Name,
		Year:          inv.Year,
		GWPAssessment: string(inv.GWPAssessment),
		TotalCO2eKG:   inv.TotalCO2eKG(),
		FailureCount:  len(inv.Failures),
		Inventory:     inv,
		CreatedAt:     time.Now().UTC(),
	}
}
