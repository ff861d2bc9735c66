package engine

import (
	"fmt"

	"github.com/rotisserie/eris"
)

// Recoverable calculation errors. An activity that hits one of these is
// recorded as a Failure; the rest of the batch still calculates.
var (
	// ErrNoMatchingFactor means no emission factor in the registry
	// matched the activity's category, fuel, region, and unit.
	ErrNoMatchingFactor = eris.New("engine: no matching emission factor")

	// ErrUnresolvedFactor means every resolution strategy for the
	// activity was exhausted without producing a factor.
	ErrUnresolvedFactor = eris.New("engine: unable to resolve emission factor")
)

// ValidationError reports a malformed activity record. Validation runs
// before any calculation, and a single ValidationError fails the whole
// batch.
type ValidationError struct {
	Index int
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("engine: activity %d: %s: %s", e.Index, e.Field, e.Msg)
}
