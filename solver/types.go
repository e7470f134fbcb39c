// Package solver: tunable options and error definitions for assignment
// solving.
package solver

import "errors"

// defaultMaxSteps bounds the number of candidate trials before the search
// gives up; generous for well-formed rule sets, finite for pathological ones.
const defaultMaxSteps = 100_000

// Sentinel errors for assignment solving.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("solver: graph is nil")

	// ErrNilRule is returned when the rule list contains a nil entry.
	ErrNilRule = errors.New("solver: nil rule")

	// ErrUnsatisfiable is returned when no total assignment satisfies the
	// rules; the wrapping error names the room and types that failed.
	ErrUnsatisfiable = errors.New("solver: no satisfying assignment")

	// ErrSearchBudget is returned when backtracking exceeded the step budget.
	ErrSearchBudget = errors.New("solver: search budget exhausted")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solver: invalid option supplied")
)

// Option configures Solve behavior via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when Solve is invoked.
type Option func(*SolveOptions)

// SolveOptions holds parameters bounding the backtracking search.
type SolveOptions struct {
	// MaxSteps caps the number of candidate trials across the whole
	// search; exceeding it aborts with ErrSearchBudget.
	MaxSteps int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns SolveOptions with the default step budget.
func DefaultOptions() SolveOptions {
	return SolveOptions{
		MaxSteps: defaultMaxSteps,
		err:      nil,
	}
}

// WithMaxSteps overrides the search step budget. Values < 1 are an
// option violation.
func WithMaxSteps(n int) Option {
	return func(o *SolveOptions) {
		if n < 1 {
			o.err = ErrOptionViolation

			return
		}
		o.MaxSteps = n
	}
}
