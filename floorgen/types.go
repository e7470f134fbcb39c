// Package floorgen: tunable options and error definitions for floor
// topology generation.
package floorgen

import "errors"

// Sentinel errors for floor generation.
var (
	// ErrTooFewRooms indicates roomCount < 1.
	ErrTooFewRooms = errors.New("floorgen: room count too small")

	// ErrInvalidBranching indicates a branching factor outside [0,1].
	ErrInvalidBranching = errors.New("floorgen: branching factor out of range")

	// ErrNeedRandSource indicates a nil RNG where the branching factor
	// requires stochastic attachment choices.
	ErrNeedRandSource = errors.New("floorgen: rng is required")

	// ErrOptionViolation indicates an invalid Option was supplied.
	ErrOptionViolation = errors.New("floorgen: invalid option supplied")
)

// Option configures Generate behavior via functional arguments.
// An invalid Option (e.g. a nil hook) is recorded internally and surfaced
// as ErrOptionViolation when Generate is invoked.
type Option func(*GenOptions)

// GenOptions holds hooks to observe topology growth.
type GenOptions struct {
	// OnAttach is called once per added room, after its single attachment
	// connection is decided. Receives the new room id and its parent id.
	OnAttach func(room, parent int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns GenOptions with a no-op attach hook.
func DefaultOptions() GenOptions {
	return GenOptions{
		OnAttach: func(int, int) {},
		err:      nil,
	}
}

// WithOnAttach sets a hook observing each room attachment.
// A nil hook is an option violation.
func WithOnAttach(hook func(room, parent int)) Option {
	return func(o *GenOptions) {
		if hook == nil {
			o.err = ErrOptionViolation

			return
		}
		o.OnAttach = hook
	}
}
