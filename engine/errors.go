package engine

import "errors"

// Sentinel errors surfaced by Engine.Calculate and Reconstruct.
var (
	// ErrTimeout indicates the configured wall-clock budget elapsed before
	// the search window could be collapsed.
	ErrTimeout = errors.New("engine: search deadline exceeded")

	// ErrInvariantViolation indicates a cache or bound invariant the
	// engine relies on (Lower <= Upper, a cached root's removal splitting
	// into cached components, and so on) did not hold at runtime. Seeing
	// this means a bug in the engine itself, not bad input.
	ErrInvariantViolation = errors.New("engine: internal invariant violated")
)
