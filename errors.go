package treedepth

import "errors"

// Top-level sentinel errors. ErrTimeout and ErrInvariantViolation mirror
// engine's own sentinels (spec §7's two error kinds); they are redeclared
// here so callers of this package need not import engine directly.
var (
	ErrTimeout            = errors.New("treedepth: search deadline exceeded")
	ErrInvariantViolation = errors.New("treedepth: internal invariant violated")
)
