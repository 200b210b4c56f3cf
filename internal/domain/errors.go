package domain

import "errors"

var (
	// ErrInvalidParameter is returned when model parameters fail validation.
	// Construction of a simulation must not proceed past it.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrDegenerateBelief is returned when a Bayes update hits the formula
	// singularity or produces a posterior outside [0,1]. Fatal to the path
	// that triggered it; never clamped away.
	ErrDegenerateBelief = errors.New("degenerate belief update")

	// ErrInconsistentHistory is returned when path series lengths diverge
	// during aggregation. Indicates a logic error upstream, not retriable.
	ErrInconsistentHistory = errors.New("inconsistent history length")
)

// ParameterError reports which model parameter failed validation and why.
// It matches ErrInvalidParameter under errors.Is.
type ParameterError struct {
	Field  string
	Reason string
}

func (e *ParameterError) Error() string {
	return "invalid parameter [" + e.Field + "]: " + e.Reason
}

func (e *ParameterError) Unwrap() error {
	return ErrInvalidParameter
}
