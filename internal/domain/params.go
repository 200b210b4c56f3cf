package domain

import "fmt"

// ModelParameters holds the inputs of one simulation campaign.
// Treated as immutable after Validate passes.
type ModelParameters struct {
	ValueLow         float64 `json:"value_low"`         // low fundamental state
	ValueHigh        float64 `json:"value_high"`        // high fundamental state
	InitialBelief    float64 `json:"initial_belief"`    // prior P(V = ValueLow)
	InformedFraction float64 `json:"informed_fraction"` // share of informed traders (mu)
	TickCount        int     `json:"tick_count"`        // trades per path
	ReplicationCount int     `json:"replications"`      // independent Monte Carlo paths
}

// Validate checks every parameter bound. Any violation is fatal: the
// simulation must not be constructed from an invalid set.
func (p ModelParameters) Validate() error {
	if p.ValueHigh <= p.ValueLow {
		return &ParameterError{
			Field:  "value_high",
			Reason: fmt.Sprintf("must exceed value_low (%g <= %g)", p.ValueHigh, p.ValueLow),
		}
	}
	if p.InitialBelief < 0 || p.InitialBelief > 1 {
		return &ParameterError{
			Field:  "initial_belief",
			Reason: fmt.Sprintf("must be in [0,1], got %g", p.InitialBelief),
		}
	}
	if p.InformedFraction < 0 || p.InformedFraction > 1 {
		return &ParameterError{
			Field:  "informed_fraction",
			Reason: fmt.Sprintf("must be in [0,1], got %g", p.InformedFraction),
		}
	}
	if p.TickCount <= 0 {
		return &ParameterError{
			Field:  "tick_count",
			Reason: fmt.Sprintf("must be positive, got %d", p.TickCount),
		}
	}
	if p.ReplicationCount <= 0 {
		return &ParameterError{
			Field:  "replications",
			Reason: fmt.Sprintf("must be positive, got %d", p.ReplicationCount),
		}
	}
	return nil
}

// ValueRange returns ValueHigh - ValueLow.
func (p ModelParameters) ValueRange() float64 {
	return p.ValueHigh - p.ValueLow
}
