// Package engine runs the sequential trade simulation: single paths and
// their Monte Carlo aggregation.
package engine

import (
	"fmt"

	"glosten_go/internal/domain"
	"glosten_go/internal/pricing"
)

// DrawSource yields uniform draws in [0,1). *rand.Rand satisfies it; tests
// inject scripted sequences to force exact outcomes.
type DrawSource interface {
	Float64() float64
}

// Simulator runs one full path of the model. It consumes exactly two draws
// per tick, in a fixed order: trader type first, then the fundamental.
// Identical draw sequences therefore produce identical histories.
type Simulator struct {
	params domain.ModelParameters
	rng    DrawSource
}

// NewSimulator creates a simulator over validated parameters and its own
// draw source. The source must not be shared with other paths.
func NewSimulator(params domain.ModelParameters, rng DrawSource) *Simulator {
	return &Simulator{params: params, rng: rng}
}

// Run executes TickCount steps from the initial belief and returns the
// path history. A degenerate belief update aborts the whole path.
//
// Per tick: draw trader type (informed with probability mu), redraw the
// fundamental from the current belief, quote off the pre-update belief,
// then revise the belief only on informed flow. The maker is assumed able
// to tell informed flow from noise; uninformed trades leave the belief
// untouched.
func (s *Simulator) Run() (*domain.PathHistory, error) {
	p := s.params
	hist := domain.NewPathHistory(p.TickCount)

	delta := p.InitialBelief
	hist.Beliefs[0] = delta

	for t := 0; t < p.TickCount; t++ {
		trader := domain.TraderUninformed
		if s.rng.Float64() < p.InformedFraction {
			trader = domain.TraderInformed
		}

		// The fundamental is redrawn from the current belief every tick,
		// not fixed once per path.
		trueValue := p.ValueHigh
		if s.rng.Float64() < delta {
			trueValue = p.ValueLow
		}

		ask, bid := pricing.Quotes(p.ValueLow, p.ValueHigh, delta, p.InformedFraction)

		rec := domain.TickRecord{
			Trader:       trader,
			TrueValue:    trueValue,
			Ask:          ask,
			Bid:          bid,
			BeliefBefore: delta,
		}

		if trader == domain.TraderInformed {
			var err error
			if trueValue == p.ValueHigh {
				delta, err = pricing.UpdateOnBuy(delta, p.InformedFraction)
			} else {
				delta, err = pricing.UpdateOnSell(delta, p.InformedFraction)
			}
			if err != nil {
				return nil, fmt.Errorf("tick %d: %w", t, err)
			}
		}

		rec.BeliefAfter = delta
		// Illustrative concentration proxy, computed from the post-update
		// belief. Deliberately not equal to ask-bid.
		rec.Spread = p.InformedFraction * p.ValueRange() * delta * (1 - delta)

		hist.Ticks[t] = rec
		hist.Beliefs[t+1] = delta
	}

	return hist, nil
}
