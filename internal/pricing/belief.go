package pricing

import (
	"fmt"
	"math"

	"glosten_go/internal/domain"
)

// denomEpsilon guards the update denominators against the singularity at
// mu*(1-2*delta) = -/+1.
const denomEpsilon = 1e-12

// UpdateOnBuy returns the posterior P(V = low) after observing an informed
// buy. With uninformed traders buying with probability 1/2:
//
//	P(L | buy) = delta*(1-mu) / (1 + mu*(1-2*delta))
//
// delta in {0,1} are fixed points: certainty cannot be revised.
func UpdateOnBuy(delta, mu float64) (float64, error) {
	return posterior(delta*(1-mu), 1+mu*(1-2*delta))
}

// UpdateOnSell returns the posterior P(V = low) after observing an informed
// sell:
//
//	P(L | sell) = delta*(1+mu) / (1 - mu*(1-2*delta))
func UpdateOnSell(delta, mu float64) (float64, error) {
	return posterior(delta*(1+mu), 1-mu*(1-2*delta))
}

func posterior(num, denom float64) (float64, error) {
	if math.Abs(denom) < denomEpsilon {
		return 0, fmt.Errorf("%w: denominator %g vanishes", domain.ErrDegenerateBelief, denom)
	}
	p := num / denom
	if p < 0 || p > 1 {
		return 0, fmt.Errorf("%w: posterior %g outside [0,1]", domain.ErrDegenerateBelief, p)
	}
	return p, nil
}
