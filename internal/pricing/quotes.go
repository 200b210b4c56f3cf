// Package pricing implements the quoting rule and Bayesian belief updates
// of a binary-state sequential trade model. All functions are pure.
package pricing

// Quotes returns the (ask, bid) pair for the current belief delta and
// informed share mu. This is a linearized rule around the mid price:
//
//	mid  = (valueLow + valueHigh) / 2
//	half = (valueHigh - valueLow) * mu * delta / 2
//
// Both quotes collapse to the mid when delta = 0 (no informational
// asymmetry) or mu = 0 (no informed traders).
func Quotes(valueLow, valueHigh, delta, mu float64) (ask, bid float64) {
	mid := (valueLow + valueHigh) / 2
	half := (valueHigh - valueLow) * mu * delta / 2
	return mid + half, mid - half
}
