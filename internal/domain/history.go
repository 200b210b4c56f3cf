package domain

// TraderType identifies who submitted the order at a tick.
type TraderType int8

const (
	TraderUninformed TraderType = iota
	TraderInformed
)

// String returns the string representation of TraderType
func (t TraderType) String() string {
	switch t {
	case TraderUninformed:
		return "UNINFORMED"
	case TraderInformed:
		return "INFORMED"
	default:
		return "UNKNOWN"
	}
}

// TickRecord captures everything observed at a single tick. Immutable once
// recorded, owned exclusively by the path that produced it.
type TickRecord struct {
	Trader       TraderType `json:"trader"`
	TrueValue    float64    `json:"true_value"`    // fundamental drawn this tick
	Ask          float64    `json:"ask"`           // quoted before the update
	Bid          float64    `json:"bid"`           // quoted before the update
	BeliefBefore float64    `json:"belief_before"` // delta used for the quote
	BeliefAfter  float64    `json:"belief_after"`  // delta after the update (if any)
	Spread       float64    `json:"spread"`        // illustrative proxy, not Ask-Bid
}

// PathHistory is one full simulated path: TickCount records plus the
// TickCount+1 belief trajectory (initial belief prepended). Fixed-size by
// construction so length consistency across paths holds trivially.
type PathHistory struct {
	Ticks   []TickRecord `json:"ticks"`
	Beliefs []float64    `json:"beliefs"`
}

// NewPathHistory preallocates a history for tickCount ticks.
func NewPathHistory(tickCount int) *PathHistory {
	return &PathHistory{
		Ticks:   make([]TickRecord, tickCount),
		Beliefs: make([]float64, tickCount+1),
	}
}

// Spreads returns the illustrative spread series, one value per tick.
func (h *PathHistory) Spreads() []float64 {
	out := make([]float64, len(h.Ticks))
	for i, rec := range h.Ticks {
		out[i] = rec.Spread
	}
	return out
}

// Fundamentals returns the realized true-value series.
func (h *PathHistory) Fundamentals() []float64 {
	out := make([]float64, len(h.Ticks))
	for i, rec := range h.Ticks {
		out[i] = rec.TrueValue
	}
	return out
}

// Asks returns the quoted ask series.
func (h *PathHistory) Asks() []float64 {
	out := make([]float64, len(h.Ticks))
	for i, rec := range h.Ticks {
		out[i] = rec.Ask
	}
	return out
}

// Bids returns the quoted bid series.
func (h *PathHistory) Bids() []float64 {
	out := make([]float64, len(h.Ticks))
	for i, rec := range h.Ticks {
		out[i] = rec.Bid
	}
	return out
}

// AggregateHistory holds the elementwise means of the five series across
// all replications. Read-only once produced; belief runs one longer than
// the others because it includes the prior.
type AggregateHistory struct {
	Spread      []float64 `json:"spread"`
	Belief      []float64 `json:"belief"`
	Fundamental []float64 `json:"fundamental"`
	Ask         []float64 `json:"ask"`
	Bid         []float64 `json:"bid"`
}

// TickCount returns the number of ticks covered by the aggregate.
func (a *AggregateHistory) TickCount() int {
	return len(a.Spread)
}

// Row is one tabular export line of the aggregate series.
type Row struct {
	Tick        int
	Spread      float64
	Belief      float64
	Fundamental float64
	Ask         float64
	Bid         float64
}

// Rows flattens the aggregate into (t, spread, delta, fundamental, ask, bid)
// lines. The belief at row t is the post-tick value Belief[t+1], aligning it
// with the spread series which is also computed after the update.
func (a *AggregateHistory) Rows() []Row {
	rows := make([]Row, a.TickCount())
	for t := range rows {
		rows[t] = Row{
			Tick:        t,
			Spread:      a.Spread[t],
			Belief:      a.Belief[t+1],
			Fundamental: a.Fundamental[t],
			Ask:         a.Ask[t],
			Bid:         a.Bid[t],
		}
	}
	return rows
}
