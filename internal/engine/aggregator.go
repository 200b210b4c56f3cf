package engine

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"runtime"
	"sync"
	"time"

	"glosten_go/internal/domain"
	"glosten_go/internal/infra"
	"glosten_go/pkg/stats"
)

// seriesAcc accumulates one worker's share of paths. Workers never share
// accumulators; partials are merged after the pool drains, and the merge
// order does not matter.
type seriesAcc struct {
	spread      *stats.RunningMean
	belief      *stats.RunningMean
	fundamental *stats.RunningMean
	ask         *stats.RunningMean
	bid         *stats.RunningMean
}

func newSeriesAcc(tickCount int) *seriesAcc {
	return &seriesAcc{
		spread:      stats.NewRunningMean(tickCount),
		belief:      stats.NewRunningMean(tickCount + 1),
		fundamental: stats.NewRunningMean(tickCount),
		ask:         stats.NewRunningMean(tickCount),
		bid:         stats.NewRunningMean(tickCount),
	}
}

func (a *seriesAcc) add(h *domain.PathHistory) error {
	if err := a.spread.Add(h.Spreads()); err != nil {
		return err
	}
	if err := a.belief.Add(h.Beliefs); err != nil {
		return err
	}
	if err := a.fundamental.Add(h.Fundamentals()); err != nil {
		return err
	}
	if err := a.ask.Add(h.Asks()); err != nil {
		return err
	}
	return a.bid.Add(h.Bids())
}

func (a *seriesAcc) merge(other *seriesAcc) error {
	if err := a.spread.Merge(other.spread); err != nil {
		return err
	}
	if err := a.belief.Merge(other.belief); err != nil {
		return err
	}
	if err := a.fundamental.Merge(other.fundamental); err != nil {
		return err
	}
	if err := a.ask.Merge(other.ask); err != nil {
		return err
	}
	return a.bid.Merge(other.bid)
}

// Aggregator fans ReplicationCount independent simulator paths across a
// bounded worker pool and reduces them to elementwise means.
//
// Path i draws from its own PCG stream seeded (masterSeed, i), so the
// result is reproducible for a fixed master seed regardless of how many
// workers execute the pool.
type Aggregator struct {
	params  domain.ModelParameters
	seed    uint64
	workers int
	metrics *infra.Metrics
}

// NewAggregator creates an aggregator. workers <= 0 means one per CPU.
func NewAggregator(params domain.ModelParameters, seed uint64, workers int) *Aggregator {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > params.ReplicationCount {
		workers = params.ReplicationCount
	}
	return &Aggregator{
		params:  params,
		seed:    seed,
		workers: workers,
		metrics: infra.GlobalMetrics,
	}
}

// Run executes all replications and returns their elementwise means.
// The first path error cancels the pool and is returned; ctx cancellation
// aborts the run with ctx's error.
func (a *Aggregator) Run(ctx context.Context) (*domain.AggregateHistory, error) {
	p := a.params

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	paths := make(chan int)
	partials := make(chan *seriesAcc, a.workers)
	errc := make(chan error, 1)

	fail := func(err error) {
		select {
		case errc <- err:
		default:
		}
		cancel()
	}

	a.metrics.SetActiveWorkers(int32(a.workers))
	defer a.metrics.SetActiveWorkers(0)

	var wg sync.WaitGroup
	for w := 0; w < a.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			acc := newSeriesAcc(p.TickCount)
			for idx := range paths {
				start := time.Now()
				rng := rand.New(rand.NewPCG(a.seed, uint64(idx)))
				hist, err := NewSimulator(p, rng).Run()
				if err != nil {
					a.metrics.RecordPathError()
					fail(fmt.Errorf("path %d: %w", idx, err))
					return
				}
				if err := acc.add(hist); err != nil {
					fail(fmt.Errorf("%w: path %d: %v", domain.ErrInconsistentHistory, idx, err))
					return
				}
				a.metrics.RecordPath(p.TickCount, time.Since(start).Nanoseconds())
			}
			partials <- acc
		}()
	}

	go func() {
		defer close(paths)
		for i := 0; i < p.ReplicationCount; i++ {
			select {
			case <-runCtx.Done():
				return
			case paths <- i:
			}
		}
	}()

	wg.Wait()
	close(partials)

	select {
	case err := <-errc:
		return nil, err
	default:
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	merged := newSeriesAcc(p.TickCount)
	for acc := range partials {
		if err := merged.merge(acc); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInconsistentHistory, err)
		}
	}
	if merged.spread.Runs() != p.ReplicationCount {
		return nil, fmt.Errorf("%w: accumulated %d paths, expected %d",
			domain.ErrInconsistentHistory, merged.spread.Runs(), p.ReplicationCount)
	}

	slog.Debug("Monte Carlo reduction complete",
		slog.Int("replications", p.ReplicationCount),
		slog.Int("workers", a.workers))

	return &domain.AggregateHistory{
		Spread:      merged.spread.Mean(),
		Belief:      merged.belief.Mean(),
		Fundamental: merged.fundamental.Mean(),
		Ask:         merged.ask.Mean(),
		Bid:         merged.bid.Mean(),
	}, nil
}
