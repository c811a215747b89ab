// Package sweep measures randomized boards across a range of densities.
package sweep

import (
	"context"
	"errors"
	"math"
	"runtime"
	"slices"
	"sort"

	"lifeboard/internal/session"
	"lifeboard/pkg/random"

	"golang.org/x/sync/errgroup"
)

// ErrNoDensities is returned when Run is given nothing to measure.
var ErrNoDensities = errors.New("sweep: no densities")

// Options configures a sweep.
type Options struct {
	Width, Height int
	Boards        int
	Generations   int
	Workers       int
	Seed          int64
	Densities     []random.Ratio
}

// DefaultOptions samples a small board at a handful of densities.
func DefaultOptions() Options {
	return Options{
		Width:       64,
		Height:      48,
		Boards:      64,
		Generations: 200,
		Workers:     runtime.NumCPU(),
		Seed:        1,
		Densities: []random.Ratio{
			{Num: 1, Den: 10},
			{Num: 1, Den: 5},
			{Num: 1, Den: 4},
			{Num: 1, Den: 3},
			{Num: 1, Den: 2},
		},
	}
}

// Result summarizes the boards sampled at one density.
type Result struct {
	Density random.Ratio
	Boards  int

	// InitialFraction is the empirical alive fraction right after
	// randomization; Sigma is its expected standard error.
	InitialFraction float64
	Sigma           float64

	MeanPopulation float64
	Extinct        int
	Settled        int
}

// Deviation is how many standard errors the initial fraction lies from the
// requested density.
func (r Result) Deviation() float64 {
	if r.Sigma == 0 {
		return 0
	}
	return math.Abs(r.InitialFraction-r.Density.Float()) / r.Sigma
}

type boardResult struct {
	density    int
	initial    int
	population int
	settled    bool
}

// Run simulates opt.Boards independent sessions per density in parallel and
// returns one Result per density in input order.
func Run(ctx context.Context, opt Options) ([]Result, error) {
	if len(opt.Densities) == 0 {
		return nil, ErrNoDensities
	}
	if opt.Workers <= 0 {
		opt.Workers = 1
	}
	if opt.Boards <= 0 {
		opt.Boards = 1
	}

	out := make([]boardResult, len(opt.Densities)*opt.Boards)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opt.Workers)
	for d, density := range opt.Densities {
		for b := 0; b < opt.Boards; b++ {
			slot := d*opt.Boards + b
			seed := opt.Seed + int64(slot)
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				out[slot] = runBoard(opt, d, density, seed)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return summarize(opt, out), nil
}

func runBoard(opt Options, d int, density random.Ratio, seed int64) boardResult {
	sess := session.New(session.Config{
		Width:   opt.Width,
		Height:  opt.Height,
		Density: density,
	}, random.NewRNG(seed))
	res := boardResult{density: d, initial: sess.Current().Population()}
	for i := 0; i < opt.Generations; i++ {
		sess.AdvanceIfPlaying()
	}
	res.population = sess.Current().Population()

	// Settled boards (still lifes, extinct boards) are unchanged by one
	// more generation.
	before := slices.Clone(sess.Current().Cells())
	sess.TogglePlay()
	sess.StepOnce()
	sess.AdvanceIfPlaying()
	res.settled = slices.Equal(before, sess.Current().Cells())
	return res
}

func summarize(opt Options, boards []boardResult) []Result {
	cells := float64(opt.Width * opt.Height)
	results := make([]Result, len(opt.Densities))
	for d, density := range opt.Densities {
		results[d] = Result{Density: density, Boards: opt.Boards}
	}
	for _, b := range boards {
		r := &results[b.density]
		r.InitialFraction += float64(b.initial)
		r.MeanPopulation += float64(b.population)
		if b.population == 0 {
			r.Extinct++
		}
		if b.settled {
			r.Settled++
		}
	}
	for i := range results {
		r := &results[i]
		n := float64(r.Boards)
		p := r.Density.Float()
		r.InitialFraction /= n * cells
		r.MeanPopulation /= n
		r.Sigma = math.Sqrt(p * (1 - p) / (n * cells))
	}
	return results
}

// ByMeanPopulation orders results from the most to the least populated.
func ByMeanPopulation(rs []Result) {
	sort.SliceStable(rs, func(i, j int) bool { return rs[i].MeanPopulation > rs[j].MeanPopulation })
}
