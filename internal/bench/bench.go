package bench

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/midbel/mulscan"
	"github.com/midbel/mulscan/internal/stdio"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultRuns = 3

	NoParallel        = 0
	UnlimitedParallel = -1
)

type Options struct {
	Runs     int
	Parallel int
	Echo     io.Writer
	Logger   *zap.Logger
	Registry mulscan.Registry
}

type Result struct {
	Strategy string
	Toggle   bool
	Total    uint64
	Times    []time.Duration
}

func (r Result) Contract() string {
	return contract(r.Toggle)
}

func contract(toggle bool) string {
	if toggle {
		return "toggle"
	}
	return "all"
}

type job struct {
	name   string
	fn     mulscan.MatchFunc
	toggle bool
}

// Run executes every named strategy, for both contracts, opts.Runs times on
// input. Each job owns its result slot; input is only read.
func Run(ctx context.Context, input []byte, names []string, opts Options) ([]Result, error) {
	opts = opts.defaults()
	if len(names) == 0 {
		names = opts.Registry.Names()
	}
	var jobs []job
	for _, n := range names {
		fn, err := opts.Registry.Lookup(n)
		if err != nil {
			return nil, err
		}
		for _, toggle := range []bool{false, true} {
			jobs = append(jobs, job{
				name:   n,
				fn:     fn,
				toggle: toggle,
			})
		}
	}
	results := make([]Result, len(jobs))
	if opts.Parallel == NoParallel {
		for i, j := range jobs {
			res, err := execute(ctx, input, j, opts)
			if err != nil {
				return nil, err
			}
			results[i] = res
		}
		return results, nil
	}

	opts.Echo = stdio.Lock(opts.Echo)
	grp, sub := errgroup.WithContext(ctx)
	if opts.Parallel > 0 {
		grp.SetLimit(opts.Parallel)
	}
	for i, j := range jobs {
		i, j := i, j
		grp.Go(func() error {
			res, err := execute(sub, input, j, opts)
			if err == nil {
				results[i] = res
			}
			return err
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func execute(ctx context.Context, input []byte, j job, opts Options) (Result, error) {
	res := Result{
		Strategy: j.name,
		Toggle:   j.toggle,
	}
	if err := stdio.Linef(opts.Echo, "%s(%s): started", j.name, res.Contract()); err != nil {
		return res, err
	}
	for i := 0; i < opts.Runs; i++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		var (
			now   = time.Now()
			total = j.fn(input, j.toggle)
			took  = time.Since(now)
		)
		if i > 0 && total != res.Total {
			return res, fmt.Errorf("%s: total changed between runs (%d != %d)", j.name, res.Total, total)
		}
		res.Total = total
		res.Times = append(res.Times, took)
		opts.Logger.Debug("run done",
			zap.String("strategy", j.name),
			zap.Bool("toggle", j.toggle),
			zap.Int("run", i+1),
			zap.Uint64("total", total),
			zap.Duration("elapsed", took))
	}
	return res, stdio.Linef(opts.Echo, "%s(%s): done", j.name, res.Contract())
}

func (o Options) defaults() Options {
	if o.Runs <= 0 {
		o.Runs = DefaultRuns
	}
	if o.Echo == nil {
		o.Echo = io.Discard
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.Registry == nil {
		o.Registry = mulscan.DefaultRegistry
	}
	return o
}

type MismatchError struct {
	Toggle bool
	Totals map[string]uint64
}

func (e *MismatchError) Error() string {
	var (
		names []string
		parts []string
	)
	for n := range e.Totals {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		parts = append(parts, fmt.Sprintf("%s=%d", n, e.Totals[n]))
	}
	return fmt.Sprintf("strategies disagree (%s): %s", contract(e.Toggle), strings.Join(parts, ", "))
}

// Agree checks that every strategy computed the same total for a given
// contract.
func Agree(results []Result) error {
	for _, toggle := range []bool{false, true} {
		var (
			totals = make(map[string]uint64)
			seen   = make(map[uint64]struct{})
		)
		for _, r := range results {
			if r.Toggle != toggle {
				continue
			}
			totals[r.Strategy] = r.Total
			seen[r.Total] = struct{}{}
		}
		if len(seen) > 1 {
			return &MismatchError{
				Toggle: toggle,
				Totals: totals,
			}
		}
	}
	return nil
}
