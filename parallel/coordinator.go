// SPDX-License-Identifier: MIT

package parallel

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc/pool"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/antcover/setcover"
)

var (
	log    = logrus.WithField("prefix", "parallel")
	tracer = otel.Tracer("github.com/katalvlaran/antcover/parallel")
)

// Runner is one isolated attempt. Run returns the best complete cover it
// found, honouring ctx.
type Runner interface {
	Run(ctx context.Context) ([]int, error)
}

// RunnerFunc adapts a function to Runner.
type RunnerFunc func(ctx context.Context) ([]int, error)

// Run implements Runner.
func (f RunnerFunc) Run(ctx context.Context) ([]int, error) { return f(ctx) }

// RunnerFactory builds the Runner of one attempt over its private
// Environment clone.
type RunnerFactory func(env *setcover.Environment, seed int64) Runner

// Options configures a Coordinator.
type Options struct {
	// Runs is the number of independent attempts (≥ 1).
	Runs int

	// Concurrency bounds simultaneous attempts; 0 means Runs.
	Concurrency int

	// Deadline is the shared wall-clock budget; 0 means none beyond ctx.
	Deadline time.Duration

	// Seed is the parent of every run seed (DeriveSeed(Seed, run)).
	Seed int64
}

// Validate rejects nonsensical options with setcover.ErrConfiguration.
func (o Options) Validate() error {
	switch {
	case o.Runs < 1:
		return fmt.Errorf("runs %d < 1: %w", o.Runs, setcover.ErrConfiguration)
	case o.Concurrency < 0:
		return fmt.Errorf("concurrency %d is negative: %w", o.Concurrency, setcover.ErrConfiguration)
	case o.Deadline < 0:
		return fmt.Errorf("deadline %v is negative: %w", o.Deadline, setcover.ErrConfiguration)
	}

	return nil
}

// RunResult is the outcome of one attempt.
type RunResult struct {
	Index    int
	ID       uuid.UUID
	Seed     int64
	Solution []int
	Cost     int
	Elapsed  time.Duration
	Err      error
}

// Result is the outcome of a Solve.
type Result struct {
	Solution []int
	Cost     int
	Run      int
	RunID    uuid.UUID
	Elapsed  time.Duration

	// Runs holds every attempt ordered by index, failed ones included.
	Runs []RunResult
}

// Coordinator fans attempts out and reduces them to the best cover.
type Coordinator struct {
	opts Options
}

// NewCoordinator validates opts.
func NewCoordinator(opts Options) (*Coordinator, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	return &Coordinator{opts: opts}, nil
}

// Options returns the coordinator's options.
func (c *Coordinator) Options() Options { return c.opts }

// Solve runs Options.Runs attempts and returns the minimum-cost valid cover.
//
// Errors:
//   - setcover.ErrInvalidSolution when any attempt returns a cover that fails
//     ground-truth validation (fatal, remaining attempts are cancelled);
//   - setcover.ErrNoValidSolution when no attempt produced a cover; the
//     per-attempt errors are joined into the message.
func (c *Coordinator) Solve(ctx context.Context, env *setcover.Environment, factory RunnerFactory) (Result, error) {
	ix := env.Index()
	ctx, span := tracer.Start(ctx, "parallel.Solve",
		trace.WithAttributes(
			attribute.Int("runs", c.opts.Runs),
			attribute.Int("samples", ix.NumSamples()),
			attribute.Int("candidates", ix.NumCandidates()),
		),
	)
	defer span.End()

	if c.opts.Deadline > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.opts.Deadline)
		defer cancel()
	}

	start := time.Now()
	limit := c.opts.Concurrency
	if limit == 0 {
		limit = c.opts.Runs
	}
	p := pool.NewWithResults[RunResult]().
		WithContext(ctx).
		WithMaxGoroutines(limit).
		WithCancelOnError()

	for i := 0; i < c.opts.Runs; i++ {
		run := RunResult{
			Index: i,
			ID:    uuid.New(),
			Seed:  setcover.DeriveSeed(c.opts.Seed, uint64(i)),
		}
		clone := env.Clone()
		p.Go(func(ctx context.Context) (RunResult, error) {
			return c.runOne(ctx, clone, factory, run)
		})
	}

	runs, err := p.Wait()
	if err != nil {
		solvesTotal.WithLabelValues(statusInvalid).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Result{}, err
	}

	res, err := reduce(runs)
	res.Elapsed = time.Since(start)
	if err != nil {
		solvesTotal.WithLabelValues(statusFailed).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return res, err
	}

	solvesTotal.WithLabelValues(statusOK).Inc()
	bestCost.Set(float64(res.Cost))
	span.SetAttributes(attribute.Int("best_cost", res.Cost), attribute.Int("best_run", res.Run))
	log.WithFields(logrus.Fields{
		"cost":    res.Cost,
		"run":     res.Run,
		"run_id":  res.RunID,
		"elapsed": res.Elapsed,
	}).Info("Parallel solve finished")

	return res, nil
}

// runOne executes a single attempt. Only an invalid cover is reported as an
// error to the pool; every other failure is carried in RunResult.Err.
func (c *Coordinator) runOne(ctx context.Context, env *setcover.Environment, factory RunnerFactory, run RunResult) (RunResult, error) {
	ctx, span := tracer.Start(ctx, "parallel.Run",
		trace.WithAttributes(
			attribute.Int("run", run.Index),
			attribute.String("run_id", run.ID.String()),
			attribute.Int64("seed", run.Seed),
		),
	)
	defer span.End()

	entry := log.WithFields(logrus.Fields{"run": run.Index, "run_id": run.ID})
	entry.Debug("Run started")
	start := time.Now()

	sol, err := factory(env, run.Seed).Run(ctx)
	run.Elapsed = time.Since(start)
	runDuration.Observe(run.Elapsed.Seconds())

	if err == nil && len(sol) == 0 {
		err = fmt.Errorf("run %d returned an empty cover: %w", run.Index, setcover.ErrIncompleteSolution)
	}
	if err != nil {
		run.Err = err
		runsTotal.WithLabelValues(statusFailed).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		entry.WithError(err).Info("Run excluded")
		return run, nil
	}

	if verr := env.ValidateSolution(sol); verr != nil {
		runsTotal.WithLabelValues(statusInvalid).Inc()
		span.RecordError(verr)
		span.SetStatus(codes.Error, verr.Error())
		entry.WithError(verr).Error("Run produced an invalid cover")
		return run, fmt.Errorf("run %d (%s): %w", run.Index, run.ID, verr)
	}

	run.Solution = sol
	run.Cost = len(sol)
	runsTotal.WithLabelValues(statusOK).Inc()
	span.SetAttributes(attribute.Int("cost", run.Cost))
	entry.WithFields(logrus.Fields{"cost": run.Cost, "elapsed": run.Elapsed}).Info("Run finished")

	return run, nil
}

// reduce picks the cheapest successful run; ties go to the lower index.
func reduce(runs []RunResult) (Result, error) {
	slices.SortFunc(runs, func(a, b RunResult) int { return a.Index - b.Index })

	res := Result{Run: -1, Runs: runs}
	var errs []error
	for _, r := range runs {
		if r.Err != nil {
			errs = append(errs, r.Err)
			continue
		}
		if res.Run < 0 || r.Cost < res.Cost {
			res.Solution, res.Cost, res.Run, res.RunID = r.Solution, r.Cost, r.Index, r.ID
		}
	}
	if res.Run < 0 {
		return res, fmt.Errorf("%d runs, none complete (%w): %w",
			len(runs), errors.Join(errs...), setcover.ErrNoValidSolution)
	}

	return res, nil
}
