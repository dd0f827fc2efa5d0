// SPDX-License-Identifier: MIT

package batch

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/matrixtools/screen"
)

// DefaultWorkers bounds concurrent jobs when WithWorkers is not given.
const DefaultWorkers = 4

// Option configures a Runner.
type Option func(*Runner)

// WithWorkers bounds concurrent jobs. Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("batch: WithWorkers: n must be >= 1")
	}

	return func(r *Runner) { r.workers = n }
}

// WithLogger attaches a logger; nil keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithScreenOptions passes options to every screen a job creates.
func WithScreenOptions(opts ...screen.Option) Option {
	return func(r *Runner) { r.screenOpts = append(r.screenOpts, opts...) }
}

// Runner executes jobs on a bounded pool.
type Runner struct {
	workers    int
	logger     *zap.Logger
	screenOpts []screen.Option
	now        func() time.Time
}

// NewRunner returns a Runner with DefaultWorkers and a no-op logger.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{workers: DefaultWorkers, logger: zap.NewNop(), now: time.Now}
	for _, set := range opts {
		if set != nil {
			set(r)
		}
	}

	return r
}

// Run executes jobs and returns their results in input order.
// Job failures are recorded in the report; only cancellation of ctx makes
// Run itself fail, in which case the partial report is discarded.
func (r *Runner) Run(ctx context.Context, jobs []Job) (*Report, error) {
	if len(jobs) == 0 {
		return nil, ErrNoJobs
	}
	rep := &Report{
		RunID:   uuid.NewString(),
		Started: r.now(),
		Results: make([]Result, len(jobs)),
	}
	log := r.logger.With(zap.String("run", rep.RunID))
	log.Info("batch started", zap.Int("jobs", len(jobs)), zap.Int("workers", r.workers))

	var failed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i := range jobs {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res := r.runJob(jobs[i])
			rep.Results[i] = res
			if res.Status == StatusFailed {
				failed.Add(1)
				log.Debug("job failed", zap.String("job", res.ID), zap.String("title", res.Alert.Title))
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch: run %s: %w", rep.RunID, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("batch: run %s: %w", rep.RunID, err)
	}
	rep.Failed = int(failed.Load())
	rep.Finished = r.now()
	log.Info("batch finished", zap.Int("failed", rep.Failed), zap.Duration("took", rep.Finished.Sub(rep.Started)))

	return rep, nil
}

func (r *Runner) runJob(j Job) Result {
	start := time.Now()
	res := Result{ID: j.ID, Name: j.Name, Kind: j.Kind, Status: StatusOK}

	var err error
	switch j.Kind {
	case KindEigen:
		err = r.runEigen(j, &res)
	case KindGenerate:
		err = r.runGenerate(j, &res)
	default:
		err = fmt.Errorf("kind %q: %w", j.Kind, ErrUnknownKind)
	}
	if err != nil {
		res.Status = StatusFailed
		res.Alert = alertInfo(err)
	}
	res.Took = time.Since(start)

	return res
}

func (r *Runner) runEigen(j Job, res *Result) error {
	c := screen.NewEigenCalculator(r.screenOpts...)
	if err := c.Load(j.Matrix); err != nil {
		return err
	}
	out, err := c.Calculate()
	if err != nil {
		return err
	}
	res.Output = out.Text
	res.Values = make([]Value, len(out.Decomposition.Values))
	for i, v := range out.Decomposition.Values {
		res.Values[i] = Value{Re: real(v), Im: imag(v)}
	}

	return nil
}

func (r *Runner) runGenerate(j Job, res *Result) error {
	g := screen.NewMatrixGenerator(r.screenOpts...)
	g.SetEigenvalues(j.Eigenvalues)
	if j.Eigenvectors != "" {
		g.SetEigenvectors(j.Eigenvectors)
	}
	out, err := g.Generate()
	if err != nil {
		return err
	}
	res.Output = out.Text
	res.Matrix = out.Matrix.RowsData()

	return nil
}

func alertInfo(err error) *AlertInfo {
	var a *screen.Alert
	if errors.As(err, &a) {
		info := &AlertInfo{Title: a.Title, Message: a.Message}
		if a.Err != nil {
			info.Cause = a.Err.Error()
		}
		return info
	}

	return &AlertInfo{Title: screen.TitleCalculationError, Message: err.Error()}
}
