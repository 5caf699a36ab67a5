package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/matejk/thesischeck/internal/document"
	"github.com/matejk/thesischeck/internal/validation"
)

// Runner executes validators against documents. A Runner is safe for
// concurrent use; all configuration happens at construction time.
type Runner struct {
	validators      []validation.Validator
	parallelism     int
	failFast        bool
	continueOnError bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithParallelism runs up to n checks concurrently. Results keep validator
// order regardless.
func WithParallelism(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.parallelism = n
		}
	}
}

// WithFailFast stops the run at the first check that fails or errors.
// Fail-fast runs are sequential so "first" is well defined.
func WithFailFast() Option {
	return func(r *Runner) {
		r.failFast = true
	}
}

// WithContinueOnError records check execution failures as ERROR results
// instead of aborting the run.
func WithContinueOnError() Option {
	return func(r *Runner) {
		r.continueOnError = true
	}
}

// NewRunner builds a Runner over the given validators.
func NewRunner(validators []validation.Validator, opts ...Option) *Runner {
	r := &Runner{
		validators:  validators,
		parallelism: 1,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes every validator against the document and aggregates the
// results. Validators run sequentially unless parallelism was raised; with
// fail-fast the run always proceeds sequentially and stops at the first
// failing check.
func (r *Runner) Run(ctx context.Context, doc *document.Document) (*Report, error) {
	rep := &Report{
		ID:        uuid.New(),
		StartedAt: time.Now(),
	}
	if doc != nil {
		rep.Document = doc.Metadata.FileName
		rep.Title = doc.Metadata.Title
	}

	var err error
	if r.parallelism > 1 && !r.failFast {
		err = r.runParallel(ctx, doc, rep)
	} else {
		err = r.runSequential(ctx, doc, rep)
	}
	rep.Duration = time.Since(rep.StartedAt)
	if err != nil {
		return nil, err
	}
	return rep, nil
}

func (r *Runner) runSequential(ctx context.Context, doc *document.Document, rep *Report) error {
	for _, v := range r.validators {
		if err := ctx.Err(); err != nil {
			return err
		}
		res, err := r.runOne(v, doc)
		if err != nil {
			return err
		}
		rep.Results = append(rep.Results, res)
		if r.failFast && res.Status().Failure() {
			break
		}
	}
	return nil
}

func (r *Runner) runParallel(ctx context.Context, doc *document.Document, rep *Report) error {
	results := make([]validation.Result, len(r.validators))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.parallelism)

	for i, v := range r.validators {
		i, v := i, v
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := r.runOne(v, doc)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	rep.Results = results
	return nil
}

func (r *Runner) runOne(v validation.Validator, doc *document.Document) (validation.Result, error) {
	res, err := validation.Run(v, doc)
	if err == nil {
		return res, nil
	}
	if r.continueOnError {
		return validation.AsCheckError(v.Name(), err).ToResult(), nil
	}
	return validation.Result{}, err
}
