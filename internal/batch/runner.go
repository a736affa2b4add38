package batch

import (
	"context"
	"fmt"
	"io"

	"csf2det/internal/guga"
	"csf2det/internal/logging"
	"csf2det/internal/render"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Runner expands jobs one after the other into a single emitter.
type Runner struct {
	Emitter render.Emitter
	Options render.WalkOptions

	// Diagnostics receives the input errors of failed jobs.
	Diagnostics io.Writer
}

// Report summarises a run.
type Report struct {
	RunID     string
	Succeeded int
	Failed    int
}

// Run expands every job in order. A job with invalid input is reported on
// Diagnostics and skipped; emitter failures and cancellation abort the run.
func (r *Runner) Run(ctx context.Context, jobs []Job) (Report, error) {
	rep := Report{RunID: uuid.NewString()}
	log := logging.Get(logging.CategoryBatch).With(zap.String("run_id", rep.RunID))
	log.Info("batch started", zap.Int("jobs", len(jobs)))

	for _, job := range jobs {
		if err := ctx.Err(); err != nil {
			return rep, err
		}

		exp, err := guga.New(job.StepVector, *job.TwoMs)
		if err != nil {
			rep.Failed++
			log.Warn("job rejected", zap.String("job", job.Name), zap.Error(err))
			if r.Diagnostics != nil {
				fmt.Fprintf(r.Diagnostics, "# %s\n", job.Name)
				render.WriteDiagnostic(r.Diagnostics, err)
			}
			continue
		}

		s, err := render.Emit(ctx, r.Emitter, render.NewSummary(job.Name, job.StepVector, exp), exp, r.Options)
		if err != nil {
			return rep, fmt.Errorf("%s: %w", job.Name, err)
		}
		rep.Succeeded++
		log.Debug("job expanded", zap.String("job", job.Name), zap.Int("determinants", s.Emitted))
	}

	log.Info("batch finished", zap.Int("succeeded", rep.Succeeded), zap.Int("failed", rep.Failed))
	return rep, nil
}
