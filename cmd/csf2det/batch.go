package main

import (
	"context"
	"errors"
	"fmt"

	"csf2det/internal/batch"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newBatchCmd(a *app) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "batch <jobs.yaml|->",
		Short: "Expand every CSF listed in a YAML job file",
		Long: `Expand every job of a YAML job file in order, "-" reads the file from stdin.

  jobs:
    - name: singlet
      stepvec: "2ud0"
      twoms: 0

Rejected jobs are reported and skipped. With --watch the file is expanded
again whenever it changes, until interrupted.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return &usageError{fmt.Errorf("batch takes one job file, got %d arguments", len(args))}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if !watch {
				return a.runBatch(cmd.Context(), path)
			}
			if path == "-" {
				return &usageError{errors.New("--watch needs a job file, not stdin")}
			}

			if err := a.runBatch(cmd.Context(), path); err != nil && !errors.Is(err, errInputRejected) {
				a.log.Warn("initial run failed", zap.Error(err))
			}
			w := &batch.Watcher{
				Path:     path,
				OnChange: func(ctx context.Context) error { return a.runBatch(ctx, path) },
			}
			return w.Run(cmd.Context())
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", false, "expand the file again whenever it changes")
	return cmd
}

// runBatch expands one pass over the job file at path.
func (a *app) runBatch(ctx context.Context, path string) error {
	jobs, err := batch.Load(path)
	if err != nil {
		return err
	}
	em, err := a.emitter()
	if err != nil {
		return err
	}

	r := &batch.Runner{Emitter: em, Options: a.walkOptions(), Diagnostics: a.stdout}
	rep, err := r.Run(ctx, jobs)
	if err != nil {
		return err
	}
	if rep.Failed > 0 {
		fmt.Fprintf(a.stderr, "csf2det: %d of %d jobs rejected\n", rep.Failed, len(jobs))
		return errInputRejected
	}
	return nil
}
