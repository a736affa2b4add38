// Command csf2det expands a GUGA configuration state function, given as a
// step-vector, into Slater determinants with exact squared coefficients.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"csf2det/internal/config"
	"csf2det/internal/guga"
	"csf2det/internal/logging"
	"csf2det/internal/render"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const hint = "Try 'csf2det --help' for more information."

// errInputRejected means a diagnostic has already been printed.
var errInputRejected = errors.New("input rejected")

// usageError marks malformed command lines; they are reported with the help
// hint.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// options holds every command-line value. Flags left unset fall back to the
// config file.
type options struct {
	stepvec string
	twoMs   int

	verbose         bool
	configPath      string
	format          string
	color           bool
	check           bool
	workers         int
	maxDeterminants int
}

// app is the state shared by all commands of one invocation.
type app struct {
	opts   options
	cfg    *config.Config
	stdout io.Writer
	stderr io.Writer
	log    *zap.Logger
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "csf2det",
		Short: "Expand a GUGA CSF into Slater determinants",
		Long: `csf2det expands a spin-adapted configuration state function, written as a
GUGA step-vector, into its Slater determinants for a given spin projection.

Each determinant is printed with its phase and squared coefficient as an exact
fraction:

  csf2det -s 2ud0 -m 0

Step-vector symbols: 0 empty, u singly occupied (spin up coupling),
d singly occupied (spin down coupling), 2 doubly occupied. Spaces are ignored.
The spin projection is given in half integer units (2Ms).`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return &usageError{fmt.Errorf("unexpected argument %q", args[0])}
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Bare invocation only prints the hint
			if cmd == cmd.Root() && cmd.Flags().NFlag() == 0 {
				return nil
			}
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().NFlag() == 0 {
				fmt.Fprintln(a.stdout, hint)
				return nil
			}
			return a.expand(cmd)
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.Flags().StringVarP(&a.opts.stepvec, "stepvec", "s", "", "step-vector of the CSF, e.g. 2ud0")
	rootCmd.Flags().IntVarP(&a.opts.twoMs, "twoms", "m", 0, "spin projection in half integer units (2Ms)")

	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&a.opts.verbose, "verbose", "v", false, "debug logging on stderr")
	pf.StringVar(&a.opts.configPath, "config", "", "config file (default "+config.DefaultConfigPath()+")")
	pf.StringVarP(&a.opts.format, "format", "f", config.FormatText, fmt.Sprintf("output format %v", config.ValidFormats))
	pf.BoolVar(&a.opts.color, "color", false, "colour signs in table output")
	pf.BoolVar(&a.opts.check, "check", false, "print the sum of squared coefficients")
	pf.IntVar(&a.opts.workers, "workers", 1, "goroutines evaluating determinants (0 = all CPUs)")
	pf.IntVar(&a.opts.maxDeterminants, "max-determinants", 0, "stop after this many determinants (0 = no limit)")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err}
	})
	rootCmd.SetOut(a.stdout)
	rootCmd.SetErr(a.stderr)

	rootCmd.AddCommand(newBatchCmd(a), newVersionCmd(a))
	return rootCmd
}

// setup loads the config, applies flag overrides and starts logging.
func (a *app) setup(cmd *cobra.Command) error {
	flags := cmd.Flags()
	if flags.Changed("format") && !slices.Contains(config.ValidFormats, a.opts.format) {
		return &usageError{fmt.Errorf("invalid format %q (valid: %v)", a.opts.format, config.ValidFormats)}
	}

	path := a.opts.configPath
	if path == "" {
		path = config.DefaultConfigPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	if flags.Changed("format") {
		cfg.Output.Format = a.opts.format
	}
	if flags.Changed("color") {
		cfg.Output.Color = a.opts.color
	}
	if flags.Changed("check") {
		cfg.Output.Check = a.opts.check
	}
	if flags.Changed("workers") {
		cfg.Engine.Workers = a.opts.workers
	}
	if flags.Changed("max-determinants") {
		cfg.Engine.MaxDeterminants = a.opts.maxDeterminants
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	a.cfg = cfg

	if err := logging.Initialize(cfg.Logging, a.opts.verbose, a.stderr); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.log = logging.Get(logging.CategoryBoot)
	a.log.Debug("configuration loaded",
		zap.String("path", path),
		zap.String("format", cfg.Output.Format),
		zap.Int("workers", cfg.EffectiveWorkers()))
	return nil
}

func (a *app) walkOptions() render.WalkOptions {
	return render.WalkOptions{
		Workers:         a.cfg.EffectiveWorkers(),
		BatchSize:       a.cfg.Engine.BatchSize,
		MaxDeterminants: a.cfg.Engine.MaxDeterminants,
		Check:           a.cfg.Output.Check,
	}
}

func (a *app) emitter() (render.Emitter, error) {
	return render.New(a.cfg.Output.Format, a.stdout, render.Options{Color: a.cfg.Output.Color})
}

// expand runs a single expansion from -s and -m.
func (a *app) expand(cmd *cobra.Command) error {
	flags := cmd.Flags()
	if !flags.Changed("stepvec") {
		return &usageError{errors.New("missing option -s|--stepvec=<string>")}
	}
	if !flags.Changed("twoms") {
		return &usageError{errors.New("missing option -m|--twoms=<int>")}
	}

	log := logging.Get(logging.CategoryExpand).With(zap.String("run_id", uuid.NewString()))
	log.Debug("expansion requested",
		zap.String("stepvec", a.opts.stepvec),
		zap.Int("twoms", a.opts.twoMs))

	exp, err := guga.New(a.opts.stepvec, a.opts.twoMs)
	if err != nil {
		logging.Get(logging.CategoryParse).Info("input rejected",
			zap.String("stepvec", a.opts.stepvec),
			zap.Int("twoms", a.opts.twoMs),
			zap.Error(err))
		render.WriteDiagnostic(a.stdout, err)
		return errInputRejected
	}
	log.Debug("expansion ready",
		zap.Int("electrons", exp.Params.Electrons),
		zap.Int("somo", exp.Params.NSOMO),
		zap.Int("alpha", exp.Params.NAlpha),
		zap.Uint64("subsets", exp.Subsets()))

	em, err := a.emitter()
	if err != nil {
		return err
	}
	_, err = render.Emit(cmd.Context(), em, render.NewSummary("", a.opts.stepvec, exp), exp, a.walkOptions())
	return err
}

// execute runs the command line and returns the process exit code.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr, log: zap.NewNop()}
	rootCmd := newRootCmd(a)
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(ctx)
	_ = logging.Sync()
	if err == nil {
		return 0
	}

	var uerr *usageError
	switch {
	case errors.As(err, &uerr):
		fmt.Fprintf(stdout, "csf2det: %v\n", uerr.err)
		fmt.Fprintln(stdout, hint)
	case errors.Is(err, errInputRejected):
	default:
		fmt.Fprintf(stderr, "csf2det: %v\n", err)
	}
	return 1
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
