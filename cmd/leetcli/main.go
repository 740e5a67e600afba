// Command leetcli lists the solved problems and runs their case tables.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/brettbar/leetcli/internal/caseio"
	"github.com/brettbar/leetcli/internal/config"
	"github.com/brettbar/leetcli/internal/runner"
	"github.com/brettbar/leetcli/problems"
)

// errCasesFailed is returned when at least one case did not pass.
var errCasesFailed = errors.New("some cases failed")

func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if !errors.Is(err, errCasesFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// run builds the command tree and executes it with args.
func run(out io.Writer, args []string) error {
	return execute(out, args, newLogger)
}

// execute runs the command tree and flushes the logger on every exit
// path; cobra skips post-run hooks when RunE fails.
func execute(out io.Writer, args []string, build func(verbose bool) (*zap.Logger, error)) error {
	root, a := newRootCmd(out, build)
	defer a.syncLogger()
	root.SetArgs(args)
	return root.Execute()
}

// app carries the state shared by the subcommands.
type app struct {
	out       io.Writer
	build     func(verbose bool) (*zap.Logger, error)
	logger    *zap.Logger
	cfg       config.Config
	cfgPath   string
	verbose   bool
	noColor   bool
	testsPath string
	all       bool

	// Settings resolved from the config file and flags.
	debug bool
	color bool
}

func (a *app) syncLogger() {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// resolve merges the config file with the flags set on cmd. A flag given
// explicitly wins in either direction.
func (a *app) resolve(cmd *cobra.Command, cfg config.Config) {
	a.cfg = cfg
	a.debug = cfg.Verbose
	if cmd.Flags().Changed("verbose") {
		a.debug = a.verbose
	}
	a.color = cfg.Color
	if cmd.Flags().Changed("no-color") {
		a.color = !a.noColor
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

func newRootCmd(out io.Writer, build func(verbose bool) (*zap.Logger, error)) (*cobra.Command, *app) {
	a := &app{out: out, build: build}

	root := &cobra.Command{
		Use:           "leetcli",
		Short:         "Run the case tables of solved LeetCode problems",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.cfgPath)
			if err != nil {
				return err
			}
			a.resolve(cmd, cfg)
			a.logger, err = a.build(a.debug)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
	}
	root.SetOut(out)
	root.SetErr(out)

	root.PersistentFlags().StringVar(&a.cfgPath, "config", "", "settings file (default "+config.DefaultPath+")")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging (overrides the config file)")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable coloured output; --no-color=false forces it on")

	root.AddCommand(a.listCmd(), a.runCmd())
	return root, a
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the solved problems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := problems.Catalog()
			if err != nil {
				return err
			}
			for _, p := range reg.All() {
				fmt.Fprintf(a.out, "%-32s %s\n", p.Slug(), p.Title())
			}
			return nil
		},
	}
}

func (a *app) runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [slug...]",
		Short: "Run the case tables of the named problems",
		RunE:  a.runProblems,
	}
	cmd.Flags().StringVar(&a.testsPath, "tests", "", "case table file or directory (single problem only)")
	cmd.Flags().BoolVar(&a.all, "all", false, "run every problem")
	return cmd
}

func (a *app) runProblems(cmd *cobra.Command, args []string) error {
	reg, err := problems.Catalog()
	if err != nil {
		return err
	}

	var selected []runner.Problem
	switch {
	case a.all && len(args) > 0:
		return errors.New("--all does not take problem names")
	case a.all:
		selected = reg.All()
	case len(args) == 0:
		return errors.New("name at least one problem or pass --all")
	default:
		for _, slug := range args {
			p, err := reg.Lookup(slug)
			if err != nil {
				return err
			}
			selected = append(selected, p)
		}
	}
	if a.testsPath != "" && len(selected) != 1 {
		return errors.New("--tests needs exactly one problem")
	}

	r := runner.New(a.logger)
	printer := runner.NewPrinter(a.out, a.color)

	failed := false
	for _, p := range selected {
		cases, err := a.cases(p)
		if err != nil {
			return fmt.Errorf("%s: %w", p.Slug(), err)
		}
		report := r.Run(p, cases)
		if err := printer.Print(report); err != nil {
			return err
		}
		if !report.OK() {
			failed = true
		}
	}

	if failed {
		return errCasesFailed
	}
	return nil
}

// cases loads the --tests table when given, else the embedded one.
func (a *app) cases(p runner.Problem) ([]caseio.Case, error) {
	if a.testsPath == "" {
		return p.Cases()
	}
	path := a.testsPath
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, a.cfg.TestsFile)
	}
	a.logger.Debug("loading case table", zap.String("path", path))
	return caseio.ReadFile(path)
}
