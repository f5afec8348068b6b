package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app is the state shared by every subcommand of one invocation.
type app struct {
	out        io.Writer
	verbose    bool
	configPath string
	flagCfg    Config
	set        settings
	logger     *zap.Logger
}

// newRootCmd builds a fresh command tree writing results to out.
func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out, flagCfg: defaultConfig(), logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "treeshape",
		Short: "Tree-shape balance and imbalance indices",
		Long: `treeshape evaluates the catalog of tree-shape indices (Sackin, Colless,
cophenetic, Furnas rank, ...) on generated shapes, reports their bounds
and normalizes them to [0, 1].`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { _ = a.logger.Sync() },
	}
	root.SetOut(out)

	pf := root.PersistentFlags()
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging on stderr")
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.StringVar(&a.flagCfg.Mode, "mode", a.flagCfg.Mode, "binary or arbitrary")
	pf.StringVar(&a.flagCfg.Kind, "kind", a.flagCfg.Kind, "absolute, relative or normalized")
	pf.StringVar(&a.flagCfg.Format, "format", a.flagCfg.Format, "yaml or text")
	pf.IntVar(&a.flagCfg.Workers, "workers", 0, "parallel trees in sweep (0: GOMAXPROCS)")
	pf.Float64Var(&a.flagCfg.Tolerance, "tolerance", a.flagCfg.Tolerance, "bound tolerance for relative values")
	pf.StringSliceVar(&a.flagCfg.Indices, "index", nil, "restrict to these indices (repeatable)")

	root.AddCommand(
		newCatalogCmd(a),
		newBoundsCmd(a),
		newEvalCmd(a),
		newSweepCmd(a),
	)
	return root
}

// setup merges defaults, the config file and explicitly set flags, then
// builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg := defaultConfig()
	if err := loadConfig(a.configPath, &cfg); err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("mode") {
		cfg.Mode = a.flagCfg.Mode
	}
	if flags.Changed("kind") {
		cfg.Kind = a.flagCfg.Kind
	}
	if flags.Changed("format") {
		cfg.Format = a.flagCfg.Format
	}
	if flags.Changed("workers") {
		cfg.Workers = a.flagCfg.Workers
	}
	if flags.Changed("tolerance") {
		cfg.Tolerance = a.flagCfg.Tolerance
	}
	if flags.Changed("index") {
		cfg.Indices = a.flagCfg.Indices
	}

	set, err := cfg.validate()
	if err != nil {
		return err
	}
	a.set = set

	zc := zap.NewProductionConfig()
	if a.verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger
	return nil
}
