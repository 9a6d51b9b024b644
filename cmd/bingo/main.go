package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"nightreign-bingo/internal/config"
)

// app carries what every subcommand needs once flags and env are resolved.
type app struct {
	cfg config.Config
	log *zap.Logger

	dataDir string
	output  string
	seed    int64
	verbose bool
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "bingo",
		Short: "Generate and check Nightreign bingo boards",
		Long: `bingo builds a 25-cell bingo board from the boss, nightfarer, map and
generic task pools in the data directory.

Run without arguments to pick a boss, a nightfarer, a map and the per-category
minimums interactively. The board is written to output.json.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.dataDir, "data-dir", "", "directory holding Bosses.json, Nightfarers.json, Maps.json and Generic.json (env BINGO_DATA_DIR)")
	flags.StringVarP(&a.output, "output", "o", "", "board file (env BINGO_OUTPUT, default <data-dir>/output.json)")
	flags.Int64Var(&a.seed, "seed", 0, "random seed, 0 picks one (env BINGO_SEED)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	generate := newGenerateCmd(a)
	root.RunE = generate.RunE
	root.Flags().AddFlagSet(generate.Flags())

	root.AddCommand(
		generate,
		newCheckCmd(a),
		newImportCmd(a),
		newShowCmd(a),
		newRotateCmd(a),
	)
	return root
}

// setup loads env config, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("data-dir") {
		cfg.DataDir = a.dataDir
	}
	if flags.Changed("output") {
		cfg.OutputPath = a.output
	}
	if flags.Changed("seed") {
		cfg.Seed = a.seed
	}
	a.cfg = cfg

	level := cfg.LogLevel
	if a.verbose {
		level = "debug"
	}
	a.log, err = newLogger(level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

// newLogger writes human-readable logs to stderr so they never mix with the
// prompts on stdout.
func newLogger(level string) (*zap.Logger, error) {
	lvl := zapcore.WarnLevel
	if strings.TrimSpace(level) != "" {
		parsed, err := zapcore.ParseLevel(level)
		if err != nil {
			return nil, err
		}
		lvl = parsed
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.Sampling = nil
	return cfg.Build()
}
