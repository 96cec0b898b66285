package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/midbel/mulscan"
	"github.com/midbel/mulscan/internal/bench"
	"github.com/midbel/mulscan/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var CmdVersion = "0.1.0"

var (
	cfgFile  string
	file     string
	verbose  bool
	toggle   bool
	strategy string
	runs     int
	parallel int
	names    []string

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:     "mulscan",
	Short:   "Sum the mul(X,Y) instructions hidden in a corrupted memory dump",
	Version: CmdVersion,
	Long: `mulscan looks for the mul(X,Y) instructions embedded in a text file, X and Y
being numbers of one to three digits, and prints the sum of their products.
With toggles, the do() and don't() markers enable and disable the
instructions that follow them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.Load(cfgFile); err != nil {
			return err
		}
		if cmd.Flags().Changed("verbose") {
			cfg.Verbose = verbose
		}
		if cmd.Flags().Changed("file") {
			cfg.File = file
		}
		if len(args) > 0 {
			cfg.File = args[0]
		}
		zc := zap.NewProductionConfig()
		if cfg.Verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var sumCmd = &cobra.Command{
	Use:   "sum [file]",
	Short: "Print the sum of the products of the mul instructions",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSum,
}

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Print the instructions recognized in the input",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTokens,
}

var benchCmd = &cobra.Command{
	Use:   "bench [file]",
	Short: "Time every strategy on the input and check they agree",
	Long: `Runs each strategy, with and without toggles, several times over the input
and prints the totals with the duration of every run. The command fails
when two strategies do not compute the same total.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBench,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the available strategies",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, n := range mulscan.Strategies() {
			fmt.Fprintln(cmd.OutOrStdout(), n)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "read settings from a YAML file")
	rootCmd.PersistentFlags().StringVarP(&file, "file", "f", config.DefaultFile, "input file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	sumCmd.Flags().BoolVarP(&toggle, "toggle", "t", false, "honor do() and don't()")
	sumCmd.Flags().StringVarP(&strategy, "strategy", "s", "bychar", "strategy used to scan the input")

	benchCmd.Flags().IntVarP(&runs, "runs", "n", bench.DefaultRuns, "number of runs per strategy")
	benchCmd.Flags().IntVarP(&parallel, "parallel", "p", bench.NoParallel, "strategies run at once (-1: all)")
	benchCmd.Flags().StringSliceVarP(&names, "strategies", "s", nil, "strategies to time (default: all)")

	rootCmd.AddCommand(sumCmd, tokensCmd, benchCmd, listCmd)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func printError(err error) {
	fmt.Fprintln(os.Stderr, err)
	var sugg mulscan.SuggestionError
	if errors.As(err, &sugg) {
		fmt.Fprintf(os.Stderr, "did you mean %s?", strings.Join(sugg.Others, ", "))
		fmt.Fprintln(os.Stderr)
	}
}

func readInput() ([]byte, error) {
	buf, err := os.ReadFile(cfg.File)
	if err != nil {
		return nil, err
	}
	logger.Debug("input loaded", zap.String("file", cfg.File), zap.Int("size", len(buf)))
	return buf, nil
}

func runSum(cmd *cobra.Command, args []string) error {
	fn, err := mulscan.Lookup(strategy)
	if err != nil {
		return err
	}
	input, err := readInput()
	if err != nil {
		return err
	}
	now := time.Now()
	total := fn(input, toggle)
	logger.Debug("scan done",
		zap.String("strategy", strategy),
		zap.Bool("toggle", toggle),
		zap.Duration("elapsed", time.Since(now)))
	fmt.Fprintln(cmd.OutOrStdout(), total)
	return nil
}

func runTokens(cmd *cobra.Command, args []string) error {
	input, err := readInput()
	if err != nil {
		return err
	}
	var (
		w    = cmd.OutOrStdout()
		scan = mulscan.NewScanner(input)
	)
	for i := 1; ; i++ {
		tok := scan.Scan()
		fmt.Fprintf(w, "%3d: %-12s @%d", i, tok, tok.Offset)
		fmt.Fprintln(w)
		if tok.IsEOF() {
			break
		}
	}
	return nil
}

func runBench(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("runs") {
		cfg.Runs = runs
	}
	if cmd.Flags().Changed("parallel") {
		cfg.Parallel = parallel
	}
	if cmd.Flags().Changed("strategies") {
		cfg.Strategies = names
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	input, err := readInput()
	if err != nil {
		return err
	}
	opts := bench.Options{
		Runs:     cfg.Runs,
		Parallel: cfg.Parallel,
		Logger:   logger,
	}
	if cfg.Verbose {
		opts.Echo = cmd.ErrOrStderr()
	}
	results, err := bench.Run(cmd.Context(), input, cfg.Strategies, opts)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	if err := bench.Render(w, results); err != nil {
		return err
	}
	if err := bench.Agree(results); err != nil {
		return err
	}
	return bench.RenderSummary(w, bench.Summary{
		Runs:  cfg.Runs,
		Count: len(results) / 2,
		Size:  len(input),
	})
}
