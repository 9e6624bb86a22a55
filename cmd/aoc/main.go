package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pborges/aoc2022/internal/config"
	"github.com/pborges/aoc2022/internal/logging"
	"github.com/pborges/aoc2022/internal/puzzle"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// run flags
	inputDir   string
	sampleMode bool
	allDays    bool
	workers    int

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:           "aoc",
	Short:         "Advent of Code 2022 solutions",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
		logger, err = logging.New(cfg.Logging, verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var runCmd = &cobra.Command{
	Use:   "run [day...]",
	Short: "Solve one or more days",
	Long: `Solves the given days, or the latest day when none are given.

Inputs are read from <input-dir>/inputNN.txt and checked against the
answers recorded in the configuration file.

Example:
  aoc run 11
  aoc run --sample 9 10
  aoc run --all`,
	RunE: runDays,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List solved days",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := registry(logger)
		if err != nil {
			return err
		}
		for _, d := range reg.Days() {
			fmt.Fprintf(cmd.OutOrStdout(), "%2d  %s\n", d.Number, d.Title)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "Path to configuration file")

	runCmd.Flags().StringVar(&inputDir, "input-dir", "", "Directory holding inputNN.txt (overrides config)")
	runCmd.Flags().BoolVar(&sampleMode, "sample", false, "Solve the embedded samples instead of real inputs")
	runCmd.Flags().BoolVar(&allDays, "all", false, "Solve every day")
	runCmd.Flags().IntVar(&workers, "workers", 0, "Days solved at once (0 = all)")

	rootCmd.AddCommand(runCmd, listCmd)
}

func selectDays(reg *puzzle.Registry, args []string) ([]puzzle.Day, error) {
	if allDays {
		return reg.Days(), nil
	}
	if len(args) == 0 {
		d, err := reg.Latest()
		if err != nil {
			return nil, err
		}
		return []puzzle.Day{d}, nil
	}
	days := make([]puzzle.Day, 0, len(args))
	for _, arg := range args {
		n, err := strconv.Atoi(strings.TrimPrefix(arg, "day"))
		if err != nil {
			return nil, fmt.Errorf("invalid day %q", arg)
		}
		d, err := reg.Get(n)
		if err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, nil
}

func runDays(cmd *cobra.Command, args []string) error {
	reg, err := registry(logger)
	if err != nil {
		return err
	}
	days, err := selectDays(reg, args)
	if err != nil {
		return err
	}

	runner := &puzzle.Runner{Log: logger, Workers: workers}
	if sampleMode {
		runner.Input = puzzle.SampleInput
	} else {
		dir := cfg.InputDir
		if inputDir != "" {
			dir = inputDir
		}
		runner.Input = puzzle.FileInput(dir)
		runner.Expected = make(map[int]puzzle.Expected, len(cfg.Answers))
		for day, a := range cfg.Answers {
			runner.Expected[day] = puzzle.Expected{Part1: a.Part1, Part2: a.Part2}
		}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	results, err := runner.Run(ctx, days)
	if err != nil {
		return err
	}
	printResults(cmd.OutOrStdout(), days, results)
	return nil
}

func printResults(w io.Writer, days []puzzle.Day, results []puzzle.Result) {
	for i, r := range results {
		fmt.Fprintf(w, "Day %d: %s (%s)\n", r.Day, days[i].Title, r.Elapsed)
		fmt.Fprintf(w, "  part 1: %s\n", indent(r.Part1))
		fmt.Fprintf(w, "  part 2: %s\n", indent(r.Part2))
	}
}

// indent aligns multi-line answers under the first line.
func indent(answer string) string {
	return strings.ReplaceAll(answer, "\n", "\n          ")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}
