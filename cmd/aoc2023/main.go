// Command aoc2023 runs the Advent of Code 2023 solutions.
//
//	aoc2023 [day|all|last] [--part N] [--sample] [--input-dir DIR]
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/felixge/fgprof"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mikeleppane/aoc"
	"github.com/mikeleppane/aoc/day01"
	"github.com/mikeleppane/aoc/day02"
	"github.com/mikeleppane/aoc/day03"
	"github.com/mikeleppane/aoc/day04"
	"github.com/mikeleppane/aoc/day05"
	"github.com/mikeleppane/aoc/day06"
	"github.com/mikeleppane/aoc/day07"
	"github.com/mikeleppane/aoc/day08"
	"github.com/mikeleppane/aoc/day09"
	"github.com/mikeleppane/aoc/day10"
	"github.com/mikeleppane/aoc/day11"
	"github.com/mikeleppane/aoc/day12"
	"github.com/mikeleppane/aoc/day13"
	"github.com/mikeleppane/aoc/day14"
	"github.com/mikeleppane/aoc/day15"
	"github.com/mikeleppane/aoc/day16"
)

func registry() *aoc.Registry {
	var r aoc.Registry
	r.Register(1, day01.New)
	r.Register(2, day02.New)
	r.Register(3, day03.New)
	r.Register(4, day04.New)
	r.Register(5, day05.New)
	r.Register(6, day06.New)
	r.Register(7, day07.New)
	r.Register(8, day08.New)
	r.Register(9, day09.New)
	r.Register(10, day10.New)
	r.Register(11, day11.New)
	r.Register(12, day12.New)
	r.Register(13, day13.New)
	r.Register(14, day14.New)
	r.Register(15, day15.New)
	r.Register(16, day16.New)
	return &r
}

type options struct {
	part     int
	inputDir string
	sample   bool
	answers  string
	debug    bool
	profile  string
	year     int
}

func newRootCmd(reg *aoc.Registry) *cobra.Command {
	var (
		opts   options
		logger *zap.Logger
	)
	cmd := &cobra.Command{
		Use:   "aoc2023 [day|all|last]",
		Short: "Run Advent of Code 2023 solutions",
		Long: `Runs the solution for one day, the latest day, or every day, printing
each part's answer and timing.

Input is read from <input-dir>/dayNN.txt, or dayNN-test.txt with --sample.
If an answers file exists, every answer is checked against it.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.part < 0 || opts.part > 2 {
				return fmt.Errorf("--part must be 1 or 2, got %d", opts.part)
			}
			config := zap.NewProductionConfig()
			if opts.debug {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = config.Build()
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
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := ""
			if len(args) > 0 {
				arg = args[0]
			}
			sel, err := aoc.ParseSelector(arg)
			if err != nil {
				return err
			}
			path := opts.answers
			if path == "" {
				name := "answers.yaml"
				if opts.sample {
					name = "answers-test.yaml"
				}
				path = filepath.Join(opts.inputDir, name)
			}
			answers, err := aoc.LoadAnswers(path)
			if err != nil {
				return err
			}
			if opts.profile != "" {
				stop, err := startProfile(opts.profile)
				if err != nil {
					return err
				}
				defer func() {
					if err := stop(); err != nil {
						logger.Error("writing profile", zap.String("path", opts.profile), zap.Error(err))
					}
				}()
			}
			logger.Debug("starting", zap.Stringer("days", sel), zap.Int("part", opts.part), zap.Int("answers", len(answers)))
			r := &aoc.Runner{
				Year:     opts.year,
				InputDir: opts.inputDir,
				Sample:   opts.sample,
				Part:     opts.part,
				Answers:  answers,
				Debug:    opts.debug,
				Out:      cmd.OutOrStdout(),
				Log:      logger,
			}
			return r.Run(reg, sel)
		},
	}
	f := cmd.Flags()
	f.IntVarP(&opts.part, "part", "p", 0, "run only this part (1 or 2)")
	f.StringVar(&opts.inputDir, "input-dir", "input", "directory holding dayNN.txt")
	f.BoolVar(&opts.sample, "sample", false, "read dayNN-test.txt instead of dayNN.txt")
	f.StringVar(&opts.answers, "answers", "", "expected answers file (default <input-dir>/answers.yaml)")
	f.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	f.StringVar(&opts.profile, "profile", "", "write a wall-clock profile to this file")
	f.IntVar(&opts.year, "year", 2023, "puzzle year shown in the banner")
	return cmd
}

// startProfile starts a wall-clock profile written to path in pprof
// format.
func startProfile(path string) (stop func() error, err error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	stopProfile := fgprof.Start(f, fgprof.FormatPprof)
	return func() error {
		err := stopProfile()
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		return err
	}, nil
}

func main() {
	if err := newRootCmd(registry()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
