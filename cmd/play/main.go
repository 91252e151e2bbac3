package main

import (
	"fmt"
	"os"

	logger "github.com/beka-birhanu/vinom-common/log"
	"github.com/beka-birhanu/vinom-minesweeper/board"
	"github.com/beka-birhanu/vinom-minesweeper/cli"
	"github.com/beka-birhanu/vinom-minesweeper/config"
	"github.com/spf13/cobra"
)

type flags struct {
	rows    int
	cols    int
	hazards int
	seed    uint64
	quick   bool
	verbose bool
}

func newRootCmd() *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:           "play",
		Short:         "Play minesweeper in the terminal",
		Long:          "Play minesweeper in the terminal. Board parameters not given as flags are prompted for.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, f)
		},
	}
	cmd.Flags().IntVar(&f.rows, "rows", 0, "number of rows (prompted when 0)")
	cmd.Flags().IntVar(&f.cols, "cols", 0, "number of columns (prompted when 0)")
	cmd.Flags().IntVar(&f.hazards, "hazards", 0, "number of mines (prompted when 0)")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "seed for mine placement (random when 0)")
	cmd.Flags().BoolVar(&f.quick, "quick", false, "use DEFAULT_ROWS, DEFAULT_COLS and DEFAULT_HAZARDS for anything not given")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "log game events to stderr")
	return cmd
}

func run(cmd *cobra.Command, f *flags) error {
	opts := cli.Options{Rows: f.rows, Cols: f.cols, Hazards: f.hazards}
	if f.quick {
		opts.Rows = orDefault(opts.Rows, config.Envs.DefaultRows)
		opts.Cols = orDefault(opts.Cols, config.Envs.DefaultCols)
		opts.Hazards = orDefault(opts.Hazards, config.Envs.DefaultHazards)
	}
	if f.seed != 0 {
		opts.Sampler = board.NewSeededSampler(f.seed)
	}
	if f.verbose {
		l, err := logger.New("PLAY", config.ColorYellow, os.Stderr)
		if err != nil {
			return fmt.Errorf("creating logger: %w", err)
		}
		opts.Logger = l
	}
	return cli.Run(cmd.InOrStdin(), cmd.OutOrStdout(), opts)
}

func orDefault(v, fallback int) int {
	if v != 0 {
		return v
	}
	return fallback
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
