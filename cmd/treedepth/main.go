// Command treedepth reads a PACE .gr instance and computes its exact
// treedepth, either printing the full elimination tree (solve) or just
// the answer and timing (bench).
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	treedepth "github.com/solvers-go/treedepth"
	"github.com/solvers-go/treedepth/config"
	"github.com/solvers-go/treedepth/pace"
)

// sharedFlags are accepted by both solve and bench; each RunE builds its
// own config.Options from them rather than threading a shared struct
// through cobra's PersistentFlags, since the two subcommands diverge in
// output and neither inherits from the other.
type sharedFlags struct {
	configPath   string
	subsetGap    int
	smallGraphN0 int
	batchCap     int
	timeLimit    time.Duration
	verbose      bool
}

func registerSharedFlags(cmd *cobra.Command, f *sharedFlags) {
	cmd.Flags().StringVar(&f.configPath, "config", "", "path to a TOML config file overriding solver tunables")
	cmd.Flags().IntVar(&f.subsetGap, "subset-gap", config.DefaultSubsetGap, "max size gap for SetTrie subset bound propagation")
	cmd.Flags().IntVar(&f.smallGraphN0, "small-graph-n0", config.DefaultSmallGraphN0, "vertex count below which the small-graph table is consulted")
	cmd.Flags().IntVar(&f.batchCap, "separator-batch-cap", config.DefaultSeparatorBatchCap, "max separators requested per generator batch")
	cmd.Flags().DurationVar(&f.timeLimit, "time-limit", 0, "wall-clock search budget (0 = unbounded)")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "enable debug logging")
}

func (f *sharedFlags) resolve(cmd *cobra.Command) (config.Options, *log.Logger, error) {
	level := log.InfoLevel
	if f.verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})

	opts, err := config.Load(f.configPath)
	if err != nil {
		return opts, nil, fmt.Errorf("loading config: %w", err)
	}
	if cmd.Flags().Changed("subset-gap") {
		opts.SubsetGap = f.subsetGap
	}
	if cmd.Flags().Changed("small-graph-n0") {
		opts.SmallGraphN0 = f.smallGraphN0
	}
	if cmd.Flags().Changed("separator-batch-cap") {
		opts.SeparatorBatchCap = f.batchCap
	}
	if cmd.Flags().Changed("time-limit") {
		opts.TimeLimit = f.timeLimit
	}

	return opts, logger, nil
}

func openInput(args []string) (*os.File, error) {
	if len(args) == 0 {
		return os.Stdin, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", args[0], err)
	}

	return f, nil
}

func newSolveCmd() *cobra.Command {
	flags := &sharedFlags{}
	cmd := &cobra.Command{
		Use:   "solve [input.gr]",
		Short: "Compute the exact treedepth and elimination tree of a connected graph",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, logger, err := flags.resolve(cmd)
			if err != nil {
				return err
			}

			in, err := openInput(args)
			if err != nil {
				return err
			}
			defer in.Close()

			g, err := pace.ReadGraph(in)
			if err != nil {
				return fmt.Errorf("reading graph: %w", err)
			}

			td, parents, err := treedepth.SolveWithLogger(g, logger, treedepth.WithOptions(opts))
			if err != nil {
				return fmt.Errorf("solving: %w", err)
			}

			return pace.WriteTree(os.Stdout, td, parents)
		},
	}
	registerSharedFlags(cmd, flags)

	return cmd
}

func newBenchCmd() *cobra.Command {
	flags := &sharedFlags{}
	cmd := &cobra.Command{
		Use:   "bench [input.gr]",
		Short: "Compute the exact treedepth and report elapsed solve time, without the tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, logger, err := flags.resolve(cmd)
			if err != nil {
				return err
			}

			in, err := openInput(args)
			if err != nil {
				return err
			}
			defer in.Close()

			g, err := pace.ReadGraph(in)
			if err != nil {
				return fmt.Errorf("reading graph: %w", err)
			}

			start := time.Now()
			td, _, err := treedepth.SolveWithLogger(g, logger, treedepth.WithOptions(opts))
			if err != nil {
				return fmt.Errorf("solving: %w", err)
			}
			elapsed := time.Since(start)

			fmt.Fprintf(os.Stdout, "treedepth=%d elapsed=%s\n", td, elapsed)

			return nil
		},
	}
	registerSharedFlags(cmd, flags)

	return cmd
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "treedepth",
		Short: "Compute the exact treedepth of a connected graph in PACE format",
	}
	root.AddCommand(newSolveCmd(), newBenchCmd())

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
