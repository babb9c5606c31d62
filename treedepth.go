package treedepth

import (
	"errors"
	"time"

	"github.com/solvers-go/treedepth/cache"
	"github.com/solvers-go/treedepth/config"
	"github.com/solvers-go/treedepth/engine"
	"github.com/solvers-go/treedepth/graph"
	"github.com/solvers-go/treedepth/shortcut"
	"github.com/solvers-go/treedepth/smallgraph"
	"github.com/solvers-go/treedepth/solverlog"
	"github.com/solvers-go/treedepth/timing"
)

// Option configures a Solve call. It wraps config.Option so that callers
// of this package never need to import the config package directly for
// common cases.
type Option = config.Option

// WithOptions lets a caller pass a fully-built config.Options (e.g. one
// loaded from a TOML file via config.Load) instead of functional options.
func WithOptions(o config.Options) Option {
	return func(dst *config.Options) { *dst = o }
}

// Logger is re-exported so callers don't need to import solverlog for the
// common case of wiring in *charmbracelet/log.Logger.
type Logger = solverlog.Logger

// Solve computes the treedepth of g and a witnessing elimination forest.
// parents[i] is the 0-based parent of global vertex i, or -1 if i is a
// root of the forest (g is required to be connected, so in practice
// there is exactly one root; pace.WriteTree translates this into the
// PACE 1-based, 0-for-root convention).
func Solve(g *graph.Graph, opts ...Option) (td int, parents []int, err error) {
	return SolveWithLogger(g, solverlog.Noop, opts...)
}

// SolveWithLogger is Solve with an explicit progress logger, used by
// cmd/treedepth to surface charmbracelet/log output.
func SolveWithLogger(g *graph.Graph, log Logger, opts ...Option) (td int, parents []int, err error) {
	o := config.New(opts...)

	table := smallgraph.NewTable()
	oracle := shortcut.NewOracle(o.SmallGraphN0, table)
	trie := cache.NewSetTrie()
	eng := engine.New(o, trie, oracle, log, timing.RealClock())

	full := g.Full()
	n := full.N()

	log.Infof("solving treedepth for N=%d M=%d", n, g.M())
	start := time.Now()

	lower, upper, _, _, err := eng.Calculate(full, 1, n+1)
	if err != nil {
		return 0, nil, translate(err)
	}
	if lower != upper {
		return 0, nil, ErrInvariantViolation
	}

	parents = make([]int, n)
	for i := range parents {
		parents[i] = -1
	}
	if err := eng.Reconstruct(full, parents); err != nil {
		return 0, nil, translate(err)
	}

	log.Infof("treedepth = %d, elapsed = %s", upper, time.Since(start))

	return upper, parents, nil
}

func translate(err error) error {
	switch {
	case errors.Is(err, engine.ErrTimeout):
		return ErrTimeout
	case errors.Is(err, engine.ErrInvariantViolation):
		return ErrInvariantViolation
	default:
		return err
	}
}
