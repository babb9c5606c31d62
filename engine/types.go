package engine

import (
	"github.com/solvers-go/treedepth/cache"
	"github.com/solvers-go/treedepth/config"
	"github.com/solvers-go/treedepth/shortcut"
	"github.com/solvers-go/treedepth/solverlog"
	"github.com/solvers-go/treedepth/timing"
)

// Engine holds all search data and policies for one solve, in the same
// spirit as tsp.bbEngine: explicit fields for configuration, shared
// collaborators, and search-progress counters instead of captured
// closures.
type Engine struct {
	opts     config.Options
	cache    *cache.SetTrie
	oracle   *shortcut.Oracle
	log      solverlog.Logger
	deadline timing.Deadline

	steps int // sparse deadline-check counter, mirrors bbEngine.steps
}

// New returns an Engine ready to drive Calculate. cache and oracle are
// shared across the whole recursion tree of one solve.
func New(opts config.Options, c *cache.SetTrie, oracle *shortcut.Oracle, log solverlog.Logger, clock timing.Clock) *Engine {
	if log == nil {
		log = solverlog.Noop
	}

	return &Engine{
		opts:     opts,
		cache:    c,
		oracle:   oracle,
		log:      log,
		deadline: timing.NewDeadline(clock, opts.TimeLimit),
	}
}

// checkDeadline performs a rare wall-clock test, exactly as
// tsp.bbEngine.deadlineCheck does: checking time.Now on every recursive
// call would dominate the cost of cheap calls, so it is only sampled
// every 1024 calls.
func (e *Engine) checkDeadline() error {
	e.steps++
	if e.steps&1023 != 0 {
		return nil
	}
	if e.deadline.Expired() {
		return ErrTimeout
	}

	return nil
}

func windowCollapsed(searchLbnd, searchUbnd, lower, upper int) bool {
	return searchLbnd > searchUbnd || searchUbnd <= lower || searchLbnd >= upper || lower == upper
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}
