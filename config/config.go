// Package config carries the tunables the source implementation leaves
// to the implementer (spec §9 Open Question a): how aggressively the
// SetTrie cache searches for useful subsets, the small-graph shortcut
// cutoff, the separator batch size, and an optional wall-clock budget.
// It follows the functional-options shape used throughout the teacher
// corpus (builder.BuilderOption, bfs.Option).
package config

import (
	"time"

	"github.com/BurntSushi/toml"
)

// Default tunables. SubsetGap=1 matches the source's own default: a
// cheap lower-bound propagator rather than the exhaustive (and much
// costlier) GapUnbounded search.
const (
	DefaultSubsetGap         = 1
	DefaultSmallGraphN0      = 14
	DefaultSeparatorBatchCap = 100000
)

// Options holds every tunable the engine consults.
type Options struct {
	// SubsetGap bounds how many elements a cached set may differ from the
	// query set for cache.SetTrie.BigSubsets to consider it. Use
	// cache.GapUnbounded for exhaustive subset search.
	SubsetGap int

	// SmallGraphN0 is the vertex-count cutoff below which the shortcut
	// oracle consults the small-graph table instead of falling through
	// to separators.
	SmallGraphN0 int

	// SeparatorBatchCap is the maximum number of separators requested
	// from separator.Generator.Next per call in the engine's separator
	// loop (spec §4.6 step 6).
	SeparatorBatchCap int

	// TimeLimit, if non-zero, bounds wall-clock search time; exceeding it
	// raises engine.ErrTimeout. Zero means unbounded.
	TimeLimit time.Duration
}

// Option mutates an Options value being built.
type Option func(*Options)

// Default returns the baseline Options described above.
func Default() Options {
	return Options{
		SubsetGap:         DefaultSubsetGap,
		SmallGraphN0:       DefaultSmallGraphN0,
		SeparatorBatchCap: DefaultSeparatorBatchCap,
	}
}

// WithSubsetGap overrides the subset-search gap.
func WithSubsetGap(gap int) Option {
	return func(o *Options) { o.SubsetGap = gap }
}

// WithSmallGraphN0 overrides the small-graph table cutoff.
func WithSmallGraphN0(n0 int) Option {
	return func(o *Options) { o.SmallGraphN0 = n0 }
}

// WithSeparatorBatchCap overrides the separator batch size.
func WithSeparatorBatchCap(cap int) Option {
	return func(o *Options) { o.SeparatorBatchCap = cap }
}

// WithTimeLimit sets a wall-clock search budget.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) { o.TimeLimit = d }
}

// New builds Options from Default() plus any overrides, in order.
func New(opts ...Option) Options {
	o := Default()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// file mirrors the on-disk TOML schema for Load.
type file struct {
	SubsetGap         *int    `toml:"subset_gap"`
	SmallGraphN0      *int    `toml:"small_graph_n0"`
	SeparatorBatchCap *int    `toml:"separator_batch_cap"`
	TimeLimitSeconds  *float64 `toml:"time_limit_seconds"`
}

// Load overlays a TOML config file onto Default(), leaving fields the
// file doesn't mention at their default. A missing path is not an
// error: the CLI treats --config as optional.
func Load(path string) (Options, error) {
	o := Default()
	if path == "" {
		return o, nil
	}

	var f file
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return Options{}, err
	}
	if f.SubsetGap != nil {
		o.SubsetGap = *f.SubsetGap
	}
	if f.SmallGraphN0 != nil {
		o.SmallGraphN0 = *f.SmallGraphN0
	}
	if f.SeparatorBatchCap != nil {
		o.SeparatorBatchCap = *f.SeparatorBatchCap
	}
	if f.TimeLimitSeconds != nil {
		o.TimeLimit = time.Duration(*f.TimeLimitSeconds * float64(time.Second))
	}

	return o, nil
}
