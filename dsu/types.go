// Package dsu defines configuration options and sentinel errors
// for the raw disjoint-set core of github.com/katalvlaran/unionfind.
package dsu

import "errors"

// Sentinel errors for dsu operations.
var (
	// ErrDuplicateElement indicates MakeSet was called with an identifier that is already registered.
	ErrDuplicateElement = errors.New("dsu: duplicate element")
	// ErrUnknownElement indicates an operation referenced an identifier never passed to MakeSet.
	ErrUnknownElement = errors.New("dsu: unknown element")
)

// UnionStrategy selects the heuristic biasing union direction:
// by set cardinality (BySize) or by tree depth bound (ByRank).
type UnionStrategy int

const (
	// BySize attaches the root of the smaller set under the root of the larger one.
	BySize UnionStrategy = iota
	// ByRank attaches the shallower tree under the deeper one.
	ByRank
)

// Options contains tunable parameters for a DSU instance.
// Use DefaultOptions() to get a default setup (BySize, no pre-sizing).
type Options struct {
	// Strategy chooses the union heuristic. Per-set sizes are maintained
	// under both strategies, so SetLen stays O(1) amortized either way.
	Strategy UnionStrategy

	// Capacity pre-sizes the arena and registry for the expected element
	// count to avoid growth reallocations. Zero means no pre-sizing.
	Capacity int
}

// Option configures Options. All Option functions modify the pointed Options.
type Option func(*Options)

// WithUnionBySize returns an Option that selects union by size (the default).
func WithUnionBySize() Option {
	return func(opts *Options) {
		opts.Strategy = BySize
	}
}

// WithUnionByRank returns an Option that selects union by rank.
func WithUnionByRank() Option {
	return func(opts *Options) {
		opts.Strategy = ByRank
	}
}

// WithCapacity returns an Option that pre-sizes internal storage for n elements.
// Negative n is treated as zero.
func WithCapacity(n int) Option {
	return func(opts *Options) {
		if n < 0 {
			n = 0
		}
		opts.Capacity = n
	}
}

// DefaultOptions returns an Options initialized with defaults:
//
//	– Strategy = BySize
//	– Capacity = 0 (no pre-sizing).
//
// Complexity: O(1) to construct.
func DefaultOptions() Options {
	return Options{
		Strategy: BySize,
		Capacity: 0,
	}
}
