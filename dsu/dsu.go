// Package dsu implements the raw disjoint-set (union-find) core: a
// path-compressed, balanced forest over client-supplied identifiers.
package dsu

// DSU is a disjoint-set forest over identifiers of type K.
//
// Each identifier registered via MakeSet receives a dense internal index,
// never reused and stable for the structure's lifetime. Parent pointers,
// rank and size counters are slices indexed by that arena, so the forest
// holds no per-node pointers and no cycles are representable by accident.
//
// DSU is not safe for concurrent use: Find performs path compression and
// therefore mutates parent pointers even though it is conceptually a read.
// Callers needing cross-goroutine access must serialize every call.
type DSU[K comparable] struct {
	index    map[K]int     // identifier → dense index
	keys     []K           // dense index → identifier
	parent   []int         // parent[i] == i ⇔ i is a root
	rank     []int         // depth bound; meaningful only at roots, only under ByRank
	size     []int         // set cardinality; meaningful only at roots
	roots    int           // number of live sets, maintained on every real union
	strategy UnionStrategy // union heuristic fixed at construction
}

// New creates an empty DSU configured by the given options.
//
// Complexity: O(Capacity) for pre-sizing, O(1) otherwise.
func New[K comparable](opts ...Option) *DSU[K] {
	// 1. Apply options over defaults, left to right.
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 2. Allocate storage, pre-sized when a capacity hint was given.
	return &DSU[K]{
		index:    make(map[K]int, dopts.Capacity),
		keys:     make([]K, 0, dopts.Capacity),
		parent:   make([]int, 0, dopts.Capacity),
		rank:     make([]int, 0, dopts.Capacity),
		size:     make([]int, 0, dopts.Capacity),
		strategy: dopts.Strategy,
	}
}

// MakeSet registers id as a new singleton set and returns its index.
//
// Returns ErrDuplicateElement if id is already registered; the structure is
// left untouched on failure.
//
// Complexity: O(1) amortized.
func (d *DSU[K]) MakeSet(id K) (int, error) {
	if _, ok := d.index[id]; ok {
		return 0, ErrDuplicateElement
	}

	// Allocate the next dense index; the new node is its own parent.
	idx := len(d.parent)
	d.index[id] = idx
	d.keys = append(d.keys, id)
	d.parent = append(d.parent, idx)
	d.rank = append(d.rank, 0)
	d.size = append(d.size, 1)
	d.roots++

	return idx, nil
}

// Find resolves id to the canonical index of its set's current root,
// compressing the traversed path so future lookups on the same chain are
// O(1) amortized.
//
// Returns ErrUnknownElement if id was never registered.
//
// Root indices are not stable across Unite calls: the absorbed root stops
// being canonical. Do not cache the result across mutating calls.
//
// Complexity: O(α(n)) amortized.
func (d *DSU[K]) Find(id K) (int, error) {
	idx, ok := d.index[id]
	if !ok {
		return 0, ErrUnknownElement
	}

	return d.findRoot(idx), nil
}

// findRoot walks parent pointers from i to the root, applying path
// compression by halving: every visited node is re-pointed at its
// grandparent, so the chain shortens on the way up without a second pass.
func (d *DSU[K]) findRoot(i int) int {
	for d.parent[i] != i {
		d.parent[i] = d.parent[d.parent[i]]
		i = d.parent[i]
	}

	return i
}

// Unite merges the sets containing a and b and reports which root absorbed
// which: winner is the canonical index of the combined set, loser the index
// of the root it absorbed. When a and b are already in the same set the call
// is an idempotent no-op and loser == winner.
//
// The winner is the root with strictly greater size (BySize) or rank
// (ByRank); ties attach b's root under a's root, so the tie-break is
// deterministic but caller-order dependent.
//
// Returns ErrUnknownElement if either identifier was never registered; the
// observable state is unchanged on failure.
//
// Complexity: O(α(n)) amortized.
func (d *DSU[K]) Unite(a, b K) (winner, loser int, err error) {
	// 1. Resolve both operands to roots; unknown identifiers fail the call.
	rootA, err := d.Find(a)
	if err != nil {
		return 0, 0, err
	}
	rootB, err := d.Find(b)
	if err != nil {
		return 0, 0, err
	}

	// 2. Same root ⇒ idempotent union, nothing to merge.
	if rootA == rootB {
		return rootA, rootA, nil
	}

	// 3. Pick the winner by the configured heuristic, ties to the first operand.
	winner, loser = rootA, rootB
	switch d.strategy {
	case ByRank:
		if d.rank[rootB] > d.rank[rootA] {
			winner, loser = rootB, rootA
		}
		if d.rank[winner] == d.rank[loser] {
			d.rank[winner]++
		}
	default: // BySize
		if d.size[rootB] > d.size[rootA] {
			winner, loser = rootB, rootA
		}
	}

	// 4. Absorb: the loser's root joins the winner's tree, sizes accumulate
	//    under both strategies so SetLen stays O(1).
	d.parent[loser] = winner
	d.size[winner] += d.size[loser]
	d.roots--

	return winner, loser, nil
}

// SameSet reports whether a and b currently belong to the same set.
//
// Returns ErrUnknownElement if either identifier was never registered.
//
// Complexity: O(α(n)) amortized.
func (d *DSU[K]) SameSet(a, b K) (bool, error) {
	rootA, err := d.Find(a)
	if err != nil {
		return false, err
	}
	rootB, err := d.Find(b)
	if err != nil {
		return false, err
	}

	return rootA == rootB, nil
}

// SetLen returns the cardinality of id's set.
//
// Returns ErrUnknownElement if id was never registered.
//
// Complexity: O(α(n)) amortized.
func (d *DSU[K]) SetLen(id K) (int, error) {
	root, err := d.Find(id)
	if err != nil {
		return 0, err
	}

	return d.size[root], nil
}

// Len returns the number of live sets. Complexity: O(1).
func (d *DSU[K]) Len() int {
	return d.roots
}

// Elements returns the total number of registered identifiers. Complexity: O(1).
func (d *DSU[K]) Elements() int {
	return len(d.parent)
}

// IsEmpty reports whether no identifier has been registered. Complexity: O(1).
func (d *DSU[K]) IsEmpty() bool {
	return len(d.parent) == 0
}

// Contains reports whether id has been registered via MakeSet. Complexity: O(1).
func (d *DSU[K]) Contains(id K) bool {
	_, ok := d.index[id]

	return ok
}

// KeyOf returns the identifier registered for the given dense index.
// Valid only for indices previously returned by this DSU's MakeSet, Find or
// Unite; any other index panics with an out-of-range access.
//
// Complexity: O(1).
func (d *DSU[K]) KeyOf(idx int) K {
	return d.keys[idx]
}

// Roots returns the canonical indices of all currently live sets, in
// ascending index order. The slice is a snapshot: later Unite calls do not
// affect it, and its entries stop being canonical once absorbed.
//
// Complexity: O(n).
func (d *DSU[K]) Roots() []int {
	out := make([]int, 0, d.roots)
	for i := range d.parent {
		if d.parent[i] == i {
			out = append(out, i)
		}
	}

	return out
}
