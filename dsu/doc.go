// Package dsu provides the raw disjoint-set (union-find) core: identity,
// balanced union, and cardinality over a universe of client identifiers,
// with no metadata attached.
//
// What:
//
//   - DSU[K] maps identifiers to dense internal indices and maintains a
//     parent-pointer forest over a contiguous arena (no per-node pointers).
//   - Find applies path compression by halving; Unite balances by size
//     (default) or by rank, selectable via options.
//   - Len (live set count), SetLen (per-set cardinality) and Elements
//     (universe size) are all O(1) beyond the root resolution itself.
//
// Why:
//
//   - Connectivity: incremental "same component?" queries while edges arrive.
//   - Clustering & Kruskal-style algorithms: merge components cheaply,
//     skip edges inside one.
//   - Deduplication/grouping: collapse equivalent records as equivalences
//     are discovered.
//
// This package is the deliberate performance escape hatch: clients that need
// only identity, same-set testing, and cardinality use it directly and pay
// nothing for tags. Attachable, mergeable metadata lives one layer up in
// package tagged.
//
// Complexity:
//
//   - MakeSet:  O(1) amortized.
//   - Find/Unite/SameSet/SetLen: O(α(n)) amortized (α = inverse Ackermann).
//   - Roots: O(n) snapshot.
//
// Options:
//
//   - WithUnionBySize() — winner is the larger set (default).
//   - WithUnionByRank() — winner is the deeper tree; sizes still maintained.
//   - WithCapacity(n)   — pre-size arena and registry for n elements.
//
// Errors:
//
//   - ErrDuplicateElement: MakeSet called twice with the same identifier.
//   - ErrUnknownElement:   operation referenced an unregistered identifier.
//
// Both are recoverable caller errors; a failing call leaves the structure
// exactly as it was. No other operation can fail.
//
// DSU is single-threaded by design. Path compression mutates parent
// pointers, so even Find requires external mutual exclusion if the structure
// is shared across goroutines.
package dsu
