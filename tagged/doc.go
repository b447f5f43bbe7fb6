// Package tagged layers user-defined, mergeable metadata ("tags") on top of
// the raw disjoint-set core, and builds element iteration on the very same
// mechanism.
//
// What:
//
//   - Mergable[T] is the one-method contract a payload implements to ride
//     on sets: Merge combines the surviving root's tag with the absorbed
//     root's tag on every real union.
//   - Sets[K, T] composes dsu.DSU[K] with a root-indexed tag map; structure
//     goes to the core, tag merges happen alongside, and Find/Iter hand out
//     read-only Set views (root, representative, cardinality, tag).
//   - IterableTag wraps any Mergable with a Members set; IterableSets uses
//     it to make every set's elements enumerable — pure composition, no
//     special-casing in the core.
//   - Unit is the empty tag: plain union-find through the tagged API.
//
// Why:
//
//   - Component summaries: keep per-component aggregates (counts, extrema,
//     labels) current as components merge, without post-hoc scans.
//   - Grouping with rollups: union records and their metadata in one call.
//   - Membership listings: enumerate a component's elements at any time.
//
// Tag correctness contract:
//
//	A set's final tag must depend only on the multiset of per-element tags
//	it absorbed, never on union order. Merge implementations must be
//	order-insensitive in that sense (Unit and Members are; an additive
//	counter is; "keep the left operand" is not).
//
// Complexity:
//
//   - MakeSet: O(1) amortized. Unite: O(α(n)) + one Merge.
//   - Find: O(α(n)) amortized. Iter: O(n) snapshot + O(α(n)) per set.
//
// Errors (shared with package dsu):
//
//   - dsu.ErrDuplicateElement: MakeSet on an already-registered identifier.
//   - dsu.ErrUnknownElement:   Find/Unite on an unregistered identifier.
//
// Views borrow from the collection and are invalidated by any later
// mutating call (Unite, MakeSet, and Find — path compression mutates).
// Mutating while an Iter traversal is in progress is likewise undefined;
// finish the walk first or collect the views up front.
//
// Like package dsu, this package is single-threaded by design.
package tagged
