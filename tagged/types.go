// Package tagged defines the mergeable-tag contract and the built-in tag
// types for the tagged disjoint-set layer of github.com/katalvlaran/unionfind.
package tagged

import "iter"

// Mergable is the single-operation contract a payload type implements to be
// attached to sets: given the surviving root's tag and the absorbed root's
// tag, Merge produces the combined tag, consuming the absorbed one.
//
// Contract: the final tag of a set must depend only on the multiset of
// per-element tags it was built from, never on the order unions occurred.
// Concretely, for any tags produced by merging, the merge of merges must
// equal the merge of the union. Unit and Members satisfy this trivially;
// any non-trivial implementation must uphold it itself.
//
// Mergable is a generic constraint, not an interface value: the unite path
// dispatches statically, with no virtual call.
type Mergable[T any] interface {
	Merge(other T) T
}

// Unit is the empty tag. Attaching Unit to every set yields plain
// union-find semantics with zero payload cost.
type Unit struct{}

// Merge combines two empty tags into one.
func (Unit) Merge(Unit) Unit { return Unit{} }

// Members is a set of element identifiers, used as a tag payload to keep a
// set's membership enumerable. Duplicates cannot arise: an identifier lives
// in exactly one set at any time.
type Members[K comparable] map[K]struct{}

// NewMembers returns a Members containing the given identifiers.
func NewMembers[K comparable](ids ...K) Members[K] {
	m := make(Members[K], len(ids))
	m.Add(ids...)

	return m
}

// Add inserts identifiers into the member set.
func (m Members[K]) Add(ids ...K) {
	for _, id := range ids {
		m[id] = struct{}{}
	}
}

// Has reports whether id is a member.
func (m Members[K]) Has(id K) bool {
	_, ok := m[id]

	return ok
}

// Len returns the number of members.
func (m Members[K]) Len() int {
	return len(m)
}

// All returns a restartable sequence over the members, in map order.
func (m Members[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for id := range m {
			if !yield(id) {
				return
			}
		}
	}
}

// Merge unions the absorbed member set into the surviving one and returns
// the result. The smaller side is folded into the larger, so a sequence of
// n merges costs O(n log n) total regardless of merge order.
func (m Members[K]) Merge(other Members[K]) Members[K] {
	if len(other) > len(m) {
		m, other = other, m
	}
	for id := range other {
		m[id] = struct{}{}
	}

	return m
}
