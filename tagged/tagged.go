// Package tagged composes the raw disjoint-set core with per-set mergeable
// tags: structural operations delegate to dsu, tag merges ride along on
// every real union.
package tagged

import (
	"iter"

	"github.com/katalvlaran/unionfind/dsu"
)

// Sets is a collection of disjoint sets, each carrying a tag of type T.
//
// Tags are stored solely in a map keyed by the current root index, so a
// non-root node never has a readable (stale) tag: absorbing a root deletes
// its entry and folds its tag into the winner's via Merge.
//
// Sets is not safe for concurrent use; see package dsu for the reasoning
// (even Find compresses paths).
type Sets[K comparable, T Mergable[T]] struct {
	core *dsu.DSU[K]
	tags map[int]*T // root index → tag; entries exist for roots only
}

// NewSets creates an empty tagged collection. Options are forwarded to the
// underlying dsu core (union strategy, capacity hint).
func NewSets[K comparable, T Mergable[T]](opts ...dsu.Option) *Sets[K, T] {
	return &Sets[K, T]{
		core: dsu.New[K](opts...),
		tags: make(map[int]*T),
	}
}

// MakeSet registers id as a new singleton set carrying tag.
//
// Returns dsu.ErrDuplicateElement if id is already registered; the
// structure is left untouched on failure.
//
// Complexity: O(1) amortized.
func (s *Sets[K, T]) MakeSet(id K, tag T) error {
	idx, err := s.core.MakeSet(id)
	if err != nil {
		return err
	}
	s.tags[idx] = &tag

	return nil
}

// Find resolves id's set and returns a view of it: canonical root,
// representative identifier, cardinality, and the set's tag.
//
// Returns dsu.ErrUnknownElement if id was never registered.
//
// The returned Set is a snapshot view; see the Set type for its lifetime
// contract.
//
// Complexity: O(α(n)) amortized.
func (s *Sets[K, T]) Find(id K) (Set[K, T], error) {
	root, err := s.core.Find(id)
	if err != nil {
		return Set[K, T]{}, err
	}

	return s.view(root), nil
}

// view builds the handle for a known root index.
func (s *Sets[K, T]) view(root int) Set[K, T] {
	size, _ := s.core.SetLen(s.core.KeyOf(root)) // root is registered, cannot fail

	return Set[K, T]{
		root: root,
		key:  s.core.KeyOf(root),
		size: size,
		tag:  s.tags[root],
	}
}

// Unite merges the sets containing a and b. On a real merge the absorbed
// root's tag entry is removed and folded into the winner's tag via Merge,
// and true is returned. When a and b already share a set, no tag is
// touched and false is returned.
//
// Returns dsu.ErrUnknownElement if either identifier was never registered;
// no mutation occurs on failure.
//
// Complexity: O(α(n)) amortized, plus one tag Merge on a real union.
func (s *Sets[K, T]) Unite(a, b K) (bool, error) {
	winner, loser, err := s.core.Unite(a, b)
	if err != nil {
		return false, err
	}
	if winner == loser {
		return false, nil
	}

	wt, lt := s.tags[winner], s.tags[loser]
	*wt = (*wt).Merge(*lt)
	delete(s.tags, loser)

	return true, nil
}

// SameSet reports whether a and b currently belong to the same set.
// Returns dsu.ErrUnknownElement if either identifier was never registered.
func (s *Sets[K, T]) SameSet(a, b K) (bool, error) {
	return s.core.SameSet(a, b)
}

// Contains reports whether id has been registered. Complexity: O(1).
func (s *Sets[K, T]) Contains(id K) bool {
	return s.core.Contains(id)
}

// Len returns the number of live sets. Complexity: O(1).
func (s *Sets[K, T]) Len() int {
	return s.core.Len()
}

// Elements returns the total number of registered identifiers. Complexity: O(1).
func (s *Sets[K, T]) Elements() int {
	return s.core.Elements()
}

// IsEmpty reports whether no identifier has been registered. Complexity: O(1).
func (s *Sets[K, T]) IsEmpty() bool {
	return s.core.IsEmpty()
}

// Iter returns a lazy, finite sequence of views, one per set live at the
// moment of the call. Each invocation captures a fresh root snapshot, so
// the sequence is restartable; it is not a live view, and mutating the
// collection (MakeSet, Unite, or any Find on other identifiers) while a
// traversal is in progress leaves that traversal undefined.
//
// Complexity: O(n) for the snapshot, O(α(n)) per yielded set.
func (s *Sets[K, T]) Iter() iter.Seq[Set[K, T]] {
	roots := s.core.Roots()

	return func(yield func(Set[K, T]) bool) {
		for _, root := range roots {
			if !yield(s.view(root)) {
				return
			}
		}
	}
}

// Set is a read-only view of one disjoint set: its canonical root, its
// representative identifier, its cardinality, and its tag.
//
// A Set borrows from the owning collection and is invalidated by any
// subsequent mutating call on it — Unite, MakeSet, and Find (path
// compression can retire the viewed root). Read everything you need from a
// view before mutating again; do not cache views across mutations.
type Set[K comparable, T Mergable[T]] struct {
	root int
	key  K
	size int
	tag  *T
}

// Root returns the set's canonical index at view time. Root indices are not
// stable across unions; use Same for identity comparisons instead of
// comparing cached roots.
func (v Set[K, T]) Root() int { return v.root }

// Key returns the representative identifier, i.e. the identifier that was
// registered for the set's current root index.
func (v Set[K, T]) Key() K { return v.key }

// Len returns the set's cardinality at view time.
func (v Set[K, T]) Len() int { return v.size }

// IsEmpty reports whether the set has no elements. A live set always holds
// at least its representative, so this is false for any view produced by
// Find or Iter.
func (v Set[K, T]) IsEmpty() bool { return v.size == 0 }

// Tag returns the set's tag. The pointer stays valid while this set
// survives subsequent unions (it is the winner's storage that Merge updates
// in place), but views should nonetheless be treated as invalidated by any
// mutation.
func (v Set[K, T]) Tag() *T { return v.tag }

// Same reports whether two views (taken from the same collection, with no
// mutation in between) reference the same set.
func (v Set[K, T]) Same(other Set[K, T]) bool { return v.root == other.root }
