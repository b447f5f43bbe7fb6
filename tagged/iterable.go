package tagged

import (
	"iter"

	"github.com/katalvlaran/unionfind/dsu"
)

// IterableTag wraps any Mergable tag with a member set, making the elements
// of a set enumerable. It is an ordinary Mergable client of the tagged
// layer: neither the dsu core nor Sets treats it specially.
type IterableTag[K comparable, T Mergable[T]] struct {
	members Members[K]
	tag     T
}

// NewIterableTag returns the tag for a fresh singleton set: member set {id}
// plus the user tag.
func NewIterableTag[K comparable, T Mergable[T]](id K, tag T) IterableTag[K, T] {
	return IterableTag[K, T]{
		members: NewMembers(id),
		tag:     tag,
	}
}

// Merge unions the absorbed member set into the surviving one and merges
// the wrapped user tags.
func (t IterableTag[K, T]) Merge(other IterableTag[K, T]) IterableTag[K, T] {
	t.members = t.members.Merge(other.members)
	t.tag = t.tag.Merge(other.tag)

	return t
}

// Tag returns the wrapped user tag.
func (t IterableTag[K, T]) Tag() T { return t.tag }

// All returns a restartable sequence over the member identifiers.
func (t IterableTag[K, T]) All() iter.Seq[K] { return t.members.All() }

// Len returns the number of member identifiers.
func (t IterableTag[K, T]) Len() int { return t.members.Len() }

// IterableSets is the element-iterable flavor of the tagged layer: every
// user tag is transparently wrapped in an IterableTag, so each set can
// enumerate its members while still carrying arbitrary mergeable metadata.
//
// This is plain composition over Sets — the generality demonstration: any
// capability expressible as a Mergable can be layered the same way.
type IterableSets[K comparable, T Mergable[T]] struct {
	inner *Sets[K, IterableTag[K, T]]
}

// NewIterableSets creates an empty iterable collection. Options are
// forwarded to the underlying dsu core.
func NewIterableSets[K comparable, T Mergable[T]](opts ...dsu.Option) *IterableSets[K, T] {
	return &IterableSets[K, T]{
		inner: NewSets[K, IterableTag[K, T]](opts...),
	}
}

// MakeSet registers id as a new singleton set carrying tag; the member set
// is seeded with {id}. Returns dsu.ErrDuplicateElement if id is already
// registered.
func (s *IterableSets[K, T]) MakeSet(id K, tag T) error {
	return s.inner.MakeSet(id, NewIterableTag(id, tag))
}

// Find resolves id's set to an element-iterable view.
// Returns dsu.ErrUnknownElement if id was never registered.
func (s *IterableSets[K, T]) Find(id K) (ElemSet[K, T], error) {
	raw, err := s.inner.Find(id)
	if err != nil {
		return ElemSet[K, T]{}, err
	}

	return ElemSet[K, T]{raw: raw}, nil
}

// Unite merges the sets containing a and b; member sets union alongside the
// user tags. Reports true on a real merge, false on an idempotent one.
// Returns dsu.ErrUnknownElement if either identifier was never registered.
func (s *IterableSets[K, T]) Unite(a, b K) (bool, error) {
	return s.inner.Unite(a, b)
}

// SameSet reports whether a and b currently belong to the same set.
func (s *IterableSets[K, T]) SameSet(a, b K) (bool, error) {
	return s.inner.SameSet(a, b)
}

// Contains reports whether id has been registered.
func (s *IterableSets[K, T]) Contains(id K) bool { return s.inner.Contains(id) }

// Len returns the number of live sets.
func (s *IterableSets[K, T]) Len() int { return s.inner.Len() }

// Elements returns the total number of registered identifiers.
func (s *IterableSets[K, T]) Elements() int { return s.inner.Elements() }

// IsEmpty reports whether no identifier has been registered.
func (s *IterableSets[K, T]) IsEmpty() bool { return s.inner.IsEmpty() }

// Iter returns a lazy, restartable sequence of element-iterable views, one
// per set live at call time. The same snapshot and mutation caveats as
// Sets.Iter apply.
func (s *IterableSets[K, T]) Iter() iter.Seq[ElemSet[K, T]] {
	seq := s.inner.Iter()

	return func(yield func(ElemSet[K, T]) bool) {
		for raw := range seq {
			if !yield(ElemSet[K, T]{raw: raw}) {
				return
			}
		}
	}
}

// ElemSet is the element-iterable view of one set: everything a Set view
// offers, plus enumeration of member identifiers, with the user tag
// unwrapped from its iterable envelope. The Set lifetime contract applies
// unchanged.
type ElemSet[K comparable, T Mergable[T]] struct {
	raw Set[K, IterableTag[K, T]]
}

// Root returns the set's canonical index at view time.
func (v ElemSet[K, T]) Root() int { return v.raw.Root() }

// Key returns the representative identifier.
func (v ElemSet[K, T]) Key() K { return v.raw.Key() }

// Len returns the set's cardinality at view time.
func (v ElemSet[K, T]) Len() int { return v.raw.Len() }

// IsEmpty reports whether the set has no elements.
func (v ElemSet[K, T]) IsEmpty() bool { return v.raw.IsEmpty() }

// Tag returns the user tag, unwrapped.
func (v ElemSet[K, T]) Tag() *T { return &v.raw.tag.tag }

// Iter returns a restartable sequence over the set's member identifiers.
func (v ElemSet[K, T]) Iter() iter.Seq[K] { return v.raw.tag.members.All() }

// Same reports whether two views (taken from the same collection, with no
// mutation in between) reference the same set.
func (v ElemSet[K, T]) Same(other ElemSet[K, T]) bool { return v.raw.Same(other.raw) }
