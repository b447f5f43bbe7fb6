package tagged_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/unionfind/dsu"
	"github.com/katalvlaran/unionfind/tagged"
)

// counter is an additive tag: merging sums the counts. Order-insensitive,
// so it satisfies the Mergable contract.
type counter struct{ X int }

func (c counter) Merge(o counter) counter {
	c.X += o.X

	return c
}

func TestMakeSet_Duplicate(t *testing.T) {
	s := tagged.NewSets[string, tagged.Unit]()
	require.NoError(t, s.MakeSet("dup", tagged.Unit{}))

	err := s.MakeSet("dup", tagged.Unit{})
	assert.ErrorIs(t, err, dsu.ErrDuplicateElement)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 1, s.Elements())
}

func TestFind_Unknown(t *testing.T) {
	s := tagged.NewSets[string, tagged.Unit]()
	_, err := s.Find("never-inserted")
	assert.ErrorIs(t, err, dsu.ErrUnknownElement)
}

func TestUnitTags_PlainUnionFindSemantics(t *testing.T) {
	// Insert 0,1,2 with unit tags; unite(0,1); expect plain union-find
	// cardinality and equality behavior.
	s := tagged.NewSets[int, tagged.Unit]()
	for i := 0; i < 3; i++ {
		require.NoError(t, s.MakeSet(i, tagged.Unit{}))
	}

	merged, err := s.Unite(0, 1)
	require.NoError(t, err)
	assert.True(t, merged)

	v0, err := s.Find(0)
	require.NoError(t, err)
	v1, err := s.Find(1)
	require.NoError(t, err)
	v2, err := s.Find(2)
	require.NoError(t, err)

	assert.True(t, v0.Same(v1))
	assert.False(t, v0.Same(v2))
	assert.Equal(t, 2, v0.Len())
	assert.Equal(t, 1, v2.Len())
	assert.Equal(t, 2, s.Len())
}

func TestUnite_AdditiveTagMerge(t *testing.T) {
	s := tagged.NewSets[int, counter]()
	require.NoError(t, s.MakeSet(0, counter{X: 1}))
	require.NoError(t, s.MakeSet(1, counter{X: 2}))

	merged, err := s.Unite(0, 1)
	require.NoError(t, err)
	assert.True(t, merged)

	v, err := s.Find(0)
	require.NoError(t, err)
	assert.Equal(t, 3, v.Tag().X)
	assert.Equal(t, 2, v.Len())
}

func TestUnite_IdempotentKeepsTag(t *testing.T) {
	s := tagged.NewSets[int, counter]()
	require.NoError(t, s.MakeSet(0, counter{X: 1}))
	require.NoError(t, s.MakeSet(1, counter{X: 2}))

	merged, err := s.Unite(0, 1)
	require.NoError(t, err)
	require.True(t, merged)

	// Repeating the union must not merge the tag a second time.
	merged, err = s.Unite(0, 1)
	require.NoError(t, err)
	assert.False(t, merged)

	v, err := s.Find(1)
	require.NoError(t, err)
	assert.Equal(t, 3, v.Tag().X)
	assert.Equal(t, 1, s.Len())
}

func TestUnite_OrderInsensitiveFinalTag(t *testing.T) {
	// Four elements with counts 1,2,4,8 united in two different orders must
	// end with the same tag value 15.
	orders := [][][2]int{
		{{0, 1}, {2, 3}, {0, 2}},
		{{3, 2}, {2, 1}, {1, 0}},
	}
	for _, order := range orders {
		s := tagged.NewSets[int, counter]()
		for i, x := range []int{1, 2, 4, 8} {
			require.NoError(t, s.MakeSet(i, counter{X: x}))
		}
		for _, p := range order {
			_, err := s.Unite(p[0], p[1])
			require.NoError(t, err)
		}

		v, err := s.Find(0)
		require.NoError(t, err)
		assert.Equal(t, 15, v.Tag().X)
		assert.Equal(t, 4, v.Len())
	}
}

func TestUnite_Unknown(t *testing.T) {
	s := tagged.NewSets[string, counter]()
	require.NoError(t, s.MakeSet("a", counter{X: 5}))

	_, err := s.Unite("a", "ghost")
	assert.ErrorIs(t, err, dsu.ErrUnknownElement)

	// No partial mutation: tag and structure untouched.
	v, err := s.Find("a")
	require.NoError(t, err)
	assert.Equal(t, 5, v.Tag().X)
	assert.Equal(t, 1, s.Len())
}

func TestTag_WinnerStorageUpdatedInPlace(t *testing.T) {
	s := tagged.NewSets[string, counter]()
	require.NoError(t, s.MakeSet("a", counter{X: 1}))
	require.NoError(t, s.MakeSet("b", counter{X: 2}))
	require.NoError(t, s.MakeSet("c", counter{X: 4}))

	_, err := s.Unite("a", "b")
	require.NoError(t, err)

	v, err := s.Find("a")
	require.NoError(t, err)
	p := v.Tag()
	require.Equal(t, 3, p.X)

	// {a,b} is larger, so it survives this union and its storage is the one
	// Merge updates.
	_, err = s.Unite("a", "c")
	require.NoError(t, err)
	assert.Equal(t, 7, p.X)
}

func TestSetView_Fields(t *testing.T) {
	s := tagged.NewSets[string, counter]()
	require.NoError(t, s.MakeSet("a", counter{X: 1}))
	require.NoError(t, s.MakeSet("b", counter{X: 2}))
	_, err := s.Unite("a", "b")
	require.NoError(t, err)

	v, err := s.Find("b")
	require.NoError(t, err)
	assert.Contains(t, []string{"a", "b"}, v.Key(), "representative is one of the members")
	assert.Equal(t, 2, v.Len())
	assert.False(t, v.IsEmpty())

	root, err := s.Find(v.Key())
	require.NoError(t, err)
	assert.Equal(t, v.Root(), root.Root(), "representative resolves to the viewed root")
}

func TestIter_SnapshotCoversEverySet(t *testing.T) {
	s := tagged.NewSets[int, counter]()
	for i := 0; i < 8; i++ {
		require.NoError(t, s.MakeSet(i, counter{X: 1}))
	}
	for _, p := range [][2]int{{0, 1}, {2, 3}, {0, 3}, {5, 6}} {
		_, err := s.Unite(p[0], p[1])
		require.NoError(t, err)
	}

	// Two full passes: the sequence must be restartable per invocation.
	seq := s.Iter()
	for pass := 0; pass < 2; pass++ {
		sets, elems, tagSum := 0, 0, 0
		for v := range seq {
			sets++
			elems += v.Len()
			tagSum += v.Tag().X
		}
		assert.Equal(t, s.Len(), sets, "pass %d: one view per live set", pass)
		assert.Equal(t, s.Elements(), elems, "pass %d: cardinalities partition the universe", pass)
		assert.Equal(t, 8, tagSum, "pass %d: tags partition the total count", pass)
	}
}

func TestIter_EarlyBreak(t *testing.T) {
	s := tagged.NewSets[int, tagged.Unit]()
	for i := 0; i < 5; i++ {
		require.NoError(t, s.MakeSet(i, tagged.Unit{}))
	}

	seen := 0
	for range s.Iter() {
		seen++
		if seen == 2 {
			break
		}
	}
	assert.Equal(t, 2, seen)
}

func TestMembers_SetOperations(t *testing.T) {
	m := tagged.NewMembers("a", "b")
	assert.Equal(t, 2, m.Len())
	assert.True(t, m.Has("a"))
	assert.False(t, m.Has("z"))

	m.Add("c")
	assert.Equal(t, 3, m.Len())

	got := make(map[string]bool)
	for id := range m.All() {
		got[id] = true
	}
	assert.Len(t, got, 3)

	merged := m.Merge(tagged.NewMembers("c", "d", "e", "f"))
	assert.Equal(t, 6, merged.Len(), "union deduplicates the shared member")
	for _, id := range []string{"a", "b", "c", "d", "e", "f"} {
		assert.True(t, merged.Has(id))
	}
}
