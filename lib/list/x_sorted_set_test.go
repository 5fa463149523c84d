package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIntSet(t *testing.T, values ...int) SortedSet[int] {
	t.Helper()
	s, err := NewXSortedSet[int](WithXSeglLoadFactor(8))
	require.NoError(t, err)
	for _, v := range values {
		s.Add(v)
	}
	return s
}

func TestXSortedSet_Uniqueness(t *testing.T) {
	s := newIntSet(t)
	assert.True(t, s.Add(7))
	assert.False(t, s.Add(7))
	assert.True(t, s.Add(3))
	assert.Equal(t, int64(2), s.Len())
	assert.Equal(t, []int{3, 7}, s.Values())

	assert.True(t, s.Remove(7))
	assert.False(t, s.Remove(7))
	assert.Equal(t, int64(1), s.Len())
}

func TestXSortedSet_RankAndGet(t *testing.T) {
	s := newIntSet(t, 10, 20, 30, 40)
	assert.Equal(t, int64(2), s.Rank(25))
	assert.Equal(t, int64(2), s.Rank(30))
	v, err := s.Get(0)
	require.NoError(t, err)
	assert.Equal(t, 10, v)
	_, err = s.Get(4)
	assert.ErrorIs(t, err, ErrXSeglIndexOutOfRange)
}

func TestXSortedSet_Union(t *testing.T) {
	a := newIntSet(t, 1, 3, 5, 7)
	b := newIntSet(t, 2, 3, 4, 7, 9)
	u := a.Union(b)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 7, 9}, u.Values())
	// Inputs untouched.
	assert.Equal(t, []int{1, 3, 5, 7}, a.Values())
	assert.Equal(t, []int{2, 3, 4, 7, 9}, b.Values())
}

func TestXSortedSet_Intersect(t *testing.T) {
	a := newIntSet(t, 1, 3, 5, 7, 9)
	b := newIntSet(t, 3, 4, 7, 10)
	assert.Equal(t, []int{3, 7}, a.Intersect(b).Values())
	assert.Empty(t, a.Intersect(newIntSet(t)).Values())
}

func TestXSortedSet_Difference(t *testing.T) {
	a := newIntSet(t, 1, 3, 5, 7, 9)
	b := newIntSet(t, 3, 7)
	assert.Equal(t, []int{1, 5, 9}, a.Difference(b).Values())
	assert.Equal(t, []int{3, 7}, b.Difference(newIntSet(t)).Values())
	assert.Empty(t, b.Difference(b).Values())
}

func TestXSortedSet_WithComparator(t *testing.T) {
	s, err := NewXSortedSetWithComparator[string](func(i, j string) int64 {
		// Order by length, ties by content.
		if len(i) != len(j) {
			return int64(len(i) - len(j))
		}
		if i == j {
			return 0
		} else if i < j {
			return -1
		}
		return 1
	})
	require.NoError(t, err)
	assert.True(t, s.Add("ccc"))
	assert.True(t, s.Add("a"))
	assert.True(t, s.Add("bb"))
	assert.False(t, s.Add("ccc"))
	assert.Equal(t, []string{"a", "bb", "ccc"}, s.Values())
}
