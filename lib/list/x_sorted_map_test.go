package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXSortedMap_PutGetDelete(t *testing.T) {
	m, err := NewXSortedMap[string, int](WithXSeglLoadFactor(8))
	require.NoError(t, err)

	assert.True(t, m.Put("b", 2))
	assert.True(t, m.Put("a", 1))
	assert.True(t, m.Put("c", 3))
	assert.Equal(t, int64(3), m.Len())

	v, ok := m.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	_, ok = m.Get("zz")
	assert.False(t, ok)

	// Replace keeps the key count stable.
	assert.False(t, m.Put("b", 20))
	assert.Equal(t, int64(3), m.Len())
	v, ok = m.Get("b")
	assert.True(t, ok)
	assert.Equal(t, 20, v)

	v, ok = m.Delete("b")
	assert.True(t, ok)
	assert.Equal(t, 20, v)
	_, ok = m.Delete("b")
	assert.False(t, ok)
	assert.Equal(t, int64(2), m.Len())
	assert.False(t, m.ContainsKey("b"))
}

func TestXSortedMap_OrderedTraversal(t *testing.T) {
	m, err := NewXSortedMap[int, string](WithXSeglLoadFactor(8))
	require.NoError(t, err)
	for k := 50; k > 0; k-- {
		m.Put(k, "v")
	}
	assert.Equal(t, int64(50), m.Len())

	keys := m.Keys()
	require.Len(t, keys, 50)
	for i, k := range keys {
		assert.Equal(t, i+1, k)
	}

	expect := 1
	m.Foreach(func(i int64, k int, v string) bool {
		require.Equal(t, expect, k)
		require.Equal(t, "v", v)
		expect++
		return true
	})
	require.Equal(t, 51, expect)
}

func TestXSortedMap_HeadTail(t *testing.T) {
	m, err := NewXSortedMap[int, string]()
	require.NoError(t, err)

	_, _, err = m.PeekHead()
	assert.ErrorIs(t, err, ErrXSeglIsEmpty)

	m.Put(2, "two")
	m.Put(1, "one")
	m.Put(3, "three")

	k, v, err := m.PeekHead()
	require.NoError(t, err)
	assert.Equal(t, 1, k)
	assert.Equal(t, "one", v)

	k, v, err = m.PopTail()
	require.NoError(t, err)
	assert.Equal(t, 3, k)
	assert.Equal(t, "three", v)
	assert.Equal(t, int64(2), m.Len())

	m.Clear()
	assert.Equal(t, int64(0), m.Len())
	_, _, err = m.PopHead()
	assert.ErrorIs(t, err, ErrXSeglIsEmpty)
}
