package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXComSeglIndex_LocateAcrossSegments(t *testing.T) {
	sl, err := NewXSegl[int](WithXSeglLoadFactor(4))
	require.NoError(t, err)
	const n = 100
	for v := 0; v < n; v++ {
		sl.Insert(v)
	}
	impl := unwrapXComSegl(t, sl)
	require.Greater(t, len(impl.segs), 1)

	for pos := int64(0); pos < int64(n); pos++ {
		at, off := impl.locate(pos)
		assert.Equal(t, int(pos), impl.segs[at][off])
	}
}

func TestXComSeglIndex_PrefixCountsTrackMutations(t *testing.T) {
	sl, err := NewXSegl[int](WithXSeglLoadFactor(4))
	require.NoError(t, err)
	impl := unwrapXComSegl(t, sl)

	assert.Equal(t, []int64{0}, impl.index)

	for v := 0; v < 40; v++ {
		sl.Insert(v)
		requireSeglInvariants(t, sl)
	}
	for sl.Len() > 0 {
		_, err = sl.RemoveAt(sl.Len() / 2)
		require.NoError(t, err)
		requireSeglInvariants(t, sl)
	}
	assert.Equal(t, []int64{0}, impl.index)
}
