package list

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXSegl_OptionValidation(t *testing.T) {
	_, err := NewXSegl[int](WithXSeglLoadFactor(2))
	assert.ErrorIs(t, err, errXSeglInvalidLoadFactor)

	_, err = NewXSeglWithComparator[int](nil)
	assert.ErrorIs(t, err, errXSeglNilComparator)

	sl, err := NewXSegl[int](WithXSeglLoadFactor(minSeglLoadFactor))
	require.NoError(t, err)
	impl := unwrapXComSegl(t, sl)
	assert.Equal(t, minSeglLoadFactor, impl.load)
	assert.Equal(t, minSeglLoadFactor*2, impl.capacity)
}

func TestXSegl_DefaultLoadFactor(t *testing.T) {
	sl, err := NewXSegl[int]()
	require.NoError(t, err)
	impl := unwrapXComSegl(t, sl)
	assert.Equal(t, defaultSeglLoadFactor, impl.load)
}

func TestXSegl_ConcurrentSafeDelegator(t *testing.T) {
	sl, err := NewXSegl[int](WithXSeglLoadFactor(16), WithXSeglConcurrentSafe())
	require.NoError(t, err)
	_, ok := sl.(*seglDelegator[int])
	require.True(t, ok)

	const (
		writers = 4
		perW    = 500
	)
	var wg sync.WaitGroup
	wg.Add(writers * 2)
	for w := 0; w < writers; w++ {
		go func(base int) {
			defer wg.Done()
			for v := 0; v < perW; v++ {
				sl.Insert(base + v)
			}
		}(w * perW)
		go func() {
			defer wg.Done()
			for i := 0; i < perW; i++ {
				sl.Contains(i)
				sl.Len()
				sl.Rank(i)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, int64(writers*perW), sl.Len())
	expect := 0
	sl.Foreach(func(i int64, v int) bool {
		require.Equal(t, expect, v)
		expect++
		return true
	})
	requireSeglInvariants(t, sl)
}
