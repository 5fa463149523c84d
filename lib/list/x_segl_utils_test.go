package list

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gosulliv/sorted-collections/lib/infra"
)

func intCmp(i, j int) int64 {
	return infra.AscOrderedKeyComparator(i, j)
}

func TestBisectLeft(t *testing.T) {
	assert.Equal(t, 0, bisectLeft(nil, 1, intCmp))
	assert.Equal(t, 0, bisectLeft([]int{1}, 0, intCmp))
	assert.Equal(t, 0, bisectLeft([]int{1}, 1, intCmp))
	assert.Equal(t, 1, bisectLeft([]int{1}, 2, intCmp))

	assert.Equal(t, 2, bisectLeft([]int{1, 2, 4, 8}, 3, intCmp))
	assert.Equal(t, 1, bisectLeft([]int{1, 2, 4, 8}, 2, intCmp))
	assert.Equal(t, 3, bisectLeft([]int{2, 3, 5, 7, 11}, 7, intCmp))
	// Leftmost position of an equal run.
	assert.Equal(t, 1, bisectLeft([]int{1, 2, 2, 2, 3}, 2, intCmp))
}

func TestBisectRight(t *testing.T) {
	assert.Equal(t, 0, bisectRight(nil, 1, intCmp))
	assert.Equal(t, 0, bisectRight([]int{1}, 0, intCmp))
	assert.Equal(t, 1, bisectRight([]int{1}, 1, intCmp))
	assert.Equal(t, 1, bisectRight([]int{1}, 2, intCmp))

	assert.Equal(t, 2, bisectRight([]int{1, 2, 4, 8}, 3, intCmp))
	assert.Equal(t, 2, bisectRight([]int{1, 2, 4, 8}, 2, intCmp))
	assert.Equal(t, 4, bisectRight([]int{2, 3, 5, 7, 11}, 7, intCmp))
	// Position after an equal run.
	assert.Equal(t, 4, bisectRight([]int{1, 2, 2, 2, 3}, 2, intCmp))
}
