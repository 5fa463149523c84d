package infra

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAscOrderedKeyComparator(t *testing.T) {
	assert.Equal(t, int64(0), AscOrderedKeyComparator[int](1, 1))
	assert.Equal(t, int64(-1), AscOrderedKeyComparator[int](1, 2))
	assert.Equal(t, int64(1), AscOrderedKeyComparator[int](2, 1))

	assert.Equal(t, int64(-1), AscOrderedKeyComparator[string]("abc", "abd"))
	assert.Equal(t, int64(1), AscOrderedKeyComparator[float64](2.5, 2.25))

	var b1, b2 byte = 'a', 'b'
	assert.Equal(t, int64(-1), AscOrderedKeyComparator[byte](b1, b2))
}

func TestDescOrderedKeyComparator(t *testing.T) {
	assert.Equal(t, int64(0), DescOrderedKeyComparator[int](7, 7))
	assert.Equal(t, int64(1), DescOrderedKeyComparator[int](1, 2))
	assert.Equal(t, int64(-1), DescOrderedKeyComparator[int](2, 1))
}
