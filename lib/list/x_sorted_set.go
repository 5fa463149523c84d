package list

import (
	"github.com/samber/lo"

	"github.com/gosulliv/sorted-collections/lib/infra"
)

var _ SortedSet[uint8] = (*xSortedSet[uint8])(nil)

// xSortedSet enforces uniqueness over a segmented list by probing
// with Search before Insert. The set algebra runs as linear merges
// over Values snapshots; both inputs are already sorted and unique.
type xSortedSet[E any] struct {
	list SegmentedList[E]
	cmp  SeglComparator[E]
	opts []XSeglOption
}

// NewXSortedSet builds a sorted set over a naturally ordered type.
func NewXSortedSet[E infra.OrderedKey](opts ...XSeglOption) (SortedSet[E], error) {
	return NewXSortedSetWithComparator[E](infra.AscOrderedKeyComparator[E], opts...)
}

func NewXSortedSetWithComparator[E any](cmp SeglComparator[E], opts ...XSeglOption) (SortedSet[E], error) {
	l, err := NewXSeglWithComparator[E](cmp, opts...)
	if err != nil {
		return nil, err
	}
	return &xSortedSet[E]{list: l, cmp: cmp, opts: opts}, nil
}

func (s *xSortedSet[E]) Len() int64 {
	return s.list.Len()
}

func (s *xSortedSet[E]) Add(v E) bool {
	if _, ok := s.list.Search(v); ok {
		return false
	}
	s.list.Insert(v)
	return true
}

func (s *xSortedSet[E]) Contains(v E) bool {
	return s.list.Contains(v)
}

func (s *xSortedSet[E]) Remove(v E) bool {
	return s.list.Remove(v)
}

func (s *xSortedSet[E]) Rank(v E) int64 {
	return s.list.Rank(v)
}

func (s *xSortedSet[E]) Get(pos int64) (E, error) {
	return s.list.Get(pos)
}

func (s *xSortedSet[E]) Foreach(action func(i int64, v E) bool) {
	s.list.Foreach(action)
}

func (s *xSortedSet[E]) Values() []E {
	return s.list.Values()
}

func (s *xSortedSet[E]) Clear() {
	s.list.Clear()
}

// rebuild pours an already sorted, already unique value sequence into
// a fresh set configured like the receiver. The options were
// validated when the receiver was built, so the constructor cannot
// fail here.
func (s *xSortedSet[E]) rebuild(values []E) SortedSet[E] {
	out := lo.Must(NewXSortedSetWithComparator[E](s.cmp, s.opts...))
	for _, v := range values {
		out.(*xSortedSet[E]).list.Insert(v)
	}
	return out
}

func (s *xSortedSet[E]) Union(other SortedSet[E]) SortedSet[E] {
	a, b := s.Values(), other.Values()
	merged := make([]E, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch res := s.cmp(a[i], b[j]); {
		case res < 0:
			merged = append(merged, a[i])
			i++
		case res > 0:
			merged = append(merged, b[j])
			j++
		default:
			merged = append(merged, a[i])
			i++
			j++
		}
	}
	merged = append(merged, a[i:]...)
	merged = append(merged, b[j:]...)
	return s.rebuild(merged)
}

func (s *xSortedSet[E]) Intersect(other SortedSet[E]) SortedSet[E] {
	a, b := s.Values(), other.Values()
	merged := make([]E, 0, min(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch res := s.cmp(a[i], b[j]); {
		case res < 0:
			i++
		case res > 0:
			j++
		default:
			merged = append(merged, a[i])
			i++
			j++
		}
	}
	return s.rebuild(merged)
}

func (s *xSortedSet[E]) Difference(other SortedSet[E]) SortedSet[E] {
	a, b := s.Values(), other.Values()
	merged := make([]E, 0, len(a))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch res := s.cmp(a[i], b[j]); {
		case res < 0:
			merged = append(merged, a[i])
			i++
		case res > 0:
			j++
		default:
			i++
			j++
		}
	}
	merged = append(merged, a[i:]...)
	return s.rebuild(merged)
}
