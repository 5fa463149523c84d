package list

import (
	"github.com/gosulliv/sorted-collections/lib/infra"
)

var _ SortedMap[uint8, uint8] = (*xSortedMap[uint8, uint8])(nil)

type seglEntry[K any, V any] struct {
	key K
	val V
}

// xSortedMap orders entries by the key projection only; the entry
// comparator never looks at values. Key uniqueness is enforced by
// Put, so the underlying duplicate-permissive list holds at most one
// entry per key.
type xSortedMap[K any, V any] struct {
	list SegmentedList[seglEntry[K, V]]
}

// NewXSortedMap builds a sorted map over a naturally ordered key type.
func NewXSortedMap[K infra.OrderedKey, V any](opts ...XSeglOption) (SortedMap[K, V], error) {
	return NewXSortedMapWithComparator[K, V](infra.AscOrderedKeyComparator[K], opts...)
}

func NewXSortedMapWithComparator[K any, V any](kcmp SeglComparator[K], opts ...XSeglOption) (SortedMap[K, V], error) {
	if kcmp == nil {
		return nil, errXSeglNilComparator
	}
	ecmp := func(i, j seglEntry[K, V]) int64 {
		return kcmp(i.key, j.key)
	}
	l, err := NewXSeglWithComparator[seglEntry[K, V]](ecmp, opts...)
	if err != nil {
		return nil, err
	}
	return &xSortedMap[K, V]{list: l}, nil
}

func (m *xSortedMap[K, V]) Len() int64 {
	return m.list.Len()
}

func (m *xSortedMap[K, V]) Put(key K, val V) bool {
	entry := seglEntry[K, V]{key: key, val: val}
	pos, ok := m.list.Search(entry)
	if ok {
		// Replace: remove the old entry, then re-insert at the same
		// rank (the comparator sees equal keys).
		_, _ = m.list.RemoveAt(pos)
		m.list.Insert(entry)
		return false
	}
	m.list.Insert(entry)
	return true
}

func (m *xSortedMap[K, V]) Get(key K) (V, bool) {
	pos, ok := m.list.Search(seglEntry[K, V]{key: key})
	if !ok {
		var zero V
		return zero, false
	}
	entry, err := m.list.Get(pos)
	if err != nil {
		var zero V
		return zero, false
	}
	return entry.val, true
}

func (m *xSortedMap[K, V]) ContainsKey(key K) bool {
	_, ok := m.list.Search(seglEntry[K, V]{key: key})
	return ok
}

func (m *xSortedMap[K, V]) Delete(key K) (V, bool) {
	pos, ok := m.list.Search(seglEntry[K, V]{key: key})
	if !ok {
		var zero V
		return zero, false
	}
	entry, err := m.list.RemoveAt(pos)
	if err != nil {
		var zero V
		return zero, false
	}
	return entry.val, true
}

func (m *xSortedMap[K, V]) Keys() []K {
	entries := m.list.Values()
	keys := make([]K, 0, len(entries))
	for _, entry := range entries {
		keys = append(keys, entry.key)
	}
	return keys
}

func (m *xSortedMap[K, V]) Foreach(action func(i int64, key K, val V) bool) {
	m.list.Foreach(func(i int64, entry seglEntry[K, V]) bool {
		return action(i, entry.key, entry.val)
	})
}

func (m *xSortedMap[K, V]) PeekHead() (K, V, error) {
	entry, err := m.list.PeekHead()
	return entry.key, entry.val, err
}

func (m *xSortedMap[K, V]) PeekTail() (K, V, error) {
	entry, err := m.list.PeekTail()
	return entry.key, entry.val, err
}

func (m *xSortedMap[K, V]) PopHead() (K, V, error) {
	entry, err := m.list.PopHead()
	return entry.key, entry.val, err
}

func (m *xSortedMap[K, V]) PopTail() (K, V, error) {
	entry, err := m.list.PopTail()
	return entry.key, entry.val, err
}

func (m *xSortedMap[K, V]) Clear() {
	m.list.Clear()
}
