package list

// References:
// https://grantjenks.com/docs/sortedcontainers/implementation.html
// https://github.com/grantjenks/python-sortedcontainers
//
// The segmented sorted list trades the O(logN) worst case of a
// balanced tree for a flat two-level layout with purely hierarchical
// ownership: the list owns its segments, each segment owns its
// elements, and no element or segment is ever reachable through more
// than one path. Navigation is always a computed (segment, offset)
// lookup, never a stored cross-reference, so a structural reshuffle
// (split, merge, redistribute) cannot invalidate an outstanding alias.

import (
	"errors"
	"sync"

	"github.com/gosulliv/sorted-collections/lib/infra"
)

// defaultSeglLoadFactor is the minimum segment length once a list
// holds more than one segment. A segment splits when it outgrows
// twice this value. Larger factors shift more per mutation but split
// and merge less often.
const defaultSeglLoadFactor = 1000

const minSeglLoadFactor = 4

var (
	ErrXSeglIsEmpty           = errors.New("[x-segl] there is no element")
	ErrXSeglIndexOutOfRange   = errors.New("[x-segl] position out of range")
	errXSeglInvalidLoadFactor = errors.New("[x-segl] load factor is too small")
	errXSeglNilComparator     = errors.New("[x-segl] comparator must not be nil")
)

type xSeglOptions struct {
	loadFactor     int
	concurrentSafe bool
}

type XSeglOption func(*xSeglOptions) error

// WithXSeglLoadFactor overrides the minimum segment length (default
// 1000). Factors below 4 degenerate into per-element segments and are
// rejected.
func WithXSeglLoadFactor(factor int) XSeglOption {
	return func(opts *xSeglOptions) error {
		if factor < minSeglLoadFactor {
			return errXSeglInvalidLoadFactor
		}
		opts.loadFactor = factor
		return nil
	}
}

// WithXSeglConcurrentSafe wraps the list in a RWMutex delegator.
// Readers (Search, Get, Rank, Foreach, ...) share the lock, mutators
// take it exclusively. Without this option the list must be confined
// to a single goroutine.
func WithXSeglConcurrentSafe() XSeglOption {
	return func(opts *xSeglOptions) error {
		opts.concurrentSafe = true
		return nil
	}
}

func loadXSeglOptions(opts ...XSeglOption) (*xSeglOptions, error) {
	cfg := &xSeglOptions{loadFactor: defaultSeglLoadFactor}
	for _, o := range opts {
		if err := o(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// NewXSegl builds a segmented sorted list over a naturally ordered
// element type.
func NewXSegl[E infra.OrderedKey](opts ...XSeglOption) (SegmentedList[E], error) {
	return NewXSeglWithComparator[E](infra.AscOrderedKeyComparator[E], opts...)
}

// NewXSeglWithComparator builds a segmented sorted list whose order
// is defined entirely by cmp.
func NewXSeglWithComparator[E any](cmp SeglComparator[E], opts ...XSeglOption) (SegmentedList[E], error) {
	if cmp == nil {
		return nil, errXSeglNilComparator
	}
	cfg, err := loadXSeglOptions(opts...)
	if err != nil {
		return nil, err
	}
	impl := newXComSegl[E](cmp, cfg.loadFactor)
	if cfg.concurrentSafe {
		return &seglDelegator[E]{rwmu: &sync.RWMutex{}, impl: impl}, nil
	}
	return impl, nil
}

var _ SegmentedList[uint8] = (*seglDelegator[uint8])(nil)

// seglDelegator serializes access to a single-threaded impl.
type seglDelegator[E any] struct {
	rwmu *sync.RWMutex
	impl SegmentedList[E]
}

func (sl *seglDelegator[E]) Len() int64 {
	sl.rwmu.RLock()
	defer sl.rwmu.RUnlock()
	return sl.impl.Len()
}

func (sl *seglDelegator[E]) SegmentCount() int64 {
	sl.rwmu.RLock()
	defer sl.rwmu.RUnlock()
	return sl.impl.SegmentCount()
}

func (sl *seglDelegator[E]) Search(v E) (int64, bool) {
	sl.rwmu.RLock()
	defer sl.rwmu.RUnlock()
	return sl.impl.Search(v)
}

func (sl *seglDelegator[E]) Contains(v E) bool {
	sl.rwmu.RLock()
	defer sl.rwmu.RUnlock()
	return sl.impl.Contains(v)
}

func (sl *seglDelegator[E]) Insert(v E) {
	sl.rwmu.Lock()
	defer sl.rwmu.Unlock()
	sl.impl.Insert(v)
}

func (sl *seglDelegator[E]) Remove(v E) bool {
	sl.rwmu.Lock()
	defer sl.rwmu.Unlock()
	return sl.impl.Remove(v)
}

func (sl *seglDelegator[E]) RemoveAt(pos int64) (E, error) {
	sl.rwmu.Lock()
	defer sl.rwmu.Unlock()
	return sl.impl.RemoveAt(pos)
}

func (sl *seglDelegator[E]) Get(pos int64) (E, error) {
	sl.rwmu.RLock()
	defer sl.rwmu.RUnlock()
	return sl.impl.Get(pos)
}

func (sl *seglDelegator[E]) Rank(v E) int64 {
	sl.rwmu.RLock()
	defer sl.rwmu.RUnlock()
	return sl.impl.Rank(v)
}

func (sl *seglDelegator[E]) PeekHead() (E, error) {
	sl.rwmu.RLock()
	defer sl.rwmu.RUnlock()
	return sl.impl.PeekHead()
}

func (sl *seglDelegator[E]) PeekTail() (E, error) {
	sl.rwmu.RLock()
	defer sl.rwmu.RUnlock()
	return sl.impl.PeekTail()
}

func (sl *seglDelegator[E]) PopHead() (E, error) {
	sl.rwmu.Lock()
	defer sl.rwmu.Unlock()
	return sl.impl.PopHead()
}

func (sl *seglDelegator[E]) PopTail() (E, error) {
	sl.rwmu.Lock()
	defer sl.rwmu.Unlock()
	return sl.impl.PopTail()
}

func (sl *seglDelegator[E]) Foreach(action func(i int64, v E) bool) {
	sl.rwmu.RLock()
	defer sl.rwmu.RUnlock()
	sl.impl.Foreach(action)
}

func (sl *seglDelegator[E]) Values() []E {
	sl.rwmu.RLock()
	defer sl.rwmu.RUnlock()
	return sl.impl.Values()
}

func (sl *seglDelegator[E]) Clear() {
	sl.rwmu.Lock()
	defer sl.rwmu.Unlock()
	sl.impl.Clear()
}
