package list

import (
	"slices"
	"sort"
)

var _ SegmentedList[uint8] = (*xComSegl[uint8])(nil)

// xComSegl is the single-threaded segmented sorted list.
// Invariants, restored before every method returns:
//  1. every segment is sorted ascending per cmp;
//  2. the last element of segment i is <= the first element of
//     segment i+1, so the concatenation is globally sorted;
//  3. load <= len(segment) <= capacity for every segment, except the
//     sole remaining one which may shrink below load (down to empty);
//  4. index[i] holds the element count of segments 0..i-1 and total
//     equals the sum of all segment lengths.
type xComSegl[E any] struct {
	cmp   SeglComparator[E]
	segs  [][]E
	index []int64 // prefix counts, rebuilt after each mutation
	total int64
	// load is the minimum segment length, capacity the split
	// threshold (2 * load).
	load     int
	capacity int
}

func newXComSegl[E any](cmp SeglComparator[E], load int) *xComSegl[E] {
	return &xComSegl[E]{
		cmp:      cmp,
		segs:     [][]E{make([]E, 0, load)},
		index:    []int64{0},
		load:     load,
		capacity: load << 1,
	}
}

func (sl *xComSegl[E]) Len() int64 {
	return sl.total
}

func (sl *xComSegl[E]) SegmentCount() int64 {
	return int64(len(sl.segs))
}

// segOf binary-searches the segment boundary keys (each segment's
// last element) for the segment v belongs to. Left bias returns the
// first segment whose max is >= v, right bias the first whose max is
// strictly greater, which is what a stable append-after-equals insert
// needs. Returns len(segs) when v is greater than every element.
// Only meaningful while total > 0.
func (sl *xComSegl[E]) segOf(v E, rightBias bool) int {
	return sort.Search(len(sl.segs), func(i int) bool {
		seg := sl.segs[i]
		res := sl.cmp(seg[len(seg)-1], v)
		if rightBias {
			return res > 0
		}
		return res >= 0
	})
}

func (sl *xComSegl[E]) Search(v E) (int64, bool) {
	if sl.total == 0 {
		return 0, false
	}
	at := sl.segOf(v, false)
	if at == len(sl.segs) {
		return sl.total, false
	}
	off := bisectLeft(sl.segs[at], v, sl.cmp)
	return sl.index[at] + int64(off), sl.cmp(sl.segs[at][off], v) == 0
}

func (sl *xComSegl[E]) Contains(v E) bool {
	_, ok := sl.Search(v)
	return ok
}

func (sl *xComSegl[E]) Rank(v E) int64 {
	// Search is left-biased, so the position doubles as the count of
	// elements strictly less than v whether or not v is present.
	pos, _ := sl.Search(v)
	return pos
}

func (sl *xComSegl[E]) Insert(v E) {
	if sl.total == 0 {
		if len(sl.segs) == 0 {
			sl.segs = append(sl.segs, make([]E, 0, sl.load))
		}
		sl.segs[0] = append(sl.segs[0], v)
		sl.total = 1
		sl.reindex()
		return
	}

	at := sl.segOf(v, true)
	if at == len(sl.segs) {
		// Greater than or equal to the global max: append to the
		// tail segment.
		at--
		sl.segs[at] = append(sl.segs[at], v)
	} else {
		off := bisectRight(sl.segs[at], v, sl.cmp)
		sl.segs[at] = slices.Insert(sl.segs[at], off, v)
	}
	sl.total++
	sl.expand(at)
	sl.reindex()
}

// expand splits the segment at position at once it outgrows the
// capacity bound, into ceil(n/2) and floor(n/2) halves. Both halves
// are at least load long because n > 2*load.
func (sl *xComSegl[E]) expand(at int) {
	seg := sl.segs[at]
	if len(seg) <= sl.capacity {
		return
	}
	half := (len(seg) + 1) >> 1
	right := make([]E, len(seg)-half, sl.capacity)
	copy(right, seg[half:])
	var zero E
	for i := half; i < len(seg); i++ {
		seg[i] = zero
	}
	sl.segs[at] = seg[:half]
	sl.segs = slices.Insert(sl.segs, at+1, right)
}

// shrink restores the minimum bound after a removal from the segment
// at position at. A deficient segment merges with a neighbor when the
// combined length fits the capacity, otherwise the two are
// redistributed into balanced halves (each >= load, since the sum
// exceeds 2*load). The sole remaining segment has no lower bound.
func (sl *xComSegl[E]) shrink(at int) {
	if len(sl.segs) <= 1 || len(sl.segs[at]) >= sl.load {
		return
	}
	adj := at + 1
	if at == len(sl.segs)-1 {
		adj = at - 1
	}
	lo, hi := at, adj
	if adj < at {
		lo, hi = adj, at
	}
	merged := len(sl.segs[lo]) + len(sl.segs[hi])
	if merged <= sl.capacity {
		sl.segs[lo] = append(sl.segs[lo], sl.segs[hi]...)
		sl.segs[hi] = nil
		sl.segs = slices.Delete(sl.segs, hi, hi+1)
		return
	}
	joined := make([]E, 0, merged)
	joined = append(joined, sl.segs[lo]...)
	joined = append(joined, sl.segs[hi]...)
	half := (merged + 1) >> 1
	right := make([]E, merged-half)
	copy(right, joined[half:])
	sl.segs[lo] = joined[:half:half]
	sl.segs[hi] = right
}

// removeFrom drops the element at (at, off) and rebalances.
func (sl *xComSegl[E]) removeFrom(at, off int) E {
	seg := sl.segs[at]
	v := seg[off]
	sl.segs[at] = slices.Delete(seg, off, off+1)
	sl.total--
	sl.shrink(at)
	sl.reindex()
	return v
}

func (sl *xComSegl[E]) Remove(v E) bool {
	if sl.total == 0 {
		return false
	}
	at := sl.segOf(v, false)
	if at == len(sl.segs) {
		return false
	}
	off := bisectLeft(sl.segs[at], v, sl.cmp)
	if sl.cmp(sl.segs[at][off], v) != 0 {
		return false
	}
	sl.removeFrom(at, off)
	return true
}

func (sl *xComSegl[E]) RemoveAt(pos int64) (E, error) {
	if pos < 0 || pos >= sl.total {
		var zero E
		return zero, ErrXSeglIndexOutOfRange
	}
	at, off := sl.locate(pos)
	return sl.removeFrom(at, off), nil
}

func (sl *xComSegl[E]) Get(pos int64) (E, error) {
	if pos < 0 || pos >= sl.total {
		var zero E
		return zero, ErrXSeglIndexOutOfRange
	}
	at, off := sl.locate(pos)
	return sl.segs[at][off], nil
}

func (sl *xComSegl[E]) PeekHead() (E, error) {
	if sl.total == 0 {
		var zero E
		return zero, ErrXSeglIsEmpty
	}
	return sl.segs[0][0], nil
}

func (sl *xComSegl[E]) PeekTail() (E, error) {
	if sl.total == 0 {
		var zero E
		return zero, ErrXSeglIsEmpty
	}
	tail := sl.segs[len(sl.segs)-1]
	return tail[len(tail)-1], nil
}

func (sl *xComSegl[E]) PopHead() (E, error) {
	if sl.total == 0 {
		var zero E
		return zero, ErrXSeglIsEmpty
	}
	return sl.removeFrom(0, 0), nil
}

func (sl *xComSegl[E]) PopTail() (E, error) {
	if sl.total == 0 {
		var zero E
		return zero, ErrXSeglIsEmpty
	}
	at := len(sl.segs) - 1
	return sl.removeFrom(at, len(sl.segs[at])-1), nil
}

func (sl *xComSegl[E]) Foreach(action func(i int64, v E) bool) {
	var i int64
	for _, seg := range sl.segs {
		for _, v := range seg {
			if !action(i, v) {
				return
			}
			i++
		}
	}
}

func (sl *xComSegl[E]) Values() []E {
	values := make([]E, 0, sl.total)
	for _, seg := range sl.segs {
		values = append(values, seg...)
	}
	return values
}

func (sl *xComSegl[E]) Clear() {
	sl.segs = [][]E{make([]E, 0, sl.load)}
	sl.total = 0
	sl.reindex()
}
