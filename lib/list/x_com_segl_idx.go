package list

import (
	"sort"
)

// The positional index is a flat prefix-count array: index[i] is the
// number of elements held by segments 0..i-1. It is rebuilt eagerly
// after every mutation, which costs O(S) = O(sqrt(N)) and keeps every
// read path free of writes (the RWMutex delegator serves reads under
// a shared lock, so a lazily repaired index would race).

// reindex rebuilds the prefix counts. Must run after any change to
// segment contents or layout.
func (sl *xComSegl[E]) reindex() {
	if cap(sl.index) >= len(sl.segs) {
		sl.index = sl.index[:len(sl.segs)]
	} else {
		sl.index = make([]int64, len(sl.segs), cap(sl.segs))
	}
	var n int64
	for i, seg := range sl.segs {
		sl.index[i] = n
		n += int64(len(seg))
	}
}

// locate translates a global position into a (segment, offset) pair
// by binary searching the prefix counts. O(log S).
// Precondition: 0 <= pos < total.
func (sl *xComSegl[E]) locate(pos int64) (at int, off int) {
	at = sort.Search(len(sl.index), func(i int) bool {
		return sl.index[i] > pos
	}) - 1
	return at, int(pos - sl.index[at])
}
