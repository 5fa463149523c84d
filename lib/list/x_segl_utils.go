package list

// Comparator-based bisection over a sorted slice, the intra-segment
// counterpart of xComSegl.segOf.

// bisectLeft returns the first position whose element is >= v, i.e.
// the leftmost insertion point. len(s) when every element is < v.
func bisectLeft[E any](s []E, v E, cmp SeglComparator[E]) int {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if cmp(s[mid], v) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// bisectRight returns the first position whose element is > v, i.e.
// the rightmost insertion point (after any run of equals).
func bisectRight[E any](s []E, v E, cmp SeglComparator[E]) int {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if cmp(s[mid], v) <= 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}
