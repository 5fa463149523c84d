package list

// SeglComparator is a three-way total-order comparator.
// Assume i is the new element.
//  1. i == j (return 0)
//  2. i > j (return 1), belongs to the right part.
//  3. i < j (return -1), belongs to the left part.
type SeglComparator[E any] func(i, j E) int64

// SegmentedList is a sorted sequence container backed by a dynamic
// two-level array of owned segments. Insertion and deletion shift
// elements inside one segment only, which bounds their cost by the
// segment capacity instead of the total length (amortized O(sqrt(N))
// when the load factor tracks sqrt(N)).
//
// Duplicate policy: duplicates are permitted. Insert is stable and
// right-biased (a new element lands after the existing equal ones)
// while Search and Rank are left-biased (they resolve to the leftmost
// equal position). The set adapter builds uniqueness on top of this.
//
// A SegmentedList is not safe for concurrent use unless it was built
// with WithXSeglConcurrentSafe, which serializes every operation
// behind a RWMutex. Foreach and Values never expose references into
// the internal storage.
type SegmentedList[E any] interface {
	// Len returns the total element count. O(1).
	Len() int64
	// SegmentCount reports how many segments currently back the list.
	SegmentCount() int64
	// Search locates v. Found: (leftmost position of v, true).
	// Not found: (position an insertion of v would take, false).
	Search(v E) (int64, bool)
	Contains(v E) bool
	// Insert adds v keeping sort order; equal elements keep insertion
	// order (new equals go after existing equals).
	Insert(v E)
	// Remove drops the leftmost occurrence of v and reports whether
	// anything was removed.
	Remove(v E) bool
	// RemoveAt removes and returns the element at global position pos.
	RemoveAt(pos int64) (E, error)
	// Get returns the element at global position pos.
	Get(pos int64) (E, error)
	// Rank counts the elements strictly less than v.
	Rank(v E) int64
	PeekHead() (E, error)
	PeekTail() (E, error)
	PopHead() (E, error)
	PopTail() (E, error)
	// Foreach traverses ascending until action returns false.
	// The structure must not be mutated during the traversal.
	Foreach(action func(i int64, v E) bool)
	// Values copies the whole sequence, ascending.
	Values() []E
	// Clear resets to the empty state (one empty segment).
	Clear()
}

// SortedSet enforces element uniqueness over a SegmentedList and adds
// the usual set algebra. All operations follow the comparator's
// equality, not ==.
type SortedSet[E any] interface {
	Len() int64
	// Add inserts v and reports whether it was absent before.
	Add(v E) bool
	Contains(v E) bool
	Remove(v E) bool
	Rank(v E) int64
	Get(pos int64) (E, error)
	Foreach(action func(i int64, v E) bool)
	Values() []E
	Union(other SortedSet[E]) SortedSet[E]
	Intersect(other SortedSet[E]) SortedSet[E]
	Difference(other SortedSet[E]) SortedSet[E]
	Clear()
}

// SortedMap keeps key/value entries ordered by key. Keys are unique;
// Put replaces the value of an existing key.
type SortedMap[K any, V any] interface {
	Len() int64
	// Put stores val under key and reports whether key was absent.
	Put(key K, val V) bool
	Get(key K) (V, bool)
	ContainsKey(key K) bool
	// Delete removes key and returns the removed value.
	Delete(key K) (V, bool)
	Keys() []K
	Foreach(action func(i int64, key K, val V) bool)
	PeekHead() (K, V, error)
	PeekTail() (K, V, error)
	PopHead() (K, V, error)
	PopTail() (K, V, error)
	Clear()
}
