package handle

// Handle is an integer alias for a foreign ref, valid within one Table.
type Handle int32

// None is the invalid-handle sentinel. It is never a valid handle.
const None Handle = -1

const (
	minCapacity = 16

	// compactFreeThreshold is the free-list size a table must exceed,
	// in addition to free ids outnumbering half the capacity, before a
	// removal triggers compaction.
	compactFreeThreshold = 32
)

// Table maps dense integer handles to refs of type R. The zero value of R
// marks an empty slot, so R's zero must never be a live ref.
//
// Removed ids are recycled LIFO through a free list, which keeps handles
// small and dense. A ref→handle index is maintained alongside the slots so
// reverse lookup is O(1). Structural invariants:
//
//   - a handle h is valid iff 0 <= h < Cap() and the slot is occupied
//   - the free list holds only empty slot indices, each at most once
//   - HighWater() is the highest occupied index, or -1 when none
//
// Tables are not safe for concurrent use.
type Table[R comparable] struct {
	slots []R
	free  []Handle
	index map[R]Handle

	// next is the count of ids ever assigned: the watermark fresh
	// allocations draw from when the free list is empty.
	next int

	// mark is the highest occupied index, -1 when the table is empty.
	mark int
}

// New returns an empty table. No slot storage is allocated until the
// first Add.
func New[R comparable]() *Table[R] {
	return &Table[R]{
		index: make(map[R]Handle),
		mark:  -1,
	}
}

// Add assigns a handle to ref and returns it. The zero ref is rejected
// with None, as is internal storage exhaustion. Recycled ids are reused
// LIFO before any fresh id is assigned.
func (t *Table[R]) Add(ref R) Handle {
	var zero R
	if ref == zero {
		return None
	}

	if n := len(t.free); n > 0 {
		h := t.free[n-1]
		t.free = t.free[:n-1]
		t.slots[h] = ref
		t.index[ref] = h
		if int(h) > t.mark {
			t.mark = int(h)
		}
		return h
	}

	if t.next >= len(t.slots) {
		if !t.grow() {
			return None
		}
	}

	h := Handle(t.next)
	t.next++
	t.slots[h] = ref
	t.index[ref] = h
	if int(h) > t.mark {
		t.mark = int(h)
	}
	return h
}

func (t *Table[R]) grow() bool {
	newCap := minCapacity
	if len(t.slots) > 0 {
		newCap = len(t.slots) * 2
	}
	if newCap <= len(t.slots) {
		return false
	}
	grown := make([]R, newCap)
	copy(grown, t.slots)
	t.slots = grown
	return true
}

// Get returns the ref for h. Any out-of-range id and any empty slot
// report (zero, false); Get never panics on a malformed handle.
func (t *Table[R]) Get(h Handle) (R, bool) {
	var zero R
	if h < 0 || int(h) >= t.next || int(h) >= len(t.slots) {
		return zero, false
	}
	ref := t.slots[h]
	if ref == zero {
		return zero, false
	}
	return ref, true
}

// Find returns the handle aliasing ref, if any.
func (t *Table[R]) Find(ref R) (Handle, bool) {
	var zero R
	if ref == zero {
		return None, false
	}
	h, ok := t.index[ref]
	if !ok {
		return None, false
	}
	return h, true
}

// Remove clears the slot for h and recycles the id. Invalid handles are
// ignored. When the removed id was the high-water mark, the mark is
// rescanned downward to the next occupied slot.
func (t *Table[R]) Remove(h Handle) {
	var zero R
	if h < 0 || int(h) >= t.next || int(h) >= len(t.slots) {
		return
	}
	ref := t.slots[h]
	if ref == zero {
		return
	}

	t.slots[h] = zero
	delete(t.index, ref)
	t.free = append(t.free, h)

	if int(h) == t.mark {
		m := -1
		for i := int(h) - 1; i >= 0; i-- {
			if t.slots[i] != zero {
				m = i
				break
			}
		}
		t.mark = m
	}
}

// RemoveRef removes the handle aliasing ref, if one exists.
func (t *Table[R]) RemoveRef(ref R) bool {
	h, ok := t.Find(ref)
	if !ok {
		return false
	}
	t.Remove(h)
	return true
}

// CompactIfSparse runs Compact when the free list has grown past
// compactFreeThreshold ids and past half the capacity. Intended to be
// called after Remove; the thresholds keep compaction amortized instead
// of thrashing reallocation under churn.
func (t *Table[R]) CompactIfSparse() {
	if len(t.free) > compactFreeThreshold && len(t.free) > len(t.slots)/2 {
		t.Compact()
	}
}

// Compact shrinks slot storage to the occupied prefix. An empty table
// releases all backing storage and returns to capacity 0. Otherwise the
// target capacity is HighWater()+1, floored at the minimum capacity, and
// the shrink only happens when the target is below a quarter of the
// current capacity. The free list is rebuilt from the empty slots within
// the shrunken range.
//
// Compaction never changes the result of Get for a live handle.
func (t *Table[R]) Compact() {
	if t.mark < 0 {
		t.slots = nil
		t.free = nil
		t.next = 0
		t.index = make(map[R]Handle)
		return
	}

	target := t.mark + 1
	if target < minCapacity {
		target = minCapacity
	}
	if target >= len(t.slots)/4 {
		return
	}

	shrunk := make([]R, target)
	copy(shrunk, t.slots[:target])
	t.slots = shrunk

	// next tracks the new capacity, not current occupancy: slots between
	// the mark and the target stay out of the free list until a later
	// compaction, and the following fresh allocation grows the table.
	// TestCompactSetsNextToCapacity pins this down.
	t.next = target

	var zero R
	t.free = t.free[:0]
	for i := 0; i <= t.mark; i++ {
		if t.slots[i] == zero {
			t.free = append(t.free, Handle(i))
		}
	}
}

// Each calls fn for every live (handle, ref) pair in handle order until
// fn returns false.
func (t *Table[R]) Each(fn func(Handle, R) bool) {
	var zero R
	for i := 0; i < t.next && i < len(t.slots); i++ {
		if t.slots[i] == zero {
			continue
		}
		if !fn(Handle(i), t.slots[i]) {
			return
		}
	}
}

// Len returns the number of live handles.
func (t *Table[R]) Len() int { return len(t.index) }

// Cap returns the allocated slot count.
func (t *Table[R]) Cap() int { return len(t.slots) }

// FreeLen returns the number of recycled ids awaiting reuse.
func (t *Table[R]) FreeLen() int { return len(t.free) }

// HighWater returns the highest occupied index, or -1 when the table is
// empty.
func (t *Table[R]) HighWater() int { return t.mark }
