package narrowband

import (
	"container/heap"

	"github.com/eikonal-go/fastmarch/gridspace"
)

// Entry is a single (distance, index) candidate. Multiple Entry values for
// the same Index are permitted; only the smallest one ever takes effect,
// since the marcher discards later pops for an index that is already
// frozen.
type Entry struct {
	Distance float64
	Index    gridspace.Index
}

// entryHeap is the container/heap.Interface implementation backing Band:
// a plain slice ordered as a binary min-heap on Distance. Ties are
// broken by heap-internal order, which is deterministic within a single
// run but otherwise unspecified.
type entryHeap []Entry

func (h entryHeap) Len() int            { return len(h) }
func (h entryHeap) Less(i, j int) bool  { return h[i].Distance < h[j].Distance }
func (h entryHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *entryHeap) Push(x interface{}) { *h = append(*h, x.(Entry)) }
func (h *entryHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Band is a min-priority queue of Entry values ordered by ascending
// Distance. The zero value is not ready to use; construct with New.
type Band struct {
	h entryHeap
}

// New returns an empty Band.
func New() *Band {
	b := &Band{h: entryHeap{}}
	heap.Init(&b.h)
	return b
}

// Push adds an entry to the band. O(log n).
func (b *Band) Push(e Entry) {
	heap.Push(&b.h, e)
}

// Pop removes and returns the entry with the smallest Distance. O(log n).
// Panics if the band is empty; callers must check IsEmpty first.
func (b *Band) Pop() Entry {
	return heap.Pop(&b.h).(Entry)
}

// IsEmpty reports whether the band has no entries.
func (b *Band) IsEmpty() bool {
	return b.h.Len() == 0
}

// Len returns the number of entries currently in the band, including any
// stale duplicates not yet popped.
func (b *Band) Len() int {
	return b.h.Len()
}
