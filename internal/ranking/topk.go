package ranking

import (
	"container/heap"
	"errors"
	"sort"

	"github.com/darleneayinkamiye/mobility-backend-go/internal/models"
)

// ErrInvalidCapacity is returned when a ranking is requested with k <= 0
var ErrInvalidCapacity = errors.New("ranking: capacity must be at least 1")

// BoundedMinHeap keeps the K largest-count zone entries seen so far in a
// min-oriented heap of fixed capacity. Memory stays O(K) no matter how many
// distinct zones flow through, and each offer costs O(log K).
//
// An incoming count equal to the current minimum is dropped; which of several
// equal-minimum entries survives the stream is deliberately left unspecified,
// only the final ranked output has a defined order.
type BoundedMinHeap struct {
	capacity  int
	entries   zoneCountHeap
	finalized bool
}

// NewBoundedMinHeap creates a bounded heap with the given capacity
func NewBoundedMinHeap(capacity int) (*BoundedMinHeap, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &BoundedMinHeap{
		capacity: capacity,
		entries:  make(zoneCountHeap, 0, capacity),
	}, nil
}

// Offer considers one (zone, count) entry. Below capacity it is always kept;
// at capacity it replaces the current minimum only when strictly greater.
// Offer panics if called after Ranked, a finalized heap is not reusable.
func (h *BoundedMinHeap) Offer(e models.ZoneCount) {
	if h.finalized {
		panic("ranking: Offer after Ranked on a finalized heap")
	}
	if len(h.entries) < h.capacity {
		heap.Push(&h.entries, e)
		return
	}
	if e.Count > h.entries[0].Count {
		h.entries[0] = e
		heap.Fix(&h.entries, 0)
	}
}

// Len returns the number of entries currently held
func (h *BoundedMinHeap) Len() int {
	return len(h.entries)
}

// Min returns the smallest held entry without removing it
func (h *BoundedMinHeap) Min() (models.ZoneCount, bool) {
	if len(h.entries) == 0 {
		return models.ZoneCount{}, false
	}
	return h.entries[0], true
}

// Ranked finalizes the heap and returns its entries ordered by count
// descending, ties broken by ascending zone ID so output is reproducible.
func (h *BoundedMinHeap) Ranked() []models.ZoneCount {
	h.finalized = true
	out := make([]models.ZoneCount, len(h.entries))
	copy(out, h.entries)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].ZoneID < out[j].ZoneID
	})
	return out
}

// TopK selects the k entries with the largest counts from a sequence of
// pre-aggregated (zone, count) pairs. Cost is O(N log K) over N entries and
// O(K) memory for the ranking structure. Empty input is a valid empty result.
func TopK(counts []models.ZoneCount, k int) ([]models.ZoneCount, error) {
	h, err := NewBoundedMinHeap(k)
	if err != nil {
		return nil, err
	}
	for _, e := range counts {
		h.Offer(e)
	}
	return h.Ranked(), nil
}

// zoneCountHeap implements heap.Interface with the minimum count at the root
type zoneCountHeap []models.ZoneCount

func (h zoneCountHeap) Len() int            { return len(h) }
func (h zoneCountHeap) Less(i, j int) bool  { return h[i].Count < h[j].Count }
func (h zoneCountHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *zoneCountHeap) Push(x interface{}) { *h = append(*h, x.(models.ZoneCount)) }

func (h *zoneCountHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}
