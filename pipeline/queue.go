package pipeline

import (
	"container/heap"
	"strings"
	"sync"

	miner "github.com/Raavan18/b2b-data-miner"
	"github.com/Raavan18/b2b-data-miner/bloom"
)

// Compile-time interface verification.
var _ miner.FetchQueue = (*Queue)(nil)

// Queue is an in-memory fetch queue with priority ordering and Bloom filter
// deduplication. Targets with equal priority are popped in insertion order.
// It is safe for concurrent use by multiple goroutines.
type Queue struct {
	mu    sync.Mutex
	seen  *bloom.Filter
	items *targetHeap
	seq   int
}

// NewQueue creates a Queue sized for n expected URLs
// with the given false positive rate for deduplication.
func NewQueue(n uint, fpRate float64) *Queue {
	h := &targetHeap{}
	heap.Init(h)
	return &Queue{
		seen:  bloom.NewFilter(n, fpRate),
		items: h,
	}
}

// Push adds a target to the queue.
// Returns false if the URL has already been seen.
// URL fragments are stripped before deduplication - URLs differing only by
// fragment are considered duplicates.
func (q *Queue) Push(target miner.FetchTarget) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	url := stripFragment(target.URL)
	if q.seen.Test(url) {
		return false
	}
	q.seen.Add(url)

	target.URL = url
	q.seq++
	heap.Push(q.items, queuedTarget{target: target, seq: q.seq})
	return true
}

// Pop returns the next target by priority.
// The bool result is false if the queue is empty.
func (q *Queue) Pop() (miner.FetchTarget, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.items.Len() == 0 {
		return miner.FetchTarget{}, false
	}
	item, _ := heap.Pop(q.items).(queuedTarget)
	return item.target, true
}

// Len returns the number of queued targets.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.items.Len()
}

// Seen returns true if the URL has been queued before.
// URL fragments are stripped before checking.
func (q *Queue) Seen(rawURL string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.seen.Test(stripFragment(rawURL))
}

func stripFragment(url string) string {
	if idx := strings.Index(url, "#"); idx != -1 {
		return url[:idx]
	}
	return url
}

// queuedTarget pairs a target with its insertion sequence number so that
// equal priorities pop first-in first-out.
type queuedTarget struct {
	target miner.FetchTarget
	seq    int
}

// targetHeap implements heap.Interface for queuedTarget.
// Higher priority targets are popped first.
type targetHeap []queuedTarget

func (h targetHeap) Len() int { return len(h) }

// Less returns true if i is popped before j (max-heap, FIFO within priority).
func (h targetHeap) Less(i, j int) bool {
	if h[i].target.Priority != h[j].target.Priority {
		return h[i].target.Priority > h[j].target.Priority
	}
	return h[i].seq < h[j].seq
}

func (h targetHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *targetHeap) Push(x any) {
	item, _ := x.(queuedTarget)
	*h = append(*h, item)
}

func (h *targetHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}
