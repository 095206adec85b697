package miner

// FetchTarget is a URL queued for fetching.
// Priority follows the candidate relevance score; higher is fetched first.
type FetchTarget struct {
	URL      string
	Priority int
}

// FetchQueue manages the fetch order with deduplication.
type FetchQueue interface {
	// Push adds a target to the queue.
	// Returns false if the URL has already been seen.
	Push(target FetchTarget) bool

	// Pop returns the next target by priority.
	// Returns false if the queue is empty.
	Pop() (FetchTarget, bool)

	// Len returns the number of queued targets.
	Len() int

	// Seen returns true if the URL has been queued before.
	Seen(url string) bool
}
