package mock

import miner "github.com/Raavan18/b2b-data-miner"

var _ miner.FetchQueue = (*FetchQueue)(nil)

// FetchQueue is a mock implementation of miner.FetchQueue.
type FetchQueue struct {
	PushFn func(target miner.FetchTarget) bool
	PopFn  func() (miner.FetchTarget, bool)
	LenFn  func() int
	SeenFn func(url string) bool
}

func (q *FetchQueue) Push(target miner.FetchTarget) bool {
	return q.PushFn(target)
}

func (q *FetchQueue) Pop() (miner.FetchTarget, bool) {
	return q.PopFn()
}

func (q *FetchQueue) Len() int {
	return q.LenFn()
}

func (q *FetchQueue) Seen(url string) bool {
	return q.SeenFn(url)
}
