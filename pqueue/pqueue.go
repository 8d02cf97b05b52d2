// Package pqueue provides a keyed min-priority queue with true
// decrease-key, the collaborator contract consumed by the dijkstra
// package.
//
// Unlike a lazy heap that pushes duplicates and discards stale entries
// on pop, MinPQ keeps exactly one entry per key and supports
// UpdatePriority in O(log N) by tracking each key's heap position.
//
// Complexity:
//
//   - Enqueue / DequeueMin / UpdatePriority: O(log N)
//   - Contains / Len / IsEmpty:              O(1)
//   - Memory:                                O(N)
package pqueue

import (
	"container/heap"
	"errors"
)

// Sentinel errors for queue operations.
var (
	// ErrEmptyQueue is returned by DequeueMin on an empty queue.
	ErrEmptyQueue = errors.New("pqueue: queue is empty")

	// ErrDuplicateKey is returned by Enqueue when the key is already queued.
	ErrDuplicateKey = errors.New("pqueue: key already enqueued")

	// ErrKeyNotFound is returned by UpdatePriority for an absent key.
	ErrKeyNotFound = errors.New("pqueue: key not found")
)

// item pairs a key with its priority; index is its current heap slot,
// maintained by Swap so UpdatePriority can sift from the right place.
type item struct {
	key      string
	priority int64
	index    int
}

// itemHeap implements heap.Interface over *item, min-ordered by priority.
type itemHeap []*item

func (h itemHeap) Len() int            { return len(h) }
func (h itemHeap) Less(i, j int) bool  { return h[i].priority < h[j].priority }
func (h *itemHeap) Push(x interface{}) { *h = append(*h, x.(*item)) }

func (h itemHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *itemHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil // avoid retaining the popped item
	*h = old[:n-1]

	return it
}

// MinPQ is a keyed min-priority queue. The zero value is not usable;
// construct with NewMin. MinPQ is not safe for concurrent use.
type MinPQ struct {
	heap itemHeap
	pos  map[string]*item
}

// NewMin returns an empty MinPQ with capacity hint n.
func NewMin(n int) *MinPQ {
	return &MinPQ{
		heap: make(itemHeap, 0, n),
		pos:  make(map[string]*item, n),
	}
}

// Len returns the number of queued keys.
func (q *MinPQ) Len() int { return len(q.heap) }

// IsEmpty reports whether the queue holds no keys.
func (q *MinPQ) IsEmpty() bool { return len(q.heap) == 0 }

// Contains reports whether key is currently queued.
func (q *MinPQ) Contains(key string) bool {
	_, ok := q.pos[key]

	return ok
}

// Enqueue inserts key with the given priority.
// Returns ErrDuplicateKey if key is already queued.
func (q *MinPQ) Enqueue(key string, priority int64) error {
	if q.Contains(key) {
		return ErrDuplicateKey
	}
	it := &item{key: key, priority: priority, index: len(q.heap)}
	q.pos[key] = it
	heap.Push(&q.heap, it)

	return nil
}

// DequeueMin removes and returns the key with the smallest priority.
// Returns ErrEmptyQueue if the queue is empty.
func (q *MinPQ) DequeueMin() (string, error) {
	if q.IsEmpty() {
		return "", ErrEmptyQueue
	}
	it := heap.Pop(&q.heap).(*item)
	delete(q.pos, it.key)

	return it.key, nil
}

// UpdatePriority changes the priority of a queued key and restores heap
// order (decrease-key or increase-key).
// Returns ErrKeyNotFound if key is not queued.
func (q *MinPQ) UpdatePriority(key string, priority int64) error {
	it, ok := q.pos[key]
	if !ok {
		return ErrKeyNotFound
	}
	it.priority = priority
	heap.Fix(&q.heap, it.index)

	return nil
}
