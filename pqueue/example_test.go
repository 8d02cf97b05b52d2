package pqueue_test

import (
	"fmt"

	"github.com/quastd/algograph/pqueue"
)

// ExampleMinPQ_UpdatePriority shows decrease-key reordering the queue.
func ExampleMinPQ_UpdatePriority() {
	q := pqueue.NewMin(4)
	q.Enqueue("far", 10)
	q.Enqueue("near", 1)
	q.Enqueue("mid", 5)

	// A shorter route to "far" was found.
	q.UpdatePriority("far", 2)

	for !q.IsEmpty() {
		key, _ := q.DequeueMin()
		fmt.Println(key)
	}
	// Output:
	// near
	// far
	// mid
}
