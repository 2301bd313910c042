package helpers

import (
	"sync"
)

// Queue is an unbounded FIFO with a single consumer. Push never blocks.
type Queue[T any] struct {
	lock    sync.Mutex
	buffer  []T
	updated chan bool
	closed  bool
}

func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{
		updated: make(chan bool, 1),
	}
}

func (q *Queue[T]) notify() {
	select {
	case q.updated <- true:
	default:
	}
}

// Push appends t and reports false when the queue has been closed.
func (q *Queue[T]) Push(t T) bool {
	q.lock.Lock()
	if q.closed {
		q.lock.Unlock()
		return false
	}
	q.buffer = append(q.buffer, t)
	q.lock.Unlock()

	q.notify()
	return true
}

// Pop waits for the next value. It returns false once the queue is closed
// and drained.
func (q *Queue[T]) Pop() (T, bool) {
	var zero T
	for {
		q.lock.Lock()
		if len(q.buffer) > 0 {
			t := q.buffer[0]
			q.buffer[0] = zero
			q.buffer = q.buffer[1:]
			q.lock.Unlock()
			return t, true
		}
		if q.closed {
			q.lock.Unlock()
			return zero, false
		}
		q.lock.Unlock()

		<-q.updated
	}
}

func (q *Queue[T]) Len() int {
	q.lock.Lock()
	defer q.lock.Unlock()
	return len(q.buffer)
}

func (q *Queue[T]) Close() {
	q.lock.Lock()
	q.closed = true
	q.lock.Unlock()

	q.notify()
}
