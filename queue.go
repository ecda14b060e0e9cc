package screenflow

import "sync"

// request is a pending screen change: the target screen and the
// transition to play towards it (nil for a direct cut).
type request struct {
	transition Transition
	screen     Screen
}

// requestQueue is a FIFO of pending screen changes. PushScreen may be
// called from outside the render loop, so the queue is lock-protected.
// Enqueue never blocks and never drops; requests issued in order are
// honored in order even while a transition is in flight.
type requestQueue struct {
	mu       sync.Mutex
	requests []request
}

func (q *requestQueue) enqueue(req request) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.requests = append(q.requests, req)
}

// dequeue removes and returns the head of the queue. ok is false when
// the queue is empty.
func (q *requestQueue) dequeue() (req request, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.requests) == 0 {
		return request{}, false
	}
	req = q.requests[0]
	q.requests = q.requests[1:]
	return req, true
}

func (q *requestQueue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.requests)
}
