package screenflow

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestQueue_FIFO(t *testing.T) {
	var q requestQueue

	_, ok := q.dequeue()
	assert.False(t, ok, "empty queue signals empty")

	a := newMockScreen("a", nil)
	b := newMockScreen("b", nil)
	c := newMockScreen("c", nil)
	q.enqueue(request{screen: a})
	q.enqueue(request{screen: b})
	q.enqueue(request{screen: c})

	for _, want := range []*mockScreen{a, b, c} {
		req, ok := q.dequeue()
		require.True(t, ok)
		assert.Same(t, want, req.screen)
	}

	_, ok = q.dequeue()
	assert.False(t, ok)
}

func TestRequestQueue_ConcurrentEnqueue(t *testing.T) {
	var q requestQueue

	const producers = 8
	const perProducer = 100

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.enqueue(request{screen: newMockScreen("s", nil)})
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, producers*perProducer, q.len(), "enqueue never drops")
}
