package input

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

// recordingHandler is a test double that records dispatched events
type recordingHandler struct {
	keys    []ebiten.Key
	clicks  int
	consume bool
}

func (h *recordingHandler) OnKeyPressed(key ebiten.Key) bool {
	h.keys = append(h.keys, key)
	return h.consume
}

func (h *recordingHandler) OnMousePressed(button ebiten.MouseButton, x, y int) bool {
	h.clicks++
	return h.consume
}

func TestRouter_AddRemoveHandlers(t *testing.T) {
	r := NewRouter()
	a := &recordingHandler{}
	b := &recordingHandler{}

	r.AddHandlers(a, b)
	assert.Equal(t, 2, r.Len())

	r.RemoveHandlers(a)
	assert.Equal(t, 1, r.Len())

	// Removing a handler that is not bound is a no-op
	r.RemoveHandlers(a)
	assert.Equal(t, 1, r.Len())

	r.RemoveHandlers(b)
	assert.Equal(t, 0, r.Len())
}

func TestRouter_DispatchOrder(t *testing.T) {
	r := NewRouter()
	first := &recordingHandler{}
	second := &recordingHandler{}
	r.AddHandlers(first, second)

	r.dispatchKey(ebiten.KeyEnter)

	assert.Equal(t, []ebiten.Key{ebiten.KeyEnter}, first.keys)
	assert.Equal(t, []ebiten.Key{ebiten.KeyEnter}, second.keys, "unconsumed event reaches later handlers")
}

func TestRouter_ConsumedEventStopsDispatch(t *testing.T) {
	r := NewRouter()
	first := &recordingHandler{consume: true}
	second := &recordingHandler{}
	r.AddHandlers(first, second)

	r.dispatchKey(ebiten.KeyEscape)
	r.dispatchMouse(ebiten.MouseButtonLeft, 10, 20)

	assert.Len(t, first.keys, 1)
	assert.Equal(t, 1, first.clicks)
	assert.Empty(t, second.keys, "consumed key should not propagate")
	assert.Zero(t, second.clicks, "consumed click should not propagate")
}

func TestRouter_HandlerMayRebindDuringDispatch(t *testing.T) {
	r := NewRouter()
	b := &recordingHandler{}
	a := &rebindingHandler{router: r, add: b}
	r.AddHandlers(a)

	r.dispatchKey(ebiten.KeySpace)

	assert.Equal(t, 2, r.Len())
	assert.Empty(t, b.keys, "handler added mid-dispatch sees only later events")

	r.dispatchKey(ebiten.KeySpace)
	assert.Len(t, b.keys, 1)
}

// rebindingHandler adds another handler as a side effect of an event,
// mimicking a screen switch triggered from input.
type rebindingHandler struct {
	router *Router
	add    Handler
	added  bool
}

func (h *rebindingHandler) OnKeyPressed(ebiten.Key) bool {
	if !h.added {
		h.router.AddHandlers(h.add)
		h.added = true
	}
	return false
}

func (h *rebindingHandler) OnMousePressed(ebiten.MouseButton, int, int) bool {
	return false
}
