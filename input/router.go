// Package input provides a small input multiplexer for screen-based games.
//
// A Router owns an ordered list of Handlers. Once per frame, Update polls
// the devices and dispatches each event to the handlers in order until one
// of them consumes it. Screens hand their handlers to the screen manager,
// which binds and unbinds them as screens become active.
package input

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Handler consumes input events routed by a Router.
// Returning true from a callback stops the event from reaching
// handlers further down the list.
type Handler interface {
	// OnKeyPressed is invoked once for every key that went down this frame.
	OnKeyPressed(key ebiten.Key) bool

	// OnMousePressed is invoked once for every mouse button that went down
	// this frame, with the cursor position at that moment.
	OnMousePressed(button ebiten.MouseButton, x, y int) bool
}

var mouseButtons = []ebiten.MouseButton{
	ebiten.MouseButtonLeft,
	ebiten.MouseButtonMiddle,
	ebiten.MouseButtonRight,
}

// Router polls devices once per frame and fans events out to its handlers.
//
// Handlers may be added and removed from any goroutine; Update must be
// called from the game loop.
type Router struct {
	mu       sync.Mutex
	handlers []Handler

	keys []ebiten.Key // scratch buffer reused across frames
}

// NewRouter creates an empty Router.
func NewRouter() *Router {
	return &Router{}
}

// AddHandlers appends handlers to the end of the dispatch order.
func (r *Router) AddHandlers(handlers ...Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers = append(r.handlers, handlers...)
}

// RemoveHandlers removes every occurrence of each given handler.
// Handlers that were never added are ignored.
func (r *Router) RemoveHandlers(handlers ...Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, h := range handlers {
		kept := r.handlers[:0]
		for _, existing := range r.handlers {
			if existing != h {
				kept = append(kept, existing)
			}
		}
		r.handlers = kept
	}
}

// Len returns the number of bound handlers.
func (r *Router) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.handlers)
}

// Update polls the keyboard and mouse and dispatches the events that
// occurred this frame. Call once per game update.
func (r *Router) Update() {
	r.keys = inpututil.AppendJustPressedKeys(r.keys[:0])
	for _, key := range r.keys {
		r.dispatchKey(key)
	}
	for _, button := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(button) {
			x, y := ebiten.CursorPosition()
			r.dispatchMouse(button, x, y)
		}
	}
}

func (r *Router) dispatchKey(key ebiten.Key) {
	for _, h := range r.snapshot() {
		if h.OnKeyPressed(key) {
			return
		}
	}
}

func (r *Router) dispatchMouse(button ebiten.MouseButton, x, y int) {
	for _, h := range r.snapshot() {
		if h.OnMousePressed(button, x, y) {
			return
		}
	}
}

// snapshot copies the handler list so dispatch runs without holding the
// lock; a handler may rebind handlers as a side effect of an event.
func (r *Router) snapshot() []Handler {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Handler(nil), r.handlers...)
}
