package screenflow

import (
	"log"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/screenflow/input"
)

// InputRouter is the part of the input router the manager needs: binding
// and unbinding the active screen's handlers. *input.Router satisfies it.
type InputRouter interface {
	AddHandlers(handlers ...input.Handler)
	RemoveHandlers(handlers ...input.Handler)
}

// Manager handles the different screens of a game and the transitions
// between them.
//
// It has to be initialized via Initialize before it can be used. Screens
// and transitions are registered with AddScreen and AddTransition; a
// screen is actually shown by pushing it via PushScreen. Tick drives one
// frame and must be called from the render loop.
//
// PushScreen, AddScreen and AddTransition may be called from any
// goroutine; every other method belongs to the render loop.
type Manager struct {
	screens     *registry[Screen]
	transitions *registry[Transition]
	queue       requestQueue

	// Mutated on the render loop only.
	last       Screen // screen shown before the current one
	curr       Screen // never nil after Initialize; may be the placeholder
	transition Transition
	lastBuf    RenderTarget
	currBuf    RenderTarget

	router InputRouter
	width  int
	height int

	initialized atomic.Bool
}

// NewManager creates an uninitialized Manager.
func NewManager() *Manager {
	return &Manager{
		screens:     newRegistry[Screen]("screen"),
		transitions: newRegistry[Transition]("transition"),
	}
}

// Initialize prepares the manager for use: it stores the input router the
// active screen's handlers are bound to, allocates the two capture
// buffers at the given size, and installs the internal blank screen as
// the current screen. Must precede all other calls.
func (m *Manager) Initialize(router InputRouter, width, height int) {
	m.router = router
	m.width = width
	m.height = height
	m.curr = blankScreen{}
	m.last = nil
	m.initBuffers()
	m.initialized.Store(true)
}

// initBuffers (re)allocates the capture buffers at the current size.
func (m *Manager) initBuffers() {
	if m.lastBuf != nil {
		m.lastBuf.Release()
	}
	m.lastBuf = newImageTarget(m.width, m.height)
	if m.currBuf != nil {
		m.currBuf.Release()
	}
	m.currBuf = newImageTarget(m.width, m.height)
}

// AddScreen registers a screen under the given name. A screen registered
// under an existing name replaces the old one.
func (m *Manager) AddScreen(name string, screen Screen) error {
	if !m.initialized.Load() {
		return ErrNotInitialized
	}
	return m.screens.add(name, screen, screen == nil)
}

// GetScreen returns the screen registered under the given name.
func (m *Manager) GetScreen(name string) (Screen, error) {
	if !m.initialized.Load() {
		return nil, ErrNotInitialized
	}
	return m.screens.get(name)
}

// Screens returns all registered screens, in no particular order.
func (m *Manager) Screens() []Screen {
	return m.screens.values()
}

// AddTransition registers a transition under the given name. A
// transition registered under an existing name replaces the old one.
func (m *Manager) AddTransition(name string, transition Transition) error {
	if !m.initialized.Load() {
		return ErrNotInitialized
	}
	return m.transitions.add(name, transition, transition == nil)
}

// GetTransition returns the transition registered under the given name.
func (m *Manager) GetTransition(name string) (Transition, error) {
	if !m.initialized.Load() {
		return nil, ErrNotInitialized
	}
	return m.transitions.get(name)
}

// Transitions returns all registered transitions, in no particular order.
func (m *Manager) Transitions() []Transition {
	return m.transitions.values()
}

// PushScreen requests that the named screen become the current screen.
// transitionName selects the effect to play; the empty string means a
// direct cut. Unknown names fail here, synchronously, never inside the
// render loop.
//
// The change is applied on the next Tick. If a transition is still in
// flight the request is queued and applied once the transition (and any
// earlier queued requests) finished; requests are never dropped.
func (m *Manager) PushScreen(name, transitionName string) error {
	if !m.initialized.Load() {
		return ErrNotInitialized
	}
	screen, err := m.screens.get(name)
	if err != nil {
		return err
	}
	var transition Transition
	if transitionName != "" {
		transition, err = m.transitions.get(transitionName)
		if err != nil {
			return err
		}
	}
	log.Printf("[ScreenManager] screen %q pushed (transition %q)", name, transitionName)
	m.queue.enqueue(request{transition: transition, screen: screen})
	return nil
}

// Tick drives one frame: it advances and draws the current screen onto
// dst, or, while a transition is in flight, captures both screens into
// the off-screen buffers and lets the transition composite them.
//
// State changes (starting a queued request, finishing a transition) do
// not consume a render slot: the loop runs again with the same dt so the
// newly active state produces its frame within the same call.
func (m *Manager) Tick(dt float64, dst *ebiten.Image) error {
	if !m.initialized.Load() {
		return ErrNotInitialized
	}

	for {
		if m.transition == nil {
			req, ok := m.queue.dequeue()
			if !ok {
				// No transition going on; render the current screen.
				dst.Fill(m.curr.ClearColor())
				m.curr.Render(dt, dst)
				return nil
			}

			// Start the queued request.
			m.router.RemoveHandlers(m.curr.InputHandlers()...)
			m.last = m.curr
			m.curr = req.screen
			m.curr.Show()
			m.transition = req.transition

			if m.transition != nil {
				m.transition.Reset()
			} else {
				// Direct cut.
				m.last.Hide()
				m.router.AddHandlers(m.curr.InputHandlers()...)
			}
			continue
		}

		if !m.transition.Done() {
			last := m.capture(m.last, m.lastBuf, dt)
			curr := m.capture(m.curr, m.currBuf, dt)
			m.transition.Render(dt, dst, last, curr)
			return nil
		}

		// The transition finished; hand over for real.
		m.transition = nil
		m.last.Hide()
		m.router.AddHandlers(m.curr.InputHandlers()...)
	}
}

// capture renders a screen into the given target and returns the
// resulting image. The image is only valid for the current frame.
func (m *Manager) capture(screen Screen, target RenderTarget, dt float64) *ebiten.Image {
	target.Clear(screen.ClearColor())
	screen.Render(dt, target.Image())
	return target.Image()
}

// Resize propagates a viewport change to every initialized screen and
// transition and reallocates the capture buffers. Calling it with the
// current size is a no-op.
func (m *Manager) Resize(width, height int) error {
	if !m.initialized.Load() {
		return ErrNotInitialized
	}
	if m.width == width && m.height == height {
		return nil
	}
	m.width = width
	m.height = height

	for _, s := range m.screens.values() {
		if s.Initialized() {
			s.Resize(width, height)
		}
	}
	for _, t := range m.transitions.values() {
		if t.Initialized() {
			t.Resize(width, height)
		}
	}

	m.initBuffers()
	return nil
}

// Pause notifies the visible screens that the game was paused. While a
// transition is in flight the previous screen is still visible and gets
// notified as well.
func (m *Manager) Pause() error {
	if !m.initialized.Load() {
		return ErrNotInitialized
	}
	if m.InTransition() {
		m.last.Pause()
	}
	m.curr.Pause()
	return nil
}

// Resume notifies the visible screens that the game was resumed; see
// Pause for which screens count as visible.
func (m *Manager) Resume() error {
	if !m.initialized.Load() {
		return ErrNotInitialized
	}
	if m.InTransition() {
		m.last.Resume()
	}
	m.curr.Resume()
	return nil
}

// Dispose releases the capture buffers and disposes every registered
// screen and transition. The manager reverts to the uninitialized state;
// a second Dispose fails with ErrNotInitialized.
func (m *Manager) Dispose() error {
	if !m.initialized.CompareAndSwap(true, false) {
		return ErrNotInitialized
	}

	m.last = nil
	m.curr = nil
	m.transition = nil

	if m.lastBuf != nil {
		m.lastBuf.Release()
		m.lastBuf = nil
	}
	if m.currBuf != nil {
		m.currBuf.Release()
		m.currBuf = nil
	}

	for _, s := range m.screens.values() {
		s.Dispose()
	}
	for _, t := range m.transitions.values() {
		t.Dispose()
	}
	return nil
}

// CurrentScreen returns the current screen, or nil before the first push
// took effect. The change happens on the first Tick after PushScreen.
func (m *Manager) CurrentScreen() Screen {
	if m.curr == nil || isBlank(m.curr) {
		return nil
	}
	return m.curr
}

// LastScreen returns the screen that was shown before the current one,
// or nil if there is none.
func (m *Manager) LastScreen() Screen {
	if m.last == nil || isBlank(m.last) {
		return nil
	}
	return m.last
}

// InTransition reports whether the manager is currently transitioning
// from the last screen towards the current one.
func (m *Manager) InTransition() bool {
	return m.transition != nil
}
