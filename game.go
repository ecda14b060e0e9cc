package screenflow

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/screenflow/input"
)

// Game glues a Manager to ebiten's game loop: it polls the input router
// every update, ticks the manager every draw, and forwards window size
// changes through Layout. Implements ebiten.Game.
type Game struct {
	manager *Manager
	router  *input.Router
	dt      float64
	err     error
}

// NewGame creates a Game around an initialized manager and the router it
// was initialized with.
func NewGame(manager *Manager, router *input.Router) *Game {
	return &Game{
		manager: manager,
		router:  router,
		dt:      1.0 / 60.0, // Default to 60 FPS
	}
}

// Update polls the input router. Implements ebiten.Game interface.
func (g *Game) Update() error {
	if g.err != nil {
		return g.err
	}
	g.router.Update()
	return nil
}

// Draw ticks the manager for one frame. Implements ebiten.Game interface.
// A tick error terminates the game on the following Update.
func (g *Game) Draw(screen *ebiten.Image) {
	if err := g.manager.Tick(g.dt, screen); err != nil {
		g.err = err
	}
}

// Layout forwards the window size to the manager, so screens, transitions
// and the capture buffers follow it, and uses it as the logical screen
// size. Resize is a no-op while the size is unchanged. Implements
// ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if err := g.manager.Resize(outsideWidth, outsideHeight); err != nil {
		g.err = err
	}
	return outsideWidth, outsideHeight
}

// SetDT sets the delta time used for ticks.
// Useful for testing or custom frame rates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}
