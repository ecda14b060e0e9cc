package screenflow

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/screenflow/input"
)

// Screen is a game screen (title, menu, gameplay, pause, etc.) whose
// lifecycle is driven by a Manager.
//
// Show is called when the screen becomes the current screen; Hide when
// another screen has fully replaced it (after any transition finished).
// Render both updates and draws the screen for one frame.
type Screen interface {
	// Show is called when the screen becomes the current screen of the
	// manager, right before the first transition frame towards it.
	Show()

	// Hide is called when the screen has been fully replaced, after the
	// transition away from it finished (or immediately on a direct cut).
	Hide()

	// Pause is called when the game is paused while this screen is visible.
	Pause()

	// Resume is called when the game resumes while this screen is visible.
	Resume()

	// Render advances the screen by dt seconds and draws it onto dst.
	// During a transition dst is an off-screen capture buffer.
	Render(dt float64, dst *ebiten.Image)

	// Resize informs the screen of a new viewport size.
	Resize(width, height int)

	// Dispose releases the screen's resources. Called when the manager is
	// disposed.
	Dispose()

	// ClearColor is the color the manager clears the target to before the
	// screen renders.
	ClearColor() color.Color

	// InputHandlers returns the handlers the manager binds to the input
	// router while this screen is current. May return nil.
	InputHandlers() []input.Handler

	// Initialized reports whether the screen has loaded its resources.
	// Resize is only forwarded to initialized screens; uninitialized ones
	// pick the size up on first use.
	Initialized() bool
}

// BaseScreen provides no-op defaults for the optional parts of Screen.
// Embed it and override what the screen actually needs.
type BaseScreen struct {
	width  int
	height int
}

// Show implements Screen.
func (b *BaseScreen) Show() {}

// Hide implements Screen.
func (b *BaseScreen) Hide() {}

// Pause implements Screen.
func (b *BaseScreen) Pause() {}

// Resume implements Screen.
func (b *BaseScreen) Resume() {}

// Resize records the new viewport size.
func (b *BaseScreen) Resize(width, height int) {
	b.width = width
	b.height = height
}

// Size returns the last size passed to Resize.
func (b *BaseScreen) Size() (width, height int) {
	return b.width, b.height
}

// Dispose implements Screen.
func (b *BaseScreen) Dispose() {}

// ClearColor implements Screen; the default is black.
func (b *BaseScreen) ClearColor() color.Color {
	return color.Black
}

// InputHandlers implements Screen; the default is no handlers.
func (b *BaseScreen) InputHandlers() []input.Handler {
	return nil
}

// Initialized implements Screen. Screens in Go are fully constructed
// before registration, so the default is true.
func (b *BaseScreen) Initialized() bool {
	return true
}
