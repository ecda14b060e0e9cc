package screenflow

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/screenflow/input"
)

// blankScreen fills the current-screen slot before the first real screen
// is pushed. It renders nothing and never escapes the package:
// CurrentScreen and LastScreen return nil while a slot holds it.
type blankScreen struct{}

func (blankScreen) Show()                                {}
func (blankScreen) Hide()                                {}
func (blankScreen) Pause()                               {}
func (blankScreen) Resume()                              {}
func (blankScreen) Render(dt float64, dst *ebiten.Image) {}
func (blankScreen) Resize(width, height int)             {}
func (blankScreen) Dispose()                             {}
func (blankScreen) ClearColor() color.Color              { return color.Black }
func (blankScreen) InputHandlers() []input.Handler       { return nil }
func (blankScreen) Initialized() bool                    { return true }

// isBlank reports whether s is the internal placeholder.
func isBlank(s Screen) bool {
	_, ok := s.(blankScreen)
	return ok
}
