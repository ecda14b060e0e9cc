package screenflow

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Transition is a visual effect blending from the last screen to the
// current one. Transitions are reusable: the manager calls Reset before
// every play, then Render once per frame until Done reports true.
type Transition interface {
	// Reset re-arms the transition for a new play.
	Reset()

	// Render composites one frame of the effect onto dst. last and curr
	// hold the captured frames of the outgoing and incoming screen; they
	// are only valid for the duration of the call.
	Render(dt float64, dst, last, curr *ebiten.Image)

	// Done reports whether the transition has finished playing.
	Done() bool

	// Resize informs the transition of a new viewport size.
	Resize(width, height int)

	// Dispose releases the transition's resources. Called when the
	// manager is disposed.
	Dispose()

	// Initialized reports whether the transition has loaded its
	// resources; Resize is only forwarded to initialized transitions.
	Initialized() bool
}
