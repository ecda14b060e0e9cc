package screenflow

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// RenderTarget is an off-screen color buffer the manager captures screens
// into while a transition plays. The two targets are exclusively owned by
// the manager; screens and transitions only ever see the per-frame images
// produced from them.
type RenderTarget interface {
	// Clear fills the target with the given color.
	Clear(c color.Color)

	// Image returns the target's backing image for drawing into and for
	// sampling. The image is only valid until the next Reallocate or
	// Release.
	Image() *ebiten.Image

	// Reallocate replaces the backing image with a new one of the given
	// size, releasing the old one.
	Reallocate(width, height int)

	// Release frees the backing image.
	Release()
}

// imageTarget is the ebiten-backed RenderTarget. There is no bind/unbind
// step: drawing into the image is the capture, and the image is already
// top-left oriented, so no flip is needed either.
type imageTarget struct {
	img *ebiten.Image
}

func newImageTarget(width, height int) *imageTarget {
	return &imageTarget{img: ebiten.NewImage(width, height)}
}

func (t *imageTarget) Clear(c color.Color) {
	t.img.Fill(c)
}

func (t *imageTarget) Image() *ebiten.Image {
	return t.img
}

func (t *imageTarget) Reallocate(width, height int) {
	t.img.Deallocate()
	t.img = ebiten.NewImage(width, height)
}

func (t *imageTarget) Release() {
	if t.img != nil {
		t.img.Deallocate()
		t.img = nil
	}
}
