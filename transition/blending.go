package transition

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Blending fades from the last screen to the current one by drawing the
// current capture with increasing opacity over the last one.
type Blending struct {
	Timed
}

// NewBlending creates a blending transition lasting duration seconds.
// A nil ease defaults to Linear.
func NewBlending(duration float64, ease Ease) *Blending {
	return &Blending{Timed: NewTimed(duration, ease)}
}

// Render composites one frame of the fade onto dst.
func (b *Blending) Render(dt float64, dst, last, curr *ebiten.Image) {
	alpha := b.Advance(dt)

	dst.DrawImage(last, nil)

	opts := &ebiten.DrawImageOptions{}
	opts.ColorScale.ScaleAlpha(float32(alpha))
	dst.DrawImage(curr, opts)
}
