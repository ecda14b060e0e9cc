package transition

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Direction is the direction a sliding or pushing screen moves in.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// String returns the string representation of the direction.
func (d Direction) String() string {
	switch d {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Up:
		return "Up"
	case Down:
		return "Down"
	default:
		return "Unknown"
	}
}

// offset returns the translation for a screen that has moved fraction p
// of the target size in the direction.
func (d Direction) offset(p float64, w, h int) (x, y float64) {
	switch d {
	case Left:
		return -p * float64(w), 0
	case Right:
		return p * float64(w), 0
	case Up:
		return 0, -p * float64(h)
	case Down:
		return 0, p * float64(h)
	default:
		return 0, 0
	}
}

// Slide moves one screen over the other. With slideOut the last screen
// slides out in the given direction, uncovering the current one; without
// it the current screen slides in from the opposite side, covering the
// last one.
type Slide struct {
	Timed
	dir      Direction
	slideOut bool
}

// NewSlide creates a slide transition lasting duration seconds.
// A nil ease defaults to Linear.
func NewSlide(duration float64, dir Direction, slideOut bool, ease Ease) *Slide {
	return &Slide{Timed: NewTimed(duration, ease), dir: dir, slideOut: slideOut}
}

// Render composites one frame of the slide onto dst.
func (s *Slide) Render(dt float64, dst, last, curr *ebiten.Image) {
	p := s.Advance(dt)
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()

	if s.slideOut {
		// Current lies beneath; last moves away on top.
		dst.DrawImage(curr, nil)
		opts := &ebiten.DrawImageOptions{}
		opts.GeoM.Translate(s.dir.offset(p, w, h))
		dst.DrawImage(last, opts)
		return
	}

	// Last stays put; current comes in on top from the opposite side.
	dst.DrawImage(last, nil)
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(s.dir.offset(p-1, w, h))
	dst.DrawImage(curr, opts)
}

// Push moves both screens together: the current screen pushes the last
// one off the target in the given direction.
type Push struct {
	Timed
	dir Direction
}

// NewPush creates a push transition lasting duration seconds.
// A nil ease defaults to Linear.
func NewPush(duration float64, dir Direction, ease Ease) *Push {
	return &Push{Timed: NewTimed(duration, ease), dir: dir}
}

// Render composites one frame of the push onto dst.
func (p *Push) Render(dt float64, dst, last, curr *ebiten.Image) {
	progress := p.Advance(dt)
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()

	lastOpts := &ebiten.DrawImageOptions{}
	lastOpts.GeoM.Translate(p.dir.offset(progress, w, h))
	dst.DrawImage(last, lastOpts)

	currOpts := &ebiten.DrawImageOptions{}
	currOpts.GeoM.Translate(p.dir.offset(progress-1, w, h))
	dst.DrawImage(curr, currOpts)
}
