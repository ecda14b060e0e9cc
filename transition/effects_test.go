package transition

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

func testImages() (dst, last, curr *ebiten.Image) {
	return ebiten.NewImage(320, 240), ebiten.NewImage(320, 240), ebiten.NewImage(320, 240)
}

func TestBlending_RunsToCompletion(t *testing.T) {
	dst, last, curr := testImages()
	b := NewBlending(0.3, nil)

	b.Reset()
	ticks := 0
	for !b.Done() {
		b.Render(0.1, dst, last, curr)
		ticks++
	}
	assert.Equal(t, 3, ticks)
}

func TestBlending_Reusable(t *testing.T) {
	dst, last, curr := testImages()
	b := NewBlending(0.2, OutQuad)

	for play := 0; play < 2; play++ {
		b.Reset()
		assert.False(t, b.Done(), "play %d starts re-armed", play)
		for !b.Done() {
			b.Render(0.1, dst, last, curr)
		}
	}
}

func TestSlide_RunsToCompletion(t *testing.T) {
	dst, last, curr := testImages()
	for _, dir := range []Direction{Left, Right, Up, Down} {
		for _, slideOut := range []bool{false, true} {
			s := NewSlide(0.2, dir, slideOut, nil)
			s.Reset()
			ticks := 0
			for !s.Done() {
				s.Render(0.1, dst, last, curr)
				ticks++
			}
			assert.Equal(t, 2, ticks, "dir=%v slideOut=%v", dir, slideOut)
		}
	}
}

func TestPush_RunsToCompletion(t *testing.T) {
	dst, last, curr := testImages()
	p := NewPush(0.2, Up, SmoothStep)
	p.Reset()
	ticks := 0
	for !p.Done() {
		p.Render(0.1, dst, last, curr)
		ticks++
	}
	assert.Equal(t, 2, ticks)
}

func TestDirection_Offset(t *testing.T) {
	x, y := Left.offset(0.5, 100, 200)
	assert.Equal(t, -50.0, x)
	assert.Equal(t, 0.0, y)

	x, y = Right.offset(0.5, 100, 200)
	assert.Equal(t, 50.0, x)
	assert.Equal(t, 0.0, y)

	x, y = Up.offset(0.5, 100, 200)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, -100.0, y)

	x, y = Down.offset(0.5, 100, 200)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 100.0, y)
}

func TestDirection_String(t *testing.T) {
	assert.Equal(t, "Left", Left.String())
	assert.Equal(t, "Down", Down.String())
	assert.Equal(t, "Unknown", Direction(42).String())
}
