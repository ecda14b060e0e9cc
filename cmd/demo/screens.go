package main

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/screenflow"
	"github.com/younwookim/screenflow/input"
)

// Colors for rendering
var (
	colorMenuBG = color.RGBA{26, 26, 46, 255}
	colorGameBG = color.RGBA{16, 46, 26, 255}
	colorBox    = color.RGBA{100, 200, 100, 255}
)

// menuScreen is the entry screen; Enter starts the game with a fade,
// Tab with a push.
type menuScreen struct {
	screenflow.BaseScreen
	manager *screenflow.Manager
	handler *menuHandler
}

func newMenuScreen(manager *screenflow.Manager) *menuScreen {
	s := &menuScreen{manager: manager}
	s.handler = &menuHandler{screen: s}
	return s
}

func (s *menuScreen) Render(dt float64, dst *ebiten.Image) {
	ebitenutil.DebugPrintAt(dst, "MENU", 16, 16)
	ebitenutil.DebugPrintAt(dst, "Enter: play (fade)   Tab: play (push)", 16, 40)
}

func (s *menuScreen) ClearColor() color.Color {
	return colorMenuBG
}

func (s *menuScreen) InputHandlers() []input.Handler {
	return []input.Handler{s.handler}
}

type menuHandler struct {
	screen *menuScreen
}

func (h *menuHandler) OnKeyPressed(key ebiten.Key) bool {
	switch key {
	case ebiten.KeyEnter:
		return h.push("fade")
	case ebiten.KeyTab:
		return h.push("push")
	}
	return false
}

func (h *menuHandler) OnMousePressed(ebiten.MouseButton, int, int) bool {
	return false
}

func (h *menuHandler) push(transitionName string) bool {
	if err := h.screen.manager.PushScreen("game", transitionName); err != nil {
		log.Printf("[Demo] push failed: %v", err)
	}
	return true
}

// gameScreen bounces a square around; Escape returns to the menu with a
// slide.
type gameScreen struct {
	screenflow.BaseScreen
	manager *screenflow.Manager
	handler *gameHandler

	elapsed float64
	paused  bool
}

func newGameScreen(manager *screenflow.Manager) *gameScreen {
	s := &gameScreen{manager: manager}
	s.handler = &gameHandler{screen: s}
	return s
}

func (s *gameScreen) Render(dt float64, dst *ebiten.Image) {
	if !s.paused {
		s.elapsed += dt
	}

	w := float64(dst.Bounds().Dx())
	h := float64(dst.Bounds().Dy())
	x := w/2 + math.Cos(s.elapsed)*w/4
	y := h/2 + math.Sin(s.elapsed*1.3)*h/4
	ebitenutil.DrawRect(dst, x-16, y-16, 32, 32, colorBox)

	ebitenutil.DebugPrintAt(dst, "GAME", 16, 16)
	ebitenutil.DebugPrintAt(dst, fmt.Sprintf("t=%.1fs   Escape: menu (slide)", s.elapsed), 16, 40)
}

func (s *gameScreen) Pause()  { s.paused = true }
func (s *gameScreen) Resume() { s.paused = false }

func (s *gameScreen) ClearColor() color.Color {
	return colorGameBG
}

func (s *gameScreen) InputHandlers() []input.Handler {
	return []input.Handler{s.handler}
}

type gameHandler struct {
	screen *gameScreen
}

func (h *gameHandler) OnKeyPressed(key ebiten.Key) bool {
	if key == ebiten.KeyEscape {
		if err := h.screen.manager.PushScreen("menu", "slide"); err != nil {
			log.Printf("[Demo] push failed: %v", err)
		}
		return true
	}
	return false
}

func (h *gameHandler) OnMousePressed(ebiten.MouseButton, int, int) bool {
	return false
}
