// Demo application for the screenflow package: a menu and a game screen
// wired to fade, slide and push transitions.
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/screenflow"
	"github.com/younwookim/screenflow/input"
	"github.com/younwookim/screenflow/internal/config"
	"github.com/younwookim/screenflow/transition"
)

func main() {
	configDir := flag.String("config", "", "directory containing demo.json (defaults built in)")
	flag.Parse()

	cfg := config.Default()
	if *configDir != "" {
		loaded, err := config.NewLoader(*configDir).Load()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}

	router := input.NewRouter()
	manager := screenflow.NewManager()
	manager.Initialize(router, cfg.Window.Width, cfg.Window.Height)

	if err := registerAll(manager, cfg); err != nil {
		log.Fatalf("Failed to set up screens: %v", err)
	}
	if err := manager.PushScreen("menu", ""); err != nil {
		log.Fatalf("Failed to push initial screen: %v", err)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	game := screenflow.NewGame(manager, router)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}

	if err := manager.Dispose(); err != nil {
		log.Printf("Dispose failed: %v", err)
	}
}

func registerAll(manager *screenflow.Manager, cfg *config.DemoConfig) error {
	if err := manager.AddScreen("menu", newMenuScreen(manager)); err != nil {
		return err
	}
	if err := manager.AddScreen("game", newGameScreen(manager)); err != nil {
		return err
	}

	durations := cfg.Transitions
	if err := manager.AddTransition("fade", transition.NewBlending(durations.FadeDuration, transition.SmoothStep)); err != nil {
		return err
	}
	if err := manager.AddTransition("slide", transition.NewSlide(durations.SlideDuration, transition.Right, false, transition.OutQuad)); err != nil {
		return err
	}
	if err := manager.AddTransition("push", transition.NewPush(durations.PushDuration, transition.Left, transition.SmoothStep)); err != nil {
		return err
	}
	return nil
}
