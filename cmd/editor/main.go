package main

import (
	"embed"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/leveleditor/internal/application/game"
	"github.com/younwookim/leveleditor/internal/application/scene/editor"
	"github.com/younwookim/leveleditor/internal/application/system"
	"github.com/younwookim/leveleditor/internal/application/ui"
	"github.com/younwookim/leveleditor/internal/infrastructure/config"
)

//go:embed configs
var configFS embed.FS

func main() {
	// Load configuration using embedded filesystem
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	loader := config.NewFSLoader(fsys, "configs")
	cfg, err := loader.LoadSettings()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	w, h := cfg.Display.ScreenWidth, cfg.Display.ScreenHeight

	// Create editor
	scn := editor.New(cfg, system.NewInputSystem(), ui.NewPanel(w, h))
	g := game.New(scn, w, h)
	g.SetDT(cfg.Physics.TimeStep())
	defer g.Close()

	// Set up ebiten: one update per presented frame, vsync-locked
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetVsyncEnabled(cfg.Display.Vsync)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	// Window or graphics device failures surface here; there is no fallback
	if err := ebiten.RunGame(g); err != nil {
		g.Close()
		log.Fatalf("Failed to run editor: %v", err)
	}
	log.Printf("Editor closed")
}
