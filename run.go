package material

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title         string
	Width, Height int
	// ShowFPS draws an FPS/TPS readout in the top-left corner.
	ShowFPS bool
	// Resizable lets the user resize the window. The logical screen follows
	// the window size.
	Resizable bool
	// Debug enables the scene's debug mode.
	Debug bool
}

// game adapts a Scene to ebiten.Game.
type game struct {
	scene  *Scene
	cfg    RunConfig
	fps    *fpsWidget
	width  int
	height int
}

func (g *game) Update() error {
	if err := g.scene.Update(); err != nil {
		return err
	}
	if g.fps != nil {
		g.fps.update(1.0 / float64(ebiten.TPS()))
	}
	if r := g.scene.testRunner; r != nil && r.Done() && len(g.scene.screenshotQueue) == 0 {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.fps != nil {
		g.fps.draw(screen)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.cfg.Resizable {
		return outsideWidth, outsideHeight
	}
	return g.width, g.height
}

// Run opens a window and drives scene until the window closes, the update
// function returns an error or an attached TestRunner finishes. Zero sizes
// default to 640x480.
func Run(scene *Scene, cfg RunConfig) error {
	w, h := cfg.Width, cfg.Height
	if w <= 0 {
		w = 640
	}
	if h <= 0 {
		h = 480
	}
	ebiten.SetWindowSize(w, h)
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if cfg.Debug {
		scene.SetDebugMode(true)
	}

	g := &game{scene: scene, cfg: cfg, width: w, height: h}
	if cfg.ShowFPS {
		g.fps = newFPSWidget()
	}

	Logger().Info("run", "title", cfg.Title, "width", w, "height", h)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("material: run: %w", err)
	}
	return nil
}
