// Package desktop runs the squirrel runner in a native window with Ebiten.
// Ebiten owns the clock: Update is called at a fixed TPS and advances the game one tick.
package desktop

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/squirrel-run/internal/core"
	"github.com/vovakirdan/squirrel-run/internal/games/runner"
)

// Window implements ebiten.Game for one runner.
type Window struct {
	game    *runner.Game
	logger  *log.Logger
	frameMs float64
	frames  int // Drives cloud drift; counts every Update, in all phases
}

// New creates a window adapter for the game. The logger may be nil.
func New(game *runner.Game, rc core.RuntimeConfig, logger *log.Logger) *Window {
	if logger == nil {
		logger = log.Default()
	}
	w := &Window{
		game:    game,
		logger:  logger,
		frameMs: rc.FrameMs(),
	}
	game.OnGameOver(func(ev runner.GameOverEvent) {
		w.logger.Info("game over", "score", ev.Score, "passed", ev.Passed, "ticks", ev.Ticks)
	})
	return w
}

// Update applies this frame's input and advances the game one tick.
func (w *Window) Update() error {
	w.frames++
	for _, a := range pollActions() {
		if a == core.ActionQuit {
			w.logger.Info("window closed")
			return ebiten.Termination
		}
		if w.game.Handle(a) {
			w.logger.Debug("action", "action", a, "phase", w.game.Phase())
		}
	}
	w.game.Tick(w.frameMs)
	return nil
}

// Layout keeps the logical screen at the field size; Ebiten scales it to the window.
func (w *Window) Layout(_, _ int) (int, int) {
	f := w.game.Config().Field
	return int(f.Width), int(f.Height)
}

// Run opens the window and blocks until it is closed.
func Run(game *runner.Game, rc core.RuntimeConfig, logger *log.Logger) error {
	w := New(game, rc, logger)
	f := game.Config().Field

	ebiten.SetTPS(max(rc.TickRate, 1))
	ebiten.SetWindowSize(int(f.Width), int(f.Height))
	ebiten.SetWindowTitle("Squirrel Run")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	w.logger.Info("opening window", "width", f.Width, "height", f.Height, "tps", rc.TickRate)
	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("desktop: %w", err)
	}
	return nil
}
