package runner

import (
	"strings"
	"testing"

	"github.com/vovakirdan/squirrel-run/internal/core"
)

func TestRenderIdleFrame(t *testing.T) {
	g := newTestGame(t)
	s := core.NewScreen(80, 24)

	g.Snapshot().Render(s)

	if !strings.Contains(s.Row(0), "Score: 0") {
		t.Errorf("HUD row = %q, expected score", s.Row(0))
	}
	if !strings.Contains(s.Row(0), "Speed: 1.00x") {
		t.Errorf("HUD row = %q, expected speed", s.Row(0))
	}
	if !strings.Contains(s.String(), "Enter to start") {
		t.Error("idle frame should show the start hint")
	}

	// Ground line sits right under the actor's feet
	if got := s.Row(20); got != strings.Repeat(string(GroundLine), 80) {
		t.Errorf("ground row = %q", got)
	}
	if s.Get(13, 18) != ActorBody {
		t.Errorf("expected actor body at (13, 18), got %q", s.Get(13, 18))
	}
	if s.GetCell(13, 18).Color != core.ColorActor {
		t.Errorf("actor cell color = %v", s.GetCell(13, 18).Color)
	}
}

func TestRenderObstacles(t *testing.T) {
	g := newTestGame(t)
	startGame(t, g)
	g.obstacles = append(g.obstacles, Obstacle{X: 400, Y: g.groundY - 24, W: 18, H: 24})

	s := core.NewScreen(80, 24)
	g.Snapshot().Render(s)

	if s.Get(40, 18) != ObstacleChar {
		t.Errorf("expected obstacle at (40, 18), got %q", s.Get(40, 18))
	}
	if strings.Contains(s.String(), "Enter to start") {
		t.Error("running frame should not show the start hint")
	}
}

func TestRenderGameOver(t *testing.T) {
	g := newTestGame(t)
	startGame(t, g)
	g.obstacles = append(g.obstacles, passedObstacle(g))
	g.Tick(0)
	g.obstacles = append(g.obstacles, Obstacle{X: g.actor.X, Y: g.groundY - 40, W: 20, H: 40})
	g.Tick(0)

	s := core.NewScreen(80, 24)
	g.Snapshot().Render(s)

	out := s.String()
	if !strings.Contains(out, "GAME OVER") {
		t.Error("game over frame should show the banner")
	}
	if !strings.Contains(out, "You cleared 1 obstacles. Score: 100") {
		t.Errorf("game over frame should show the result:\n%s", out)
	}
}

func TestRenderTinyScreens(t *testing.T) {
	g := newTestGame(t)
	for _, size := range [][2]int{{0, 0}, {10, 1}, {3, 3}, {1, 40}} {
		s := core.NewScreen(size[0], size[1])
		g.Snapshot().Render(s) // must not panic
	}
}
