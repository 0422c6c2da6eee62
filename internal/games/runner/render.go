package runner

import (
	"fmt"
	"math"

	"github.com/vovakirdan/squirrel-run/internal/core"
)

// Visual characters for terminal rendering
const (
	ActorBody    = '█'
	ActorEye     = '•'
	ActorTail    = '§'
	ObstacleChar = '▓'
	GroundChar   = '▒'
	GroundLine   = '═'
)

// hudRows is the number of screen rows reserved above the field.
const hudRows = 1

// Render draws the snapshot onto a character screen, scaling the pixel field to fit.
func (s Snapshot) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() <= hudRows || s.FieldW <= 0 || s.FieldH <= 0 {
		return
	}

	p := newProjection(s, dst)

	// Ground strip
	groundRow := p.row(s.GroundY)
	dst.DrawHLine(0, groundRow, dst.Width(), GroundLine, core.ColorGround)
	dst.Fill(0, groundRow+1, dst.Width(), dst.Height()-groundRow-1, GroundChar, core.ColorGround)

	for _, o := range s.Obstacles {
		x, y, w, h := p.rect(o.Rect())
		dst.Fill(x, y, w, h, ObstacleChar, core.ColorObstacle)
	}

	s.drawActor(dst, p)
	s.drawHUD(dst)

	switch s.State.Phase {
	case PhaseIdle:
		drawCenteredMessage(dst, "SQUIRREL RUN", "Enter to start  |  Space to jump", core.ColorHUD)
	case PhaseGameOver:
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("You cleared %d obstacles. Score: %d  |  R to reset", s.State.Passed, s.State.Score),
			core.ColorAlert)
	}
}

// drawActor renders the squirrel: a solid body with an eye on the leading edge
// and a tail on the trailing one.
func (s Snapshot) drawActor(dst *core.Screen, p projection) {
	x, y, w, h := p.rect(s.Actor.Rect())
	dst.Fill(x, y, w, h, ActorBody, core.ColorActor)
	dst.Set(x+w-1, y, ActorEye, core.ColorHUD)
	if w > 1 {
		dst.Set(x-1, y, ActorTail, core.ColorActor)
	}
}

func (s Snapshot) drawHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Score: %d  Passed: %d ", s.State.Score, s.State.Passed)
	dst.DrawText(1, 0, hud, core.ColorHUD)

	speed := fmt.Sprintf(" Speed: %.2fx ", s.State.SpeedMultiplier)
	dst.DrawText(dst.Width()-len(speed)-1, 0, speed, core.ColorMuted)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string, c core.Color) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Clamp(max(len(title), len([]rune(subtitle)))+4, 0, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.Fill(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, c)
	dst.DrawTextCentered(boxY+1, title, c)
	dst.DrawTextCentered(boxY+3, subtitle, core.ColorDefault)
}

// projection maps field pixels to screen cells below the HUD.
type projection struct {
	sx, sy float64
	rows   int
}

func newProjection(s Snapshot, dst *core.Screen) projection {
	rows := dst.Height() - hudRows
	return projection{
		sx:   float64(dst.Width()) / s.FieldW,
		sy:   float64(rows) / s.FieldH,
		rows: rows,
	}
}

// row returns the first row at or below y, so a line drawn there sits under
// anything resting on y.
func (p projection) row(y float64) int {
	return hudRows + core.Clamp(int(math.Ceil(y*p.sy)), 0, p.rows-1)
}

// rect returns the cells covered by r. Anything visible gets at least one cell.
func (p projection) rect(r core.Rect) (x, y, w, h int) {
	x0 := int(math.Floor(r.X * p.sx))
	x1 := int(math.Ceil(r.Right() * p.sx))
	y0 := int(math.Floor(r.Y * p.sy))
	y1 := int(math.Ceil(r.Bottom() * p.sy))
	return x0, hudRows + y0, max(x1-x0, 1), max(y1-y0, 1)
}
