package desktop

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/squirrel-run/internal/games/runner"
)

var (
	skyTop      = color.NRGBA{0xcf, 0xef, 0xff, 0xff}
	skyBottom   = color.NRGBA{0xea, 0xf7, 0xff, 0xff}
	cloudColor  = color.NRGBA{0xff, 0xff, 0xff, 0xe6}
	groundColor = color.NRGBA{0x8d, 0xbb, 0x6b, 0xff}
	grassColor  = color.NRGBA{0x00, 0x00, 0x00, 0x10}
	actorColor  = color.NRGBA{0xb0, 0x5a, 0x2d, 0xff}
	tailColor   = color.NRGBA{0x9b, 0x6b, 0x3a, 0xff}
	eyeColor    = color.NRGBA{0x11, 0x11, 0x11, 0xff}
	obstColor   = color.NRGBA{0x35, 0x68, 0x59, 0xff}
	hudColor    = color.NRGBA{0x22, 0x11, 0x44, 0xff}
	dimColor    = color.NRGBA{0x00, 0x00, 0x00, 0x99}
)

const skyBands = 16

// Draw paints the current snapshot.
func (w *Window) Draw(screen *ebiten.Image) {
	s := w.game.Snapshot()
	fw, fh := float32(s.FieldW), float32(s.FieldH)

	drawSky(screen, fw, fh)
	w.drawClouds(screen, fw)
	drawGround(screen, s, fw, fh)

	for _, o := range s.Obstacles {
		vector.DrawFilledRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), obstColor, true)
	}

	drawActor(screen, s.Actor)

	text.Draw(screen, fmt.Sprintf("Score: %d", s.State.Score), basicfont.Face7x13, 12, 22, hudColor)
	text.Draw(screen, fmt.Sprintf("Passed: %d", s.State.Passed), basicfont.Face7x13, 12, 40, hudColor)
	text.Draw(screen, fmt.Sprintf("Speed: %.2fx", s.State.SpeedMultiplier), basicfont.Face7x13, int(fw)-110, 22, hudColor)

	switch s.State.Phase {
	case runner.PhaseIdle:
		drawOverlay(screen, fw, fh, "SQUIRREL RUN", "Enter to start, Space to jump")
	case runner.PhaseGameOver:
		drawOverlay(screen, fw, fh, "GAME OVER",
			fmt.Sprintf("You cleared %d obstacles. Score: %d", s.State.Passed, s.State.Score))
	}
}

// drawSky approximates a vertical gradient with horizontal bands.
func drawSky(screen *ebiten.Image, fw, fh float32) {
	band := fh / skyBands
	for i := range skyBands {
		t := float64(i) / (skyBands - 1)
		vector.DrawFilledRect(screen, 0, float32(i)*band, fw, band+1, lerp(skyTop, skyBottom, t), false)
	}
}

func (w *Window) drawClouds(screen *ebiten.Image, fw float32) {
	drift := float32(w.frames) * 0.2
	span := fw + 100
	for i := range 3 {
		cx := float32(math.Mod(float64(float32(i)*300+drift), float64(span))) - 60
		cy := float32(50 + i*10)
		r := float32(18 + i*4)
		vector.DrawFilledCircle(screen, cx, cy, r, cloudColor, true)
		vector.DrawFilledCircle(screen, cx+r, cy+4, r*0.8, cloudColor, true)
		vector.DrawFilledCircle(screen, cx-r, cy+4, r*0.7, cloudColor, true)
	}
}

func drawGround(screen *ebiten.Image, s runner.Snapshot, fw, fh float32) {
	gy := float32(s.GroundY)
	vector.DrawFilledRect(screen, 0, gy, fw, fh-gy, groundColor, false)
	for x := float32(0); x < fw; x += 30 {
		vector.StrokeLine(screen, x, gy, x+10, gy-6, 1, grassColor, true)
	}
}

func drawActor(screen *ebiten.Image, a runner.Actor) {
	x, y, w, h := float32(a.X), float32(a.Y), float32(a.W), float32(a.H)
	vector.DrawFilledRect(screen, x, y, w, h, actorColor, true)
	vector.DrawFilledCircle(screen, x+10, y+8, 10, tailColor, true)
	vector.DrawFilledCircle(screen, x+w-18, y+10, 3, eyeColor, true)
}

func drawOverlay(screen *ebiten.Image, fw, fh float32, title, subtitle string) {
	vector.DrawFilledRect(screen, 0, 0, fw, fh, dimColor, false)

	face := basicfont.Face7x13
	tw := len(title) * face.Advance
	sw := len(subtitle) * face.Advance
	text.Draw(screen, title, face, (int(fw)-tw)/2, int(fh)/2-8, color.White)
	text.Draw(screen, subtitle, face, (int(fw)-sw)/2, int(fh)/2+16, color.White)
}

func lerp(a, b color.NRGBA, t float64) color.NRGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.NRGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), 0xff}
}
