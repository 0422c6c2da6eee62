package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/squirrel-run/internal/core"
)

var keyActions = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeyEscape, core.ActionQuit},
	{ebiten.KeySpace, core.ActionJump},
	{ebiten.KeyArrowUp, core.ActionJump},
	{ebiten.KeyW, core.ActionJump},
	{ebiten.KeyEnter, core.ActionStart},
	{ebiten.KeyR, core.ActionReset},
}

// pollActions returns the actions for keys pressed since the previous frame.
// A mouse click or touch also jumps.
func pollActions() []core.Action {
	var actions []core.Action
	for _, ka := range keyActions {
		if inpututil.IsKeyJustPressed(ka.key) {
			actions = append(actions, ka.action)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		actions = append(actions, core.ActionJump)
	}
	return actions
}
