package systems

import (
	"github.com/lixenwraith/rocket/engine"
)

// GameOverTask keeps the end banner centered on screen. It never completes
type GameOverTask struct {
	ctx *engine.GameContext
}

// NewGameOverTask creates the end banner task
func NewGameOverTask(ctx *engine.GameContext) *GameOverTask {
	return &GameOverTask{ctx: ctx}
}

func (t *GameOverTask) Step() bool {
	banner := t.ctx.Frames.GameOver
	rows, columns := t.ctx.Canvas.Size()
	fr, fc := banner.Size()
	t.ctx.Canvas.DrawFrame(float64(rows-fr)/2, float64(columns-fc)/2, banner, false)
	return false
}
