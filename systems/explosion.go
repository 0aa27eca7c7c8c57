package systems

import (
	"github.com/lixenwraith/rocket/asset"
	"github.com/lixenwraith/rocket/engine"
)

// ExplosionTask plays the explosion frames centered on a point, one frame per tick
type ExplosionTask struct {
	ctx    *engine.GameContext
	frames []asset.Frame
	row    float64
	column float64

	index   int
	started bool
}

// NewExplosionTask creates an explosion centered at (centerRow, centerColumn)
func NewExplosionTask(ctx *engine.GameContext, centerRow, centerColumn float64) *ExplosionTask {
	frames := ctx.Frames.Explosion
	var rows, columns int
	if len(frames) > 0 {
		rows, columns = frames[0].Size()
	}
	return &ExplosionTask{
		ctx:    ctx,
		frames: frames,
		row:    centerRow - float64(rows)/2,
		column: centerColumn - float64(columns)/2,
	}
}

func (t *ExplosionTask) Step() bool {
	if !t.started {
		t.started = true
		t.ctx.Sound.PlayExplosion()
	} else {
		t.ctx.Canvas.DrawFrame(t.row, t.column, t.frames[t.index], true)
		t.index++
	}

	if t.index >= len(t.frames) {
		return true
	}
	t.ctx.Canvas.DrawFrame(t.row, t.column, t.frames[t.index], false)
	return false
}
