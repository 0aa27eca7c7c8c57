package systems

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/rocket/asset"
	"github.com/lixenwraith/rocket/engine"
	"github.com/lixenwraith/rocket/physics"
)

// DebrisTask drops one piece of debris down the screen and owns its obstacle.
// Completes when the debris leaves the bottom edge or after its explosion when shot down
type DebrisTask struct {
	ctx      *engine.GameContext
	frame    asset.Frame
	obstacle *engine.Obstacle
	row      float64
	column   float64
	speed    float64

	started   bool
	explosion *ExplosionTask
}

// NewDebrisTask creates debris at the top edge; column is clamped to the screen width
func NewDebrisTask(ctx *engine.GameContext, column float64, frame asset.Frame, speed float64) *DebrisTask {
	_, columns := ctx.Canvas.Size()
	column = physics.Clamp(column, 0, float64(columns-1))

	rows, cols := frame.Size()
	return &DebrisTask{
		ctx:      ctx,
		frame:    frame,
		obstacle: engine.NewObstacle(0, column, rows, cols),
		column:   column,
		speed:    speed,
	}
}

// Obstacle returns the collision rectangle owned by this debris
func (t *DebrisTask) Obstacle() *engine.Obstacle {
	return t.obstacle
}

func (t *DebrisTask) Step() bool {
	if t.explosion != nil {
		return t.explosion.Step()
	}

	if !t.started {
		t.started = true
		t.ctx.Obstacles.Add(t.obstacle)
	} else {
		t.ctx.Canvas.DrawFrame(t.row, t.column, t.frame, true)

		// The shot already removed the obstacle from the live collection
		if t.ctx.Hits.Take(t.obstacle) {
			rows, columns := t.frame.Size()
			t.ctx.Log.Info("debris destroyed", zap.Float64("row", t.row), zap.Float64("column", t.column))
			t.explosion = NewExplosionTask(t.ctx, t.row+float64(rows)/2, t.column+float64(columns)/2)
			return t.explosion.Step()
		}

		t.row += t.speed
	}

	rows, _ := t.ctx.Canvas.Size()
	if t.row >= float64(rows) {
		t.ctx.Obstacles.Remove(t.obstacle)
		return true
	}

	t.obstacle.Row = t.row
	t.obstacle.Column = t.column
	t.ctx.Canvas.DrawFrame(t.row, t.column, t.frame, false)
	return false
}
