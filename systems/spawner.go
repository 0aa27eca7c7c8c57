package systems

import (
	"github.com/lixenwraith/rocket/engine"
)

// DelayFunc returns the ticks to wait before the next debris in a year; ok is false when none falls
type DelayFunc func(year int) (ticks int, ok bool)

// SpawnerTask launches debris at a year-dependent rate. It never completes
type SpawnerTask struct {
	ctx   *engine.GameContext
	delay DelayFunc
	armed bool
	sleep engine.Sleep
}

// NewSpawnerTask creates a spawner that asks delay for the wait before each debris
func NewSpawnerTask(ctx *engine.GameContext, delay DelayFunc) *SpawnerTask {
	return &SpawnerTask{ctx: ctx, delay: delay}
}

func (t *SpawnerTask) Step() bool {
	if t.sleep.Waiting() {
		return false
	}

	if t.armed {
		t.armed = false
		t.spawn()
	}

	ticks, ok := t.delay(t.ctx.Year)
	if !ok {
		return false
	}
	t.sleep.For(ticks)
	t.armed = true
	return false
}

// spawn launches one debris with a random column and frame
func (t *SpawnerTask) spawn() {
	debris := t.ctx.Frames.Debris
	if len(debris) == 0 {
		return
	}
	_, columns := t.ctx.Canvas.Size()
	column := t.ctx.Rand.Intn(max(columns, 1))
	frame := debris[t.ctx.Rand.Intn(len(debris))]
	t.ctx.Spawn(NewDebrisTask(t.ctx, float64(column), frame, t.ctx.Config.DebrisSpeed))
}
