package systems

import (
	"testing"

	"github.com/lixenwraith/rocket/engine"
)

func TestShotMuzzleFlashThenFlight(t *testing.T) {
	env := newTestEnv(t, 20, 20)
	env.ctx.Config.ShotRowSpeed = -1
	task := NewShotTask(env.ctx, 10, 5)

	task.Step()
	if env.glyph(10, 5) != '*' {
		t.Errorf("first frame = %q, want '*'", env.glyph(10, 5))
	}
	if env.sound.shots != 1 {
		t.Errorf("shot sounds = %d, want 1", env.sound.shots)
	}

	task.Step()
	if env.glyph(10, 5) != 'O' {
		t.Errorf("second frame = %q, want 'O'", env.glyph(10, 5))
	}

	task.Step()
	if env.glyph(10, 5) != ' ' || env.glyph(9, 5) != '|' {
		t.Errorf("after first advance: (10,5)=%q (9,5)=%q, want blank and '|'", env.glyph(10, 5), env.glyph(9, 5))
	}
}

func TestShotLeavesScreenWithoutHit(t *testing.T) {
	env := newTestEnv(t, 20, 20)
	env.ctx.Config.ShotRowSpeed = -1
	task := NewShotTask(env.ctx, 5, 5)

	steps := 0
	for !task.Step() {
		steps++
		if steps > 100 {
			t.Fatal("shot never completed")
		}
	}
	// two flash steps, rows 4..1 in flight, row 0 ends the flight
	if steps != 6 {
		t.Errorf("shot completed after %d running steps, want 6", steps)
	}
	if !env.blank() {
		t.Error("shot left glyphs on screen")
	}
}

func TestShotRemovesOnlyFirstObstacle(t *testing.T) {
	env := newTestEnv(t, 20, 20)
	env.ctx.Config.ShotRowSpeed = -1

	first := engine.NewObstacle(2, 3, 3, 5)
	second := engine.NewObstacle(2, 3, 3, 5)
	far := engine.NewObstacle(2, 15, 3, 3)
	env.ctx.Obstacles.Add(first)
	env.ctx.Obstacles.Add(second)
	env.ctx.Obstacles.Add(far)

	task := NewShotTask(env.ctx, 10, 5)
	for i := 0; !task.Step(); i++ {
		if i > 100 {
			t.Fatal("shot never completed")
		}
	}

	if env.ctx.Obstacles.Contains(first) {
		t.Error("first overlapping obstacle not removed")
	}
	if !env.ctx.Obstacles.Contains(second) || !env.ctx.Obstacles.Contains(far) {
		t.Error("shot removed more than one obstacle")
	}
	if !env.ctx.Hits.Take(first) {
		t.Error("hit not recorded for the removed obstacle")
	}
	if env.ctx.Hits.Len() != 0 {
		t.Error("extra hits recorded")
	}
}

func TestShotHitAndExplosionTiming(t *testing.T) {
	env := newTestEnv(t, 30, 30)
	env.ctx.Config.ShotRowSpeed = -1
	s := env.ctx.Scheduler

	debris := NewDebrisTask(env.ctx, 10, env.ctx.Frames.Debris[0], 0.5)
	env.ctx.Spawn(debris)
	env.ctx.Spawn(NewShotTask(env.ctx, 12, 11))

	hitFrame := -1
	for frame := 0; frame < 40; frame++ {
		s.Tick()
		if env.ctx.Obstacles.Len() == 0 {
			hitFrame = frame
			break
		}
	}
	if hitFrame < 0 {
		t.Fatal("shot never hit the debris")
	}

	// Same tick: removed from the live collection and marked, no explosion yet
	if env.ctx.Hits.Len() != 1 {
		t.Errorf("hits after frame %d = %d, want 1", hitFrame, env.ctx.Hits.Len())
	}
	if env.sound.explosions != 0 {
		t.Error("explosion started in the hit frame")
	}

	// Next tick: the debris takes its explosion branch
	s.Tick()
	if env.sound.explosions != 1 {
		t.Errorf("explosions after frame %d = %d, want 1", hitFrame+1, env.sound.explosions)
	}
	if env.ctx.Hits.Len() != 0 {
		t.Error("hit not consumed by the debris")
	}

	for i := 0; i < 10; i++ {
		s.Tick()
	}
	if s.Len() != 0 {
		t.Errorf("tasks still live after explosion: %d", s.Len())
	}
}
