package systems

import (
	"testing"
)

func TestDebrisFallsOffScreen(t *testing.T) {
	env := newTestEnv(t, 20, 40)
	task := NewDebrisTask(env.ctx, 10, env.ctx.Frames.Debris[0], 0.5)

	// 20 rows at 0.5 per tick: 40 suspended steps, completion on the next one
	for step := 1; step <= 40; step++ {
		if task.Step() {
			t.Fatalf("debris completed early at step %d", step)
		}
		if !env.ctx.Obstacles.Contains(task.Obstacle()) {
			t.Fatalf("step %d: obstacle not live while debris falls", step)
		}
		if got, want := task.Obstacle().Row, float64(step-1)*0.5; got != want {
			t.Fatalf("step %d: obstacle row = %v, want %v", step, got, want)
		}
	}

	if !task.Step() {
		t.Fatal("debris did not complete on step 41")
	}
	if env.ctx.Obstacles.Contains(task.Obstacle()) {
		t.Error("obstacle still live after debris completed")
	}
	if !env.blank() {
		t.Error("debris left glyphs on screen")
	}
}

func TestDebrisRegistersObstacleOnFirstStep(t *testing.T) {
	env := newTestEnv(t, 20, 40)
	task := NewDebrisTask(env.ctx, 5, env.ctx.Frames.Debris[0], 0.5)
	if env.ctx.Obstacles.Len() != 0 {
		t.Fatal("obstacle registered before the task started")
	}

	task.Step()
	o := task.Obstacle()
	if !env.ctx.Obstacles.Contains(o) {
		t.Fatal("obstacle not registered on first step")
	}
	if o.Rows != 2 || o.Columns != 3 || o.Column != 5 {
		t.Errorf("obstacle = %+v, want 2x3 at column 5", *o)
	}
	if env.glyph(0, 5) != '#' || env.glyph(1, 7) != '#' {
		t.Error("debris frame not drawn at the top edge")
	}
}

func TestDebrisColumnClamped(t *testing.T) {
	env := newTestEnv(t, 20, 40)

	tests := []struct {
		column, want float64
	}{
		{-5, 0},
		{100, 39},
		{12, 12},
	}
	for _, tt := range tests {
		task := NewDebrisTask(env.ctx, tt.column, env.ctx.Frames.Debris[0], 0.5)
		if got := task.Obstacle().Column; got != tt.want {
			t.Errorf("column %v clamped to %v, want %v", tt.column, got, tt.want)
		}
	}
}

func TestDebrisExplodesOnStepAfterHit(t *testing.T) {
	env := newTestEnv(t, 20, 40)
	task := NewDebrisTask(env.ctx, 10, env.ctx.Frames.Debris[0], 0.5)
	task.Step()
	task.Step()

	// What a shot does within its tick
	o := task.Obstacle()
	env.ctx.Hits.Mark(o)
	env.ctx.Obstacles.Remove(o)

	if task.Step() {
		t.Fatal("debris completed instead of starting its explosion")
	}
	if env.sound.explosions != 1 {
		t.Errorf("explosions = %d, want 1 on the step after the hit", env.sound.explosions)
	}
	if env.ctx.Hits.Len() != 0 {
		t.Error("hit record not consumed")
	}

	// Three explosion frames: two more drawn, then the erase step completes
	steps := 1
	for !task.Step() {
		steps++
		if steps > 10 {
			t.Fatal("explosion never completed")
		}
	}
	if steps != len(env.ctx.Frames.Explosion) {
		t.Errorf("explosion ran %d steps before completing, want %d", steps, len(env.ctx.Frames.Explosion))
	}
	if env.ctx.Obstacles.Len() != 0 {
		t.Error("obstacle reappeared after explosion")
	}
	if !env.blank() {
		t.Error("explosion left glyphs on screen")
	}
}
