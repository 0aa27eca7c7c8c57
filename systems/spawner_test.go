package systems

import (
	"testing"
)

func TestSpawnerWaitsThenSpawns(t *testing.T) {
	env := newTestEnv(t, 20, 40)
	task := NewSpawnerTask(env.ctx, func(int) (int, bool) { return 3, true })

	for step := 1; step <= 3; step++ {
		if task.Step() {
			t.Fatal("spawner completed")
		}
		if n := env.ctx.Scheduler.Len(); n != 0 {
			t.Fatalf("step %d: %d debris spawned during the delay", step, n)
		}
	}

	task.Step()
	if n := env.ctx.Scheduler.Len(); n != 1 {
		t.Fatalf("debris after step 4 = %d, want 1", n)
	}

	for step := 0; step < 3; step++ {
		task.Step()
	}
	if n := env.ctx.Scheduler.Len(); n != 2 {
		t.Errorf("debris after step 7 = %d, want 2", n)
	}
}

func TestSpawnerIdleWithoutDelay(t *testing.T) {
	env := newTestEnv(t, 20, 40)
	years := 0
	task := NewSpawnerTask(env.ctx, func(int) (int, bool) {
		years++
		return 0, false
	})

	for step := 0; step < 50; step++ {
		if task.Step() {
			t.Fatal("spawner completed")
		}
	}
	if n := env.ctx.Scheduler.Len(); n != 0 {
		t.Errorf("debris spawned while idle: %d", n)
	}
	// idle spawner re-checks the year every tick
	if years != 50 {
		t.Errorf("delay consulted %d times, want 50", years)
	}
}

func TestSpawnedDebrisFalls(t *testing.T) {
	env := newTestEnv(t, 20, 40)
	env.ctx.Spawn(NewSpawnerTask(env.ctx, func(int) (int, bool) { return 1, true }))

	env.ctx.Scheduler.Tick()
	env.ctx.Scheduler.Tick()
	env.ctx.Scheduler.Tick()
	if env.ctx.Obstacles.Len() == 0 {
		t.Fatal("spawned debris never registered its obstacle")
	}
	for _, o := range env.ctx.Obstacles.All() {
		if o.Column < 0 || o.Column > 39 {
			t.Errorf("debris column %v off screen", o.Column)
		}
	}
}
