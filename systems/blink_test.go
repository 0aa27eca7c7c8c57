package systems

import (
	"testing"

	"github.com/lixenwraith/rocket/terminal"
)

func TestBlinkCycle(t *testing.T) {
	env := newTestEnv(t, 10, 10)
	task := NewBlinkTask(env.ctx, 4, 5, 2, '*')

	// step number (1-based) at which the star changes, and the attribute it changes to
	changes := map[int]terminal.Attr{
		3:  terminal.AttrDim,
		23: terminal.AttrNone,
		26: terminal.AttrBold,
		31: terminal.AttrNone,
		34: terminal.AttrDim,
		54: terminal.AttrNone,
	}

	prevDrawn := false
	var prevAttr terminal.Attr
	for step := 1; step <= 60; step++ {
		if task.Step() {
			t.Fatalf("star completed at step %d", step)
		}
		r, attr := env.screen.Glyph(4, 5)

		if step < 3 {
			if r != ' ' {
				t.Fatalf("step %d: star drawn during offset", step)
			}
			continue
		}
		if r != '*' {
			t.Fatalf("step %d: glyph = %q, want '*'", step, r)
		}

		if want, ok := changes[step]; ok {
			if attr != want {
				t.Errorf("step %d: attr = %d, want %d", step, attr, want)
			}
		} else if prevDrawn && attr != prevAttr {
			t.Errorf("step %d: unexpected attr change %d -> %d", step, prevAttr, attr)
		}
		prevDrawn, prevAttr = true, attr
	}
}

func TestBlinkZeroOffsetDrawsImmediately(t *testing.T) {
	env := newTestEnv(t, 10, 10)
	task := NewBlinkTask(env.ctx, 1, 1, 0, '+')
	task.Step()

	r, attr := env.screen.Glyph(1, 1)
	if r != '+' || attr != terminal.AttrDim {
		t.Errorf("after first step glyph = (%q, %d), want ('+', dim)", r, attr)
	}
}

func TestSpawnStarsInsideBorder(t *testing.T) {
	env := newTestEnv(t, 12, 30)
	SpawnStars(env.ctx, 200)
	if env.ctx.Scheduler.Len() != 200 {
		t.Fatalf("scheduled %d stars, want 200", env.ctx.Scheduler.Len())
	}

	// Run past the largest offset so every star has drawn
	for i := 0; i < 12; i++ {
		env.ctx.Scheduler.Tick()
	}

	rows, columns := env.screen.Size()
	for row := 0; row < rows; row++ {
		for col := 0; col < columns; col++ {
			onBorder := row == 0 || col == 0 || row == rows-1 || col == columns-1
			if onBorder && env.glyph(row, col) != ' ' {
				t.Errorf("star drawn on border at (%d,%d)", row, col)
			}
		}
	}
	if env.blank() {
		t.Error("no stars drawn")
	}
}
