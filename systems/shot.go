package systems

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/rocket/constants"
	"github.com/lixenwraith/rocket/engine"
	"github.com/lixenwraith/rocket/terminal"
)

// ShotTask flies one cannon projectile. Completes on its first hit or when it leaves the screen
type ShotTask struct {
	ctx         *engine.GameContext
	row         float64
	column      float64
	rowSpeed    float64
	columnSpeed float64
	symbol      string

	flash int // muzzle flash frames shown so far
}

// NewShotTask creates a shot at the ship's nose using the configured speeds
func NewShotTask(ctx *engine.GameContext, row, column float64) *ShotTask {
	symbol := string(constants.ShotGlyph)
	if ctx.Config.ShotColumnSpeed != 0 {
		symbol = string(constants.ShotSideGlyph)
	}
	return &ShotTask{
		ctx:         ctx,
		row:         row,
		column:      column,
		rowSpeed:    ctx.Config.ShotRowSpeed,
		columnSpeed: ctx.Config.ShotColumnSpeed,
		symbol:      symbol,
	}
}

func (t *ShotTask) Step() bool {
	flash := []rune(constants.MuzzleFlashGlyphs)
	if t.flash < len(flash) {
		if t.flash == 0 {
			t.ctx.Sound.PlayShot()
		}
		t.ctx.Canvas.DrawText(t.row, t.column, string(flash[t.flash]), terminal.AttrNone, false)
		t.flash++
		return false
	}

	t.ctx.Canvas.DrawText(t.row, t.column, t.symbol, terminal.AttrNone, true)
	t.row += t.rowSpeed
	t.column += t.columnSpeed

	rows, columns := t.ctx.Canvas.Size()
	maxRow, maxColumn := float64(rows-1), float64(columns-1)
	if !(0 < t.row && t.row < maxRow && 0 < t.column && t.column < maxColumn) {
		return true
	}

	if o := t.ctx.Obstacles.FirstCollision(t.row, t.column, 1, 1); o != nil {
		t.ctx.Hits.Mark(o)
		t.ctx.Obstacles.Remove(o)
		t.ctx.Log.Info("obstacle hit", zap.Float64("row", t.row), zap.Float64("column", t.column))
		return true
	}

	t.ctx.Canvas.DrawText(t.row, t.column, t.symbol, terminal.AttrNone, false)
	return false
}
