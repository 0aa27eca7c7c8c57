package systems

import (
	"github.com/lixenwraith/rocket/constants"
	"github.com/lixenwraith/rocket/engine"
	"github.com/lixenwraith/rocket/terminal"
)

// blinkCycle is the repeating brightness sequence of a star and the ticks each step is held
var blinkCycle = [...]struct {
	attr  terminal.Attr
	ticks int
}{
	{terminal.AttrDim, constants.StarDimTicks},
	{terminal.AttrNone, constants.StarNormalTicks},
	{terminal.AttrBold, constants.StarBoldTicks},
	{terminal.AttrNone, constants.StarNormalTicks},
}

// BlinkTask animates one star at a fixed position. It never completes
type BlinkTask struct {
	ctx    *engine.GameContext
	row    int
	column int
	symbol string
	offset int

	started bool
	next    int
	sleep   engine.Sleep
}

// NewBlinkTask creates a star that waits offset ticks before its first blink cycle
func NewBlinkTask(ctx *engine.GameContext, row, column, offset int, symbol rune) *BlinkTask {
	return &BlinkTask{
		ctx:    ctx,
		row:    row,
		column: column,
		symbol: string(symbol),
		offset: offset,
	}
}

func (t *BlinkTask) Step() bool {
	if t.sleep.Waiting() {
		return false
	}

	if !t.started {
		t.started = true
		if t.offset > 0 {
			t.sleep.For(t.offset)
			return false
		}
	}

	phase := blinkCycle[t.next]
	t.ctx.Canvas.DrawText(float64(t.row), float64(t.column), t.symbol, phase.attr, false)
	t.sleep.For(phase.ticks)
	t.next = (t.next + 1) % len(blinkCycle)
	return false
}

// SpawnStars scatters count stars inside the screen border with random offsets and symbols
func SpawnStars(ctx *engine.GameContext, count int) {
	rows, columns := ctx.Canvas.Size()
	symbols := []rune(constants.StarSymbols)

	for i := 0; i < count; i++ {
		row := randomBetween(ctx, constants.BorderSize, rows-1-constants.BorderSize)
		column := randomBetween(ctx, constants.BorderSize, columns-1-constants.BorderSize)
		offset := ctx.Rand.Intn(constants.StarMaxOffsetTicks + 1)
		symbol := symbols[ctx.Rand.Intn(len(symbols))]
		ctx.Spawn(NewBlinkTask(ctx, row, column, offset, symbol))
	}
}

// randomBetween returns a random int in [lo, hi], or lo when the range is empty
func randomBetween(ctx *engine.GameContext, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + ctx.Rand.Intn(hi-lo+1)
}
