package systems

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/lixenwraith/rocket/constants"
	"github.com/lixenwraith/rocket/engine"
	"github.com/lixenwraith/rocket/terminal"
)

// YearTask advances the simulated calendar by one year every YearChangeTicks.
// It is the only writer of GameContext.Year and completes once the real-world year is reached
type YearTask struct {
	ctx   *engine.GameContext
	armed bool
	sleep engine.Sleep
}

// NewYearTask creates the calendar task; the first year change happens YearChangeTicks after its first step
func NewYearTask(ctx *engine.GameContext) *YearTask {
	return &YearTask{ctx: ctx}
}

func (t *YearTask) Step() bool {
	if t.sleep.Waiting() {
		return false
	}

	if t.armed {
		t.armed = false
		t.ctx.Year++
		if _, ok := constants.Phrases[t.ctx.Year]; ok {
			t.ctx.Log.Info("milestone year", zap.Int("year", t.ctx.Year))
		}
	}

	if t.ctx.Year >= t.ctx.MaxYear() {
		t.ctx.Log.Info("calendar stopped", zap.Int("year", t.ctx.Year))
		return true
	}

	t.sleep.For(t.ctx.Config.YearChangeTicks)
	t.armed = true
	return false
}

// YearDisplayTask renders the current year near the bottom-left corner every tick
type YearDisplayTask struct {
	ctx *engine.GameContext
}

// NewYearDisplayTask creates the status line task showing the year
func NewYearDisplayTask(ctx *engine.GameContext) *YearDisplayTask {
	return &YearDisplayTask{ctx: ctx}
}

func (t *YearDisplayTask) Step() bool {
	rows, _ := t.ctx.Canvas.Size()
	text := fmt.Sprintf(constants.YearFormat, t.ctx.Year)
	t.ctx.Canvas.DrawText(float64(rows-constants.YearRowOffset), constants.StatusColumn, text, terminal.AttrBold, false)
	return false
}

// PhraseTask shows the scripted phrase of a year once, for PhraseHoldTicks
type PhraseTask struct {
	ctx     *engine.GameContext
	phrases map[int]string

	shownYear int
	text      string
	row       float64
	showing   bool
	holding   int
}

// NewPhraseTask creates the task over the given year to phrase table
func NewPhraseTask(ctx *engine.GameContext, phrases map[int]string) *PhraseTask {
	return &PhraseTask{ctx: ctx, phrases: phrases}
}

func (t *PhraseTask) Step() bool {
	// Redrawn while held, other tasks may erase cells under it
	if t.holding > 0 {
		t.holding--
		t.draw(false)
		return false
	}

	if t.showing {
		t.draw(true)
		t.showing = false
	}

	year := t.ctx.Year
	phrase, ok := t.phrases[year]
	if !ok || year == t.shownYear {
		return false
	}

	rows, _ := t.ctx.Canvas.Size()
	t.shownYear = year
	t.text = phrase
	t.row = float64(rows - constants.PhraseRowOffset)
	t.showing = true
	t.holding = t.ctx.Config.PhraseHoldTicks - 1
	t.draw(false)
	return false
}

func (t *PhraseTask) draw(negative bool) {
	t.ctx.Canvas.DrawText(t.row, constants.StatusColumn, t.text, terminal.AttrNone, negative)
}
