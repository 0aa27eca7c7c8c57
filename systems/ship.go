package systems

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/rocket/asset"
	"github.com/lixenwraith/rocket/constants"
	"github.com/lixenwraith/rocket/engine"
	"github.com/lixenwraith/rocket/physics"
)

// ShipTask moves and draws the player craft, fires the cannon and detects the fatal collision.
// Completes when the ship hits debris, handing over to the game over banner
type ShipTask struct {
	ctx    *engine.GameContext
	frames [2]asset.Frame
	tick   int

	drawn       bool
	drawnFrame  asset.Frame
	drawnRow    float64
	drawnColumn float64
}

// NewShipTask creates the ship task and centers the ship on screen
func NewShipTask(ctx *engine.GameContext) *ShipTask {
	frames := ctx.Frames.Rocket
	rows, columns := ctx.Canvas.Size()
	fr, fc := frames[0].Size()

	ctx.Ship = engine.Ship{
		Row:    physics.Clamp(float64(rows-fr)/2, 0, float64(rows-fr)),
		Column: physics.Clamp(float64(columns-fc)/2, 0, float64(columns-fc)),
	}
	return &ShipTask{ctx: ctx, frames: frames}
}

// frame picks the engine flicker frame, each one held for ShipFrameRepeat ticks
func (t *ShipTask) frame() asset.Frame {
	return t.frames[(t.tick/constants.ShipFrameRepeat)%len(t.frames)]
}

func (t *ShipTask) Step() bool {
	if t.drawn {
		t.ctx.Canvas.DrawFrame(t.drawnRow, t.drawnColumn, t.drawnFrame, true)
		t.drawn = false
	}

	controls := t.ctx.Input.ReadControls()
	ship := &t.ctx.Ship
	cfg := t.ctx.Config

	ship.RowSpeed, ship.ColumnSpeed = physics.UpdateSpeed(
		ship.RowSpeed, ship.ColumnSpeed,
		controls.Rows, controls.Columns,
		cfg.ShipSpeedLimit,
	)

	frame := t.frame()
	t.tick++
	fr, fc := frame.Size()
	rows, columns := t.ctx.Canvas.Size()

	ship.Row = physics.Clamp(ship.Row+float64(controls.Rows)*cfg.ShipSpeed+ship.RowSpeed, 0, float64(rows-fr))
	ship.Column = physics.Clamp(ship.Column+float64(controls.Columns)*cfg.ShipSpeed+ship.ColumnSpeed, 0, float64(columns-fc))

	// The shot leaves even when the ship is hit in the same tick
	if controls.Fire && t.ctx.CanFire() {
		t.ctx.Spawn(NewShotTask(t.ctx, ship.Row, ship.Column+float64(fc/2)))
		t.ctx.Log.Debug("shot fired", zap.Int("year", t.ctx.Year))
	}

	if o := t.ctx.Obstacles.FirstCollision(ship.Row, ship.Column, fr, fc); o != nil {
		t.ctx.GameOver = true
		t.ctx.Log.Info("ship destroyed", zap.Int("year", t.ctx.Year), zap.Float64("row", ship.Row), zap.Float64("column", ship.Column))
		t.ctx.Spawn(NewGameOverTask(t.ctx))
		return true
	}

	t.ctx.Canvas.DrawFrame(ship.Row, ship.Column, frame, false)
	t.drawn = true
	t.drawnFrame = frame
	t.drawnRow = ship.Row
	t.drawnColumn = ship.Column
	return false
}
