package engine

import (
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/rocket/asset"
	"github.com/lixenwraith/rocket/constants"
	"github.com/lixenwraith/rocket/terminal"
)

// Canvas is the drawing surface shared by all tasks
type Canvas interface {
	Size() (rows, columns int)
	DrawFrame(row, column float64, f asset.Frame, negative bool)
	DrawText(row, column float64, text string, attr terminal.Attr, negative bool)
}

// Input reports the controls pressed since the previous poll
type Input interface {
	ReadControls() terminal.Controls
}

// Sound plays the game's audible cues
type Sound interface {
	PlayShot()
	PlayExplosion()
}

// NopSound discards every cue
type NopSound struct{}

func (NopSound) PlayShot()      {}
func (NopSound) PlayExplosion() {}

// Config holds the tunables of one run
type Config struct {
	StartYear       int
	CanFireYear     int
	YearChangeTicks int
	PhraseHoldTicks int

	ShipSpeed       float64
	ShipSpeedLimit  float64
	ShotRowSpeed    float64
	ShotColumnSpeed float64
	DebrisSpeed     float64

	StarsCount int
}

// DefaultConfig returns the built-in tunables
func DefaultConfig() Config {
	return Config{
		StartYear:       constants.StartYear,
		CanFireYear:     constants.CanFireYear,
		YearChangeTicks: constants.YearChangeTicks,
		PhraseHoldTicks: constants.PhraseHoldTicks,
		ShipSpeed:       constants.ShipSpeed,
		ShipSpeedLimit:  constants.ShipSpeedLimit,
		ShotRowSpeed:    constants.ShotRowSpeed,
		ShotColumnSpeed: constants.ShotColumnSpeed,
		DebrisSpeed:     constants.DebrisSpeed,
		StarsCount:      constants.StarsCount,
	}
}

// Ship is the player craft's position and velocity
type Ship struct {
	Row         float64
	Column      float64
	RowSpeed    float64
	ColumnSpeed float64
}

// GameContext is the simulation state shared by every task.
// All access happens on the scheduler goroutine, one task at a time, so nothing here is locked
type GameContext struct {
	// ===== Immutable After Init =====

	Config Config
	Canvas Canvas
	Input  Input
	Sound  Sound
	Frames *asset.Set
	Log    *zap.Logger
	Clock  Clock
	Rand   *rand.Rand

	Scheduler *Scheduler

	// ===== Simulation State =====

	Obstacles *Obstacles
	Hits      *HitSet
	Year      int // written only by the year task
	Ship      Ship
	GameOver  bool
}

// NewGameContext creates a context with a fresh scheduler, nop sound and logger, system clock and time seeded RNG.
// Callers replace Sound, Log, Clock and Rand as needed before adding tasks
func NewGameContext(cfg Config, canvas Canvas, input Input, frames *asset.Set) *GameContext {
	log := zap.NewNop()
	return &GameContext{
		Config:    cfg,
		Canvas:    canvas,
		Input:     input,
		Sound:     NopSound{},
		Frames:    frames,
		Log:       log,
		Clock:     SystemClock{},
		Rand:      rand.New(rand.NewSource(time.Now().UnixNano())),
		Scheduler: NewScheduler(log),
		Obstacles: NewObstacles(),
		Hits:      NewHitSet(),
		Year:      min(cfg.StartYear, time.Now().Year()),
	}
}

// SetClock replaces the wall clock, capping the simulated year at its current year
func (ctx *GameContext) SetClock(c Clock) {
	ctx.Clock = c
	ctx.Year = min(ctx.Year, ctx.MaxYear())
}

// SetLogger replaces the logger of the context and its scheduler
func (ctx *GameContext) SetLogger(log *zap.Logger) {
	ctx.Log = log
	ctx.Scheduler.log = log
}

// Spawn adds a task to the scheduler; it starts on the next frame
func (ctx *GameContext) Spawn(t Task) {
	ctx.Scheduler.Add(t)
}

// MaxYear is the real-world current year, the ceiling of the simulated calendar
func (ctx *GameContext) MaxYear() int {
	return ctx.Clock.Now().Year()
}

// CanFire reports whether the cannon is enabled in the current year
func (ctx *GameContext) CanFire() bool {
	return ctx.Year >= ctx.Config.CanFireYear
}
