package systems

import (
	"github.com/lixenwraith/rocket/constants"
	"github.com/lixenwraith/rocket/engine"
)

// SpawnAll registers the tasks of a new game. The calendar goes first so every
// other task observes the same year within a frame
func SpawnAll(ctx *engine.GameContext) {
	ctx.Spawn(NewYearTask(ctx))
	SpawnStars(ctx, ctx.Config.StarsCount)
	ctx.Spawn(NewSpawnerTask(ctx, constants.DebrisDelay))
	ctx.Spawn(NewShipTask(ctx))
	ctx.Spawn(NewYearDisplayTask(ctx))
	ctx.Spawn(NewPhraseTask(ctx, constants.Phrases))
}
