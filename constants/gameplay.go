package constants

// Starfield
const (
	// StarsCount is the number of blinking stars placed at startup
	StarsCount = 100

	// StarSymbols is the alphabet a star picks its glyph from
	StarSymbols = "+*.:"

	// StarMaxOffsetTicks bounds the random initial blink offset (inclusive)
	StarMaxOffsetTicks = 10
)

// Star blink phase durations in ticks
const (
	StarDimTicks    = 20
	StarNormalTicks = 3
	StarBoldTicks   = 5
)

// Ship
const (
	// ShipSpeed is the per-tick step added for a held direction
	ShipSpeed = 2

	// ShipSpeedLimit caps the accumulated velocity on each axis
	ShipSpeedLimit = 2.0

	// ShipFrameRepeat is how many ticks each engine frame stays on screen
	ShipFrameRepeat = 2
)

// Projectiles and debris
const (
	// ShotRowSpeed is the per-tick row delta of a cannon shot (negative is up)
	ShotRowSpeed = -0.3

	// ShotColumnSpeed is the per-tick column delta of a cannon shot
	ShotColumnSpeed = 0.0

	// DebrisSpeed is the per-tick fall distance of a piece of debris
	DebrisSpeed = 0.5
)

// Calendar
const (
	// StartYear is the year the simulation begins at
	StartYear = 1957

	// CanFireYear is the first year the ship cannon is enabled
	CanFireYear = 2020

	// YearChangeTicks is the number of ticks per simulated year
	YearChangeTicks = 15

	// PhraseHoldTicks is how long a scripted phrase stays on screen
	PhraseHoldTicks = 30
)

// DebrisDelay returns the spawn delay in ticks for the given year.
// ok is false before debris starts falling.
func DebrisDelay(year int) (ticks int, ok bool) {
	switch {
	case year < 1961:
		return 0, false
	case year < 1969:
		return 20, true
	case year < 1981:
		return 14, true
	case year < 1995:
		return 10, true
	case year < 2010:
		return 8, true
	case year < 2020:
		return 6, true
	default:
		return 2, true
	}
}
