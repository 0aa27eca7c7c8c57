package constants

// Glyphs
const (
	// ShotGlyph is drawn for a cannon shot moving vertically
	ShotGlyph = '|'

	// ShotSideGlyph is drawn for a cannon shot moving horizontally
	ShotSideGlyph = '-'

	// MuzzleFlashGlyphs are shown on the two ticks before a shot starts moving
	MuzzleFlashGlyphs = "*O"
)

// Status line layout, rows counted up from the bottom edge
const (
	// YearRowOffset places the year display this many rows above the bottom
	YearRowOffset = 2

	// PhraseRowOffset places the scripted phrase this many rows above the bottom
	PhraseRowOffset = 1

	// StatusColumn is the left column of the year and phrase text
	StatusColumn = 2

	// YearFormat renders the year display
	YearFormat = "Year: %d"
)
