package constants

import "time"

// Frame Loop Timing
const (
	// TickInterval is the fixed sleep between scheduler passes (one tick)
	TickInterval = 100 * time.Millisecond
)

// Screen Layout
const (
	// BorderSize is the margin kept free of stars along every screen edge
	BorderSize = 1

	// MinRows is the smallest terminal height the game starts on
	MinRows = 10

	// MinColumns is the smallest terminal width the game starts on
	MinColumns = 30
)

// Logging
const (
	// LogDir is the directory created for the log file when logging is enabled
	LogDir = "logs"

	// LogFileName is the log file inside LogDir
	LogFileName = "rocket.log"

	// MaxLogSizeMB is the size at which the log file rotates
	MaxLogSizeMB = 10

	// MaxLogBackups is the number of rotated log files kept
	MaxLogBackups = 3

	// MaxLogAgeDays is how long rotated log files are kept
	MaxLogAgeDays = 7
)
