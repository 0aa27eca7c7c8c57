// Package asset loads the multi-line glyph art drawn by the game.
//
// A default set is embedded in the binary; a directory with the same file
// names can replace it at startup.
package asset
