// Package terminal adapts a tcell screen to the drawing and input needs of the game.
//
// Features:
//   - Multi-line glyph drawing at fractional positions, rounded at the boundary
//   - Clipping to the visible grid, skipping the bottom-right cell
//   - Non-blocking per-tick control polling fed by a background event pump
//   - Clean terminal restoration on exit/panic
package terminal
