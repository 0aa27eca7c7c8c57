package terminal

import (
	"math"

	"github.com/lixenwraith/rocket/asset"
)

// DrawFrame draws art with its top-left corner at (row, column), or erases it when negative.
// Spaces in the art are transparent
func (s *Screen) DrawFrame(row, column float64, f asset.Frame, negative bool) {
	s.drawLines(row, column, f.Lines(), AttrNone, negative)
}

// DrawText draws possibly multi-line text with the given attributes, or erases it when negative
func (s *Screen) DrawText(row, column float64, text string, attr Attr, negative bool) {
	s.drawLines(row, column, asset.SplitLines(text), attr, negative)
}

// Glyph returns the rune and attributes currently held at (row, column)
func (s *Screen) Glyph(row, column int) (rune, Attr) {
	r, _, st, _ := s.screen.GetContent(column, row)
	return r, attrFromStyle(st)
}

func (s *Screen) drawLines(row, column float64, lines []string, attr Attr, negative bool) {
	rows, columns := s.Size()
	st := attr.style()
	startRow := Round(row)
	startColumn := Round(column)

	for i, line := range lines {
		y := startRow + i
		if y < 0 {
			continue
		}
		if y >= rows {
			break
		}

		x := startColumn - 1
		for _, symbol := range line {
			x++
			if x < 0 {
				continue
			}
			if x >= columns {
				break
			}
			if symbol == ' ' {
				continue
			}
			// Writing the last cell scrolls some terminals
			if y == rows-1 && x == columns-1 {
				continue
			}

			if negative {
				symbol = ' '
			}
			s.screen.SetContent(x, y, symbol, nil, st)
		}
	}
}

// Round converts a fractional coordinate to a cell index, halves to even
func Round(v float64) int {
	return int(math.RoundToEven(v))
}
