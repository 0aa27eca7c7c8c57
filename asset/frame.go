package asset

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// ErrEmptyFrame is returned for art that contains no lines
var ErrEmptyFrame = errors.New("frame has no lines")

// Frame is an immutable block of glyph art with its bounding box
type Frame struct {
	lines   []string
	rows    int
	columns int
}

// NewFrame splits text into lines and computes the bounding box.
// A single trailing newline does not count as an extra row.
func NewFrame(text string) (Frame, error) {
	lines := SplitLines(text)
	if len(lines) == 0 {
		return Frame{}, ErrEmptyFrame
	}

	columns := 0
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > columns {
			columns = n
		}
	}

	return Frame{lines: lines, rows: len(lines), columns: columns}, nil
}

// MustFrame is NewFrame for literals known to be valid
func MustFrame(text string) Frame {
	f, err := NewFrame(text)
	if err != nil {
		panic(err)
	}
	return f
}

// Size returns the bounding box as (rows, columns)
func (f Frame) Size() (rows, columns int) {
	return f.rows, f.columns
}

// Lines returns the art rows; callers must not modify the slice
func (f Frame) Lines() []string {
	return f.lines
}

// SplitLines splits on \n, \r\n and \r, dropping the empty tail left by a final terminator
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
