package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"
)

// ErrNotTerminal is returned when stdin or stdout is not attached to a terminal
var ErrNotTerminal = errors.New("not a terminal")

// Attr represents text attributes (bitmask)
type Attr uint8

const (
	AttrNone Attr = 0
	AttrBold Attr = 1 << 0
	AttrDim  Attr = 1 << 1
)

// style converts an attribute mask into a tcell style
func (a Attr) style() tcell.Style {
	st := tcell.StyleDefault
	if a&AttrBold != 0 {
		st = st.Bold(true)
	}
	if a&AttrDim != 0 {
		st = st.Dim(true)
	}
	return st
}

// attrFromStyle is the inverse of Attr.style
func attrFromStyle(st tcell.Style) Attr {
	_, _, mask := st.Decompose()
	var a Attr
	if mask&tcell.AttrBold != 0 {
		a |= AttrBold
	}
	if mask&tcell.AttrDim != 0 {
		a |= AttrDim
	}
	return a
}

// Screen wraps a tcell screen with the operations the game needs
type Screen struct {
	screen tcell.Screen

	events chan *tcell.EventKey
	onQuit func()

	pumpOnce sync.Once
	finiOnce sync.Once
}

// CheckTTY verifies that stdin and stdout are terminals
func CheckTTY() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNotTerminal
	}
	return nil
}

// New initializes the real terminal and hides the cursor
func New() (*Screen, error) {
	if err := CheckTTY(); err != nil {
		return nil, err
	}

	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	scr := newScreen(s)
	scr.SetCursorVisible(false)
	return scr, nil
}

// NewSimulation returns a Screen backed by an in-memory tcell simulation screen
func NewSimulation(rows, columns int) (*Screen, tcell.SimulationScreen, error) {
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		return nil, nil, fmt.Errorf("init simulation screen: %w", err)
	}
	sim.SetSize(columns, rows)
	return newScreen(sim), sim, nil
}

func newScreen(s tcell.Screen) *Screen {
	return &Screen{
		screen: s,
		events: make(chan *tcell.EventKey, 256),
	}
}

// Size returns the grid size as (rows, columns)
func (s *Screen) Size() (rows, columns int) {
	w, h := s.screen.Size()
	return h, w
}

// SetCursorVisible shows or hides the terminal cursor
func (s *Screen) SetCursorVisible(visible bool) {
	if visible {
		s.screen.ShowCursor(0, 0)
		return
	}
	s.screen.HideCursor()
}

// Beep rings the terminal bell
func (s *Screen) Beep() {
	_ = s.screen.Beep()
}

// Show pushes the drawn frame to the terminal
func (s *Screen) Show() {
	s.screen.Show()
}

// Fini restores the terminal. Safe to call multiple times
func (s *Screen) Fini() {
	s.finiOnce.Do(func() {
		s.screen.Fini()
	})
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Fini() cannot be called normally
func EmergencyReset(w io.Writer) {
	io.WriteString(w, "\x1b[?25h")   // cursor show
	io.WriteString(w, "\x1b[?1049l") // alt screen exit
	io.WriteString(w, "\x1b[0m")     // SGR reset
	io.WriteString(w, "\x1b[?7h")    // auto wrap on

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
