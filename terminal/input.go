package terminal

import (
	"github.com/gdamore/tcell/v2"
)

// Controls summarizes the keys pressed during one tick
type Controls struct {
	Rows    int  // -1 up, 1 down, 0 none; last seen wins
	Columns int  // -1 left, 1 right, 0 none; last seen wins
	Fire    bool // fire pressed at least once
}

// Apply folds one key event into the summary
func (c *Controls) Apply(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyUp:
		c.Rows = -1
	case tcell.KeyDown:
		c.Rows = 1
	case tcell.KeyLeft:
		c.Columns = -1
	case tcell.KeyRight:
		c.Columns = 1
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			c.Fire = true
		}
	}
}

// IsQuit reports whether the key ends the game
func IsQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// OnQuit registers the callback run from the event pump when a quit key is pressed.
// Must be called before StartEventPump
func (s *Screen) OnQuit(fn func()) {
	s.onQuit = fn
}

// StartEventPump runs the loop moving terminal events into the key buffer through launch,
// which must start it on its own goroutine; nil uses a plain go statement.
// The pump exits once the screen is finalized
func (s *Screen) StartEventPump(launch func(fn func())) {
	if launch == nil {
		launch = func(fn func()) { go fn() }
	}
	s.pumpOnce.Do(func() {
		launch(s.pump)
	})
}

func (s *Screen) pump() {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return
		}
		s.dispatch(ev)
	}
}

// dispatch routes one terminal event; key events are dropped when the buffer is full
func (s *Screen) dispatch(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if IsQuit(ev) {
			if s.onQuit != nil {
				s.onQuit()
			}
			return
		}
		select {
		case s.events <- ev:
		default:
		}
	case *tcell.EventResize:
		s.screen.Sync()
	}
}

// ReadControls drains every key buffered since the previous call without blocking
func (s *Screen) ReadControls() Controls {
	var c Controls
	for {
		select {
		case ev := <-s.events:
			c.Apply(ev)
		default:
			return c
		}
	}
}
