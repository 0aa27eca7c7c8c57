package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"github.com/lixenwraith/rocket/terminal"
)

// Finalizer restores the terminal it owns
type Finalizer interface {
	Fini()
}

var (
	crashMu     sync.Mutex
	crashScreen Finalizer
)

// SetCrashScreen registers the screen restored by HandleCrash; nil falls back to a raw ANSI reset
func SetCrashScreen(s Finalizer) {
	crashMu.Lock()
	crashScreen = s
	crashMu.Unlock()
}

// HandleCrash is the unified panic handler that resets the terminal, prints the stack trace and exits 1
func HandleCrash(r any) {
	if r == nil {
		return
	}

	crashMu.Lock()
	s := crashScreen
	crashMu.Unlock()

	// Restore terminal to sane state before printing
	if s != nil {
		s.Fini()
	} else {
		terminal.EmergencyReset(os.Stdout)
	}

	writeCrashReport(os.Stderr, r, debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

func writeCrashReport(w io.Writer, r any, stack []byte) {
	fmt.Fprintf(w, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(w, "Stack Trace:\r\n%s\r\n", stack)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
