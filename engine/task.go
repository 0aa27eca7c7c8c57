package engine

// Task is one cooperatively scheduled behavior.
// Step runs the task up to its next suspension point and reports whether it has completed.
// A completed task is dropped by the scheduler and never stepped again
type Task interface {
	Step() (done bool)
}

// Sleep counts the ticks a task still has to stay suspended
type Sleep struct {
	remaining int
}

// For suspends the task for n ticks, the current step counting as the first one.
// n <= 0 does not suspend, the caller is expected to continue in the same step
func (s *Sleep) For(n int) {
	if n > 1 {
		s.remaining = n - 1
		return
	}
	s.remaining = 0
}

// Waiting consumes one suspended tick, returns false once the task may resume
func (s *Sleep) Waiting() bool {
	if s.remaining > 0 {
		s.remaining--
		return true
	}
	return false
}

// Remaining returns the suspended ticks left after the current one
func (s *Sleep) Remaining() int {
	return s.remaining
}
