package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Renderer presents the frame once all tasks have been stepped
type Renderer interface {
	Show()
}

// scheduledTask pairs a task with its log identity
type scheduledTask struct {
	id   string
	name string
	task Task
}

// Scheduler steps every live task once per frame on a single goroutine.
// There is no per-task isolation: a panicking task takes down the frame loop
type Scheduler struct {
	live    []scheduledTask
	pending []scheduledTask // added during the current frame, merged at the next frame boundary

	frame uint64
	log   *zap.Logger
}

// NewScheduler creates an empty scheduler
func NewScheduler(log *zap.Logger) *Scheduler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Scheduler{log: log}
}

// Add queues a task. It is first stepped on the frame after the current one,
// or on the next frame when called between frames
func (s *Scheduler) Add(t Task) {
	st := scheduledTask{
		id:   uuid.NewString(),
		name: taskName(t),
		task: t,
	}
	s.pending = append(s.pending, st)
	s.log.Debug("task added", zap.String("task", st.name), zap.String("id", st.id), zap.Uint64("frame", s.frame))
}

// Len returns the number of live and pending tasks
func (s *Scheduler) Len() int {
	return len(s.live) + len(s.pending)
}

// Frame returns the number of completed frames
func (s *Scheduler) Frame() uint64 {
	return s.frame
}

// Tick runs one frame: every live task is stepped once in insertion order and completed tasks are dropped
func (s *Scheduler) Tick() {
	if len(s.pending) > 0 {
		s.live = append(s.live, s.pending...)
		s.pending = s.pending[:0]
	}

	// Additions made by stepped tasks land in pending, so s.live is a stable snapshot here
	kept := s.live[:0]
	for _, st := range s.live {
		if st.task.Step() {
			s.log.Debug("task completed", zap.String("task", st.name), zap.String("id", st.id), zap.Uint64("frame", s.frame))
			continue
		}
		kept = append(kept, st)
	}
	for i := len(kept); i < len(s.live); i++ {
		s.live[i] = scheduledTask{}
	}
	s.live = kept
	s.frame++
}

// Run drives the frame loop: tick, render, sleep for interval. Returns when ctx is cancelled
func (s *Scheduler) Run(ctx context.Context, r Renderer, interval time.Duration) {
	s.log.Info("frame loop started", zap.Duration("interval", interval), zap.Int("tasks", s.Len()))

	timer := time.NewTimer(interval)
	defer timer.Stop()

	for ctx.Err() == nil {
		s.Tick()
		r.Show()

		timer.Reset(interval)
		select {
		case <-ctx.Done():
		case <-timer.C:
		}
	}

	s.log.Info("frame loop stopped", zap.Uint64("frames", s.frame))
}

// taskName renders the task type without package prefix
func taskName(t Task) string {
	name := fmt.Sprintf("%T", t)
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimPrefix(name, "*")
}
