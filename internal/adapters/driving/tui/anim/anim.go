// Package anim drives frame-based animations inside the bubbletea loop.
//
// Each running animation owns an id. Frames are delivered as FrameMsg and
// carry that id; restarting or stopping an animation takes a new id, so
// frames still in flight for the old run are ignored.
package anim

import (
	"math"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameInterval is the delay between frames, roughly 60 per second.
const FrameInterval = time.Second / 60

// FrameMsg is one animation frame.
type FrameMsg struct {
	ID   int64
	Time time.Time
}

var lastID atomic.Int64

func nextID() int64 {
	return lastID.Add(1)
}

func frame(id int64, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(t time.Time) tea.Msg {
		return FrameMsg{ID: id, Time: t}
	})
}

// EaseOutCubic maps linear progress p in [0,1] to 1-(1-p)^3.
func EaseOutCubic(p float64) float64 {
	p = clamp(p)
	return 1 - math.Pow(1-p, 3)
}

// Progress returns elapsed/duration clamped to [0,1]. A non-positive
// duration is already complete.
func Progress(elapsed, duration time.Duration) float64 {
	if duration <= 0 {
		return 1
	}
	return clamp(float64(elapsed) / float64(duration))
}

func clamp(p float64) float64 {
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}
