package anim

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Counter counts a group of figures up from zero together. It keeps only
// the clock; callers scale each figure with Amount. An idle counter shows
// the figures in full.
type Counter struct {
	duration time.Duration

	id      int64
	started time.Time
	elapsed time.Duration
	running bool
}

// NewCounter creates a counter that takes duration to reach its figures.
func NewCounter(duration time.Duration) *Counter {
	return &Counter{duration: duration}
}

// Start restarts the count from zero.
func (c *Counter) Start() tea.Cmd {
	c.id = nextID()
	c.started = time.Time{}
	c.elapsed = 0
	if c.duration <= 0 {
		c.running = false
		return nil
	}
	c.running = true
	return frame(c.id, FrameInterval)
}

// Stop ends the count and shows the figures in full.
func (c *Counter) Stop() {
	c.id = nextID()
	c.running = false
}

// Update advances on frames belonging to the current run.
func (c *Counter) Update(msg tea.Msg) (*Counter, tea.Cmd) {
	f, ok := msg.(FrameMsg)
	if !ok || !c.running || f.ID != c.id {
		return c, nil
	}
	if c.started.IsZero() {
		c.started = f.Time
	}

	c.elapsed = f.Time.Sub(c.started)
	if c.elapsed >= c.duration {
		c.running = false
		return c, nil
	}
	return c, frame(c.id, FrameInterval)
}

// Amount returns target scaled by the eased progress, rounded to a whole number.
func (c *Counter) Amount(target int64) int64 {
	if !c.running {
		return target
	}
	eased := EaseOutCubic(Progress(c.elapsed, c.duration))
	return int64(math.Round(float64(target) * eased))
}

// Running reports whether frames are still expected.
func (c *Counter) Running() bool {
	return c.running
}

// ID returns the id of the current run.
func (c *Counter) ID() int64 {
	return c.id
}
