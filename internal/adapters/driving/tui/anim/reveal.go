package anim

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Reveal counts a whole amount up from zero with ease-out cubic timing.
// The clock starts at the first frame, not at Start.
type Reveal struct {
	duration time.Duration

	id      int64
	target  int64
	value   int64
	started time.Time
	running bool
}

// NewReveal creates a reveal that takes duration to reach its target.
func NewReveal(duration time.Duration) *Reveal {
	return &Reveal{duration: duration}
}

// Start begins counting to target, abandoning any run in progress.
func (r *Reveal) Start(target int64) tea.Cmd {
	r.id = nextID()
	r.target = target
	r.started = time.Time{}
	if r.duration <= 0 || target == 0 {
		r.value = target
		r.running = false
		return nil
	}
	r.value = 0
	r.running = true
	return frame(r.id, FrameInterval)
}

// Stop abandons the run and leaves the value where it is.
func (r *Reveal) Stop() {
	r.id = nextID()
	r.running = false
}

// Update advances on frames belonging to the current run.
func (r *Reveal) Update(msg tea.Msg) (*Reveal, tea.Cmd) {
	f, ok := msg.(FrameMsg)
	if !ok || !r.running || f.ID != r.id {
		return r, nil
	}
	if r.started.IsZero() {
		r.started = f.Time
	}

	p := Progress(f.Time.Sub(r.started), r.duration)
	r.value = int64(math.Round(float64(r.target) * EaseOutCubic(p)))
	if p >= 1 {
		r.value = r.target
		r.running = false
		return r, nil
	}
	return r, frame(r.id, FrameInterval)
}

// Value returns the amount to display now.
func (r *Reveal) Value() int64 {
	return r.value
}

// Target returns the amount being counted to.
func (r *Reveal) Target() int64 {
	return r.target
}

// Running reports whether frames are still expected.
func (r *Reveal) Running() bool {
	return r.running
}

// ID returns the id of the current run.
func (r *Reveal) ID() int64 {
	return r.id
}
