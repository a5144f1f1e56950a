package anim

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// shakeStep spreads the offsets over half a second.
const shakeStep = 100 * time.Millisecond

// shakeOffsets are horizontal displacements in columns, one per step.
var shakeOffsets = []int{-2, 2, -2, 2, 0}

// Shake is a short side-to-side jolt used to flag a rejected action.
type Shake struct {
	id    int64
	step  int
	alive bool
}

// NewShake creates an idle shake.
func NewShake() *Shake {
	return &Shake{}
}

// Start restarts the jolt from its first offset.
func (s *Shake) Start() tea.Cmd {
	s.id = nextID()
	s.step = 0
	s.alive = true
	return frame(s.id, shakeStep)
}

// Update steps through the offsets on frames for the current run.
func (s *Shake) Update(msg tea.Msg) (*Shake, tea.Cmd) {
	f, ok := msg.(FrameMsg)
	if !ok || !s.alive || f.ID != s.id {
		return s, nil
	}
	s.step++
	if s.step >= len(shakeOffsets) {
		s.alive = false
		return s, nil
	}
	return s, frame(s.id, shakeStep)
}

// Offset returns the current displacement; zero when idle.
func (s *Shake) Offset() int {
	if !s.alive {
		return 0
	}
	return shakeOffsets[s.step]
}

// Active reports whether the shake is still running.
func (s *Shake) Active() bool {
	return s.alive
}

// ID returns the id of the current run.
func (s *Shake) ID() int64 {
	return s.id
}
