// Package anim drives the polygon morph: it owns the animation state, advances
// it once per tick and pushes the resulting frame to a drawing surface.
package anim

// State is the morph animation state. U is kept in [0,1]; Direction is +1 or
// -1 and flips each time U reaches a bound.
type State struct {
	U         float64
	Frame     int
	Direction int
	Step      float64
	MaxFrames int
}

func NewState(step float64, maxFrames int) State {
	return State{Direction: 1, Step: step, MaxFrames: maxFrames}
}

// Running reports whether another tick may be taken. The last frame drawn is
// MaxFrames itself, so a full run is MaxFrames+1 ticks.
func (s *State) Running() bool {
	return s.Frame <= s.MaxFrames
}

// Advance moves U by one step and counts the frame. It returns true if U hit
// a bound and the direction flipped.
func (s *State) Advance() bool {
	s.U += float64(s.Direction) * s.Step

	bounced := false
	if s.U >= 1 || s.U <= 0 {
		s.U = clamp01(s.U)
		s.Direction = -s.Direction
		bounced = true
	}
	s.Frame++
	return bounced
}

func (s *State) Restart() {
	s.U = 0
	s.Frame = 0
	s.Direction = 1
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
