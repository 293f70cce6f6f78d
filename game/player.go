package game

import (
	"math"

	"archery3d/vmath"
)

// QueueMove records a move to apply on the next tick, replacing any move
// still pending. Ignored once the match is over.
func (s *State) QueueMove(d Direction) {
	if s.Match.Over {
		return
	}
	s.Player.pending = d
}

// StopWalking ends the walk cycle, as when a movement key is released.
func (s *State) StopWalking() {
	s.Player.Walking = false
	s.Player.pending = DirNone
}

// Rotate turns the player by delta degrees. A heading past a full turn in
// either direction snaps back to 0.
func (s *State) Rotate(delta float64) {
	if s.Match.Over {
		return
	}
	h := s.Player.Heading + delta
	if h > headingLimit || h < -headingLimit {
		h = 0
	}
	s.Player.Heading = h
}

// step returns the ground-plane displacement for d at heading degrees.
func step(d Direction, heading float64) (dx, dz float64) {
	rad := radians(heading)
	forward := vmath.Vec3{Z: 1}.RotateY(rad)
	left := vmath.Vec3{X: 1}.RotateY(rad)

	var v vmath.Vec3
	switch d {
	case DirForward:
		v = forward
	case DirBack:
		v = forward.Scale(-1)
	case DirLeft:
		v = left
	case DirRight:
		v = left.Scale(-1)
	default:
		return 0, 0
	}
	v = v.Scale(MoveSpeed)
	return v.X, v.Z
}

func (s *State) movePlayer() {
	p := &s.Player
	if p.pending == DirNone {
		return
	}
	dx, dz := step(p.pending, p.Heading)
	p.pending = DirNone

	x, z := p.X+dx, p.Z+dz
	if !RoomBounds.Contains(x, z) {
		p.Walking = false
		return
	}
	p.X, p.Z = x, z
	p.Walking = true
}

// swingLegs runs the walk cycle as a triangle wave between -LegSwingMax and
// +LegSwingMax. Standing still snaps the legs straight.
func (s *State) swingLegs() {
	p := &s.Player
	if !p.Walking {
		p.LegPhase = 0
		p.legForward = true
		return
	}
	if p.legForward {
		p.LegPhase += LegSwing
		if p.LegPhase >= LegSwingMax {
			p.LegPhase = LegSwingMax
			p.legForward = false
		}
		return
	}
	p.LegPhase -= LegSwing
	if p.LegPhase <= -LegSwingMax {
		p.LegPhase = -LegSwingMax
		p.legForward = true
	}
}

// LegAngles returns the left and right leg swing in degrees.
func (p Player) LegAngles() (left, right float64) {
	return p.LegPhase, -p.LegPhase
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
