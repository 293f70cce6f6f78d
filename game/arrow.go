package game

import (
	"go.uber.org/zap"

	"archery3d/audio"
	"archery3d/vmath"
)

// Fire looses the arrow along the player's heading. It does nothing while the
// arrow is already flying or the match is over.
func (s *State) Fire() bool {
	if s.Match.Over || s.Arrow.InFlight {
		return false
	}
	p := s.Player
	s.Arrow = Arrow{X: p.X, Z: p.Z, Heading: radians(p.Heading), InFlight: true}
	s.sound.Play(audio.ClipShoot, false)
	s.log.Debug("arrow fired", zap.Float64("x", p.X), zap.Float64("z", p.Z), zap.Float64("heading", p.Heading))
	return true
}

// holster returns the arrow to the player.
func (s *State) holster() {
	p := s.Player
	s.Arrow = Arrow{X: p.X, Z: p.Z, Heading: radians(p.Heading)}
}

func (s *State) flyArrow() {
	if !s.Arrow.InFlight {
		s.holster()
		return
	}
	a := &s.Arrow
	dir := vmath.Vec3{Z: 1}.RotateY(a.Heading).Scale(ArrowSpeed)
	x, z := a.X+dir.X, a.Z+dir.Z
	if !ArrowBounds.Contains(x, z) {
		s.holster()
		return
	}
	a.X, a.Z = x, z
	if TargetBounds.Contains(x, z) {
		s.hit()
	}
}

func (s *State) hit() {
	s.Match.Score++
	s.Match.TotalHits++
	if hitSounds[s.Match.TotalHits] {
		s.sound.Play(audio.ClipHit, false)
	}
	s.log.Info("target hit",
		zap.Stringer("match", s.Match.ID),
		zap.Int("score", s.Match.Score),
		zap.Int("hits", s.Match.TotalHits),
	)
	s.holster()
	if s.Match.Score >= s.rules.WinScore {
		s.finish("score")
	}
}
