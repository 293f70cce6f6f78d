// Package game holds the archery simulation: the player, the single arrow,
// the match and the animated decor, advanced in fixed ticks.
package game

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"archery3d/audio"
)

// Direction is a pending player move relative to the current heading.
type Direction uint8

const (
	DirNone Direction = iota
	DirForward
	DirBack
	DirLeft
	DirRight
)

type Player struct {
	X, Z     float64
	Heading  float64 // degrees around +Y, 0 faces +Z
	Walking  bool
	LegPhase float64 // left leg swing in degrees; the right leg mirrors it

	legForward bool
	pending    Direction
}

// Arrow is the one arrow in the game. A holstered arrow rides with the player.
type Arrow struct {
	X, Z     float64
	Heading  float64 // radians, captured when fired
	InFlight bool
}

type Match struct {
	ID        uuid.UUID
	Score     int
	Remaining int // seconds
	Over      bool

	// TotalHits counts hits over the whole session; restarts keep it.
	TotalHits int
}

// Rules are the match parameters that can be tuned from configuration.
type Rules struct {
	MatchSeconds int
	WinScore     int
}

func DefaultRules() Rules {
	return Rules{MatchSeconds: MatchSeconds, WinScore: WinScore}
}

// State is the whole mutable simulation, owned by one controller.
type State struct {
	Player Player
	Arrow  Arrow
	Match  Match
	Decor  Decor

	rules Rules
	sound audio.Sink
	log   *zap.Logger

	tickAcc   time.Duration
	colorAcc  time.Duration
	secondAcc time.Duration
}

// New returns a fresh match. A nil sound sink plays nothing.
func New(rules Rules, sound audio.Sink, log *zap.Logger) *State {
	if sound == nil {
		sound = audio.Nop{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	s := &State{
		Player: Player{legForward: true},
		Match:  Match{ID: uuid.New(), Remaining: rules.MatchSeconds},
		Decor:  newDecor(),
		rules:  rules,
		sound:  sound,
		log:    log,
	}
	s.holster()
	return s
}

func (s *State) Rules() Rules { return s.rules }

// Start plays the looping theme and logs the first match.
func (s *State) Start() {
	s.sound.Play(audio.ClipTheme, true)
	s.log.Info("match started",
		zap.Stringer("match", s.Match.ID),
		zap.Int("seconds", s.Match.Remaining),
	)
}

// Advance moves the simulation forward by dt of wall time. Animation and
// flight run in whole TickInterval steps, the color clock in whole
// ColorInterval periods and the countdown in whole seconds; remainders carry
// over to the next call.
func (s *State) Advance(dt time.Duration) {
	if dt <= 0 {
		return
	}

	s.tickAcc = min(s.tickAcc+dt, maxCatchUp*TickInterval)
	for s.tickAcc >= TickInterval {
		s.tickAcc -= TickInterval
		s.Step()
	}

	s.colorAcc = min(s.colorAcc+dt, maxCatchUp*ColorInterval)
	for s.colorAcc >= ColorInterval {
		s.colorAcc -= ColorInterval
		s.Decor.cycleColors()
	}

	s.secondAcc += dt
	for s.secondAcc >= time.Second {
		s.secondAcc -= time.Second
		s.countdown()
	}
}

// Step runs one fixed tick. A finished match does not change.
func (s *State) Step() {
	if s.Match.Over {
		return
	}
	s.movePlayer()
	s.swingLegs()
	s.flyArrow()
	s.Decor.step()
}

func (s *State) countdown() {
	if s.Match.Over {
		return
	}
	s.Match.Remaining--
	if s.Match.Remaining <= 0 {
		s.Match.Remaining = 0
		s.finish("time")
	}
}

// Restart begins a new match. It does nothing unless the current one is over.
func (s *State) Restart() bool {
	if !s.Match.Over {
		return false
	}
	s.Match = Match{
		ID:        uuid.New(),
		Remaining: s.rules.MatchSeconds,
		TotalHits: s.Match.TotalHits,
	}
	s.secondAcc = 0
	s.holster()
	s.log.Info("match restarted", zap.Stringer("match", s.Match.ID), zap.Int("seconds", s.Match.Remaining))
	return true
}

func (s *State) finish(reason string) {
	s.Match.Over = true
	s.Player.Walking = false
	s.Player.LegPhase = 0
	s.Player.legForward = true
	s.Player.pending = DirNone
	if s.Won() {
		s.sound.Play(audio.ClipWin, false)
	} else {
		s.sound.Play(audio.ClipLose, false)
	}
	s.log.Info("match over",
		zap.Stringer("match", s.Match.ID),
		zap.String("reason", reason),
		zap.Int("score", s.Match.Score),
		zap.Int("remaining", s.Match.Remaining),
	)
}

// Won reports whether the final score is good enough for the win message.
func (s *State) Won() bool {
	return s.Match.Score >= LoseBelow
}

// Outcome is the headline shown once the match is over.
func (s *State) Outcome() string {
	if s.Won() {
		return "Game End!"
	}
	return "Game Over!"
}
