package game

import "time"

const (
	TickInterval  = time.Second / 60      // fixed simulation step
	ColorInterval = 50 * time.Millisecond // wall/podium/target color clock
	maxCatchUp    = 15                    // ticks run per Advance before the backlog is dropped

	MoveSpeed   = 0.05 // player step per move command
	LegSwing    = 1.0  // degrees per tick
	LegSwingMax = 15.0 // leg swing bound, both directions
	ArrowSpeed  = 0.1  // arrow step per tick

	MatchSeconds = 30 // countdown on start and restart
	WinScore     = 9  // score that ends the match
	LoseBelow    = 3  // final scores under this lose

	LampLow      = 2.0
	LampHigh     = 4.0
	LampStep     = 0.1
	SpinStep     = 0.1 // chair and table, degrees per tick
	ShelfMin     = 1.0
	ShelfMax     = 2.0
	ShelfStep    = 0.05
	ColorPhase   = 0.005 // color clock advance per ColorInterval
	TargetMin    = 0.5
	TargetMax    = 5.0
	headingLimit = 360.0
)

// Rect is an open axis-aligned rectangle on the ground plane.
type Rect struct {
	MinX, MaxX, MinZ, MaxZ float64
}

// Contains reports whether (x, z) lies strictly inside r.
func (r Rect) Contains(x, z float64) bool {
	return x > r.MinX && x < r.MaxX && z > r.MinZ && z < r.MaxZ
}

var (
	RoomBounds   = Rect{MinX: -10, MaxX: 15, MinZ: -3.5, MaxZ: 25}
	ArrowBounds  = Rect{MinX: -12, MaxX: 14, MinZ: -2, MaxZ: 25}
	TargetBounds = Rect{MinX: -0.2, MaxX: 0.2, MinZ: -2, MaxZ: -1.7}
)

// hitSounds lists the cumulative hit counts that play the hit clip.
var hitSounds = map[int]bool{1: true, 4: true, 7: true}
