package game

import "math"

type RGB struct {
	R, G, B float64
}

// Toggle names one of the switchable decor animations.
type Toggle uint8

const (
	ToggleBounce Toggle = iota
	TogglePodium
	ToggleChair
	ToggleTable
	ToggleShelf
)

func (t Toggle) String() string {
	switch t {
	case ToggleBounce:
		return "lamp-bounce"
	case TogglePodium:
		return "podium-color"
	case ToggleChair:
		return "chair-spin"
	case ToggleTable:
		return "table-spin"
	case ToggleShelf:
		return "shelf-pulse"
	}
	return "unknown"
}

// Decor is the cosmetic animation state. Each switchable animation only
// advances while its flag is set; wall colors and the target pulse always run.
type Decor struct {
	Bounce, PodiumCycle, ChairSpin, TableSpin, ShelfPulse bool

	LampY      float64
	ChairAngle float64
	TableAngle float64
	ShelfScale float64

	ColorTime   float64
	Wall        RGB
	Podium      RGB
	TargetScale float64

	lampUp  bool
	shelfUp bool
}

func newDecor() Decor {
	return Decor{
		LampY:       LampLow,
		ShelfScale:  ShelfMin,
		Wall:        RGB{R: 1},
		Podium:      RGB{R: 1},
		TargetScale: 1,
		shelfUp:     true,
	}
}

// Toggle flips one animation and returns its new setting.
func (s *State) Toggle(t Toggle) bool {
	d := &s.Decor
	var flag *bool
	switch t {
	case ToggleBounce:
		flag = &d.Bounce
	case TogglePodium:
		flag = &d.PodiumCycle
	case ToggleChair:
		flag = &d.ChairSpin
	case ToggleTable:
		flag = &d.TableSpin
	case ToggleShelf:
		flag = &d.ShelfPulse
	default:
		return false
	}
	*flag = !*flag
	return *flag
}

func (d *Decor) step() {
	if d.Bounce {
		d.LampY, d.lampUp = bounce(d.LampY, d.lampUp, LampStep, LampLow, LampHigh)
	}
	if d.ChairSpin {
		d.ChairAngle = spin(d.ChairAngle)
	}
	if d.TableSpin {
		d.TableAngle = spin(d.TableAngle)
	}
	if d.ShelfPulse {
		d.ShelfScale, d.shelfUp = bounce(d.ShelfScale, d.shelfUp, ShelfStep, ShelfMin, ShelfMax)
	}
}

// cycleColors runs one period of the color clock.
func (d *Decor) cycleColors() {
	t := d.ColorTime
	d.Wall = RGB{R: wave(t), G: wave(t + 2), B: wave(t + 4)}
	d.TargetScale = (math.Sin(t)+1)*(TargetMax-TargetMin)/2 + TargetMin
	if d.PodiumCycle {
		d.Podium = RGB{R: wave(t + 4), G: wave(t), B: wave(t + 2)}
	}
	d.ColorTime += ColorPhase
}

// wave maps a sine into [0, 1].
func wave(t float64) float64 {
	return (math.Sin(t) + 1) / 2
}

// bounce is one step of a triangle wave between lo and hi.
func bounce(v float64, up bool, step, lo, hi float64) (float64, bool) {
	if up {
		v += step
		if v >= hi {
			return hi, false
		}
		return v, true
	}
	v -= step
	if v <= lo {
		return lo, true
	}
	return v, false
}

func spin(angle float64) float64 {
	angle += SpinStep
	if angle > 360 {
		return 0
	}
	return angle
}
