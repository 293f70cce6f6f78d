package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTogglesAreIndependent(t *testing.T) {
	s, _ := newState(t)

	assert.True(t, s.Toggle(ToggleChair))
	assert.True(t, s.Toggle(ToggleShelf))
	assert.False(t, s.Toggle(ToggleChair))

	assert.False(t, s.Decor.ChairSpin)
	assert.True(t, s.Decor.ShelfPulse)
	assert.False(t, s.Decor.Bounce)
	assert.False(t, s.Decor.TableSpin)
	assert.False(t, s.Decor.PodiumCycle)
	assert.False(t, s.Toggle(Toggle(99)))
	assert.Equal(t, "table-spin", ToggleTable.String())
}

func TestInactiveAnimationsHold(t *testing.T) {
	s, _ := newState(t)
	before := s.Decor
	for i := 0; i < 50; i++ {
		s.Step()
	}
	assert.Equal(t, before, s.Decor)
}

func TestOscillatorsStayBounded(t *testing.T) {
	s, _ := newState(t)
	for _, tg := range []Toggle{ToggleBounce, ToggleChair, ToggleTable, ToggleShelf} {
		s.Toggle(tg)
	}
	for i := 0; i < 10000; i++ {
		s.Step()
		d := s.Decor
		require.True(t, d.LampY >= LampLow && d.LampY <= LampHigh, "lamp %v", d.LampY)
		require.True(t, d.ShelfScale >= ShelfMin && d.ShelfScale <= ShelfMax, "shelf %v", d.ShelfScale)
		require.True(t, d.ChairAngle >= 0 && d.ChairAngle <= 360, "chair %v", d.ChairAngle)
		require.True(t, d.TableAngle >= 0 && d.TableAngle <= 360, "table %v", d.TableAngle)
	}
}

func TestLampBouncesBetweenBounds(t *testing.T) {
	s, _ := newState(t)
	s.Toggle(ToggleBounce)

	sawHigh, sawLow := false, false
	for i := 0; i < 100; i++ {
		s.Step()
		if s.Decor.LampY == LampHigh {
			sawHigh = true
		}
		if sawHigh && s.Decor.LampY == LampLow {
			sawLow = true
		}
	}
	assert.True(t, sawHigh)
	assert.True(t, sawLow)
}

func TestColorClock(t *testing.T) {
	s, _ := newState(t)
	s.Advance(ColorInterval)

	assert.InDelta(t, 0.5, s.Decor.Wall.R, 1e-9, "sin(0) maps to the middle of the range")
	assert.InDelta(t, ColorPhase, s.Decor.ColorTime, 1e-12)
	assert.InDelta(t, (TargetMax-TargetMin)/2+TargetMin, s.Decor.TargetScale, 1e-9)
	assert.Equal(t, RGB{R: 1}, s.Decor.Podium, "podium holds its color until cycling is on")

	s.Toggle(TogglePodium)
	for i := 0; i < 1000; i++ {
		s.Decor.cycleColors()
		for _, c := range []float64{s.Decor.Podium.R, s.Decor.Podium.G, s.Decor.Podium.B, s.Decor.Wall.R, s.Decor.Wall.G, s.Decor.Wall.B} {
			require.True(t, c >= 0 && c <= 1)
		}
		require.True(t, s.Decor.TargetScale >= TargetMin && s.Decor.TargetScale <= TargetMax)
	}
	assert.NotEqual(t, RGB{R: 1}, s.Decor.Podium)
}

func TestColorsRunWhileMatchIsOver(t *testing.T) {
	s, _ := newState(t)
	s.Match.Over = true
	s.Advance(10 * ColorInterval)

	assert.InDelta(t, 10*ColorPhase, s.Decor.ColorTime, 1e-12)
}
