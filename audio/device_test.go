package audio

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeTone(t *testing.T, dir string, c Clip, rate beep.SampleRate) {
	t.Helper()
	tone, err := generators.SineTone(rate, 440)
	require.NoError(t, err)

	f, err := os.Create(filepath.Join(dir, string(c)+".wav"))
	require.NoError(t, err)
	defer f.Close()

	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	require.NoError(t, wav.Encode(f, beep.Take(rate.N(50*time.Millisecond), tone), format))
}

func TestLoadResamplesToDeviceRate(t *testing.T) {
	dir := t.TempDir()
	writeTone(t, dir, ClipHit, beep.SampleRate(22050))

	buf, err := load(dir, ClipHit)
	require.NoError(t, err)

	assert.Equal(t, sampleRate, buf.Format().SampleRate)
	assert.InDelta(t, sampleRate.N(50*time.Millisecond), buf.Len(), 64)
}

func TestLoadMissingClip(t *testing.T) {
	_, err := load(t.TempDir(), ClipWin)
	assert.Error(t, err)
}

func TestLoadCorruptClip(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lose.mp3"), []byte("not audio"), 0o644))

	_, err := load(dir, ClipLose)
	assert.Error(t, err)
}

func TestOpenWithoutClipsFails(t *testing.T) {
	d, err := Open(t.TempDir(), 0.07, zap.NewNop())

	assert.Nil(t, d)
	assert.ErrorIs(t, err, ErrNoClips)
}

func TestGainToVolume(t *testing.T) {
	assert.Equal(t, 0.0, gainToVolume(1))
	assert.Equal(t, -1.0, gainToVolume(0.5))
	assert.Equal(t, 0.0, gainToVolume(0))
}

func TestNopSatisfiesSink(t *testing.T) {
	var s Sink = Nop{}
	s.Play(ClipTheme, true)
	s.SetVolume(0.5)
}
