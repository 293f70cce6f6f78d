package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"archery3d/audio"
	"archery3d/camera"
	"archery3d/config"
	"archery3d/game"
)

func TestWriteSnapshot(t *testing.T) {
	wc := config.Default().Window
	wc.Width, wc.Height = 200, 150
	path := filepath.Join(t.TempDir(), "frame.png")

	state := game.New(game.DefaultRules(), nil, zap.NewNop())
	require.NoError(t, writeSnapshot(path, wc, camera.NewFromPreset(camera.TopView), state, zap.NewNop()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
	assert.Equal(t, 150, img.Bounds().Dy())
}

func TestWriteSnapshot_BadPath(t *testing.T) {
	state := game.New(game.DefaultRules(), nil, zap.NewNop())
	err := writeSnapshot(filepath.Join(t.TempDir(), "missing", "frame.png"), config.Default().Window,
		camera.NewFromPreset(camera.TopView), state, zap.NewNop())
	assert.ErrorContains(t, err, "create snapshot")
}

func TestRun_Snapshot(t *testing.T) {
	cfg := config.Default()
	cfg.Window.Width, cfg.Window.Height = 64, 48
	cfg.Camera.Preset = "front"
	path := filepath.Join(t.TempDir(), "frame.png")

	require.NoError(t, run(cfg, path, zap.NewNop()))
	assert.FileExists(t, path)
}

func TestRun_BadSettings(t *testing.T) {
	cfg := config.Default()
	cfg.Camera.Preset = "overhead"
	assert.Error(t, run(cfg, "unused.png", zap.NewNop()))

	cfg = config.Default()
	cfg.Input.Bindings = map[string]string{"jump": "j"}
	assert.ErrorContains(t, run(cfg, "unused.png", zap.NewNop()), "input bindings")
}

func TestOpenAudio_FallsBackToSilence(t *testing.T) {
	sound, closeSound := openAudio(config.AudioConfig{Enabled: false}, zap.NewNop())
	assert.Equal(t, audio.Nop{}, sound)
	closeSound()

	sound, closeSound = openAudio(config.AudioConfig{Enabled: true, MediaDir: t.TempDir(), Volume: 0.5}, zap.NewNop())
	assert.Equal(t, audio.Nop{}, sound, "no clips to load")
	closeSound()
}

func TestWindowTitle(t *testing.T) {
	assert.Equal(t, "Archery | Score: 2 | Time: 17 | FPS: 60",
		windowTitle("Archery", []string{"Score: 2", "Time: 17"}, 60))
}
