package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"archery3d/camera"
	"archery3d/config"
	"archery3d/game"
	"archery3d/render"
	"archery3d/scene"
)

// writeSnapshot renders one wireframe frame of state without a window.
func writeSnapshot(path string, wc config.WindowConfig, cam *camera.Camera, state *game.State, log *zap.Logger) error {
	r := render.NewRaster(wc.Width, wc.Height, float32(wc.FOV))
	r.Clear(render.Background)
	scene.Frame(r, cam, state)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	if err := r.WritePNG(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close snapshot: %w", err)
	}
	log.Info("snapshot written", zap.String("path", path), zap.Int("width", wc.Width), zap.Int("height", wc.Height))
	return nil
}
