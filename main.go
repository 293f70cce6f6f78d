package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"archery3d/audio"
	"archery3d/camera"
	"archery3d/config"
	"archery3d/game"
	"archery3d/input"
	"archery3d/logging"
	"archery3d/render/opengl"
	"archery3d/scene"
)

func init() {
	// glfw event handling and GL calls must stay on the main thread
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "YAML config file")
	snapshotPath := flag.String("snapshot", "", "render one wireframe frame to this PNG and exit")
	dumpConfig := flag.Bool("dump-config", false, "print the effective config and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if *dumpConfig {
		if err := cfg.Dump(os.Stdout); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	log, err := logging.New(cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer log.Sync()

	if err := run(cfg, *snapshotPath, log); err != nil {
		log.Error("archery stopped", zap.Error(err))
		log.Sync()
		os.Exit(1)
	}
}

func run(cfg config.Config, snapshotPath string, log *zap.Logger) error {
	keys := input.DefaultKeyTable()
	if err := keys.Apply(cfg.Input.Bindings); err != nil {
		return fmt.Errorf("input bindings: %w", err)
	}
	preset, err := camera.LookupPreset(cfg.Camera.Preset)
	if err != nil {
		return err
	}
	cam := camera.NewFromPreset(preset)
	cam.Orthonormalize = cfg.Camera.Orthonormalize
	rules := game.Rules{MatchSeconds: cfg.Match.Seconds, WinScore: cfg.Match.WinScore}

	if snapshotPath != "" {
		state := game.New(rules, nil, log)
		return writeSnapshot(snapshotPath, cfg.Window, cam, state, log)
	}

	sound, closeSound := openAudio(cfg.Audio, log)
	defer closeSound()

	state := game.New(rules, sound, log)
	return play(cfg.Window, cam, state, keys, log)
}

// openAudio falls back to silence when the device or media are unavailable.
func openAudio(cfg config.AudioConfig, log *zap.Logger) (audio.Sink, func()) {
	if !cfg.Enabled {
		return audio.Nop{}, func() {}
	}
	dev, err := audio.Open(cfg.MediaDir, cfg.Volume, log)
	if err != nil {
		log.Warn("audio disabled", zap.String("media_dir", cfg.MediaDir), zap.Error(err))
		return audio.Nop{}, func() {}
	}
	return dev, dev.Close
}

func play(wc config.WindowConfig, cam *camera.Camera, state *game.State, keys input.KeyTable, log *zap.Logger) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("initialize glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(wc.Width, wc.Height, wc.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("initialize gl: %w", err)
	}
	log.Info("window open",
		zap.String("gl_version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.Int("width", wc.Width),
		zap.Int("height", wc.Height),
	)

	if wc.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	sink, err := opengl.New(log)
	if err != nil {
		return err
	}
	defer sink.Delete()

	h := newHost(window)
	if wc.Fullscreen {
		h.ToggleFullscreen()
	}
	mapper := input.NewMapper(keys, input.DefaultSettings(), state, cam, h, log)
	h.bind(mapper)

	fbw, fbh := window.GetFramebufferSize()
	fovy := mgl32.DegToRad(float32(wc.FOV))
	projection := perspective(fovy, fbw, fbh)
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
		projection = perspective(fovy, width, height)
	})

	state.Start()

	lastFrameTime := glfw.GetTime()
	lastFpsTime := lastFrameTime
	frameCount, fps := 0, 0
	title := ""
	unbalanced := false

	for !window.ShouldClose() {
		currentTime := glfw.GetTime()
		deltaTime := currentTime - lastFrameTime
		lastFrameTime = currentTime

		frameCount++
		if currentTime-lastFpsTime >= 1.0 {
			fps = frameCount
			frameCount = 0
			lastFpsTime = currentTime
		}

		state.Advance(time.Duration(deltaTime * float64(time.Second)))

		sink.Begin(projection)
		scene.Frame(sink, cam, state)
		if !sink.Balanced() && !unbalanced {
			unbalanced = true
			log.Warn("render stack left unbalanced", zap.Int("depth", sink.Depth()), zap.Int("underflows", sink.Underflows()))
		}

		if t := windowTitle(wc.Title, scene.HUD(state), fps); t != title {
			title = t
			window.SetTitle(title)
		}

		window.SwapBuffers()
		glfw.PollEvents()
	}

	log.Info("window closed",
		zap.Stringer("match", state.Match.ID),
		zap.Int("score", state.Match.Score),
		zap.Int("total_hits", state.Match.TotalHits),
	)
	return nil
}

func perspective(fovy float32, w, h int) mgl32.Mat4 {
	if h <= 0 {
		h = 1
	}
	return mgl32.Perspective(fovy, float32(w)/float32(h), 0.1, 100.0)
}

func windowTitle(base string, hud []string, fps int) string {
	return fmt.Sprintf("%s | %s | FPS: %d", base, strings.Join(hud, " | "), fps)
}
