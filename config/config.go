// Package config loads the archery settings from defaults, an optional YAML
// file and ARCHERY_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Window WindowConfig `mapstructure:"window" yaml:"window"`
	Audio  AudioConfig  `mapstructure:"audio" yaml:"audio"`
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
	Camera CameraConfig `mapstructure:"camera" yaml:"camera"`
	Match  MatchConfig  `mapstructure:"match" yaml:"match"`
	Input  InputConfig  `mapstructure:"input" yaml:"input"`
}

type WindowConfig struct {
	Width      int     `mapstructure:"width" yaml:"width"`
	Height     int     `mapstructure:"height" yaml:"height"`
	Title      string  `mapstructure:"title" yaml:"title"`
	Fullscreen bool    `mapstructure:"fullscreen" yaml:"fullscreen"`
	FOV        float64 `mapstructure:"fov" yaml:"fov"`
	VSync      bool    `mapstructure:"vsync" yaml:"vsync"`
}

type AudioConfig struct {
	Enabled  bool    `mapstructure:"enabled" yaml:"enabled"`
	MediaDir string  `mapstructure:"media_dir" yaml:"media_dir"`
	Volume   float64 `mapstructure:"volume" yaml:"volume"`
}

type LogConfig struct {
	Level    string `mapstructure:"level" yaml:"level"`
	Encoding string `mapstructure:"encoding" yaml:"encoding"`
}

type CameraConfig struct {
	Preset         string `mapstructure:"preset" yaml:"preset"`
	Orthonormalize bool   `mapstructure:"orthonormalize" yaml:"orthonormalize"`
}

type MatchConfig struct {
	Seconds  int `mapstructure:"seconds" yaml:"seconds"`
	WinScore int `mapstructure:"win_score" yaml:"win_score"`
}

// InputConfig overrides key bindings, action name to key name.
type InputConfig struct {
	Bindings map[string]string `mapstructure:"bindings" yaml:"bindings,omitempty"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 720)
	v.SetDefault("window.title", "Archery 3D")
	v.SetDefault("window.fullscreen", false)
	v.SetDefault("window.fov", 45.0)
	v.SetDefault("window.vsync", true)

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.media_dir", "media")
	v.SetDefault("audio.volume", 0.07)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "console")

	v.SetDefault("camera.preset", "top")
	v.SetDefault("camera.orthonormalize", true)

	v.SetDefault("match.seconds", 30)
	v.SetDefault("match.win_score", 9)

	v.SetDefault("input.bindings", map[string]string{})
}

// Default returns the built-in configuration.
func Default() Config {
	cfg, err := Load("")
	if err != nil {
		// defaults alone always decode
		panic(err)
	}
	return cfg
}

// Load merges defaults, the YAML file at path (skipped when path is empty)
// and the environment. ARCHERY_MATCH_SECONDS overrides match.seconds.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("archery")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

var (
	logLevels    = []string{"debug", "info", "warn", "error"}
	logEncodings = []string{"console", "json"}
)

// Validate checks ranges and names. It does not know about camera presets
// or action names; callers resolve those.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Window.Width > 0 && c.Window.Height > 0, "window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	check(c.Window.FOV > 0 && c.Window.FOV < 180, "window.fov %g outside (0, 180)", c.Window.FOV)
	check(c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "audio.volume %g outside [0, 1]", c.Audio.Volume)
	check(slices.Contains(logLevels, c.Log.Level), "log.level %q is not one of %v", c.Log.Level, logLevels)
	check(slices.Contains(logEncodings, c.Log.Encoding), "log.encoding %q is not one of %v", c.Log.Encoding, logEncodings)
	check(c.Camera.Preset != "", "camera.preset is empty")
	check(c.Match.Seconds > 0, "match.seconds %d must be positive", c.Match.Seconds)
	check(c.Match.WinScore > 0, "match.win_score %d must be positive", c.Match.WinScore)

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}

// Dump writes c as YAML.
func (c Config) Dump(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return enc.Close()
}
