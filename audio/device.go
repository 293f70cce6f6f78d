package audio

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
	"go.uber.org/zap"
)

const (
	sampleRate = beep.SampleRate(44100)
	bufferSize = 100 * time.Millisecond
)

// extensions are tried in order when resolving a clip file.
var extensions = []string{".mp3", ".wav"}

// ErrNoClips is returned by Open when none of the requested clips could be loaded.
var ErrNoClips = errors.New("no audio clips could be loaded")

// Device plays decoded clips through the system speaker.
type Device struct {
	log *zap.Logger

	mu      sync.Mutex
	clips   map[Clip]*beep.Buffer
	volume  float64
	playing []*beep.Ctrl
}

// Open decodes every clip found under dir and initializes the speaker. Missing
// or undecodable clips are logged and skipped.
func Open(dir string, volume float64, log *zap.Logger) (*Device, error) {
	d := &Device{
		log:    log,
		clips:  make(map[Clip]*beep.Buffer, len(Clips)),
		volume: volume,
	}

	for _, c := range Clips {
		buf, err := load(dir, c)
		if err != nil {
			log.Warn("skipping audio clip", zap.String("clip", string(c)), zap.Error(err))
			continue
		}
		d.clips[c] = buf
	}
	if len(d.clips) == 0 {
		return nil, fmt.Errorf("open audio in %q: %w", dir, ErrNoClips)
	}

	if err := speaker.Init(sampleRate, sampleRate.N(bufferSize)); err != nil {
		return nil, fmt.Errorf("failed to initialize speaker: %w", err)
	}
	log.Info("audio device ready", zap.Int("clips", len(d.clips)), zap.Float64("volume", volume))
	return d, nil
}

func load(dir string, c Clip) (*beep.Buffer, error) {
	for _, ext := range extensions {
		path := filepath.Join(dir, string(c)+ext)
		f, err := os.Open(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		defer f.Close()

		var (
			stream beep.StreamSeekCloser
			format beep.Format
		)
		switch ext {
		case ".mp3":
			stream, format, err = mp3.Decode(f)
		case ".wav":
			stream, format, err = wav.Decode(f)
		}
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		defer stream.Close()

		target := format
		target.SampleRate = sampleRate
		buf := beep.NewBuffer(target)
		buf.Append(beep.Resample(4, format.SampleRate, sampleRate, stream))
		return buf, nil
	}
	return nil, fmt.Errorf("no %v file for clip %q in %s", extensions, c, dir)
}

// Play starts c at the current master volume. Unknown clips are ignored.
func (d *Device) Play(c Clip, loop bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	buf, ok := d.clips[c]
	if !ok {
		return
	}
	var s beep.Streamer = buf.Streamer(0, buf.Len())
	if loop {
		s = beep.Loop(-1, buf.Streamer(0, buf.Len()))
	}
	ctrl := &beep.Ctrl{Streamer: &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   gainToVolume(d.volume),
		Silent:   d.volume <= 0,
	}}
	if loop {
		d.playing = append(d.playing, ctrl)
	}
	speaker.Play(ctrl)
}

// SetVolume sets the master gain (0 silent, 1 unchanged) for clips started
// afterwards and for looping clips already playing.
func (d *Device) SetVolume(v float64) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.volume = v
	speaker.Lock()
	for _, ctrl := range d.playing {
		if vol, ok := ctrl.Streamer.(*effects.Volume); ok {
			vol.Volume = gainToVolume(v)
			vol.Silent = v <= 0
		}
	}
	speaker.Unlock()
}

// Close stops playback and releases the speaker.
func (d *Device) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	speaker.Lock()
	for _, ctrl := range d.playing {
		ctrl.Paused = true
	}
	speaker.Unlock()
	d.playing = nil
	speaker.Clear()
	speaker.Close()
}

// gainToVolume converts a linear gain into the base-2 exponent effects.Volume expects.
func gainToVolume(gain float64) float64 {
	if gain <= 0 {
		return 0
	}
	return math.Log2(gain)
}
