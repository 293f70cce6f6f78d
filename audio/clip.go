// Package audio plays the game's named sound clips. Playback is fire and
// forget: callers never wait for or learn about completion.
package audio

// Clip names a sound asset.
type Clip string

const (
	ClipTheme Clip = "main"
	ClipShoot Clip = "shootSound"
	ClipHit   Clip = "HitSound"
	ClipWin   Clip = "win"
	ClipLose  Clip = "lose"
)

// Clips lists every clip the game triggers.
var Clips = []Clip{ClipTheme, ClipShoot, ClipHit, ClipWin, ClipLose}

// Sink is the audio output the game talks to.
type Sink interface {
	Play(c Clip, loop bool)
	SetVolume(v float64)
}

// Nop discards everything. It stands in when no device could be opened.
type Nop struct{}

func (Nop) Play(Clip, bool)   {}
func (Nop) SetVolume(float64) {}
