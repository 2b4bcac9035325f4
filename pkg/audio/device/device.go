// ABOUTME: Playback device interface definitions
// ABOUTME: The capability set the engine consumes: buffers, voices, transport
package device

import (
	"errors"

	"github.com/Cadenza-Audio/cadenza-go/pkg/audio"
)

// ErrVoiceExhausted means the backend cannot allocate another voice.
var ErrVoiceExhausted = errors.New("playback device has no free voices")

// State describes the playback state of a voice.
type State int

const (
	StateInitial State = iota // created or rewound, not yet played
	StatePlaying
	StatePaused
	StateStopped // stopped explicitly, finished naturally, or closed
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateInitial:
		return "initial"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	default:
		return "stopped"
	}
}

// Device opens hardware playback resources. Implementations are not
// required to be safe for concurrent use; the engine drives a device from
// a single goroutine.
type Device interface {
	// NewBuffer uploads a decoded clip, converting it to the device's
	// native rate and channel layout as needed.
	NewBuffer(pcm *audio.PCM) (Buffer, error)

	// Close releases the device. Voices and buffers created from it are
	// invalid afterwards.
	Close() error
}

// Buffer is resident sample data that any number of voices can share.
type Buffer interface {
	// NewVoice binds a fresh voice to this buffer. New voices start at
	// unit gain, non-looping, at the origin, in StateInitial.
	NewVoice() (Voice, error)

	// Close releases the buffer. Voices bound to it must be closed first.
	Close() error
}

// Voice is one live playback instance of a buffer.
type Voice interface {
	Play()
	Pause()
	// Stop halts playback and resets the read position.
	Stop()
	// Rewind resets the read position and returns the voice to
	// StateInitial without playing.
	Rewind()

	SetGain(gain float64)
	Gain() float64

	SetLoop(loop bool)
	Loop() bool

	// SetPosition stores a 2D position for the voice. Spatialization
	// beyond storage is out of scope.
	SetPosition(x, y float64)

	State() State

	// Close destroys the voice. A closed voice reports StateStopped and
	// ignores further transport calls.
	Close() error
}
