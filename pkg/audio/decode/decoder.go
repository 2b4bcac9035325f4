// ABOUTME: Decoder selection and entry point
// ABOUTME: Maps sniffed file formats to per-format decode functions
package decode

import (
	"errors"
	"fmt"

	"github.com/Cadenza-Audio/cadenza-go/pkg/audio"
)

var (
	// ErrUnsupportedFormat means the extension is outside the decodable set.
	ErrUnsupportedFormat = errors.New("unsupported audio format")

	// ErrNoAudio means the file parsed but contained zero sample frames.
	ErrNoAudio = errors.New("file contains no audio data")
)

// LoadFile decodes an audio file into a PCM clip. The decoder is chosen
// by the file's extension; MIDI, MOD and raw files have no decoder and
// fail with ErrUnsupportedFormat.
func LoadFile(path string) (*audio.PCM, error) {
	switch format := audio.FormatFromPath(path); format {
	case audio.FormatWAV:
		return loadWAV(path)
	case audio.FormatMP3:
		return loadMP3(path)
	case audio.FormatFLAC:
		return loadFLAC(path)
	case audio.FormatOgg:
		return loadVorbis(path)
	case audio.FormatAIFF:
		return loadAIFF(path)
	default:
		return nil, fmt.Errorf("%w: %s (%s)", ErrUnsupportedFormat, path, format)
	}
}

// finish applies the zero-frame check shared by every decoder.
func finish(path string, pcm *audio.PCM) (*audio.PCM, error) {
	if pcm.Frames() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoAudio, path)
	}
	return pcm, nil
}
