// ABOUTME: Ogg Vorbis decoder
// ABOUTME: Decodes Ogg Vorbis files via jfreymuth/oggvorbis
package decode

import (
	"fmt"
	"os"

	"github.com/jfreymuth/oggvorbis"

	"github.com/Cadenza-Audio/cadenza-go/pkg/audio"
)

func loadVorbis(path string) (*audio.PCM, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open Ogg file: %w", err)
	}
	defer f.Close()

	data, format, err := oggvorbis.ReadAll(f)
	if err != nil && len(data) == 0 {
		return nil, fmt.Errorf("failed to decode Ogg Vorbis: %w", err)
	}

	samples := make([]int16, len(data))
	for i, s := range data {
		samples[i] = audio.SampleFromFloat32(s)
	}

	// Ogg chains carry no up-front total; FramesExpected stays zero.
	return finish(path, &audio.PCM{
		Samples:    samples,
		Channels:   format.Channels,
		SampleRate: format.SampleRate,
	})
}
