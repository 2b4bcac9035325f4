// ABOUTME: MP3 decoder
// ABOUTME: Decodes MP3 files via hajimehoshi/go-mp3
package decode

import (
	"fmt"
	"io"
	"os"

	mp3 "github.com/hajimehoshi/go-mp3"

	"github.com/Cadenza-Audio/cadenza-go/pkg/audio"
)

func loadMP3(path string) (*audio.PCM, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open MP3 file: %w", err)
	}
	defer f.Close()

	dec, err := mp3.NewDecoder(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode MP3: %w", err)
	}

	// go-mp3 always outputs 16-bit stereo, 4 bytes per frame.
	const channels = 2
	expected := 0
	if length := dec.Length(); length > 0 {
		expected = int(length / 4)
	}

	data, err := io.ReadAll(dec)
	if err != nil && len(data) == 0 {
		return nil, fmt.Errorf("failed to read MP3 stream: %w", err)
	}

	samples := make([]int16, len(data)/2)
	for i := range samples {
		samples[i] = int16(uint16(data[2*i]) | uint16(data[2*i+1])<<8)
	}

	return finish(path, &audio.PCM{
		Samples:        samples,
		Channels:       channels,
		SampleRate:     dec.SampleRate(),
		FramesExpected: expected,
	})
}
