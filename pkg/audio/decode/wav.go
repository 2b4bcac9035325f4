// ABOUTME: WAV decoder
// ABOUTME: Decodes RIFF/WAVE files via go-audio/wav
package decode

import (
	"fmt"
	"os"

	"github.com/go-audio/wav"

	"github.com/Cadenza-Audio/cadenza-go/pkg/audio"
)

func loadWAV(path string) (*audio.PCM, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open WAV file: %w", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("not a valid WAV file: %s", path)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil && (buf == nil || len(buf.Data) == 0) {
		return nil, fmt.Errorf("failed to decode WAV: %w", err)
	}

	channels := int(dec.NumChans)
	bitDepth := int(dec.BitDepth)

	samples := make([]int16, len(buf.Data))
	for i, s := range buf.Data {
		samples[i] = audio.SampleFromInt(s, bitDepth)
	}

	// PCMSize is the declared data chunk length; a shorter read means a
	// truncated file.
	expected := 0
	if bytesPerFrame := channels * bitDepth / 8; bytesPerFrame > 0 {
		expected = dec.PCMSize / bytesPerFrame
	}

	return finish(path, &audio.PCM{
		Samples:        samples,
		Channels:       channels,
		SampleRate:     int(dec.SampleRate),
		FramesExpected: expected,
	})
}
