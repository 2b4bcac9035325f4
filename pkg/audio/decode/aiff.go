// ABOUTME: AIFF decoder
// ABOUTME: Decodes AIFF files via go-audio/aiff
package decode

import (
	"fmt"
	"os"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/Cadenza-Audio/cadenza-go/pkg/audio"
)

func loadAIFF(path string) (*audio.PCM, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open AIFF file: %w", err)
	}
	defer f.Close()

	dec := aiff.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("not a valid AIFF file: %s", path)
	}
	dec.ReadInfo()

	format := dec.Format()
	if format == nil {
		return nil, fmt.Errorf("unsupported AIFF layout: %s", path)
	}
	channels := format.NumChannels
	bitDepth := int(dec.BitDepth)
	expected := int(dec.NumSampleFrames)

	samples := make([]int16, 0, expected*channels)
	intBuf := &goaudio.IntBuffer{Data: make([]int, 4096), Format: format}
	for {
		n, err := dec.PCMBuffer(intBuf)
		if n == 0 {
			break
		}
		for _, s := range intBuf.Data[:n] {
			samples = append(samples, audio.SampleFromInt(s, bitDepth))
		}
		if err != nil {
			break
		}
	}

	return finish(path, &audio.PCM{
		Samples:        samples,
		Channels:       channels,
		SampleRate:     format.SampleRate,
		FramesExpected: expected,
	})
}
