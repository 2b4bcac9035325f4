// ABOUTME: FLAC decoder
// ABOUTME: Decodes FLAC files frame by frame via mewkiz/flac
package decode

import (
	"fmt"
	"io"
	"os"

	"github.com/mewkiz/flac"

	"github.com/Cadenza-Audio/cadenza-go/pkg/audio"
)

func loadFLAC(path string) (*audio.PCM, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open FLAC file: %w", err)
	}
	defer f.Close()

	stream, err := flac.New(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode FLAC: %w", err)
	}

	info := stream.Info
	channels := int(info.NChannels)
	bitDepth := int(info.BitsPerSample)
	expected := int(info.NSamples)

	samples := make([]int16, 0, expected*channels)
	for {
		frame, err := stream.ParseNext()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Keep what decoded so far; the caller reports truncation.
			break
		}

		for i := 0; i < int(frame.BlockSize); i++ {
			for ch := 0; ch < channels; ch++ {
				s := frame.Subframes[ch].Samples[i]
				samples = append(samples, audio.SampleFromInt(int(s), bitDepth))
			}
		}
	}

	return finish(path, &audio.PCM{
		Samples:        samples,
		Channels:       channels,
		SampleRate:     int(info.SampleRate),
		FramesExpected: expected,
	})
}
