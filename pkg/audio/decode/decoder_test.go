// ABOUTME: Tests for the decode entry point
// ABOUTME: Covers format routing, WAV round-trips and failure modes
package decode

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// writeWAV writes a 16-bit mono WAV fixture and returns its path.
func writeWAV(t *testing.T, name string, samples []int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create fixture: %v", err)
	}

	enc := wav.NewEncoder(f, 44100, 16, 1, 1)
	buf := &goaudio.IntBuffer{
		Data:           samples,
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: 44100},
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("failed to close fixture: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("failed to close fixture file: %v", err)
	}

	return path
}

// sineSamples generates a short 440Hz test tone.
func sineSamples(n int) []int {
	samples := make([]int, n)
	for i := range samples {
		samples[i] = int(10000 * math.Sin(2*math.Pi*440*float64(i)/44100))
	}
	return samples
}

func TestLoadFileWAV(t *testing.T) {
	path := writeWAV(t, "tone.wav", sineSamples(4410))

	pcm, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if pcm.Channels != 1 {
		t.Errorf("expected 1 channel, got %d", pcm.Channels)
	}
	if pcm.SampleRate != 44100 {
		t.Errorf("expected 44100Hz, got %d", pcm.SampleRate)
	}
	if pcm.Frames() != 4410 {
		t.Errorf("expected 4410 frames, got %d", pcm.Frames())
	}
	if pcm.Truncated() {
		t.Error("complete file reported truncated")
	}
}

func TestLoadFileUnsupported(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"midi", "song.mid"},
		{"mod", "song.mod"},
		{"raw", "clip.raw"},
		{"unknown", "clip.xyz"},
		{"no extension", "clip"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(tt.path)
			if !errors.Is(err, ErrUnsupportedFormat) {
				t.Errorf("expected ErrUnsupportedFormat, got %v", err)
			}
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.wav"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadFileEmptyWAV(t *testing.T) {
	path := writeWAV(t, "empty.wav", nil)

	_, err := LoadFile(path)
	if !errors.Is(err, ErrNoAudio) {
		t.Errorf("expected ErrNoAudio, got %v", err)
	}
}

func TestLoadFileGarbageWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.wav")
	if err := os.WriteFile(path, []byte("this is not a wav file at all"), 0644); err != nil {
		t.Fatalf("failed to write garbage: %v", err)
	}

	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected error for garbage input")
	}
}
