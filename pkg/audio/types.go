// ABOUTME: Audio type definitions
// ABOUTME: Defines decoded PCM buffers and sample conversion functions
package audio

// PCM holds a fully decoded audio clip as interleaved 16-bit samples.
type PCM struct {
	Samples    []int16 // interleaved, Channels values per frame
	Channels   int
	SampleRate int

	// FramesExpected is the frame count the container declared, or 0 when
	// the container carries no total (e.g. Ogg Vorbis chains).
	FramesExpected int
}

// Frames returns the number of decoded sample frames.
func (p *PCM) Frames() int {
	if p.Channels == 0 {
		return 0
	}
	return len(p.Samples) / p.Channels
}

// Truncated reports whether fewer frames were decoded than the container
// declared. Truncated clips are still playable.
func (p *PCM) Truncated() bool {
	return p.FramesExpected > 0 && p.Frames() < p.FramesExpected
}

// SampleToBytes converts an int16 sample to little-endian bytes.
func SampleToBytes(sample int16) (lo, hi byte) {
	return byte(sample), byte(sample >> 8)
}

// SampleFromFloat32 converts a normalized float32 sample in [-1, 1] to
// int16 with clipping.
func SampleFromFloat32(sample float32) int16 {
	scaled := sample * 32767
	if scaled > 32767 {
		return 32767
	}
	if scaled < -32768 {
		return -32768
	}
	return int16(scaled)
}

// SampleFromInt converts an integer sample of the given bit depth to
// int16, shifting as needed.
func SampleFromInt(sample int, bitDepth int) int16 {
	switch {
	case bitDepth > 16:
		return int16(sample >> (bitDepth - 16))
	case bitDepth < 16:
		return int16(sample << (16 - bitDepth))
	default:
		return int16(sample)
	}
}
