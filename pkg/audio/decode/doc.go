// ABOUTME: Package documentation for decode
// ABOUTME: Whole-file decoding of compressed audio to PCM
// Package decode turns audio files into PCM clips.
//
// LoadFile selects a decoder by filename extension and decodes the whole
// file into memory. Streaming decode of long files is deliberately not
// offered; the engine caches complete clips and replays them from RAM.
//
// A file that decodes to fewer frames than its container declares is not
// an error: LoadFile returns the partial clip with FramesExpected set so
// callers can warn and play what was recovered.
package decode
