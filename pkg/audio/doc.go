// ABOUTME: Audio fundamentals package providing core types and utilities
// ABOUTME: Defines FileFormat, PCM types and sample conversion functions
// Package audio provides fundamental audio types shared by the decode,
// device and engine packages.
//
// Decoded audio is always interleaved 16-bit signed PCM carried in a PCM
// value. File formats are identified purely by filename extension; the
// decode subpackage maps formats to decoder libraries and the device
// subpackage consumes the resulting samples.
package audio
