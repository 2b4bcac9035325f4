// ABOUTME: Package documentation for device
// ABOUTME: Hardware playback abstraction consumed by the engine
// Package device abstracts the playback hardware behind three small
// interfaces: Device opens the output, Buffer holds resident PCM, and
// Voice is one live playback instance of a buffer.
//
// The engine in pkg/cadenza is written against these interfaces only;
// the oto-backed implementation in this package is the default real
// backend, and tests substitute in-memory fakes.
package device
