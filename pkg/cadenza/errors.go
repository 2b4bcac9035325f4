// ABOUTME: Engine sentinel errors
// ABOUTME: Failure taxonomy for init, load and voice allocation
package cadenza

import "errors"

var (
	// ErrNotInitialized means Init has not been called or has failed.
	ErrNotInitialized = errors.New("audio engine not initialized")

	// ErrAlreadyInitialized means Init was called twice without Close.
	ErrAlreadyInitialized = errors.New("audio engine already initialized")

	// ErrLoadFailed wraps decoder and buffer-upload failures. No partial
	// state is left registered when a load fails.
	ErrLoadFailed = errors.New("failed to load audio file")
)
