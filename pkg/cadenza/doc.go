// ABOUTME: Package documentation for cadenza
// ABOUTME: The audio resource and playback-state engine
/*
Package cadenza implements an audio playback engine for interactive
applications: background music with fade transitions, fire-and-forget
sound effects, transport control, and lazy decode-and-cache of audio
assets.

The engine maps file paths to stable integer keys, caches decoded PCM
buffers per key, tracks which voices are bound to which buffer, reclaims
voices whose playback has finished, and drives a frame-tick fade ramp on
the single designated music voice.

The engine is single-threaded by contract. Every operation runs
synchronously on the caller's goroutine and Tick must be called at the
configured fixed rate (60Hz by default), typically from a game loop. An
application driving the engine from several goroutines must serialize
access itself.

Basic use:

	eng := cadenza.New(cadenza.DefaultConfig())
	if err := eng.Init(); err != nil {
		log.Fatal(err)
	}
	defer eng.Close()

	eng.PlayMusic("assets/theme.mp3")
	eng.PlaySoundEffect("assets/shot.wav")
	for range frameTicker.C {
		eng.Tick()
	}
*/
package cadenza
