// ABOUTME: Time-driven fade ramp for the music voice
// ABOUTME: Linear gain interpolation via gween, advanced by fixed ticks
package cadenza

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/Cadenza-Audio/cadenza-go/pkg/audio/device"
)

// LoopInfinite is the loop count sentinel for "repeat forever". Finite
// repeat counts beyond a single play are not modeled; any other value
// plays once.
const LoopInfinite = -1

// fader ramps the music voice's gain linearly from a start to a target
// value, one fixed tick at a time. The tween's duration is the ramp's
// whole tick count, stepped by exactly 1 per tick: tick counts are exact
// in float32, so a ramp of N ticks finishes on tick N, with no
// accumulation drift from a fractional per-tick seconds step.
type fader struct {
	tween  *gween.Tween
	target float64
	active bool
}

func (f *fader) start(from, to float64, ms, tickRate int) {
	ticks := (ms*tickRate + 999) / 1000 // round up, minimum one tick
	if ticks < 1 {
		ticks = 1
	}
	f.tween = gween.New(float32(from), float32(to), float32(ticks), ease.Linear)
	f.target = to
	f.active = true
}

func (f *fader) cancel() {
	f.active = false
	f.tween = nil
}

// step advances the ramp by one tick and returns the gain to apply.
func (f *fader) step() (gain float64, finished bool) {
	value, finished := f.tween.Update(1)
	return float64(value), finished
}

// FadeInMusic starts path as the current music and ramps its gain from
// silence to the music volume over ms milliseconds. loops == LoopInfinite
// sets the voice looping; any other count plays once. Fails like
// PlayMusic on load or allocation errors.
func (e *Engine) FadeInMusic(path string, loops, ms int) error {
	if err := e.PlayMusic(path); err != nil {
		return err
	}

	e.music.voice.SetGain(0)
	e.music.voice.SetLoop(loops == LoopInfinite)
	e.fade.start(0, e.musicVolume, ms, e.cfg.TickRate)
	return nil
}

// FadeOutMusic ramps the current music from the music volume to silence
// over ms milliseconds, then stops the voice and fires the finish
// notification. A no-op without current music. The voice's loop flag is
// left untouched.
func (e *Engine) FadeOutMusic(ms int) {
	if e.music == nil {
		return
	}
	e.fade.start(e.musicVolume, 0, ms, e.cfg.TickRate)
}

// Tick advances the engine by one fixed time step. The engine assumes a
// fixed-step caller at the configured tick rate and does not measure
// wall-clock time itself.
//
// A fade whose voice was stopped or destroyed out from under it (generic
// Stop, a freed buffer) cancels without firing the finish notification.
func (e *Engine) Tick() {
	if !e.fade.active {
		return
	}
	if e.music == nil || e.music.voice.State() == device.StateStopped {
		e.fade.cancel()
		return
	}

	gain, finished := e.fade.step()
	e.music.voice.SetGain(gain)
	if !finished {
		return
	}

	target := e.fade.target
	e.fade.cancel()
	if target == 0 {
		e.music.voice.Stop()
		if e.finish != nil {
			e.finish()
		}
	}
}

// IsMusicFading reports whether a fade ramp is in progress.
func (e *Engine) IsMusicFading() bool {
	return e.fade.active
}
