// ABOUTME: Transport actions for music and effect voices
// ABOUTME: Stop/pause/resume/replay/rewind/mute/loop/volume stepping
package cadenza

import (
	"log"
	"math"
)

// Action is a playback transport command.
type Action int

const (
	ActionStop Action = iota
	ActionResume
	ActionPause
	ActionReplay // rewind then play
	ActionRewind
	ActionMute
	ActionUnmute
	ActionLoop
	ActionStopLoop
	ActionVolumeUp
	ActionVolumeDown
)

// String returns a human-readable action name.
func (a Action) String() string {
	switch a {
	case ActionStop:
		return "stop"
	case ActionResume:
		return "resume"
	case ActionPause:
		return "pause"
	case ActionReplay:
		return "replay"
	case ActionRewind:
		return "rewind"
	case ActionMute:
		return "mute"
	case ActionUnmute:
		return "unmute"
	case ActionLoop:
		return "loop"
	case ActionStopLoop:
		return "stop-loop"
	case ActionVolumeUp:
		return "volume-up"
	case ActionVolumeDown:
		return "volume-down"
	default:
		return "invalid"
	}
}

// volumeStep is the fixed gain increment for VolumeUp/VolumeDown.
const volumeStep = 0.1

func clampGain(g float64) float64 {
	if g < 0 {
		return 0
	}
	if g > 1 {
		return 1
	}
	return g
}

// gainToVolume converts a normalized gain to the external 0-100 scale.
func gainToVolume(g float64) int {
	return int(math.Round(g * 100))
}

// volumeToGain converts the external 0-100 scale to a normalized gain.
func volumeToGain(v int) float64 {
	if v < 0 {
		v = 0
	} else if v > 100 {
		v = 100
	}
	return float64(v) / 100
}

// OperateCurrentMusic applies a transport action to the current music
// voice. A silent no-op when there is no current music. Mute zeroes the
// gain without touching the remembered music volume; Unmute restores it.
func (e *Engine) OperateCurrentMusic(action Action) {
	if e.music == nil {
		return
	}
	v := e.music.voice

	switch action {
	case ActionStop:
		v.Stop()
	case ActionPause:
		v.Pause()
	case ActionResume:
		v.Play()
	case ActionReplay:
		v.Rewind()
		v.Play()
	case ActionRewind:
		v.Rewind()
	case ActionLoop:
		v.SetLoop(true)
	case ActionStopLoop:
		v.SetLoop(false)
	case ActionMute:
		v.SetGain(0)
	case ActionUnmute:
		v.SetGain(e.musicVolume)
	case ActionVolumeUp:
		e.musicVolume = clampGain(e.musicVolume + volumeStep)
		v.SetGain(e.musicVolume)
	case ActionVolumeDown:
		e.musicVolume = clampGain(e.musicVolume - volumeStep)
		v.SetGain(e.musicVolume)
	default:
		log.Printf("Warning: invalid audio action %d", action)
	}
}

// OperateCurrentSounds applies a transport action to every effect voice.
// A no-op before Init. Finished voices are reclaimed first, so the action
// only reaches live ones. Effect voices are skipped or included by their
// role tag, never by handle comparison. Unmute restores unit gain: effect
// voices have no per-voice remembered volume (unlike music — the original
// engine's contract, kept deliberately).
func (e *Engine) OperateCurrentSounds(action Action) {
	if !e.initialized {
		return
	}

	e.cache.reclaimFinished()

	if action > ActionVolumeDown || action < ActionStop {
		log.Printf("Warning: invalid audio action %d", action)
		return
	}

	e.cache.forEachEffect(func(tv *trackedVoice) {
		v := tv.voice
		switch action {
		case ActionStop:
			v.Stop()
		case ActionPause:
			v.Pause()
		case ActionResume:
			v.Play()
		case ActionReplay:
			v.Rewind()
			v.Play()
		case ActionRewind:
			v.Rewind()
		case ActionLoop:
			v.SetLoop(true)
		case ActionStopLoop:
			v.SetLoop(false)
		case ActionMute:
			v.SetGain(0)
		case ActionUnmute:
			v.SetGain(1.0)
		case ActionVolumeUp:
			v.SetGain(clampGain(v.Gain() + volumeStep))
		case ActionVolumeDown:
			v.SetGain(clampGain(v.Gain() - volumeStep))
		}
	})
}
