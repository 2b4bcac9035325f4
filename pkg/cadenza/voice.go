// ABOUTME: Tracked voice records
// ABOUTME: Tags each live voice with an explicit music/effect role
package cadenza

import (
	"github.com/google/uuid"

	"github.com/Cadenza-Audio/cadenza-go/pkg/audio/device"
)

// VoiceRole distinguishes the single designated music voice from the
// unbounded set of effect voices. Bulk operations and reclamation skip
// music by this tag, never by comparing voice handles.
type VoiceRole int

const (
	RoleEffect VoiceRole = iota
	RoleMusic
)

// String returns a human-readable role name.
func (r VoiceRole) String() string {
	if r == RoleMusic {
		return "music"
	}
	return "effect"
}

// trackedVoice is one live voice the engine owns, with the bookkeeping
// the device layer does not carry.
type trackedVoice struct {
	id    string // short identifier for log correlation
	role  VoiceRole
	voice device.Voice
}

func newTrackedVoice(v device.Voice, role VoiceRole) *trackedVoice {
	return &trackedVoice{
		id:    uuid.NewString()[:8],
		role:  role,
		voice: v,
	}
}
