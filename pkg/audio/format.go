// ABOUTME: File format identification by extension
// ABOUTME: Maps filename suffixes to the fixed set of recognized audio formats
package audio

import (
	"path/filepath"
	"strings"
)

// FileFormat identifies an audio container by filename extension.
type FileFormat int

const (
	FormatOther FileFormat = iota // unrecognized or missing extension
	FormatCommand
	FormatWAV
	FormatMOD
	FormatMIDI
	FormatOgg
	FormatMP3
	FormatFLAC
	FormatAIFF
	FormatRaw
)

// String returns a human-readable format name.
func (f FileFormat) String() string {
	switch f {
	case FormatCommand:
		return "command"
	case FormatWAV:
		return "wav"
	case FormatMOD:
		return "mod"
	case FormatMIDI:
		return "midi"
	case FormatOgg:
		return "ogg"
	case FormatMP3:
		return "mp3"
	case FormatFLAC:
		return "flac"
	case FormatAIFF:
		return "aiff"
	case FormatRaw:
		return "raw"
	default:
		return "other"
	}
}

// FormatFromPath sniffs the audio format from the path's extension.
// Matching is case-insensitive; anything outside the fixed table is
// FormatOther.
func FormatFromPath(path string) FileFormat {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))

	switch ext {
	case "wav":
		return FormatWAV
	case "ogg":
		return FormatOgg
	case "mp3":
		return FormatMP3
	case "flac":
		return FormatFLAC
	case "mid", "midi":
		return FormatMIDI
	case "mod":
		return FormatMOD
	case "aiff":
		return FormatAIFF
	case "raw":
		return FormatRaw
	default:
		return FormatOther
	}
}
