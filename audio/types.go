package audio

import (
	"errors"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundBump   SoundType = iota // Movement rejected by a wall
	SoundToggle                  // Minimap or mute switched
	soundTypeCount
)

// String returns the key used in RAYCASTER_SFX_VOLUMES
func (s SoundType) String() string {
	switch s {
	case SoundBump:
		return "bump"
	case SoundToggle:
		return "toggle"
	default:
		return "unknown"
	}
}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled by configuration")
)
