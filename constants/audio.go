package constants

import "time"

// Audio Output
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Bump Sound Timing
const (
	BumpSoundDuration  = 90 * time.Millisecond
	BumpSoundAttack    = 4 * time.Millisecond
	BumpSoundRelease   = 60 * time.Millisecond
	BumpSoundFrequency = 110.0

	// BumpSoundCooldown suppresses retriggering while the player keeps pushing into a wall
	BumpSoundCooldown = 250 * time.Millisecond
)

// Toggle Sound Timing
const (
	// ToggleSoundNoteDuration is the length of each of the two notes
	ToggleSoundNoteDuration = 40 * time.Millisecond
)
