package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/raycaster/constants"
)

// cooldowns per sound, zero means every trigger plays
var cooldowns = [soundTypeCount]time.Duration{
	SoundBump: constants.BumpSoundCooldown,
}

// SoundManager plays one-shot effects through a shared mixer on the speaker
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	lastPlayed  [soundTypeCount]time.Time

	// now is replaceable for tests
	now func() time.Time
}

// NewSoundManager creates a new sound manager, nil cfg selects DefaultAudioConfig
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		now:   time.Now,
	}
}

// Initialize opens the speaker and starts the mixer
// Returns ErrAudioDisabled when the config turns audio off, the manager then stays silent
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if !sm.cfg.Enabled {
		return ErrAudioDisabled
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup drops queued sounds and detaches from the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	sm.initialized = false
}

// Play queues soundType unless muted, uninitialized or still cooling down
// Reports whether the sound was queued
func (sm *SoundManager) Play(soundType SoundType) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !sm.trigger(soundType) {
		return false
	}

	streamer := GetSoundEffect(soundType, sm.cfg)
	if streamer == nil {
		return false
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	return true
}

// PlayBump signals a rejected move
func (sm *SoundManager) PlayBump() bool {
	return sm.Play(SoundBump)
}

// PlayToggle signals a UI switch
func (sm *SoundManager) PlayToggle() bool {
	return sm.Play(SoundToggle)
}

// ToggleMute flips the mute state and returns the new value
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return sm.muted
}

// SetMuted sets the mute state
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// Muted reports the mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// trigger applies mute and cooldown, recording the play time when allowed
// Caller holds mu
func (sm *SoundManager) trigger(soundType SoundType) bool {
	if sm.muted || soundType < 0 || soundType >= soundTypeCount {
		return false
	}

	now := sm.now()
	if cd := cooldowns[soundType]; cd > 0 {
		last := sm.lastPlayed[soundType]
		if !last.IsZero() && now.Sub(last) < cd {
			return false
		}
	}

	sm.lastPlayed[soundType] = now
	return true
}
