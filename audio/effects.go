package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/lixenwraith/raycaster/constants"
)

// waveform maps a phase in [0, 1) to a sample in [-1, 1]
type waveform func(phase float64) float64

func sawWave(phase float64) float64  { return 2*phase - 1 }
func sineWave(phase float64) float64 { return math.Sin(2 * math.Pi * phase) }
func noiseWave(float64) float64      { return rand.Float64()*2 - 1 }

// source streams a waveform forever, callers bound it with beep.Take
type source struct {
	form  waveform
	phase float64
	step  float64
}

func newSource(form waveform, freq float64, rate beep.SampleRate) *source {
	return &source{form: form, step: freq / float64(rate)}
}

func (s *source) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		v := s.form(s.phase)
		samples[i] = [2]float64{v, v}
		s.phase += s.step
		s.phase -= math.Floor(s.phase)
	}
	return len(samples), true
}

func (s *source) Err() error { return nil }

// gain is the linear attack/release weight of sample pos in a sound of length samples
// Overlapping ramps take the smaller weight
func gain(pos, length, attack, release int) float64 {
	g := 1.0
	if attack > 0 && pos < attack {
		g = float64(pos) / float64(attack)
	}
	if release > 0 && pos >= length-release {
		r := float64(length-pos) / float64(release)
		if r < 0 {
			r = 0
		}
		g = math.Min(g, r)
	}
	return g
}

// ramp fades a fixed-length stream in and out
type ramp struct {
	beep.Streamer
	pos, length     int
	attack, release int
}

// shape cuts s to d and applies attack and release ramps
func shape(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	n := rate.N(d)
	return &ramp{
		Streamer: beep.Take(n, s),
		length:   n,
		attack:   rate.N(attack),
		release:  rate.N(release),
	}
}

func (r *ramp) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = r.Streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := gain(r.pos, r.length, r.attack, r.release)
		samples[i][0] *= g
		samples[i][1] *= g
		r.pos++
	}
	return n, ok
}

// scaled multiplies s by a linear volume, zero is silence
func scaled(s beep.Streamer, vol float64) beep.Streamer {
	if vol < 0 {
		vol = 0
	}
	return &effects.Gain{Streamer: s, Gain: vol - 1}
}

// CreateBumpSound is a low saw thud with a noise transient, played when a wall stops the player
func CreateBumpSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constants.BumpSoundDuration
	attack := constants.BumpSoundAttack

	body := shape(newSource(sawWave, constants.BumpSoundFrequency, rate), d, attack, constants.BumpSoundRelease, rate)
	// Transient decays across the whole sound, well before the body fades
	click := shape(newSource(noiseWave, 0, rate), d, attack, d-attack, rate)

	mixed := beep.Mix(scaled(body, 0.8), scaled(click, 0.2))
	return scaled(mixed, cfg.EffectVolumes[SoundBump]*cfg.MasterVolume)
}

// CreateToggleSound is a short two-note blip for UI switches
func CreateToggleSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	d := constants.ToggleSoundNoteDuration

	low := shape(tone(rate, 660.0), d, constants.BumpSoundAttack, d/2, rate)
	high := shape(tone(rate, 990.0), d, constants.BumpSoundAttack, d/2, rate)

	return scaled(beep.Seq(low, high), cfg.EffectVolumes[SoundToggle]*cfg.MasterVolume)
}

// tone is an endless sine, using the local source when the generator rejects freq for rate
func tone(rate beep.SampleRate, freq float64) beep.Streamer {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return newSource(sineWave, freq, rate)
	}
	return sine
}

// GetSoundEffect returns the streamer for soundType, nil when unknown
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundBump:
		return CreateBumpSound(cfg)
	case SoundToggle:
		return CreateToggleSound(cfg)
	default:
		return nil
	}
}
