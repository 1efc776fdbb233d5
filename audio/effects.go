package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/grid-arcade/constants"
)

// semitone is the frequency ratio between adjacent notes
var semitone = math.Pow(2, 1.0/12)

// majorSteps are semitone offsets of a major arpeggio; four lines reach the octave
var majorSteps = [...]int{0, 4, 7, 12}

// sweep is a square wave gliding linearly between two frequencies
type sweep struct {
	from, to float64
	phase    float64
	position int
	total    int
	rate     beep.SampleRate
}

func newSweep(from, to float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sweep{from: from, to: to, total: rate.N(duration), rate: rate}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.total {
			return i, i > 0
		}
		val := -1.0
		if s.phase < 0.5 {
			val = 1.0
		}
		samples[i][0] = val
		samples[i][1] = val

		progress := float64(s.position) / float64(s.total)
		freq := s.from + (s.to-s.from)*progress
		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// envelope applies a linear attack and release to a fixed-length stream
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: beep.Take(rate.N(duration), s),
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1.0
		if e.attack > 0 && e.position < e.attack {
			gain = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			gain = math.Min(gain, float64(remaining)/float64(e.release))
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales linearly; zero or negative volume is silent since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// CreateEatSound generates a short sine blip for the snake eating food
func CreateEatSound(rate beep.SampleRate, vol float64) beep.Streamer {
	tone, err := generators.SineTone(rate, constants.EatSoundFrequency)
	if err != nil {
		return nil
	}
	shaped := newEnvelope(tone, constants.EatSoundDuration, constants.SoundAttack, constants.EatSoundRelease, rate)
	return newVolume(shaped, vol)
}

// CreateClearSound generates a rising arpeggio with one note per cleared line
func CreateClearSound(rate beep.SampleRate, lines int, vol float64) beep.Streamer {
	if lines <= 0 {
		return nil
	}
	if lines > len(majorSteps) {
		lines = len(majorSteps)
	}

	notes := make([]beep.Streamer, 0, lines)
	for i := 0; i < lines; i++ {
		freq := constants.ClearSoundBaseFreq * math.Pow(semitone, float64(majorSteps[i]))
		tone, err := generators.SineTone(rate, freq)
		if err != nil {
			return nil
		}
		notes = append(notes, newEnvelope(tone, constants.ClearSoundDuration, constants.SoundAttack, constants.ClearSoundRelease, rate))
	}
	return newVolume(beep.Seq(notes...), vol)
}

// CreateGameOverSound generates a falling square-wave sweep
func CreateGameOverSound(rate beep.SampleRate, vol float64) beep.Streamer {
	osc := newSweep(constants.GameOverSoundStart, constants.GameOverSoundEnd, constants.GameOverSoundDuration, rate)
	shaped := newEnvelope(osc, constants.GameOverSoundDuration, constants.SoundAttack, constants.GameOverSoundRelease, rate)
	// Square waves are loud; keep the sweep under the sine cues
	return newVolume(shaped, vol*0.4)
}
