// internal/cues/synth.go
//
// Procedural sound cues built from beep streamers.
// Each cue is a handful of voices: one oscillator with an optional
// exponential pitch sweep and an exponential gain ramp down to silence.
// Voices carry their own start offset so a cue is just beep.Mix of voices.

package cues

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/robalobadob/cosmic-orb/internal/game"
)

// Sound names a cue.
type Sound string

const (
	SoundVeryClose Sound = "veryClose"
	SoundClose     Sound = "close"
	SoundMedium    Sound = "medium"
	SoundFar       Sound = "far"
	SoundWin       Sound = "win"
	SoundLose      Sound = "lose"
	SoundStart     Sound = "start"
	SoundAction    Sound = "action"
)

// Sounds lists every cue.
var Sounds = []Sound{
	SoundVeryClose, SoundClose, SoundMedium, SoundFar,
	SoundWin, SoundLose, SoundStart, SoundAction,
}

// Valid reports whether s names a known cue.
func (s Sound) Valid() bool {
	_, ok := recipes[s]
	return ok
}

// ForTier maps a proximity tier to its cue.
func ForTier(t game.Tier) Sound {
	switch t {
	case game.TierVeryClose:
		return SoundVeryClose
	case game.TierClose:
		return SoundClose
	case game.TierMedium:
		return SoundMedium
	default:
		return SoundFar
	}
}

// ForOutcome returns the cues to play after a guess, in order.
// A hit plays only the win cue; a miss plays its tier cue, followed by the
// lose cue when it was the last attempt.
func ForOutcome(o game.Outcome) []Sound {
	if o.Status == game.StatusWon {
		return []Sound{SoundWin}
	}
	out := []Sound{ForTier(o.Tier)}
	if o.Status == game.StatusGameOver {
		out = append(out, SoundLose)
	}
	return out
}

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveTriangle
)

// gainFloor is where every voice's gain ramp ends.
const gainFloor = 0.01

type note struct {
	wave     Wave
	freq     float64 // start frequency
	sweepTo  float64 // end frequency, 0 for none
	at       time.Duration
	duration time.Duration
	gain     float64
}

var recipes = map[Sound][]note{
	SoundVeryClose: veryCloseNotes(),
	SoundClose:     pulseTrain(4, WaveSquare, 600, 100, 80*time.Millisecond, 60*time.Millisecond, 0.12),
	SoundMedium:    pulseTrain(2, WaveSaw, 400, -50, 150*time.Millisecond, 120*time.Millisecond, 0.1),
	SoundFar: {
		{wave: WaveTriangle, freq: 250, duration: 200 * time.Millisecond, gain: 0.08},
	},
	SoundWin: append([]note{
		{wave: WaveSaw, freq: 200, sweepTo: 800, duration: 500 * time.Millisecond, gain: 0.2},
	}, shift(pulseTrain(3, WaveSquare, 1200, -200, 100*time.Millisecond, 200*time.Millisecond, 0.15), 500*time.Millisecond)...),
	SoundLose: append([]note{
		{wave: WaveSaw, freq: 600, sweepTo: 100, duration: 800 * time.Millisecond, gain: 0.15},
	}, shift(pulseTrain(2, WaveSquare, 300, 0, 200*time.Millisecond, 150*time.Millisecond, 0.1), 800*time.Millisecond)...),
	SoundStart: {
		{wave: WaveSquare, freq: 300, sweepTo: 900, duration: 300 * time.Millisecond, gain: 0.15},
		{wave: WaveSine, freq: 800, at: 350 * time.Millisecond, duration: 150 * time.Millisecond, gain: 0.12},
	},
	SoundAction: {
		{wave: WaveSquare, freq: 600, sweepTo: 400, duration: 100 * time.Millisecond, gain: 0.12},
	},
}

// veryCloseNotes is a fast scanner warble: eight blips around 800 Hz.
func veryCloseNotes() []note {
	out := make([]note, 8)
	for i := range out {
		out[i] = note{
			wave:     WaveSquare,
			freq:     800 + math.Sin(float64(i))*200,
			at:       time.Duration(i) * 40 * time.Millisecond,
			duration: 30 * time.Millisecond,
			gain:     0.15,
		}
	}
	return out
}

func pulseTrain(n int, w Wave, freq, step float64, every, length time.Duration, gain float64) []note {
	out := make([]note, n)
	for i := range out {
		out[i] = note{
			wave:     w,
			freq:     freq + float64(i)*step,
			at:       time.Duration(i) * every,
			duration: length,
			gain:     gain,
		}
	}
	return out
}

func shift(ns []note, by time.Duration) []note {
	for i := range ns {
		ns[i].at += by
	}
	return ns
}

// Length is the total duration of a cue, or 0 for an unknown one.
func Length(s Sound) time.Duration {
	var end time.Duration
	for _, n := range recipes[s] {
		if e := n.at + n.duration; e > end {
			end = e
		}
	}
	return end
}

// voice streams a single note, silent until its start offset.
type voice struct {
	n     note
	rate  beep.SampleRate
	start int
	size  int
	pos   int
	phase float64
}

func newVoice(n note, rate beep.SampleRate) *voice {
	return &voice{n: n, rate: rate, start: rate.N(n.at), size: rate.N(n.duration)}
}

func (v *voice) Stream(samples [][2]float64) (n int, ok bool) {
	end := v.start + v.size
	if v.pos >= end {
		return 0, false
	}
	for i := range samples {
		if v.pos >= end {
			return i, true
		}
		var val float64
		if v.pos >= v.start && v.size > 0 {
			t := float64(v.pos-v.start) / float64(v.size)
			freq := v.n.freq
			if v.n.sweepTo > 0 {
				freq = v.n.freq * math.Pow(v.n.sweepTo/v.n.freq, t)
			}
			gain := v.n.gain * math.Pow(gainFloor/v.n.gain, t)
			val = sample(v.n.wave, v.phase) * gain

			v.phase += freq / float64(v.rate)
			v.phase -= math.Floor(v.phase)
		}
		samples[i][0] = val
		samples[i][1] = val
		v.pos++
	}
	return len(samples), true
}

func (v *voice) Err() error { return nil }

// sample evaluates one period of w at phase in [0,1).
func sample(w Wave, phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2 * (phase - 0.5)
	case WaveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// Streamer builds a finite stream for s at the given rate and master volume
// (1 = unity). Unknown sounds yield nil.
func Streamer(s Sound, rate beep.SampleRate, volume float64) beep.Streamer {
	notes, ok := recipes[s]
	if !ok {
		return nil
	}
	voices := make([]beep.Streamer, len(notes))
	for i, n := range notes {
		voices[i] = newVoice(n, rate)
	}
	// Pad with silence and cut at the cue length so the stream has an exact size.
	total := rate.N(Length(s))
	mixed := beep.Take(total, beep.Seq(beep.Mix(voices...), beep.Silence(-1)))
	return newVolume(mixed, volume)
}

// newVolume wraps s in a linear volume; 0 or less mutes.
// math.Log2(0) is -Inf, so silence is requested explicitly.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
