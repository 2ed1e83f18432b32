// internal/cues/speaker/speaker.go
//
// Local playback of audio cues.
// Responsibilities:
//   - Open the audio device once and keep a mixer playing on it.
//   - Queue cues back to back (beep.Seq) so a tier cue and the lose cue
//     never overlap.
//
// Notes:
//   - Only the terminal client imports this package. Package cues and
//     the HTTP server must not depend on the audio device driver.

package speaker

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	device "github.com/gopxl/beep/speaker"

	"github.com/robalobadob/cosmic-orb/internal/cues"
)

// Speaker plays cues on the local audio device.
// Every method is a no-op until Init succeeds.
type Speaker struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	volume      float64
	mixer       *beep.Mixer
	initialized bool
}

// New creates a speaker at sampleRate with a master volume (1 = unity).
func New(sampleRate int, volume float64) *Speaker {
	return &Speaker{rate: beep.SampleRate(sampleRate), volume: volume, mixer: &beep.Mixer{}}
}

// Init opens the audio device with a 100ms buffer.
func (s *Speaker) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := device.Init(s.rate, s.rate.N(100*time.Millisecond)); err != nil {
		return err
	}
	device.Play(s.mixer)
	s.initialized = true
	return nil
}

// Play queues the given cues back to back.
func (s *Speaker) Play(sounds ...cues.Sound) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || len(sounds) == 0 {
		return
	}
	seq := make([]beep.Streamer, 0, len(sounds))
	for _, snd := range sounds {
		if st := cues.Streamer(snd, s.rate, s.volume); st != nil {
			seq = append(seq, st)
		}
	}
	device.Lock()
	s.mixer.Add(beep.Seq(seq...))
	device.Unlock()
}

// Close silences all cues.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	device.Lock()
	s.mixer.Clear()
	device.Unlock()
	s.initialized = false
}
