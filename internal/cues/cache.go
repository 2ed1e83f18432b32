// internal/cues/cache.go
//
// WAV rendering of audio cues.
// Responsibilities:
//   - Encode a cue as 16-bit stereo WAV (beep/wav).
//   - Cache each rendered cue; Preload renders all of them at startup.

package cues

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

// ErrUnknownSound is returned for a cue name with no recipe.
var ErrUnknownSound = errors.New("unknown sound")

// Cache stores each cue rendered as a 16-bit stereo WAV file.
type Cache struct {
	mu     sync.RWMutex
	rate   beep.SampleRate
	volume float64
	store  map[Sound][]byte
}

// NewCache returns an empty cache rendering at sampleRate with unity volume.
func NewCache(sampleRate int) *Cache {
	return &Cache{rate: beep.SampleRate(sampleRate), volume: 1, store: make(map[Sound][]byte)}
}

// WAV returns the encoded cue, rendering it on first use.
func (c *Cache) WAV(s Sound) ([]byte, error) {
	if !s.Valid() {
		return nil, ErrUnknownSound
	}

	c.mu.RLock()
	if b, ok := c.store[s]; ok {
		c.mu.RUnlock()
		return b, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if b, ok := c.store[s]; ok {
		return b, nil
	}
	var buf seekBuffer
	if err := Encode(&buf, s, c.rate, c.volume); err != nil {
		return nil, err
	}
	c.store[s] = buf.Bytes()
	return c.store[s], nil
}

// Preload renders every cue.
func (c *Cache) Preload() error {
	for _, s := range Sounds {
		if _, err := c.WAV(s); err != nil {
			return fmt.Errorf("render %s: %w", s, err)
		}
	}
	return nil
}

// Encode writes s as a WAV file to w.
func Encode(w io.WriteSeeker, s Sound, rate beep.SampleRate, volume float64) error {
	st := Streamer(s, rate, volume)
	if st == nil {
		return ErrUnknownSound
	}
	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	if err := wav.Encode(w, st, format); err != nil {
		return fmt.Errorf("encode wav: %w", err)
	}
	return nil
}

// seekBuffer is an in-memory io.WriteSeeker; wav.Encode seeks back to
// patch the RIFF header sizes once the data length is known.
type seekBuffer struct {
	buf []byte
	pos int
}

func (b *seekBuffer) Write(p []byte) (int, error) {
	if need := b.pos + len(p); need > len(b.buf) {
		b.buf = append(b.buf, make([]byte, need-len(b.buf))...)
	}
	n := copy(b.buf[b.pos:], p)
	b.pos += n
	return n, nil
}

func (b *seekBuffer) Seek(offset int64, whence int) (int64, error) {
	var base int64
	switch whence {
	case io.SeekStart:
	case io.SeekCurrent:
		base = int64(b.pos)
	case io.SeekEnd:
		base = int64(len(b.buf))
	default:
		return 0, errors.New("seek: invalid whence")
	}
	next := base + offset
	if next < 0 {
		return 0, errors.New("seek: negative position")
	}
	b.pos = int(next)
	return next, nil
}

func (b *seekBuffer) Bytes() []byte { return bytes.Clone(b.buf) }
