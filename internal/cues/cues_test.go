package cues

import (
	"bytes"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/robalobadob/cosmic-orb/internal/game"
)

func drain(t *testing.T, s beep.Streamer) (n int, peak float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	for {
		sn, ok := s.Stream(buf)
		for i := 0; i < sn; i++ {
			if v := math.Abs(buf[i][0]); v > peak {
				peak = v
			}
		}
		n += sn
		if !ok {
			return n, peak
		}
		if n > 10*44100 {
			t.Fatal("stream did not terminate")
		}
	}
}

func TestStreamerLengthAndLevel(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, s := range Sounds {
		st := Streamer(s, rate, 1)
		if st == nil {
			t.Fatalf("%s: nil streamer", s)
		}
		n, peak := drain(t, st)
		if want := rate.N(Length(s)); n != want {
			t.Errorf("%s: %d samples want %d", s, n, want)
		}
		if peak == 0 || peak > 1 {
			t.Errorf("%s: peak=%f", s, peak)
		}
	}
}

func TestStreamerMuted(t *testing.T) {
	_, peak := drain(t, Streamer(SoundWin, 22050, 0))
	if peak != 0 {
		t.Fatalf("muted peak=%f", peak)
	}
}

func TestUnknownSound(t *testing.T) {
	if Streamer("nope", 44100, 1) != nil {
		t.Fatal("expected nil streamer for unknown sound")
	}
	if _, err := NewCache(44100).WAV("nope"); !errors.Is(err, ErrUnknownSound) {
		t.Fatalf("err=%v", err)
	}
}

func TestLength(t *testing.T) {
	cases := map[Sound]time.Duration{
		SoundFar:       200 * time.Millisecond,
		SoundVeryClose: 310 * time.Millisecond,
		SoundWin:       900 * time.Millisecond,
		SoundLose:      1150 * time.Millisecond,
		SoundStart:     500 * time.Millisecond,
		SoundAction:    100 * time.Millisecond,
	}
	for s, want := range cases {
		if got := Length(s); got != want {
			t.Errorf("Length(%s)=%v want %v", s, got, want)
		}
	}
}

func TestForOutcome(t *testing.T) {
	cases := []struct {
		out  game.Outcome
		want []Sound
	}{
		{game.Outcome{Status: game.StatusWon, Tier: game.TierVeryClose}, []Sound{SoundWin}},
		{game.Outcome{Status: game.StatusPlaying, Tier: game.TierClose}, []Sound{SoundClose}},
		{game.Outcome{Status: game.StatusPlaying, Tier: game.TierFar}, []Sound{SoundFar}},
		{game.Outcome{Status: game.StatusGameOver, Tier: game.TierMedium}, []Sound{SoundMedium, SoundLose}},
	}
	for _, c := range cases {
		got := ForOutcome(c.out)
		if len(got) != len(c.want) {
			t.Fatalf("%+v: got %v want %v", c.out, got, c.want)
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Fatalf("%+v: got %v want %v", c.out, got, c.want)
			}
		}
	}
}

func TestCacheRendersWAV(t *testing.T) {
	c := NewCache(22050)
	b, err := c.WAV(SoundClose)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(b, []byte("RIFF")) || string(b[8:12]) != "WAVE" {
		t.Fatalf("not a wav file: % x", b[:12])
	}
	frames := beep.SampleRate(22050).N(Length(SoundClose))
	if len(b) < frames*4 {
		t.Fatalf("wav too short: %d bytes for %d frames", len(b), frames)
	}
	again, _ := c.WAV(SoundClose)
	if &again[0] != &b[0] {
		t.Fatal("second lookup should hit the cache")
	}
}

func TestPreload(t *testing.T) {
	c := NewCache(8000)
	if err := c.Preload(); err != nil {
		t.Fatal(err)
	}
	if len(c.store) != len(Sounds) {
		t.Fatalf("cached %d of %d", len(c.store), len(Sounds))
	}
}

func TestSeekBuffer(t *testing.T) {
	var b seekBuffer
	_, _ = b.Write([]byte("hello world"))
	if _, err := b.Seek(0, 0); err != nil {
		t.Fatal(err)
	}
	_, _ = b.Write([]byte("J"))
	if got := string(b.Bytes()); got != "Jello world" {
		t.Fatalf("got %q", got)
	}
	if _, err := b.Seek(-1, 0); err == nil {
		t.Fatal("expected error for negative seek")
	}
}
