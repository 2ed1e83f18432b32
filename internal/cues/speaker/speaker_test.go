package speaker

import (
	"testing"

	"github.com/robalobadob/cosmic-orb/internal/cues"
)

func TestNoopBeforeInit(t *testing.T) {
	s := New(44100, 1)
	s.Play(cues.SoundWin, cues.SoundLose)
	s.Play()
	s.Close()
	if s.initialized {
		t.Fatal("speaker should stay uninitialized")
	}
}
