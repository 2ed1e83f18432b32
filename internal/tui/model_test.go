package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/robalobadob/cosmic-orb/internal/cues"
	"github.com/robalobadob/cosmic-orb/internal/game"
	"github.com/robalobadob/cosmic-orb/internal/hint"
	"github.com/robalobadob/cosmic-orb/internal/orb"
)

type recorder struct{ played [][]cues.Sound }

func (r *recorder) Play(sounds ...cues.Sound) { r.played = append(r.played, sounds) }

func (r *recorder) last() []cues.Sound {
	if len(r.played) == 0 {
		return nil
	}
	return r.played[len(r.played)-1]
}

func newTestModel(t *testing.T, target int) (model, *recorder) {
	t.Helper()
	rec := &recorder{}
	g := game.New(nil, game.WithTargetFunc(func() int { return target }))
	p := orb.NewPulse(time.Hour, nil)
	t.Cleanup(p.Stop)
	return newModel(g, p, rec), rec
}

func press(m model, keys ...string) model {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "backspace":
			msg = tea.KeyMsg{Type: tea.KeyBackspace}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(model)
	}
	return m
}

func typeGuess(m model, guess string) model {
	for _, r := range guess {
		m = press(m, string(r))
	}
	return press(m, "enter")
}

func TestStartScreen(t *testing.T) {
	m, rec := newTestModel(t, 42)
	if !strings.Contains(m.View(), hint.StartButton) {
		t.Fatal("expected start screen")
	}
	m = press(m, "5")
	if m.started || m.display != "" {
		t.Fatal("keypad should be inert before start")
	}
	m = press(m, "enter")
	if !m.started || len(rec.played) != 1 || rec.last()[0] != cues.SoundStart {
		t.Fatalf("start: started=%v played=%v", m.started, rec.played)
	}
	if !strings.Contains(m.View(), hint.AttemptsLeft(game.MaxAttempts)) {
		t.Fatal("expected playing screen")
	}
}

func TestKeypadEditing(t *testing.T) {
	m, _ := newTestModel(t, 42)
	m = press(m, "enter", "1", "2", "3", "4")
	if m.display != "123" {
		t.Fatalf("cap: %q", m.display)
	}
	m = press(m, "backspace")
	if m.display != "12" {
		t.Fatalf("delete: %q", m.display)
	}
	m = press(m, "c")
	if m.display != "" {
		t.Fatalf("clear: %q", m.display)
	}
	m = press(m, "enter")
	if m.game.Round.AttemptsLeft != game.MaxAttempts {
		t.Fatal("empty OK must not submit")
	}
}

func TestGuessToWin(t *testing.T) {
	m, rec := newTestModel(t, 42)
	m = press(m, "enter")

	m = typeGuess(m, "10")
	if m.hint != "สูงกว่า - ไกลพอสมควร 🌟" {
		t.Fatalf("hint=%q", m.hint)
	}
	if !m.pulse.Active() || m.pulse.Glow() != orb.GlowFor(game.TierMedium) {
		t.Fatal("orb should glow medium")
	}
	if got := rec.last(); len(got) != 1 || got[0] != cues.SoundMedium {
		t.Fatalf("sounds=%v", got)
	}
	if !strings.Contains(m.View(), hint.BurntMark) {
		t.Fatal("expected burnt row")
	}

	m = typeGuess(m, "70")
	m = typeGuess(m, "42")
	if m.game.Round.Status != game.StatusWon || m.game.Session.TotalStars != 2 {
		t.Fatalf("round=%+v session=%+v", m.game.Round, *m.game.Session)
	}
	if got := rec.last(); len(got) != 1 || got[0] != cues.SoundWin {
		t.Fatalf("win sounds=%v", got)
	}
	v := m.View()
	if !strings.Contains(v, hint.WonTitle) || !strings.Contains(v, hint.RewardLine(2)) {
		t.Fatalf("won view:\n%s", v)
	}

	m = press(m, "5")
	if m.display != "" {
		t.Fatal("keypad should be inert after a win")
	}
	m = press(m, "n")
	if m.game.Round.Status != game.StatusPlaying || m.game.Session.RoundsPlayed != 2 || m.hint != "" {
		t.Fatalf("new round: %+v", m.game.Round)
	}
	if m.pulse.Active() {
		t.Fatal("orb should rest after a new round")
	}
	if rec.last()[0] != cues.SoundAction {
		t.Fatalf("sounds=%v", rec.last())
	}
}

func TestGuessToGameOver(t *testing.T) {
	m, rec := newTestModel(t, 50)
	m = press(m, "enter")
	for i := 0; i < game.MaxAttempts; i++ {
		m = typeGuess(m, "1")
	}
	if m.game.Round.Status != game.StatusGameOver {
		t.Fatalf("status=%s", m.game.Round.Status)
	}
	if got := rec.last(); len(got) != 2 || got[1] != cues.SoundLose {
		t.Fatalf("sounds=%v", got)
	}
	v := m.View()
	if !strings.Contains(v, hint.LostTitle) || !strings.Contains(v, hint.Answer(50)) {
		t.Fatalf("lost view:\n%s", v)
	}
}

func TestInvalidGuessIgnored(t *testing.T) {
	m, rec := newTestModel(t, 42)
	m = press(m, "enter")
	played := len(rec.played)
	m = typeGuess(m, "0")
	m = typeGuess(m, "101")
	if m.game.Round.AttemptsLeft != game.MaxAttempts || len(rec.played) != played {
		t.Fatal("invalid guess changed state")
	}
	if m.pulse.Active() {
		t.Fatal("invalid guess must not light the orb")
	}
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t, 42)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
}

func TestRenderOrbScales(t *testing.T) {
	small := renderOrb(orb.Baseline, false)
	big := renderOrb(orb.GlowFor(game.TierVeryClose), true)
	if strings.Count(big, "\n") <= strings.Count(small, "\n") {
		t.Fatalf("very close orb should be taller:\n%s\n---\n%s", small, big)
	}
}
