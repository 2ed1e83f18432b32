// internal/tui/model.go
//
// bubbletea model for the terminal client.
// Responsibilities:
//   - Start screen, keypad input (3-digit cap, delete, clear, OK).
//   - Apply guesses to the game, fire the orb pulse, play cues.
//   - Win/lose screens; `n` starts a new round, `q` quits.

package tui

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/cosmic-orb/internal/cues"
	"github.com/robalobadob/cosmic-orb/internal/game"
	"github.com/robalobadob/cosmic-orb/internal/hint"
	"github.com/robalobadob/cosmic-orb/internal/orb"
)

// maxDigits caps keypad input; 100 is the widest valid guess.
const maxDigits = 3

// Player plays audio cues. *speaker.Speaker satisfies it.
type Player interface {
	Play(sounds ...cues.Sound)
}

type model struct {
	game   *game.Game
	pulse  *orb.Pulse
	player Player

	width   int
	started bool
	display string
	hint    string
	lastLog string
}

// decayMsg is sent when the orb fades back to rest.
type decayMsg struct{}

func newModel(g *game.Game, p *orb.Pulse, player Player) model {
	return model{game: g, pulse: p, player: player}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) play(sounds ...cues.Sound) {
	if m.player != nil {
		m.player.Play(sounds...)
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case decayMsg:
		// nothing to change; the redraw picks up the resting glow
		return m, nil
	case tea.KeyMsg:
		key := msg.String()
		if key == "ctrl+c" || key == "q" {
			m.pulse.Stop()
			return m, tea.Quit
		}
		if !m.started {
			if key == "enter" || key == " " {
				m.started = true
				m.play(cues.SoundStart)
			}
			return m, nil
		}
		if m.game.Round.Status.Terminal() {
			if key == "n" || key == "enter" {
				m = m.newRound()
			}
			return m, nil
		}
		return m.keypad(key), nil
	}
	return m, nil
}

// keypad handles input while a round is in play.
func (m model) keypad(key string) model {
	switch key {
	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9":
		if len(m.display) < maxDigits {
			m.display += key
		}
	case "backspace":
		if m.display != "" {
			m.display = m.display[:len(m.display)-1]
		}
	case "c", "esc":
		m.display = ""
	case "n":
		m = m.newRound()
	case "enter":
		if m.display != "" {
			m = m.submit()
		}
	}
	return m
}

func (m model) submit() model {
	raw := m.display
	m.display = ""
	out, err := m.game.SubmitGuess(raw)
	switch {
	case errors.Is(err, game.ErrInvalidGuess):
		m.lastLog = "1-100"
		log.Debug().Str("raw", raw).Msg("ignored invalid guess")
		return m
	case err != nil:
		m.lastLog = err.Error()
		return m
	}
	m.lastLog = ""
	m.pulse.Fire(out.Tier)
	m.play(cues.ForOutcome(out)...)
	m.hint = hint.ForOutcome(out)
	log.Debug().
		Int("guess", out.Guess).
		Str("status", string(out.Status)).
		Str("tier", string(out.Tier)).
		Int("attempts_left", out.AttemptsLeft).
		Msg("guess")
	if out.Status.Terminal() {
		log.Info().Str("status", string(out.Status)).Int("reward", out.Reward).Int("total_stars", m.game.Session.TotalStars).Msg("round finished")
	}
	return m
}

func (m model) newRound() model {
	m.game.StartNewRound()
	m.pulse.Stop()
	m.play(cues.SoundAction)
	m.display = ""
	m.hint = ""
	m.lastLog = ""
	return m
}

func (m model) View() string {
	if !m.started {
		return m.renderStart()
	}
	r, sess := m.game.Snapshot()

	var body string
	switch r.Status {
	case game.StatusWon:
		body = lipgloss.JoinVertical(lipgloss.Center,
			Good.Render(hint.WonTitle),
			hint.WonMessage,
			Gold.Render(hint.RewardLine(game.Reward(r.AttemptsUsed()+1))),
			"",
			keyHint("n", hint.PlayAgain),
		)
	case game.StatusGameOver:
		body = lipgloss.JoinVertical(lipgloss.Center,
			Bad.Render(hint.LostTitle),
			hint.LostMessage,
			Gold.Render(hint.Answer(r.Target)),
			"",
			keyHint("n", hint.Restart),
		)
	default:
		body = m.renderPlaying(r)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		Gold.Render(hint.TotalStars(sess.TotalStars)),
		"",
		body,
		"",
		Muted.Render(hint.RoundsPlayed(sess.RoundsPlayed)),
	) + "\n"
}

func (m model) renderStart() string {
	var items []string
	for _, line := range hint.Instructions {
		items = append(items, "• "+line)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		Title.Render(hint.StartTitle),
		Muted.Render(hint.StartSubtitle),
		"",
		Panel.Render(H2.Render(hint.HowToPlay)+"\n"+strings.Join(items, "\n")),
		"",
		keyHint("enter", hint.StartButton)+"   "+keyHint("q", "quit"),
	) + "\n"
}

func (m model) renderPlaying(r game.Round) string {
	display := m.display
	if display == "" {
		display = "..."
	}
	lines := []string{
		renderOrb(m.pulse.Glow(), m.pulse.Active()),
	}
	if burnt := hint.BurntRow(r.BurntAttempts); burnt != "" {
		lines = append(lines, burnt)
	}
	lines = append(lines,
		"",
		Title.Render(hint.GameTitle),
		hint.AttemptsLeft(r.AttemptsLeft),
		Display.Render(display),
	)
	if m.hint != "" {
		lines = append(lines, H2.Render(m.hint))
	}
	if m.lastLog != "" {
		lines = append(lines, Muted.Render(m.lastLog))
	}
	lines = append(lines, "",
		strings.Join([]string{
			keyHint("0-9", "digit"),
			keyHint("⌫", "delete"),
			keyHint("c", "clear"),
			keyHint("enter", "OK"),
			keyHint("n", hint.Restart),
			keyHint("q", "quit"),
		}, "  "),
	)
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}
