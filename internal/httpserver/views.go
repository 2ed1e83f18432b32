// internal/httpserver/views.go
//
// JSON views sent to browser clients.
//   - stateView: round + session + ready-made display strings.
//   - cueView:   orb glow and sound URLs for one outcome.
// The hidden target only appears as `revealed` after a lost round.

package httpserver

import (
	"time"

	"github.com/robalobadob/cosmic-orb/internal/cues"
	"github.com/robalobadob/cosmic-orb/internal/game"
	"github.com/robalobadob/cosmic-orb/internal/hint"
	"github.com/robalobadob/cosmic-orb/internal/orb"
)

// roundView is the client-visible round. Target only appears as Revealed
// once the round is lost.
type roundView struct {
	Status        game.Status `json:"status"`
	AttemptsLeft  int         `json:"attemptsLeft"`
	MaxAttempts   int         `json:"maxAttempts"`
	BurntAttempts int         `json:"burntAttempts"`
	LastGuess     int         `json:"lastGuess,omitempty"`
	LastDistance  *int        `json:"lastDistance,omitempty"`
	Hint          string      `json:"hint,omitempty"`
	Reward        int         `json:"reward,omitempty"`
	Revealed      int         `json:"revealed,omitempty"`
}

type sessionView struct {
	TotalStars   int `json:"totalStars"`
	RoundsPlayed int `json:"roundsPlayed"`
}

// textView carries ready-made display strings so clients share one wording.
type textView struct {
	Stars    string `json:"stars"`
	Attempts string `json:"attempts"`
	Burnt    string `json:"burnt,omitempty"`
	Rounds   string `json:"rounds"`
	Reward   string `json:"reward,omitempty"`
	Answer   string `json:"answer,omitempty"`
}

type stateView struct {
	Round   roundView   `json:"round"`
	Session sessionView `json:"session"`
	Text    textView    `json:"text"`
}

func newStateView(g *game.Game) stateView {
	r, sess := g.Snapshot()
	rv := roundView{
		Status:        r.Status,
		AttemptsLeft:  r.AttemptsLeft,
		MaxAttempts:   game.MaxAttempts,
		BurntAttempts: r.BurntAttempts,
	}
	tv := textView{
		Stars:    hint.TotalStars(sess.TotalStars),
		Attempts: hint.AttemptsLeft(r.AttemptsLeft),
		Burnt:    hint.BurntRow(r.BurntAttempts),
		Rounds:   hint.RoundsPlayed(sess.RoundsPlayed),
	}
	if r.HasGuessed() {
		d := r.LastDistance
		rv.LastGuess = r.LastGuess
		rv.LastDistance = &d
	}
	switch r.Status {
	case game.StatusPlaying:
		if r.HasGuessed() {
			rv.Hint = hint.Message(direction(r), r.LastDistance)
		}
	case game.StatusWon:
		rv.Reward = game.Reward(r.AttemptsUsed() + 1)
		tv.Reward = hint.RewardLine(rv.Reward)
	case game.StatusGameOver:
		rv.Revealed = r.Target
		tv.Answer = hint.Answer(r.Target)
	}
	return stateView{
		Round:   rv,
		Session: sessionView{TotalStars: sess.TotalStars, RoundsPlayed: sess.RoundsPlayed},
		Text:    tv,
	}
}

// direction recomputes the hint direction for the last guess of a live round.
func direction(r game.Round) game.Direction {
	switch {
	case !r.HasGuessed() || r.LastGuess == r.Target:
		return game.DirectionNone
	case r.LastGuess < r.Target:
		return game.DirectionHigher
	default:
		return game.DirectionLower
	}
}

// cueView tells a client how to light the orb and what to play.
type cueView struct {
	Tier    game.Tier `json:"tier,omitempty"`
	Color   string    `json:"color"`
	Size    float64   `json:"size"`
	Opacity float64   `json:"opacity"`
	Light   float64   `json:"light"`
	Speed   float64   `json:"speed"`
	Sounds  []string  `json:"sounds,omitempty"`
	DecayMs int64     `json:"decayMs,omitempty"`
}

func glowView(gl orb.Glow) cueView {
	return cueView{Color: gl.Hex(), Size: gl.Size, Opacity: gl.Opacity, Light: gl.Light, Speed: gl.Speed}
}

func newCueView(t game.Tier, sounds []cues.Sound, decay time.Duration) cueView {
	cv := glowView(orb.GlowFor(t))
	cv.Tier = t
	cv.Sounds = soundURLs(sounds)
	cv.DecayMs = decay.Milliseconds()
	return cv
}

func soundURLs(sounds []cues.Sound) []string {
	out := make([]string, len(sounds))
	for i, s := range sounds {
		out[i] = "/cues/" + string(s) + ".wav"
	}
	return out
}
