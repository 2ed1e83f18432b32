// internal/game/engine.go
//
// Round controller for the number-guessing game.
// Responsibilities:
//   - Own the current Round and a reference to the player's Session.
//   - Validate and apply guesses (parse, range check, terminal check).
//   - Track state transitions: playing → won | gameOver.
//   - Start new rounds (play again and restart are the same operation).
//
// Notes:
//   - The Session is created by the caller and passed in; there is no
//     package-level state.
//   - Game is not safe for concurrent use. Callers that share a Game
//     across goroutines serialize access themselves.
//   - Exported fields let stores snapshot a Game as JSON; the target
//     source is not serialized and falls back to RandomTarget.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"sync"
)

// ErrRoundOver is returned when a guess arrives after the round has ended.
var ErrRoundOver = errors.New("round over")

// Game binds a Session to its current Round.
type Game struct {
	ID      string   `json:"id"`
	Session *Session `json:"session"`
	Round   Round    `json:"round"`

	next TargetFunc
}

// Option configures a Game.
type Option func(*Game)

// WithTargetFunc replaces the random target source.
func WithTargetFunc(fn TargetFunc) Option {
	return func(g *Game) { g.next = fn }
}

// WithTargets makes games use the given targets in order, one per round,
// then continue with RandomTarget once they are exhausted. The queue is
// shared by every game built with the returned Option and is safe to pop
// from concurrently.
func WithTargets(targets ...int) Option {
	var mu sync.Mutex
	queue := append([]int(nil), targets...)
	return WithTargetFunc(func() int {
		mu.Lock()
		defer mu.Unlock()
		if len(queue) == 0 {
			return RandomTarget()
		}
		t := queue[0]
		queue = queue[1:]
		return t
	})
}

// WithID fixes the game identifier instead of generating one.
func WithID(id string) Option {
	return func(g *Game) { g.ID = id }
}

// New constructs a game over sess and starts its first round.
// A nil sess gets a fresh Session.
func New(sess *Session, opts ...Option) *Game {
	if sess == nil {
		sess = NewSession()
	}
	g := &Game{ID: randomID(), Session: sess}
	for _, opt := range opts {
		opt(g)
	}
	g.StartNewRound()
	return g
}

// Attach applies options to a game restored from a snapshot.
func (g *Game) Attach(opts ...Option) *Game {
	for _, opt := range opts {
		opt(g)
	}
	if g.Session == nil {
		g.Session = NewSession()
	}
	return g
}

// StartNewRound replaces the current round with a fresh one and counts it
// in the session. Legal in any state.
func (g *Game) StartNewRound() Round {
	next := g.next
	if next == nil {
		next = RandomTarget
	}
	g.Round = Round{
		Target:       next(),
		AttemptsLeft: MaxAttempts,
		Status:       StatusPlaying,
	}
	g.Session.RoundsPlayed++
	return g.Round
}

// SubmitGuess applies one guess to the current round.
//
// Invalid input returns ErrInvalidGuess and a guess on a finished round
// returns ErrRoundOver; in both cases nothing is mutated.
//
// State transitions:
//   - guess == target → won, reward credited to the session.
//   - otherwise one attempt burns; at zero attempts left → gameOver.
func (g *Game) SubmitGuess(raw string) (Outcome, error) {
	guess, err := ParseGuess(raw)
	if err != nil {
		return Outcome{}, err
	}
	r := &g.Round
	if r.Status.Terminal() {
		return Outcome{}, ErrRoundOver
	}

	distance := abs(r.Target - guess)
	r.LastGuess = guess
	r.LastDistance = distance

	out := Outcome{
		Guess:    guess,
		Distance: distance,
		Tier:     TierFor(distance),
	}

	if guess == r.Target {
		r.Status = StatusWon
		// The winning guess is an attempt too, hence +1.
		out.Reward = Reward(r.AttemptsUsed() + 1)
		g.Session.TotalStars += out.Reward
	} else {
		r.AttemptsLeft--
		r.BurntAttempts++
		if r.AttemptsLeft == 0 {
			r.Status = StatusGameOver
			out.Revealed = r.Target
		} else if guess < r.Target {
			out.Direction = DirectionHigher
		} else {
			out.Direction = DirectionLower
		}
	}

	out.Status = r.Status
	out.AttemptsLeft = r.AttemptsLeft
	return out, nil
}

// Snapshot returns copies of the current round and session.
func (g *Game) Snapshot() (Round, Session) {
	return g.Round, *g.Session
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
