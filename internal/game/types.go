// internal/game/types.go
//
// Core type definitions for the number-guessing engine.
// Defines:
//   - Status: lifecycle of a single round (playing → won | gameOver).
//   - Direction: which way the player should move after a miss.
//   - Tier: proximity bucket that drives visual/audio cues.
//   - Round, Session, Outcome: state and per-guess result records.

package game

// Bounds of a round. Targets and valid guesses are in [MinGuess, MaxGuess].
const (
	MinGuess    = 1
	MaxGuess    = 100
	MaxAttempts = 10
)

// Status is the coarse state of a round.
type Status string

const (
	StatusPlaying  Status = "playing"
	StatusWon      Status = "won"
	StatusGameOver Status = "gameOver"
)

// Terminal reports whether no further guesses are accepted.
func (s Status) Terminal() bool { return s == StatusWon || s == StatusGameOver }

// Direction tells the player where the target lies relative to the last guess.
type Direction string

const (
	DirectionNone   Direction = ""
	DirectionHigher Direction = "higher"
	DirectionLower  Direction = "lower"
)

// Round holds the state of one play-through, from target selection to won/gameOver.
type Round struct {
	Target        int    `json:"target"`        // 1..100, fixed for the round
	AttemptsLeft  int    `json:"attemptsLeft"`  // starts at MaxAttempts
	Status        Status `json:"status"`        // playing until a terminal transition
	BurntAttempts int    `json:"burntAttempts"` // incorrect guesses so far
	LastGuess     int    `json:"lastGuess"`     // 0 until the first valid guess
	LastDistance  int    `json:"lastDistance"`  // |Target-LastGuess|, meaningful once guessed
}

// HasGuessed reports whether at least one valid guess was recorded.
// Zero is outside the valid range, so it doubles as "no guess yet".
func (r Round) HasGuessed() bool { return r.LastGuess != 0 }

// AttemptsUsed is the number of attempts consumed so far.
func (r Round) AttemptsUsed() int { return MaxAttempts - r.AttemptsLeft }

// Session aggregates stars and rounds across many rounds.
type Session struct {
	TotalStars   int `json:"totalStars"`
	RoundsPlayed int `json:"roundsPlayed"`
}

// NewSession returns an empty session. The first round is counted when a
// Game is constructed on top of it.
func NewSession() *Session { return &Session{} }

// Outcome is the result of one accepted guess.
type Outcome struct {
	Guess        int       `json:"guess"`
	Status       Status    `json:"status"`
	Distance     int       `json:"distance"`
	Tier         Tier      `json:"tier"`
	Direction    Direction `json:"direction,omitempty"` // only while still playing
	Reward       int       `json:"reward,omitempty"`    // only on the winning guess
	Revealed     int       `json:"revealed,omitempty"`  // target, only when the round is lost
	AttemptsLeft int       `json:"attemptsLeft"`
}
