// internal/game/rules.go
//
// Pure game rules.
//   - Reward: stars for a win by attempts used.
//   - TierFor: proximity tier for cues (10/25/50).
//   - ParseGuess: keypad text to a guess in [1,100].
//   - RandomTarget: uniform hidden number from crypto/rand.

package game

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strconv"
	"strings"
)

// ErrInvalidGuess is returned for input that is not an integer in [MinGuess, MaxGuess].
var ErrInvalidGuess = errors.New("invalid guess")

// Tier is the proximity bucket used for visual and audio cues.
type Tier string

const (
	TierVeryClose Tier = "veryClose"
	TierClose     Tier = "close"
	TierMedium    Tier = "medium"
	TierFar       Tier = "far"
)

// Tiers lists every tier from nearest to farthest.
var Tiers = []Tier{TierVeryClose, TierClose, TierMedium, TierFar}

// TierFor classifies an absolute distance. Thresholds are 10/25/50; the
// hint text uses its own finer table (see package hint).
func TierFor(distance int) Tier {
	switch {
	case distance < 10:
		return TierVeryClose
	case distance < 25:
		return TierClose
	case distance < 50:
		return TierMedium
	default:
		return TierFar
	}
}

// Reward maps attempts used (including the winning guess) to stars:
// 1 → 3, 2-3 → 2, anything more → 1. Values below 1 are treated as 1.
func Reward(attemptsUsed int) int {
	switch {
	case attemptsUsed <= 1:
		return 3
	case attemptsUsed <= 3:
		return 2
	default:
		return 1
	}
}

// TargetFunc produces a round's hidden target.
type TargetFunc func() int

// RandomTarget returns a uniformly distributed integer in [MinGuess, MaxGuess].
func RandomTarget() int {
	n, _ := rand.Int(rand.Reader, big.NewInt(MaxGuess-MinGuess+1))
	return int(n.Int64()) + MinGuess
}

// ParseGuess validates raw keypad input. Surrounding whitespace is ignored;
// anything else that is not a base-10 integer in range yields ErrInvalidGuess.
func ParseGuess(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < MinGuess || n > MaxGuess {
		return 0, ErrInvalidGuess
	}
	return n, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
