// internal/hint/hint.go
//
// Fixed-language (Thai) strings shown to the player.
// Responsibilities:
//   - Band: the five-step hint table (5/10/25/50), kept apart from
//     game.TierFor's coarser 10/25/50 cue table.
//   - Message: direction word + band suffix for a miss.
//   - Screen strings used by both the browser and terminal clients.

package hint

import (
	"fmt"
	"strings"

	"github.com/robalobadob/cosmic-orb/internal/game"
)

// Band is a hint-text proximity step.
type Band int

const (
	BandBurning Band = iota // < 5
	BandNear                // < 10
	BandWarm                // < 25
	BandCool                // < 50
	BandFrozen              // >= 50
)

// BandFor classifies a distance for hint text.
func BandFor(distance int) Band {
	switch {
	case distance < 5:
		return BandBurning
	case distance < 10:
		return BandNear
	case distance < 25:
		return BandWarm
	case distance < 50:
		return BandCool
	default:
		return BandFrozen
	}
}

var suffixes = [...]string{
	BandBurning: "ใกล้มากๆ! 🔥",
	BandNear:    "ใกล้แล้ว! ⚡",
	BandWarm:    "ค่อนข้างใกล้ 💫",
	BandCool:    "ไกลพอสมควร 🌟",
	BandFrozen:  "ไกลมาก ❄️",
}

// Suffix returns the decorative text for b.
func (b Band) Suffix() string {
	if b < BandBurning || b > BandFrozen {
		return suffixes[BandFrozen]
	}
	return suffixes[b]
}

// DirectionWord translates a direction; empty for DirectionNone.
func DirectionWord(d game.Direction) string {
	switch d {
	case game.DirectionHigher:
		return "สูงกว่า"
	case game.DirectionLower:
		return "ต่ำกว่า"
	}
	return ""
}

// Message is the hint line after a miss, or "" when there is nothing to hint.
func Message(d game.Direction, distance int) string {
	word := DirectionWord(d)
	if word == "" {
		return ""
	}
	return word + " - " + BandFor(distance).Suffix()
}

// ForOutcome is Message applied to an accepted guess.
func ForOutcome(o game.Outcome) string { return Message(o.Direction, o.Distance) }

// Screen strings.
const (
	StartTitle    = "🌌 ภารกิจทายเลขแห่งจักรวาล 🌌"
	StartSubtitle = "ทายตัวเลขมหัศจรรย์"
	HowToPlay     = "วิธีการเล่น:"
	StartButton   = "เริ่มเกม"
	GameTitle     = "🔮 ถามลูกแก้วจักรวาล 🔮"
	WonTitle      = "🎉 ชนะแล้ว! 🎉"
	WonMessage    = "คุณทายตัวเลขมหัศจรรย์ได้!"
	LostTitle     = "💫 จบเกม"
	LostMessage   = "คุณใช้โอกาสหมดแล้ว"
	PlayAgain     = "เล่นต่อ"
	Restart       = "เริ่มใหม่"
	BurntMark     = "💀"
)

// Instructions lists the how-to-play lines on the start screen.
var Instructions = []string{
	"ทายตัวเลขระหว่าง 1 ถึง 100",
	"คุณมี 10 ครั้งในการทาย",
	"ลูกแก้วจักรวาลจะตอบสนองตามความใกล้ของคุณกับตัวเลข",
	"ยิ่งคุณใกล้มากเท่าไหร่ มันจะยิ่งเปล่งแสงสีเขียวมากขึ้น",
	"รางวัล: ทายถูกครั้งแรก = 3⭐, ครั้งที่ 2-3 = 2⭐, ครั้งที่ 4-10 = 1⭐",
}

func TotalStars(n int) string   { return fmt.Sprintf("ดาวที่สะสม: %d ⭐", n) }
func AttemptsLeft(n int) string { return fmt.Sprintf("จำนวนครั้งที่เหลือ: %d", n) }
func RewardLine(n int) string   { return fmt.Sprintf("รางวัล: %d ⭐", n) }
func Answer(n int) string       { return fmt.Sprintf("ตัวเลขที่ถูกต้องคือ: %d", n) }
func RoundsPlayed(n int) string { return fmt.Sprintf("จำนวนครั้งที่เล่น: %d", n) }

// BurntRow renders one skull per burnt attempt, space separated.
func BurntRow(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSpace(strings.Repeat(BurntMark+" ", n))
}
