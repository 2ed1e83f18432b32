package hint

import (
	"testing"

	"github.com/robalobadob/cosmic-orb/internal/game"
)

func TestBandForThresholds(t *testing.T) {
	cases := []struct {
		distance int
		want     Band
	}{
		{0, BandBurning}, {4, BandBurning},
		{5, BandNear}, {9, BandNear},
		{10, BandWarm}, {24, BandWarm},
		{25, BandCool}, {49, BandCool},
		{50, BandFrozen}, {99, BandFrozen},
	}
	for _, c := range cases {
		if got := BandFor(c.distance); got != c.want {
			t.Errorf("BandFor(%d)=%d want %d", c.distance, got, c.want)
		}
	}
}

// Distances 5..9 share a cue tier but not a hint band.
func TestBandAndTierTablesDiffer(t *testing.T) {
	if game.TierFor(3) != game.TierFor(7) {
		t.Fatal("3 and 7 should share a tier")
	}
	if BandFor(3) == BandFor(7) {
		t.Fatal("3 and 7 should not share a hint band")
	}
}

func TestMessage(t *testing.T) {
	cases := []struct {
		dir      game.Direction
		distance int
		want     string
	}{
		{game.DirectionHigher, 2, "สูงกว่า - ใกล้มากๆ! 🔥"},
		{game.DirectionLower, 7, "ต่ำกว่า - ใกล้แล้ว! ⚡"},
		{game.DirectionHigher, 20, "สูงกว่า - ค่อนข้างใกล้ 💫"},
		{game.DirectionLower, 30, "ต่ำกว่า - ไกลพอสมควร 🌟"},
		{game.DirectionHigher, 80, "สูงกว่า - ไกลมาก ❄️"},
		{game.DirectionNone, 2, ""},
	}
	for _, c := range cases {
		if got := Message(c.dir, c.distance); got != c.want {
			t.Errorf("Message(%q,%d)=%q want %q", c.dir, c.distance, got, c.want)
		}
	}
}

func TestForOutcomeOnWin(t *testing.T) {
	g := game.New(nil, game.WithTargets(42))
	out, err := g.SubmitGuess("42")
	if err != nil {
		t.Fatal(err)
	}
	if msg := ForOutcome(out); msg != "" {
		t.Fatalf("no hint expected on win, got %q", msg)
	}
}

func TestBurntRow(t *testing.T) {
	if got := BurntRow(0); got != "" {
		t.Fatalf("BurntRow(0)=%q", got)
	}
	if got := BurntRow(3); got != "💀 💀 💀" {
		t.Fatalf("BurntRow(3)=%q", got)
	}
}
