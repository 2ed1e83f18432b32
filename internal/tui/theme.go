// internal/tui/theme.go
//
// Terminal styles (lipgloss palette + named styles) and the orb renderer.

package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/robalobadob/cosmic-orb/internal/orb"
)

// Cosmic orb theme for the terminal client.

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel   = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	Display = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(cPrimary).Width(9).Align(lipgloss.Center)
)

// renderOrb draws the orb as a filled circle whose radius follows the glow
// size and whose colour follows the glow colour. A resting orb is drawn faint.
func renderOrb(g orb.Glow, active bool) string {
	r := int(math.Round(g.Size / orb.Baseline.Size * 3))
	if r < 1 {
		r = 1
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(g.Hex()))
	if active {
		style = style.Bold(true)
	} else {
		style = style.Faint(true)
	}

	var b strings.Builder
	for y := -r; y <= r; y++ {
		for x := -2 * r; x <= 2*r; x++ {
			// cells are about twice as tall as wide
			fx := float64(x) / 2
			if fx*fx+float64(y*y) <= float64(r*r)+0.5 {
				b.WriteString("█")
			} else {
				b.WriteByte(' ')
			}
		}
		if y < r {
			b.WriteByte('\n')
		}
	}
	return style.Render(b.String())
}

func keyHint(key, label string) string {
	return Key.Render(key) + " " + Muted.Render(label)
}
