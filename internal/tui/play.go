// internal/tui/play.go
//
// Run wires a game, an orb pulse and an optional cue player into a
// bubbletea program. Orb fades arrive as decayMsg.

package tui

import (
	"context"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/robalobadob/cosmic-orb/internal/game"
	"github.com/robalobadob/cosmic-orb/internal/orb"
)

// Run plays g in the terminal until the player quits or ctx is done.
// player may be nil for a silent game.
func Run(ctx context.Context, g *game.Game, player Player, decay time.Duration, out io.Writer) error {
	var p *tea.Program
	pulse := orb.NewPulse(decay, func() {
		if p != nil {
			p.Send(decayMsg{})
		}
	})
	defer pulse.Stop()

	p = tea.NewProgram(newModel(g, pulse, player), tea.WithOutput(out), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
