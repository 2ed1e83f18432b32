// internal/cli/play.go
//
// `play`: the terminal client.
//   - --sound / --volume: audio cues on the local speaker.
//   - --target: fixed hidden number for practice.
//   - --log-file: the terminal is busy drawing, so logs go to a file or nowhere.

package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/cosmic-orb/internal/config"
	"github.com/robalobadob/cosmic-orb/internal/cues/speaker"
	"github.com/robalobadob/cosmic-orb/internal/game"
	"github.com/robalobadob/cosmic-orb/internal/tui"
)

var _ tui.Player = (*speaker.Speaker)(nil)

type playFlags struct {
	sound   bool
	volume  float64
	target  int
	logFile string
}

func newPlayCmd() *cobra.Command {
	var f playFlags
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			closeLog, err := setupPlayLogging(cfg, f.logFile)
			if err != nil {
				return err
			}
			defer closeLog()

			var opts []game.Option
			if f.target != 0 {
				if f.target < game.MinGuess || f.target > game.MaxGuess {
					return fmt.Errorf("--target must be between %d and %d", game.MinGuess, game.MaxGuess)
				}
				opts = append(opts, game.WithTargetFunc(func() int { return f.target }))
			}
			g := game.New(game.NewSession(), opts...)

			var player tui.Player
			if f.sound {
				spk := speaker.New(cfg.CueSampleRate, f.volume)
				if err := spk.Init(); err != nil {
					log.Warn().Err(err).Msg("audio unavailable, playing silently")
				} else {
					defer spk.Close()
					player = spk
				}
			}

			return tui.Run(context.Background(), g, player, cfg.CueDecay, cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVar(&f.sound, "sound", false, "play audio cues on the local speaker")
	cmd.Flags().Float64Var(&f.volume, "volume", 1, "audio cue volume (1 = unity)")
	cmd.Flags().IntVar(&f.target, "target", 0, "fix every round's hidden number (for practice)")
	cmd.Flags().StringVar(&f.logFile, "log-file", "", "write logs to this file (the terminal is busy drawing)")
	return cmd
}

// setupPlayLogging sends the global logger to a file, or discards it.
func setupPlayLogging(cfg config.Config, path string) (func(), error) {
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if path == "" {
		log.Logger = zerolog.New(io.Discard)
		return func() {}, nil
	}
	fh, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.Logger = zerolog.New(fh).With().Timestamp().Logger()
	return func() { _ = fh.Close() }, nil
}
