package cli

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/cosmic-orb/internal/config"
	"github.com/robalobadob/cosmic-orb/internal/game"
)

func TestOpenStoreDrivers(t *testing.T) {
	for _, tc := range []struct {
		driver, dsn string
	}{
		{"memory", ""},
		{"sqlite", filepath.Join(t.TempDir(), "data", "orb.db")},
	} {
		t.Run(tc.driver, func(t *testing.T) {
			st, cleanup, err := openStore(config.Config{StoreDriver: tc.driver, DatabaseDSN: tc.dsn})
			if err != nil {
				t.Fatal(err)
			}
			defer cleanup()

			g := game.New(nil, game.WithTargetFunc(func() int { return 7 }))
			if err := st.Save(t.Context(), g); err != nil {
				t.Fatal(err)
			}
			got, err := st.Get(t.Context(), g.ID)
			if err != nil {
				t.Fatal(err)
			}
			if got.Round.Target != 7 {
				t.Fatalf("target=%d", got.Round.Target)
			}
		})
	}
}

func TestPlayLoggingToFile(t *testing.T) {
	prev, prevLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prev
		zerolog.SetGlobalLevel(prevLevel)
	})

	path := filepath.Join(t.TempDir(), "play.log")
	closeLog, err := setupPlayLogging(config.Config{LogLevel: "debug"}, path)
	if err != nil {
		t.Fatal(err)
	}
	closeLog()

	if _, err := setupPlayLogging(config.Config{}, filepath.Join(t.TempDir(), "missing", "x.log")); err == nil {
		t.Fatal("expected error for unwritable path")
	}
}

func TestCommandFlags(t *testing.T) {
	for _, name := range []string{"sound", "volume", "target", "log-file"} {
		if newPlayCmd().Flags().Lookup(name) == nil {
			t.Fatalf("play: missing --%s", name)
		}
	}
	if newServeCmd().Flags().ShorthandLookup("p") == nil {
		t.Fatal("serve: missing -p")
	}
}
