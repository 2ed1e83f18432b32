// internal/cli/serve.go
//
// `serve`: load config, open the game store (memory or sqlite), pre-render
// the audio cues, and start the HTTP server.

package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/cosmic-orb/assets"
	"github.com/robalobadob/cosmic-orb/internal/config"
	"github.com/robalobadob/cosmic-orb/internal/cues"
	"github.com/robalobadob/cosmic-orb/internal/httpserver"
	"github.com/robalobadob/cosmic-orb/internal/store"
)

func newServeCmd() *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the browser client and JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if port != "" {
				cfg.Port = port
			}
			cfg.SetupLogging()

			st, cleanup, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			cache := cues.NewCache(cfg.CueSampleRate)
			if err := cache.Preload(); err != nil {
				return fmt.Errorf("render cues: %w", err)
			}

			srv := httpserver.New(httpserver.Options{
				Store:        st,
				Cues:         cache,
				Client:       assets.Client(),
				Secret:       []byte(cfg.SessionSecret),
				TTL:          cfg.SessionTTL,
				CookieName:   cfg.CookieName,
				CookieSecure: cfg.CookieSecure,
				ClientOrigin: cfg.ClientOrigin,
				Decay:        cfg.CueDecay,
			})
			log.Info().Str("port", cfg.Port).Str("store", cfg.StoreDriver).Msg("starting cosmic-orb")
			return srv.Start(":" + cfg.Port)
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (overrides PORT)")
	return cmd
}

// openStore builds the game store named by STORE_DRIVER.
func openStore(cfg config.Config) (store.Store, func(), error) {
	if cfg.StoreDriver != "sqlite" {
		return store.NewMemoryStore(), func() {}, nil
	}
	db, err := store.OpenDB(cfg.DatabaseDSN)
	if err != nil {
		return nil, nil, fmt.Errorf("open db: %w", err)
	}
	if err := store.Migrate(db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("migrate: %w", err)
	}
	return store.NewSQLStore(db), func() { _ = db.Close() }, nil
}
