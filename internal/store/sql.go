// internal/store/sql.go
//
// database/sql implementation of the Store interface.
// Each game is one row holding a JSON snapshot (session + current round).
// The schema is the embedded sql/ migrations applied by Migrate (table `games`).
//
// Note: the default DSN is a shared in-memory SQLite database, so rows
// disappear with the process; pointing DATABASE_DSN at a file keeps them.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/robalobadob/cosmic-orb/internal/game"
)

// sqlStore keeps game snapshots in a `games` table.
type sqlStore struct {
	db   *sql.DB
	opts []game.Option
}

// NewSQLStore wraps an open, migrated database. opts are applied to every
// game loaded back from a row (e.g. a fixed target source in tests).
func NewSQLStore(db *sql.DB, opts ...game.Option) Store {
	return &sqlStore{db: db, opts: opts}
}

// Save upserts the game snapshot.
func (s *sqlStore) Save(ctx context.Context, g *game.Game) error {
	data, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("marshal game %s: %w", g.ID, err)
	}
	_, err = s.db.ExecContext(ctx, `
        INSERT INTO games (id, state, status, total_stars, rounds_played, updated_at)
        VALUES (?, ?, ?, ?, ?, ?)
        ON CONFLICT(id) DO UPDATE SET
            state=excluded.state,
            status=excluded.status,
            total_stars=excluded.total_stars,
            rounds_played=excluded.rounds_played,
            updated_at=excluded.updated_at`,
		g.ID, string(data), string(g.Round.Status), g.Session.TotalStars, g.Session.RoundsPlayed,
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("save game %s: %w", g.ID, err)
	}
	return nil
}

// Get loads and decodes a snapshot.
func (s *sqlStore) Get(ctx context.Context, id string) (*game.Game, error) {
	var state string
	err := s.db.QueryRowContext(ctx, `SELECT state FROM games WHERE id=?`, id).Scan(&state)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load game %s: %w", id, err)
	}
	var g game.Game
	if err := json.Unmarshal([]byte(state), &g); err != nil {
		return nil, fmt.Errorf("decode game %s: %w", id, err)
	}
	return g.Attach(s.opts...), nil
}
