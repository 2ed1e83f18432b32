package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/robalobadob/cosmic-orb/internal/game"
)

func newSQLStore(t *testing.T, opts ...game.Option) Store {
	t.Helper()
	db, err := OpenDB(filepath.Join(t.TempDir(), "data", "orb.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	// Second run must be a no-op.
	if err := Migrate(db); err != nil {
		t.Fatalf("re-migrate: %v", err)
	}
	return NewSQLStore(db, opts...)
}

func testStores(t *testing.T) map[string]Store {
	return map[string]Store{
		"memory": NewMemoryStore(),
		"sql":    newSQLStore(t),
	}
}

func TestStoreRoundTrip(t *testing.T) {
	for name, st := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			g := game.New(nil, game.WithTargets(42))
			if _, err := g.SubmitGuess("10"); err != nil {
				t.Fatal(err)
			}
			if err := st.Save(ctx, g); err != nil {
				t.Fatalf("save: %v", err)
			}

			got, err := st.Get(ctx, g.ID)
			if err != nil {
				t.Fatalf("get: %v", err)
			}
			if got.Round != g.Round || *got.Session != *g.Session {
				t.Fatalf("round trip mismatch: %+v / %+v", got.Round, *got.Session)
			}

			// Continue playing on the loaded copy and save again.
			out, err := got.SubmitGuess("42")
			if err != nil || out.Status != game.StatusWon {
				t.Fatalf("continue: %+v %v", out, err)
			}
			if err := st.Save(ctx, got); err != nil {
				t.Fatalf("resave: %v", err)
			}
			again, err := st.Get(ctx, g.ID)
			if err != nil {
				t.Fatal(err)
			}
			if again.Round.Status != game.StatusWon || again.Session.TotalStars != 2 {
				t.Fatalf("after resave: %+v stars=%d", again.Round, again.Session.TotalStars)
			}
		})
	}
}

func TestStoreNotFound(t *testing.T) {
	for name, st := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := st.Get(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
				t.Fatalf("err=%v want ErrNotFound", err)
			}
		})
	}
}

func TestSQLStoreAppliesOptions(t *testing.T) {
	st := newSQLStore(t, game.WithTargets(64))
	ctx := context.Background()
	g := game.New(nil)
	if err := st.Save(ctx, g); err != nil {
		t.Fatal(err)
	}
	got, err := st.Get(ctx, g.ID)
	if err != nil {
		t.Fatal(err)
	}
	if r := got.StartNewRound(); r.Target != 64 {
		t.Fatalf("target=%d want 64", r.Target)
	}
}

func TestOpenDBInMemory(t *testing.T) {
	db, err := OpenDB("file:orb-test?mode=memory&cache=shared")
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	if err := Migrate(db); err != nil {
		t.Fatal(err)
	}
	var n int
	if err := db.QueryRow(`SELECT COUNT(1) FROM _migrations`).Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("migrations recorded=%d want 1", n)
	}
}
