// internal/httpserver/session.go
//
// Session identity for browser players.
// Responsibilities:
//   - Sign/parse the HS256 session token (subject = game ID).
//   - withGame middleware: resolve the caller's game, or start a new one
//     (new Session + first round) and set the cookie.
//   - Per-game locking so concurrent requests from one browser apply in order.

package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/robalobadob/cosmic-orb/internal/game"
	"github.com/robalobadob/cosmic-orb/internal/store"
)

var errInvalidToken = errors.New("invalid session token")

// ctxGameKey is the context key type for the resolved *game.Game.
type ctxGameKey struct{}

// gameFrom returns the game placed in context by withGame.
func gameFrom(r *http.Request) *game.Game {
	g, _ := r.Context().Value(ctxGameKey{}).(*game.Game)
	return g
}

// withGame resolves the caller's game from the session token, creating one
// when the token is missing, invalid, expired, or names an unknown game.
// The game stays locked until the handler returns.
func (s *Server) withGame(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var g *game.Game
		if tok := s.bearerOrCookie(r); tok != "" {
			if id, err := s.parseToken(tok); err == nil {
				unlock := s.locks.Lock(id)
				defer unlock()
				found, err := s.store.Get(r.Context(), id)
				switch {
				case err == nil:
					g = found
				case errors.Is(err, store.ErrNotFound):
					hlog.FromRequest(r).Debug().Str("game", id).Msg("session token for unknown game")
				default:
					hlog.FromRequest(r).Error().Err(err).Str("game", id).Msg("load game")
					jsonError(w, http.StatusInternalServerError, "load_failed")
					return
				}
			}
		}

		if g == nil {
			var err error
			if g, err = s.startGame(r.Context(), w); err != nil {
				hlog.FromRequest(r).Error().Err(err).Msg("start game")
				jsonError(w, http.StatusInternalServerError, "session_failed")
				return
			}
			unlock := s.locks.Lock(g.ID)
			defer unlock()
		}

		ctx := context.WithValue(r.Context(), ctxGameKey{}, g)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// startGame creates a session with its first round, saves it, and sets the cookie.
func (s *Server) startGame(ctx context.Context, w http.ResponseWriter) (*game.Game, error) {
	g := game.New(game.NewSession(), s.opts.GameOptions...)
	if err := s.store.Save(ctx, g); err != nil {
		return nil, err
	}
	tok, exp, err := s.signToken(g.ID)
	if err != nil {
		return nil, err
	}
	s.setSessionCookie(w, tok, exp)
	return g, nil
}

// ------------------------------ tokens -------------------------------------

// signToken creates an HS256 token naming the game, valid for TTL.
func (s *Server) signToken(id string) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(s.opts.TTL)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   id,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	ss, err := t.SignedString(s.opts.Secret)
	return ss, exp, err
}

// parseToken verifies a token and returns the game ID it names.
func (s *Server) parseToken(tok string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	t, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		return s.opts.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !t.Valid || claims.Subject == "" {
		return "", errInvalidToken
	}
	return claims.Subject, nil
}

// setSessionCookie writes the session token cookie.
func (s *Server) setSessionCookie(w http.ResponseWriter, token string, exp time.Time) {
	sameSite := http.SameSiteLaxMode
	if s.opts.CookieSecure {
		sameSite = http.SameSiteNoneMode // required for third-party contexts when Secure
	}
	http.SetCookie(w, &http.Cookie{
		Name:     s.opts.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.opts.CookieSecure,
		SameSite: sameSite,
		Expires:  exp,
	})
}

// bearerOrCookie extracts a token from the Authorization header or the session cookie.
func (s *Server) bearerOrCookie(r *http.Request) string {
	// Authorization: Bearer <token>
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(s.opts.CookieName); err == nil {
		return c.Value
	}
	return ""
}

// ------------------------------ locking ------------------------------------

// keyedMutex hands out one mutex per game ID. Entries live only while a
// request holds or waits on them.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*refMutex
}

type refMutex struct {
	sync.Mutex
	refs int // holders plus waiters; guarded by keyedMutex.mu
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*refMutex)}
}

// Lock blocks until id is free and returns its unlock func.
func (k *keyedMutex) Lock(id string) func() {
	k.mu.Lock()
	m, ok := k.locks[id]
	if !ok {
		m = &refMutex{}
		k.locks[id] = m
	}
	m.refs++
	k.mu.Unlock()

	m.Lock()
	return func() {
		m.Unlock()
		k.mu.Lock()
		m.refs--
		if m.refs == 0 {
			delete(k.locks, id)
		}
		k.mu.Unlock()
	}
}

// Len is the number of IDs currently locked or waited on.
func (k *keyedMutex) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.locks)
}
