// internal/httpserver/server.go
//
// HTTP server wiring for the cosmic orb backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs, access log).
//   - Public endpoints: "/" (browser client), "/health", "/api".
//   - Game endpoints (session cookie): GET /api/state, POST /api/guess, POST /api/round.
//   - Cue endpoints: GET /api/cues (visual table), GET /cues/{sound}.wav (audio).
//
// Notes:
//   - Every browser gets its own game (session + current round); the session
//     cookie carries a signed token naming it. See session.go.
//   - Requests for the same game are serialized here; the game package
//     itself does no locking.
//   - The hidden target is never sent while a round is in play.

package httpserver

import (
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/cosmic-orb/internal/cues"
	"github.com/robalobadob/cosmic-orb/internal/game"
	"github.com/robalobadob/cosmic-orb/internal/hint"
	"github.com/robalobadob/cosmic-orb/internal/orb"
	"github.com/robalobadob/cosmic-orb/internal/store"
)

// Options carries the server's collaborators and settings.
type Options struct {
	Store        store.Store
	Cues         *cues.Cache
	Client       fs.FS         // browser client; index.html at the root
	Secret       []byte        // HS256 key for session tokens
	TTL          time.Duration // session token lifetime
	CookieName   string
	CookieSecure bool
	ClientOrigin string
	Decay        time.Duration // orb fade delay advertised to clients
	GameOptions  []game.Option // applied to every new game
}

// Server bundles router, game store, and cue assets.
type Server struct {
	r     *chi.Mux
	opts  Options
	store store.Store
	locks *keyedMutex
}

// New constructs a Server, installs middleware, and registers routes.
func New(o Options) *Server {
	if o.CookieName == "" {
		o.CookieName = "orb_session"
	}
	if o.TTL <= 0 {
		o.TTL = 30 * 24 * time.Hour
	}
	if o.Decay <= 0 {
		o.Decay = orb.DefaultDecay
	}
	if o.Cues == nil {
		o.Cues = cues.NewCache(44100)
	}
	if len(o.Secret) == 0 {
		o.Secret = []byte("dev_secret_change_me")
	}
	s := &Server{r: chi.NewRouter(), opts: o, store: o.Store, locks: newKeyedMutex()}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(hlog.NewHandler(log.Logger))     // request-scoped logger
	s.r.Use(accessLog)                       // one line per request
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(s.cors)                          // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	// --- browser client ---
	if o.Client != nil {
		files := http.FileServer(http.FS(o.Client))
		s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.ServeFileFS(w, r, o.Client, "index.html")
		})
		s.r.Get("/static/*", files.ServeHTTP)
	}

	// --- audio cues ---
	s.r.Get("/cues/{sound}.wav", s.handleCueAudio)

	// --- API ---
	s.r.Route("/api", func(r chi.Router) {
		r.Use(jsonContentType)
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"service":"cosmic-orb","endpoints":["/health","GET /api/state","POST /api/guess","POST /api/round","GET /api/cues","GET /cues/{sound}.wav"]}`))
		})
		r.Get("/cues", s.handleCueTable)

		r.Group(func(r chi.Router) {
			r.Use(s.withGame)
			r.Get("/state", s.handleState)
			r.Post("/guess", s.handleGuess)
			r.Post("/round", s.handleNewRound)
		})
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		jsonError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv.ListenAndServe()
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// accessLog writes one structured line per request.
var accessLog = hlog.AccessHandler(func(r *http.Request, status, size int, d time.Duration) {
	hlog.FromRequest(r).Info().
		Str("req_id", chimw.GetReqID(r.Context())).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", status).
		Int("size", size).
		Dur("duration", d).
		Msg("request")
})

// cors enables credentialed CORS for a single origin (ClientOrigin).
func (s *Server) cors(next http.Handler) http.Handler {
	origin := s.opts.ClientOrigin
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------ GAME ---------------------------------------

// handleState returns the current round and session.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	g := gameFrom(r)
	_ = json.NewEncoder(w).Encode(newStateView(g))
}

// guessReq accepts the guess as a JSON string ("42") or number (42).
type guessReq struct {
	Guess json.RawMessage `json:"guess"`
}

// raw returns the keypad text the client sent.
func (q guessReq) raw() string {
	var s string
	if err := json.Unmarshal(q.Guess, &s); err == nil {
		return s
	}
	return string(q.Guess)
}

type guessRes struct {
	Accepted bool          `json:"accepted"`
	Outcome  *game.Outcome `json:"outcome,omitempty"`
	Hint     string        `json:"hint,omitempty"`
	Cue      *cueView      `json:"cue,omitempty"`
	State    stateView     `json:"state"`
}

// handleGuess applies a guess to the caller's game and persists it.
// Invalid input is accepted:false with the state untouched.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, http.StatusBadRequest, "bad_json")
		return
	}
	g := gameFrom(r)
	out, err := g.SubmitGuess(req.raw())
	switch {
	case errors.Is(err, game.ErrInvalidGuess):
		hlog.FromRequest(r).Debug().Str("game", g.ID).Str("raw", req.raw()).Msg("ignored invalid guess")
		_ = json.NewEncoder(w).Encode(guessRes{Accepted: false, State: newStateView(g)})
		return
	case errors.Is(err, game.ErrRoundOver):
		jsonError(w, http.StatusConflict, "round_over")
		return
	case err != nil:
		jsonError(w, http.StatusInternalServerError, "guess_failed")
		return
	}

	if err := s.store.Save(r.Context(), g); err != nil {
		hlog.FromRequest(r).Error().Err(err).Str("game", g.ID).Msg("save game")
		jsonError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	if out.Status.Terminal() {
		hlog.FromRequest(r).Info().
			Str("game", g.ID).
			Str("status", string(out.Status)).
			Int("reward", out.Reward).
			Int("total_stars", g.Session.TotalStars).
			Msg("round finished")
	}

	cv := newCueView(out.Tier, cues.ForOutcome(out), s.opts.Decay)
	_ = json.NewEncoder(w).Encode(guessRes{
		Accepted: true,
		Outcome:  &out,
		Hint:     hint.ForOutcome(out),
		Cue:      &cv,
		State:    newStateView(g),
	})
}

type roundRes struct {
	Sounds []string  `json:"sounds"`
	State  stateView `json:"state"`
}

// handleNewRound starts a fresh round; the same call serves play-again and restart.
func (s *Server) handleNewRound(w http.ResponseWriter, r *http.Request) {
	g := gameFrom(r)
	g.StartNewRound()
	if err := s.store.Save(r.Context(), g); err != nil {
		hlog.FromRequest(r).Error().Err(err).Str("game", g.ID).Msg("save game")
		jsonError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	_ = json.NewEncoder(w).Encode(roundRes{
		Sounds: soundURLs([]cues.Sound{cues.SoundAction}),
		State:  newStateView(g),
	})
}

// ------------------------------ util ---------------------------------------

// jsonError writes {"error":code} with the given status.
func jsonError(w http.ResponseWriter, status int, code string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}
