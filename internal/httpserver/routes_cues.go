// internal/httpserver/routes_cues.go
//
// Presentation cue endpoints.
//   - GET /api/cues        → orb glow per tier, baseline glow, fade delay, sound URLs
//   - GET /cues/{sound}.wav → synthesized audio cue (rendered once, then cached)

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/robalobadob/cosmic-orb/internal/cues"
	"github.com/robalobadob/cosmic-orb/internal/game"
	"github.com/robalobadob/cosmic-orb/internal/orb"
)

type cueTable struct {
	DecayMs  int64                `json:"decayMs"`
	Baseline cueView              `json:"baseline"`
	Tiers    map[game.Tier]cueView `json:"tiers"`
	Sounds   map[cues.Sound]string `json:"sounds"`
}

// handleCueTable lists the visual/audio cue for every tier.
func (s *Server) handleCueTable(w http.ResponseWriter, r *http.Request) {
	t := cueTable{
		DecayMs:  s.opts.Decay.Milliseconds(),
		Baseline: glowView(orb.Baseline),
		Tiers:    make(map[game.Tier]cueView, len(game.Tiers)),
		Sounds:   make(map[cues.Sound]string, len(cues.Sounds)),
	}
	for _, tier := range game.Tiers {
		t.Tiers[tier] = newCueView(tier, []cues.Sound{cues.ForTier(tier)}, s.opts.Decay)
	}
	for _, snd := range cues.Sounds {
		t.Sounds[snd] = soundURLs([]cues.Sound{snd})[0]
	}
	_ = json.NewEncoder(w).Encode(t)
}

// handleCueAudio serves one cue as WAV.
func (s *Server) handleCueAudio(w http.ResponseWriter, r *http.Request) {
	name := cues.Sound(chi.URLParam(r, "sound"))
	b, err := s.opts.Cues.WAV(name)
	if errors.Is(err, cues.ErrUnknownSound) {
		jsonError(w, http.StatusNotFound, "unknown_sound")
		return
	}
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Str("sound", string(name)).Msg("render cue")
		jsonError(w, http.StatusInternalServerError, "render_failed")
		return
	}
	w.Header().Set("Content-Type", "audio/wav")
	w.Header().Set("Content-Length", strconv.Itoa(len(b)))
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write(b)
}
