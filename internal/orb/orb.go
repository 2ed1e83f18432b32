// internal/orb/orb.go
//
// The energy orb's look.
// Responsibilities:
//   - Glow per proximity tier, plus the resting Baseline.
//   - Pulse: light the orb on a guess and fade it back after a fixed
//     delay, restarting the delay on every new guess.

package orb

import (
	"fmt"
	"sync"
	"time"

	"github.com/robalobadob/cosmic-orb/internal/game"
)

// DefaultDecay is how long the orb stays lit after a guess.
const DefaultDecay = time.Second

// Glow is the visual state of the orb's particles and core light.
type Glow struct {
	Color   uint32  `json:"-"`
	Size    float64 `json:"size"`    // particle size
	Opacity float64 `json:"opacity"` // particle opacity
	Light   float64 `json:"light"`   // core light intensity
	Speed   float64 `json:"speed"`   // animation speed multiplier
}

// Hex renders Color as #rrggbb.
func (g Glow) Hex() string { return fmt.Sprintf("#%06x", g.Color&0xffffff) }

// RGB splits Color into components.
func (g Glow) RGB() (r, gr, b uint8) {
	return uint8(g.Color >> 16), uint8(g.Color >> 8), uint8(g.Color)
}

// Baseline is the resting orb between guesses.
var Baseline = Glow{Color: 0x00ffff, Size: 0.03, Opacity: 0.8, Light: 1, Speed: 1}

var tierGlow = map[game.Tier]Glow{
	game.TierVeryClose: {Color: 0x00ff00, Size: 0.06, Opacity: 1, Light: 3, Speed: 5},
	game.TierClose:     {Color: 0xffff00, Size: 0.055, Opacity: 0.95, Light: 2.5, Speed: 5},
	game.TierMedium:    {Color: 0xff6600, Size: 0.05, Opacity: 0.9, Light: 2, Speed: 5},
	game.TierFar:       {Color: 0xff0000, Size: 0.045, Opacity: 0.85, Light: 1.5, Speed: 5},
}

// GlowFor returns the lit orb for a tier; unknown tiers get Baseline.
func GlowFor(t game.Tier) Glow {
	if g, ok := tierGlow[t]; ok {
		return g
	}
	return Baseline
}

// Pulse lights the orb on each guess and fades it back after a fixed delay.
// Firing again before the fade restarts the delay. The fade runs on its own
// timer goroutine and never blocks the caller.
type Pulse struct {
	mu      sync.Mutex
	decay   time.Duration
	onDecay func()
	timer   *time.Timer
	glow    Glow
	active  bool
	gen     uint64
}

// NewPulse returns a resting pulse. onDecay, if non-nil, runs after each fade.
func NewPulse(decay time.Duration, onDecay func()) *Pulse {
	if decay <= 0 {
		decay = DefaultDecay
	}
	return &Pulse{decay: decay, onDecay: onDecay, glow: Baseline}
}

// Fire lights the orb for tier t and (re)schedules the fade.
func (p *Pulse) Fire(t game.Tier) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.timer != nil {
		p.timer.Stop()
	}
	p.gen++
	gen := p.gen
	p.glow = GlowFor(t)
	p.active = true
	p.timer = time.AfterFunc(p.decay, func() { p.fade(gen) })
}

func (p *Pulse) fade(gen uint64) {
	p.mu.Lock()
	// A newer Fire or a Stop superseded this timer.
	if gen != p.gen {
		p.mu.Unlock()
		return
	}
	p.glow = Baseline
	p.active = false
	p.timer = nil
	cb := p.onDecay
	p.mu.Unlock()

	if cb != nil {
		cb()
	}
}

// Stop cancels a pending fade and returns the orb to rest immediately.
func (p *Pulse) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
	p.gen++
	p.glow = Baseline
	p.active = false
}

// Glow returns the current look.
func (p *Pulse) Glow() Glow {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.glow
}

// Active reports whether the orb is lit.
func (p *Pulse) Active() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active
}

// Decay is the configured fade delay.
func (p *Pulse) Decay() time.Duration { return p.decay }
