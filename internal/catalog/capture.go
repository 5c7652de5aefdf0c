package catalog

import "github.com/Gameaday/Pixel-Warrior-Monsters-sub002/internal/game"

const (
	captureHealthWeight = 0.7
	captureRateFloor    = 0.01
	captureRateCeiling  = 0.95
)

// RateCalculator derives capture probability from the item's base rate and
// the target's remaining health: a full-health target is hardest to catch,
// a nearly-fainted one approaches the item's full rate.
type RateCalculator struct {
	rates map[string]float64 // item id -> base rate in (0,1]
}

// NewRateCalculator indexes the configured capture items.
func NewRateCalculator(rates map[string]float64) *RateCalculator {
	m := make(map[string]float64, len(rates))
	for id, r := range rates {
		m[id] = r
	}
	return &RateCalculator{rates: m}
}

// Probability implements engine.CaptureResolver. Unknown items never
// capture.
func (r *RateCalculator) Probability(target game.Monster, itemID string) float64 {
	base, ok := r.rates[itemID]
	if !ok {
		return 0
	}
	ratio := 0.0
	if target.MaxHP > 0 {
		ratio = float64(target.CurrentHP) / float64(target.MaxHP)
	}
	p := base * (1 - captureHealthWeight*ratio)
	if p < captureRateFloor {
		p = captureRateFloor
	}
	if p > captureRateCeiling {
		p = captureRateCeiling
	}
	return p
}
