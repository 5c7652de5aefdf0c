package engine

import (
	"math/rand"
	"time"

	"github.com/Gameaday/Pixel-Warrior-Monsters-sub002/internal/game"
)

// SkillCatalog resolves skill ids to their immutable catalog entries.
type SkillCatalog interface {
	Lookup(id string) (game.Skill, bool)
}

// CaptureResolver computes the probability in [0,1] of capturing the target
// with the given item.
type CaptureResolver interface {
	Probability(target game.Monster, itemID string) float64
}

// RandSource yields uniform draws in [0,1). Tests substitute a scripted
// source to make outcomes reproducible.
type RandSource interface {
	Float64() float64
}

// NewRand returns a RandSource backed by math/rand with the given seed.
func NewRand(seed int64) RandSource {
	return rand.New(rand.NewSource(seed))
}

// Pacer is the presentation-pacing suspension point between applied actions.
// It carries no game state and must not affect ordering or outcomes.
type Pacer interface {
	Pace()
}

// NopPacer is the headless pacer used by tests and batch resolution.
type NopPacer struct{}

func (NopPacer) Pace() {}

// SleepPacer blocks for a fixed interval so a presentation layer can animate
// between steps.
type SleepPacer struct {
	Interval time.Duration
}

func (p SleepPacer) Pace() { time.Sleep(p.Interval) }

// Engine is the deterministic combat resolver. It owns no battle state: every
// operation takes a Battle value and returns a new one.
type Engine struct {
	catalog SkillCatalog
	capture CaptureResolver
	rng     RandSource
	pacer   Pacer
}

// New wires the engine's collaborators. A nil pacer degrades to NopPacer.
func New(catalog SkillCatalog, capture CaptureResolver, rng RandSource, pacer Pacer) *Engine {
	if pacer == nil {
		pacer = NopPacer{}
	}
	return &Engine{catalog: catalog, capture: capture, rng: rng, pacer: pacer}
}

// NormalizeAction fills the priority tier for skill actions from the catalog
// so callers do not need catalog access. Unknown skills keep priority 0; the
// executor turns them into no-ops later.
func (e *Engine) NormalizeAction(act game.Action) game.Action {
	if act.Kind == game.ActionUseSkill {
		if sk, ok := e.catalog.Lookup(act.SkillID); ok {
			act.Priority = sk.Priority
		}
	}
	return act
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
