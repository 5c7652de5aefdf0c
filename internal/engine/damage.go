package engine

import (
	"math"

	"github.com/Gameaday/Pixel-Warrior-Monsters-sub002/internal/game"
)

const (
	critChance     = 0.05
	critMultiplier = 1.5
	varianceMin    = 0.85
	varianceSpread = 0.30
	minDamage      = 1
)

// ComputeDamage calculates a single hit. Physical hits scale on the
// attacker's attack stat, magical hits on its magic stat; the defender's
// level and primary type feed the modifiers. Secondary types are not
// consulted. Callers must route power-0 skills around this function.
//
// Draw order from the random source: critical, then variance.
func (e *Engine) ComputeDamage(attacker, defender game.Monster, sk game.Skill, physical bool) int {
	attackStat := attacker.Attack
	if !physical {
		attackStat = attacker.Magic
	}

	base := math.Floor(float64(attackStat) * float64(sk.Power) / 100.0)
	levelModifier := 1.0 + 0.05*float64(attacker.Level-defender.Level)
	typeModifier := TypeEffectiveness(attacker.PrimaryType, defender.PrimaryType)

	criticalModifier := 1.0
	if e.rng.Float64() < critChance {
		criticalModifier = critMultiplier
	}
	varianceModifier := varianceMin + e.rng.Float64()*varianceSpread

	dmg := int(math.Floor(base * levelModifier * typeModifier * criticalModifier * varianceModifier))
	if dmg < minDamage {
		dmg = minDamage
	}
	return dmg
}
