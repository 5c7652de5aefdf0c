package engine

import (
	"fmt"

	"github.com/Gameaday/Pixel-Warrior-Monsters-sub002/internal/game"
)

// stepOutcome signals lifecycle transitions triggered by a single action.
type stepOutcome int

const (
	stepContinue stepOutcome = iota
	stepCaptured
	stepEscaped
)

// apply resolves exactly one action against the battle held by the context.
// Infeasible actions (unknown skill, unaffordable MP cost, fainted actor)
// are recoverable no-ops: the state is left unchanged and no event is
// emitted unless noted otherwise.
func (e *Engine) apply(tc *turnContext, act game.Action) stepOutcome {
	actorSide := tc.b.Side(act.Side)
	targetSide := tc.b.Side(1 - act.Side)
	if actorSide == nil || targetSide == nil {
		return stepContinue
	}
	actor := actorSide.Active()
	if actor == nil || actor.Fainted() {
		return stepContinue
	}

	switch act.Kind {
	case game.ActionAttack:
		e.applySkill(tc, actorSide, targetSide, game.BasicAttackSkill())
	case game.ActionUseSkill:
		sk, ok := e.catalog.Lookup(act.SkillID)
		if !ok || actor.CurrentMP < sk.MPCost {
			return stepContinue
		}
		e.applySkill(tc, actorSide, targetSide, sk)
	case game.ActionDefend:
		actor.DefendStance = true
		tc.add(fmt.Sprintf("%s braces defensively!", actor.Name))
	case game.ActionFlee:
		return e.applyFlee(tc, actorSide, targetSide)
	case game.ActionCapture:
		return e.applyCapture(tc, targetSide, act.ItemID)
	}
	return stepContinue
}

// applySkill spends MP, rolls accuracy, then routes by category: damaging
// skills go through the damage calculator, healing skills restore HP, and
// power-0 support skills only announce themselves.
func (e *Engine) applySkill(tc *turnContext, actorSide, targetSide *game.Side, sk game.Skill) {
	actor := actorSide.Active()
	actor.SpendMP(sk.MPCost)

	if sk.Accuracy < 100 && e.rng.Float64()*100 >= float64(sk.Accuracy) {
		tc.add(fmt.Sprintf("%s uses %s, but it misses!", actor.Name, sk.Name))
		return
	}

	switch {
	case sk.IsDamaging():
		target := targetSide.Active()
		if target == nil || target.Fainted() {
			tc.add(fmt.Sprintf("%s uses %s, but there is no target!", actor.Name, sk.Name))
			return
		}
		dmg := e.ComputeDamage(*actor, *target, sk, sk.Category == game.SkillPhysical)
		if target.DefendStance {
			dmg /= 2
			if dmg < minDamage {
				dmg = minDamage
			}
		}
		target.ApplyDamage(dmg)
		tc.add(fmt.Sprintf("%s uses %s on %s for %d damage!", actor.Name, sk.Name, target.Name, dmg))
		if target.Fainted() {
			tc.add(fmt.Sprintf("%s is down!", target.Name))
		}
	case sk.Category == game.SkillHealing && sk.Power > 0:
		recipient := actor
		if sk.Target == game.TargetEnemy {
			if t := targetSide.Active(); t != nil {
				recipient = t
			}
		}
		amount := recipient.MaxHP * sk.Power / 100
		if amount < 1 {
			amount = 1
		}
		recipient.Heal(amount)
		tc.add(fmt.Sprintf("%s uses %s and %s recovers %d HP!", actor.Name, sk.Name, recipient.Name, amount))
	default:
		tc.add(fmt.Sprintf("%s uses %s!", actor.Name, sk.Name))
	}
}

// applyFlee rolls the escape chance clamped to [0.1, 0.9]. A failed attempt
// only costs the turn; a disallowed attempt is annotated but changes nothing.
func (e *Engine) applyFlee(tc *turnContext, actorSide, targetSide *game.Side) stepOutcome {
	actor := actorSide.Active()
	if !tc.b.CanFlee {
		tc.add(fmt.Sprintf("%s can't run from this battle!", actor.Name))
		return stepContinue
	}
	chance := 0.5
	if opp := targetSide.Active(); opp != nil {
		chance = 0.5 + 0.01*float64(actor.Agility-opp.Agility)
	}
	chance = clampFloat(chance, 0.1, 0.9)
	if e.rng.Float64() < chance {
		tc.add(fmt.Sprintf("%s got away safely!", actor.Name))
		return stepEscaped
	}
	tc.add(fmt.Sprintf("%s couldn't get away!", actor.Name))
	return stepContinue
}

// applyCapture delegates to the capture resolver. Capture is only legal
// against the active monster of a wild encounter.
func (e *Engine) applyCapture(tc *turnContext, targetSide *game.Side, itemID string) stepOutcome {
	target := targetSide.Active()
	if target == nil || target.Fainted() {
		return stepContinue
	}
	if !tc.b.IsWildEncounter || !tc.b.CanCapture {
		tc.add(fmt.Sprintf("%s can't be captured!", target.Name))
		return stepContinue
	}
	p := e.capture.Probability(*target, itemID)
	if e.rng.Float64() < p {
		tc.add(fmt.Sprintf("Gotcha! %s was captured!", target.Name))
		return stepCaptured
	}
	tc.add(fmt.Sprintf("%s broke free!", target.Name))
	return stepContinue
}
