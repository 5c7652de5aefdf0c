package engine

import "github.com/Gameaday/Pixel-Warrior-Monsters-sub002/internal/game"

// aiContext carries what the decision rules need about the acting monster.
type aiContext struct {
	actor      *game.Monster
	affordable []game.Skill
}

// decisionRule pairs a predicate with an action producer. Rules are
// evaluated in order; the first applicable rule decides.
type decisionRule struct {
	applies func(e *Engine, ctx *aiContext) bool
	produce func(e *Engine, ctx *aiContext) game.Action
}

var enemyPolicy = []decisionRule{
	{
		// Spend MP on a known skill when the reserve is comfortable.
		applies: func(e *Engine, ctx *aiContext) bool {
			return ctx.actor.CurrentMP > 8 && e.rng.Float64() < 0.4
		},
		produce: func(e *Engine, ctx *aiContext) game.Action {
			if len(ctx.affordable) == 0 {
				return basicEnemyAction(game.ActionAttack)
			}
			sk := ctx.affordable[int(e.rng.Float64()*float64(len(ctx.affordable)))]
			return game.Action{
				Kind:     game.ActionUseSkill,
				Side:     game.SideEnemy,
				SkillID:  sk.ID,
				Priority: sk.Priority,
			}
		},
	},
	{
		// Turtle up when badly hurt.
		applies: func(e *Engine, ctx *aiContext) bool {
			hurt := float64(ctx.actor.CurrentHP) < 0.3*float64(ctx.actor.MaxHP)
			return hurt && e.rng.Float64() < 0.3
		},
		produce: func(e *Engine, ctx *aiContext) game.Action {
			return basicEnemyAction(game.ActionDefend)
		},
	},
	{
		applies: func(e *Engine, ctx *aiContext) bool { return true },
		produce: func(e *Engine, ctx *aiContext) game.Action {
			return basicEnemyAction(game.ActionAttack)
		},
	},
}

func basicEnemyAction(kind game.ActionKind) game.Action {
	return game.Action{Kind: kind, Side: game.SideEnemy, Priority: 0}
}

// DecideEnemyAction synthesizes the opposing action for the current turn by
// walking the heuristic rule chain.
func (e *Engine) DecideEnemyAction(b game.Battle) game.Action {
	side := b.EnemySide()
	if side == nil {
		return basicEnemyAction(game.ActionAttack)
	}
	actor := side.Active()
	if actor == nil || actor.Fainted() {
		return basicEnemyAction(game.ActionAttack)
	}
	ctx := &aiContext{actor: actor, affordable: e.affordableSkills(actor)}
	for _, rule := range enemyPolicy {
		if rule.applies(e, ctx) {
			return rule.produce(e, ctx)
		}
	}
	return basicEnemyAction(game.ActionAttack)
}

// affordableSkills resolves the monster's learned skills against the catalog
// and keeps the ones its current MP can pay for.
func (e *Engine) affordableSkills(m *game.Monster) []game.Skill {
	ids := m.LearnedSkills()
	out := make([]game.Skill, 0, len(ids))
	for _, id := range ids {
		if sk, ok := e.catalog.Lookup(id); ok && sk.MPCost <= m.CurrentMP {
			out = append(out, sk)
		}
	}
	return out
}
