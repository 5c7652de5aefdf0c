package engine

import (
	"github.com/Gameaday/Pixel-Warrior-Monsters-sub002/internal/game"
)

// scriptedRand replays a fixed sequence of draws. Draws past the end of the
// script return a value close to 1 so unexpected rolls fail loudly in
// assertions instead of wrapping around.
type scriptedRand struct {
	draws []float64
	next  int
}

func (s *scriptedRand) Float64() float64 {
	if s.next >= len(s.draws) {
		return 0.999999
	}
	v := s.draws[s.next]
	s.next++
	return v
}

type mapCatalog map[string]game.Skill

func (c mapCatalog) Lookup(id string) (game.Skill, bool) {
	sk, ok := c[id]
	return sk, ok
}

type stubCapture struct {
	p float64
}

func (s stubCapture) Probability(game.Monster, string) float64 { return s.p }

func testMonster(name string, slot int) game.Monster {
	return game.Monster{
		Slot:        slot,
		Name:        name,
		Level:       10,
		PrimaryType: game.TypeNormal,
		MaxHP:       100,
		CurrentHP:   100,
		MaxMP:       30,
		CurrentMP:   30,
		Attack:      60,
		Defense:     40,
		Agility:     60,
		Magic:       55,
		Wisdom:      45,
	}
}

func testBattle(player, enemy []game.Monster) game.Battle {
	return game.Battle{
		Status:    game.StatusInProgress,
		Phase:     game.PhaseSelecting,
		TurnCount: 1,
		Sides: []game.Side{
			{Index: game.SidePlayer, TrainerName: "Red", ActiveSlot: 0, Monsters: player},
			{Index: game.SideEnemy, TrainerName: "Wild", ActiveSlot: 0, Monsters: enemy},
		},
	}
}

func testEngine(cat SkillCatalog, capture CaptureResolver, rng RandSource) *Engine {
	if cat == nil {
		cat = mapCatalog{}
	}
	if capture == nil {
		capture = stubCapture{}
	}
	return New(cat, capture, rng, nil)
}
