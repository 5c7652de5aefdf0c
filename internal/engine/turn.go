package engine

import (
	"sort"

	"github.com/Gameaday/Pixel-Warrior-Monsters-sub002/internal/game"
)

// orderKey ranks an action: the priority tier dominates, the acting
// monster's agility breaks ties within a tier.
func orderKey(b *game.Battle, act game.Action) int {
	key := act.Priority * 1000
	if s := b.Side(act.Side); s != nil {
		if m := s.Active(); m != nil {
			key += m.Agility
		}
	}
	return key
}

// OrderActions returns the two pending actions in resolution order, highest
// key first. Equal keys keep submission order.
func OrderActions(b *game.Battle, first, second game.Action) []game.Action {
	acts := []game.Action{first, second}
	sort.SliceStable(acts, func(i, j int) bool {
		return orderKey(b, acts[i]) > orderKey(b, acts[j])
	})
	return acts
}
