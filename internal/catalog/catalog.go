package catalog

import (
	"sort"

	"github.com/Gameaday/Pixel-Warrior-Monsters-sub002/internal/game"
)

// Catalog is the config-backed skill lookup consumed by the engine.
type Catalog struct {
	skills map[string]game.Skill
}

// New indexes the configured skills by id.
func New(skills []game.Skill) *Catalog {
	m := make(map[string]game.Skill, len(skills))
	for _, sk := range skills {
		m[sk.ID] = sk
	}
	return &Catalog{skills: m}
}

// Lookup resolves a skill id. The second return is false for unknown ids.
func (c *Catalog) Lookup(id string) (game.Skill, bool) {
	sk, ok := c.skills[id]
	return sk, ok
}

// All returns every catalog skill sorted by id, for API listings.
func (c *Catalog) All() []game.Skill {
	out := make([]game.Skill, 0, len(c.skills))
	for _, sk := range c.skills {
		out = append(out, sk)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
