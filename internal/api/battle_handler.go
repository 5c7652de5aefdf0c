package api

import (
	"github.com/Gameaday/Pixel-Warrior-Monsters-sub002/internal/catalog"
	"github.com/Gameaday/Pixel-Warrior-Monsters-sub002/internal/config"
	"github.com/Gameaday/Pixel-Warrior-Monsters-sub002/internal/engine"
	"github.com/Gameaday/Pixel-Warrior-Monsters-sub002/internal/storage"
)

// BattleHandler groups all battle-related HTTP handlers.
type BattleHandler struct {
	repo   storage.Repository
	eng    *engine.Engine
	skills *catalog.Catalog
	cfg    *config.LoadedConfig
}

// NewBattleHandler creates a BattleHandler with its repository, engine and
// skill catalog.
func NewBattleHandler(repo storage.Repository, eng *engine.Engine, skills *catalog.Catalog, cfg *config.LoadedConfig) *BattleHandler {
	return &BattleHandler{repo: repo, eng: eng, skills: skills, cfg: cfg}
}
