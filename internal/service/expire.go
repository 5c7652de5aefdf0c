package service

import (
	"github.com/Gameaday/Pixel-Warrior-Monsters-sub002/internal/game"
	"github.com/Gameaday/Pixel-Warrior-Monsters-sub002/internal/logging"
	"github.com/Gameaday/Pixel-Warrior-Monsters-sub002/internal/storage"
)

// HandleStaleBattle finishes a battle that saw no action within the
// inactivity window. The battle keeps its last combat state; only the
// lifecycle fields change.
func HandleStaleBattle(repo storage.Repository, b *game.Battle) error {
	if b.Status != game.StatusInProgress {
		return nil
	}
	b.Status = game.StatusFinished
	b.Message = "Battle ended due to inactivity"
	logging.Info("expiring stale battle", logging.Fields{"battle_id": b.ID, "join_code": b.JoinCode})
	return repo.UpdateBattle(b)
}
