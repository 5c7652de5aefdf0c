package storage

import (
	"time"

	"github.com/Gameaday/Pixel-Warrior-Monsters-sub002/internal/game"
)

type Repository interface {
	CreateBattle(b *game.Battle) error
	GetBattleByID(id uint) (*game.Battle, error)
	FindBattleByJoinCode(code string) (*game.Battle, error)
	UpdateBattle(b *game.Battle) error
	ListActiveBattles() ([]game.Battle, error)
	// FindStaleBattles returns in-progress battles whose last update is at
	// or before the provided cutoff. The caller decides how to resolve them
	// (for example, finishing them due to inactivity).
	FindStaleBattles(cutoff time.Time) ([]game.Battle, error)
}
