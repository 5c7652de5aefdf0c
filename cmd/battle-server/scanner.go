package main

import (
	"time"

	"github.com/Gameaday/Pixel-Warrior-Monsters-sub002/internal/logging"
	"github.com/Gameaday/Pixel-Warrior-Monsters-sub002/internal/service"
	"github.com/Gameaday/Pixel-Warrior-Monsters-sub002/internal/storage"
)

// startStaleScanner periodically finishes battles that saw no action within
// the inactivity window.
func startStaleScanner(repo storage.Repository, actionTimeout time.Duration) {
	go func() {
		ticker := time.NewTicker(30 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			cutoff := time.Now().Add(-actionTimeout)
			battles, err := repo.FindStaleBattles(cutoff)
			if err != nil {
				logging.Error("stale battle scanner failed", err, nil)
				continue
			}
			for i := range battles {
				b, err := repo.GetBattleByID(battles[i].ID)
				if err != nil {
					continue
				}
				if err := service.HandleStaleBattle(repo, b); err != nil {
					logging.Error("failed to expire battle", err, logging.Fields{"battle_id": b.ID})
				}
			}
		}
	}()
}
