package service

import (
	"testing"

	"github.com/Gameaday/Pixel-Warrior-Monsters-sub002/internal/game"
)

func TestHandleStaleBattleFinishes(t *testing.T) {
	repo := newMockRepo()
	b := seedBattle(repo, "STALE001")

	if err := HandleStaleBattle(repo, b); err != nil {
		t.Fatalf("HandleStaleBattle() failed: %v", err)
	}
	if b.Status != game.StatusFinished {
		t.Fatalf("status = %s, want finished", b.Status)
	}
	if b.Message == "" {
		t.Fatal("expected an inactivity message")
	}
	if repo.updateCalls != 1 {
		t.Fatalf("update calls = %d, want 1", repo.updateCalls)
	}
}

func TestHandleStaleBattleIgnoresFinished(t *testing.T) {
	repo := newMockRepo()
	b := seedBattle(repo, "STALE002")
	b.Status = game.StatusFinished

	if err := HandleStaleBattle(repo, b); err != nil {
		t.Fatalf("HandleStaleBattle() failed: %v", err)
	}
	if repo.updateCalls != 0 {
		t.Fatal("finished battles must not be rewritten")
	}
}
