package service

import (
	"errors"
	"time"

	"github.com/Gameaday/Pixel-Warrior-Monsters-sub002/internal/game"
)

var errNotFound = errors.New("record not found")

// mockRepo is an in-memory Repository for service tests.
type mockRepo struct {
	battles     map[uint]*game.Battle
	nextID      uint
	createErr   error
	updateErr   error
	updateCalls int
}

func newMockRepo() *mockRepo {
	return &mockRepo{battles: map[uint]*game.Battle{}}
}

func (r *mockRepo) CreateBattle(b *game.Battle) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	b.ID = r.nextID
	r.battles[b.ID] = b
	return nil
}

func (r *mockRepo) GetBattleByID(id uint) (*game.Battle, error) {
	b, ok := r.battles[id]
	if !ok {
		return nil, errNotFound
	}
	return b, nil
}

func (r *mockRepo) FindBattleByJoinCode(code string) (*game.Battle, error) {
	for _, b := range r.battles {
		if b.JoinCode == code {
			return b, nil
		}
	}
	return nil, errNotFound
}

func (r *mockRepo) UpdateBattle(b *game.Battle) error {
	r.updateCalls++
	if r.updateErr != nil {
		return r.updateErr
	}
	r.battles[b.ID] = b
	return nil
}

func (r *mockRepo) ListActiveBattles() ([]game.Battle, error) {
	var out []game.Battle
	for _, b := range r.battles {
		if b.Status == game.StatusInProgress {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *mockRepo) FindStaleBattles(cutoff time.Time) ([]game.Battle, error) {
	var out []game.Battle
	for _, b := range r.battles {
		if b.Status == game.StatusInProgress && !b.UpdatedAt.After(cutoff) {
			out = append(out, *b)
		}
	}
	return out, nil
}
