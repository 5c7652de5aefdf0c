package service

import (
	"errors"

	"github.com/Gameaday/Pixel-Warrior-Monsters-sub002/internal/dedupe"
	"github.com/Gameaday/Pixel-Warrior-Monsters-sub002/internal/engine"
	"github.com/Gameaday/Pixel-Warrior-Monsters-sub002/internal/game"
	"github.com/Gameaday/Pixel-Warrior-Monsters-sub002/internal/storage"
)

var (
	ErrBattleNotFound      = errors.New("battle not found")
	ErrBattleNotInProgress = errors.New("battle is not in progress")
	ErrActionsLocked       = errors.New("actions are locked; resolving current turn")
	ErrInvalidAction       = errors.New("unknown action type")
)

// TurnResult is what one resolved turn hands back to the API layer.
type TurnResult struct {
	Battle *game.Battle
	Events []string
}

var validKinds = map[game.ActionKind]struct{}{
	game.ActionAttack:   {},
	game.ActionUseSkill: {},
	game.ActionDefend:   {},
	game.ActionFlee:     {},
	game.ActionCapture:  {},
}

// SubmitAction resolves one full turn: the caller's action is paired with a
// synthesized enemy action, both run through the engine, and the returned
// state is persisted. Resolution is serialized per battle so concurrent
// submissions cannot interleave.
func SubmitAction(repo storage.Repository, eng *engine.Engine, battleID uint, act game.Action) (*game.Battle, []string, error) {
	b, err := repo.GetBattleByID(battleID)
	if err != nil || b == nil {
		return nil, nil, ErrBattleNotFound
	}
	if _, ok := validKinds[act.Kind]; !ok {
		return nil, nil, ErrInvalidAction
	}
	if b.Status != game.StatusInProgress {
		return nil, nil, ErrBattleNotInProgress
	}
	if b.Phase != game.PhaseSelecting {
		return nil, nil, ErrActionsLocked
	}

	// The player always acts from side 0 regardless of what the request
	// claimed.
	act.Side = game.SidePlayer
	act = eng.NormalizeAction(act)

	v, err, _ := dedupe.ResolveGroup.Do(b.JoinCode, func() (interface{}, error) {
		enemyAct := eng.DecideEnemyAction(*b)
		next, events := eng.ResolveTurn(*b, act, enemyAct)
		if err := repo.UpdateBattle(&next); err != nil {
			return nil, err
		}
		return &TurnResult{Battle: &next, Events: events}, nil
	})
	if err != nil {
		return nil, nil, err
	}
	res := v.(*TurnResult)
	return res.Battle, res.Events, nil
}
