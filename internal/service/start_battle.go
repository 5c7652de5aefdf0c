package service

import (
	"errors"
	"strings"

	"github.com/Gameaday/Pixel-Warrior-Monsters-sub002/internal/game"
	"github.com/Gameaday/Pixel-Warrior-Monsters-sub002/internal/storage"
)

var (
	ErrUnknownTemplate = errors.New("unknown monster template")
	ErrEmptyParty      = errors.New("both parties need at least one monster")
)

// StartBattleParams describes a new encounter. Party members reference
// monster templates from the server config by name.
type StartBattleParams struct {
	TrainerName string
	EnemyName   string
	PartyNames  []string
	EnemyNames  []string
	// WildEncounter battles allow fleeing and capturing; trainer battles
	// allow neither.
	WildEncounter bool
}

// StartBattle builds a battle from monster templates, initializes every
// combatant to full HP/MP, and persists it in the selecting phase.
func StartBattle(repo storage.Repository, templates map[string]game.Monster, joinCode string, p StartBattleParams) (*game.Battle, error) {
	if len(p.PartyNames) == 0 || len(p.EnemyNames) == 0 {
		return nil, ErrEmptyParty
	}
	playerSide, err := buildSide(templates, game.SidePlayer, p.TrainerName, p.PartyNames)
	if err != nil {
		return nil, err
	}
	enemyName := p.EnemyName
	if enemyName == "" {
		if p.WildEncounter {
			enemyName = "Wild"
		} else {
			enemyName = "Rival"
		}
	}
	enemySide, err := buildSide(templates, game.SideEnemy, enemyName, p.EnemyNames)
	if err != nil {
		return nil, err
	}

	b := &game.Battle{
		JoinCode:        joinCode,
		Status:          game.StatusInProgress,
		Phase:           game.PhaseSelecting,
		TurnCount:       1,
		Message:         "The battle begins. Choose your action.",
		IsWildEncounter: p.WildEncounter,
		CanFlee:         p.WildEncounter,
		CanCapture:      p.WildEncounter,
		Sides:           []game.Side{playerSide, enemySide},
	}
	if err := repo.CreateBattle(b); err != nil {
		return nil, err
	}
	return b, nil
}

func buildSide(templates map[string]game.Monster, index int, trainer string, names []string) (game.Side, error) {
	side := game.Side{Index: index, TrainerName: trainer, ActiveSlot: 0}
	for slot, name := range names {
		tpl, ok := templates[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return game.Side{}, ErrUnknownTemplate
		}
		m := tpl
		m.Slot = slot
		m.CurrentHP = m.MaxHP
		m.CurrentMP = m.MaxMP
		m.DefendStance = false
		side.Monsters = append(side.Monsters, m)
	}
	return side, nil
}
