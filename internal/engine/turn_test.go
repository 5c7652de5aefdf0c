package engine

import (
	"testing"

	"github.com/Gameaday/Pixel-Warrior-Monsters-sub002/internal/game"
)

func TestOrderActionsAgilityBreaksTies(t *testing.T) {
	player := testMonster("Flamander", 0)
	player.Agility = 60
	enemy := testMonster("Aquafin", 0)
	enemy.Agility = 70
	b := testBattle([]game.Monster{player}, []game.Monster{enemy})

	playerAct := game.Action{Kind: game.ActionAttack, Side: game.SidePlayer}
	enemyAct := game.Action{Kind: game.ActionAttack, Side: game.SideEnemy}

	ordered := OrderActions(&b, playerAct, enemyAct)
	if ordered[0].Side != game.SideEnemy {
		t.Fatalf("faster monster should act first, got side %d", ordered[0].Side)
	}
}

func TestOrderActionsPriorityDominatesAgility(t *testing.T) {
	player := testMonster("Slowpoke", 0)
	player.Agility = 10
	enemy := testMonster("Speedster", 0)
	enemy.Agility = 999
	b := testBattle([]game.Monster{player}, []game.Monster{enemy})

	playerAct := game.Action{Kind: game.ActionUseSkill, Side: game.SidePlayer, SkillID: "aqua_jet", Priority: 1}
	enemyAct := game.Action{Kind: game.ActionAttack, Side: game.SideEnemy}

	ordered := OrderActions(&b, playerAct, enemyAct)
	if ordered[0].Side != game.SidePlayer {
		t.Fatalf("priority tier should dominate agility, got side %d first", ordered[0].Side)
	}
}

func TestOrderActionsEqualKeysKeepSubmissionOrder(t *testing.T) {
	player := testMonster("Twin", 0)
	enemy := testMonster("Twin", 0)
	b := testBattle([]game.Monster{player}, []game.Monster{enemy})

	playerAct := game.Action{Kind: game.ActionDefend, Side: game.SidePlayer}
	enemyAct := game.Action{Kind: game.ActionDefend, Side: game.SideEnemy}

	ordered := OrderActions(&b, playerAct, enemyAct)
	if ordered[0].Side != game.SidePlayer || ordered[1].Side != game.SideEnemy {
		t.Fatalf("equal keys should keep submission order, got %v", ordered)
	}
}
