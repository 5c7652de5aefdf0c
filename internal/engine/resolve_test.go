package engine

import (
	"reflect"
	"strings"
	"testing"

	"github.com/Gameaday/Pixel-Warrior-Monsters-sub002/internal/game"
)

type countingPacer struct {
	n int
}

func (p *countingPacer) Pace() { p.n++ }

func TestResolveTurnAdvancesCounterWhenNonTerminal(t *testing.T) {
	b := testBattle([]game.Monster{testMonster("Flamander", 0)}, []game.Monster{testMonster("Aquafin", 0)})
	e := testEngine(nil, nil, &scriptedRand{})

	next, events := e.ResolveTurn(b,
		game.Action{Kind: game.ActionDefend, Side: game.SidePlayer},
		game.Action{Kind: game.ActionDefend, Side: game.SideEnemy})

	if next.TurnCount != 2 {
		t.Fatalf("turn count = %d, want 2", next.TurnCount)
	}
	if next.Phase != game.PhaseSelecting {
		t.Fatalf("phase = %s, want selecting", next.Phase)
	}
	if next.Status != game.StatusInProgress {
		t.Fatalf("status = %s, want in_progress", next.Status)
	}
	if len(events) != 2 {
		t.Fatalf("expected two defend events, got %v", events)
	}
	// Stances only protect within the turn they were raised.
	for _, s := range next.Sides {
		for _, m := range s.Monsters {
			if m.DefendStance {
				t.Fatalf("%s still has a defend stance after the turn", m.Name)
			}
		}
	}
	if next.LastTurnSummary != strings.Join(events, "\n") {
		t.Fatalf("summary %q does not match events %v", next.LastTurnSummary, events)
	}
}

func TestResolveTurnVictoryStopsRemainingActions(t *testing.T) {
	player := testMonster("Flamander", 0)
	player.Agility = 60
	enemy := testMonster("Aquafin", 0)
	enemy.Agility = 50
	enemy.CurrentHP = 1
	b := testBattle([]game.Monster{player}, []game.Monster{enemy})

	// Player attack: accuracy hit, no crit, midpoint variance. The enemy
	// attack never rolls because the battle ends first.
	rng := &scriptedRand{draws: []float64{0.5, 0.99, 0.5}}
	e := testEngine(nil, nil, rng)

	next, events := e.ResolveTurn(b,
		game.Action{Kind: game.ActionAttack, Side: game.SidePlayer},
		game.Action{Kind: game.ActionAttack, Side: game.SideEnemy})

	if next.Phase != game.PhaseVictory {
		t.Fatalf("phase = %s, want victory", next.Phase)
	}
	if next.Status != game.StatusFinished {
		t.Fatalf("status = %s, want finished", next.Status)
	}
	if next.Winner != "Red" {
		t.Fatalf("winner = %q, want Red", next.Winner)
	}
	if next.TurnCount != 1 {
		t.Fatalf("turn count = %d, terminal turns must not increment", next.TurnCount)
	}
	if rng.next != 3 {
		t.Fatalf("rng draws = %d, want 3 (the loser never acts)", rng.next)
	}
	joined := strings.Join(events, "\n")
	if !strings.Contains(joined, "is down!") {
		t.Fatalf("expected a knockout event, got %v", events)
	}
	if got := next.PlayerSide().Active().CurrentHP; got != 100 {
		t.Fatalf("player HP = %d, the enemy must not have acted", got)
	}
}

func TestResolveTurnMutualExhaustionIsDefeat(t *testing.T) {
	player := testMonster("Flamander", 0)
	player.CurrentHP = 0
	enemy := testMonster("Aquafin", 0)
	enemy.CurrentHP = 0
	b := testBattle([]game.Monster{player}, []game.Monster{enemy})

	if ev := terminalEvent(&b); ev != eventDefeat {
		t.Fatalf("mutual knockout resolves to %q, want %q", ev, eventDefeat)
	}
}

func TestResolveTurnEscape(t *testing.T) {
	b := testBattle([]game.Monster{testMonster("Flamander", 0)}, []game.Monster{testMonster("Aquafin", 0)})
	b.IsWildEncounter = true
	b.CanFlee = true

	// Flee has no priority, equal agility keeps the player first; the roll
	// succeeds immediately.
	e := testEngine(nil, nil, &scriptedRand{draws: []float64{0.0}})
	next, events := e.ResolveTurn(b,
		game.Action{Kind: game.ActionFlee, Side: game.SidePlayer},
		game.Action{Kind: game.ActionDefend, Side: game.SideEnemy})

	if next.Phase != game.PhaseEscaped {
		t.Fatalf("phase = %s, want escaped", next.Phase)
	}
	if next.Status != game.StatusFinished {
		t.Fatalf("status = %s, want finished", next.Status)
	}
	if next.Winner != "" {
		t.Fatalf("an escape has no winner, got %q", next.Winner)
	}
	if !strings.Contains(strings.Join(events, "\n"), "got away") {
		t.Fatalf("expected the escape event, got %v", events)
	}
}

func TestResolveTurnPromotesReserveAfterKnockout(t *testing.T) {
	lead := testMonster("Flamander", 0)
	lead.CurrentHP = 1
	lead.Agility = 60
	backup := testMonster("Leafling", 1)
	enemy := testMonster("Aquafin", 0)
	enemy.Agility = 70
	b := testBattle([]game.Monster{lead, backup}, []game.Monster{enemy})

	// Enemy attack: hit, no crit, midpoint variance. The fainted lead's
	// defend is then a no-op.
	e := testEngine(nil, nil, &scriptedRand{draws: []float64{0.5, 0.99, 0.5}})
	next, events := e.ResolveTurn(b,
		game.Action{Kind: game.ActionDefend, Side: game.SidePlayer},
		game.Action{Kind: game.ActionAttack, Side: game.SideEnemy})

	if next.Phase != game.PhaseSelecting {
		t.Fatalf("phase = %s, want selecting (the party still stands)", next.Phase)
	}
	if got := next.PlayerSide().ActiveSlot; got != 1 {
		t.Fatalf("active slot = %d, want the reserve promoted to 1", got)
	}
	if !strings.Contains(strings.Join(events, "\n"), "sends out Leafling") {
		t.Fatalf("expected the switch-in event, got %v", events)
	}
}

func TestResolveTurnDoesNotMutateInput(t *testing.T) {
	b := testBattle([]game.Monster{testMonster("Flamander", 0)}, []game.Monster{testMonster("Aquafin", 0)})
	e := testEngine(nil, nil, &scriptedRand{draws: []float64{0.5, 0.99, 0.5, 0.5, 0.99, 0.5}})

	e.ResolveTurn(b,
		game.Action{Kind: game.ActionAttack, Side: game.SidePlayer},
		game.Action{Kind: game.ActionAttack, Side: game.SideEnemy})

	if got := b.PlayerSide().Active().CurrentHP; got != 100 {
		t.Fatalf("input battle mutated, player HP = %d", got)
	}
	if got := b.EnemySide().Active().CurrentHP; got != 100 {
		t.Fatalf("input battle mutated, enemy HP = %d", got)
	}
	if b.TurnCount != 1 || b.Phase != game.PhaseSelecting {
		t.Fatalf("input battle mutated: turn %d phase %s", b.TurnCount, b.Phase)
	}
}

func TestResolveTurnIsDeterministicForSeed(t *testing.T) {
	run := func() (game.Battle, []string) {
		b := testBattle([]game.Monster{testMonster("Flamander", 0)}, []game.Monster{testMonster("Aquafin", 0)})
		e := testEngine(nil, nil, NewRand(42))
		return e.ResolveTurn(b,
			game.Action{Kind: game.ActionAttack, Side: game.SidePlayer},
			game.Action{Kind: game.ActionAttack, Side: game.SideEnemy})
	}

	first, firstEvents := run()
	second, secondEvents := run()

	if !reflect.DeepEqual(firstEvents, secondEvents) {
		t.Fatalf("events diverged:\n%v\n%v", firstEvents, secondEvents)
	}
	if first.PlayerSide().Active().CurrentHP != second.PlayerSide().Active().CurrentHP ||
		first.EnemySide().Active().CurrentHP != second.EnemySide().Active().CurrentHP {
		t.Fatal("resulting HP diverged for identical seeds")
	}
}

func TestResolveTurnRejectsFinishedBattles(t *testing.T) {
	b := testBattle([]game.Monster{testMonster("Flamander", 0)}, []game.Monster{testMonster("Aquafin", 0)})
	b.Phase = game.PhaseVictory
	b.Status = game.StatusFinished

	e := testEngine(nil, nil, &scriptedRand{})
	next, events := e.ResolveTurn(b,
		game.Action{Kind: game.ActionAttack, Side: game.SidePlayer},
		game.Action{Kind: game.ActionAttack, Side: game.SideEnemy})

	if events != nil {
		t.Fatalf("expected no events, got %v", events)
	}
	if next.Phase != game.PhaseVictory || next.TurnCount != b.TurnCount {
		t.Fatal("finished battle must be returned unchanged")
	}
}

func TestResolveTurnPacesEveryAppliedAction(t *testing.T) {
	b := testBattle([]game.Monster{testMonster("Flamander", 0)}, []game.Monster{testMonster("Aquafin", 0)})
	pacer := &countingPacer{}
	e := New(mapCatalog{}, stubCapture{}, &scriptedRand{}, pacer)

	e.ResolveTurn(b,
		game.Action{Kind: game.ActionDefend, Side: game.SidePlayer},
		game.Action{Kind: game.ActionDefend, Side: game.SideEnemy})

	if pacer.n != 2 {
		t.Fatalf("pacer invoked %d times, want 2", pacer.n)
	}
}
