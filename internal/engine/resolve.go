package engine

import (
	"context"
	"fmt"

	"github.com/looplab/fsm"

	"github.com/Gameaday/Pixel-Warrior-Monsters-sub002/internal/game"
)

// Lifecycle events driving the battle phase machine.
const (
	eventResolve = "resolve"
	eventStandby = "standby"
	eventVictory = "victory"
	eventDefeat  = "defeat"
	eventCapture = "capture"
	eventEscape  = "escape"
)

// newPhaseMachine builds the battle lifecycle automaton seeded at the given
// phase. Terminal phases have no outgoing transitions, so a finished battle
// rejects further resolution.
func newPhaseMachine(current string) *fsm.FSM {
	return fsm.NewFSM(
		current,
		fsm.Events{
			{Name: eventResolve, Src: []string{game.PhaseSelecting}, Dst: game.PhaseResolving},
			{Name: eventStandby, Src: []string{game.PhaseResolving}, Dst: game.PhaseSelecting},
			{Name: eventVictory, Src: []string{game.PhaseResolving}, Dst: game.PhaseVictory},
			{Name: eventDefeat, Src: []string{game.PhaseResolving}, Dst: game.PhaseDefeat},
			{Name: eventCapture, Src: []string{game.PhaseResolving}, Dst: game.PhaseCaptured},
			{Name: eventEscape, Src: []string{game.PhaseResolving}, Dst: game.PhaseEscaped},
		},
		fsm.Callbacks{},
	)
}

// terminalEvent inspects both parties and returns the lifecycle event a
// fully-exhausted side triggers. The player side is checked first, so a
// mutual knockout resolves as a defeat.
func terminalEvent(b *game.Battle) string {
	if b.PlayerSide().Exhausted() {
		return eventDefeat
	}
	if b.EnemySide().Exhausted() {
		return eventVictory
	}
	return ""
}

// ResolveTurn advances the battle by one full turn: both actions ordered and
// applied, termination checked after each, and the phase machine driven to
// either a terminal phase or back to selecting with the turn counter
// incremented by exactly one. The input battle is never mutated.
func (e *Engine) ResolveTurn(b game.Battle, playerAction, enemyAction game.Action) (game.Battle, []string) {
	next := b.Clone()
	if len(next.Sides) != 2 || next.PlayerSide() == nil || next.EnemySide() == nil {
		return b, nil
	}

	ctx := context.Background()
	machine := newPhaseMachine(next.Phase)
	if err := machine.Event(ctx, eventResolve); err != nil {
		// Not in the selecting phase; nothing to resolve.
		return b, nil
	}
	next.Phase = machine.Current()

	tc := newTurnContext(&next)
	for _, act := range OrderActions(&next, playerAction, enemyAction) {
		outcome := e.apply(tc, act)
		e.pacer.Pace()

		switch outcome {
		case stepCaptured:
			_ = machine.Event(ctx, eventCapture)
		case stepEscaped:
			_ = machine.Event(ctx, eventEscape)
		default:
			if ev := terminalEvent(&next); ev != "" {
				_ = machine.Event(ctx, ev)
			}
		}
		if machine.Current() != game.PhaseResolving {
			break
		}
	}

	if machine.Current() == game.PhaseResolving {
		promoteReserves(tc)
		clearStances(&next)
		_ = machine.Event(ctx, eventStandby)
		next.TurnCount++
	}
	next.Phase = machine.Current()
	finalizeBattle(&next)
	next.LastTurnSummary = tc.joinEvents()
	return next, tc.events
}

// promoteReserves sends out the next healthy party member on any side whose
// active monster fainted without exhausting the party.
func promoteReserves(tc *turnContext) {
	for i := range tc.b.Sides {
		s := &tc.b.Sides[i]
		active := s.Active()
		if active == nil || !active.Fainted() || s.Exhausted() {
			continue
		}
		for j := range s.Monsters {
			if !s.Monsters[j].Fainted() {
				s.ActiveSlot = s.Monsters[j].Slot
				tc.add(fmt.Sprintf("%s sends out %s!", s.TrainerName, s.Monsters[j].Name))
				break
			}
		}
	}
}

// clearStances drops defend stances when the turn finalizes; a stance only
// protects against hits landing later in the same turn.
func clearStances(b *game.Battle) {
	for i := range b.Sides {
		for j := range b.Sides[i].Monsters {
			b.Sides[i].Monsters[j].DefendStance = false
		}
	}
}

// finalizeBattle derives status, winner and message from the phase.
func finalizeBattle(b *game.Battle) {
	switch b.Phase {
	case game.PhaseVictory:
		b.Status = game.StatusFinished
		b.Winner = b.PlayerSide().TrainerName
		b.Message = "Victory! The opposing party is out of the fight."
	case game.PhaseDefeat:
		b.Status = game.StatusFinished
		b.Winner = b.EnemySide().TrainerName
		b.Message = "Defeat... the whole party is down."
	case game.PhaseCaptured:
		b.Status = game.StatusFinished
		b.Winner = b.PlayerSide().TrainerName
		b.Message = "The wild monster was captured!"
	case game.PhaseEscaped:
		b.Status = game.StatusFinished
		b.Message = "Got away from the battle."
	case game.PhaseSelecting:
		b.Message = "Choose your next action."
	}
}
