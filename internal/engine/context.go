package engine

import (
	"strings"

	"github.com/Gameaday/Pixel-Warrior-Monsters-sub002/internal/game"
)

// turnContext accumulates the event lines produced while resolving one turn.
type turnContext struct {
	b      *game.Battle
	events []string
}

func newTurnContext(b *game.Battle) *turnContext {
	return &turnContext{b: b, events: make([]string, 0, 8)}
}

func (tc *turnContext) add(msg string) { tc.events = append(tc.events, msg) }

// joinEvents returns the accumulated events as a single summary string.
func (tc *turnContext) joinEvents() string {
	return strings.Join(tc.events, "\n")
}
