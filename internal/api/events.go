package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Gameaday/Pixel-Warrior-Monsters-sub002/internal/constants"
	"github.com/Gameaday/Pixel-Warrior-Monsters-sub002/internal/game"
	"github.com/Gameaday/Pixel-Warrior-Monsters-sub002/internal/logging"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Presentation clients are served from other origins during development.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type battleEvent struct {
	Turn    int      `json:"turn"`
	Phase   string   `json:"phase"`
	Message string   `json:"message"`
	Events  []string `json:"events"`
}

// StreamEvents upgrades the connection to a websocket and pushes one message
// per resolved turn until the battle reaches a terminal phase.
func (h *BattleHandler) StreamEvents(c *gin.Context) {
	code := normalizeJoinCode(c.Param("battleCode"))
	if code == "" || !joinCodeRegex.MatchString(code) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidBattleCode})
		return
	}
	if _, err := h.repo.FindBattleByJoinCode(code); err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrBattleNotFound})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logging.Error("websocket upgrade failed", err, logging.Fields{constants.LogFieldJoinCode: code})
		return
	}
	defer conn.Close()

	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	lastTurn, lastPhase := -1, ""
	for range ticker.C {
		b, err := h.repo.FindBattleByJoinCode(code)
		if err != nil {
			return
		}
		if b.TurnCount == lastTurn && b.Phase == lastPhase {
			continue
		}
		lastTurn, lastPhase = b.TurnCount, b.Phase

		ev := battleEvent{Turn: b.TurnCount, Phase: b.Phase, Message: b.Message}
		if b.LastTurnSummary != "" {
			ev.Events = splitSummary(b.LastTurnSummary)
		}
		if err := conn.WriteJSON(ev); err != nil {
			return
		}
		if game.TerminalPhase(b.Phase) || b.Status == game.StatusFinished {
			return
		}
	}
}
