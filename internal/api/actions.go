package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gameaday/Pixel-Warrior-Monsters-sub002/internal/constants"
	"github.com/Gameaday/Pixel-Warrior-Monsters-sub002/internal/game"
	"github.com/Gameaday/Pixel-Warrior-Monsters-sub002/internal/service"
)

type ActionRequest struct {
	ActionType string `json:"action_type"`
	SkillID    string `json:"skill_id"`
	ItemID     string `json:"item_id"`
}

// SubmitAction applies the player's chosen action for the current turn and
// returns the resolved snapshot with its event lines.
func (h *BattleHandler) SubmitAction(c *gin.Context) {
	code := normalizeJoinCode(c.Param("battleCode"))
	if code == "" || !joinCodeRegex.MatchString(code) {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidBattleCode})
		return
	}
	b, err := h.repo.FindBattleByJoinCode(code)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrBattleNotFound})
		return
	}
	var req ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	act := game.Action{
		Kind:    game.ActionKind(req.ActionType),
		Side:    game.SidePlayer,
		SkillID: req.SkillID,
		ItemID:  req.ItemID,
	}
	next, events, err := service.SubmitAction(h.repo, h.eng, b.ID, act)
	if err != nil {
		switch err {
		case service.ErrBattleNotFound:
			c.JSON(http.StatusNotFound, gin.H{constants.JSONKeyError: constants.ErrBattleNotFound})
		case service.ErrBattleNotInProgress:
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrBattleNotInProgress})
		case service.ErrActionsLocked:
			c.JSON(http.StatusConflict, gin.H{constants.JSONKeyError: constants.ErrActionsLocked})
		case service.ErrInvalidAction:
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrUnknownAction})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedStoreAction})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"phase":  next.Phase,
		"turn":   next.TurnCount,
		"events": events,
		"battle": next,
	})
}
