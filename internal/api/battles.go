package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gameaday/Pixel-Warrior-Monsters-sub002/internal/constants"
	"github.com/Gameaday/Pixel-Warrior-Monsters-sub002/internal/logging"
	"github.com/Gameaday/Pixel-Warrior-Monsters-sub002/internal/service"
)

type CreateBattlePayload struct {
	TrainerName   string   `json:"trainer_name"`
	EnemyName     string   `json:"enemy_name"`
	Party         []string `json:"party"`
	EnemyParty    []string `json:"enemy_party"`
	WildEncounter bool     `json:"wild_encounter"`
}

// CreateBattle starts a new encounter and returns its join code.
func (h *BattleHandler) CreateBattle(c *gin.Context) {
	var req CreateBattlePayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrInvalidRequest})
		return
	}

	joinCode := generateJoinCode()
	b, err := service.StartBattle(h.repo, h.cfg.Templates, joinCode, service.StartBattleParams{
		TrainerName:   req.TrainerName,
		EnemyName:     req.EnemyName,
		PartyNames:    req.Party,
		EnemyNames:    req.EnemyParty,
		WildEncounter: req.WildEncounter,
	})
	if err != nil {
		switch err {
		case service.ErrUnknownTemplate:
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrUnknownTemplate})
		case service.ErrEmptyParty:
			c.JSON(http.StatusBadRequest, gin.H{constants.JSONKeyError: constants.ErrPartyRequired})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{constants.JSONKeyError: constants.ErrFailedCreateBattle})
		}
		return
	}

	logging.Info("battle created", logging.Fields{
		constants.LogFieldBattleID: b.ID,
		constants.LogFieldJoinCode: b.JoinCode,
	})
	c.JSON(http.StatusCreated, gin.H{
		"battle_id": b.ID,
		"join_code": b.JoinCode,
	})
}

// GetBattle returns the latest snapshot of a battle.
func (h *BattleHandler) GetBattle(c *gin.Context) {
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
	c.JSON(http.StatusOK, b)
}

// ListSkills returns the full skill catalog.
func (h *BattleHandler) ListSkills(c *gin.Context) {
	c.JSON(http.StatusOK, h.skills.All())
}
