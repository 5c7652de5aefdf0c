package main

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gameaday/Pixel-Warrior-Monsters-sub002/internal/api"
	"github.com/Gameaday/Pixel-Warrior-Monsters-sub002/internal/catalog"
	"github.com/Gameaday/Pixel-Warrior-Monsters-sub002/internal/config"
	"github.com/Gameaday/Pixel-Warrior-Monsters-sub002/internal/constants"
	"github.com/Gameaday/Pixel-Warrior-Monsters-sub002/internal/engine"
	"github.com/Gameaday/Pixel-Warrior-Monsters-sub002/internal/logging"
	"github.com/Gameaday/Pixel-Warrior-Monsters-sub002/internal/storage"
)

func main() {
	envCfg, err := config.ParseEnv()
	if err != nil {
		logging.Fatal("Failed to parse environment", err, nil)
	}
	cfg, err := config.Load(envCfg.ConfigPath)
	if err != nil {
		logging.Fatal("Missing or invalid battle configuration", err, logging.Fields{
			"config_path": envCfg.ConfigPath,
			"hint":        "create a battle_config.json with 'skill_list', 'monster_list' and 'item_list' arrays and optional keys: server.address, pacing_interval_ms, action_timeout_seconds",
		})
	}
	addr := cfg.ServerAddress
	if envCfg.Address != "" {
		addr = envCfg.Address
	}

	db, err := storage.OpenAndMigrate(envCfg.DBPath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}
	repo := storage.NewSQLiteRepository(db)

	skills := catalog.New(cfg.Skills)
	capture := catalog.NewRateCalculator(cfg.CaptureRates)
	eng := engine.New(skills, capture, engine.NewRand(time.Now().UnixNano()), engine.SleepPacer{Interval: cfg.PacingInterval})

	handler := api.NewBattleHandler(repo, eng, skills, cfg)
	startStaleScanner(repo, cfg.ActionTimeout)

	router := gin.Default()
	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteVersion, api.Version)
		apiRoutes.GET(constants.RouteSkills, handler.ListSkills)
		apiRoutes.POST(constants.RouteBattles, handler.CreateBattle)
		apiRoutes.GET(constants.RouteBattleByCode, handler.GetBattle)
		apiRoutes.POST(constants.RouteBattleAction, handler.SubmitAction)
		apiRoutes.GET(constants.RouteBattleEvents, handler.StreamEvents)
	}

	logging.Info("Server started", logging.Fields{constants.LogFieldAddr: addr})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
