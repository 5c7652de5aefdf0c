package storage

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Gameaday/Pixel-Warrior-Monsters-sub002/internal/game"
)

// OpenAndMigrate opens the SQLite database and keeps the battle schema
// up to date via AutoMigrate.
func OpenAndMigrate(dataSourceName string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&game.Battle{}, &game.Side{}, &game.Monster{}); err != nil {
		return nil, err
	}
	return db, nil
}
