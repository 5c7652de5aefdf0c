package storage

import (
	"time"

	"gorm.io/gorm"

	"github.com/Gameaday/Pixel-Warrior-Monsters-sub002/internal/game"
)

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) CreateBattle(b *game.Battle) error {
	return r.db.Create(b).Error
}

func (r *sqliteRepository) GetBattleByID(id uint) (*game.Battle, error) {
	var b game.Battle
	err := r.db.
		Preload("Sides", func(db *gorm.DB) *gorm.DB { return db.Order("side_index ASC") }).
		Preload("Sides.Monsters", func(db *gorm.DB) *gorm.DB { return db.Order("slot ASC") }).
		First(&b, id).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *sqliteRepository) FindBattleByJoinCode(code string) (*game.Battle, error) {
	var b game.Battle
	err := r.db.
		Preload("Sides", func(db *gorm.DB) *gorm.DB { return db.Order("side_index ASC") }).
		Preload("Sides.Monsters", func(db *gorm.DB) *gorm.DB { return db.Order("slot ASC") }).
		Where("join_code = ?", code).
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *sqliteRepository) UpdateBattle(b *game.Battle) error {
	return r.db.Session(&gorm.Session{FullSaveAssociations: true}).Save(b).Error
}

func (r *sqliteRepository) ListActiveBattles() ([]game.Battle, error) {
	var battles []game.Battle
	err := r.db.Where("status = ?", game.StatusInProgress).Find(&battles).Error
	return battles, err
}

func (r *sqliteRepository) FindStaleBattles(cutoff time.Time) ([]game.Battle, error) {
	var battles []game.Battle
	err := r.db.
		Where("status = ? AND updated_at <= ?", game.StatusInProgress, cutoff).
		Find(&battles).Error
	return battles, err
}
