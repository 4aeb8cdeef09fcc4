package db

import (
	"stockwatch/internal/models"
)

func AutoMigrate(db *DB) error {
	if db == nil || db.Gorm == nil {
		return nil
	}
	return db.Gorm.AutoMigrate(
		&models.Watchlist{},
		&models.WatchlistItem{},
		&models.QuoteSnapshot{},
	)
}
