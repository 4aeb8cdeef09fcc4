package models

import (
	"time"
)

// Watchlist is a user-created collection of tracked symbols. UpdatedAt moves on
// structural changes (rename, item add/remove) but not on item snapshot updates.
type Watchlist struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime"`

	Items []WatchlistItem `gorm:"foreignKey:WatchlistID;constraint:OnDelete:CASCADE"`
}

func (Watchlist) TableName() string {
	return "watchlists"
}
