package models

import (
	"time"

	"gorm.io/datatypes"
)

// QuoteSnapshot keeps the raw provider payload from the most recent refresh passes,
// so provider schema drift can be diagnosed after the fact.
type QuoteSnapshot struct {
	ID        uint64         `gorm:"primaryKey;autoIncrement"`
	Symbol    string         `gorm:"type:text;not null;index"`
	Payload   datatypes.JSON `gorm:"not null"`
	FetchedAt time.Time      `gorm:"type:timestamptz;not null;index"`
}

func (QuoteSnapshot) TableName() string {
	return "quote_snapshots"
}
