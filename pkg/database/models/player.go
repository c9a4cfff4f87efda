package models

import "time"

// Database model for the local player display-name cache.
// Filled from match rows at ingest, used when redis doesn't have the name.
type PlayerName struct {
	AccountID int64  `gorm:"primaryKey;autoIncrement:false"`
	Name      string `gorm:"type:varchar(100)"`
	UpdatedAt time.Time
}
