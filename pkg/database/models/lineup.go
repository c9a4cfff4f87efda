package models

import (
	"time"

	"gorm.io/datatypes"
)

// Database model for a manager's daily lineup.
type Lineup struct {
	TournamentID string `gorm:"primaryKey;type:varchar(64)"`
	DateKey      string `gorm:"primaryKey;type:char(8)"`
	OwnerID      string `gorm:"primaryKey;type:varchar(128)"`
	DisplayName  string `gorm:"type:varchar(100)"`

	Captain  int64
	Cores    datatypes.JSONSlice[int64] `gorm:"type:jsonb;not null"`
	Supports datatypes.JSONSlice[int64] `gorm:"type:jsonb;not null"`
	TeamCard int64

	// Open -> Locked only. Admin overrides keep the flag set.
	Locked     bool `gorm:"not null;default:false"`
	Overridden bool `gorm:"not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PlayerIDs returns every player picked on the lineup, captain first.
func (l *Lineup) PlayerIDs() []int64 {
	ids := make([]int64, 0, 1+len(l.Cores)+len(l.Supports))
	ids = append(ids, l.Captain)
	ids = append(ids, l.Cores...)
	ids = append(ids, l.Supports...)
	return ids
}
