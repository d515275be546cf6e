package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SeasonArchive is the immutable per-season history row written during the
// offseason rollover. Old seasons are queried for franchise history views
// and are never mutated after creation.
type SeasonArchive struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SessionID uuid.UUID `gorm:"type:uuid;not null;index:idx_session_year" json:"session_id"`
	Year      int       `gorm:"not null;index:idx_session_year" json:"year"`

	Tier   Tier `gorm:"not null" json:"tier"`
	Wins   int  `json:"wins"`
	Losses int  `json:"losses"`

	Revenue         int `json:"revenue"`
	Expenses        int `json:"expenses"`
	NetIncome       int `json:"net_income"`
	EndingReserves  int `json:"ending_reserves"`
	Pride           int `json:"pride"`

	WonDivision     bool `json:"won_division"`
	WonChampionship bool `json:"won_championship"`
	Promoted        bool `json:"promoted"`

	// Full end-of-season roster for history views
	RosterSnapshot datatypes.JSON `json:"roster_snapshot"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM
func (SeasonArchive) TableName() string {
	return "season_archives"
}
