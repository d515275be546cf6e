package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// GameSession is the persisted save-game aggregate. The engine itself is
// stateless; this record is the authoritative snapshot the service layer
// loads, passes into engine calls and writes back. One writer per session.
type GameSession struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID string    `gorm:"index" json:"user_id"`

	// Denormalized columns for listing and cleanup queries
	FranchiseName string     `gorm:"not null" json:"franchise_name"`
	Tier          Tier       `gorm:"not null" json:"tier"`
	Season        int        `gorm:"not null" json:"season"`
	Status        GameStatus `gorm:"not null;default:'active'" json:"status"`

	// Snapshot blobs
	Franchise datatypes.JSON `json:"franchise"`
	City      datatypes.JSON `json:"city"`
	Roster    datatypes.JSON `json:"roster"`
	Prospects datatypes.JSON `json:"prospects"`

	Wins            int  `json:"wins"`
	Losses          int  `json:"losses"`
	WonDivision     bool `json:"won_division"`
	WonChampionship bool `json:"won_championship"`

	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	LastPlayedAt time.Time `gorm:"index" json:"last_played_at"`
}

// TableName specifies the table name for GORM
func (GameSession) TableName() string {
	return "game_sessions"
}

// SessionState is the fully decoded game state handed to the engine
type SessionState struct {
	Franchise Franchise       `json:"franchise"`
	City      CityState       `json:"city"`
	Roster    []Player        `json:"roster"`
	Prospects []DraftProspect `json:"prospects"`
	Record    SeasonRecord    `json:"record"`
}

// DecodeState unpacks the JSON snapshot columns into a SessionState
func (s *GameSession) DecodeState() (*SessionState, error) {
	state := &SessionState{
		Record: SeasonRecord{Wins: s.Wins, Losses: s.Losses},
	}
	if len(s.Franchise) > 0 {
		if err := json.Unmarshal(s.Franchise, &state.Franchise); err != nil {
			return nil, fmt.Errorf("failed to decode franchise snapshot: %w", err)
		}
	}
	if len(s.City) > 0 {
		if err := json.Unmarshal(s.City, &state.City); err != nil {
			return nil, fmt.Errorf("failed to decode city snapshot: %w", err)
		}
	}
	if len(s.Roster) > 0 {
		if err := json.Unmarshal(s.Roster, &state.Roster); err != nil {
			return nil, fmt.Errorf("failed to decode roster snapshot: %w", err)
		}
	}
	if len(s.Prospects) > 0 {
		if err := json.Unmarshal(s.Prospects, &state.Prospects); err != nil {
			return nil, fmt.Errorf("failed to decode prospect snapshot: %w", err)
		}
	}
	return state, nil
}

// EncodeState writes a SessionState back into the snapshot columns
func (s *GameSession) EncodeState(state *SessionState) error {
	franchise, err := json.Marshal(state.Franchise)
	if err != nil {
		return fmt.Errorf("failed to encode franchise snapshot: %w", err)
	}
	city, err := json.Marshal(state.City)
	if err != nil {
		return fmt.Errorf("failed to encode city snapshot: %w", err)
	}
	roster, err := json.Marshal(state.Roster)
	if err != nil {
		return fmt.Errorf("failed to encode roster snapshot: %w", err)
	}
	prospects, err := json.Marshal(state.Prospects)
	if err != nil {
		return fmt.Errorf("failed to encode prospect snapshot: %w", err)
	}

	s.Franchise = datatypes.JSON(franchise)
	s.City = datatypes.JSON(city)
	s.Roster = datatypes.JSON(roster)
	s.Prospects = datatypes.JSON(prospects)
	s.FranchiseName = state.Franchise.Name
	s.Tier = state.Franchise.Tier
	s.Wins = state.Record.Wins
	s.Losses = state.Record.Losses
	return nil
}
