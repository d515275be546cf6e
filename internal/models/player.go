package models

import (
	"fmt"

	"github.com/google/uuid"
)

// Position represents a fielding position. Pitchers are SP/RP, everyone
// else is a position player.
type Position string

const (
	PositionCatcher    Position = "C"
	PositionFirstBase  Position = "1B"
	PositionSecondBase Position = "2B"
	PositionThirdBase  Position = "3B"
	PositionShortstop  Position = "SS"
	PositionLeftField  Position = "LF"
	PositionCenterField Position = "CF"
	PositionRightField Position = "RF"
	PositionStarter    Position = "SP"
	PositionReliever   Position = "RP"
)

// IsPitcher reports whether the position belongs to the pitcher player type
func (p Position) IsPitcher() bool {
	return p == PositionStarter || p == PositionReliever
}

// PlayerType distinguishes the two attribute bundles
type PlayerType string

const (
	PlayerTypeHitter  PlayerType = "hitter"
	PlayerTypePitcher PlayerType = "pitcher"
)

// Attribute names a single tool in a player's attribute bundle
type Attribute string

const (
	// Hitter tools
	AttrContact  Attribute = "contact"
	AttrPower    Attribute = "power"
	AttrSpeed    Attribute = "speed"
	AttrFielding Attribute = "fielding"
	AttrArm      Attribute = "arm"

	// Pitcher tools
	AttrVelocity Attribute = "velocity"
	AttrControl  Attribute = "control"
	AttrStamina  Attribute = "stamina"
)

// HitterAttributes is the canonical ordered tool set for hitters
var HitterAttributes = []Attribute{AttrContact, AttrPower, AttrSpeed, AttrFielding, AttrArm}

// PitcherAttributes is the canonical ordered tool set for pitchers
var PitcherAttributes = []Attribute{AttrVelocity, AttrControl, AttrStamina}

// AttributesFor returns the canonical tool set for a player type
func AttributesFor(pt PlayerType) []Attribute {
	if pt == PlayerTypePitcher {
		return PitcherAttributes
	}
	return HitterAttributes
}

// WorkEthic is a hidden trait governing development speed
type WorkEthic string

const (
	WorkEthicPoor      WorkEthic = "poor"
	WorkEthicAverage   WorkEthic = "average"
	WorkEthicExcellent WorkEthic = "excellent"
)

// Personality is a hidden trait affecting clubhouse dynamics
type Personality string

const (
	PersonalityTeamPlayer Personality = "team_player"
	PersonalityPrimaDonna Personality = "prima_donna"
	PersonalityLeader     Personality = "leader"
)

// TrainingFocus directs which attribute absorbs level-ups. FocusOverall
// spreads development to whichever tool has the most room to grow.
type TrainingFocus string

const FocusOverall TrainingFocus = "overall"

// FocusForAttribute returns the training focus that targets a single tool
func FocusForAttribute(attr Attribute) TrainingFocus {
	return TrainingFocus(attr)
}

// Attribute returns the targeted tool, or false for the overall focus
func (f TrainingFocus) Attribute() (Attribute, bool) {
	if f == FocusOverall || f == "" {
		return "", false
	}
	return Attribute(f), true
}

// RosterStatus marks whether a player is on the active or reserve roster
type RosterStatus string

const (
	RosterActive  RosterStatus = "active"
	RosterReserve RosterStatus = "reserve"
)

// Rating bounds enforced at every generation and update site
const (
	RatingMin = 20
	RatingMax = 80
)

// ClampRating clamps a rating or tool value into the legal [20,80] range
func ClampRating(v int) int {
	if v < RatingMin {
		return RatingMin
	}
	if v > RatingMax {
		return RatingMax
	}
	return v
}

// Player is a rostered (or draftable) player. Hidden traits are generated
// once at creation and never recomputed.
type Player struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Age        int        `json:"age"`
	Position   Position   `json:"position"`
	PlayerType PlayerType `json:"player_type"`

	CurrentRating int               `json:"current_rating"`
	Potential     int               `json:"potential"`
	Attributes    map[Attribute]int `json:"attributes"`

	// Hidden traits
	WorkEthic    WorkEthic   `json:"work_ethic"`
	InjuryProne  bool        `json:"injury_prone"`
	Personality  Personality `json:"personality"`
	Coachability int         `json:"coachability"`
	Clutch       int         `json:"clutch"`

	// Development state
	TrainingFocus   TrainingFocus `json:"training_focus"`
	XP              float64       `json:"xp"`
	ProgressionRate float64       `json:"progression_rate"`

	// Roster state
	Morale       int          `json:"morale"`
	Salary       int          `json:"salary"`
	IsInjured    bool         `json:"is_injured"`
	RosterStatus RosterStatus `json:"roster_status"`
	DraftYear    int          `json:"draft_year,omitempty"`
	SeasonsPlayed int         `json:"seasons_played"`
}

// RoomToPotential returns how far the player's rating can still climb
func (p *Player) RoomToPotential() int {
	return p.Potential - p.CurrentRating
}

// Validate checks the player invariants that every generation site must hold
func (p *Player) Validate() error {
	if p.CurrentRating < RatingMin || p.CurrentRating > RatingMax {
		return fmt.Errorf("current rating %d outside [%d,%d]", p.CurrentRating, RatingMin, RatingMax)
	}
	if p.Potential < RatingMin || p.Potential > RatingMax {
		return fmt.Errorf("potential %d outside [%d,%d]", p.Potential, RatingMin, RatingMax)
	}
	if p.XP < 0 || p.XP >= 100 {
		return fmt.Errorf("xp %.2f outside [0,100)", p.XP)
	}
	for attr, v := range p.Attributes {
		if v < RatingMin || v > RatingMax {
			return fmt.Errorf("attribute %s value %d outside [%d,%d]", attr, v, RatingMin, RatingMax)
		}
	}
	return nil
}
