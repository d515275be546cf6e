package gamedata

import "github.com/stitts-dev/franchise-sim/internal/models"

// DraftPhilosophy selects the scoring adjustment an AI front office applies
// when evaluating prospects
type DraftPhilosophy string

const (
	PhilosophyBestAvailable DraftPhilosophy = "best_available"
	PhilosophyNeedBased     DraftPhilosophy = "need_based"
	PhilosophyUpsideSwing   DraftPhilosophy = "upside_swing"
	PhilosophySafeFloor     DraftPhilosophy = "safe_floor"
)

// PositionNeed is a declared positional need with a priority weight
type PositionNeed struct {
	Position models.Position `json:"position"`
	Priority int             `json:"priority"` // higher = more urgent
}

// AITeam is the static configuration of a non-player-controlled franchise.
// Read-only input to the draft AI; nothing here changes at runtime.
type AITeam struct {
	Name          string          `json:"name"`
	Philosophy    DraftPhilosophy `json:"philosophy"`
	RiskTolerance int             `json:"risk_tolerance"` // 0-100, low avoids injury-prone picks
	Needs         []PositionNeed  `json:"needs"`
	BaseStrength  int             `json:"base_strength"` // 0-100, drives simulated win%
}

// DefaultAITeams returns the seven AI franchises that fill out the
// eight-team league alongside the player
func DefaultAITeams() []AITeam {
	return []AITeam{
		{
			Name:          "Rockport Mariners",
			Philosophy:    PhilosophyBestAvailable,
			RiskTolerance: 55,
			BaseStrength:  62,
			Needs: []PositionNeed{
				{Position: models.PositionStarter, Priority: 8},
				{Position: models.PositionShortstop, Priority: 5},
			},
		},
		{
			Name:          "Dusty Flats Prospectors",
			Philosophy:    PhilosophyUpsideSwing,
			RiskTolerance: 80,
			BaseStrength:  44,
			Needs: []PositionNeed{
				{Position: models.PositionCenterField, Priority: 7},
				{Position: models.PositionCatcher, Priority: 6},
			},
		},
		{
			Name:          "Harbor City Anchors",
			Philosophy:    PhilosophySafeFloor,
			RiskTolerance: 30,
			BaseStrength:  58,
			Needs: []PositionNeed{
				{Position: models.PositionReliever, Priority: 9},
				{Position: models.PositionFirstBase, Priority: 4},
			},
		},
		{
			Name:          "Summit Ridge Climbers",
			Philosophy:    PhilosophyNeedBased,
			RiskTolerance: 50,
			BaseStrength:  51,
			Needs: []PositionNeed{
				{Position: models.PositionStarter, Priority: 10},
				{Position: models.PositionThirdBase, Priority: 7},
				{Position: models.PositionLeftField, Priority: 3},
			},
		},
		{
			Name:          "Bayside Breakers",
			Philosophy:    PhilosophyBestAvailable,
			RiskTolerance: 65,
			BaseStrength:  69,
			Needs: []PositionNeed{
				{Position: models.PositionSecondBase, Priority: 5},
			},
		},
		{
			Name:          "Ironworks Hammers",
			Philosophy:    PhilosophySafeFloor,
			RiskTolerance: 40,
			BaseStrength:  47,
			Needs: []PositionNeed{
				{Position: models.PositionCatcher, Priority: 8},
				{Position: models.PositionRightField, Priority: 6},
			},
		},
		{
			Name:          "Valley Forge Generals",
			Philosophy:    PhilosophyNeedBased,
			RiskTolerance: 70,
			BaseStrength:  55,
			Needs: []PositionNeed{
				{Position: models.PositionShortstop, Priority: 9},
				{Position: models.PositionStarter, Priority: 6},
			},
		},
	}
}
