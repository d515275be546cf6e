package gamedata

import (
	"fmt"

	"github.com/stitts-dev/franchise-sim/internal/models"
)

// ScoutingOption is the cost/precision trade-off for one accuracy tier
type ScoutingOption struct {
	Tier         models.AccuracyTier `json:"tier"`
	Cost         int                 `json:"cost"`
	ErrorBound   int                 `json:"error_bound"`   // max |scouted - true|
	RevealChance float64             `json:"reveal_chance"` // probability of a trait reveal roll succeeding
}

// ScoutingTable maps accuracy tiers to their options
type ScoutingTable map[models.AccuracyTier]ScoutingOption

// Get looks up a scouting option, failing on unknown tiers
func (t ScoutingTable) Get(tier models.AccuracyTier) (ScoutingOption, error) {
	opt, ok := t[tier]
	if !ok {
		return ScoutingOption{}, fmt.Errorf("unknown scouting accuracy tier %q", tier)
	}
	return opt, nil
}

// DefaultScouting returns the standard three-tier scouting price list
func DefaultScouting() ScoutingTable {
	return ScoutingTable{
		models.AccuracyLow: {
			Tier:         models.AccuracyLow,
			Cost:         2000,
			ErrorBound:   15,
			RevealChance: 0.30,
		},
		models.AccuracyMedium: {
			Tier:         models.AccuracyMedium,
			Cost:         5000,
			ErrorBound:   8,
			RevealChance: 0.60,
		},
		models.AccuracyHigh: {
			Tier:         models.AccuracyHigh,
			Cost:         12000,
			ErrorBound:   3,
			RevealChance: 0.90,
		},
	}
}
