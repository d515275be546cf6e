// Package gamedata holds the immutable lookup tables the engine consumes:
// tier configuration, the AI team roster, scouting costs and the weighted
// distributions used by prospect generation. Nothing in this package is
// mutated at runtime; engines receive these tables explicitly so balance
// tests can substitute alternates.
package gamedata

import (
	"fmt"

	"github.com/stitts-dev/franchise-sim/internal/models"
)

// PromotionRequirements is the requirement set a franchise must meet
// simultaneously to climb to the next tier
type PromotionRequirements struct {
	MinWinPct                 float64 `json:"min_win_pct"`
	MinReserves               int     `json:"min_reserves"`
	MinPride                  int     `json:"min_pride"`
	MinConsecutiveWinningSeasons int  `json:"min_consecutive_winning_seasons"`
	RequireDivisionTitle      bool    `json:"require_division_title"`
	RequireChampionship       bool    `json:"require_championship"`
}

// SponsorshipTier is one sponsorship revenue band. Payout is
// min + (max-min) * multiplier where the multiplier blends civic pride,
// national recognition and (national tier only) a championship bonus.
type SponsorshipTier struct {
	Name              string  `json:"name"`
	Min               int     `json:"min"`
	Max               int     `json:"max"`
	PrideWeight       float64 `json:"pride_weight"`
	RecognitionWeight float64 `json:"recognition_weight"`
	ChampionshipBonus float64 `json:"championship_bonus"`
}

// TierConfig is the per-tier constant block. The table below is the single
// source of truth for budgets, salary bounds and promotion thresholds.
type TierConfig struct {
	Tier models.Tier `json:"tier"`

	AnnualBudget int `json:"annual_budget"`
	SalaryMin    int `json:"salary_min"`
	SalaryMax    int `json:"salary_max"`

	StadiumCapacity int `json:"stadium_capacity"`
	StadiumValue    int `json:"stadium_value"`
	TravelCost      int `json:"travel_cost"`

	BaseTicketPrice float64 `json:"base_ticket_price"`

	Local    SponsorshipTier `json:"local"`
	Regional SponsorshipTier `json:"regional"`
	National SponsorshipTier `json:"national"`

	// Promotion is nil for MLB: there is no next tier.
	Promotion *PromotionRequirements `json:"promotion,omitempty"`
}

// TierTable maps every tier to its static configuration
type TierTable map[models.Tier]TierConfig

// Get looks up a tier's configuration
func (t TierTable) Get(tier models.Tier) (TierConfig, error) {
	cfg, ok := t[tier]
	if !ok {
		return TierConfig{}, fmt.Errorf("unknown tier %q", tier)
	}
	return cfg, nil
}

// DefaultTiers returns the standard five-tier ladder configuration
func DefaultTiers() TierTable {
	return TierTable{
		models.TierLowA: {
			Tier:            models.TierLowA,
			AnnualBudget:    100000,
			SalaryMin:       800,
			SalaryMax:       3000,
			StadiumCapacity: 2500,
			StadiumValue:    200000,
			TravelCost:      12000,
			BaseTicketPrice: 8,
			Local:           SponsorshipTier{Name: "local", Min: 5000, Max: 15000, PrideWeight: 1.0},
			Promotion: &PromotionRequirements{
				MinWinPct:                    0.55,
				MinReserves:                  50000,
				MinPride:                     50,
				MinConsecutiveWinningSeasons: 2,
			},
		},
		models.TierHighA: {
			Tier:            models.TierHighA,
			AnnualBudget:    250000,
			SalaryMin:       1500,
			SalaryMax:       6000,
			StadiumCapacity: 5000,
			StadiumValue:    450000,
			TravelCost:      20000,
			BaseTicketPrice: 11,
			Local:           SponsorshipTier{Name: "local", Min: 10000, Max: 30000, PrideWeight: 1.0},
			Regional:        SponsorshipTier{Name: "regional", Min: 15000, Max: 50000, PrideWeight: 0.6, RecognitionWeight: 0.4},
			Promotion: &PromotionRequirements{
				MinWinPct:                    0.56,
				MinReserves:                  120000,
				MinPride:                     55,
				MinConsecutiveWinningSeasons: 2,
				RequireDivisionTitle:         true,
			},
		},
		models.TierDoubleA: {
			Tier:            models.TierDoubleA,
			AnnualBudget:    600000,
			SalaryMin:       4000,
			SalaryMax:       15000,
			StadiumCapacity: 9000,
			StadiumValue:    1100000,
			TravelCost:      35000,
			BaseTicketPrice: 15,
			Local:           SponsorshipTier{Name: "local", Min: 25000, Max: 70000, PrideWeight: 1.0},
			Regional:        SponsorshipTier{Name: "regional", Min: 40000, Max: 120000, PrideWeight: 0.6, RecognitionWeight: 0.4},
			Promotion: &PromotionRequirements{
				MinWinPct:                    0.58,
				MinReserves:                  300000,
				MinPride:                     60,
				MinConsecutiveWinningSeasons: 2,
				RequireDivisionTitle:         true,
			},
		},
		models.TierTripleA: {
			Tier:            models.TierTripleA,
			AnnualBudget:    1500000,
			SalaryMin:       10000,
			SalaryMax:       40000,
			StadiumCapacity: 15000,
			StadiumValue:    2800000,
			TravelCost:      60000,
			BaseTicketPrice: 20,
			Local:           SponsorshipTier{Name: "local", Min: 60000, Max: 150000, PrideWeight: 1.0},
			Regional:        SponsorshipTier{Name: "regional", Min: 90000, Max: 250000, PrideWeight: 0.6, RecognitionWeight: 0.4},
			National:        SponsorshipTier{Name: "national", Min: 150000, Max: 500000, PrideWeight: 0.3, RecognitionWeight: 0.5, ChampionshipBonus: 0.2},
			Promotion: &PromotionRequirements{
				MinWinPct:                    0.60,
				MinReserves:                  750000,
				MinPride:                     70,
				MinConsecutiveWinningSeasons: 3,
				RequireDivisionTitle:         true,
				RequireChampionship:          true,
			},
		},
		models.TierMLB: {
			Tier:            models.TierMLB,
			AnnualBudget:    4000000,
			SalaryMin:       30000,
			SalaryMax:       120000,
			StadiumCapacity: 42000,
			StadiumValue:    8000000,
			TravelCost:      120000,
			BaseTicketPrice: 32,
			Local:           SponsorshipTier{Name: "local", Min: 150000, Max: 400000, PrideWeight: 1.0},
			Regional:        SponsorshipTier{Name: "regional", Min: 250000, Max: 700000, PrideWeight: 0.6, RecognitionWeight: 0.4},
			National:        SponsorshipTier{Name: "national", Min: 500000, Max: 2000000, PrideWeight: 0.3, RecognitionWeight: 0.5, ChampionshipBonus: 0.2},
			// No promotion block: MLB is the top of the ladder.
		},
	}
}

// PromotionBonuses are the deltas a franchise receives on climbing a tier,
// computed as next-tier config minus current-tier config plus a flat pride
// award.
type PromotionBonuses struct {
	BudgetIncrease          int `json:"budget_increase"`
	StadiumCapacityIncrease int `json:"stadium_capacity_increase"`
	PrideBonus              int `json:"pride_bonus"`
}

// BonusesFor computes the promotion bonuses for climbing from the given
// tier to the next one
func (t TierTable) BonusesFor(tier models.Tier) (*PromotionBonuses, error) {
	next, ok := tier.Next()
	if !ok {
		return nil, fmt.Errorf("tier %q has no next tier", tier)
	}
	current, err := t.Get(tier)
	if err != nil {
		return nil, err
	}
	upper, err := t.Get(next)
	if err != nil {
		return nil, err
	}
	return &PromotionBonuses{
		BudgetIncrease:          upper.AnnualBudget - current.AnnualBudget,
		StadiumCapacityIncrease: upper.StadiumCapacity - current.StadiumCapacity,
		PrideBonus:              15,
	}, nil
}
