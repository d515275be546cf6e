package engine

import (
	"fmt"

	"github.com/stitts-dev/franchise-sim/internal/gamedata"
	"github.com/stitts-dev/franchise-sim/internal/models"
)

// Hard game-over line: debt beyond this multiple of the annual budget
// bankrupts the franchise. The risk bands in finance.go use the same
// denominator.
const bankruptcyBudgetMultiple = 2

// GameStatusResult is the survival check outcome after a financial
// simulation. Bankruptcy is a modeled state transition, not an error.
type GameStatusResult struct {
	Status models.GameStatus `json:"status"`
	Reason string            `json:"reason"`
}

// CheckGameStatus evaluates the bankruptcy state machine: the franchise
// folds iff its debt strictly exceeds twice the annual budget.
func CheckGameStatus(reserves, annualBudget int, tier models.Tier) GameStatusResult {
	if reserves < 0 && -reserves > bankruptcyBudgetMultiple*annualBudget {
		return GameStatusResult{
			Status: models.StatusGameOver,
			Reason: fmt.Sprintf("debt of %d exceeds %dx the %s annual budget of %d",
				-reserves, bankruptcyBudgetMultiple, tier, annualBudget),
		}
	}
	return GameStatusResult{Status: models.StatusActive, Reason: "franchise is solvent"}
}

// RequirementCheck reports one promotion requirement and whether it is met
type RequirementCheck struct {
	Requirement string `json:"requirement"`
	Met         bool   `json:"met"`
}

// PromotionEligibility is the full promotion evaluation for display
type PromotionEligibility struct {
	IsEligible  bool                        `json:"is_eligible"`
	CurrentTier models.Tier                 `json:"current_tier"`
	NextTier    *models.Tier                `json:"next_tier,omitempty"`
	Checks      []RequirementCheck          `json:"checks,omitempty"`
	Bonuses     *gamedata.PromotionBonuses  `json:"bonuses,omitempty"`
	Reason      string                      `json:"reason,omitempty"`
}

// CheckPromotionEligibility evaluates the current tier's requirement set.
// A franchise is eligible iff every present requirement is met
// simultaneously; MLB has no next tier and is never eligible. Evaluated
// independently of bankruptcy.
func CheckPromotionEligibility(tier models.Tier, winPct float64, reserves, pride, consecutiveWinningSeasons int, wonDivision, wonChampionship bool, tiers gamedata.TierTable) (PromotionEligibility, error) {
	cfg, err := tiers.Get(tier)
	if err != nil {
		return PromotionEligibility{}, err
	}

	result := PromotionEligibility{CurrentTier: tier}
	if cfg.Promotion == nil {
		result.Reason = fmt.Sprintf("%s is the top tier", tier)
		return result, nil
	}
	req := cfg.Promotion

	result.Checks = []RequirementCheck{
		{
			Requirement: fmt.Sprintf("win pct %.3f >= %.3f", winPct, req.MinWinPct),
			Met:         winPct >= req.MinWinPct,
		},
		{
			Requirement: fmt.Sprintf("reserves %d >= %d", reserves, req.MinReserves),
			Met:         reserves >= req.MinReserves,
		},
		{
			Requirement: fmt.Sprintf("pride %d >= %d", pride, req.MinPride),
			Met:         pride >= req.MinPride,
		},
		{
			Requirement: fmt.Sprintf("consecutive winning seasons %d >= %d", consecutiveWinningSeasons, req.MinConsecutiveWinningSeasons),
			Met:         consecutiveWinningSeasons >= req.MinConsecutiveWinningSeasons,
		},
	}
	if req.RequireDivisionTitle {
		result.Checks = append(result.Checks, RequirementCheck{
			Requirement: "division title",
			Met:         wonDivision,
		})
	}
	if req.RequireChampionship {
		result.Checks = append(result.Checks, RequirementCheck{
			Requirement: "league championship",
			Met:         wonChampionship,
		})
	}

	result.IsEligible = true
	for _, check := range result.Checks {
		if !check.Met {
			result.IsEligible = false
			break
		}
	}

	if next, ok := tier.Next(); ok {
		result.NextTier = &next
	}
	if result.IsEligible {
		bonuses, err := tiers.BonusesFor(tier)
		if err != nil {
			return PromotionEligibility{}, err
		}
		result.Bonuses = bonuses
	}
	return result, nil
}

// ApplyPromotion moves an eligible franchise up a tier, applying the
// static-config deltas. The caller is responsible for having verified
// eligibility first.
func ApplyPromotion(franchise models.Franchise, city models.CityState, tiers gamedata.TierTable) (models.Franchise, models.CityState, error) {
	next, ok := franchise.Tier.Next()
	if !ok {
		return franchise, city, fmt.Errorf("tier %q has no next tier", franchise.Tier)
	}
	bonuses, err := tiers.BonusesFor(franchise.Tier)
	if err != nil {
		return franchise, city, err
	}
	nextCfg, err := tiers.Get(next)
	if err != nil {
		return franchise, city, err
	}

	franchise.Tier = next
	franchise.Budget += bonuses.BudgetIncrease
	franchise.StadiumCapacity += bonuses.StadiumCapacityIncrease
	franchise.ConsecutiveWinningSeasons = 0
	if franchise.TicketPrice < nextCfg.BaseTicketPrice {
		franchise.TicketPrice = nextCfg.BaseTicketPrice
	}

	city.Pride += bonuses.PrideBonus
	if city.Pride > 100 {
		city.Pride = 100
	}
	return franchise, city, nil
}
