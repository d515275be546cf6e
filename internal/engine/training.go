package engine

import (
	"math"

	"github.com/stitts-dev/franchise-sim/internal/models"
)

// XP model constants
const (
	xpPerGame       = 2.0
	xpLevelCost     = 100.0
	trainingJitter  = 0.20 // final +-20% multiplicative jitter
	injuredXPFactor = 0.25
	reserveXPFactor = 0.70
)

// ProgressionRate derives the hidden per-player development multiplier
// from age, raw potential and proximity to that potential. Computed once
// at creation and after level-ups; callers must not recompute it ad hoc.
func ProgressionRate(age, current, potential int) float64 {
	var ageFactor float64
	switch {
	case age <= 21:
		ageFactor = 1.3
	case age <= 25:
		ageFactor = 1.1
	case age <= 28:
		ageFactor = 0.9
	default:
		ageFactor = 0.7
	}

	var potentialFactor float64
	switch {
	case potential >= 75:
		potentialFactor = 1.3
	case potential >= 65:
		potentialFactor = 1.15
	case potential >= 55:
		potentialFactor = 1.0
	default:
		potentialFactor = 0.85
	}

	// Development slows as a player closes on their ceiling
	var ceilingFactor float64
	gap := potential - current
	switch {
	case gap >= 15:
		ceilingFactor = 1.2
	case gap >= 10:
		ceilingFactor = 1.0
	case gap >= 5:
		ceilingFactor = 0.8
	default:
		ceilingFactor = 0.5
	}

	rate := ageFactor * potentialFactor * ceilingFactor
	if rate < 0.5 {
		rate = 0.5
	}
	if rate > 2.0 {
		rate = 2.0
	}
	return rate
}

// TrainingResult reports one player's development from a batch of games
type TrainingResult struct {
	PlayerID          string           `json:"player_id"`
	PlayerName        string           `json:"player_name"`
	XPGained          float64          `json:"xp_gained"`
	NewXP             float64          `json:"new_xp"`
	LeveledUp         bool             `json:"leveled_up"`
	ImprovedAttribute models.Attribute `json:"improved_attribute,omitempty"`
	NewAttributeValue int              `json:"new_attribute_value,omitempty"`
	NewCurrentRating  int              `json:"new_current_rating"`
	AtPotentialCeiling bool            `json:"at_potential_ceiling"`
}

// ProcessPlayerTraining advances one player's development for a batch of
// simulated games. Base XP is 2 per game, multiplied by the age, morale,
// work ethic, facility, injury, roster status and district factors, the
// player's precomputed progression rate, and a final +-20% jitter.
// Crossing 100 XP consumes exactly 100 and converts into a single +1
// attribute increment, remainder carried.
func ProcessPlayerTraining(p models.Player, district models.DistrictBonuses, facilityLevel, gamesSimulated int, src Source) (models.Player, TrainingResult) {
	gain := xpPerGame * float64(gamesSimulated)
	gain *= trainingAgeFactor(p.Age)
	gain *= moraleFactor(p.Morale)
	gain *= workEthicFactor(p.WorkEthic)
	gain *= facilityFactor(facilityLevel)
	if p.IsInjured {
		gain *= injuredXPFactor
	}
	if p.RosterStatus == models.RosterReserve {
		gain *= reserveXPFactor
	}
	if district.Training > 0 {
		gain *= district.Training
	}
	rate := p.ProgressionRate
	if rate == 0 {
		// Older save games predate the stored rate
		rate = ProgressionRate(p.Age, p.CurrentRating, p.Potential)
	}
	gain *= rate
	gain *= uniform(src, 1-trainingJitter, 1+trainingJitter)

	result := TrainingResult{
		PlayerID:   p.ID.String(),
		PlayerName: p.Name,
		XPGained:   gain,
	}

	// The attribute map is shared with the caller's copy; clone before
	// any mutation so the engine stays pure.
	p.Attributes = cloneAttributes(p.Attributes)

	p.XP += gain
	if p.XP >= xpLevelCost {
		p.XP -= xpLevelCost
		result.LeveledUp = true
		applyLevelUp(&p, &result)
	}
	// Defensive clamp so the counter invariant survives extreme inputs
	if p.XP >= xpLevelCost {
		p.XP = xpLevelCost - 1
	}

	result.NewXP = p.XP
	result.NewCurrentRating = p.CurrentRating
	return p, result
}

// applyLevelUp converts a consumed level into exactly one +1 attribute
// increment. The training focus directs which tool improves; the overall
// focus (and a maxed-out focused tool) falls back to the tool with the
// most room left below potential.
func applyLevelUp(p *models.Player, result *TrainingResult) {
	target, room := pickTrainingTarget(p)
	if room <= 0 {
		result.AtPotentialCeiling = true
		return
	}

	p.Attributes[target] = models.ClampRating(p.Attributes[target] + 1)
	result.ImprovedAttribute = target
	result.NewAttributeValue = p.Attributes[target]

	refreshCurrentRating(p)
	p.ProgressionRate = ProgressionRate(p.Age, p.CurrentRating, p.Potential)
}

// pickTrainingTarget selects the attribute a level-up should improve and
// how much room it has left
func pickTrainingTarget(p *models.Player) (models.Attribute, int) {
	ceiling := p.Potential
	if ceiling > models.RatingMax {
		ceiling = models.RatingMax
	}

	if focused, ok := p.TrainingFocus.Attribute(); ok {
		if _, valid := p.Attributes[focused]; valid && ceiling-p.Attributes[focused] > 0 {
			return focused, ceiling - p.Attributes[focused]
		}
	}

	var best models.Attribute
	bestRoom := 0
	for _, attr := range models.AttributesFor(p.PlayerType) {
		room := ceiling - p.Attributes[attr]
		if room > bestRoom {
			best, bestRoom = attr, room
		}
	}
	return best, bestRoom
}

// refreshCurrentRating recomputes the derived overall rating as the mean
// of the tool bundle, never exceeding potential
func refreshCurrentRating(p *models.Player) {
	attrs := models.AttributesFor(p.PlayerType)
	if len(attrs) == 0 {
		return
	}
	sum := 0
	for _, attr := range attrs {
		sum += p.Attributes[attr]
	}
	rating := int(math.Round(float64(sum) / float64(len(attrs))))
	if rating > p.Potential {
		rating = p.Potential
	}
	p.CurrentRating = models.ClampRating(rating)
}

// cloneAttributes copies a tool bundle so updates never leak into the
// caller's snapshot
func cloneAttributes(attrs map[models.Attribute]int) map[models.Attribute]int {
	cloned := make(map[models.Attribute]int, len(attrs))
	for k, v := range attrs {
		cloned[k] = v
	}
	return cloned
}

func trainingAgeFactor(age int) float64 {
	switch {
	case age <= 21:
		return 1.5
	case age <= 25:
		return 1.2
	case age <= 28:
		return 1.0
	default:
		return 0.6
	}
}

func moraleFactor(morale int) float64 {
	switch {
	case morale <= 30:
		return 0.7
	case morale <= 60:
		return 1.0
	default:
		return 1.2
	}
}

func workEthicFactor(ethic models.WorkEthic) float64 {
	switch ethic {
	case models.WorkEthicPoor:
		return 0.6
	case models.WorkEthicExcellent:
		return 1.4
	default:
		return 1.0
	}
}

func facilityFactor(level int) float64 {
	switch {
	case level >= 2:
		return 1.30
	case level == 1:
		return 1.15
	default:
		return 1.0
	}
}

// BatchTrainingResult aggregates a full roster's training pass
type BatchTrainingResult struct {
	Results      []TrainingResult `json:"results"`
	TotalXP      float64          `json:"total_xp"`
	LevelUps     int              `json:"level_ups"`
	PlayersAtCeiling int          `json:"players_at_ceiling"`
}

// ProcessBatchTraining trains an entire roster for a batch of simulated
// games. The optional progress callback fires after each player for
// streaming callers.
func ProcessBatchTraining(players []models.Player, district models.DistrictBonuses, facilityLevel, gamesSimulated int, src Source, progress func(done, total int)) ([]models.Player, BatchTrainingResult) {
	updated := make([]models.Player, len(players))
	batch := BatchTrainingResult{
		Results: make([]TrainingResult, len(players)),
	}
	for i := range players {
		player, result := ProcessPlayerTraining(players[i], district, facilityLevel, gamesSimulated, src)
		updated[i] = player
		batch.Results[i] = result
		batch.TotalXP += result.XPGained
		if result.LeveledUp {
			batch.LevelUps++
		}
		if result.AtPotentialCeiling {
			batch.PlayersAtCeiling++
		}
		if progress != nil {
			progress(i+1, len(players))
		}
	}
	return updated, batch
}
