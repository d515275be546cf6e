package engine

import (
	"github.com/stitts-dev/franchise-sim/internal/gamedata"
	"github.com/stitts-dev/franchise-sim/internal/models"
)

// Aging and retirement constants
const (
	declineStartAge    = 30
	steepDeclineAge    = 34
	declineChance      = 0.5
	steepDeclineChance = 0.8
	mandatoryRetireAge = 38
	fadedRetireAge     = 34
	fadedRetireRating  = 40
	fadedRetireChance  = 0.6
	veteranRetireAge   = 36
	veteranRetireChance = 0.3
)

// SeasonSummary is the archived snapshot of the season just completed
type SeasonSummary struct {
	Year            int                 `json:"year"`
	Record          models.SeasonRecord `json:"record"`
	WasWinningSeason bool               `json:"was_winning_season"`
	RetiredCount    int                 `json:"retired_count"`
	RosterSize      int                 `json:"roster_size"`
}

// RolloverInput gathers everything the offseason needs
type RolloverInput struct {
	Roster         []models.Player
	Record         models.SeasonRecord
	Year           int
	PlayerTeamName string
	AITeams        []gamedata.AITeam
}

// RolloverResult is the complete offseason outcome: the surviving aged
// roster, the retirements, the archived summary and next year's draft
// order.
type RolloverResult struct {
	Roster     []models.Player   `json:"roster"`
	Retired    []models.Player   `json:"retired"`
	Summary    SeasonSummary     `json:"summary"`
	DraftOrder []DraftOrderEntry `json:"draft_order"`
}

// RunOffseasonRollover archives the season, ages and decays the roster,
// retires players whose time is up, and produces the next draft order
// (worst team picks first).
func RunOffseasonRollover(input RolloverInput, src Source) RolloverResult {
	result := RolloverResult{
		Roster: make([]models.Player, 0, len(input.Roster)),
	}

	for _, player := range input.Roster {
		aged := agePlayer(player, src)
		if shouldRetire(&aged, src) {
			result.Retired = append(result.Retired, aged)
			continue
		}
		result.Roster = append(result.Roster, aged)
	}

	result.Summary = SeasonSummary{
		Year:             input.Year,
		Record:           input.Record,
		WasWinningSeason: input.Record.IsWinning(),
		RetiredCount:     len(result.Retired),
		RosterSize:       len(result.Roster),
	}
	result.DraftOrder = GenerateDraftOrder(input.PlayerTeamName, input.Record, input.AITeams, src)
	return result
}

// agePlayer advances a player one year, decays aging bodies and resets
// morale toward neutral for the new season
func agePlayer(p models.Player, src Source) models.Player {
	p.Age++
	p.SeasonsPlayed++
	p.Morale = (p.Morale + 50) / 2
	p.IsInjured = false
	p.Attributes = cloneAttributes(p.Attributes)

	if p.Age >= declineStartAge {
		declineP := declineChance
		if p.Age >= steepDeclineAge {
			declineP = steepDeclineChance
		}
		for _, attr := range models.AttributesFor(p.PlayerType) {
			if chance(src, declineP) {
				p.Attributes[attr] = models.ClampRating(p.Attributes[attr] - 1)
			}
		}
		refreshCurrentRating(&p)
	}

	p.ProgressionRate = ProgressionRate(p.Age, p.CurrentRating, p.Potential)
	return p
}

// shouldRetire rolls the end-of-career checks for an aged player
func shouldRetire(p *models.Player, src Source) bool {
	if p.Age >= mandatoryRetireAge {
		return true
	}
	if p.Age >= fadedRetireAge && p.CurrentRating < fadedRetireRating {
		return chance(src, fadedRetireChance)
	}
	if p.Age >= veteranRetireAge {
		return chance(src, veteranRetireChance)
	}
	return false
}
