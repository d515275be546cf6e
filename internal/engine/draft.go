package engine

import (
	"fmt"
	"sort"

	"github.com/stitts-dev/franchise-sim/internal/gamedata"
	"github.com/stitts-dev/franchise-sim/internal/models"
)

// Draft AI constants
const (
	draftScoreNoise   = 5.0 // the AI misjudges talent by up to +-5, twice
	lateRoundTopN     = 3   // rounds after the first pick among the top 3
	injuryPenalty     = 8.0 // safe-floor teams dodge injury-prone prospects
	upsideSwingWeight = 2.0
)

// PickResult is one AI draft selection with the index into the supplied
// pool and a human-readable reason for display.
type PickResult struct {
	SelectedIndex int                   `json:"selected_index"`
	Prospect      *models.DraftProspect `json:"prospect"`
	TeamName      string                `json:"team_name"`
	Round         int                   `json:"round"`
	Reason        string                `json:"reason"`
}

// AIDraftPick scores every remaining prospect for the team and selects
// one. Round 1 always takes the top scorer; later rounds pick uniformly
// among the top three so AI behavior stays non-deterministic. Already
// drafted prospects are never selected.
func AIDraftPick(team gamedata.AITeam, pool []models.DraftProspect, round int, src Source) (*PickResult, error) {
	type candidate struct {
		index int
		score float64
	}
	candidates := make([]candidate, 0, len(pool))
	for i := range pool {
		if pool[i].Drafted {
			continue
		}
		candidates = append(candidates, candidate{
			index: i,
			score: scoreProspect(team, &pool[i], src),
		})
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("no undrafted prospects remain in the pool")
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		return candidates[a].score > candidates[b].score
	})

	chosen := candidates[0]
	if round > 1 {
		topN := lateRoundTopN
		if len(candidates) < topN {
			topN = len(candidates)
		}
		chosen = candidates[intn(src, topN)]
	}

	prospect := pool[chosen.index]
	return &PickResult{
		SelectedIndex: chosen.index,
		Prospect:      &prospect,
		TeamName:      team.Name,
		Round:         round,
		Reason:        pickReason(team, &prospect),
	}, nil
}

// scoreProspect computes the team's view of a prospect: imperfect
// knowledge of true ability, a philosophy adjustment, and a second
// independent noise term.
func scoreProspect(team gamedata.AITeam, p *models.DraftProspect, src Source) float64 {
	score := float64(p.CurrentRating) + uniform(src, -draftScoreNoise, draftScoreNoise)

	upside := float64(p.Potential - p.CurrentRating)
	switch team.Philosophy {
	case gamedata.PhilosophyBestAvailable:
		// No adjustment: take the board as it falls.
	case gamedata.PhilosophyNeedBased:
		for _, need := range team.Needs {
			if need.Position == p.Position {
				score += float64(need.Priority) / 5.0
				break
			}
		}
	case gamedata.PhilosophyUpsideSwing:
		score += upsideSwingWeight * upside
	case gamedata.PhilosophySafeFloor:
		score -= upside
		if p.InjuryProne && team.RiskTolerance < 50 {
			score -= injuryPenalty
		}
	}

	return score + uniform(src, -draftScoreNoise, draftScoreNoise)
}

func pickReason(team gamedata.AITeam, p *models.DraftProspect) string {
	switch team.Philosophy {
	case gamedata.PhilosophyNeedBased:
		for _, need := range team.Needs {
			if need.Position == p.Position {
				return fmt.Sprintf("fills a need at %s", p.Position)
			}
		}
		return "best fit on the board"
	case gamedata.PhilosophyUpsideSwing:
		if p.RoomToPotential() >= highUpsideGap {
			return "swinging on high-ceiling upside"
		}
		return "best upside remaining"
	case gamedata.PhilosophySafeFloor:
		return "safe, polished pick"
	default:
		return "best player available"
	}
}

// AIPickRecord is one completed selection inside a simulated draft run
type AIPickRecord struct {
	Pick     int                   `json:"pick"`
	TeamName string                `json:"team_name"`
	Prospect models.DraftProspect  `json:"prospect"`
	Reason   string                `json:"reason"`
}

// SimulateAIDraftPicks runs AI selections along the draft order starting
// at startPick (zero-based) until the human-controlled slot is reached or
// the round ends. It returns the picks made, the updated pool copy with
// selections marked drafted, and the next pick index.
func SimulateAIDraftPicks(teams []gamedata.AITeam, order []DraftOrderEntry, pool []models.DraftProspect, round, startPick int, src Source) ([]AIPickRecord, []models.DraftProspect, int, error) {
	updated := make([]models.DraftProspect, len(pool))
	copy(updated, pool)

	teamsByName := make(map[string]gamedata.AITeam, len(teams))
	for _, t := range teams {
		teamsByName[t.Name] = t
	}

	var picks []AIPickRecord
	pick := startPick
	for ; pick < len(order); pick++ {
		entry := order[pick]
		if entry.IsHuman {
			break
		}
		team, ok := teamsByName[entry.TeamName]
		if !ok {
			return nil, nil, pick, fmt.Errorf("draft order references unknown team %q", entry.TeamName)
		}
		result, err := AIDraftPick(team, updated, round, src)
		if err != nil {
			// Pool exhausted mid-round; the draft simply ends here.
			break
		}
		updated[result.SelectedIndex].Drafted = true
		updated[result.SelectedIndex].DraftedBy = team.Name
		picks = append(picks, AIPickRecord{
			Pick:     pick + 1,
			TeamName: team.Name,
			Prospect: updated[result.SelectedIndex],
			Reason:   result.Reason,
		})
	}

	return picks, updated, pick, nil
}

// DraftOrderEntry is one slot in a draft round, worst team first
type DraftOrderEntry struct {
	Pick     int     `json:"pick"`
	TeamName string  `json:"team_name"`
	IsHuman  bool    `json:"is_human"`
	WinPct   float64 `json:"win_pct"`
}

// Simulated win% bounds for AI teams
const (
	minSimWinPct = 0.150
	maxSimWinPct = 0.850
)

// GenerateDraftOrder produces the next draft order: the player's team is
// slotted by its actual record, AI teams by a simulated win% around their
// base strength, and the list is sorted ascending so the worst team picks
// first.
func GenerateDraftOrder(playerTeamName string, playerRecord models.SeasonRecord, teams []gamedata.AITeam, src Source) []DraftOrderEntry {
	order := make([]DraftOrderEntry, 0, len(teams)+1)
	order = append(order, DraftOrderEntry{
		TeamName: playerTeamName,
		IsHuman:  true,
		WinPct:   playerRecord.WinPct(),
	})
	for _, team := range teams {
		pct := (float64(team.BaseStrength) + uniform(src, -12, 12)) / 100.0
		if pct < minSimWinPct {
			pct = minSimWinPct
		}
		if pct > maxSimWinPct {
			pct = maxSimWinPct
		}
		order = append(order, DraftOrderEntry{
			TeamName: team.Name,
			WinPct:   pct,
		})
	}

	sort.SliceStable(order, func(a, b int) bool {
		return order[a].WinPct < order[b].WinPct
	})
	for i := range order {
		order[i].Pick = i + 1
	}
	return order
}

// AssignRookieSalary prices a drafted prospect within the tier's salary
// bounds, scaled by current ability
func AssignRookieSalary(cfg gamedata.TierConfig, rating int, src Source) int {
	span := float64(cfg.SalaryMax - cfg.SalaryMin)
	quality := float64(rating-models.RatingMin) / float64(models.RatingMax-models.RatingMin)
	salary := float64(cfg.SalaryMin) + span*quality*uniform(src, 0.85, 1.15)
	if salary < float64(cfg.SalaryMin) {
		salary = float64(cfg.SalaryMin)
	}
	if salary > float64(cfg.SalaryMax) {
		salary = float64(cfg.SalaryMax)
	}
	return int(salary)
}
