package engine_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stitts-dev/franchise-sim/internal/engine"
	"github.com/stitts-dev/franchise-sim/internal/gamedata"
	"github.com/stitts-dev/franchise-sim/internal/models"
)

func poolProspect(name string, position models.Position, current, potential int, injuryProne bool) models.DraftProspect {
	playerType := models.PlayerTypeHitter
	if position.IsPitcher() {
		playerType = models.PlayerTypePitcher
	}
	return models.DraftProspect{
		Player: models.Player{
			ID:            uuid.New(),
			Name:          name,
			Age:           20,
			Position:      position,
			PlayerType:    playerType,
			CurrentRating: current,
			Potential:     potential,
			InjuryProne:   injuryProne,
			Attributes:    map[models.Attribute]int{},
		},
	}
}

func TestAIDraftPick_NeverSelectsDrafted(t *testing.T) {
	pool := []models.DraftProspect{
		poolProspect("Star Drafted", models.PositionStarter, 75, 80, false),
		poolProspect("Available One", models.PositionCatcher, 45, 55, false),
		poolProspect("Available Two", models.PositionShortstop, 44, 50, false),
	}
	pool[0].Drafted = true

	team := gamedata.AITeam{Name: "Testers", Philosophy: gamedata.PhilosophyBestAvailable, RiskTolerance: 50}
	src := engine.NewSource(2)
	for i := 0; i < 50; i++ {
		result, err := engine.AIDraftPick(team, pool, 1, src)
		require.NoError(t, err)
		assert.NotEqual(t, 0, result.SelectedIndex, "must never select an already-drafted prospect")
	}
}

func TestAIDraftPick_EmptyPoolFails(t *testing.T) {
	team := gamedata.AITeam{Name: "Testers", Philosophy: gamedata.PhilosophyBestAvailable}

	_, err := engine.AIDraftPick(team, nil, 1, engine.NewSource(1))
	assert.Error(t, err)

	drafted := []models.DraftProspect{poolProspect("Gone", models.PositionCatcher, 50, 60, false)}
	drafted[0].Drafted = true
	_, err = engine.AIDraftPick(team, drafted, 1, engine.NewSource(1))
	assert.Error(t, err)
}

func TestAIDraftPick_TerminatesWithEmptyNeeds(t *testing.T) {
	pool := []models.DraftProspect{
		poolProspect("Only Option", models.PositionLeftField, 50, 60, false),
	}
	team := gamedata.AITeam{Name: "Needless", Philosophy: gamedata.PhilosophyNeedBased, RiskTolerance: 50}

	result, err := engine.AIDraftPick(team, pool, 1, engine.NewSource(4))
	require.NoError(t, err)
	assert.Equal(t, 0, result.SelectedIndex)
}

func TestAIDraftPick_UpsideSwingPrefersCeiling(t *testing.T) {
	// The upside team gets +2 per point of headroom: a 50/78 prospect
	// outscores a 58/60 one by ~44 points, far beyond the +-10 noise
	pool := []models.DraftProspect{
		poolProspect("Polished Veteran", models.PositionFirstBase, 58, 60, false),
		poolProspect("Raw Ceiling", models.PositionCenterField, 50, 78, false),
	}
	team := gamedata.AITeam{Name: "Swingers", Philosophy: gamedata.PhilosophyUpsideSwing, RiskTolerance: 80}

	src := engine.NewSource(8)
	for i := 0; i < 25; i++ {
		result, err := engine.AIDraftPick(team, pool, 1, src)
		require.NoError(t, err)
		assert.Equal(t, 1, result.SelectedIndex)
	}
}

func TestAIDraftPick_SafeFloorAvoidsInjuryRisk(t *testing.T) {
	// Equal talent, one injury-prone: a cautious team (risk tolerance
	// below 50) eats an extra penalty on the risky player
	pool := []models.DraftProspect{
		poolProspect("Glass Cannon", models.PositionStarter, 60, 62, true),
		poolProspect("Iron Man", models.PositionStarter, 60, 62, false),
	}
	team := gamedata.AITeam{Name: "Cautious", Philosophy: gamedata.PhilosophySafeFloor, RiskTolerance: 30}

	picks := make(map[int]int)
	src := engine.NewSource(16)
	for i := 0; i < 200; i++ {
		result, err := engine.AIDraftPick(team, pool, 1, src)
		require.NoError(t, err)
		picks[result.SelectedIndex]++
	}
	assert.Greater(t, picks[1], picks[0], "healthy prospect should win most rolls")
}

func TestAIDraftPick_LaterRoundsVary(t *testing.T) {
	pool := []models.DraftProspect{
		poolProspect("Alpha", models.PositionCatcher, 60, 65, false),
		poolProspect("Bravo", models.PositionShortstop, 59, 64, false),
		poolProspect("Charlie", models.PositionLeftField, 58, 63, false),
		poolProspect("Delta", models.PositionFirstBase, 30, 35, false),
	}
	team := gamedata.AITeam{Name: "Middling", Philosophy: gamedata.PhilosophyBestAvailable, RiskTolerance: 50}

	picks := make(map[int]bool)
	src := engine.NewSource(23)
	for i := 0; i < 300; i++ {
		result, err := engine.AIDraftPick(team, pool, 3, src)
		require.NoError(t, err)
		picks[result.SelectedIndex] = true
	}
	// Later rounds pick among the top 3, so selections should spread out
	assert.GreaterOrEqual(t, len(picks), 2, "late-round picks should not be fully deterministic")
}

func TestSimulateAIDraftPicks_StopsAtHumanSlot(t *testing.T) {
	teams := gamedata.DefaultAITeams()
	prospects, err := engine.GenerateDraftClass(50, 2026, engine.NewSource(41))
	require.NoError(t, err)

	order := engine.GenerateDraftOrder("River City Rascals", models.SeasonRecord{Wins: 40, Losses: 92}, teams, engine.NewSource(42))

	humanSlot := -1
	for i, entry := range order {
		if entry.IsHuman {
			humanSlot = i
			break
		}
	}
	require.GreaterOrEqual(t, humanSlot, 0)

	picks, updated, next, err := engine.SimulateAIDraftPicks(teams, order, prospects, 1, 0, engine.NewSource(43))
	require.NoError(t, err)
	assert.Len(t, picks, humanSlot, "AI picks run until the human slot")
	assert.Equal(t, humanSlot, next)

	drafted := 0
	for _, p := range updated {
		if p.Drafted {
			drafted++
		}
	}
	assert.Equal(t, humanSlot, drafted)

	// Input pool untouched
	for _, p := range prospects {
		assert.False(t, p.Drafted)
	}
}

func TestGenerateDraftOrder_WorstTeamPicksFirst(t *testing.T) {
	teams := gamedata.DefaultAITeams()
	record := models.SeasonRecord{Wins: 40, Losses: 92}

	order := engine.GenerateDraftOrder("River City Rascals", record, teams, engine.NewSource(50))
	require.Len(t, order, len(teams)+1)

	for i := 1; i < len(order); i++ {
		assert.GreaterOrEqual(t, order[i].WinPct, order[i-1].WinPct,
			"win pct must be monotonic non-decreasing across the order")
	}
	for i, entry := range order {
		assert.Equal(t, i+1, entry.Pick)
	}

	// A 40-92 team should land in the top half of the order
	for i, entry := range order {
		if entry.IsHuman {
			assert.Less(t, i, len(order)/2, "a 40-92 club should pick near the top")
		}
	}
}

func TestAssignRookieSalary_WithinTierBounds(t *testing.T) {
	cfg := gamedata.DefaultTiers()[models.TierLowA]
	src := engine.NewSource(61)
	for rating := models.RatingMin; rating <= models.RatingMax; rating += 5 {
		salary := engine.AssignRookieSalary(cfg, rating, src)
		assert.GreaterOrEqual(t, salary, cfg.SalaryMin)
		assert.LessOrEqual(t, salary, cfg.SalaryMax)
	}
}
