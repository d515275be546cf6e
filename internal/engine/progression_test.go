package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stitts-dev/franchise-sim/internal/engine"
	"github.com/stitts-dev/franchise-sim/internal/gamedata"
	"github.com/stitts-dev/franchise-sim/internal/models"
)

func TestCheckGameStatus(t *testing.T) {
	tests := []struct {
		name         string
		reserves     int
		annualBudget int
		want         models.GameStatus
	}{
		{name: "debt past double budget folds", reserves: -250000, annualBudget: 100000, want: models.StatusGameOver},
		{name: "debt within double budget survives", reserves: -150000, annualBudget: 100000, want: models.StatusActive},
		{name: "debt exactly double budget survives", reserves: -200000, annualBudget: 100000, want: models.StatusActive},
		{name: "positive reserves", reserves: 40000, annualBudget: 100000, want: models.StatusActive},
		{name: "zero reserves", reserves: 0, annualBudget: 100000, want: models.StatusActive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := engine.CheckGameStatus(tt.reserves, tt.annualBudget, models.TierLowA)
			assert.Equal(t, tt.want, result.Status)
			assert.NotEmpty(t, result.Reason)
		})
	}
}

func TestCheckPromotionEligibility_LowA(t *testing.T) {
	tiers := gamedata.DefaultTiers()

	result, err := engine.CheckPromotionEligibility(models.TierLowA, 0.60, 60000, 55, 2, false, false, tiers)
	require.NoError(t, err)

	assert.True(t, result.IsEligible)
	require.NotNil(t, result.NextTier)
	assert.Equal(t, models.TierHighA, *result.NextTier)
	require.NotNil(t, result.Bonuses)
	assert.Equal(t, 150000, result.Bonuses.BudgetIncrease, "HIGH_A budget minus LOW_A budget")
	assert.Equal(t, 2500, result.Bonuses.StadiumCapacityIncrease)
	assert.Equal(t, 15, result.Bonuses.PrideBonus)
}

func TestCheckPromotionEligibility_AnyFailedRequirementBlocks(t *testing.T) {
	tiers := gamedata.DefaultTiers()

	tests := []struct {
		name                             string
		winPct                           float64
		reserves, pride, winningSeasons  int
	}{
		{name: "win pct short", winPct: 0.54, reserves: 60000, pride: 55, winningSeasons: 2},
		{name: "reserves short", winPct: 0.60, reserves: 49999, pride: 55, winningSeasons: 2},
		{name: "pride short", winPct: 0.60, reserves: 60000, pride: 49, winningSeasons: 2},
		{name: "streak short", winPct: 0.60, reserves: 60000, pride: 55, winningSeasons: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := engine.CheckPromotionEligibility(models.TierLowA, tt.winPct, tt.reserves, tt.pride, tt.winningSeasons, false, false, tiers)
			require.NoError(t, err)
			assert.False(t, result.IsEligible)
			assert.Nil(t, result.Bonuses, "bonuses only computed for eligible franchises")
		})
	}
}

func TestCheckPromotionEligibility_BoundaryValuesCount(t *testing.T) {
	tiers := gamedata.DefaultTiers()

	// Every requirement exactly at its threshold still qualifies
	result, err := engine.CheckPromotionEligibility(models.TierLowA, 0.55, 50000, 50, 2, false, false, tiers)
	require.NoError(t, err)
	assert.True(t, result.IsEligible)
}

func TestCheckPromotionEligibility_HighAWantsDivisionTitle(t *testing.T) {
	tiers := gamedata.DefaultTiers()

	without, err := engine.CheckPromotionEligibility(models.TierHighA, 0.60, 150000, 60, 2, false, false, tiers)
	require.NoError(t, err)
	assert.False(t, without.IsEligible)

	with, err := engine.CheckPromotionEligibility(models.TierHighA, 0.60, 150000, 60, 2, true, false, tiers)
	require.NoError(t, err)
	assert.True(t, with.IsEligible)
}

func TestCheckPromotionEligibility_TripleAWantsChampionship(t *testing.T) {
	tiers := gamedata.DefaultTiers()

	without, err := engine.CheckPromotionEligibility(models.TierTripleA, 0.65, 900000, 80, 3, true, false, tiers)
	require.NoError(t, err)
	assert.False(t, without.IsEligible)

	with, err := engine.CheckPromotionEligibility(models.TierTripleA, 0.65, 900000, 80, 3, true, true, tiers)
	require.NoError(t, err)
	assert.True(t, with.IsEligible)
	require.NotNil(t, with.NextTier)
	assert.Equal(t, models.TierMLB, *with.NextTier)
}

func TestCheckPromotionEligibility_MLBNeverEligible(t *testing.T) {
	tiers := gamedata.DefaultTiers()

	result, err := engine.CheckPromotionEligibility(models.TierMLB, 0.99, 99000000, 100, 10, true, true, tiers)
	require.NoError(t, err)
	assert.False(t, result.IsEligible)
	assert.Nil(t, result.NextTier)
	assert.NotEmpty(t, result.Reason)
}

func TestCheckPromotionEligibility_UnknownTierFails(t *testing.T) {
	_, err := engine.CheckPromotionEligibility(models.Tier("SANDLOT"), 0.60, 60000, 55, 2, false, false, gamedata.DefaultTiers())
	assert.Error(t, err)
}

func TestApplyPromotion(t *testing.T) {
	tiers := gamedata.DefaultTiers()
	franchise := models.Franchise{
		Name:                      "River City Rascals",
		Tier:                      models.TierLowA,
		Budget:                    100000,
		Reserves:                  60000,
		StadiumCapacity:           2500,
		TicketPrice:               8,
		ConsecutiveWinningSeasons: 2,
	}
	city := models.CityState{Name: "River City", Pride: 55}

	promoted, promotedCity, err := engine.ApplyPromotion(franchise, city, tiers)
	require.NoError(t, err)

	assert.Equal(t, models.TierHighA, promoted.Tier)
	assert.Equal(t, 250000, promoted.Budget)
	assert.Equal(t, 5000, promoted.StadiumCapacity)
	assert.Equal(t, 0, promoted.ConsecutiveWinningSeasons, "streak resets at the new level")
	assert.Equal(t, 11.0, promoted.TicketPrice, "ticket price steps up to the new tier's base")
	assert.Equal(t, 70, promotedCity.Pride)

	// Inputs untouched
	assert.Equal(t, models.TierLowA, franchise.Tier)
	assert.Equal(t, 55, city.Pride)
}

func TestApplyPromotion_PrideCapped(t *testing.T) {
	tiers := gamedata.DefaultTiers()
	franchise := models.Franchise{Tier: models.TierLowA, TicketPrice: 8}
	city := models.CityState{Pride: 95}

	_, promotedCity, err := engine.ApplyPromotion(franchise, city, tiers)
	require.NoError(t, err)
	assert.Equal(t, 100, promotedCity.Pride)
}

func TestApplyPromotion_MLBFails(t *testing.T) {
	franchise := models.Franchise{Tier: models.TierMLB}
	_, _, err := engine.ApplyPromotion(franchise, models.CityState{}, gamedata.DefaultTiers())
	assert.Error(t, err)
}
