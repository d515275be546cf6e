package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stitts-dev/franchise-sim/internal/engine"
	"github.com/stitts-dev/franchise-sim/internal/gamedata"
	"github.com/stitts-dev/franchise-sim/internal/models"
)

func testFranchise() models.Franchise {
	return models.Franchise{
		Name:             "River City Rascals",
		Tier:             models.TierLowA,
		Budget:           100000,
		Reserves:         25000,
		StadiumCapacity:  2500,
		StadiumQuality:   40,
		TicketPrice:      8,
		CoachingSalaries: 9000,
		FacilityLevel:    1,
	}
}

func testCity() models.CityState {
	return models.CityState{
		Name:                "River City",
		Population:          85000,
		Pride:               60,
		NationalRecognition: 20,
	}
}

func testRoster(salaries ...int) []models.Player {
	players := make([]models.Player, len(salaries))
	for i, s := range salaries {
		players[i] = models.Player{Salary: s, RosterStatus: models.RosterActive}
	}
	return players
}

func TestSimulateFinances_AccountingIdentity(t *testing.T) {
	cfg := gamedata.DefaultTiers()[models.TierLowA]
	roster := testRoster(1500, 2200, 1800, 900)

	result := engine.SimulateFinances(roster, testFranchise(), testCity(), cfg, engine.FinancialInput{
		Attendance:     2000,
		MarketingSpend: 5000,
	})

	assert.Equal(t, result.Revenue.Total-result.Expenses.Total, result.NetIncome,
		"net income must equal revenue minus expenses exactly")
	assert.Equal(t, 25000+result.NetIncome, result.NewReserves,
		"new reserves must equal reserves plus net income exactly")

	lineSum := result.Revenue.Tickets + result.Revenue.Concessions + result.Revenue.Parking +
		result.Revenue.Merchandise + result.Revenue.Sponsorships
	assert.Equal(t, lineSum, result.Revenue.Total)

	expenseSum := result.Expenses.PlayerSalaries + result.Expenses.CoachingSalaries +
		result.Expenses.StadiumMaintenance + result.Expenses.Travel +
		result.Expenses.Marketing + result.Expenses.DebtService
	assert.Equal(t, expenseSum, result.Expenses.Total)
}

func TestSimulateFinances_RevenueLines(t *testing.T) {
	cfg := gamedata.DefaultTiers()[models.TierLowA]
	franchise := testFranchise()
	city := testCity()

	result := engine.SimulateFinances(nil, franchise, city, cfg, engine.FinancialInput{Attendance: 2000})

	assert.Equal(t, 16000, result.Revenue.Tickets, "2000 x $8")
	// 2000 x 12 x (1 + 40/200) = 28800
	assert.Equal(t, 28800, result.Revenue.Concessions)
	// floor(2000 x 0.25) x 20 = 10000
	assert.Equal(t, 10000, result.Revenue.Parking)
	// 2000 x 8 x 0.60 = 9600
	assert.Equal(t, 9600, result.Revenue.Merchandise)
}

func TestSimulateFinances_ExpenseLines(t *testing.T) {
	cfg := gamedata.DefaultTiers()[models.TierLowA]
	franchise := testFranchise()
	roster := testRoster(1000, 2000)

	// A reserve-roster player draws salary but is not on the active payroll
	benched := models.Player{Salary: 5000, RosterStatus: models.RosterReserve}
	roster = append(roster, benched)

	result := engine.SimulateFinances(roster, franchise, testCity(), cfg, engine.FinancialInput{
		Attendance:     1000,
		MarketingSpend: 3000,
	})

	assert.Equal(t, 3000, result.Expenses.PlayerSalaries, "only active players count")
	assert.Equal(t, 9000, result.Expenses.CoachingSalaries)
	assert.Equal(t, 10000, result.Expenses.StadiumMaintenance, "200000 x 0.05")
	assert.Equal(t, cfg.TravelCost, result.Expenses.Travel)
	assert.Equal(t, 3000, result.Expenses.Marketing)
	assert.Equal(t, 0, result.Expenses.DebtService, "no debt service on positive reserves")
}

func TestSimulateFinances_DebtService(t *testing.T) {
	cfg := gamedata.DefaultTiers()[models.TierLowA]
	franchise := testFranchise()
	franchise.Reserves = -50000

	result := engine.SimulateFinances(nil, franchise, testCity(), cfg, engine.FinancialInput{Attendance: 500})
	assert.Equal(t, 4000, result.Expenses.DebtService, "|−50000| x 0.08")
}

func TestSimulateFinances_AttendanceClampedToCapacity(t *testing.T) {
	cfg := gamedata.DefaultTiers()[models.TierLowA]
	franchise := testFranchise()

	atCapacity := engine.SimulateFinances(nil, franchise, testCity(), cfg, engine.FinancialInput{Attendance: 2500})
	overCapacity := engine.SimulateFinances(nil, franchise, testCity(), cfg, engine.FinancialInput{Attendance: 10000})
	assert.Equal(t, atCapacity.Revenue.Tickets, overCapacity.Revenue.Tickets)
}

func TestSimulateFinances_SponsorshipTierGating(t *testing.T) {
	tiers := gamedata.DefaultTiers()
	city := testCity()

	tests := []struct {
		tier      models.Tier
		wantLines int
	}{
		{tier: models.TierLowA, wantLines: 1},
		{tier: models.TierHighA, wantLines: 2},
		{tier: models.TierDoubleA, wantLines: 2},
		{tier: models.TierTripleA, wantLines: 3},
		{tier: models.TierMLB, wantLines: 3},
	}

	for _, tt := range tests {
		t.Run(string(tt.tier), func(t *testing.T) {
			franchise := testFranchise()
			franchise.Tier = tt.tier
			franchise.StadiumCapacity = 50000

			result := engine.SimulateFinances(nil, franchise, city, tiers[tt.tier], engine.FinancialInput{Attendance: 1000})
			assert.Len(t, result.Revenue.SponsorshipLines, tt.wantLines)
		})
	}
}

func TestSimulateFinances_ChampionshipBonusOnlyNational(t *testing.T) {
	tiers := gamedata.DefaultTiers()
	franchise := testFranchise()
	franchise.Tier = models.TierTripleA
	franchise.StadiumCapacity = 15000
	city := testCity()

	plain := engine.SimulateFinances(nil, franchise, city, tiers[models.TierTripleA], engine.FinancialInput{Attendance: 1000})
	champs := engine.SimulateFinances(nil, franchise, city, tiers[models.TierTripleA], engine.FinancialInput{Attendance: 1000, WonChampionship: true})

	require.Len(t, plain.Revenue.SponsorshipLines, 3)
	require.Len(t, champs.Revenue.SponsorshipLines, 3)

	// Local and regional payouts carry no championship bonus
	assert.Equal(t, plain.Revenue.SponsorshipLines[0].Amount, champs.Revenue.SponsorshipLines[0].Amount)
	assert.Equal(t, plain.Revenue.SponsorshipLines[1].Amount, champs.Revenue.SponsorshipLines[1].Amount)
	assert.Greater(t, champs.Revenue.SponsorshipLines[2].Amount, plain.Revenue.SponsorshipLines[2].Amount)
}

func TestAssessBankruptcyRisk(t *testing.T) {
	budget := 100000
	tests := []struct {
		name     string
		reserves int
		want     models.BankruptcyRisk
	}{
		{name: "positive reserves", reserves: 50000, want: models.RiskNone},
		{name: "small debt", reserves: -30000, want: models.RiskNone},
		{name: "past half budget", reserves: -60000, want: models.RiskWarning},
		{name: "past full budget", reserves: -110000, want: models.RiskCritical},
		{name: "past one and a half budgets", reserves: -160000, want: models.RiskImminent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, engine.AssessBankruptcyRisk(tt.reserves, budget))
		})
	}
}
