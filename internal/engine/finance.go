package engine

import (
	"math"

	"github.com/stitts-dev/franchise-sim/internal/gamedata"
	"github.com/stitts-dev/franchise-sim/internal/models"
)

// Financial model constants
const (
	concessionsPerFan   = 12.0
	parkingShare        = 0.25
	parkingFee          = 20
	merchandisePerFan   = 8.0
	maintenanceRate     = 0.05
	debtServiceRate     = 0.08

	// Bankruptcy risk bands, debt as a fraction of annual budget
	riskWarningRatio  = 0.5
	riskCriticalRatio = 1.0
	riskImminentRatio = 1.5
)

// FinancialInput carries the per-season variables the caller controls
type FinancialInput struct {
	Attendance      int  `json:"attendance"`
	WonChampionship bool `json:"won_championship"`
	MarketingSpend  int  `json:"marketing_spend"`

	// District income bonus from city development; zero means no bonus
	DistrictIncomeBonus float64 `json:"district_income_bonus,omitempty"`
}

// RevenueBreakdown itemizes season revenue. Each line is rounded to whole
// dollars independently.
type RevenueBreakdown struct {
	Tickets      int `json:"tickets"`
	Concessions  int `json:"concessions"`
	Parking      int `json:"parking"`
	Merchandise  int `json:"merchandise"`
	Sponsorships int `json:"sponsorships"`

	SponsorshipLines []SponsorshipLine `json:"sponsorship_lines"`
	Total            int               `json:"total"`
}

// SponsorshipLine is one sponsorship tier's computed payout
type SponsorshipLine struct {
	Name       string  `json:"name"`
	Multiplier float64 `json:"multiplier"`
	Amount     int     `json:"amount"`
}

// ExpenseBreakdown itemizes season expenses
type ExpenseBreakdown struct {
	PlayerSalaries     int `json:"player_salaries"`
	CoachingSalaries   int `json:"coaching_salaries"`
	StadiumMaintenance int `json:"stadium_maintenance"`
	Travel             int `json:"travel"`
	Marketing          int `json:"marketing"`
	DebtService        int `json:"debt_service"`
	Total              int `json:"total"`
}

// FinancialSimulationResult is the full outcome of one season's books
type FinancialSimulationResult struct {
	Revenue  RevenueBreakdown      `json:"revenue"`
	Expenses ExpenseBreakdown      `json:"expenses"`

	NetIncome   int                   `json:"net_income"`
	NewReserves int                   `json:"new_reserves"`
	Risk        models.BankruptcyRisk `json:"bankruptcy_risk"`
}

// SimulateFinances computes one season of revenue, expenses, net income
// and the resulting reserves for a franchise. Pure: the caller persists
// NewReserves. netIncome = revenue - expenses and
// newReserves = reserves + netIncome hold exactly.
func SimulateFinances(players []models.Player, franchise models.Franchise, city models.CityState, cfg gamedata.TierConfig, input FinancialInput) FinancialSimulationResult {
	attendance := input.Attendance
	if attendance < 0 {
		attendance = 0
	}
	if franchise.StadiumCapacity > 0 && attendance > franchise.StadiumCapacity {
		attendance = franchise.StadiumCapacity
	}

	incomeBonus := input.DistrictIncomeBonus
	if incomeBonus <= 0 {
		incomeBonus = 1.0
	}

	revenue := RevenueBreakdown{
		Tickets:     int(math.Round(float64(attendance) * franchise.TicketPrice)),
		Concessions: int(math.Round(float64(attendance) * concessionsPerFan * (1 + float64(franchise.StadiumQuality)/200.0) * incomeBonus)),
		Parking:     int(math.Floor(float64(attendance)*parkingShare)) * parkingFee,
		Merchandise: int(math.Round(float64(attendance) * merchandisePerFan * (float64(city.Pride) / 100.0) * incomeBonus)),
	}
	revenue.SponsorshipLines = sponsorshipRevenue(franchise.Tier, city, cfg, input.WonChampionship)
	for _, line := range revenue.SponsorshipLines {
		revenue.Sponsorships += line.Amount
	}
	revenue.Total = revenue.Tickets + revenue.Concessions + revenue.Parking + revenue.Merchandise + revenue.Sponsorships

	expenses := ExpenseBreakdown{
		CoachingSalaries:   franchise.CoachingSalaries,
		StadiumMaintenance: int(math.Round(float64(cfg.StadiumValue) * maintenanceRate)),
		Travel:             cfg.TravelCost,
		Marketing:          input.MarketingSpend,
	}
	for _, p := range players {
		if p.RosterStatus == models.RosterActive {
			expenses.PlayerSalaries += p.Salary
		}
	}
	if franchise.Reserves < 0 {
		expenses.DebtService = int(math.Round(float64(-franchise.Reserves) * debtServiceRate))
	}
	expenses.Total = expenses.PlayerSalaries + expenses.CoachingSalaries + expenses.StadiumMaintenance +
		expenses.Travel + expenses.Marketing + expenses.DebtService

	netIncome := revenue.Total - expenses.Total
	newReserves := franchise.Reserves + netIncome

	return FinancialSimulationResult{
		Revenue:     revenue,
		Expenses:    expenses,
		NetIncome:   netIncome,
		NewReserves: newReserves,
		Risk:        AssessBankruptcyRisk(newReserves, cfg.AnnualBudget),
	}
}

// sponsorshipRevenue computes the up-to-three sponsorship tier payouts.
// Local deals are always available; regional deals unlock at HIGH_A,
// national deals at TRIPLE_A. Only the national tier pays a championship
// bonus.
func sponsorshipRevenue(tier models.Tier, city models.CityState, cfg gamedata.TierConfig, wonChampionship bool) []SponsorshipLine {
	lines := []SponsorshipLine{
		sponsorshipLine(cfg.Local, city, false),
	}
	if tier.AtLeast(models.TierHighA) && cfg.Regional.Max > 0 {
		lines = append(lines, sponsorshipLine(cfg.Regional, city, false))
	}
	if tier.AtLeast(models.TierTripleA) && cfg.National.Max > 0 {
		lines = append(lines, sponsorshipLine(cfg.National, city, wonChampionship))
	}
	return lines
}

func sponsorshipLine(t gamedata.SponsorshipTier, city models.CityState, wonChampionship bool) SponsorshipLine {
	multiplier := t.PrideWeight*float64(city.Pride)/100.0 +
		t.RecognitionWeight*float64(city.NationalRecognition)/100.0
	if wonChampionship {
		multiplier += t.ChampionshipBonus
	}
	if multiplier < 0 {
		multiplier = 0
	}
	if multiplier > 1 {
		multiplier = 1
	}
	return SponsorshipLine{
		Name:       t.Name,
		Multiplier: multiplier,
		Amount:     t.Min + int(math.Round(float64(t.Max-t.Min)*multiplier)),
	}
}

// AssessBankruptcyRisk bands the franchise's debt against its annual
// budget. Positive reserves always read as no risk; the hard game-over
// line at 2x budget lives in CheckGameStatus, using the same denominator.
func AssessBankruptcyRisk(reserves, annualBudget int) models.BankruptcyRisk {
	if reserves >= 0 || annualBudget <= 0 {
		return models.RiskNone
	}
	ratio := float64(-reserves) / float64(annualBudget)
	switch {
	case ratio > riskImminentRatio:
		return models.RiskImminent
	case ratio > riskCriticalRatio:
		return models.RiskCritical
	case ratio > riskWarningRatio:
		return models.RiskWarning
	default:
		return models.RiskNone
	}
}
