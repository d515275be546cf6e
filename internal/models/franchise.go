package models

// Tier is one of five ordered competitive levels. Order matters: a
// franchise climbs LOW_A -> HIGH_A -> DOUBLE_A -> TRIPLE_A -> MLB.
type Tier string

const (
	TierLowA    Tier = "LOW_A"
	TierHighA   Tier = "HIGH_A"
	TierDoubleA Tier = "DOUBLE_A"
	TierTripleA Tier = "TRIPLE_A"
	TierMLB     Tier = "MLB"
)

// TierOrder lists the tiers from lowest to highest
var TierOrder = []Tier{TierLowA, TierHighA, TierDoubleA, TierTripleA, TierMLB}

// Index returns the tier's position in the promotion ladder, or -1 for an
// unknown tier
func (t Tier) Index() int {
	for i, tier := range TierOrder {
		if tier == t {
			return i
		}
	}
	return -1
}

// Next returns the tier above this one. MLB has no next tier.
func (t Tier) Next() (Tier, bool) {
	idx := t.Index()
	if idx < 0 || idx >= len(TierOrder)-1 {
		return "", false
	}
	return TierOrder[idx+1], true
}

// AtLeast reports whether the tier is at or above the given tier
func (t Tier) AtLeast(other Tier) bool {
	return t.Index() >= other.Index()
}

// GameStatus is the franchise survival state machine. Promoted and
// champion are transitional states reported to the caller; active and
// game_over are the persisted loop states.
type GameStatus string

const (
	StatusActive   GameStatus = "active"
	StatusGameOver GameStatus = "game_over"
	StatusPromoted GameStatus = "promoted"
	StatusChampion GameStatus = "champion"
)

// BankruptcyRisk is an ordinal warning band derived from debt relative to
// the annual budget
type BankruptcyRisk string

const (
	RiskNone     BankruptcyRisk = "none"
	RiskWarning  BankruptcyRisk = "warning"
	RiskCritical BankruptcyRisk = "critical"
	RiskImminent BankruptcyRisk = "imminent"
)

// Franchise is the player-controlled organization. Budget is the
// tier-fixed annual ceiling; reserves are the mutable signed cash balance
// and go negative when the franchise carries debt.
type Franchise struct {
	Name string `json:"name"`
	Tier Tier   `json:"tier"`

	Budget   int `json:"budget"`
	Reserves int `json:"reserves"`

	StadiumCapacity int     `json:"stadium_capacity"`
	StadiumQuality  int     `json:"stadium_quality"` // 0-100
	TicketPrice     float64 `json:"ticket_price"`
	CoachingSalaries int    `json:"coaching_salaries"`
	FacilityLevel   int     `json:"facility_level"` // 0, 1 or 2

	ConsecutiveWinningSeasons int `json:"consecutive_winning_seasons"`
}

// InDebt reports whether reserves have gone negative
func (f *Franchise) InDebt() bool {
	return f.Reserves < 0
}

// Debt returns the magnitude of negative reserves, zero otherwise
func (f *Franchise) Debt() int {
	if f.Reserves < 0 {
		return -f.Reserves
	}
	return 0
}

// SeasonRecord is a won/lost tally for one season
type SeasonRecord struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
}

// WinPct returns the winning percentage, zero for an empty record
func (r SeasonRecord) WinPct() float64 {
	games := r.Wins + r.Losses
	if games == 0 {
		return 0
	}
	return float64(r.Wins) / float64(games)
}

// IsWinning reports whether the record finished above .500
func (r SeasonRecord) IsWinning() bool {
	return r.WinPct() > 0.5
}
