package engine

import (
	"github.com/stitts-dev/franchise-sim/internal/gamedata"
	"github.com/stitts-dev/franchise-sim/internal/models"
)

// Trait reveal probabilities once the reveal roll itself succeeds. Work
// ethic and personality are always part of a successful report; the
// remaining traits come through independent coin flips.
const (
	injuryRevealChance       = 0.50
	coachabilityRevealChance = 0.70
	clutchRevealChance       = 0.50
)

// ScoutingReport is the output of one scouting assignment. The engine
// never mutates the prospect; the caller merges these fields into its
// copy and charges the cost.
type ScoutingReport struct {
	ProspectID       string                `json:"prospect_id"`
	Accuracy         models.AccuracyTier   `json:"accuracy"`
	ScoutedRating    int                   `json:"scouted_rating"`
	ScoutedPotential int                   `json:"scouted_potential"`
	TraitsRevealed   bool                  `json:"traits_revealed"`
	Revealed         models.RevealedTraits `json:"revealed"`
	Cost             int                   `json:"cost"`
}

// ScoutProspect produces a noisy estimate of a prospect's true ratings at
// the requested accuracy tier. Estimate error is uniform within the
// tier's bound and clamped back into the legal rating range. An unknown
// tier is an input-validation error.
func ScoutProspect(p *models.DraftProspect, tier models.AccuracyTier, table gamedata.ScoutingTable, src Source) (*ScoutingReport, error) {
	opt, err := table.Get(tier)
	if err != nil {
		return nil, err
	}

	bound := float64(opt.ErrorBound)
	report := &ScoutingReport{
		ProspectID:       p.ID.String(),
		Accuracy:         tier,
		ScoutedRating:    models.ClampRating(p.CurrentRating + int(uniform(src, -bound, bound))),
		ScoutedPotential: models.ClampRating(p.Potential + int(uniform(src, -bound, bound))),
		Cost:             opt.Cost,
	}

	if chance(src, opt.RevealChance) {
		report.TraitsRevealed = true
		workEthic := p.WorkEthic
		personality := p.Personality
		report.Revealed.WorkEthic = &workEthic
		report.Revealed.Personality = &personality

		if chance(src, injuryRevealChance) {
			injuryProne := p.InjuryProne
			report.Revealed.InjuryProne = &injuryProne
		}
		if chance(src, coachabilityRevealChance) {
			coachability := p.Coachability
			report.Revealed.Coachability = &coachability
		}
		if chance(src, clutchRevealChance) {
			clutch := p.Clutch
			report.Revealed.Clutch = &clutch
		}
	}

	return report, nil
}

// MergeScoutingReport applies a report to a prospect copy and returns it.
// Kept alongside ScoutProspect so every caller merges fields the same way.
func MergeScoutingReport(p models.DraftProspect, report *ScoutingReport) models.DraftProspect {
	rating := report.ScoutedRating
	potential := report.ScoutedPotential
	accuracy := report.Accuracy
	p.ScoutedRating = &rating
	p.ScoutedPotential = &potential
	p.ScoutingAccuracy = &accuracy
	if report.TraitsRevealed {
		revealed := report.Revealed
		p.RevealedTraits = &revealed
	}
	return p
}
