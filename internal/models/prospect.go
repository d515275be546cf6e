package models

// Archetype is a human-readable label summarizing a prospect's dominant
// tool profile
type Archetype string

const (
	ArchetypeBalanced   Archetype = "balanced"
	ArchetypeHighUpside Archetype = "high_upside" // raw, unrefined projects

	// Hitter archetypes
	ArchetypeContactHitter Archetype = "contact_hitter"
	ArchetypeSlugger       Archetype = "slugger"
	ArchetypeSpeedster     Archetype = "speedster"
	ArchetypeDefensiveWiz  Archetype = "defensive_wizard"
	ArchetypeCannonArm     Archetype = "cannon_arm"

	// Pitcher archetypes
	ArchetypeFlamethrower  Archetype = "flamethrower"
	ArchetypeControlArtist Archetype = "control_artist"
	ArchetypeWorkhorse     Archetype = "workhorse"
)

// AccuracyTier trades scouting cost for estimate precision
type AccuracyTier string

const (
	AccuracyLow    AccuracyTier = "low"
	AccuracyMedium AccuracyTier = "medium"
	AccuracyHigh   AccuracyTier = "high"
)

// RevealedTraits holds the subset of hidden traits a scouting report
// surfaced. Pointers are nil for traits the scout did not uncover.
type RevealedTraits struct {
	WorkEthic    *WorkEthic   `json:"work_ethic,omitempty"`
	Personality  *Personality `json:"personality,omitempty"`
	InjuryProne  *bool        `json:"injury_prone,omitempty"`
	Coachability *int         `json:"coachability,omitempty"`
	Clutch       *int         `json:"clutch,omitempty"`
}

// DraftProspect is a Player-shaped record plus scouting fields, a media
// rank and a derived archetype. Scouting fields stay nil until the
// franchise pays for a report.
type DraftProspect struct {
	Player

	MediaRank int       `json:"media_rank"`
	Archetype Archetype `json:"archetype"`

	ScoutedRating    *int            `json:"scouted_rating,omitempty"`
	ScoutedPotential *int            `json:"scouted_potential,omitempty"`
	ScoutingAccuracy *AccuracyTier   `json:"scouting_accuracy,omitempty"`
	RevealedTraits   *RevealedTraits `json:"revealed_traits,omitempty"`

	Drafted   bool   `json:"drafted"`
	DraftedBy string `json:"drafted_by,omitempty"`
}

// IsScouted reports whether a scouting report has been merged in
func (p *DraftProspect) IsScouted() bool {
	return p.ScoutingAccuracy != nil
}
