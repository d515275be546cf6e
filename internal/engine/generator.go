package engine

import (
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/stitts-dev/franchise-sim/internal/gamedata"
	"github.com/stitts-dev/franchise-sim/internal/models"
)

// Prospect generation constants
const (
	potentialMean   = 50.0
	potentialStdDev = 15.0
	toolStdDev      = 8.0

	// Development headroom between current rating and potential
	minRatingGap = 5
	maxRatingGap = 20

	// Media rank scoring
	mediaPotentialWeight = 0.75
	mediaCurrentWeight   = 0.25
	mediaBaseNoise       = 8.0
	mediaYouthNoisePerYear = 2.0 // extra +-2 per year under 22, up to +-8 at 18
)

// GenerateDraftClass produces a full draft class of totalPlayers prospects
// for the given year. Prospects come back in shuffled display order; the
// media rank field is a dense permutation of 1..totalPlayers independent of
// list position.
func GenerateDraftClass(totalPlayers, year int, src Source) ([]models.DraftProspect, error) {
	if totalPlayers <= 0 {
		return nil, fmt.Errorf("draft class size must be positive, got %d", totalPlayers)
	}

	sampler := NewRatingSampler(src)
	prospects := make([]models.DraftProspect, totalPlayers)
	for i := range prospects {
		prospects[i] = generateProspect(sampler, src, year)
	}

	assignMediaRanks(prospects, src)
	shuffle(src, prospects)

	return prospects, nil
}

// generateProspect creates a single prospect with true ratings, a tool
// bundle and hidden traits. Hidden traits are rolled here once and never
// recomputed.
func generateProspect(sampler *RatingSampler, src Source, year int) models.DraftProspect {
	potential := sampler.Sample(potentialMean, potentialStdDev)
	gap := uniformInt(src, minRatingGap, maxRatingGap)
	current := models.ClampRating(potential - gap)

	position := samplePosition(src)
	playerType := models.PlayerTypeHitter
	if position.IsPitcher() {
		playerType = models.PlayerTypePitcher
	}

	// Each tool is sampled independently around the current rating so
	// profiles vary: the same 55-rated prospect can be a slugger or a
	// speedster.
	attrs := make(map[models.Attribute]int)
	for _, attr := range models.AttributesFor(playerType) {
		attrs[attr] = sampler.Sample(float64(current), toolStdDev)
	}

	age := sampleAge(src)

	player := models.Player{
		ID:              uuid.New(),
		Name:            generateName(src),
		Age:             age,
		Position:        position,
		PlayerType:      playerType,
		CurrentRating:   current,
		Potential:       potential,
		Attributes:      attrs,
		WorkEthic:       sampleWorkEthic(src),
		InjuryProne:     chance(src, 0.20),
		Personality:     samplePersonality(src),
		Coachability:    uniformInt(src, 30, 70),
		Clutch:          uniformInt(src, 30, 70),
		TrainingFocus:   models.FocusOverall,
		ProgressionRate: ProgressionRate(age, current, potential),
		Morale:          50,
		RosterStatus:    models.RosterActive,
		DraftYear:       year,
	}

	return models.DraftProspect{
		Player:    player,
		Archetype: DetermineArchetype(&player),
	}
}

// assignMediaRanks scores every prospect and assigns dense unique ranks
// 1..N. The score leans on potential over current ability and carries
// noise that grows for younger players, so the media board disagrees with
// true talent more about teenagers.
func assignMediaRanks(prospects []models.DraftProspect, src Source) {
	type scored struct {
		index int
		score float64
	}
	scores := make([]scored, len(prospects))
	for i := range prospects {
		p := &prospects[i]
		noise := uniform(src, -mediaBaseNoise, mediaBaseNoise)
		youthSpread := float64(22-p.Age) * mediaYouthNoisePerYear
		if youthSpread > 0 {
			noise += uniform(src, -youthSpread, youthSpread)
		}
		scores[i] = scored{
			index: i,
			score: mediaPotentialWeight*float64(p.Potential) + mediaCurrentWeight*float64(p.CurrentRating) + noise,
		}
	}

	// Stable sort keeps generation order on ties
	sort.SliceStable(scores, func(a, b int) bool {
		return scores[a].score > scores[b].score
	})

	for rank, s := range scores {
		prospects[s.index].MediaRank = rank + 1
	}
}

func samplePosition(src Source) models.Position {
	roll := src.Float64()
	cumulative := 0.0
	for _, pw := range gamedata.PositionWeights {
		cumulative += pw.Weight
		if roll < cumulative {
			return pw.Position
		}
	}
	// Rounding drift in the weight table lands on the last entry
	return gamedata.PositionWeights[len(gamedata.PositionWeights)-1].Position
}

func sampleAge(src Source) int {
	roll := src.Float64()
	cumulative := 0.0
	for _, aw := range gamedata.AgeWeights {
		cumulative += aw.Weight
		if roll < cumulative {
			return aw.Age
		}
	}
	return gamedata.AgeWeights[len(gamedata.AgeWeights)-1].Age
}

// sampleWorkEthic rolls the 20/60/20 poor/average/excellent split
func sampleWorkEthic(src Source) models.WorkEthic {
	roll := src.Float64()
	switch {
	case roll < 0.20:
		return models.WorkEthicPoor
	case roll < 0.80:
		return models.WorkEthicAverage
	default:
		return models.WorkEthicExcellent
	}
}

// samplePersonality rolls the 70/15/15 team-player/prima-donna/leader split
func samplePersonality(src Source) models.Personality {
	roll := src.Float64()
	switch {
	case roll < 0.70:
		return models.PersonalityTeamPlayer
	case roll < 0.85:
		return models.PersonalityPrimaDonna
	default:
		return models.PersonalityLeader
	}
}

func generateName(src Source) string {
	first := gamedata.FirstNames[intn(src, len(gamedata.FirstNames))]
	last := gamedata.LastNames[intn(src, len(gamedata.LastNames))]
	return first + " " + last
}
