package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stitts-dev/franchise-sim/internal/engine"
	"github.com/stitts-dev/franchise-sim/internal/models"
)

func TestGenerateDraftClass_SizeAndRankPermutation(t *testing.T) {
	prospects, err := engine.GenerateDraftClass(800, 2026, engine.NewSource(11))
	require.NoError(t, err)
	require.Len(t, prospects, 800)

	seen := make(map[int]bool, 800)
	for _, p := range prospects {
		assert.False(t, seen[p.MediaRank], "media rank %d assigned twice", p.MediaRank)
		seen[p.MediaRank] = true
		assert.GreaterOrEqual(t, p.MediaRank, 1)
		assert.LessOrEqual(t, p.MediaRank, 800)
	}
	assert.Len(t, seen, 800, "media ranks must form a dense permutation of 1..800")
}

func TestGenerateDraftClass_RatingInvariants(t *testing.T) {
	prospects, err := engine.GenerateDraftClass(500, 2026, engine.NewSource(21))
	require.NoError(t, err)

	for _, p := range prospects {
		assert.LessOrEqual(t, p.CurrentRating, p.Potential,
			"prospect %s current rating above potential", p.Name)
		assert.GreaterOrEqual(t, p.CurrentRating, models.RatingMin)
		assert.LessOrEqual(t, p.Potential, models.RatingMax)
		for attr, v := range p.Attributes {
			assert.GreaterOrEqual(t, v, models.RatingMin, "attribute %s", attr)
			assert.LessOrEqual(t, v, models.RatingMax, "attribute %s", attr)
		}
		require.NoError(t, p.Validate())
	}
}

func TestGenerateDraftClass_AttributeBundlesMatchPlayerType(t *testing.T) {
	prospects, err := engine.GenerateDraftClass(300, 2026, engine.NewSource(5))
	require.NoError(t, err)

	for _, p := range prospects {
		if p.Position.IsPitcher() {
			assert.Equal(t, models.PlayerTypePitcher, p.PlayerType)
			assert.Len(t, p.Attributes, 3, "pitchers carry a 3-tool bundle")
			assert.Contains(t, p.Attributes, models.AttrVelocity)
		} else {
			assert.Equal(t, models.PlayerTypeHitter, p.PlayerType)
			assert.Len(t, p.Attributes, 5, "hitters carry a 5-tool bundle")
			assert.Contains(t, p.Attributes, models.AttrContact)
		}
	}
}

func TestGenerateDraftClass_HiddenTraitsPresent(t *testing.T) {
	prospects, err := engine.GenerateDraftClass(400, 2026, engine.NewSource(17))
	require.NoError(t, err)

	ethics := make(map[models.WorkEthic]int)
	for _, p := range prospects {
		ethics[p.WorkEthic]++
		assert.GreaterOrEqual(t, p.Coachability, 30)
		assert.LessOrEqual(t, p.Coachability, 70)
		assert.GreaterOrEqual(t, p.Clutch, 30)
		assert.LessOrEqual(t, p.Clutch, 70)
		assert.GreaterOrEqual(t, p.Age, 18)
		assert.LessOrEqual(t, p.Age, 22)
		assert.Greater(t, p.ProgressionRate, 0.0)
	}
	// All three work ethic buckets should show up in a 400-player class
	assert.Greater(t, ethics[models.WorkEthicPoor], 0)
	assert.Greater(t, ethics[models.WorkEthicAverage], 0)
	assert.Greater(t, ethics[models.WorkEthicExcellent], 0)
}

func TestGenerateDraftClass_RejectsBadSize(t *testing.T) {
	_, err := engine.GenerateDraftClass(0, 2026, engine.NewSource(1))
	assert.Error(t, err)

	_, err = engine.GenerateDraftClass(-5, 2026, engine.NewSource(1))
	assert.Error(t, err)
}

func TestDetermineArchetype(t *testing.T) {
	hitter := func(contact, power, speed, fielding, arm int) map[models.Attribute]int {
		return map[models.Attribute]int{
			models.AttrContact:  contact,
			models.AttrPower:    power,
			models.AttrSpeed:    speed,
			models.AttrFielding: fielding,
			models.AttrArm:      arm,
		}
	}

	tests := []struct {
		name   string
		player models.Player
		want   models.Archetype
	}{
		{
			name: "large upside gap overrides tools",
			player: models.Player{
				PlayerType:    models.PlayerTypeHitter,
				CurrentRating: 45,
				Potential:     62,
				Attributes:    hitter(70, 40, 40, 40, 40),
			},
			want: models.ArchetypeHighUpside,
		},
		{
			name: "narrow spread reads balanced",
			player: models.Player{
				PlayerType:    models.PlayerTypeHitter,
				CurrentRating: 55,
				Potential:     60,
				Attributes:    hitter(55, 52, 50, 54, 48),
			},
			want: models.ArchetypeBalanced,
		},
		{
			name: "dominant power tool reads slugger",
			player: models.Player{
				PlayerType:    models.PlayerTypeHitter,
				CurrentRating: 55,
				Potential:     60,
				Attributes:    hitter(45, 68, 44, 46, 45),
			},
			want: models.ArchetypeSlugger,
		},
		{
			name: "wide spread below strong floor stays balanced",
			player: models.Player{
				PlayerType:    models.PlayerTypeHitter,
				CurrentRating: 40,
				Potential:     44,
				Attributes:    hitter(30, 52, 28, 33, 31),
			},
			want: models.ArchetypeBalanced,
		},
		{
			name: "pitcher velocity spread reads flamethrower",
			player: models.Player{
				PlayerType:    models.PlayerTypePitcher,
				CurrentRating: 55,
				Potential:     60,
				Attributes: map[models.Attribute]int{
					models.AttrVelocity: 68,
					models.AttrControl:  50,
					models.AttrStamina:  52,
				},
			},
			want: models.ArchetypeFlamethrower,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, engine.DetermineArchetype(&tt.player))
		})
	}
}
