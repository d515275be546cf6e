package engine

import "github.com/stitts-dev/franchise-sim/internal/models"

// Archetype thresholds
const (
	hitterBalancedSpread  = 12
	pitcherBalancedSpread = 8
	strongToolFloor       = 55
	highUpsideGap         = 15
)

// archetypeForTool maps a dominant tool to its label
var archetypeForTool = map[models.Attribute]models.Archetype{
	models.AttrContact:  models.ArchetypeContactHitter,
	models.AttrPower:    models.ArchetypeSlugger,
	models.AttrSpeed:    models.ArchetypeSpeedster,
	models.AttrFielding: models.ArchetypeDefensiveWiz,
	models.AttrArm:      models.ArchetypeCannonArm,
	models.AttrVelocity: models.ArchetypeFlamethrower,
	models.AttrControl:  models.ArchetypeControlArtist,
	models.AttrStamina:  models.ArchetypeWorkhorse,
}

// DetermineArchetype labels a player by the shape of their tool profile.
// Raw players (potential far above current ability) read as high-upside
// projects regardless of tools; otherwise a narrow spread reads balanced
// and a wide spread is labeled by the dominant tool when it clears the
// strong-tool floor.
func DetermineArchetype(p *models.Player) models.Archetype {
	if p.Potential-p.CurrentRating >= highUpsideGap {
		return models.ArchetypeHighUpside
	}

	attrs := models.AttributesFor(p.PlayerType)
	if len(attrs) == 0 {
		return models.ArchetypeBalanced
	}

	top := attrs[0]
	topValue := p.Attributes[top]
	bottomValue := topValue
	for _, attr := range attrs[1:] {
		v := p.Attributes[attr]
		if v > topValue {
			top, topValue = attr, v
		}
		if v < bottomValue {
			bottomValue = v
		}
	}

	balancedSpread := hitterBalancedSpread
	if p.PlayerType == models.PlayerTypePitcher {
		balancedSpread = pitcherBalancedSpread
	}
	if topValue-bottomValue <= balancedSpread {
		return models.ArchetypeBalanced
	}
	if topValue < strongToolFloor {
		return models.ArchetypeBalanced
	}
	return archetypeForTool[top]
}
