package gamedata

import "github.com/stitts-dev/franchise-sim/internal/models"

// PositionWeight is one entry in the weighted categorical distribution
// prospects are assigned positions from
type PositionWeight struct {
	Position models.Position
	Weight   float64
}

// PositionWeights is the fixed position distribution over the ten
// positions. Weights sum to 1.0; pitchers make up 30% of a class.
var PositionWeights = []PositionWeight{
	{models.PositionStarter, 0.17},
	{models.PositionReliever, 0.13},
	{models.PositionCatcher, 0.09},
	{models.PositionFirstBase, 0.08},
	{models.PositionSecondBase, 0.09},
	{models.PositionThirdBase, 0.09},
	{models.PositionShortstop, 0.09},
	{models.PositionLeftField, 0.08},
	{models.PositionCenterField, 0.09},
	{models.PositionRightField, 0.09},
}

// AgeWeight is one entry in the prospect age distribution
type AgeWeight struct {
	Age    int
	Weight float64
}

// AgeWeights is the fixed age distribution over draft-eligible ages. Most
// prospects come out at 19-20.
var AgeWeights = []AgeWeight{
	{18, 0.15},
	{19, 0.25},
	{20, 0.25},
	{21, 0.20},
	{22, 0.15},
}
