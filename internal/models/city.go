package models

// BuildingType identifies a development slot in the franchise's city
type BuildingType string

const (
	BuildingTrainingCenter BuildingType = "training_center"
	BuildingSportsBar      BuildingType = "sports_bar"
	BuildingMerchStore     BuildingType = "merch_store"
	BuildingMediaOffice    BuildingType = "media_office"
	BuildingYouthAcademy   BuildingType = "youth_academy"
	BuildingHotel          BuildingType = "hotel"
)

// Building is one slot in the city's fixed-size building collection
type Building struct {
	Type  BuildingType `json:"type"`
	Level int          `json:"level"` // 0 = not built, 1-3 developed
}

// CityState carries the demographic and civic scalars that feed the
// financial model, plus the building collection whose states produce the
// multiplicative district bonuses.
type CityState struct {
	Name       string `json:"name"`
	Population int    `json:"population"`

	Pride               int `json:"pride"`                // 0-100 civic pride
	NationalRecognition int `json:"national_recognition"` // 0-100

	Buildings []Building `json:"buildings"`
}

// DistrictBonuses are multiplicative modifiers derived from the city's
// building development. A value of 1.0 means no bonus.
type DistrictBonuses struct {
	Income   float64 `json:"income"`
	Fan      float64 `json:"fan"`
	Training float64 `json:"training"`
}

// NoDistrictBonuses is the neutral bonus set
func NoDistrictBonuses() DistrictBonuses {
	return DistrictBonuses{Income: 1.0, Fan: 1.0, Training: 1.0}
}

// ComputeDistrictBonuses derives the multiplicative district bonuses from
// the current building states. Each building level contributes a small
// additive bump to the bonuses it influences.
func (c *CityState) ComputeDistrictBonuses() DistrictBonuses {
	bonuses := NoDistrictBonuses()
	for _, b := range c.Buildings {
		if b.Level <= 0 {
			continue
		}
		level := float64(b.Level)
		switch b.Type {
		case BuildingTrainingCenter:
			bonuses.Training += 0.05 * level
		case BuildingYouthAcademy:
			bonuses.Training += 0.03 * level
		case BuildingSportsBar:
			bonuses.Fan += 0.04 * level
		case BuildingMediaOffice:
			bonuses.Fan += 0.03 * level
			bonuses.Income += 0.02 * level
		case BuildingMerchStore:
			bonuses.Income += 0.04 * level
		case BuildingHotel:
			bonuses.Income += 0.03 * level
		}
	}
	return bonuses
}
