package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type InterestCategory string

const (
	InterestFood      InterestCategory = "food"
	InterestNature    InterestCategory = "nature"
	InterestHistory   InterestCategory = "history"
	InterestShopping  InterestCategory = "shopping"
	InterestNightlife InterestCategory = "nightlife"
	InterestArt       InterestCategory = "art"
	InterestSports    InterestCategory = "sports"
	InterestWellness  InterestCategory = "wellness"
)

// TravelPreferences is the read-only snapshot the planner consumes. It is
// passed by value into every generation call; the planner holds no ambient
// preference state.
type TravelPreferences struct {
	Style           TravelStyle
	Interests       []InterestCategory
	EcoFriendlyMode bool
	Transportation  Transportation
}

func (p TravelPreferences) HasInterest(interest InterestCategory) bool {
	for _, i := range p.Interests {
		if i == interest {
			return true
		}
	}
	return false
}

// Preference is the stored per-account row behind TravelPreferences.
type Preference struct {
	BaseModel
	AccountID       uuid.UUID                             `gorm:"type:uuid;uniqueIndex" json:"account_id"`
	TravelStyle     TravelStyle                           `json:"travel_style"`
	Transportation  Transportation                        `json:"transportation"`
	Interests       datatypes.JSONSlice[InterestCategory] `gorm:"type:jsonb" json:"interests"`
	EcoFriendlyMode bool                                  `json:"eco_friendly_mode"`
}

func (p *Preference) Snapshot() TravelPreferences {
	return TravelPreferences{
		Style:           p.TravelStyle,
		Interests:       p.Interests,
		EcoFriendlyMode: p.EcoFriendlyMode,
		Transportation:  p.Transportation,
	}
}
