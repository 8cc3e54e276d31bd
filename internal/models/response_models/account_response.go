package response_models

import "wander/internal/models/db_models"

type LoginResponse struct {
	Token string `json:"token"`
}

type Preferences struct {
	TravelStyle     string   `json:"travel_style"`
	Transportation  string   `json:"transportation"`
	Interests       []string `json:"interests"`
	EcoFriendlyMode bool     `json:"eco_friendly_mode"`
}

func BuildPreferences(p db_models.TravelPreferences) Preferences {
	interests := make([]string, 0, len(p.Interests))
	for _, i := range p.Interests {
		interests = append(interests, string(i))
	}
	return Preferences{
		TravelStyle:     string(p.Style),
		Transportation:  string(p.Transportation),
		Interests:       interests,
		EcoFriendlyMode: p.EcoFriendlyMode,
	}
}
