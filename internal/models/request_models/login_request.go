package request_models

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SignUpRequest struct {
	DisplayName string `json:"display_name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
}

type UpdatePreferencesRequest struct {
	TravelStyle     string   `json:"travel_style" binding:"required"`
	Transportation  string   `json:"transportation" binding:"required"`
	Interests       []string `json:"interests"`
	EcoFriendlyMode bool     `json:"eco_friendly_mode"`
}
