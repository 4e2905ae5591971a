package response_models

type ProductSuggestion struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Brand       string   `json:"brand"`
	Category    string   `json:"category"`
	Description string   `json:"description,omitempty"`
	Ingredients []string `json:"ingredients,omitempty"`
	Similarity  float64  `json:"similarity,omitempty"`
}

type RecommendationResponse struct {
	AssessmentID   string              `json:"assessment_id,omitempty"`
	SkinType       string              `json:"skin_type"`
	Allergies      []string            `json:"allergies"`
	Brand          string              `json:"brand"`
	MorningRoutine []string            `json:"morning_routine"`
	NightRoutine   []string            `json:"night_routine"`
	Treatment      string              `json:"treatment_recommendation"`
	Products       []ProductSuggestion `json:"products"`
	Summary        string              `json:"summary"`
	Source         string              `json:"source"`
}

type AssessmentHistoryItem struct {
	ID        string   `json:"id"`
	SkinType  string   `json:"skin_type"`
	Allergies []string `json:"allergies"`
	Brand     string   `json:"brand"`
	Treatment string   `json:"treatment_recommendation"`
	Summary   string   `json:"summary"`
	CreatedAt string   `json:"created_at"`
}
