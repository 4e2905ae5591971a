package request_models

import "skinai/internal/wizard"

// AdvanceRequest carries whatever the screen on FromStep produced. Only the
// field that belongs to FromStep is read.
type AdvanceRequest struct {
	FromStep  wizard.Step `json:"from_step"`
	SkinType  string      `json:"skin_type,omitempty"`
	Branch    string      `json:"branch,omitempty"`
	Allergies []string    `json:"allergies,omitempty"`
	Brand     string      `json:"brand,omitempty"`
}

type BackRequest struct {
	FromStep wizard.Step `json:"from_step"`
}

// RecommendationRequest holds questionnaire fields owned by individual screens
// rather than the wizard.
type RecommendationRequest struct {
	SkinCondition        string   `json:"skin_condition"`
	CommonConcern        string   `json:"common_concern"`
	EnvironmentAllergies []string `json:"environment_allergies"`
}
