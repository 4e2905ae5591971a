package request_models

// SkinTypeFeatures mirrors the skin type questionnaire. Empty fields fall back
// to defaults.
type SkinTypeFeatures struct {
	Age            *float64 `json:"Age"`
	Gender         string   `json:"Gender"`
	Humidity       *float64 `json:"Humidity"`
	Temperature    *float64 `json:"Temperature"`
	HydrationLevel string   `json:"Hydration_Level"`
	OilLevel       string   `json:"Oil_Level"`
	Sensitivity    string   `json:"Sensitivity"`
}

type RoutineAnalysisRequest struct {
	Age            *float64 `json:"Age"`
	Gender         string   `json:"Gender"`
	SkinType       string   `json:"Skin_Type"`
	Smoking        string   `json:"Smoking"`
	Alcohol        string   `json:"Alcohol"`
	Diabetes       string   `json:"Diabetes"`
	DiabetesType   string   `json:"Diabetes_Type"`
	Location       string   `json:"Location"`
	CommonConcern  string   `json:"Common_Concern"`
	PollutionLevel string   `json:"Pollution_Level"`
}
