package response_models

type SkinTypePrediction struct {
	Prediction int    `json:"prediction"`
	SkinType   string `json:"skin_type"`
}

type RoutineAnalysisResponse struct {
	MorningRoutine []string `json:"Morning_Routine"`
	NightRoutine   []string `json:"Night_Routine"`
	Treatment      string   `json:"Treatment_Recommendation"`
}

type ConditionResponse struct {
	Condition string `json:"condition"`
	Source    string `json:"source"`
}
