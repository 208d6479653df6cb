package response_models

// SuggestedQuestion is one AI proposal. Reasoning explains why the model
// suggested it and ends up as the question's helper text after a merge.
type SuggestedQuestion struct {
	Question   string   `json:"question"`
	Type       string   `json:"type"`
	Options    []string `json:"options,omitempty"`
	Reasoning  string   `json:"reasoning"`
	Confidence float64  `json:"confidence"`
}

type GenerateQuestionsResponse struct {
	Questions []SuggestedQuestion `json:"questions"`
}

// GenerateSurveyResponse returns the token under which a full AI-generated
// draft is parked. The slot is single-use.
type GenerateSurveyResponse struct {
	HandoffToken string `json:"handoff_token"`
}
