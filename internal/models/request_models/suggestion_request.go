package request_models

// GenerateQuestionsRequest is the context snapshot sent to the AI suggestion
// endpoint. ExistingQuestions keeps the model from proposing duplicates.
type GenerateQuestionsRequest struct {
	SurveyID          string   `json:"surveyId,omitempty"`
	Title             string   `json:"title" binding:"required"`
	Description       string   `json:"description"`
	Category          string   `json:"category"`
	ExistingQuestions []string `json:"existing_questions"`
	Count             int      `json:"count"`
}

// GenerateSurveyRequest asks the AI to draft a whole survey. The result is
// parked in the one-shot handoff slot and consumed by the builder once.
type GenerateSurveyRequest struct {
	Topic       string `json:"topic" binding:"required"`
	Category    string `json:"category"`
	Audience    string `json:"audience"`
	QuestionMax int    `json:"question_max"`
}
