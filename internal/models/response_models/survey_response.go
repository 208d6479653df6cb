package response_models

// SurveyResponse mirrors the survey resource on the wire. The identifier is
// published under "id"; older clients that look for "surveyId" or "_id" get
// the same value from the duplicate field.
type SurveyResponse struct {
	ID              string             `json:"id"`
	SurveyID        string             `json:"surveyId"`
	Title           string             `json:"title"`
	Description     string             `json:"description"`
	Category        string             `json:"category"`
	Tags            []string           `json:"tags"`
	IsActive        bool               `json:"isActive"`
	BackgroundImage string             `json:"backgroundImage,omitempty"`
	Settings        SurveySettingsView `json:"settings"`
	QuestionCount   int                `json:"question_count"`
	CreatedAt       string             `json:"created_at"`
	UpdatedAt       string             `json:"updated_at"`
}

type SurveySettingsView struct {
	AllowAnonymous         bool   `json:"allow_anonymous"`
	ShowProgressBar        bool   `json:"show_progress_bar"`
	AllowMultipleResponses bool   `json:"allow_multiple_responses"`
	Theme                  string `json:"theme"`
}
