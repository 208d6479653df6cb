package request_models

type SurveySettings struct {
	AllowAnonymous         bool   `json:"allow_anonymous"`
	ShowProgressBar        bool   `json:"show_progress_bar"`
	AllowMultipleResponses bool   `json:"allow_multiple_responses"`
	Theme                  string `json:"theme"`
}

type CreateSurveyRequest struct {
	Title           string         `json:"title" binding:"required"`
	Description     string         `json:"description"`
	Category        string         `json:"category"`
	Tags            []string       `json:"tags"`
	IsActive        bool           `json:"isActive"`
	BackgroundImage string         `json:"backgroundImage"`
	Settings        SurveySettings `json:"settings"`
	UserID          string         `json:"userId"`
}

type UpdateSurveyRequest struct {
	Title           *string         `json:"title"`
	Description     *string         `json:"description"`
	Category        *string         `json:"category"`
	Tags            *[]string       `json:"tags"`
	IsActive        *bool           `json:"isActive"`
	BackgroundImage *string         `json:"backgroundImage"`
	Settings        *SurveySettings `json:"settings"`
}
