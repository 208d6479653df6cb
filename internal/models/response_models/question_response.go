package response_models

type QuestionResponse struct {
	ID            string   `json:"id"`
	SurveysID     string   `json:"surveysId"`
	QuestionsText string   `json:"questionsText"`
	QuestionType  string   `json:"questionType"`
	Required      bool     `json:"required"`
	Choices       []string `json:"choices"`
	CreatedAt     string   `json:"created_at"`
}
