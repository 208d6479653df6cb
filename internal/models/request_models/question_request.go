package request_models

// CreateQuestionRequest matches the wire contract of the question resource.
// The type travels as a plain string, not a numeric type id.
type CreateQuestionRequest struct {
	QuestionsText string   `json:"questionsText" binding:"required"`
	QuestionType  string   `json:"questionType" binding:"required"`
	Choices       []string `json:"choices"`
	Required      bool     `json:"required"`
	SurveysID     string   `json:"surveysId" binding:"required"`
}
