package services

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"
	"surveyforge/internal/models/db_models"
	"surveyforge/internal/models/request_models"
	"surveyforge/internal/models/response_models"
	"surveyforge/internal/repositories"
	"surveyforge/pkg/utils"
)

type QuestionServiceInterface interface {
	CreateQuestion(ctx context.Context, req request_models.CreateQuestionRequest) (*response_models.QuestionResponse, error)
	ListQuestionsBySurvey(ctx context.Context, surveyID string) ([]response_models.QuestionResponse, error)
}

type QuestionService struct {
	questionRepo  repositories.QuestionRepositoryInterface
	surveyRepo    repositories.SurveyRepositoryInterface
	embeddingRepo repositories.IQuestionEmbeddingRepository
	aiClient      utils.SuggestionClientInterface
}

func NewQuestionService(
	questionRepo repositories.QuestionRepositoryInterface,
	surveyRepo repositories.SurveyRepositoryInterface,
	embeddingRepo repositories.IQuestionEmbeddingRepository,
	aiClient utils.SuggestionClientInterface,
) QuestionServiceInterface {
	return &QuestionService{
		questionRepo:  questionRepo,
		surveyRepo:    surveyRepo,
		embeddingRepo: embeddingRepo,
		aiClient:      aiClient,
	}
}

func (s *QuestionService) CreateQuestion(ctx context.Context, req request_models.CreateQuestionRequest) (*response_models.QuestionResponse, error) {
	text := strings.TrimSpace(req.QuestionsText)
	if text == "" || req.QuestionType == "" {
		return nil, utils.ErrInvalidInput
	}

	surveyID, err := uuid.Parse(req.SurveysID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	survey, err := s.surveyRepo.GetSurveyByID(ctx, req.SurveysID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if survey == nil {
		return nil, utils.ErrSurveyNotFound
	}

	question := &db_models.Question{
		SurveyID: surveyID,
		Text:     text,
		Type:     req.QuestionType,
		Required: req.Required,
		Choices:  req.Choices,
	}

	if err := s.questionRepo.CreateQuestion(ctx, question); err != nil {
		return nil, utils.ErrDatabaseError
	}

	s.storeEmbedding(ctx, question, survey)

	return buildQuestionResponse(question), nil
}

func (s *QuestionService) ListQuestionsBySurvey(ctx context.Context, surveyID string) ([]response_models.QuestionResponse, error) {
	survey, err := s.surveyRepo.GetSurveyByID(ctx, surveyID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if survey == nil {
		return nil, utils.ErrSurveyNotFound
	}

	questions, err := s.questionRepo.ListQuestionsBySurvey(ctx, surveyID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.QuestionResponse, 0, len(questions))
	for i := range questions {
		out = append(out, *buildQuestionResponse(&questions[i]))
	}
	return out, nil
}

// storeEmbedding indexes the question text for the suggestion duplicate
// filter. Best effort: a failure here must not fail the create.
func (s *QuestionService) storeEmbedding(ctx context.Context, q *db_models.Question, survey *db_models.Survey) {
	vector, err := s.aiClient.GetEmbedding(ctx, q.Text)
	if err != nil {
		log.Printf("Skipping question embedding: %v", err)
		return
	}

	err = s.embeddingRepo.CreateQuestionEmbedding(db_models.QuestionEmbedding{
		QuestionID: q.ID.String(),
		SurveyID:   q.SurveyID.String(),
		Text:       q.Text,
		Category:   survey.Category,
		Tags:       survey.Tags,
		Embedding:  vector,
	})
	if err != nil {
		log.Printf("Failed to store question embedding: %v", err)
	}
}

func buildQuestionResponse(q *db_models.Question) *response_models.QuestionResponse {
	return &response_models.QuestionResponse{
		ID:            q.ID.String(),
		SurveysID:     q.SurveyID.String(),
		QuestionsText: q.Text,
		QuestionType:  q.Type,
		Required:      q.Required,
		Choices:       q.Choices,
		CreatedAt:     utils.FormatUnixSeconds(q.CreatedAt),
	}
}
