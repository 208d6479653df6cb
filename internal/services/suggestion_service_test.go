package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"surveyforge/internal/builder"
	"surveyforge/internal/models/db_models"
	"surveyforge/internal/models/request_models"
	"surveyforge/pkg/utils"
)

type mockAIClient struct {
	mock.Mock
}

func (m *mockAIClient) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func (m *mockAIClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	args := m.Called(ctx, text)
	return args.Get(0).(pgvector.Vector), args.Error(1)
}

func (m *mockAIClient) Close() error { return nil }

type mockEmbeddingRepo struct {
	mock.Mock
}

func (m *mockEmbeddingRepo) CreateQuestionEmbedding(embedding db_models.QuestionEmbedding) error {
	args := m.Called(embedding)
	return args.Error(0)
}

func (m *mockEmbeddingRepo) ListSimilarQuestions(vector pgvector.Vector, surveyID string) ([]db_models.QuestionEmbedding, error) {
	args := m.Called(vector, surveyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]db_models.QuestionEmbedding), args.Error(1)
}

type mockHandoff struct {
	mock.Mock
}

func (m *mockHandoff) Put(token string, draft builder.Draft, ttl time.Duration) {
	m.Called(token, draft, ttl)
}

func (m *mockHandoff) Consume(token string) (builder.Draft, bool) {
	args := m.Called(token)
	return args.Get(0).(builder.Draft), args.Bool(1)
}

func TestGenerateQuestions(t *testing.T) {
	t.Run("parses and filters the model output", func(t *testing.T) {
		ai := new(mockAIClient)
		repo := new(mockEmbeddingRepo)
		handoff := new(mockHandoff)
		svc := NewSuggestionService(ai, repo, handoff)

		ai.On("GenerateJSON", mock.Anything, mock.Anything).Return(`{"questions":[
			{"question":"How satisfied are you?","type":"rating","reasoning":"Baseline.","confidence":0.9},
			{"question":"","type":"text"},
			{"question":"how satisfied are you","type":"text"}
		]}`, nil).Once()

		out, err := svc.GenerateQuestions(context.Background(), request_models.GenerateQuestionsRequest{
			Title:             "Customer feedback",
			ExistingQuestions: []string{"How satisfied are you?"},
		})
		require.NoError(t, err)

		// The blank entry and both variants of the already-asked question
		// are dropped, leaving only genuinely new suggestions.
		require.Len(t, out, 0)
	})

	t.Run("keeps new questions", func(t *testing.T) {
		ai := new(mockAIClient)
		repo := new(mockEmbeddingRepo)
		handoff := new(mockHandoff)
		svc := NewSuggestionService(ai, repo, handoff)

		ai.On("GenerateJSON", mock.Anything, mock.Anything).Return(`{"questions":[
			{"question":"What would you improve?","type":"textarea","reasoning":"Open feedback.","confidence":0.8}
		]}`, nil).Once()

		out, err := svc.GenerateQuestions(context.Background(), request_models.GenerateQuestionsRequest{Title: "Feedback"})
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "What would you improve?", out[0].Question)
		assert.Equal(t, "textarea", out[0].Type)
	})

	t.Run("rejects non JSON model output", func(t *testing.T) {
		ai := new(mockAIClient)
		svc := NewSuggestionService(ai, new(mockEmbeddingRepo), new(mockHandoff))

		ai.On("GenerateJSON", mock.Anything, mock.Anything).Return("Sure! Here are some questions:", nil).Once()

		_, err := svc.GenerateQuestions(context.Background(), request_models.GenerateQuestionsRequest{Title: "X"})
		assert.ErrorIs(t, err, utils.ErrUnexpectedAIOutput)
	})

	t.Run("maps provider failures to one sentinel", func(t *testing.T) {
		ai := new(mockAIClient)
		svc := NewSuggestionService(ai, new(mockEmbeddingRepo), new(mockHandoff))

		ai.On("GenerateJSON", mock.Anything, mock.Anything).Return("", errors.New("rate limited")).Once()

		_, err := svc.GenerateQuestions(context.Background(), request_models.GenerateQuestionsRequest{Title: "X"})
		assert.ErrorIs(t, err, utils.ErrUnexpectedAIOutput)
	})

	t.Run("drops embedding near-duplicates", func(t *testing.T) {
		ai := new(mockAIClient)
		repo := new(mockEmbeddingRepo)
		svc := NewSuggestionService(ai, repo, new(mockHandoff))

		ai.On("GenerateJSON", mock.Anything, mock.Anything).Return(`{"questions":[
			{"question":"Rate our support","type":"rating"}
		]}`, nil).Once()
		vec := pgvector.NewVector(make([]float32, 4))
		ai.On("GetEmbedding", mock.Anything, "Rate our support").Return(vec, nil).Once()
		repo.On("ListSimilarQuestions", vec, "srv-1").
			Return([]db_models.QuestionEmbedding{{Text: "Rate our customer support"}}, nil).Once()

		out, err := svc.GenerateQuestions(context.Background(), request_models.GenerateQuestionsRequest{
			SurveyID: "srv-1",
			Title:    "Support",
		})
		require.NoError(t, err)
		assert.Empty(t, out)
	})
}

func TestGenerateSurveyDraft(t *testing.T) {
	t.Run("parks a merged draft behind a token", func(t *testing.T) {
		ai := new(mockAIClient)
		handoff := new(mockHandoff)
		svc := NewSuggestionService(ai, new(mockEmbeddingRepo), handoff)

		ai.On("GenerateJSON", mock.Anything, mock.Anything).Return(`{
			"title":"Employee pulse","description":"Quarterly pulse check","category":"hr",
			"questions":[
				{"question":"How is your workload?","type":"rating"},
				{"question":"What should we change?","type":"open_ended"}
			]}`, nil).Once()

		var parked builder.Draft
		handoff.On("Put", mock.Anything, mock.Anything, 10*time.Minute).
			Run(func(args mock.Arguments) { parked = args.Get(1).(builder.Draft) }).Once()

		token, err := svc.GenerateSurveyDraft(context.Background(), request_models.GenerateSurveyRequest{Topic: "employee wellbeing"})
		require.NoError(t, err)
		assert.NotEmpty(t, token)

		handoff.AssertExpectations(t)
		assert.Equal(t, "Employee pulse", parked.Title)
		require.Len(t, parked.Questions, 2)
		assert.Equal(t, builder.QuestionRating, parked.Questions[0].Type)
		assert.Equal(t, builder.QuestionTextarea, parked.Questions[1].Type)
	})

	t.Run("rejects a draft without title or questions", func(t *testing.T) {
		ai := new(mockAIClient)
		svc := NewSuggestionService(ai, new(mockEmbeddingRepo), new(mockHandoff))

		ai.On("GenerateJSON", mock.Anything, mock.Anything).Return(`{"title":"","questions":[]}`, nil).Once()

		_, err := svc.GenerateSurveyDraft(context.Background(), request_models.GenerateSurveyRequest{Topic: "x"})
		assert.ErrorIs(t, err, utils.ErrUnexpectedAIOutput)
	})
}

func TestConsumeDraft(t *testing.T) {
	handoff := new(mockHandoff)
	svc := NewSuggestionService(new(mockAIClient), new(mockEmbeddingRepo), handoff)

	d := builder.Draft{Title: "Parked"}
	handoff.On("Consume", "tok-1").Return(d, true).Once()
	handoff.On("Consume", "tok-1").Return(builder.Draft{}, false).Once()

	got, err := svc.ConsumeDraft("tok-1")
	require.NoError(t, err)
	assert.Equal(t, "Parked", got.Title)

	_, err = svc.ConsumeDraft("tok-1")
	assert.ErrorIs(t, err, utils.ErrHandoffNotFound)
}
