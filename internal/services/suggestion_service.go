package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"surveyforge/internal/builder"
	"surveyforge/internal/models/request_models"
	"surveyforge/internal/models/response_models"
	"surveyforge/internal/repositories"
	mem "surveyforge/pkg/memcache"
	"surveyforge/pkg/utils"
)

const (
	defaultSuggestionCount = 5
	maxSuggestionCount     = 15
	handoffTTL             = 10 * time.Minute
)

type SuggestionServiceInterface interface {
	GenerateQuestions(ctx context.Context, req request_models.GenerateQuestionsRequest) ([]response_models.SuggestedQuestion, error)
	GenerateSurveyDraft(ctx context.Context, req request_models.GenerateSurveyRequest) (string, error)
	ConsumeDraft(token string) (*builder.Draft, error)
}

type SuggestionService struct {
	aiClient      utils.SuggestionClientInterface
	embeddingRepo repositories.IQuestionEmbeddingRepository
	handoff       mem.DraftHandoffStore
}

func NewSuggestionService(
	aiClient utils.SuggestionClientInterface,
	embeddingRepo repositories.IQuestionEmbeddingRepository,
	handoff mem.DraftHandoffStore,
) SuggestionServiceInterface {
	return &SuggestionService{
		aiClient:      aiClient,
		embeddingRepo: embeddingRepo,
		handoff:       handoff,
	}
}

// aiQuestionList is the strict JSON shape both providers are prompted for.
type aiQuestionList struct {
	Questions []response_models.SuggestedQuestion `json:"questions"`
}

func (s *SuggestionService) GenerateQuestions(ctx context.Context, req request_models.GenerateQuestionsRequest) ([]response_models.SuggestedQuestion, error) {
	count := req.Count
	if count <= 0 {
		count = defaultSuggestionCount
	}
	if count > maxSuggestionCount {
		count = maxSuggestionCount
	}

	content, err := s.aiClient.GenerateJSON(ctx, buildQuestionsPrompt(req, count))
	if err != nil {
		return nil, utils.ErrUnexpectedAIOutput
	}

	var parsed aiQuestionList
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, utils.ErrUnexpectedAIOutput
	}

	out := make([]response_models.SuggestedQuestion, 0, len(parsed.Questions))
	for _, q := range parsed.Questions {
		if strings.TrimSpace(q.Question) == "" {
			continue
		}
		if containsQuestion(req.ExistingQuestions, q.Question) {
			continue
		}
		if s.isNearDuplicate(ctx, req.SurveyID, q.Question) {
			continue
		}
		out = append(out, q)
	}
	return out, nil
}

func (s *SuggestionService) GenerateSurveyDraft(ctx context.Context, req request_models.GenerateSurveyRequest) (string, error) {
	max := req.QuestionMax
	if max <= 0 {
		max = defaultSuggestionCount
	}
	if max > maxSuggestionCount {
		max = maxSuggestionCount
	}

	content, err := s.aiClient.GenerateJSON(ctx, buildSurveyPrompt(req, max))
	if err != nil {
		return "", utils.ErrUnexpectedAIOutput
	}

	var parsed struct {
		Title       string                              `json:"title"`
		Description string                              `json:"description"`
		Category    string                              `json:"category"`
		Questions   []response_models.SuggestedQuestion `json:"questions"`
	}
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return "", utils.ErrUnexpectedAIOutput
	}
	if strings.TrimSpace(parsed.Title) == "" || len(parsed.Questions) == 0 {
		return "", utils.ErrUnexpectedAIOutput
	}

	draft := builder.NewDraft()
	draft.Title = parsed.Title
	draft.Description = parsed.Description
	draft.Category = parsed.Category

	pool := builder.NewSuggestionPool()
	pool.Fill(toSuggestions(parsed.Questions))
	for _, item := range pool.Items() {
		pool.Merge(draft, item.ID)
	}

	token, err := utils.GenerateSecureToken(16)
	if err != nil {
		return "", err
	}
	s.handoff.Put(token, *draft, handoffTTL)

	return token, nil
}

func (s *SuggestionService) ConsumeDraft(token string) (*builder.Draft, error) {
	draft, ok := s.handoff.Consume(token)
	if !ok {
		return nil, utils.ErrHandoffNotFound
	}
	return &draft, nil
}

// isNearDuplicate checks the proposed text against the survey's stored
// question embeddings. With no survey context there is nothing to compare.
func (s *SuggestionService) isNearDuplicate(ctx context.Context, surveyID, text string) bool {
	if surveyID == "" {
		return false
	}

	vector, err := s.aiClient.GetEmbedding(ctx, text)
	if err != nil {
		log.Printf("Skipping duplicate check: %v", err)
		return false
	}

	similar, err := s.embeddingRepo.ListSimilarQuestions(vector, surveyID)
	if err != nil {
		log.Printf("Skipping duplicate check: %v", err)
		return false
	}
	return len(similar) > 0
}

func containsQuestion(existing []string, candidate string) bool {
	norm := normalizeQuestion(candidate)
	for _, q := range existing {
		if normalizeQuestion(q) == norm {
			return true
		}
	}
	return false
}

func normalizeQuestion(q string) string {
	return strings.ToLower(strings.TrimRight(strings.TrimSpace(q), "?"))
}

func buildQuestionsPrompt(req request_models.GenerateQuestionsRequest, count int) string {
	var b strings.Builder

	b.WriteString("Suggest survey questions. Return JSON only, matching exactly:\n")
	b.WriteString(`{"questions":[{"question":"...","type":"text|textarea|multiple_choice|checkbox|dropdown|yes_no|rating|date|email|phone|name|location","options":["..."],"reasoning":"why this question helps","confidence":0.9}]}`)
	b.WriteString("\n\nSurvey context:\n")
	fmt.Fprintf(&b, "- Title: %s\n", req.Title)
	if req.Description != "" {
		fmt.Fprintf(&b, "- Description: %s\n", req.Description)
	}
	if req.Category != "" {
		fmt.Fprintf(&b, "- Category: %s\n", req.Category)
	}
	if len(req.ExistingQuestions) > 0 {
		b.WriteString("- Already asked (do not repeat):\n")
		for _, q := range req.ExistingQuestions {
			fmt.Fprintf(&b, "  - %s\n", q)
		}
	}

	fmt.Fprintf(&b, "\nHard constraints:\n- Exactly %d questions.\n", count)
	b.WriteString("- Options only for choice and rating types.\n")
	b.WriteString("- confidence between 0 and 1.\n")
	b.WriteString("Return JSON only. No comments, no markdown.\n")

	return b.String()
}

func buildSurveyPrompt(req request_models.GenerateSurveyRequest, max int) string {
	var b strings.Builder

	b.WriteString("Draft a complete survey. Return JSON only, matching exactly:\n")
	b.WriteString(`{"title":"...","description":"...","category":"...","questions":[{"question":"...","type":"text|textarea|multiple_choice|checkbox|dropdown|yes_no|rating|date|email|phone|name|location","options":["..."],"reasoning":"...","confidence":0.9}]}`)
	fmt.Fprintf(&b, "\n\nTopic: %s\n", req.Topic)
	if req.Category != "" {
		fmt.Fprintf(&b, "Category: %s\n", req.Category)
	}
	if req.Audience != "" {
		fmt.Fprintf(&b, "Audience: %s\n", req.Audience)
	}
	fmt.Fprintf(&b, "\nHard constraints:\n- At most %d questions.\n", max)
	b.WriteString("- Options only for choice and rating types.\n")
	b.WriteString("Return JSON only. No comments, no markdown.\n")

	return b.String()
}

func toSuggestions(items []response_models.SuggestedQuestion) []builder.Suggestion {
	out := make([]builder.Suggestion, 0, len(items))
	for _, q := range items {
		out = append(out, builder.Suggestion{
			Question:   q.Question,
			Type:       q.Type,
			Options:    q.Options,
			Reasoning:  q.Reasoning,
			Confidence: q.Confidence,
		})
	}
	return out
}
