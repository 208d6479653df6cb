package builder

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
)

const defaultQuestionText = "Untitled question"

var (
	ErrTitleRequired      = errors.New("survey title is required")
	ErrNoQuestions        = errors.New("survey needs at least one question")
	ErrSurveyIDUnresolved = errors.New("survey id unobtainable, questions not persisted")
)

// SurveyCreateError wraps a phase-1 failure. No questions have been sent when
// this is returned.
type SurveyCreateError struct {
	Err error
}

func (e *SurveyCreateError) Error() string {
	return fmt.Sprintf("survey create failed: %v", e.Err)
}

func (e *SurveyCreateError) Unwrap() error { return e.Err }

// QuestionCreateError reports a partially failed phase 2: the survey exists,
// Succeeded of Total questions were persisted, and nothing is rolled back.
type QuestionCreateError struct {
	Total     int
	Succeeded int
	Errs      []error
}

func (e *QuestionCreateError) Error() string {
	return fmt.Sprintf("question create failed for %d of %d questions: %v",
		e.Total-e.Succeeded, e.Total, errors.Join(e.Errs...))
}

func (e *QuestionCreateError) Unwrap() error { return errors.Join(e.Errs...) }

// SurveyCreateRequest is the phase-1 wire payload.
type SurveyCreateRequest struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Category        string   `json:"category"`
	Tags            []string `json:"tags"`
	IsActive        bool     `json:"isActive"`
	BackgroundImage string   `json:"backgroundImage,omitempty"`
	Settings        Settings `json:"settings"`
	UserID          string   `json:"userId,omitempty"`
}

// QuestionCreateRequest is the phase-2 wire payload, one per question.
type QuestionCreateRequest struct {
	QuestionsText string   `json:"questionsText"`
	QuestionType  string   `json:"questionType"`
	Choices       []string `json:"choices"`
	SurveysID     string   `json:"surveysId"`
}

// SurveyAPI is the survey resource's create operation. The response payload
// is handed back undecoded because backends disagree on the id field name.
type SurveyAPI interface {
	CreateSurvey(ctx context.Context, req SurveyCreateRequest) (map[string]any, error)
}

// QuestionAPI is the question resource's create operation.
type QuestionAPI interface {
	CreateQuestion(ctx context.Context, req QuestionCreateRequest) error
}

// Saver commits a draft to the backend in two phases: survey metadata first
// to obtain a durable id, then every question tagged with that id. There is
// no transactional guarantee spanning the phases.
type Saver struct {
	surveys   SurveyAPI
	questions QuestionAPI
}

func NewSaver(surveys SurveyAPI, questions QuestionAPI) *Saver {
	return &Saver{
		surveys:   surveys,
		questions: questions,
	}
}

// Save validates the draft, creates the survey, then fans out one create per
// question. On success it returns the durable survey id. On any failure the
// draft is left untouched so the caller can retry without data loss.
//
// Phase-2 creates run concurrently; a failed create does not roll back its
// siblings. The returned *QuestionCreateError carries the partial-success
// fact so callers can distinguish it from a phase-1 failure.
func (s *Saver) Save(ctx context.Context, d *Draft, userID string) (string, error) {
	if strings.TrimSpace(d.Title) == "" {
		return "", ErrTitleRequired
	}
	if len(d.Questions) == 0 {
		return "", ErrNoQuestions
	}

	payload, err := s.surveys.CreateSurvey(ctx, SurveyCreateRequest{
		Title:           strings.TrimSpace(d.Title),
		Description:     d.Description,
		Category:        d.Category,
		Tags:            append([]string{}, d.Tags...),
		IsActive:        d.Status == StatusActive,
		BackgroundImage: d.BackgroundImage,
		Settings:        d.Settings,
		UserID:          userID,
	})
	if err != nil {
		return "", &SurveyCreateError{Err: err}
	}

	surveyID := ExtractSurveyID(payload)
	if surveyID == "" {
		return "", ErrSurveyIDUnresolved
	}

	if err := ctx.Err(); err != nil {
		return surveyID, &QuestionCreateError{Total: len(d.Questions), Errs: []error{err}}
	}

	errs := make([]error, len(d.Questions))
	var wg sync.WaitGroup
	for i := range d.Questions {
		wg.Add(1)
		go func(i int, q Question) {
			defer wg.Done()
			errs[i] = s.questions.CreateQuestion(ctx, buildQuestionCreate(q, surveyID))
		}(i, d.Questions[i])
	}
	wg.Wait()

	succeeded := 0
	var failed []error
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			failed = append(failed, err)
		}
	}
	if len(failed) > 0 {
		return surveyID, &QuestionCreateError{
			Total:     len(d.Questions),
			Succeeded: succeeded,
			Errs:      failed,
		}
	}

	return surveyID, nil
}

func buildQuestionCreate(q Question, surveyID string) QuestionCreateRequest {
	return QuestionCreateRequest{
		QuestionsText: resolveQuestionText(q),
		QuestionType:  string(q.Type),
		Choices:       append([]string{}, q.Options...),
		SurveysID:     surveyID,
	}
}

// resolveQuestionText falls back from title to placeholder to a literal
// default so the backend never receives an empty prompt.
func resolveQuestionText(q Question) string {
	if text := strings.TrimSpace(q.Title); text != "" {
		return text
	}
	if text := strings.TrimSpace(q.Placeholder); text != "" {
		return text
	}
	return defaultQuestionText
}

// ExtractSurveyID pulls the survey identifier out of a create response,
// tolerating the field names and scalar shapes seen across backend versions.
func ExtractSurveyID(payload map[string]any) string {
	for _, key := range []string{"id", "surveyId", "_id"} {
		switch v := payload[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return strconv.FormatInt(int64(v), 10)
		case int:
			return strconv.Itoa(v)
		case int64:
			return strconv.FormatInt(v, 10)
		}
	}
	return ""
}
