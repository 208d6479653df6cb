package builder

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"
)

// QuestionType is the set of question kinds a draft can hold.
type QuestionType string

const (
	QuestionText     QuestionType = "text"
	QuestionTextarea QuestionType = "textarea"
	QuestionRadio    QuestionType = "radio"
	QuestionCheckbox QuestionType = "checkbox"
	QuestionSelect   QuestionType = "select"
	QuestionRating   QuestionType = "rating"
	QuestionDate     QuestionType = "date"
	QuestionLocation QuestionType = "location"
	QuestionPhone    QuestionType = "phone"
	QuestionEmail    QuestionType = "email"
	QuestionName     QuestionType = "name"
)

type SurveyStatus string

const (
	StatusActive   SurveyStatus = "active"
	StatusDraft    SurveyStatus = "draft"
	StatusArchived SurveyStatus = "archived"
)

type RatingIcon string

const (
	RatingIconStar  RatingIcon = "star"
	RatingIconHeart RatingIcon = "heart"
	RatingIconThumb RatingIcon = "thumb"
)

const (
	defaultMaxRating   = 5
	questionCopySuffix = " (Copy)"
)

var ErrQuestionNotFound = errors.New("question not found in draft")

// Settings holds the respondent-facing survey options.
type Settings struct {
	AllowAnonymous         bool   `json:"allow_anonymous"`
	ShowProgressBar        bool   `json:"show_progress_bar"`
	AllowMultipleResponses bool   `json:"allow_multiple_responses"`
	Theme                  string `json:"theme"`
}

// Question is one entry of a draft. LocalID identifies it for the lifetime
// of the draft only; it is never sent to the backend.
type Question struct {
	LocalID     string       `json:"local_id"`
	Type        QuestionType `json:"type"`
	Title       string       `json:"title"`
	Required    bool         `json:"required"`
	Options     []string     `json:"options,omitempty"`
	Placeholder string       `json:"placeholder,omitempty"`
	Description string       `json:"description,omitempty"`
	MaxRating   int          `json:"max_rating,omitempty"`
	RatingValue int          `json:"rating_value,omitempty"`
	RatingIcon  RatingIcon   `json:"rating_icon,omitempty"`
}

// Draft is one survey under construction. The Questions slice order is the
// presentation order; there is no separate rank field anywhere.
type Draft struct {
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	BackgroundImage string       `json:"background_image,omitempty"`
	Status          SurveyStatus `json:"status"`
	Category        string       `json:"category"`
	Tags            []string     `json:"tags"`
	Settings        Settings     `json:"settings"`
	Questions       []Question   `json:"questions"`
}

func NewDraft() *Draft {
	return &Draft{
		Status: StatusDraft,
		Settings: Settings{
			ShowProgressBar: true,
			Theme:           "light",
		},
		Questions: []Question{},
	}
}

var localIDSeq atomic.Int64

// newLocalID mints a draft-local question identity. The timestamp keeps ids
// readable, the counter keeps them unique even within one nanosecond tick.
func newLocalID() string {
	return fmt.Sprintf("q-%d-%d", time.Now().UnixNano(), localIDSeq.Add(1))
}

// AddQuestion appends a new question of the given type with type-appropriate
// defaults and returns it. It never fails.
func (d *Draft) AddQuestion(t QuestionType) Question {
	q := Question{
		LocalID:  newLocalID(),
		Type:     t,
		Required: false,
	}

	switch t {
	case QuestionRadio, QuestionCheckbox, QuestionSelect:
		q.Options = []string{"", ""}
	case QuestionRating:
		q.Options = []string{"1", "2", "3", "4", "5"}
		q.MaxRating = defaultMaxRating
		q.RatingValue = 0
		q.RatingIcon = RatingIconStar
	}

	d.Questions = append(d.Questions, q)
	return q
}

// QuestionPatch carries the fields UpdateQuestion may change. Nil fields are
// left untouched. There is deliberately no LocalID field.
type QuestionPatch struct {
	Type        *QuestionType
	Title       *string
	Required    *bool
	Options     *[]string
	Placeholder *string
	Description *string
	MaxRating   *int
	RatingValue *int
	RatingIcon  *RatingIcon
}

// UpdateQuestion merges the patch into the question with the given local id.
// An unknown id is an error, not a silent no-op.
func (d *Draft) UpdateQuestion(localID string, patch QuestionPatch) error {
	i := d.indexOf(localID)
	if i < 0 {
		return ErrQuestionNotFound
	}

	q := &d.Questions[i]
	if patch.Type != nil {
		q.Type = *patch.Type
	}
	if patch.Title != nil {
		q.Title = *patch.Title
	}
	if patch.Required != nil {
		q.Required = *patch.Required
	}
	if patch.Options != nil {
		q.Options = append([]string(nil), (*patch.Options)...)
	}
	if patch.Placeholder != nil {
		q.Placeholder = *patch.Placeholder
	}
	if patch.Description != nil {
		q.Description = *patch.Description
	}
	if patch.MaxRating != nil {
		q.MaxRating = *patch.MaxRating
	}
	if patch.RatingValue != nil {
		q.RatingValue = *patch.RatingValue
	}
	if patch.RatingIcon != nil {
		q.RatingIcon = *patch.RatingIcon
	}
	return nil
}

// DeleteQuestion removes the question with the given local id. Irreversible
// within the session; confirmation belongs to the caller.
func (d *Draft) DeleteQuestion(localID string) error {
	i := d.indexOf(localID)
	if i < 0 {
		return ErrQuestionNotFound
	}
	d.Questions = append(d.Questions[:i], d.Questions[i+1:]...)
	return nil
}

// DuplicateQuestion clones the question under a fresh local id, marks the
// title with a copy suffix and appends the clone at the end of the draft.
func (d *Draft) DuplicateQuestion(localID string) (Question, error) {
	i := d.indexOf(localID)
	if i < 0 {
		return Question{}, ErrQuestionNotFound
	}

	clone := d.Questions[i]
	clone.LocalID = newLocalID()
	clone.Title = clone.Title + questionCopySuffix
	clone.Options = append([]string(nil), clone.Options...)

	d.Questions = append(d.Questions, clone)
	return clone, nil
}

// MoveQuestion splices the question with the given local id to position `to`
// in the draft. Out-of-range targets are clamped.
func (d *Draft) MoveQuestion(localID string, to int) error {
	i := d.indexOf(localID)
	if i < 0 {
		return ErrQuestionNotFound
	}

	q := d.Questions[i]
	d.Questions = append(d.Questions[:i], d.Questions[i+1:]...)

	if to < 0 {
		to = 0
	}
	if to > len(d.Questions) {
		to = len(d.Questions)
	}

	d.Questions = append(d.Questions, Question{})
	copy(d.Questions[to+1:], d.Questions[to:])
	d.Questions[to] = q
	return nil
}

// Question returns a copy of the question with the given local id.
func (d *Draft) Question(localID string) (Question, bool) {
	i := d.indexOf(localID)
	if i < 0 {
		return Question{}, false
	}
	return d.Questions[i], true
}

func (d *Draft) indexOf(localID string) int {
	for i := range d.Questions {
		if d.Questions[i].LocalID == localID {
			return i
		}
	}
	return -1
}
