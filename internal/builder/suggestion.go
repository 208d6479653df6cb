package builder

import "strings"

// Suggestion is one AI-proposed question as returned by the generation
// endpoint. Type uses the external vocabulary, not QuestionType.
type Suggestion struct {
	ID         string   `json:"id"`
	Question   string   `json:"question"`
	Type       string   `json:"type"`
	Options    []string `json:"options,omitempty"`
	Reasoning  string   `json:"reasoning"`
	Confidence float64  `json:"confidence"`
}

// suggestionTypeTable maps the external AI type vocabulary onto draft
// question types. Anything unrecognized falls back to text.
var suggestionTypeTable = map[string]QuestionType{
	"text":            QuestionText,
	"short_text":      QuestionText,
	"textarea":        QuestionTextarea,
	"long_text":       QuestionTextarea,
	"open_ended":      QuestionTextarea,
	"radio":           QuestionRadio,
	"single_choice":   QuestionRadio,
	"multiple_choice": QuestionRadio,
	"yes_no":          QuestionRadio,
	"checkbox":        QuestionCheckbox,
	"checkboxes":      QuestionCheckbox,
	"multi_select":    QuestionCheckbox,
	"select":          QuestionSelect,
	"dropdown":        QuestionSelect,
	"rating":          QuestionRating,
	"scale":           QuestionRating,
	"likert":          QuestionRating,
	"date":            QuestionDate,
	"location":        QuestionLocation,
	"phone":           QuestionPhone,
	"email":           QuestionEmail,
	"name":            QuestionName,
}

// MapSuggestionType resolves an external suggestion type to a QuestionType.
func MapSuggestionType(external string) QuestionType {
	if t, ok := suggestionTypeTable[strings.ToLower(strings.TrimSpace(external))]; ok {
		return t
	}
	return QuestionText
}

// SuggestionPool holds fetched suggestions that have not been merged yet.
// It is owned by a single editing session, like the draft itself.
type SuggestionPool struct {
	items []Suggestion
}

func NewSuggestionPool() *SuggestionPool {
	return &SuggestionPool{}
}

// Fill replaces the pool contents, minting ids for suggestions that came
// without one so merges have a stable key.
func (p *SuggestionPool) Fill(items []Suggestion) {
	p.items = make([]Suggestion, len(items))
	copy(p.items, items)
	for i := range p.items {
		if p.items[i].ID == "" {
			p.items[i].ID = newLocalID()
		}
	}
}

func (p *SuggestionPool) Items() []Suggestion {
	out := make([]Suggestion, len(p.items))
	copy(out, p.items)
	return out
}

func (p *SuggestionPool) Len() int { return len(p.items) }

// Merge turns the pooled suggestion with the given id into a draft question,
// appends it and removes the suggestion so it cannot be inserted twice.
// Merging an id that is not in the pool is a no-op.
func (p *SuggestionPool) Merge(d *Draft, id string) (Question, bool) {
	idx := -1
	for i := range p.items {
		if p.items[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Question{}, false
	}

	s := p.items[idx]
	q := Question{
		LocalID:     newLocalID(),
		Type:        MapSuggestionType(s.Type),
		Title:       s.Question,
		Required:    false,
		Options:     append([]string(nil), s.Options...),
		Description: s.Reasoning,
	}
	if q.Type == QuestionRating && len(q.Options) == 0 {
		q.Options = []string{"1", "2", "3", "4", "5"}
		q.MaxRating = defaultMaxRating
		q.RatingIcon = RatingIconStar
	}

	d.Questions = append(d.Questions, q)
	p.items = append(p.items[:idx], p.items[idx+1:]...)
	return q, true
}
