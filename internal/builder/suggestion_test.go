package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapSuggestionType(t *testing.T) {
	cases := []struct {
		external string
		want     QuestionType
	}{
		{"multiple_choice", QuestionRadio},
		{"single_choice", QuestionRadio},
		{"yes_no", QuestionRadio},
		{"checkboxes", QuestionCheckbox},
		{"multi_select", QuestionCheckbox},
		{"dropdown", QuestionSelect},
		{"rating", QuestionRating},
		{"likert", QuestionRating},
		{"open_ended", QuestionTextarea},
		{"email", QuestionEmail},
		{"  Multiple_Choice  ", QuestionRadio},
		{"something_new", QuestionText},
		{"", QuestionText},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, MapSuggestionType(tc.external), "external type %q", tc.external)
	}
}

func TestSuggestionPool_Fill(t *testing.T) {
	p := NewSuggestionPool()
	p.Fill([]Suggestion{
		{ID: "s-1", Question: "How satisfied are you?", Type: "rating"},
		{Question: "Anything else?", Type: "open_ended"},
	})

	items := p.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "s-1", items[0].ID)
	assert.NotEmpty(t, items[1].ID, "missing ids are minted so merges have a key")
	assert.Equal(t, 2, p.Len())
}

func TestSuggestionPool_Merge(t *testing.T) {
	t.Run("moves the suggestion into the draft", func(t *testing.T) {
		p := NewSuggestionPool()
		p.Fill([]Suggestion{{
			ID:        "s-1",
			Question:  "Which channels do you use?",
			Type:      "multi_select",
			Options:   []string{"email", "phone", "chat"},
			Reasoning: "Identifies preferred contact channels.",
		}})
		d := NewDraft()
		existing := d.AddQuestion(QuestionText)

		q, ok := p.Merge(d, "s-1")
		require.True(t, ok)

		assert.Equal(t, QuestionCheckbox, q.Type)
		assert.Equal(t, "Which channels do you use?", q.Title)
		assert.Equal(t, []string{"email", "phone", "chat"}, q.Options)
		assert.Equal(t, "Identifies preferred contact channels.", q.Description)
		assert.False(t, q.Required)
		assert.NotEmpty(t, q.LocalID)

		require.Len(t, d.Questions, 2)
		assert.Equal(t, existing.LocalID, d.Questions[0].LocalID)
		assert.Equal(t, q.LocalID, d.Questions[1].LocalID)
		assert.Zero(t, p.Len(), "merged suggestions leave the pool")
	})

	t.Run("merging twice inserts once", func(t *testing.T) {
		p := NewSuggestionPool()
		p.Fill([]Suggestion{{ID: "s-1", Question: "Q?", Type: "text"}})
		d := NewDraft()

		_, ok := p.Merge(d, "s-1")
		require.True(t, ok)
		_, ok = p.Merge(d, "s-1")
		assert.False(t, ok)
		assert.Len(t, d.Questions, 1)
	})

	t.Run("absent id is a no-op", func(t *testing.T) {
		p := NewSuggestionPool()
		p.Fill([]Suggestion{{ID: "s-1", Question: "Q?", Type: "text"}})
		d := NewDraft()

		_, ok := p.Merge(d, "s-999")
		assert.False(t, ok)
		assert.Empty(t, d.Questions)
		assert.Equal(t, 1, p.Len())
	})

	t.Run("rating suggestion without options gets scale defaults", func(t *testing.T) {
		p := NewSuggestionPool()
		p.Fill([]Suggestion{{ID: "s-1", Question: "Rate us", Type: "scale"}})
		d := NewDraft()

		q, ok := p.Merge(d, "s-1")
		require.True(t, ok)
		assert.Equal(t, QuestionRating, q.Type)
		assert.Equal(t, []string{"1", "2", "3", "4", "5"}, q.Options)
		assert.Equal(t, 5, q.MaxRating)
		assert.Equal(t, RatingIconStar, q.RatingIcon)
	})

	t.Run("merged question edits like any other", func(t *testing.T) {
		p := NewSuggestionPool()
		p.Fill([]Suggestion{{ID: "s-1", Question: "Q?", Type: "dropdown", Options: []string{"a"}}})
		d := NewDraft()

		q, ok := p.Merge(d, "s-1")
		require.True(t, ok)

		title := "Edited"
		require.NoError(t, d.UpdateQuestion(q.LocalID, QuestionPatch{Title: &title}))
		require.NoError(t, d.MoveQuestion(q.LocalID, 0))
		require.NoError(t, d.DeleteQuestion(q.LocalID))
		assert.Empty(t, d.Questions)
	})
}
