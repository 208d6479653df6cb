package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDraft_Defaults(t *testing.T) {
	d := NewDraft()

	assert.Equal(t, StatusDraft, d.Status)
	assert.True(t, d.Settings.ShowProgressBar)
	assert.Equal(t, "light", d.Settings.Theme)
	assert.Empty(t, d.Questions)
}

func TestAddQuestion_DefaultSeeding(t *testing.T) {
	t.Run("choice types get two empty options", func(t *testing.T) {
		for _, typ := range []QuestionType{QuestionRadio, QuestionCheckbox, QuestionSelect} {
			d := NewDraft()
			q := d.AddQuestion(typ)

			assert.Equal(t, []string{"", ""}, q.Options)
			assert.NotEmpty(t, q.LocalID)
			assert.False(t, q.Required)
		}
	})

	t.Run("rating gets a five point scale", func(t *testing.T) {
		d := NewDraft()
		q := d.AddQuestion(QuestionRating)

		assert.Equal(t, []string{"1", "2", "3", "4", "5"}, q.Options)
		assert.Equal(t, 5, q.MaxRating)
		assert.Equal(t, 0, q.RatingValue)
		assert.Equal(t, RatingIconStar, q.RatingIcon)
	})

	t.Run("text types get no options", func(t *testing.T) {
		d := NewDraft()
		q := d.AddQuestion(QuestionText)

		assert.Nil(t, q.Options)
		assert.Zero(t, q.MaxRating)
	})
}

func TestAddQuestion_LocalIDsAreUnique(t *testing.T) {
	d := NewDraft()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		q := d.AddQuestion(QuestionText)
		assert.False(t, seen[q.LocalID], "duplicate local id %s", q.LocalID)
		seen[q.LocalID] = true
	}
}

func TestUpdateQuestion(t *testing.T) {
	t.Run("patches only the provided fields", func(t *testing.T) {
		d := NewDraft()
		q := d.AddQuestion(QuestionRadio)

		title := "Favorite color?"
		required := true
		err := d.UpdateQuestion(q.LocalID, QuestionPatch{Title: &title, Required: &required})
		require.NoError(t, err)

		got, ok := d.Question(q.LocalID)
		require.True(t, ok)
		assert.Equal(t, "Favorite color?", got.Title)
		assert.True(t, got.Required)
		assert.Equal(t, []string{"", ""}, got.Options, "untouched fields keep their value")
		assert.Equal(t, QuestionRadio, got.Type)
	})

	t.Run("unknown id is an error", func(t *testing.T) {
		d := NewDraft()
		d.AddQuestion(QuestionText)

		title := "ghost"
		err := d.UpdateQuestion("q-does-not-exist", QuestionPatch{Title: &title})
		assert.ErrorIs(t, err, ErrQuestionNotFound)
	})

	t.Run("identity survives edits", func(t *testing.T) {
		d := NewDraft()
		q := d.AddQuestion(QuestionText)

		typ := QuestionRating
		require.NoError(t, d.UpdateQuestion(q.LocalID, QuestionPatch{Type: &typ}))

		got, ok := d.Question(q.LocalID)
		require.True(t, ok)
		assert.Equal(t, q.LocalID, got.LocalID)
		assert.Equal(t, QuestionRating, got.Type)
	})
}

func TestDeleteQuestion(t *testing.T) {
	d := NewDraft()
	a := d.AddQuestion(QuestionText)
	b := d.AddQuestion(QuestionRadio)
	c := d.AddQuestion(QuestionRating)

	require.NoError(t, d.DeleteQuestion(b.LocalID))

	require.Len(t, d.Questions, 2)
	assert.Equal(t, a.LocalID, d.Questions[0].LocalID)
	assert.Equal(t, c.LocalID, d.Questions[1].LocalID)

	assert.ErrorIs(t, d.DeleteQuestion(b.LocalID), ErrQuestionNotFound)
}

func TestDuplicateQuestion(t *testing.T) {
	d := NewDraft()
	a := d.AddQuestion(QuestionRadio)
	title := "Pick one"
	opts := []string{"yes", "no"}
	require.NoError(t, d.UpdateQuestion(a.LocalID, QuestionPatch{Title: &title, Options: &opts}))
	b := d.AddQuestion(QuestionText)

	clone, err := d.DuplicateQuestion(a.LocalID)
	require.NoError(t, err)

	assert.NotEqual(t, a.LocalID, clone.LocalID)
	assert.Equal(t, "Pick one (Copy)", clone.Title)
	assert.Equal(t, []string{"yes", "no"}, clone.Options)

	// The clone lands at the end, not next to its source.
	require.Len(t, d.Questions, 3)
	assert.Equal(t, a.LocalID, d.Questions[0].LocalID)
	assert.Equal(t, b.LocalID, d.Questions[1].LocalID)
	assert.Equal(t, clone.LocalID, d.Questions[2].LocalID)

	t.Run("clone options are independent", func(t *testing.T) {
		newOpts := []string{"maybe"}
		require.NoError(t, d.UpdateQuestion(clone.LocalID, QuestionPatch{Options: &newOpts}))

		orig, ok := d.Question(a.LocalID)
		require.True(t, ok)
		assert.Equal(t, []string{"yes", "no"}, orig.Options)
	})

	t.Run("unknown id is an error", func(t *testing.T) {
		_, err := d.DuplicateQuestion("q-missing")
		assert.ErrorIs(t, err, ErrQuestionNotFound)
	})
}

func TestMoveQuestion(t *testing.T) {
	newDraft := func(t *testing.T) (*Draft, []string) {
		d := NewDraft()
		ids := make([]string, 4)
		for i := range ids {
			ids[i] = d.AddQuestion(QuestionText).LocalID
		}
		return d, ids
	}

	order := func(d *Draft) []string {
		out := make([]string, len(d.Questions))
		for i, q := range d.Questions {
			out[i] = q.LocalID
		}
		return out
	}

	t.Run("moves towards the front", func(t *testing.T) {
		d, ids := newDraft(t)
		require.NoError(t, d.MoveQuestion(ids[2], 0))
		assert.Equal(t, []string{ids[2], ids[0], ids[1], ids[3]}, order(d))
	})

	t.Run("moves towards the back", func(t *testing.T) {
		d, ids := newDraft(t)
		require.NoError(t, d.MoveQuestion(ids[0], 2))
		assert.Equal(t, []string{ids[1], ids[2], ids[0], ids[3]}, order(d))
	})

	t.Run("clamps out of range targets", func(t *testing.T) {
		d, ids := newDraft(t)
		require.NoError(t, d.MoveQuestion(ids[1], 99))
		assert.Equal(t, []string{ids[0], ids[2], ids[3], ids[1]}, order(d))

		require.NoError(t, d.MoveQuestion(ids[3], -5))
		assert.Equal(t, []string{ids[3], ids[0], ids[2], ids[1]}, order(d))
	})

	t.Run("unknown id is an error", func(t *testing.T) {
		d, _ := newDraft(t)
		assert.ErrorIs(t, d.MoveQuestion("q-missing", 0), ErrQuestionNotFound)
	})
}

// Editing a freshly built draft end to end: the slice order is the single
// source of presentation order throughout the whole flow.
func TestDraft_EditingFlow(t *testing.T) {
	d := NewDraft()
	d.Title = "Customer feedback"

	intro := d.AddQuestion(QuestionText)
	score := d.AddQuestion(QuestionRating)
	channel := d.AddQuestion(QuestionSelect)

	title := "How did you hear about us?"
	require.NoError(t, d.UpdateQuestion(channel.LocalID, QuestionPatch{Title: &title}))
	require.NoError(t, d.MoveQuestion(channel.LocalID, 0))
	require.NoError(t, d.DeleteQuestion(intro.LocalID))

	require.Len(t, d.Questions, 2)
	assert.Equal(t, channel.LocalID, d.Questions[0].LocalID)
	assert.Equal(t, "How did you hear about us?", d.Questions[0].Title)
	assert.Equal(t, score.LocalID, d.Questions[1].LocalID)
}
