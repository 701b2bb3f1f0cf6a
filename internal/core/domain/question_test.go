package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func labelQuestion(name string, options ...string) Question {
	opts := make([]QuestionOption, len(options))
	for i, o := range options {
		opts[i] = QuestionOption{Value: o, Text: o}
	}
	return Question{
		ID:       "q-" + name,
		Name:     name,
		Title:    name,
		Settings: QuestionSettings{Type: QuestionTypeLabelSelection, Options: opts},
	}
}

func TestQuestion_IsAnswered(t *testing.T) {
	q := labelQuestion("sentiment", "positive", "negative")

	assert.False(t, q.IsAnswered())

	q.Respond("positive")
	assert.True(t, q.IsAnswered())

	q.ClearAnswer()
	assert.False(t, q.IsAnswered())
}

func TestQuestion_HasValidAnswer_Text(t *testing.T) {
	q := Question{Name: "comment", Settings: QuestionSettings{Type: QuestionTypeText}}

	assert.False(t, q.HasValidAnswer(), "unanswered is never valid")

	q.Respond("")
	assert.False(t, q.HasValidAnswer(), "empty text is not valid")

	q.Respond("looks good")
	assert.True(t, q.HasValidAnswer())

	q.Respond(42)
	assert.False(t, q.HasValidAnswer(), "non-string text answer is not valid")
}

func TestQuestion_HasValidAnswer_LabelSelection(t *testing.T) {
	q := labelQuestion("sentiment", "positive", "negative")

	q.Respond("positive")
	assert.True(t, q.HasValidAnswer())

	q.Respond("neutral")
	assert.False(t, q.HasValidAnswer(), "label outside the option set is not valid")

	q.Respond("")
	assert.False(t, q.HasValidAnswer())
}

func TestQuestion_HasValidAnswer_MultiLabelSelection(t *testing.T) {
	q := Question{
		Name: "topics",
		Settings: QuestionSettings{
			Type: QuestionTypeMultiLabelSelection,
			Options: []QuestionOption{
				{Value: "sports"}, {Value: "politics"}, {Value: "tech"},
			},
		},
	}

	q.Respond([]string{"sports", "tech"})
	assert.True(t, q.HasValidAnswer())

	// JSON decoding yields []any, which must be accepted too.
	q.Respond([]any{"politics"})
	assert.True(t, q.HasValidAnswer())

	q.Respond([]string{})
	assert.False(t, q.HasValidAnswer(), "empty selection is not valid")

	q.Respond([]string{"sports", "cooking"})
	assert.False(t, q.HasValidAnswer(), "unknown label is not valid")
}

func TestQuestion_HasValidAnswer_Rating(t *testing.T) {
	q := Question{
		Name: "quality",
		Settings: QuestionSettings{
			Type: QuestionTypeRating,
			Options: []QuestionOption{
				{Value: 1}, {Value: 2}, {Value: 3},
			},
		},
	}

	q.Respond(2)
	assert.True(t, q.HasValidAnswer())

	// Backend responses decode numbers as float64.
	q.Respond(float64(3))
	assert.True(t, q.HasValidAnswer())

	q.Respond(7)
	assert.False(t, q.HasValidAnswer(), "rating outside the value set is not valid")

	q.Respond("2")
	assert.False(t, q.HasValidAnswer(), "string rating is not valid")
}

func TestQuestion_HasValidAnswer_Ranking(t *testing.T) {
	q := Question{
		Name: "preference",
		Settings: QuestionSettings{
			Type: QuestionTypeRanking,
			Options: []QuestionOption{
				{Value: "a"}, {Value: "b"}, {Value: "c"},
			},
		},
	}

	q.Respond([]string{"b", "a", "c"})
	assert.True(t, q.HasValidAnswer())

	q.Respond([]string{"b", "a"})
	assert.False(t, q.HasValidAnswer(), "partial ranking is not valid")

	q.Respond([]string{"b", "a", "a"})
	assert.False(t, q.HasValidAnswer(), "duplicate entries are not valid")

	q.Respond([]string{"b", "a", "z"})
	assert.False(t, q.HasValidAnswer(), "unknown entries are not valid")
}

func TestQuestion_Respond_OverwritesPreviousAnswer(t *testing.T) {
	q := labelQuestion("sentiment", "positive", "negative")

	q.Respond("positive")
	q.Respond("negative")

	require.NotNil(t, q.Answer)
	assert.Equal(t, "negative", q.Answer.Value)
}
