package argilla

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/annotate-cli/internal/core/domain"
)

func TestFieldRepository_GetFields(t *testing.T) {
	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{
			"items": [
				{"id": "f1", "name": "text", "title": "Text", "required": true,
				 "settings": {"type": "text", "use_markdown": true}},
				{"id": "f2", "name": "screenshot", "title": "Screenshot",
				 "settings": {"type": "image"}}
			]
		}`))
	})
	repo := NewFieldRepository(client)

	fields, err := repo.GetFields(context.Background(), "ds1")
	require.NoError(t, err)

	assert.Equal(t, "/v1/datasets/ds1/fields", gotPath)
	require.Len(t, fields, 2)
	assert.Equal(t, "text", fields[0].Name)
	assert.True(t, fields[0].Required)
	assert.Equal(t, "text", fields[0].Settings.Type)
	assert.True(t, fields[0].Settings.UseMarkdown)
	assert.Equal(t, "image", fields[1].Settings.Type)
}

func TestFieldRepository_GetFields_FailureMapsToSentinel(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	repo := NewFieldRepository(client)

	_, err := repo.GetFields(context.Background(), "ds1")

	assert.ErrorIs(t, err, domain.ErrFetchingFields)
}

func TestQuestionRepository_GetQuestions(t *testing.T) {
	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{
			"items": [
				{"id": "q1", "name": "label", "title": "Label", "required": true,
				 "description": "Pick the sentiment",
				 "settings": {
					"type": "label_selection",
					"options": [
						{"value": "positive", "text": "Positive"},
						{"value": "negative", "text": "Negative"}
					]
				 }},
				{"id": "q2", "name": "quality", "settings": {
					"type": "rating",
					"options": [{"value": 1, "text": "1"}, {"value": 2, "text": "2"}]
				}}
			]
		}`))
	})
	repo := NewQuestionRepository(client)

	questions, err := repo.GetQuestions(context.Background(), "ds1")
	require.NoError(t, err)

	assert.Equal(t, "/v1/datasets/ds1/questions", gotPath)
	require.Len(t, questions, 2)

	q := questions[0]
	assert.Equal(t, "label", q.Name)
	assert.Equal(t, "Pick the sentiment", q.Description)
	assert.Equal(t, "label_selection", q.Settings.Type)
	require.Len(t, q.Settings.Options, 2)
	assert.Equal(t, "positive", q.Settings.Options[0].Value)

	// JSON numbers decode as float64; the domain rating validator handles it.
	assert.Equal(t, "rating", questions[1].Settings.Type)
	assert.Equal(t, float64(1), questions[1].Settings.Options[0].Value)
}

func TestQuestionRepository_GetQuestions_FailureMapsToSentinel(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	repo := NewQuestionRepository(client)

	_, err := repo.GetQuestions(context.Background(), "ds1")

	assert.ErrorIs(t, err, domain.ErrFetchingQuestions)
}
