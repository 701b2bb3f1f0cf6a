package argilla

import (
	"context"
	"fmt"

	"github.com/custodia-labs/annotate-cli/internal/core/domain"
	"github.com/custodia-labs/annotate-cli/internal/core/ports/driven"
	"github.com/custodia-labs/annotate-cli/internal/logger"
)

// Ensure the schema repositories implement their interfaces.
var (
	_ driven.FieldRepository    = (*FieldRepository)(nil)
	_ driven.QuestionRepository = (*QuestionRepository)(nil)
)

// FieldRepository fetches dataset field schemas.
type FieldRepository struct {
	client *Client
}

// NewFieldRepository creates a field repository on the shared client.
func NewFieldRepository(client *Client) *FieldRepository {
	return &FieldRepository{client: client}
}

// GetFields fetches the dataset's full field schema. Failures re-signal as
// domain.ErrFetchingFields.
func (r *FieldRepository) GetFields(ctx context.Context, datasetID string) ([]driven.FieldDescriptor, error) {
	var dto fieldListDTO
	path := fmt.Sprintf("/v1/datasets/%s/fields", datasetID)
	if err := r.client.get(ctx, path, nil, &dto); err != nil {
		logger.Error("Fetching fields of dataset %s failed: %v", datasetID, err)
		return nil, domain.ErrFetchingFields
	}

	fields := make([]driven.FieldDescriptor, 0, len(dto.Items))
	for _, item := range dto.Items {
		fields = append(fields, item.toDescriptor())
	}
	return fields, nil
}

// QuestionRepository fetches dataset question schemas.
type QuestionRepository struct {
	client *Client
}

// NewQuestionRepository creates a question repository on the shared client.
func NewQuestionRepository(client *Client) *QuestionRepository {
	return &QuestionRepository{client: client}
}

// GetQuestions fetches the dataset's full question schema. Failures
// re-signal as domain.ErrFetchingQuestions.
func (r *QuestionRepository) GetQuestions(ctx context.Context, datasetID string) ([]driven.QuestionDescriptor, error) {
	var dto questionListDTO
	path := fmt.Sprintf("/v1/datasets/%s/questions", datasetID)
	if err := r.client.get(ctx, path, nil, &dto); err != nil {
		logger.Error("Fetching questions of dataset %s failed: %v", datasetID, err)
		return nil, domain.ErrFetchingQuestions
	}

	questions := make([]driven.QuestionDescriptor, 0, len(dto.Items))
	for _, item := range dto.Items {
		questions = append(questions, item.toDescriptor())
	}
	return questions, nil
}
