package driving

import (
	"context"

	"github.com/custodia-labs/annotate-cli/internal/core/domain"
)

// GetRecordsQuery selects the record page to aggregate for annotation.
type GetRecordsQuery struct {
	// DatasetID is the dataset to annotate.
	DatasetID string
	// Offset is the zero-based index of the first record.
	Offset int
	// Limit is the page size.
	Limit int
	// Status filters records by response status.
	Status domain.AnswerStatus
	// SearchText narrows the page by full-text search when non-empty.
	SearchText string
}

// RecordService assembles fully-hydrated records for annotation.
type RecordService interface {
	// GetRecordsForAnnotate fetches the record page and the dataset schema
	// concurrently, joins them into hydrated records, stores the result in
	// client storage and returns it. Any fetch failure aborts the whole
	// aggregation: no partial record set is produced or stored.
	GetRecordsForAnnotate(ctx context.Context, q GetRecordsQuery) (*domain.Records, error)
}

// ResponseService manages the lifecycle of record responses.
type ResponseService interface {
	// Submit creates a submitted response from the record's validly
	// answered questions and attaches the backend response to the record.
	Submit(ctx context.Context, rec *domain.Record) error

	// SaveDraft persists the current answers with draft status, creating
	// or updating the backend response as needed.
	SaveDraft(ctx context.Context, rec *domain.Record) error

	// Discard marks the record's existing response as discarded.
	// Returns domain.ErrNoRecordResponse when the record has none.
	Discard(ctx context.Context, rec *domain.Record) error

	// Delete removes the record's response from the backend and clears it
	// on the record. Returns domain.ErrNoRecordResponse when absent.
	Delete(ctx context.Context, rec *domain.Record) error
}

// DatasetService provides dataset discovery to external actors.
type DatasetService interface {
	// List returns the datasets visible to the current user.
	List(ctx context.Context) ([]domain.Dataset, error)

	// Get returns a single dataset by id.
	Get(ctx context.Context, datasetID string) (*domain.Dataset, error)
}
