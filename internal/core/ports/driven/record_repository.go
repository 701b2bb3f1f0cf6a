package driven

import (
	"context"

	"github.com/custodia-labs/annotate-cli/internal/core/domain"
)

// RecordQuery selects a page of records for annotation.
type RecordQuery struct {
	// DatasetID is the dataset to page through.
	DatasetID string
	// Offset is the zero-based index of the first record.
	Offset int
	// Limit is the page size.
	Limit int
	// Status filters by response status (pending, draft, submitted, discarded).
	Status domain.AnswerStatus
	// SearchText switches the repository to the full-text search endpoint
	// when non-empty.
	SearchText string
}

// RecordPage is one page of backend records plus the total count.
//
// The two fetch modes report Total differently: search mode passes through
// the backend's total (which can exceed the page length), listing mode
// reports the page length because the endpoint has no separate total. The
// asymmetry is part of the backend contract and is preserved as-is.
type RecordPage struct {
	Records []RecordDescriptor
	Total   int
}

// RecordDescriptor is the transfer shape of one backend record.
type RecordDescriptor struct {
	// ID is the backend record identifier.
	ID string
	// Fields maps schema field name to this record's content.
	Fields map[string]any
	// Responses holds the current user's responses. The backend contract
	// allows at most one; aggregation enforces it.
	Responses []ResponseDescriptor
	// Suggestions holds hint values for questions.
	Suggestions []SuggestionDescriptor
}

// ResponseDescriptor is the transfer shape of a record response.
type ResponseDescriptor struct {
	// ID is the backend response identifier.
	ID string
	// Status is the response lifecycle status string.
	Status string
	// Values maps question name to the value given.
	Values map[string]ValueDescriptor
}

// ValueDescriptor wraps a single answer value, mirroring the backend's
// {"value": ...} envelope.
type ValueDescriptor struct {
	Value any
}

// SuggestionDescriptor is the transfer shape of a suggestion.
type SuggestionDescriptor struct {
	ID         string
	QuestionID string
	Value      any
	Agent      string
	Score      *float64
}

// RecordRepository wraps the backend's record and response endpoints.
//
// Error contract: every transport failure is re-signalled as the matching
// domain sentinel (domain.ErrFetchingRecords, ErrCreatingRecordResponse,
// ErrUpdatingRecordResponse, ErrDeletingRecordResponse). Callers branch on
// the kind, never on transport detail.
type RecordRepository interface {
	// GetRecords fetches one page of records with responses and suggestions
	// included inline. Non-empty SearchText selects the search endpoint.
	GetRecords(ctx context.Context, q RecordQuery) (*RecordPage, error)

	// CreateResponse creates a response for the record with the given target
	// status, serialising the record's validly answered questions. Returns
	// the created response as reported by the backend.
	CreateResponse(ctx context.Context, rec *domain.Record, status domain.AnswerStatus) (*ResponseDescriptor, error)

	// UpdateResponse updates the record's existing response to the given
	// target status, re-serialising the answered questions. The record must
	// carry a backend response id.
	UpdateResponse(ctx context.Context, rec *domain.Record, status domain.AnswerStatus) (*ResponseDescriptor, error)

	// DeleteResponse removes a response by its backend id.
	DeleteResponse(ctx context.Context, responseID string) error
}
