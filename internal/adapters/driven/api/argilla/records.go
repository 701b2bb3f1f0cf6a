package argilla

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/custodia-labs/annotate-cli/internal/core/domain"
	"github.com/custodia-labs/annotate-cli/internal/core/ports/driven"
	"github.com/custodia-labs/annotate-cli/internal/logger"
)

// Ensure RecordRepository implements the interface.
var _ driven.RecordRepository = (*RecordRepository)(nil)

// RecordRepository talks to the backend's record and response endpoints.
type RecordRepository struct {
	client *Client
}

// NewRecordRepository creates a record repository on the shared client.
func NewRecordRepository(client *Client) *RecordRepository {
	return &RecordRepository{client: client}
}

// GetRecords fetches one page of records with responses and suggestions
// included inline. Non-empty SearchText selects the full-text search
// endpoint, which reports the backend's total match count; the listing
// endpoint has no total of its own, so the page length stands in for it.
//
// Transport failures are logged here and re-signalled as
// domain.ErrFetchingRecords: callers branch on the kind only.
func (r *RecordRepository) GetRecords(ctx context.Context, q driven.RecordQuery) (*driven.RecordPage, error) {
	if q.SearchText != "" {
		return r.searchRecords(ctx, q)
	}
	return r.listRecords(ctx, q)
}

func (r *RecordRepository) listRecords(ctx context.Context, q driven.RecordQuery) (*driven.RecordPage, error) {
	var dto recordListDTO
	path := fmt.Sprintf("/v1/me/datasets/%s/records", q.DatasetID)
	if err := r.client.get(ctx, path, recordQueryValues(q), &dto); err != nil {
		logger.Error("Listing records of dataset %s failed: %v", q.DatasetID, err)
		return nil, domain.ErrFetchingRecords
	}

	records := make([]driven.RecordDescriptor, 0, len(dto.Items))
	for _, item := range dto.Items {
		records = append(records, item.toDescriptor())
	}
	return &driven.RecordPage{Records: records, Total: len(records)}, nil
}

func (r *RecordRepository) searchRecords(ctx context.Context, q driven.RecordQuery) (*driven.RecordPage, error) {
	var body searchQueryDTO
	body.Query.Text.Q = q.SearchText

	var dto searchResultDTO
	path := fmt.Sprintf("/v1/me/datasets/%s/records/search", q.DatasetID)
	if err := r.client.post(ctx, path, recordQueryValues(q), body, &dto); err != nil {
		logger.Error("Searching records of dataset %s failed: %v", q.DatasetID, err)
		return nil, domain.ErrFetchingRecords
	}

	records := make([]driven.RecordDescriptor, 0, len(dto.Items))
	for _, item := range dto.Items {
		records = append(records, item.Record.toDescriptor())
	}
	return &driven.RecordPage{Records: records, Total: dto.Total}, nil
}

// CreateResponse creates a response for the record with the given target
// status. Failures re-signal as domain.ErrCreatingRecordResponse.
func (r *RecordRepository) CreateResponse(
	ctx context.Context, rec *domain.Record, status domain.AnswerStatus,
) (*driven.ResponseDescriptor, error) {
	var dto responseDTO
	path := fmt.Sprintf("/v1/records/%s/responses", rec.ID)
	if err := r.client.post(ctx, path, nil, newResponsePayload(rec, status), &dto); err != nil {
		logger.Error("Creating response for record %s failed: %v", rec.ID, err)
		return nil, domain.ErrCreatingRecordResponse
	}
	desc := dto.toDescriptor()
	return &desc, nil
}

// UpdateResponse updates the record's existing response to the given target
// status. Failures re-signal as domain.ErrUpdatingRecordResponse.
func (r *RecordRepository) UpdateResponse(
	ctx context.Context, rec *domain.Record, status domain.AnswerStatus,
) (*driven.ResponseDescriptor, error) {
	if !rec.HasResponse() {
		return nil, domain.ErrNoRecordResponse
	}

	var dto responseDTO
	path := fmt.Sprintf("/v1/responses/%s", rec.Answer.ID)
	if err := r.client.put(ctx, path, newResponsePayload(rec, status), &dto); err != nil {
		logger.Error("Updating response %s failed: %v", rec.Answer.ID, err)
		return nil, domain.ErrUpdatingRecordResponse
	}
	desc := dto.toDescriptor()
	return &desc, nil
}

// DeleteResponse removes a response by its backend id. Failures re-signal
// as domain.ErrDeletingRecordResponse.
func (r *RecordRepository) DeleteResponse(ctx context.Context, responseID string) error {
	path := fmt.Sprintf("/v1/responses/%s", responseID)
	if err := r.client.delete(ctx, path); err != nil {
		logger.Error("Deleting response %s failed: %v", responseID, err)
		return domain.ErrDeletingRecordResponse
	}
	return nil
}

// recordQueryValues builds the shared query string of both fetch modes.
func recordQueryValues(q driven.RecordQuery) url.Values {
	values := url.Values{}
	values.Add("include", "responses")
	values.Add("include", "suggestions")
	values.Set("offset", strconv.Itoa(q.Offset))
	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Status != "" {
		values.Set("response_status", string(q.Status))
	}
	return values
}
