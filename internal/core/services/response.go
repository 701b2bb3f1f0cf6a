package services

import (
	"context"

	"github.com/custodia-labs/annotate-cli/internal/core/domain"
	"github.com/custodia-labs/annotate-cli/internal/core/ports/driven"
	"github.com/custodia-labs/annotate-cli/internal/core/ports/driving"
	"github.com/custodia-labs/annotate-cli/internal/logger"
)

// Ensure ResponseService implements the interface.
var _ driving.ResponseService = (*ResponseService)(nil)

// ResponseService manages the lifecycle of record responses against the
// backend. It serialises nothing itself: payload construction is owned by
// the record repository.
type ResponseService struct {
	records driven.RecordRepository
}

// NewResponseService creates a new response service.
func NewResponseService(records driven.RecordRepository) *ResponseService {
	return &ResponseService{records: records}
}

// Submit creates a submitted response from the record's validly answered
// questions and attaches the created response to the record.
func (s *ResponseService) Submit(ctx context.Context, rec *domain.Record) error {
	resp, err := s.records.CreateResponse(ctx, rec, domain.StatusSubmitted)
	if err != nil {
		return err
	}
	apply(rec, resp)
	logger.Info("Submitted response %s for record %s", rec.Answer.ID, rec.ID)
	return nil
}

// SaveDraft persists the current answers with draft status. A record that
// already has a backend response is updated in place; otherwise a new
// response is created.
func (s *ResponseService) SaveDraft(ctx context.Context, rec *domain.Record) error {
	var (
		resp *driven.ResponseDescriptor
		err  error
	)
	if rec.HasResponse() {
		resp, err = s.records.UpdateResponse(ctx, rec, domain.StatusDraft)
	} else {
		resp, err = s.records.CreateResponse(ctx, rec, domain.StatusDraft)
	}
	if err != nil {
		return err
	}
	apply(rec, resp)
	return nil
}

// Discard marks the record's existing response as discarded.
func (s *ResponseService) Discard(ctx context.Context, rec *domain.Record) error {
	if !rec.HasResponse() {
		return domain.ErrNoRecordResponse
	}
	resp, err := s.records.UpdateResponse(ctx, rec, domain.StatusDiscarded)
	if err != nil {
		return err
	}
	apply(rec, resp)
	logger.Info("Discarded response %s for record %s", rec.Answer.ID, rec.ID)
	return nil
}

// Delete removes the record's response from the backend and clears it on
// the record, returning it to the pending pool.
func (s *ResponseService) Delete(ctx context.Context, rec *domain.Record) error {
	if !rec.HasResponse() {
		return domain.ErrNoRecordResponse
	}
	if err := s.records.DeleteResponse(ctx, rec.Answer.ID); err != nil {
		return err
	}
	rec.Answer = nil
	for i := range rec.Questions {
		rec.Questions[i].ClearAnswer()
	}
	return nil
}

// apply attaches the backend response to the record.
func apply(rec *domain.Record, resp *driven.ResponseDescriptor) {
	values := make(map[string]any, len(resp.Values))
	for name, v := range resp.Values {
		values[name] = v.Value
	}
	rec.Answer = &domain.RecordAnswer{
		ID:     resp.ID,
		Status: domain.AnswerStatus(resp.Status),
		Values: values,
	}
}
