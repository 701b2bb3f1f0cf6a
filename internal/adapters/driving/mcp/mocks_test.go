package mcp

import (
	"context"

	"github.com/custodia-labs/annotate-cli/internal/core/domain"
	"github.com/custodia-labs/annotate-cli/internal/core/ports/driving"
)

// mockRecordService is a mock implementation of driving.RecordService.
type mockRecordService struct {
	records   *domain.Records
	lastQuery driving.GetRecordsQuery
	err       error
}

func (m *mockRecordService) GetRecordsForAnnotate(
	_ context.Context,
	q driving.GetRecordsQuery,
) (*domain.Records, error) {
	m.lastQuery = q
	return m.records, m.err
}

// mockResponseService is a mock implementation of driving.ResponseService.
type mockResponseService struct {
	submitted bool
	drafted   bool
	discarded bool
	deleted   bool
	err       error
}

func (m *mockResponseService) Submit(_ context.Context, rec *domain.Record) error {
	if m.err != nil {
		return m.err
	}
	m.submitted = true
	rec.Answer = &domain.RecordAnswer{ID: "resp-1", Status: domain.StatusSubmitted}
	return nil
}

func (m *mockResponseService) SaveDraft(_ context.Context, rec *domain.Record) error {
	if m.err != nil {
		return m.err
	}
	m.drafted = true
	rec.Answer = &domain.RecordAnswer{ID: "resp-1", Status: domain.StatusDraft}
	return nil
}

func (m *mockResponseService) Discard(_ context.Context, rec *domain.Record) error {
	if m.err != nil {
		return m.err
	}
	if !rec.HasResponse() {
		return domain.ErrNoRecordResponse
	}
	m.discarded = true
	rec.Answer.Status = domain.StatusDiscarded
	return nil
}

func (m *mockResponseService) Delete(_ context.Context, rec *domain.Record) error {
	if m.err != nil {
		return m.err
	}
	m.deleted = true
	rec.Answer = nil
	return nil
}

// mockStorage is an in-memory mock of driven.RecordStorage.
type mockStorage struct {
	pages map[string]*domain.Records
	err   error
}

func (m *mockStorage) Add(_ context.Context, datasetID string, records *domain.Records) error {
	if m.err != nil {
		return m.err
	}
	if m.pages == nil {
		m.pages = make(map[string]*domain.Records)
	}
	m.pages[datasetID] = records
	return nil
}

func (m *mockStorage) Get(_ context.Context, datasetID string) (*domain.Records, error) {
	if m.err != nil {
		return nil, m.err
	}
	page, ok := m.pages[datasetID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return page, nil
}

func (m *mockStorage) Clear(_ context.Context, datasetID string) error {
	delete(m.pages, datasetID)
	return nil
}

// mockDatasetService is a mock implementation of driving.DatasetService.
type mockDatasetService struct {
	datasets []domain.Dataset
	dataset  *domain.Dataset
	err      error
}

func (m *mockDatasetService) List(_ context.Context) ([]domain.Dataset, error) {
	return m.datasets, m.err
}

func (m *mockDatasetService) Get(_ context.Context, _ string) (*domain.Dataset, error) {
	return m.dataset, m.err
}
