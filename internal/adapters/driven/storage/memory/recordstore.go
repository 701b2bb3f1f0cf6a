// Package memory provides in-memory implementations of the storage ports.
// Used by tests and as a fallback when no persistent store is configured.
package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/annotate-cli/internal/core/domain"
	"github.com/custodia-labs/annotate-cli/internal/core/ports/driven"
)

// Ensure RecordStorage implements the interface.
var _ driven.RecordStorage = (*RecordStorage)(nil)

// RecordStorage is an in-memory implementation of driven.RecordStorage.
// Add replaces a dataset's page wholesale; last write wins.
type RecordStorage struct {
	mu    sync.RWMutex
	pages map[string]domain.Records
}

// NewRecordStorage creates a new in-memory record storage.
func NewRecordStorage() *RecordStorage {
	return &RecordStorage{
		pages: make(map[string]domain.Records),
	}
}

// Add stores the aggregated page, replacing any previous page for the dataset.
func (s *RecordStorage) Add(_ context.Context, datasetID string, records *domain.Records) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pages[datasetID] = *records
	return nil
}

// Get returns the stored page for a dataset.
func (s *RecordStorage) Get(_ context.Context, datasetID string) (*domain.Records, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	page, ok := s.pages[datasetID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &page, nil
}

// Clear removes the stored page for a dataset.
func (s *RecordStorage) Clear(_ context.Context, datasetID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pages, datasetID)
	return nil
}

// Len reports how many datasets have a stored page. Test helper.
func (s *RecordStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.pages)
}
