package services

import (
	"context"

	"github.com/custodia-labs/annotate-cli/internal/core/domain"
	"github.com/custodia-labs/annotate-cli/internal/core/ports/driven"
	"github.com/custodia-labs/annotate-cli/internal/core/ports/driving"
)

// Ensure DatasetService implements the interface.
var _ driving.DatasetService = (*DatasetService)(nil)

// DatasetService provides dataset discovery.
type DatasetService struct {
	datasets driven.DatasetRepository
}

// NewDatasetService creates a new dataset service.
func NewDatasetService(datasets driven.DatasetRepository) *DatasetService {
	return &DatasetService{datasets: datasets}
}

// List returns the datasets visible to the current user.
func (s *DatasetService) List(ctx context.Context) ([]domain.Dataset, error) {
	if s.datasets == nil {
		return nil, domain.ErrNotFound
	}
	return s.datasets.ListDatasets(ctx)
}

// Get returns a single dataset by id.
func (s *DatasetService) Get(ctx context.Context, datasetID string) (*domain.Dataset, error) {
	if s.datasets == nil {
		return nil, domain.ErrNotFound
	}
	return s.datasets.GetDataset(ctx, datasetID)
}
