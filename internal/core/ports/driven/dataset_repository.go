package driven

import (
	"context"

	"github.com/custodia-labs/annotate-cli/internal/core/domain"
)

// DatasetRepository wraps the backend's dataset discovery endpoints.
// Failures are re-signalled as domain.ErrFetchingDatasets.
type DatasetRepository interface {
	// ListDatasets fetches the datasets visible to the current user.
	ListDatasets(ctx context.Context) ([]domain.Dataset, error)

	// GetDataset fetches a single dataset by id.
	GetDataset(ctx context.Context, datasetID string) (*domain.Dataset, error)
}
