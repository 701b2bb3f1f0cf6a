package argilla

import (
	"context"
	"fmt"

	"github.com/custodia-labs/annotate-cli/internal/core/domain"
	"github.com/custodia-labs/annotate-cli/internal/core/ports/driven"
	"github.com/custodia-labs/annotate-cli/internal/logger"
)

// Ensure DatasetRepository implements the interface.
var _ driven.DatasetRepository = (*DatasetRepository)(nil)

// DatasetRepository fetches the datasets visible to the current user.
type DatasetRepository struct {
	client *Client
}

// NewDatasetRepository creates a dataset repository on the shared client.
func NewDatasetRepository(client *Client) *DatasetRepository {
	return &DatasetRepository{client: client}
}

// ListDatasets fetches all datasets the current user can annotate.
// Failures re-signal as domain.ErrFetchingDatasets.
func (r *DatasetRepository) ListDatasets(ctx context.Context) ([]domain.Dataset, error) {
	var dto datasetListDTO
	if err := r.client.get(ctx, "/v1/me/datasets", nil, &dto); err != nil {
		logger.Error("Listing datasets failed: %v", err)
		return nil, domain.ErrFetchingDatasets
	}

	datasets := make([]domain.Dataset, 0, len(dto.Items))
	for _, item := range dto.Items {
		datasets = append(datasets, item.toDomain())
	}
	return datasets, nil
}

// GetDataset fetches a single dataset by id. An unknown id maps to
// domain.ErrNotFound; other failures re-signal as domain.ErrFetchingDatasets.
func (r *DatasetRepository) GetDataset(ctx context.Context, datasetID string) (*domain.Dataset, error) {
	var dto datasetDTO
	path := fmt.Sprintf("/v1/datasets/%s", datasetID)
	if err := r.client.get(ctx, path, nil, &dto); err != nil {
		if IsNotFound(err) {
			return nil, domain.ErrNotFound
		}
		logger.Error("Fetching dataset %s failed: %v", datasetID, err)
		return nil, domain.ErrFetchingDatasets
	}

	dataset := dto.toDomain()
	return &dataset, nil
}
