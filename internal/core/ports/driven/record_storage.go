package driven

import (
	"context"

	"github.com/custodia-labs/annotate-cli/internal/core/domain"
)

// RecordStorage persists aggregated records on the client so the UI can
// read and edit them between fetches.
//
// Add replaces the stored page for the records' dataset: re-fetching a
// dataset overwrites its previous page, last write wins. Two overlapping
// aggregations therefore race benignly. Ownership of record mutation after
// Add (answer edits in the UI) is external to the aggregation core.
type RecordStorage interface {
	// Add stores the aggregated page, replacing any previous page for the
	// same dataset.
	Add(ctx context.Context, datasetID string, records *domain.Records) error

	// Get returns the stored page for a dataset.
	// Returns domain.ErrNotFound when no page is stored.
	Get(ctx context.Context, datasetID string) (*domain.Records, error)

	// Clear removes the stored page for a dataset.
	Clear(ctx context.Context, datasetID string) error
}
