package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/annotate-cli/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for annotation resources.
	uriScheme = "annotate://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing datasets.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "datasets",
		Name:        "datasets",
		Description: "List of all datasets available for annotation",
		MIMEType:    "application/json",
	}, s.handleDatasetsResource)

	// Template for one dataset's guidelines.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "datasets/{datasetId}/guidelines",
		Name:        "dataset-guidelines",
		Description: "Annotation guidelines of a specific dataset",
		MIMEType:    "text/markdown",
	}, s.handleGuidelinesResource)

	// Template for the cached record page of a dataset.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "datasets/{datasetId}/records",
		Name:        "dataset-records",
		Description: "The last fetched page of records for a specific dataset",
		MIMEType:    "application/json",
	}, s.handleRecordsResource)
}

// handleDatasetsResource returns the list of annotatable datasets.
func (s *Server) handleDatasetsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Datasets == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "[]",
			}},
		}, nil
	}

	datasets, err := s.ports.Datasets.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing datasets: %w", err)
	}

	type datasetInfo struct {
		ID        string `json:"id"`
		Name      string `json:"name"`
		Workspace string `json:"workspace"`
		Status    string `json:"status"`
	}

	infos := make([]datasetInfo, len(datasets))
	for i := range datasets {
		infos[i] = datasetInfo{
			ID:        datasets[i].ID,
			Name:      datasets[i].Name,
			Workspace: datasets[i].WorkspaceID,
			Status:    datasets[i].Status,
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling datasets: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleGuidelinesResource returns one dataset's annotation guidelines.
func (s *Server) handleGuidelinesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Datasets == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	datasetID := extractDatasetID(req.Params.URI, "/guidelines")
	if datasetID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	dataset, err := s.ports.Datasets.Get(ctx, datasetID)
	if err != nil {
		return nil, fmt.Errorf("fetching dataset: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/markdown",
			Text:     dataset.Guidelines,
		}},
	}, nil
}

// handleRecordsResource returns the cached record page of a dataset.
func (s *Server) handleRecordsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Storage == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	datasetID := extractDatasetID(req.Params.URI, "/records")
	if datasetID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	records, err := s.ports.Storage.Get(ctx, datasetID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}
		return nil, fmt.Errorf("loading cached records: %w", err)
	}

	infos := make([]RecordOutput, len(records.Items))
	for i := range records.Items {
		infos[i] = recordOutput(&records.Items[i])
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling records: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractDatasetID extracts the dataset ID from a URI like
// annotate://datasets/{datasetId}{suffix}.
func extractDatasetID(uri, suffix string) string {
	const prefix = uriScheme + "datasets/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	uri = strings.TrimPrefix(uri, prefix)
	if !strings.HasSuffix(uri, suffix) {
		return ""
	}

	return strings.TrimSuffix(uri, suffix)
}
