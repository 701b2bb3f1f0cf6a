package mcp

import (
	"github.com/custodia-labs/annotate-cli/internal/core/ports/driven"
	"github.com/custodia-labs/annotate-cli/internal/core/ports/driving"
)

// Ports aggregates all port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Records fetches hydrated records for annotation.
	Records driving.RecordService

	// Responses manages response lifecycles.
	Responses driving.ResponseService

	// Datasets provides dataset discovery.
	Datasets driving.DatasetService

	// Storage holds the locally cached record pages the response tools
	// resolve record ids against.
	Storage driven.RecordStorage
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Records == nil {
		return ErrMissingRecordService
	}
	// Responses, Datasets and Storage are optional: the matching tools and
	// resources degrade when absent.
	return nil
}
