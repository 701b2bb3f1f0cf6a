// Package mcp provides an MCP (Model Context Protocol) server adapter for
// the annotation client. It enables AI assistants to fetch records, inspect
// datasets and submit annotation responses.
package mcp

import "errors"

// ErrMissingRecordService is returned when the record service is not provided.
var ErrMissingRecordService = errors.New("mcp: record service is required")
