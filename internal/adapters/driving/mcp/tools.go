package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/annotate-cli/internal/core/domain"
	"github.com/custodia-labs/annotate-cli/internal/core/ports/driving"
)

// FetchRecordsInput is the input schema for the fetch_records tool.
type FetchRecordsInput struct {
	DatasetID string `json:"dataset_id" jsonschema:"the dataset to fetch records from"`
	Offset    int    `json:"offset,omitempty" jsonschema:"index of the first record (default 0)"`
	Limit     int    `json:"limit,omitempty" jsonschema:"maximum number of records to return (default 10)"`
	Status    string `json:"status,omitempty" jsonschema:"filter by response status: pending, draft, submitted or discarded"`
	Search    string `json:"search,omitempty" jsonschema:"full-text search query; when set the total is the backend match count"`
}

// FetchRecordsOutput is the output schema for the fetch_records tool.
type FetchRecordsOutput struct {
	Records []RecordOutput `json:"records"`
	Count   int            `json:"count"`
	Total   int            `json:"total"`
}

// RecordOutput represents a single record prepared for annotation.
type RecordOutput struct {
	ID        string           `json:"id"`
	Status    string           `json:"status"`
	Fields    map[string]any   `json:"fields"`
	Questions []QuestionOutput `json:"questions"`
}

// QuestionOutput represents a question with its current answer state.
type QuestionOutput struct {
	Name       string `json:"name"`
	Title      string `json:"title"`
	Type       string `json:"type"`
	Required   bool   `json:"required"`
	Answer     any    `json:"answer,omitempty"`
	Suggestion any    `json:"suggestion,omitempty"`
}

// SubmitResponseInput is the input schema for the submit_response tool.
type SubmitResponseInput struct {
	DatasetID string         `json:"dataset_id" jsonschema:"the dataset the record belongs to"`
	RecordID  string         `json:"record_id" jsonschema:"the record to respond to; must be in the last fetched page"`
	Answers   map[string]any `json:"answers" jsonschema:"answers keyed by question name"`
	Draft     bool           `json:"draft,omitempty" jsonschema:"save as draft instead of submitting"`
}

// DiscardRecordInput is the input schema for the discard_record tool.
type DiscardRecordInput struct {
	DatasetID string `json:"dataset_id" jsonschema:"the dataset the record belongs to"`
	RecordID  string `json:"record_id" jsonschema:"the record to discard; must carry an existing response"`
}

// ResponseOutput is the output schema of the response tools.
type ResponseOutput struct {
	RecordID   string `json:"record_id"`
	ResponseID string `json:"response_id"`
	Status     string `json:"status"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "fetch_records",
		Description: "Fetch a page of records with their fields, questions and suggestions",
	}, s.handleFetchRecords)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "submit_response",
		Description: "Submit or draft answers for a previously fetched record",
	}, s.handleSubmitResponse)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "discard_record",
		Description: "Mark a previously fetched record's response as discarded",
	}, s.handleDiscardRecord)
}

// handleFetchRecords handles the fetch_records tool invocation.
func (s *Server) handleFetchRecords(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input FetchRecordsInput,
) (*mcp.CallToolResult, FetchRecordsOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = 10
	}

	records, err := s.ports.Records.GetRecordsForAnnotate(ctx, driving.GetRecordsQuery{
		DatasetID:  input.DatasetID,
		Offset:     input.Offset,
		Limit:      limit,
		Status:     domain.AnswerStatus(input.Status),
		SearchText: input.Search,
	})
	if err != nil {
		return nil, FetchRecordsOutput{}, err
	}

	output := FetchRecordsOutput{
		Records: make([]RecordOutput, len(records.Items)),
		Count:   len(records.Items),
		Total:   records.Total,
	}
	for i := range records.Items {
		output.Records[i] = recordOutput(&records.Items[i])
	}
	return nil, output, nil
}

// handleSubmitResponse handles the submit_response tool invocation.
func (s *Server) handleSubmitResponse(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SubmitResponseInput,
) (*mcp.CallToolResult, ResponseOutput, error) {
	if s.ports.Responses == nil {
		return nil, ResponseOutput{}, errors.New("response service not configured")
	}

	rec, err := s.findRecord(ctx, input.DatasetID, input.RecordID)
	if err != nil {
		return nil, ResponseOutput{}, err
	}

	for name, value := range input.Answers {
		q := rec.Question(name)
		if q == nil {
			return nil, ResponseOutput{}, fmt.Errorf("unknown question %q", name)
		}
		q.Respond(value)
		if !q.HasValidAnswer() {
			return nil, ResponseOutput{}, fmt.Errorf("invalid answer for question %q", name)
		}
	}

	if input.Draft {
		err = s.ports.Responses.SaveDraft(ctx, rec)
	} else {
		err = s.ports.Responses.Submit(ctx, rec)
	}
	if err != nil {
		return nil, ResponseOutput{}, err
	}

	return nil, ResponseOutput{
		RecordID:   rec.ID,
		ResponseID: rec.Answer.ID,
		Status:     string(rec.Answer.Status),
	}, nil
}

// handleDiscardRecord handles the discard_record tool invocation.
func (s *Server) handleDiscardRecord(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input DiscardRecordInput,
) (*mcp.CallToolResult, ResponseOutput, error) {
	if s.ports.Responses == nil {
		return nil, ResponseOutput{}, errors.New("response service not configured")
	}

	rec, err := s.findRecord(ctx, input.DatasetID, input.RecordID)
	if err != nil {
		return nil, ResponseOutput{}, err
	}

	if err := s.ports.Responses.Discard(ctx, rec); err != nil {
		return nil, ResponseOutput{}, err
	}

	return nil, ResponseOutput{
		RecordID:   rec.ID,
		ResponseID: rec.Answer.ID,
		Status:     string(rec.Answer.Status),
	}, nil
}

// findRecord resolves a record id against the locally cached page.
func (s *Server) findRecord(ctx context.Context, datasetID, recordID string) (*domain.Record, error) {
	if s.ports.Storage == nil {
		return nil, errors.New("record storage not configured")
	}

	records, err := s.ports.Storage.Get(ctx, datasetID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errors.New("no fetched records for this dataset: call fetch_records first")
		}
		return nil, fmt.Errorf("loading cached records: %w", err)
	}

	for i := range records.Items {
		if records.Items[i].ID == recordID {
			return &records.Items[i], nil
		}
	}
	return nil, fmt.Errorf("record %s is not in the fetched page", recordID)
}

// recordOutput flattens one hydrated record into the tool output shape.
func recordOutput(rec *domain.Record) RecordOutput {
	status := domain.StatusPending
	if rec.Answer != nil {
		status = rec.Answer.Status
	}

	fields := make(map[string]any, len(rec.Fields))
	for i := range rec.Fields {
		fields[rec.Fields[i].Name] = rec.Fields[i].Content
	}

	questions := make([]QuestionOutput, len(rec.Questions))
	for i := range rec.Questions {
		q := &rec.Questions[i]
		out := QuestionOutput{
			Name:     q.Name,
			Title:    q.Title,
			Type:     string(q.Settings.Type),
			Required: q.Required,
		}
		if q.IsAnswered() {
			out.Answer = q.Answer.Value
		}
		if suggestion := rec.SuggestionFor(q.Name); suggestion != nil {
			out.Suggestion = suggestion.Value
		}
		questions[i] = out
	}

	return RecordOutput{
		ID:        rec.ID,
		Status:    string(status),
		Fields:    fields,
		Questions: questions,
	}
}
