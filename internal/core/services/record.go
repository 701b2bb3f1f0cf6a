package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/annotate-cli/internal/core/domain"
	"github.com/custodia-labs/annotate-cli/internal/core/ports/driven"
	"github.com/custodia-labs/annotate-cli/internal/core/ports/driving"
	"github.com/custodia-labs/annotate-cli/internal/logger"
)

// Ensure RecordService implements the interface.
var _ driving.RecordService = (*RecordService)(nil)

// RecordService aggregates backend records, fields and questions into
// fully-hydrated annotation records.
type RecordService struct {
	records   driven.RecordRepository
	fields    driven.FieldRepository
	questions driven.QuestionRepository
	storage   driven.RecordStorage
}

// NewRecordService creates a new record aggregation service.
func NewRecordService(
	records driven.RecordRepository,
	fields driven.FieldRepository,
	questions driven.QuestionRepository,
	storage driven.RecordStorage,
) *RecordService {
	return &RecordService{
		records:   records,
		fields:    fields,
		questions: questions,
		storage:   storage,
	}
}

// GetRecordsForAnnotate fetches the record page, the field schema and the
// question schema concurrently, joins them into hydrated records, replaces
// the dataset's page in client storage and returns the aggregate.
//
// The three fetches are a fail-fast fan-out: the first failure cancels the
// remaining fetches and aborts the aggregation. Storage is only touched
// after every record hydrated cleanly - no partial record set is ever
// produced or stored.
func (s *RecordService) GetRecordsForAnnotate(
	ctx context.Context, q driving.GetRecordsQuery,
) (*domain.Records, error) {
	logger.Section("Record Aggregation")
	logger.Debug("Dataset: %s, offset: %d, limit: %d, status: %s, search: %q",
		q.DatasetID, q.Offset, q.Limit, q.Status, q.SearchText)

	var (
		page      *driven.RecordPage
		fields    []driven.FieldDescriptor
		questions []driven.QuestionDescriptor
	)

	// g's context is cancelled on the first failure; the original ctx stays
	// live for the storage write below.
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		page, err = s.records.GetRecords(gctx, driven.RecordQuery{
			DatasetID:  q.DatasetID,
			Offset:     q.Offset,
			Limit:      q.Limit,
			Status:     q.Status,
			SearchText: q.SearchText,
		})
		return err
	})
	g.Go(func() error {
		var err error
		fields, err = s.fields.GetFields(gctx, q.DatasetID)
		return err
	})
	g.Go(func() error {
		var err error
		questions, err = s.questions.GetQuestions(gctx, q.DatasetID)
		return err
	})

	if err := g.Wait(); err != nil {
		logger.Warn("Aggregation fetch failed: %v", err)
		return nil, err
	}

	logger.Debug("Fetched %d records, %d fields, %d questions",
		len(page.Records), len(fields), len(questions))

	items := make([]domain.Record, 0, len(page.Records))
	for i := range page.Records {
		rec, err := s.hydrate(q.DatasetID, &page.Records[i], fields, questions)
		if err != nil {
			return nil, err
		}
		items = append(items, *rec)
	}

	records := &domain.Records{Items: items, Total: page.Total}

	if err := s.storage.Add(ctx, q.DatasetID, records); err != nil {
		return nil, err
	}

	logger.Info("Aggregated %d records (total %d)", len(items), records.Total)
	return records, nil
}

// hydrate joins one backend record with the dataset schema.
func (s *RecordService) hydrate(
	datasetID string,
	desc *driven.RecordDescriptor,
	fields []driven.FieldDescriptor,
	questions []driven.QuestionDescriptor,
) (*domain.Record, error) {
	recFields, err := hydrateFields(datasetID, desc, fields)
	if err != nil {
		return nil, err
	}

	answer, err := recordAnswer(desc)
	if err != nil {
		return nil, err
	}

	recQuestions, err := hydrateQuestions(datasetID, desc, questions, answer)
	if err != nil {
		return nil, err
	}

	suggestions, err := recordSuggestions(desc, questions)
	if err != nil {
		return nil, err
	}

	return &domain.Record{
		ID:          desc.ID,
		DatasetID:   datasetID,
		Fields:      recFields,
		Questions:   recQuestions,
		Answer:      answer,
		Suggestions: suggestions,
	}, nil
}

// hydrateFields builds the record's field list: every schema field with
// content on this record, in schema order, carrying this record's content.
// A content key with no matching schema field is a hard aggregation error -
// silently dropping it would corrupt downstream answer validation.
func hydrateFields(
	datasetID string, desc *driven.RecordDescriptor, fields []driven.FieldDescriptor,
) ([]domain.Field, error) {
	known := make(map[string]bool, len(fields))
	for i := range fields {
		known[fields[i].Name] = true
	}
	for name := range desc.Fields {
		if !known[name] {
			return nil, fmt.Errorf("%w: record %s carries field %q",
				domain.ErrSchemaMismatch, desc.ID, name)
		}
	}

	out := make([]domain.Field, 0, len(desc.Fields))
	for i := range fields {
		fd := &fields[i]
		content, ok := desc.Fields[fd.Name]
		if !ok {
			continue
		}
		field, ok := domain.NewField(fd.ID, fd.Name, fd.Title, datasetID, fd.Required, fd.Settings.Type, content)
		if !ok {
			// Unknown backend field type: degrade to the placeholder
			// rather than fail the whole aggregation.
			logger.Warn("Field %q has unknown type %q, degrading to %q",
				fd.Name, fd.Settings.Type, domain.FieldTypeNoMapping)
			field, _ = domain.NewField(fd.ID, fd.Name, fd.Title, datasetID, fd.Required,
				string(domain.FieldTypeNoMapping), content)
		}
		out = append(out, *field)
	}
	return out, nil
}

// hydrateQuestions attaches every schema question to the record, populating
// answer slots from the record's response values. Questions are dataset-wide,
// not record-specific: the full schema is attached to every record.
func hydrateQuestions(
	datasetID string,
	desc *driven.RecordDescriptor,
	questions []driven.QuestionDescriptor,
	answer *domain.RecordAnswer,
) ([]domain.Question, error) {
	known := make(map[string]bool, len(questions))
	for i := range questions {
		known[questions[i].Name] = true
	}
	if answer != nil {
		for name := range answer.Values {
			if !known[name] {
				return nil, fmt.Errorf("%w: response of record %s answers question %q",
					domain.ErrSchemaMismatch, desc.ID, name)
			}
		}
	}

	out := make([]domain.Question, 0, len(questions))
	for i := range questions {
		qd := &questions[i]
		question := domain.Question{
			ID:          qd.ID,
			Name:        qd.Name,
			Title:       qd.Title,
			Description: qd.Description,
			DatasetID:   datasetID,
			Required:    qd.Required,
			Settings:    questionSettings(qd.Settings),
		}
		if answer != nil {
			if value, ok := answer.Values[qd.Name]; ok {
				question.Respond(value)
			}
		}
		out = append(out, question)
	}
	return out, nil
}

// recordAnswer extracts the current user's answer. The backend contract
// allows at most one response per record in this context; more than one is
// a loud failure instead of a silent first-element pick.
func recordAnswer(desc *driven.RecordDescriptor) (*domain.RecordAnswer, error) {
	if len(desc.Responses) > 1 {
		return nil, fmt.Errorf("%w: record %s has %d responses",
			domain.ErrAmbiguousAnswer, desc.ID, len(desc.Responses))
	}
	if len(desc.Responses) == 0 {
		return nil, nil
	}

	resp := desc.Responses[0]
	values := make(map[string]any, len(resp.Values))
	for name, v := range resp.Values {
		values[name] = v.Value
	}
	return &domain.RecordAnswer{
		ID:     resp.ID,
		Status: domain.AnswerStatus(resp.Status),
		Values: values,
	}, nil
}

// recordSuggestions maps backend suggestions one-to-one, resolving the
// question name from the schema. A suggestion targeting an unknown question
// is the same schema desync as an unknown field.
func recordSuggestions(
	desc *driven.RecordDescriptor, questions []driven.QuestionDescriptor,
) ([]domain.Suggestion, error) {
	if len(desc.Suggestions) == 0 {
		return nil, nil
	}

	nameByID := make(map[string]string, len(questions))
	for i := range questions {
		nameByID[questions[i].ID] = questions[i].Name
	}

	out := make([]domain.Suggestion, 0, len(desc.Suggestions))
	for _, sd := range desc.Suggestions {
		name, ok := nameByID[sd.QuestionID]
		if !ok {
			return nil, fmt.Errorf("%w: suggestion %s targets question %s",
				domain.ErrSchemaMismatch, sd.ID, sd.QuestionID)
		}
		out = append(out, domain.Suggestion{
			ID:           sd.ID,
			QuestionID:   sd.QuestionID,
			QuestionName: name,
			Value:        sd.Value,
			Agent:        sd.Agent,
			Score:        sd.Score,
		})
	}
	return out, nil
}

// questionSettings converts the transfer shape into domain settings.
func questionSettings(sd driven.QuestionSettingsDescriptor) domain.QuestionSettings {
	options := make([]domain.QuestionOption, len(sd.Options))
	for i, od := range sd.Options {
		options[i] = domain.QuestionOption{Value: od.Value, Text: od.Text}
	}
	return domain.QuestionSettings{
		Type:        domain.QuestionType(sd.Type),
		Options:     options,
		UseMarkdown: sd.UseMarkdown,
	}
}
