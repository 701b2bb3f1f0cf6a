package driven

import "context"

// FieldDescriptor is the transfer shape of a schema field definition.
type FieldDescriptor struct {
	// ID is the backend identifier.
	ID string
	// Name is the schema key record field content is keyed by.
	Name string
	// Title is the display name.
	Title string
	// Required indicates the field must be shown to annotators.
	Required bool
	// Settings carries the field's type tag and rendering hints.
	Settings FieldSettingsDescriptor
}

// FieldSettingsDescriptor mirrors the backend field settings object.
type FieldSettingsDescriptor struct {
	// Type is the raw backend type string. Unknown values degrade to the
	// "no mapping" field type during aggregation.
	Type string
	// UseMarkdown enables markdown rendering for text fields.
	UseMarkdown bool
}

// QuestionDescriptor is the transfer shape of a schema question definition.
type QuestionDescriptor struct {
	ID          string
	Name        string
	Title       string
	Description string
	Required    bool
	Settings    QuestionSettingsDescriptor
}

// QuestionSettingsDescriptor mirrors the backend question settings object.
type QuestionSettingsDescriptor struct {
	Type        string
	Options     []OptionDescriptor
	UseMarkdown bool
}

// OptionDescriptor is one selectable option of a question.
type OptionDescriptor struct {
	Value any
	Text  string
}

// FieldRepository wraps the backend's field schema endpoint.
// Failures are re-signalled as domain.ErrFetchingFields.
type FieldRepository interface {
	// GetFields fetches the dataset's full field schema.
	GetFields(ctx context.Context, datasetID string) ([]FieldDescriptor, error)
}

// QuestionRepository wraps the backend's question schema endpoint.
// Failures are re-signalled as domain.ErrFetchingQuestions.
type QuestionRepository interface {
	// GetQuestions fetches the dataset's full question schema.
	GetQuestions(ctx context.Context, datasetID string) ([]QuestionDescriptor, error)
}
