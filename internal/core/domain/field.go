package domain

// FieldType tags the rendering shape of a field.
type FieldType string

const (
	// FieldTypeNoMapping is the degraded placeholder for fields the client
	// has no renderer for. The backend can introduce new field types at any
	// time; unknown types must degrade to this rather than fail.
	FieldTypeNoMapping FieldType = "no mapping"
	// FieldTypeText is a plain or markdown text field.
	FieldTypeText FieldType = "text"
	// FieldTypeImage is an image field referenced by URL or data URI.
	FieldTypeImage FieldType = "image"
	// FieldTypeChat is a conversation field: an ordered list of turns.
	FieldTypeChat FieldType = "chat"
	// FieldTypeCustom is a backend-templated field. Never produced by
	// ParseFieldType; carried only so accessors stay total.
	FieldTypeCustom FieldType = "custom"
)

// ParseFieldType validates a backend type string against the closed set of
// renderable field types. The match is exact: case variants and unknown
// strings return ok=false. Absence is not an error - it means the field
// cannot be constructed and the caller decides the fallback.
func ParseFieldType(s string) (FieldType, bool) {
	switch FieldType(s) {
	case FieldTypeNoMapping, FieldTypeText, FieldTypeImage, FieldTypeChat:
		return FieldType(s), true
	}
	return "", false
}

// Field is a dataset-schema-defined input surface rendered per record.
// The schema part (ID, Name, Title, Required, Type) is shared by every
// record of the dataset; Content carries this record's value.
type Field struct {
	// ID is the backend identifier of the schema field.
	ID string
	// Name is the schema key. Record field content is keyed by it.
	Name string
	// Title is the human-readable display name.
	Title string
	// DatasetID is the owning dataset.
	DatasetID string
	// Required indicates the field must be shown to annotators.
	Required bool
	// Type is the validated rendering tag.
	Type FieldType
	// Content is this record's value: a string for text fields, a URL for
	// image fields, a list of turns for chat fields.
	Content any
}

// NewField constructs a Field, validating ftype against the closed type set.
// Returns (nil, false) for unrecognised types: the canonical "unknown schema
// type" rejection path. Callers treat absence as "field cannot be created,
// schema mismatch", not as an error to propagate.
func NewField(id, name, title, datasetID string, required bool, ftype string, content any) (*Field, bool) {
	t, ok := ParseFieldType(ftype)
	if !ok {
		return nil, false
	}
	if title == "" {
		title = name
	}
	return &Field{
		ID:        id,
		Name:      name,
		Title:     title,
		DatasetID: datasetID,
		Required:  required,
		Type:      t,
		Content:   content,
	}, true
}

// IsTextType reports whether the field renders as text.
func (f *Field) IsTextType() bool { return f.Type == FieldTypeText }

// IsImageType reports whether the field renders as an image.
func (f *Field) IsImageType() bool { return f.Type == FieldTypeImage }

// IsChatType reports whether the field renders as a conversation.
func (f *Field) IsChatType() bool { return f.Type == FieldTypeChat }

// IsCustomType reports whether the field uses a backend-provided template.
func (f *Field) IsCustomType() bool { return f.Type == FieldTypeCustom }

// MarkAsRequired flags the field as required for display.
func (f *Field) MarkAsRequired() { f.Required = true }
