package domain

// AnswerStatus is the lifecycle status of a record response.
type AnswerStatus string

const (
	// StatusPending marks a record with no response yet.
	StatusPending AnswerStatus = "pending"
	// StatusDraft marks a saved but unsubmitted response.
	StatusDraft AnswerStatus = "draft"
	// StatusSubmitted marks a submitted response.
	StatusSubmitted AnswerStatus = "submitted"
	// StatusDiscarded marks a record the annotator set aside.
	StatusDiscarded AnswerStatus = "discarded"
)

// RecordAnswer is the current user's response to a record.
type RecordAnswer struct {
	// ID is the backend response identifier. Empty for responses that only
	// exist client-side (drafts not yet saved).
	ID string
	// Status is the response lifecycle status.
	Status AnswerStatus
	// Values maps question name to the value(s) given.
	Values map[string]any
}

// Suggestion is a non-authoritative hint value for a question, typically
// model-generated. It never overrides an annotator's answer.
type Suggestion struct {
	// ID is the backend identifier.
	ID string
	// QuestionID links the suggestion to a schema question.
	QuestionID string
	// QuestionName is the schema key of that question.
	QuestionName string
	// Value is the suggested answer value.
	Value any
	// Agent names the generator of the suggestion, when reported.
	Agent string
	// Score is the generator's confidence, when reported.
	Score *float64
}

// Record is one unit of annotation work: the dataset's full schema
// (fields and questions) hydrated with this record's content, the current
// user's answer if any, and zero or more suggestions.
//
// The field and question lists must be the dataset's full schema, not a
// subset. Gaps indicate a schema/record mismatch upstream and are rejected
// during aggregation.
type Record struct {
	// ID is the backend record identifier.
	ID string
	// DatasetID is the owning dataset.
	DatasetID string
	// Fields carries the schema fields with this record's content.
	Fields []Field
	// Questions carries the schema questions, each with its answer slot.
	Questions []Question
	// Answer is the current user's response, nil when unanswered.
	Answer *RecordAnswer
	// Suggestions holds hint values for questions.
	Suggestions []Suggestion
}

// Question returns the question with the given schema name, or nil.
func (r *Record) Question(name string) *Question {
	for i := range r.Questions {
		if r.Questions[i].Name == name {
			return &r.Questions[i]
		}
	}
	return nil
}

// Field returns the field with the given schema name, or nil.
func (r *Record) Field(name string) *Field {
	for i := range r.Fields {
		if r.Fields[i].Name == name {
			return &r.Fields[i]
		}
	}
	return nil
}

// SuggestionFor returns the suggestion targeting the named question, or nil.
func (r *Record) SuggestionFor(questionName string) *Suggestion {
	for i := range r.Suggestions {
		if r.Suggestions[i].QuestionName == questionName {
			return &r.Suggestions[i]
		}
	}
	return nil
}

// ResponseValues collects the values of all validly answered questions,
// keyed by question name. Questions without a valid answer are omitted
// entirely: the backend treats absence as "no response for that question",
// not as an empty value. Iteration follows the schema question order, so
// the result is insertion-order-stable for serialisation.
func (r *Record) ResponseValues() map[string]any {
	values := make(map[string]any)
	for i := range r.Questions {
		q := &r.Questions[i]
		if q.HasValidAnswer() {
			values[q.Name] = q.Answer.Value
		}
	}
	return values
}

// HasResponse reports whether the record carries a backend-persisted response.
func (r *Record) HasResponse() bool {
	return r.Answer != nil && r.Answer.ID != ""
}

// Records is an ordered page of records plus the total count reported for
// the query. Total can exceed len(Items): Items is only the current page.
type Records struct {
	// Items is the current page, in backend order.
	Items []Record
	// Total is the number of records matching the query.
	Total int
}
