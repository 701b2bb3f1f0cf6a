package domain

// QuestionType identifies the shape of a question and the validation rules
// for its answers.
type QuestionType string

const (
	// QuestionTypeText is a free-form text answer.
	QuestionTypeText QuestionType = "text"
	// QuestionTypeLabelSelection is a single label from a fixed option set.
	QuestionTypeLabelSelection QuestionType = "label_selection"
	// QuestionTypeMultiLabelSelection is one or more labels from a fixed option set.
	QuestionTypeMultiLabelSelection QuestionType = "multi_label_selection"
	// QuestionTypeRating is a numeric rating from a fixed value set.
	QuestionTypeRating QuestionType = "rating"
	// QuestionTypeRanking is a total ordering of a fixed option set.
	QuestionTypeRanking QuestionType = "ranking"
)

// QuestionOption is one selectable value of a selection or rating question.
type QuestionOption struct {
	// Value is the machine value submitted to the backend.
	Value any
	// Text is the human-readable label. May equal Value.
	Text string
}

// QuestionSettings is the type-specific validation/shape of a question,
// provided by the backend schema.
type QuestionSettings struct {
	// Type selects the validation rules.
	Type QuestionType
	// Options lists the selectable values for selection, rating and
	// ranking questions. Empty for text questions.
	Options []QuestionOption
	// UseMarkdown enables markdown rendering for text questions.
	UseMarkdown bool
}

// Question is a dataset-schema-defined annotation prompt. Questions are
// dataset-wide: every record of the dataset carries the full question list,
// each instance with its own answer slot.
type Question struct {
	// ID is the backend identifier.
	ID string
	// Name is the schema key. Response values are keyed by it.
	Name string
	// Title is the prompt shown to annotators.
	Title string
	// Description is optional guidance below the title.
	Description string
	// DatasetID is the owning dataset.
	DatasetID string
	// Required indicates an answer must be present before submit.
	Required bool
	// Settings carries the type-specific validation/shape.
	Settings QuestionSettings
	// Answer is this record's answer, nil when unanswered.
	Answer *Answer
}

// Answer is the value an annotator gave to one question instance.
type Answer struct {
	// Value holds the raw answer: string for text and label selection,
	// []string for multi-label and ranking, number for rating.
	Value any
}

// IsAnswered reports whether an answer value is present.
func (q *Question) IsAnswered() bool {
	return q.Answer != nil && q.Answer.Value != nil
}

// HasValidAnswer reports whether the current answer satisfies the question
// settings. Unanswered questions are never valid. Questions without a valid
// answer are omitted entirely from response payloads.
func (q *Question) HasValidAnswer() bool {
	if !q.IsAnswered() {
		return false
	}
	return q.Settings.validate(q.Answer.Value)
}

// Respond sets the answer value. Validation happens at payload time, not
// here: annotators may hold partial answers while working.
func (q *Question) Respond(value any) {
	q.Answer = &Answer{Value: value}
}

// ClearAnswer removes the answer.
func (q *Question) ClearAnswer() {
	q.Answer = nil
}

// validate applies the per-type rules to a candidate value.
func (s QuestionSettings) validate(value any) bool {
	switch s.Type {
	case QuestionTypeText:
		v, ok := value.(string)
		return ok && v != ""
	case QuestionTypeLabelSelection:
		v, ok := value.(string)
		if !ok || v == "" {
			return false
		}
		return s.hasOption(v)
	case QuestionTypeMultiLabelSelection:
		labels, ok := toStringSlice(value)
		if !ok || len(labels) == 0 {
			return false
		}
		for _, l := range labels {
			if !s.hasOption(l) {
				return false
			}
		}
		return true
	case QuestionTypeRating:
		n, ok := toFloat(value)
		if !ok {
			return false
		}
		for _, opt := range s.Options {
			if o, okOpt := toFloat(opt.Value); okOpt && o == n {
				return true
			}
		}
		return false
	case QuestionTypeRanking:
		ranked, ok := toStringSlice(value)
		// A ranking is valid only when it orders the full option set.
		if !ok || len(ranked) != len(s.Options) {
			return false
		}
		seen := make(map[string]bool, len(ranked))
		for _, r := range ranked {
			if seen[r] || !s.hasOption(r) {
				return false
			}
			seen[r] = true
		}
		return true
	}
	return false
}

// hasOption reports whether v matches an option value. Questions with no
// options accept any value (backend-side validation owns those).
func (s QuestionSettings) hasOption(v string) bool {
	if len(s.Options) == 0 {
		return true
	}
	for _, opt := range s.Options {
		if ov, ok := opt.Value.(string); ok && ov == v {
			return true
		}
	}
	return false
}

// toStringSlice normalises []string and []any (JSON decoding yields the
// latter) into []string.
func toStringSlice(value any) ([]string, bool) {
	switch v := value.(type) {
	case []string:
		return v, true
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}
	return nil, false
}

// toFloat normalises the numeric types JSON decoding and callers produce.
func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}
