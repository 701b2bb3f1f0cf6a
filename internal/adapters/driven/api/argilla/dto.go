package argilla

import (
	"time"

	"github.com/custodia-labs/annotate-cli/internal/core/domain"
	"github.com/custodia-labs/annotate-cli/internal/core/ports/driven"
)

// Wire shapes for the backend's JSON API. Converters keep the mapping to
// port descriptors in one place so the repositories stay endpoint logic only.

type recordListDTO struct {
	Items []recordDTO `json:"items"`
}

type searchResultDTO struct {
	Items []searchItemDTO `json:"items"`
	Total int             `json:"total"`
}

// searchItemDTO wraps the record: search results nest it under "record"
// next to the relevance score.
type searchItemDTO struct {
	Record recordDTO `json:"record"`
	Score  *float64  `json:"query_score"`
}

type recordDTO struct {
	ID          string          `json:"id"`
	Fields      map[string]any  `json:"fields"`
	Responses   []responseDTO   `json:"responses"`
	Suggestions []suggestionDTO `json:"suggestions"`
}

type responseDTO struct {
	ID     string              `json:"id"`
	Status string              `json:"status"`
	Values map[string]valueDTO `json:"values"`
}

type valueDTO struct {
	Value any `json:"value"`
}

type suggestionDTO struct {
	ID         string   `json:"id"`
	QuestionID string   `json:"question_id"`
	Value      any      `json:"value"`
	Agent      string   `json:"agent"`
	Score      *float64 `json:"score"`
}

// responsePayloadDTO is the request body for creating or updating a response.
type responsePayloadDTO struct {
	Values map[string]valueDTO `json:"values"`
	Status string              `json:"status"`
}

// searchQueryDTO is the request body of the full-text search endpoint.
type searchQueryDTO struct {
	Query struct {
		Text struct {
			Q string `json:"q"`
		} `json:"text"`
	} `json:"query"`
}

type fieldListDTO struct {
	Items []fieldDTO `json:"items"`
}

type fieldDTO struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Title    string          `json:"title"`
	Required bool            `json:"required"`
	Settings fieldSettingsDTO `json:"settings"`
}

type fieldSettingsDTO struct {
	Type        string `json:"type"`
	UseMarkdown bool   `json:"use_markdown"`
}

type questionListDTO struct {
	Items []questionDTO `json:"items"`
}

type questionDTO struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Required    bool                `json:"required"`
	Settings    questionSettingsDTO `json:"settings"`
}

type questionSettingsDTO struct {
	Type        string      `json:"type"`
	Options     []optionDTO `json:"options"`
	UseMarkdown bool        `json:"use_markdown"`
}

type optionDTO struct {
	Value any    `json:"value"`
	Text  string `json:"text"`
}

type datasetListDTO struct {
	Items []datasetDTO `json:"items"`
}

type datasetDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	WorkspaceID string    `json:"workspace_id"`
	Guidelines  string    `json:"guidelines"`
	Status      string    `json:"status"`
	InsertedAt  time.Time `json:"inserted_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (d recordDTO) toDescriptor() driven.RecordDescriptor {
	desc := driven.RecordDescriptor{
		ID:     d.ID,
		Fields: d.Fields,
	}
	for _, r := range d.Responses {
		desc.Responses = append(desc.Responses, r.toDescriptor())
	}
	for _, s := range d.Suggestions {
		desc.Suggestions = append(desc.Suggestions, driven.SuggestionDescriptor{
			ID:         s.ID,
			QuestionID: s.QuestionID,
			Value:      s.Value,
			Agent:      s.Agent,
			Score:      s.Score,
		})
	}
	return desc
}

func (d responseDTO) toDescriptor() driven.ResponseDescriptor {
	desc := driven.ResponseDescriptor{
		ID:     d.ID,
		Status: d.Status,
		Values: make(map[string]driven.ValueDescriptor, len(d.Values)),
	}
	for name, v := range d.Values {
		desc.Values[name] = driven.ValueDescriptor{Value: v.Value}
	}
	return desc
}

func (d fieldDTO) toDescriptor() driven.FieldDescriptor {
	return driven.FieldDescriptor{
		ID:       d.ID,
		Name:     d.Name,
		Title:    d.Title,
		Required: d.Required,
		Settings: driven.FieldSettingsDescriptor{
			Type:        d.Settings.Type,
			UseMarkdown: d.Settings.UseMarkdown,
		},
	}
}

func (d questionDTO) toDescriptor() driven.QuestionDescriptor {
	settings := driven.QuestionSettingsDescriptor{
		Type:        d.Settings.Type,
		UseMarkdown: d.Settings.UseMarkdown,
	}
	for _, o := range d.Settings.Options {
		settings.Options = append(settings.Options, driven.OptionDescriptor{
			Value: o.Value,
			Text:  o.Text,
		})
	}
	return driven.QuestionDescriptor{
		ID:          d.ID,
		Name:        d.Name,
		Title:       d.Title,
		Description: d.Description,
		Required:    d.Required,
		Settings:    settings,
	}
}

func (d datasetDTO) toDomain() domain.Dataset {
	return domain.Dataset{
		ID:          d.ID,
		Name:        d.Name,
		WorkspaceID: d.WorkspaceID,
		Guidelines:  d.Guidelines,
		Status:      d.Status,
		CreatedAt:   d.InsertedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// newResponsePayload serialises the record's validly answered questions.
// Invalid or missing answers are omitted entirely: the backend treats
// absence as "no answer for that question".
func newResponsePayload(rec *domain.Record, status domain.AnswerStatus) responsePayloadDTO {
	values := rec.ResponseValues()
	payload := responsePayloadDTO{
		Values: make(map[string]valueDTO, len(values)),
		Status: string(status),
	}
	for name, v := range values {
		payload.Values[name] = valueDTO{Value: v}
	}
	return payload
}
