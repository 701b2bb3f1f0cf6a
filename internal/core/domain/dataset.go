package domain

import "time"

// Dataset is an annotation dataset as reported by the backend. The schema
// (fields and questions) is fetched separately and joined per record.
type Dataset struct {
	// ID is the backend identifier.
	ID string
	// Name is the dataset name, unique within its workspace.
	Name string
	// WorkspaceID is the owning workspace.
	WorkspaceID string
	// Guidelines is the optional annotation guidelines markdown.
	Guidelines string
	// Status is the backend lifecycle status (draft, ready).
	Status string
	// CreatedAt is when the dataset was created.
	CreatedAt time.Time
	// UpdatedAt is when the dataset last changed.
	UpdatedAt time.Time
}
