package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Repository Errors.
	//
	// Every transport failure inside a repository is re-signalled as one of
	// these sentinels. The original cause is logged at the adapter and then
	// discarded: callers branch on the kind, never on transport detail.

	// ErrFetchingRecords indicates the record page could not be retrieved.
	ErrFetchingRecords = errors.New("fetching records failed")

	// ErrFetchingFields indicates the field schema could not be retrieved.
	ErrFetchingFields = errors.New("fetching fields failed")

	// ErrFetchingQuestions indicates the question schema could not be retrieved.
	ErrFetchingQuestions = errors.New("fetching questions failed")

	// ErrFetchingDatasets indicates the dataset list could not be retrieved.
	ErrFetchingDatasets = errors.New("fetching datasets failed")

	// ErrCreatingRecordResponse indicates a response could not be created.
	ErrCreatingRecordResponse = errors.New("creating record response failed")

	// ErrUpdatingRecordResponse indicates a response could not be updated.
	ErrUpdatingRecordResponse = errors.New("updating record response failed")

	// ErrDeletingRecordResponse indicates a response could not be deleted.
	ErrDeletingRecordResponse = errors.New("deleting record response failed")

	// Aggregation Errors.

	// ErrSchemaMismatch indicates a record references a field or question
	// that is absent from the dataset schema. The backend and the schema
	// fetch are out of sync; aggregation must abort rather than silently
	// drop the field and corrupt downstream answer validation.
	ErrSchemaMismatch = errors.New("record does not match dataset schema")

	// ErrAmbiguousAnswer indicates a record carries more than one response
	// for the current user. The backend contract allows at most one.
	ErrAmbiguousAnswer = errors.New("record has more than one response")

	// Response Errors.

	// ErrNoRecordResponse indicates an operation requires an existing
	// response (discard, delete) but the record has none.
	ErrNoRecordResponse = errors.New("record has no response")
)
