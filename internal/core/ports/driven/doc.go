// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - RecordRepository: Record pages and response lifecycle on the backend
//   - FieldRepository: Dataset field schema
//   - QuestionRepository: Dataset question schema
//   - RecordStorage: Client-side persistence of aggregated records
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
//   - DatasetRepository: Dataset discovery. Only the CLI needs it.
//
// The repository interfaces return plain transfer shapes (descriptors)
// mirroring backend JSON; the aggregation service joins them into domain
// aggregates. Repositories re-signal every transport failure as one of the
// domain error kinds and never surface transport detail.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
