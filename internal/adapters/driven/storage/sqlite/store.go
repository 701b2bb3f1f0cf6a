package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/annotate-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/annotate-cli/internal/core/domain"
	"github.com/custodia-labs/annotate-cli/internal/core/ports/driven"
)

// Store is the SQLite-backed store for fetched record pages.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.annotate/data/records.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".annotate", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "records.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// RecordStorage returns a RecordStorage interface backed by this store.
func (s *Store) RecordStorage() driven.RecordStorage {
	return &recordStorage{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	// Sort and run migrations
	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		// Read and execute migration
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(
			"INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Record Storage ====================

// recordStorage implements driven.RecordStorage.
type recordStorage struct {
	store *Store
}

var _ driven.RecordStorage = (*recordStorage)(nil)

// Add replaces the stored page for the dataset. The page row and its
// records are swapped in one transaction so readers never see a mix of
// two fetches.
func (s *recordStorage) Add(ctx context.Context, datasetID string, records *domain.Records) error {
	if datasetID == "" || records == nil {
		return domain.ErrInvalidInput
	}

	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	_, err = tx.ExecContext(ctx, `
		INSERT INTO record_pages (dataset_id, total, stored_at)
		VALUES (?, ?, ?)
		ON CONFLICT(dataset_id) DO UPDATE SET
			total = excluded.total,
			stored_at = excluded.stored_at
	`, datasetID, records.Total, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("saving record page: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM records WHERE dataset_id = ?", datasetID); err != nil {
		return fmt.Errorf("clearing previous page: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO records (dataset_id, position, record_id, data)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	for i := range records.Items {
		data, err := json.Marshal(&records.Items[i])
		if err != nil {
			return fmt.Errorf("marshalling record: %w", err)
		}
		if _, err := stmt.ExecContext(ctx, datasetID, i, records.Items[i].ID, string(data)); err != nil {
			return fmt.Errorf("saving record: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// Get retrieves the stored page for the dataset.
func (s *recordStorage) Get(ctx context.Context, datasetID string) (*domain.Records, error) {
	var total int
	row := s.store.db.QueryRowContext(ctx,
		"SELECT total FROM record_pages WHERE dataset_id = ?", datasetID)
	if err := row.Scan(&total); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning record page: %w", err)
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT data FROM records WHERE dataset_id = ?
		ORDER BY position
	`, datasetID)
	if err != nil {
		return nil, fmt.Errorf("querying records: %w", err)
	}
	defer rows.Close()

	var items []domain.Record //nolint:prealloc // size unknown from query
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}
		var rec domain.Record
		if err := json.Unmarshal([]byte(data), &rec); err != nil {
			return nil, fmt.Errorf("unmarshaling record: %w", err)
		}
		items = append(items, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating records: %w", err)
	}

	return &domain.Records{Items: items, Total: total}, nil
}

// Clear removes the stored page for the dataset.
func (s *recordStorage) Clear(ctx context.Context, datasetID string) error {
	_, err := s.store.db.ExecContext(ctx,
		"DELETE FROM record_pages WHERE dataset_id = ?", datasetID)
	if err != nil {
		return fmt.Errorf("clearing record page: %w", err)
	}
	return nil
}
