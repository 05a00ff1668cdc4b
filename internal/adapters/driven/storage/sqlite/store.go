// Package sqlite implements the catalog store over a local SQLite
// database. Records are stored as their serialised JSON alongside the
// canonical search text, which backs the catalog search command and the
// MCP tools.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/exporta-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/exporta-cli/internal/core/domain"
	"github.com/custodia-labs/exporta-cli/internal/core/ports/driven"
)

// defaultSearchLimit caps catalog searches when the caller passes no
// positive limit.
const defaultSearchLimit = 10

// Ensure Store implements the interface.
var _ driven.CatalogStore = (*Store)(nil)

// Store is the SQLite-backed catalog of converted records.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite catalog at the specified data directory.
// If dataDir is empty, defaults to ~/.exporta/data/catalog.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".exporta", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "catalog.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

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

// SaveIssues stores the final records of a conversion run, replacing any
// previously catalogued version of the same keys.
func (s *Store) SaveIssues(ctx context.Context, issues []*domain.Issue) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO issues (key, id, record, text, source_file, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			record = excluded.record,
			text = excluded.text,
			source_file = excluded.source_file,
			updated_at = excluded.updated_at
	`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for _, issue := range issues {
		record, err := json.Marshal(issue)
		if err != nil {
			return fmt.Errorf("marshalling issue %s: %w", issue.Key, err)
		}
		if _, err := stmt.ExecContext(ctx, issue.Key, uuid.New().String(),
			string(record), issue.Text, issue.SourceFile, now); err != nil {
			return fmt.Errorf("saving issue %s: %w", issue.Key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// GetIssue retrieves a record by issue key.
func (s *Store) GetIssue(ctx context.Context, key string) (*domain.Issue, error) {
	row := s.db.QueryRowContext(ctx, `SELECT record FROM issues WHERE key = ?`, key)

	var record string
	if err := row.Scan(&record); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning issue: %w", err)
	}

	return decodeIssue(record)
}

// ListIssues returns all catalogued records ordered by key.
func (s *Store) ListIssues(ctx context.Context) ([]*domain.Issue, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT record FROM issues ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("listing issues: %w", err)
	}
	defer rows.Close()

	return scanIssues(rows)
}

// SearchIssues returns records whose canonical text contains the query,
// case-insensitively, ordered by key.
func (s *Store) SearchIssues(ctx context.Context, query string, limit int) ([]*domain.Issue, error) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT record FROM issues
		WHERE text LIKE ? ESCAPE '\'
		ORDER BY key
		LIMIT ?
	`, "%"+escapeLike(query)+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("searching issues: %w", err)
	}
	defer rows.Close()

	return scanIssues(rows)
}

func scanIssues(rows *sql.Rows) ([]*domain.Issue, error) {
	var issues []*domain.Issue
	for rows.Next() {
		var record string
		if err := rows.Scan(&record); err != nil {
			return nil, fmt.Errorf("scanning issue: %w", err)
		}
		issue, err := decodeIssue(record)
		if err != nil {
			return nil, err
		}
		issues = append(issues, issue)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating issues: %w", err)
	}
	return issues, nil
}

func decodeIssue(record string) (*domain.Issue, error) {
	var issue domain.Issue
	if err := json.Unmarshal([]byte(record), &issue); err != nil {
		return nil, fmt.Errorf("unmarshaling issue: %w", err)
	}
	return &issue, nil
}

// escapeLike escapes the SQL LIKE wildcards in a user query.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
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

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".up.sql") {
			upFiles = append(upFiles, entry.Name())
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}
