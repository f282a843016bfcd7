package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/vishnuprksh/Markdown-AI/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/vishnuprksh/Markdown-AI/internal/core/domain"
	"github.com/vishnuprksh/Markdown-AI/internal/core/ports/driven"
)

// Store is a unified SQLite-based storage that provides access to the
// document and share store interfaces through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.markdown-ai/data/documents.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".markdown-ai", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "documents.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
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

// DocumentStore returns a DocumentStore interface backed by this store.
func (s *Store) DocumentStore() driven.DocumentStore {
	return &documentStore{store: s}
}

// ShareStore returns a ShareStore interface backed by this store.
func (s *Store) ShareStore() driven.ShareStore {
	return &shareStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

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

		if _, err := s.db.Exec(
			"INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Document Store ====================

// documentStore implements driven.DocumentStore.
type documentStore struct {
	store *Store
}

var _ driven.DocumentStore = (*documentStore)(nil)

// Save stores or updates a document. The unique index on
// (owner_id, title) rejects a second document with the same title even
// when two saves race past the application-level duplicate check; that
// surfaces as domain.ErrAlreadyExists.
func (s *documentStore) Save(ctx context.Context, doc *domain.DocumentRecord) error {
	if doc.ID == "" {
		return fmt.Errorf("document id: %w", domain.ErrInvalidInput)
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO documents (id, owner_id, title, content, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			owner_id = excluded.owner_id,
			title = excluded.title,
			content = excluded.content,
			updated_at = excluded.updated_at
	`, doc.ID, doc.OwnerID, doc.Title, doc.Content, doc.CreatedAt, doc.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("title %q already taken: %w", doc.Title, domain.ErrAlreadyExists)
		}
		return fmt.Errorf("saving document: %w", err)
	}
	return nil
}

// Get retrieves a document by ID.
func (s *documentStore) Get(ctx context.Context, id string) (*domain.DocumentRecord, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, owner_id, title, content, created_at, updated_at
		FROM documents WHERE id = ?
	`, id)

	return scanDocument(row)
}

// FindByOwnerAndTitle returns the owner's documents with an exact title
// match, skipping excludeID when non-empty.
func (s *documentStore) FindByOwnerAndTitle(ctx context.Context, ownerID, title, excludeID string) ([]domain.DocumentRecord, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, owner_id, title, content, created_at, updated_at
		FROM documents
		WHERE owner_id = ? AND title = ? AND (? = '' OR id != ?)
	`, ownerID, title, excludeID, excludeID)
	if err != nil {
		return nil, fmt.Errorf("querying documents by title: %w", err)
	}
	defer rows.Close()

	return scanDocuments(rows)
}

// ListByOwner returns the owner's documents, newest first.
func (s *documentStore) ListByOwner(ctx context.Context, ownerID string) ([]domain.DocumentRecord, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, owner_id, title, content, created_at, updated_at
		FROM documents
		WHERE owner_id = ?
		ORDER BY updated_at DESC, id
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("querying documents: %w", err)
	}
	defer rows.Close()

	return scanDocuments(rows)
}

// Delete removes a document.
func (s *documentStore) Delete(ctx context.Context, id string) error {
	res, err := s.store.db.ExecContext(ctx, "DELETE FROM documents WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting document: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("document %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ==================== Share Store ====================

// shareStore implements driven.ShareStore.
type shareStore struct {
	store *Store
}

var _ driven.ShareStore = (*shareStore)(nil)

// Save stores or updates a shared document.
func (s *shareStore) Save(ctx context.Context, share *domain.SharedDocument) error {
	if share.ID == "" {
		return fmt.Errorf("share id: %w", domain.ErrInvalidInput)
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO shared_documents (id, owner_id, title, content, is_public, view_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			owner_id = excluded.owner_id,
			title = excluded.title,
			content = excluded.content,
			is_public = excluded.is_public
	`, share.ID, share.OwnerID, share.Title, share.Content, share.Public, share.Views, share.CreatedAt)

	if err != nil {
		return fmt.Errorf("saving share: %w", err)
	}
	return nil
}

// Get retrieves a shared document by ID.
func (s *shareStore) Get(ctx context.Context, id string) (*domain.SharedDocument, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, owner_id, title, content, is_public, view_count, created_at
		FROM shared_documents WHERE id = ?
	`, id)

	var share domain.SharedDocument
	var createdAt sql.NullTime
	if err := row.Scan(&share.ID, &share.OwnerID, &share.Title, &share.Content,
		&share.Public, &share.Views, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("share %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("scanning share: %w", err)
	}
	if createdAt.Valid {
		share.CreatedAt = createdAt.Time
	}

	return &share, nil
}

// IncrementViews bumps the view counter for a shared document.
func (s *shareStore) IncrementViews(ctx context.Context, id string) error {
	res, err := s.store.db.ExecContext(ctx,
		"UPDATE shared_documents SET view_count = view_count + 1 WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("incrementing views: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("share %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ==================== Helper Functions ====================

// scanDocument scans a single document row.
func scanDocument(row *sql.Row) (*domain.DocumentRecord, error) {
	var doc domain.DocumentRecord
	var createdAt, updatedAt sql.NullTime

	if err := row.Scan(&doc.ID, &doc.OwnerID, &doc.Title, &doc.Content,
		&createdAt, &updatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning document: %w", err)
	}

	if createdAt.Valid {
		doc.CreatedAt = createdAt.Time
	}
	if updatedAt.Valid {
		doc.UpdatedAt = updatedAt.Time
	}

	return &doc, nil
}

// scanDocuments scans multiple document rows.
func scanDocuments(rows *sql.Rows) ([]domain.DocumentRecord, error) {
	var docs []domain.DocumentRecord //nolint:prealloc // size unknown from query
	for rows.Next() {
		var doc domain.DocumentRecord
		var createdAt, updatedAt sql.NullTime
		if err := rows.Scan(&doc.ID, &doc.OwnerID, &doc.Title, &doc.Content,
			&createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning document: %w", err)
		}
		if createdAt.Valid {
			doc.CreatedAt = createdAt.Time
		}
		if updatedAt.Valid {
			doc.UpdatedAt = updatedAt.Time
		}
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating documents: %w", err)
	}

	return docs, nil
}

// isUniqueViolation reports whether err is a SQLite unique constraint
// failure.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
