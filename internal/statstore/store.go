// Package statstore persists stats snapshots in SQLite so repeated runs
// build a history of how a repository grows.
package statstore

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/neuroforge/forge/internal/stats"
)

// Record is a stored snapshot with its identity and origin
type Record struct {
	ID        string         `json:"id"`
	RepoPath  string         `json:"repo_path"`
	Snapshot  stats.Snapshot `json:"snapshot"`
	CreatedAt time.Time      `json:"created_at"`
}

// Store provides SQLite-backed snapshot persistence
type Store struct {
	db *sql.DB
}

// New creates a new Store with the given database path
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveSnapshot stores a snapshot and returns its assigned record
func (s *Store) SaveSnapshot(repoPath string, snap *stats.Snapshot) (*Record, error) {
	extJSON, err := json.Marshal(snap.ByExtension)
	if err != nil {
		return nil, err
	}

	rec := &Record{
		ID:        uuid.NewString(),
		RepoPath:  repoPath,
		Snapshot:  *snap,
		CreatedAt: time.Now(),
	}

	_, err = s.db.Exec(`
		INSERT INTO snapshots (id, repo_path, total_files, total_lines, by_extension, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		rec.ID,
		rec.RepoPath,
		snap.TotalFiles,
		snap.TotalLines,
		string(extJSON),
		rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return rec, nil
}

// GetSnapshot retrieves a snapshot record by ID
func (s *Store) GetSnapshot(id string) (*Record, error) {
	row := s.db.QueryRow(`
		SELECT id, repo_path, total_files, total_lines, by_extension, created_at
		FROM snapshots WHERE id = ?
	`, id)

	return scanRecord(row.Scan)
}

// Latest returns the most recent snapshot record, or nil when the store
// is empty
func (s *Store) Latest() (*Record, error) {
	row := s.db.QueryRow(`
		SELECT id, repo_path, total_files, total_lines, by_extension, created_at
		FROM snapshots ORDER BY created_at DESC, id LIMIT 1
	`)

	rec, err := scanRecord(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return rec, err
}

// ListSnapshots returns snapshot records, most recent first. A limit of
// zero or less returns all records.
func (s *Store) ListSnapshots(limit int) ([]*Record, error) {
	query := `
		SELECT id, repo_path, total_files, total_lines, by_extension, created_at
		FROM snapshots ORDER BY created_at DESC, id
	`
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		rec, err := scanRecord(rows.Scan)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

func scanRecord(scan func(dest ...interface{}) error) (*Record, error) {
	var rec Record
	var extJSON string

	err := scan(&rec.ID, &rec.RepoPath, &rec.Snapshot.TotalFiles, &rec.Snapshot.TotalLines, &extJSON, &rec.CreatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(extJSON), &rec.Snapshot.ByExtension); err != nil {
		return nil, err
	}
	rec.Snapshot.GeneratedAt = rec.CreatedAt.Format("2006-01-02 15:04:05")

	return &rec, nil
}
