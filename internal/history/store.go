// Package history persists completed analyses so past model responses
// can be reviewed without re-running them.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"plens/internal/models"
)

// ErrNotFound is returned when no analysis matches the query
var ErrNotFound = errors.New("analysis not found")

// Store reads and writes analysis results in SQLite.
type Store struct {
	db *DB
}

// NewStore creates a new analysis store.
func NewStore(db *DB) *Store {
	return &Store{db: db}
}

// Save persists an analysis result.
func (s *Store) Save(ctx context.Context, result *models.AnalysisResult) error {
	query := `
		INSERT INTO analyses (id, project_id, kind, prompt, response, model, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		result.ID,
		result.ProjectID,
		string(result.Kind),
		result.Prompt,
		result.Response,
		result.Model,
		result.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save analysis: %w", err)
	}

	return nil
}

// Get retrieves a single analysis by ID.
func (s *Store) Get(ctx context.Context, id string) (*models.AnalysisResult, error) {
	query := `
		SELECT id, project_id, kind, prompt, response, model, created_at
		FROM analyses
		WHERE id = ?
	`

	var result models.AnalysisResult
	var kind string
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&result.ID,
		&result.ProjectID,
		&kind,
		&result.Prompt,
		&result.Response,
		&result.Model,
		&result.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}
	result.Kind = models.AnalysisKind(kind)

	return &result, nil
}

// ListRecent returns the most recent analyses, newest first.
func (s *Store) ListRecent(ctx context.Context, limit int) ([]*models.AnalysisResult, error) {
	query := `
		SELECT id, project_id, kind, prompt, response, model, created_at
		FROM analyses
		ORDER BY created_at DESC, id
		LIMIT ?
	`

	return s.list(ctx, query, limit)
}

// ListByProject returns the most recent analyses for one project, newest first.
func (s *Store) ListByProject(ctx context.Context, projectID string, limit int) ([]*models.AnalysisResult, error) {
	query := `
		SELECT id, project_id, kind, prompt, response, model, created_at
		FROM analyses
		WHERE project_id = ?
		ORDER BY created_at DESC, id
		LIMIT ?
	`

	return s.list(ctx, query, projectID, limit)
}

func (s *Store) list(ctx context.Context, query string, args ...interface{}) ([]*models.AnalysisResult, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var results []*models.AnalysisResult
	for rows.Next() {
		var result models.AnalysisResult
		var kind string
		if err := rows.Scan(
			&result.ID,
			&result.ProjectID,
			&kind,
			&result.Prompt,
			&result.Response,
			&result.Model,
			&result.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		result.Kind = models.AnalysisKind(kind)
		results = append(results, &result)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate analyses: %w", err)
	}

	return results, nil
}
