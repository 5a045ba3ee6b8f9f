package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/seclens-labs/seclens-cli/internal/core/domain"
	"github.com/seclens-labs/seclens-cli/internal/core/ports/driven"
)

// evaluationStore implements driven.EvaluationStore.
type evaluationStore struct {
	store *Store
}

var _ driven.EvaluationStore = (*evaluationStore)(nil)

// SaveEvaluation stores an evaluation report under a run name.
func (s *evaluationStore) SaveEvaluation(ctx context.Context, name string, report *domain.EvaluationReport) error {
	if name == "" || report == nil {
		return domain.ErrInvalidInput
	}

	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now().UTC()
	}

	reportJSON, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshalling report: %w", err)
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO evaluations (name, checkpoint, report, created_at)
		VALUES (?, ?, ?, ?)
	`, name, report.Checkpoint, string(reportJSON), report.CreatedAt.UTC())

	if err != nil {
		return fmt.Errorf("saving evaluation: %w", err)
	}
	return nil
}

// GetEvaluation retrieves the most recent report for a run name.
func (s *evaluationStore) GetEvaluation(ctx context.Context, name string) (*domain.EvaluationReport, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT report FROM evaluations WHERE name = ?
		ORDER BY created_at DESC LIMIT 1
	`, name)

	var reportJSON string
	if err := row.Scan(&reportJSON); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning evaluation: %w", err)
	}

	var report domain.EvaluationReport
	if err := json.Unmarshal([]byte(reportJSON), &report); err != nil {
		return nil, fmt.Errorf("unmarshaling report: %w", err)
	}
	return &report, nil
}

// ListEvaluations returns the stored run names, newest first.
func (s *evaluationStore) ListEvaluations(ctx context.Context) ([]driven.EvaluationRun, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT name, checkpoint, created_at FROM evaluations
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("listing evaluations: %w", err)
	}
	defer rows.Close()

	var runs []driven.EvaluationRun
	for rows.Next() {
		var run driven.EvaluationRun
		var createdAt sql.NullTime
		if err := rows.Scan(&run.Name, &run.Checkpoint, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning evaluation run: %w", err)
		}
		if createdAt.Valid {
			run.CreatedAt = createdAt.Time.UTC().Format(time.RFC3339)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
