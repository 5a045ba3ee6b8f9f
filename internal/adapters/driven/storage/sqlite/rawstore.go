package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/seclens-labs/seclens-cli/internal/core/domain"
	"github.com/seclens-labs/seclens-cli/internal/core/ports/driven"
)

// rawDocumentStore implements driven.RawDocumentStore.
type rawDocumentStore struct {
	store *Store
}

var _ driven.RawDocumentStore = (*rawDocumentStore)(nil)

// SaveRaw stores a raw document. Raw documents are immutable.
func (s *rawDocumentStore) SaveRaw(ctx context.Context, raw *domain.RawDocument) error {
	if raw == nil || raw.ID == "" {
		return domain.ErrInvalidInput
	}

	metadataJSON, err := marshalJSON(raw.Metadata)
	if err != nil {
		return fmt.Errorf("marshalling metadata: %w", err)
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO raw_documents (id, source_id, uri, title, content, retrieved_at, success, error, metadata)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, raw.ID, raw.SourceID, raw.URI, raw.Title, raw.Content,
		raw.RetrievedAt.UTC(), boolToInt(raw.Success), raw.Error, metadataJSON)

	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrAlreadyExists
		}
		return fmt.Errorf("saving raw document: %w", err)
	}
	return nil
}

// ListRaw returns raw documents, optionally filtered by source.
func (s *rawDocumentStore) ListRaw(ctx context.Context, sourceID string, includeFailed bool) ([]domain.RawDocument, error) {
	query := `
		SELECT id, source_id, uri, title, content, retrieved_at, success, error, metadata
		FROM raw_documents WHERE 1=1`
	args := []any{}

	if sourceID != "" {
		query += " AND source_id = ?"
		args = append(args, sourceID)
	}
	if !includeFailed {
		query += " AND success = 1"
	}
	query += " ORDER BY retrieved_at"

	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing raw documents: %w", err)
	}
	defer rows.Close()

	var docs []domain.RawDocument
	for rows.Next() {
		raw, err := scanRawDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, *raw)
	}
	return docs, rows.Err()
}

// CountRaw returns total and failed raw document counts per source.
func (s *rawDocumentStore) CountRaw(ctx context.Context) (map[string]int, map[string]int, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT source_id, COUNT(*), SUM(CASE WHEN success = 0 THEN 1 ELSE 0 END)
		FROM raw_documents GROUP BY source_id
	`)
	if err != nil {
		return nil, nil, fmt.Errorf("counting raw documents: %w", err)
	}
	defer rows.Close()

	totals := make(map[string]int)
	failed := make(map[string]int)
	for rows.Next() {
		var source string
		var total, fail int
		if err := rows.Scan(&source, &total, &fail); err != nil {
			return nil, nil, fmt.Errorf("scanning counts: %w", err)
		}
		totals[source] = total
		failed[source] = fail
	}
	return totals, failed, rows.Err()
}

// scanRawDocument reads one raw document row.
func scanRawDocument(rows *sql.Rows) (*domain.RawDocument, error) {
	var raw domain.RawDocument
	var success int
	var metadataJSON string
	var retrievedAt sql.NullTime

	if err := rows.Scan(&raw.ID, &raw.SourceID, &raw.URI, &raw.Title, &raw.Content,
		&retrievedAt, &success, &raw.Error, &metadataJSON); err != nil {
		return nil, fmt.Errorf("scanning raw document: %w", err)
	}

	raw.Success = success != 0
	if retrievedAt.Valid {
		raw.RetrievedAt = retrievedAt.Time
	}
	if metadataJSON != jsonNull {
		if err := json.Unmarshal([]byte(metadataJSON), &raw.Metadata); err != nil {
			return nil, fmt.Errorf("unmarshaling metadata: %w", err)
		}
	}
	return &raw, nil
}

// boolToInt maps a bool onto the SQLite integer encoding.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// isUniqueViolation reports whether err is a primary-key conflict.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
