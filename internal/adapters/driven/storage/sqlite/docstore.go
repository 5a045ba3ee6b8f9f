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

// documentStore implements driven.DocumentStore.
type documentStore struct {
	store *Store
}

var _ driven.DocumentStore = (*documentStore)(nil)

// SaveDocument stores a cleaned document.
func (s *documentStore) SaveDocument(ctx context.Context, doc *domain.Document) error {
	if doc == nil || doc.ID == "" {
		return domain.ErrInvalidInput
	}

	termsJSON, err := marshalJSON(doc.CyberTerms)
	if err != nil {
		return fmt.Errorf("marshalling cyber terms: %w", err)
	}

	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now().UTC()
	}

	var topicID sql.NullInt64
	if doc.TopicID != nil {
		topicID = sql.NullInt64{Int64: int64(*doc.TopicID), Valid: true}
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO documents (id, source_id, raw_id, title, content, text_length, cyber_terms, topic_id, topic_probability, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			content = excluded.content,
			text_length = excluded.text_length,
			cyber_terms = excluded.cyber_terms,
			topic_id = excluded.topic_id,
			topic_probability = excluded.topic_probability
	`, doc.ID, doc.SourceID, doc.RawID, doc.Title, doc.Content,
		doc.TextLength, termsJSON, topicID, doc.TopicProbability, doc.CreatedAt.UTC())

	if err != nil {
		return fmt.Errorf("saving document: %w", err)
	}
	return nil
}

// GetDocument retrieves a document by ID.
func (s *documentStore) GetDocument(ctx context.Context, id string) (*domain.Document, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, source_id, raw_id, title, content, text_length, cyber_terms, topic_id, topic_probability, created_at
		FROM documents WHERE id = ?
	`, id)

	doc, err := scanDocument(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

// ListDocuments returns corpus documents ordered by creation time.
func (s *documentStore) ListDocuments(ctx context.Context, limit, offset int) ([]domain.Document, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, source_id, raw_id, title, content, text_length, cyber_terms, topic_id, topic_probability, created_at
		FROM documents ORDER BY created_at, id LIMIT ? OFFSET ?
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	defer rows.Close()

	var docs []domain.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, *doc)
	}
	return docs, rows.Err()
}

// CountDocuments returns the corpus size.
func (s *documentStore) CountDocuments(ctx context.Context) (int, error) {
	var count int
	row := s.store.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM documents")
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("counting documents: %w", err)
	}
	return count, nil
}

// SetTopic records a topic assignment on a document.
func (s *documentStore) SetTopic(ctx context.Context, assignment domain.TopicAssignment) error {
	res, err := s.store.db.ExecContext(ctx, `
		UPDATE documents SET topic_id = ?, topic_probability = ? WHERE id = ?
	`, assignment.TopicID, assignment.Probability, assignment.DocumentID)
	if err != nil {
		return fmt.Errorf("setting topic: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking topic update: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListTopics returns the stored topic summaries.
func (s *documentStore) ListTopics(ctx context.Context) ([]domain.Topic, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, terms, document_count FROM topics ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("listing topics: %w", err)
	}
	defer rows.Close()

	var topics []domain.Topic
	for rows.Next() {
		var topic domain.Topic
		var termsJSON string
		if err := rows.Scan(&topic.ID, &termsJSON, &topic.DocumentCount); err != nil {
			return nil, fmt.Errorf("scanning topic: %w", err)
		}
		if termsJSON != jsonNull {
			if err := json.Unmarshal([]byte(termsJSON), &topic.Terms); err != nil {
				return nil, fmt.Errorf("unmarshaling topic terms: %w", err)
			}
		}
		topics = append(topics, topic)
	}
	return topics, rows.Err()
}

// SaveTopics replaces the stored topic summaries.
func (s *documentStore) SaveTopics(ctx context.Context, topics []domain.Topic) error {
	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM topics"); err != nil {
		return fmt.Errorf("clearing topics: %w", err)
	}

	for _, topic := range topics {
		termsJSON, err := marshalJSON(topic.Terms)
		if err != nil {
			return fmt.Errorf("marshalling topic terms: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO topics (id, terms, document_count) VALUES (?, ?, ?)
		`, topic.ID, termsJSON, topic.DocumentCount); err != nil {
			return fmt.Errorf("saving topic %d: %w", topic.ID, err)
		}
	}

	return tx.Commit()
}

// scanner abstracts sql.Row and sql.Rows for shared scan logic.
type scanner interface {
	Scan(dest ...any) error
}

// scanDocument reads one document row.
func scanDocument(row scanner) (*domain.Document, error) {
	var doc domain.Document
	var termsJSON string
	var topicID sql.NullInt64
	var createdAt sql.NullTime

	if err := row.Scan(&doc.ID, &doc.SourceID, &doc.RawID, &doc.Title, &doc.Content,
		&doc.TextLength, &termsJSON, &topicID, &doc.TopicProbability, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning document: %w", err)
	}

	if termsJSON != jsonNull {
		if err := json.Unmarshal([]byte(termsJSON), &doc.CyberTerms); err != nil {
			return nil, fmt.Errorf("unmarshaling cyber terms: %w", err)
		}
	}
	if topicID.Valid {
		id := int(topicID.Int64)
		doc.TopicID = &id
	}
	if createdAt.Valid {
		doc.CreatedAt = createdAt.Time
	}
	return &doc, nil
}
