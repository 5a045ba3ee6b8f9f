package driven

import (
	"context"

	"github.com/seclens-labs/seclens-cli/internal/core/domain"
)

// RawDocumentStore persists collected raw documents.
type RawDocumentStore interface {
	// SaveRaw stores a raw document. Raw documents are immutable;
	// saving an existing ID returns domain.ErrAlreadyExists.
	SaveRaw(ctx context.Context, raw *domain.RawDocument) error

	// ListRaw returns raw documents, optionally filtered by source.
	// An empty sourceID returns all sources. Only successful
	// extractions are returned unless includeFailed is set.
	ListRaw(ctx context.Context, sourceID string, includeFailed bool) ([]domain.RawDocument, error)

	// CountRaw returns total and failed raw document counts per source.
	CountRaw(ctx context.Context) (map[string]int, map[string]int, error)
}

// DocumentStore persists the cleaned corpus.
type DocumentStore interface {
	// SaveDocument stores a cleaned document.
	SaveDocument(ctx context.Context, doc *domain.Document) error

	// GetDocument retrieves a document by ID.
	// Returns domain.ErrNotFound if it does not exist.
	GetDocument(ctx context.Context, id string) (*domain.Document, error)

	// ListDocuments returns corpus documents ordered by creation time.
	// limit <= 0 means no limit.
	ListDocuments(ctx context.Context, limit, offset int) ([]domain.Document, error)

	// CountDocuments returns the corpus size.
	CountDocuments(ctx context.Context) (int, error)

	// SetTopic records a topic assignment on a document.
	SetTopic(ctx context.Context, assignment domain.TopicAssignment) error

	// ListTopics returns the stored topic summaries.
	ListTopics(ctx context.Context) ([]domain.Topic, error)

	// SaveTopics replaces the stored topic summaries.
	SaveTopics(ctx context.Context, topics []domain.Topic) error
}

// EvaluationStore persists evaluation runs.
type EvaluationStore interface {
	// SaveEvaluation stores an evaluation report under a run name
	// (e.g. "baseline", "custom").
	SaveEvaluation(ctx context.Context, name string, report *domain.EvaluationReport) error

	// GetEvaluation retrieves the most recent report for a run name.
	// Returns domain.ErrNotFound if none exists.
	GetEvaluation(ctx context.Context, name string) (*domain.EvaluationReport, error)

	// ListEvaluations returns the stored run names with timestamps,
	// newest first.
	ListEvaluations(ctx context.Context) ([]EvaluationRun, error)
}

// EvaluationRun summarizes a stored evaluation for listings.
type EvaluationRun struct {
	Name       string
	Checkpoint string
	CreatedAt  string
}
