package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/seclens-labs/seclens-cli/internal/core/domain"
	"github.com/seclens-labs/seclens-cli/internal/core/ports/driven"
)

// DocumentStore is an in-memory implementation of driven.DocumentStore.
// Useful for testing and single-run pipelines.
type DocumentStore struct {
	mu     sync.RWMutex
	docs   map[string]domain.Document
	topics []domain.Topic
}

var _ driven.DocumentStore = (*DocumentStore)(nil)

// NewDocumentStore creates a new in-memory document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		docs: make(map[string]domain.Document),
	}
}

// SaveDocument stores a cleaned document, replacing any existing
// document with the same ID.
func (s *DocumentStore) SaveDocument(_ context.Context, doc *domain.Document) error {
	if doc == nil || doc.ID == "" {
		return domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.docs[doc.ID] = *doc
	return nil
}

// GetDocument retrieves a document by ID.
func (s *DocumentStore) GetDocument(_ context.Context, id string) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, exists := s.docs[id]
	if !exists {
		return nil, domain.ErrNotFound
	}
	return &doc, nil
}

// ListDocuments returns corpus documents ordered by creation time.
// limit <= 0 means no limit.
func (s *DocumentStore) ListDocuments(_ context.Context, limit, offset int) ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]domain.Document, 0, len(s.docs))
	for _, doc := range s.docs {
		all = append(all, doc)
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.Before(all[j].CreatedAt)
		}
		return all[i].ID < all[j].ID
	})

	if offset >= len(all) {
		return []domain.Document{}, nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

// CountDocuments returns the corpus size.
func (s *DocumentStore) CountDocuments(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.docs), nil
}

// SetTopic records a topic assignment on a document.
func (s *DocumentStore) SetTopic(_ context.Context, assignment domain.TopicAssignment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, exists := s.docs[assignment.DocumentID]
	if !exists {
		return domain.ErrNotFound
	}
	topicID := assignment.TopicID
	doc.TopicID = &topicID
	doc.TopicProbability = assignment.Probability
	s.docs[assignment.DocumentID] = doc
	return nil
}

// ListTopics returns the stored topic summaries.
func (s *DocumentStore) ListTopics(_ context.Context) ([]domain.Topic, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	topics := make([]domain.Topic, len(s.topics))
	copy(topics, s.topics)
	return topics, nil
}

// SaveTopics replaces the stored topic summaries.
func (s *DocumentStore) SaveTopics(_ context.Context, topics []domain.Topic) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.topics = make([]domain.Topic, len(topics))
	copy(s.topics, topics)
	return nil
}
