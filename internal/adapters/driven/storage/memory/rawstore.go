package memory

import (
	"context"
	"sync"

	"github.com/seclens-labs/seclens-cli/internal/core/domain"
	"github.com/seclens-labs/seclens-cli/internal/core/ports/driven"
)

// RawDocumentStore is an in-memory implementation of driven.RawDocumentStore.
// Useful for testing and single-run pipelines.
type RawDocumentStore struct {
	mu    sync.RWMutex
	raws  map[string]domain.RawDocument
	order []string
}

var _ driven.RawDocumentStore = (*RawDocumentStore)(nil)

// NewRawDocumentStore creates a new in-memory raw document store.
func NewRawDocumentStore() *RawDocumentStore {
	return &RawDocumentStore{
		raws: make(map[string]domain.RawDocument),
	}
}

// SaveRaw stores a raw document. Raw documents are immutable; saving
// an existing ID returns domain.ErrAlreadyExists.
func (s *RawDocumentStore) SaveRaw(_ context.Context, raw *domain.RawDocument) error {
	if raw == nil || raw.ID == "" {
		return domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.raws[raw.ID]; exists {
		return domain.ErrAlreadyExists
	}
	s.raws[raw.ID] = *raw
	s.order = append(s.order, raw.ID)
	return nil
}

// ListRaw returns raw documents in insertion order, optionally
// filtered by source. Failed extractions are skipped unless
// includeFailed is set.
func (s *RawDocumentStore) ListRaw(_ context.Context, sourceID string, includeFailed bool) ([]domain.RawDocument, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.RawDocument, 0, len(s.order))
	for _, id := range s.order {
		raw := s.raws[id]
		if sourceID != "" && raw.SourceID != sourceID {
			continue
		}
		if !raw.Success && !includeFailed {
			continue
		}
		result = append(result, raw)
	}
	return result, nil
}

// CountRaw returns total and failed raw document counts per source.
func (s *RawDocumentStore) CountRaw(_ context.Context) (map[string]int, map[string]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := make(map[string]int)
	failed := make(map[string]int)
	for _, raw := range s.raws {
		total[raw.SourceID]++
		if !raw.Success {
			failed[raw.SourceID]++
		}
	}
	return total, failed, nil
}
