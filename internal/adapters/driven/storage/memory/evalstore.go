package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/seclens-labs/seclens-cli/internal/core/domain"
	"github.com/seclens-labs/seclens-cli/internal/core/ports/driven"
)

// EvaluationStore is an in-memory implementation of driven.EvaluationStore.
// Useful for testing and single-run pipelines.
type EvaluationStore struct {
	mu   sync.RWMutex
	runs map[string][]domain.EvaluationReport
}

var _ driven.EvaluationStore = (*EvaluationStore)(nil)

// NewEvaluationStore creates a new in-memory evaluation store.
func NewEvaluationStore() *EvaluationStore {
	return &EvaluationStore{
		runs: make(map[string][]domain.EvaluationReport),
	}
}

// SaveEvaluation stores an evaluation report under a run name.
func (s *EvaluationStore) SaveEvaluation(_ context.Context, name string, report *domain.EvaluationReport) error {
	if name == "" || report == nil {
		return domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *report
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}
	s.runs[name] = append(s.runs[name], stored)
	return nil
}

// GetEvaluation retrieves the most recent report for a run name.
func (s *EvaluationStore) GetEvaluation(_ context.Context, name string) (*domain.EvaluationReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reports, exists := s.runs[name]
	if !exists || len(reports) == 0 {
		return nil, domain.ErrNotFound
	}
	latest := reports[len(reports)-1]
	return &latest, nil
}

// ListEvaluations returns the stored run names with timestamps,
// newest first.
func (s *EvaluationStore) ListEvaluations(_ context.Context) ([]driven.EvaluationRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]driven.EvaluationRun, 0, len(s.runs))
	for name, reports := range s.runs {
		for _, report := range reports {
			result = append(result, driven.EvaluationRun{
				Name:       name,
				Checkpoint: report.Checkpoint,
				CreatedAt:  report.CreatedAt.Format(time.RFC3339),
			})
		}
	}
	// Newest first; stable tiebreak on name for deterministic listings.
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt != result[j].CreatedAt {
			return result[i].CreatedAt > result[j].CreatedAt
		}
		return result[i].Name < result[j].Name
	})
	return result, nil
}
