package services

import (
	"context"
	"fmt"

	"github.com/seclens-labs/seclens-cli/internal/core/domain"
	"github.com/seclens-labs/seclens-cli/internal/core/ports/driven"
	"github.com/seclens-labs/seclens-cli/internal/core/ports/driving"
	"github.com/seclens-labs/seclens-cli/internal/topics"
)

// Ensure TopicService implements the interface.
var _ driving.TopicRunner = (*TopicService)(nil)

// TopicService clusters the corpus and persists the assignments.
type TopicService struct {
	docStore driven.DocumentStore
	modeler  *topics.Modeler
}

// NewTopicService creates a topic service.
func NewTopicService(docStore driven.DocumentStore, modeler *topics.Modeler) *TopicService {
	return &TopicService{docStore: docStore, modeler: modeler}
}

// ModelTopics fits the topic model over the whole corpus, records each
// document's assignment and replaces the stored topic summaries.
func (s *TopicService) ModelTopics(ctx context.Context) ([]domain.Topic, error) {
	docs, err := s.docStore.ListDocuments(ctx, -1, 0)
	if err != nil {
		return nil, fmt.Errorf("loading corpus: %w", err)
	}

	fitted, assignments, err := s.modeler.Fit(docs)
	if err != nil {
		return nil, err
	}

	for _, assignment := range assignments {
		if err := s.docStore.SetTopic(ctx, assignment); err != nil {
			return nil, fmt.Errorf("recording topic for %s: %w", assignment.DocumentID, err)
		}
	}
	if err := s.docStore.SaveTopics(ctx, fitted); err != nil {
		return nil, fmt.Errorf("storing topics: %w", err)
	}
	return fitted, nil
}
