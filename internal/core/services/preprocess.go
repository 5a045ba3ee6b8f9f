package services

import (
	"context"
	"fmt"

	"github.com/seclens-labs/seclens-cli/internal/core/ports/driven"
	"github.com/seclens-labs/seclens-cli/internal/core/ports/driving"
	"github.com/seclens-labs/seclens-cli/internal/preprocess"
)

// Ensure PreprocessService implements the interface.
var _ driving.PreprocessRunner = (*PreprocessService)(nil)

// PreprocessService turns stored raw documents into the corpus.
type PreprocessService struct {
	rawStore     driven.RawDocumentStore
	docStore     driven.DocumentStore
	preprocessor *preprocess.Preprocessor
}

// NewPreprocessService creates a preprocess service.
func NewPreprocessService(rawStore driven.RawDocumentStore, docStore driven.DocumentStore, preprocessor *preprocess.Preprocessor) *PreprocessService {
	return &PreprocessService{
		rawStore:     rawStore,
		docStore:     docStore,
		preprocessor: preprocessor,
	}
}

// Preprocess cleans every successful raw document across all sources
// and persists the merged, deduplicated corpus.
func (s *PreprocessService) Preprocess(ctx context.Context) (*driving.PreprocessStatus, error) {
	raws, err := s.rawStore.ListRaw(ctx, "", false)
	if err != nil {
		return nil, fmt.Errorf("loading raw documents: %w", err)
	}

	docs, status := s.preprocessor.Run(raws)

	for i := range docs {
		if err := s.docStore.SaveDocument(ctx, &docs[i]); err != nil {
			return nil, fmt.Errorf("storing document %s: %w", docs[i].ID, err)
		}
	}
	return status, nil
}
