package services

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/seclens-labs/seclens-cli/internal/core/domain"
	"github.com/seclens-labs/seclens-cli/internal/core/ports/driven"
	"github.com/seclens-labs/seclens-cli/internal/core/ports/driving"
	"github.com/seclens-labs/seclens-cli/internal/dataset"
	"github.com/seclens-labs/seclens-cli/internal/logger"
)

// Ensure DatasetService implements the interface.
var _ driving.DatasetRunner = (*DatasetService)(nil)

// DatasetService builds the custom ATEPC dataset from the corpus.
type DatasetService struct {
	docStore driven.DocumentStore
	builder  *dataset.Builder
	ratio    domain.SplitRatio
	seed     int64
}

// NewDatasetService creates a dataset service using the documented
// 70/15/15 split and the fixed dataset seed.
func NewDatasetService(docStore driven.DocumentStore, builder *dataset.Builder) *DatasetService {
	return &DatasetService{
		docStore: docStore,
		builder:  builder,
		ratio:    domain.DefaultSplitRatio,
		seed:     dataset.DefaultSeed,
	}
}

// BuildDataset annotates the corpus sentence by sentence, partitions
// the result deterministically and writes the split files plus the
// auxiliary APC export under outDir.
func (s *DatasetService) BuildDataset(ctx context.Context, outDir string) (*domain.DatasetStats, error) {
	docs, err := s.docStore.ListDocuments(ctx, -1, 0)
	if err != nil {
		return nil, fmt.Errorf("loading corpus: %w", err)
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("building dataset: %w", domain.ErrEmptyCorpus)
	}

	sentences, stats, err := s.builder.Build(docs)
	if err != nil {
		return nil, err
	}
	if len(sentences) == 0 {
		return nil, fmt.Errorf("building dataset: no sentences with aspects: %w", domain.ErrEmptyCorpus)
	}

	splits := dataset.Partition(sentences, s.ratio, s.seed)
	if err := dataset.WriteSplits(outDir, splits, stats); err != nil {
		return nil, err
	}
	if err := dataset.WriteAPC(filepath.Join(outDir, "apc_export.txt"), sentences); err != nil {
		return nil, err
	}

	logger.Info("dataset: wrote %d/%d/%d sentences to %s",
		stats.SplitSizes[domain.SplitTrain],
		stats.SplitSizes[domain.SplitValid],
		stats.SplitSizes[domain.SplitTest],
		outDir)
	return stats, nil
}
