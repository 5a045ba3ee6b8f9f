package driving

import (
	"context"

	"github.com/seclens-labs/seclens-cli/internal/core/domain"
)

// CollectRunner drives the collection stage.
type CollectRunner interface {
	// Collect runs every registered collector and persists the
	// results. Returns per-source document counts.
	Collect(ctx context.Context) (*CollectStatus, error)

	// Watch ingests documents from watch-capable sources as they
	// appear, persisting them until ctx is cancelled.
	Watch(ctx context.Context) error
}

// CollectStatus reports the outcome of a collection run.
type CollectStatus struct {
	// Collected counts stored documents per source.
	Collected map[string]int

	// Failed counts unsuccessful extractions per source.
	Failed map[string]int
}

// PreprocessRunner drives the cleaning and deduplication stage.
type PreprocessRunner interface {
	// Preprocess cleans all stored raw documents into the corpus.
	Preprocess(ctx context.Context) (*PreprocessStatus, error)
}

// PreprocessStatus reports the outcome of a preprocessing run.
type PreprocessStatus struct {
	// Input is the number of raw documents read.
	Input int

	// Kept is the number of corpus documents written.
	Kept int

	// Duplicates is the number of documents dropped as duplicates.
	Duplicates int

	// TooShort is the number of documents dropped for length.
	TooShort int
}

// TopicRunner drives the topic modeling stage.
type TopicRunner interface {
	// ModelTopics clusters the corpus and persists assignments.
	ModelTopics(ctx context.Context) ([]domain.Topic, error)
}

// DatasetRunner drives the custom dataset construction stage.
type DatasetRunner interface {
	// BuildDataset converts the corpus into IOB+sentiment splits
	// written under outDir.
	BuildDataset(ctx context.Context, outDir string) (*domain.DatasetStats, error)
}

// TrainRunner drives custom model fine-tuning.
type TrainRunner interface {
	// Train fine-tunes the model on the dataset under datasetDir and
	// returns the new checkpoint name.
	Train(ctx context.Context, datasetDir string) (string, error)
}

// EvaluationRunner drives baseline and custom model evaluation.
type EvaluationRunner interface {
	// Baseline evaluates a pretrained checkpoint over a corpus sample.
	Baseline(ctx context.Context, sampleSize int) (*domain.EvaluationReport, error)

	// Evaluate evaluates the best fine-tuned checkpoint over the test
	// split in datasetDir.
	Evaluate(ctx context.Context, datasetDir string) (*domain.EvaluationReport, error)
}

// ReportRunner produces the phase completion report.
type ReportRunner interface {
	// Generate assembles the report and writes it to outDir.
	// Returns the report text.
	Generate(ctx context.Context, outDir string) (string, error)
}
