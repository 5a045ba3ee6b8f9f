package services

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/seclens-labs/seclens-cli/internal/core/domain"
	"github.com/seclens-labs/seclens-cli/internal/core/ports/driven"
	"github.com/seclens-labs/seclens-cli/internal/core/ports/driving"
	"github.com/seclens-labs/seclens-cli/internal/dataset"
	"github.com/seclens-labs/seclens-cli/internal/evaluation"
	"github.com/seclens-labs/seclens-cli/internal/logger"
)

// Run names used when persisting evaluations.
const (
	RunBaseline = "baseline"
	RunCustom   = "custom"
)

// Ensure EvaluationService implements the interfaces.
var (
	_ driving.EvaluationRunner = (*EvaluationService)(nil)
	_ driving.TrainRunner      = (*EvaluationService)(nil)
)

// EvaluationService drives baseline evaluation, fine-tuning and
// held-out evaluation of the aspect-sentiment model.
type EvaluationService struct {
	docStore   driven.DocumentStore
	evalStore  driven.EvaluationStore
	model      driven.AspectModel
	aggregator *evaluation.Aggregator

	// BaselineCheckpoint is the pretrained checkpoint evaluated by
	// Baseline runs.
	BaselineCheckpoint string
}

// NewEvaluationService creates an evaluation service.
func NewEvaluationService(docStore driven.DocumentStore, evalStore driven.EvaluationStore, model driven.AspectModel, batchSize int) *EvaluationService {
	return &EvaluationService{
		docStore:           docStore,
		evalStore:          evalStore,
		model:              model,
		aggregator:         evaluation.New(model, batchSize),
		BaselineCheckpoint: "english",
	}
}

// Baseline runs the pretrained checkpoint over a corpus sample and
// persists the report under the "baseline" run name. sampleSize <= 0
// evaluates the whole corpus.
func (s *EvaluationService) Baseline(ctx context.Context, sampleSize int) (*domain.EvaluationReport, error) {
	docs, err := s.docStore.ListDocuments(ctx, sampleSize, 0)
	if err != nil {
		return nil, fmt.Errorf("loading corpus sample: %w", err)
	}

	texts := make([]string, len(docs))
	for i, doc := range docs {
		texts[i] = doc.Content
	}

	report, err := s.aggregator.Evaluate(ctx, texts, driven.Checkpoint{Name: s.BaselineCheckpoint})
	if err != nil {
		return nil, err
	}
	if err := s.evalStore.SaveEvaluation(ctx, RunBaseline, report); err != nil {
		return nil, fmt.Errorf("storing baseline report: %w", err)
	}
	return report, nil
}

// Train fine-tunes the model on the dataset under datasetDir.
func (s *EvaluationService) Train(ctx context.Context, datasetDir string) (string, error) {
	logger.Section("Fine-tuning on " + datasetDir)
	checkpoint, err := s.model.Train(ctx, datasetDir)
	if err != nil {
		return "", fmt.Errorf("training on %s: %w", datasetDir, err)
	}
	logger.Info("train: new checkpoint %s", checkpoint)
	return checkpoint, nil
}

// Evaluate runs the best fine-tuned checkpoint over the test split in
// datasetDir and persists the report under the "custom" run name.
func (s *EvaluationService) Evaluate(ctx context.Context, datasetDir string) (*domain.EvaluationReport, error) {
	checkpoint, err := s.bestCheckpoint(ctx)
	if err != nil {
		return nil, err
	}

	sentences, err := dataset.ReadSplit(filepath.Join(datasetDir, domain.SplitTest.Filename()))
	if err != nil {
		return nil, fmt.Errorf("loading test split: %w", err)
	}

	texts := make([]string, len(sentences))
	for i, sentence := range sentences {
		texts[i] = sentence.Text()
	}

	report, err := s.aggregator.Evaluate(ctx, texts, checkpoint)
	if err != nil {
		return nil, err
	}
	if err := s.evalStore.SaveEvaluation(ctx, RunCustom, report); err != nil {
		return nil, fmt.Errorf("storing evaluation report: %w", err)
	}
	return report, nil
}

// bestCheckpoint picks the fine-tuned checkpoint with the highest APC
// F1 score.
func (s *EvaluationService) bestCheckpoint(ctx context.Context) (driven.Checkpoint, error) {
	checkpoints, err := s.model.Checkpoints(ctx)
	if err != nil {
		return driven.Checkpoint{}, fmt.Errorf("listing checkpoints: %w", err)
	}

	best := driven.Checkpoint{}
	for _, c := range checkpoints {
		if c.APCF1 > best.APCF1 {
			best = c
		}
	}
	if best.Name == "" {
		return driven.Checkpoint{}, fmt.Errorf("no fine-tuned checkpoint available: %w", domain.ErrNoCheckpoint)
	}
	return best, nil
}
