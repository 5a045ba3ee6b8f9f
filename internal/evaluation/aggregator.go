// Package evaluation aggregates aspect-sentiment model predictions over
// a corpus or held-out split into corpus-level statistics.
package evaluation

import (
	"context"
	"fmt"
	"time"

	"github.com/seclens-labs/seclens-cli/internal/core/domain"
	"github.com/seclens-labs/seclens-cli/internal/core/ports/driven"
	"github.com/seclens-labs/seclens-cli/internal/logger"
)

// DefaultBatchSize is the number of texts submitted per inference call.
const DefaultBatchSize = 16

// Aggregator runs a model over a set of texts and assembles the
// evaluation report.
type Aggregator struct {
	model     driven.AspectModel
	batchSize int
}

// New creates an Aggregator. A non-positive batch size selects
// DefaultBatchSize.
func New(model driven.AspectModel, batchSize int) *Aggregator {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	return &Aggregator{model: model, batchSize: batchSize}
}

// Evaluate submits the texts in batches and aggregates the predictions.
// A failed batch marks its examples as errored and the run continues;
// per-example failures arrive already marked by the model client. Only
// context cancellation aborts the run.
func (a *Aggregator) Evaluate(ctx context.Context, texts []string, checkpoint driven.Checkpoint) (*domain.EvaluationReport, error) {
	if len(texts) == 0 {
		return nil, fmt.Errorf("evaluating %s: %w", checkpoint.Name, domain.ErrEmptyCorpus)
	}

	report := &domain.EvaluationReport{
		Checkpoint:   checkpoint.Name,
		APCF1:        checkpoint.APCF1,
		Distribution: make(domain.SentimentDistribution),
		CreatedAt:    time.Now().UTC(),
	}

	for start := 0; start < len(texts); start += a.batchSize {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		end := start + a.batchSize
		if end > len(texts) {
			end = len(texts)
		}
		batch := texts[start:end]

		predictions, err := a.model.BatchPredict(ctx, batch)
		if err != nil {
			logger.Warn("evaluation: batch %d-%d failed: %v", start, end, err)
			predictions = failedBatch(batch, err)
		}

		for _, p := range predictions {
			a.tally(report, p)
		}
	}

	successful := report.TotalExamples - report.ErrorCount
	if successful > 0 {
		report.AverageAspects = float64(report.TotalAspects) / float64(successful)
	}

	logger.Info("evaluation: %s: %d examples, %d aspects, %d errors",
		report.Checkpoint, report.TotalExamples, report.TotalAspects, report.ErrorCount)
	return report, nil
}

// tally folds one prediction into the report.
func (a *Aggregator) tally(report *domain.EvaluationReport, p domain.Prediction) {
	report.TotalExamples++
	report.Predictions = append(report.Predictions, p)

	if p.Failed() {
		report.ErrorCount++
		return
	}

	report.TotalAspects += len(p.Aspects)
	for _, sentiment := range p.Sentiments {
		report.Distribution[sentiment]++
	}
}

// failedBatch marks every example of a failed batch as errored so the
// run degrades per-example instead of aborting.
func failedBatch(batch []string, err error) []domain.Prediction {
	predictions := make([]domain.Prediction, len(batch))
	for i, text := range batch {
		predictions[i] = domain.Prediction{Text: text, Error: err.Error()}
	}
	return predictions
}
