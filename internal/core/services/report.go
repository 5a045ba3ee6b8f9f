package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/seclens-labs/seclens-cli/internal/core/domain"
	"github.com/seclens-labs/seclens-cli/internal/core/ports/driven"
	"github.com/seclens-labs/seclens-cli/internal/core/ports/driving"
	"github.com/seclens-labs/seclens-cli/internal/dataset"
	"github.com/seclens-labs/seclens-cli/internal/logger"
	"github.com/seclens-labs/seclens-cli/internal/report"
)

// ReportFilename is the completion report's on-disk name.
const ReportFilename = "completion_report.txt"

// Ensure ReportService implements the interface.
var _ driving.ReportRunner = (*ReportService)(nil)

// ReportService assembles the completion report from the stores and
// the persisted dataset build summary.
type ReportService struct {
	rawStore   driven.RawDocumentStore
	docStore   driven.DocumentStore
	evalStore  driven.EvaluationStore
	datasetDir string
}

// NewReportService creates a report service. datasetDir is where the
// dataset stage wrote its stats; an empty string or a directory without
// a stats file simply omits the dataset section.
func NewReportService(rawStore driven.RawDocumentStore, docStore driven.DocumentStore, evalStore driven.EvaluationStore, datasetDir string) *ReportService {
	return &ReportService{
		rawStore:   rawStore,
		docStore:   docStore,
		evalStore:  evalStore,
		datasetDir: datasetDir,
	}
}

// Generate gathers each stage's persisted output, renders the report
// and writes it under outDir. Stages that have not run yet are simply
// absent from the report.
func (s *ReportService) Generate(ctx context.Context, outDir string) (string, error) {
	collected, _, err := s.rawStore.CountRaw(ctx)
	if err != nil {
		return "", fmt.Errorf("counting raw documents: %w", err)
	}
	corpusSize, err := s.docStore.CountDocuments(ctx)
	if err != nil {
		return "", fmt.Errorf("counting corpus: %w", err)
	}
	topics, err := s.docStore.ListTopics(ctx)
	if err != nil {
		return "", fmt.Errorf("loading topics: %w", err)
	}

	summary := report.Summary{
		CollectedBySource: collected,
		CorpusSize:        corpusSize,
		Topics:            topics,
		Baseline:          s.loadEvaluation(ctx, RunBaseline),
		Custom:            s.loadEvaluation(ctx, RunCustom),
		Dataset:           s.loadDatasetStats(),
	}

	text := report.Generate(summary)

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("creating report directory: %w", err)
	}
	path := filepath.Join(outDir, ReportFilename)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}
	logger.Info("report: written to %s", path)
	return text, nil
}

// loadDatasetStats returns the persisted build summary, or nil when
// the dataset stage has not run yet.
func (s *ReportService) loadDatasetStats() *domain.DatasetStats {
	if s.datasetDir == "" {
		return nil
	}
	stats, err := dataset.ReadStats(s.datasetDir)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("report: loading dataset stats: %v", err)
		}
		return nil
	}
	return stats
}

// loadEvaluation returns a stored run, or nil when it has not run yet.
func (s *ReportService) loadEvaluation(ctx context.Context, name string) *domain.EvaluationReport {
	evalReport, err := s.evalStore.GetEvaluation(ctx, name)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Warn("report: loading %s evaluation: %v", name, err)
		}
		return nil
	}
	return evalReport
}
