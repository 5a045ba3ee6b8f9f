package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seclens-labs/seclens-cli/internal/adapters/driven/storage/memory"
	"github.com/seclens-labs/seclens-cli/internal/core/domain"
	"github.com/seclens-labs/seclens-cli/internal/dataset"
)

func TestReportService_Generate(t *testing.T) {
	rawStore := memory.NewRawDocumentStore()
	docStore := memory.NewDocumentStore()
	evalStore := memory.NewEvaluationStore()
	ctx := context.Background()

	require.NoError(t, rawStore.SaveRaw(ctx, &domain.RawDocument{ID: "r1", SourceID: "cisa", Success: true}))
	require.NoError(t, rawStore.SaveRaw(ctx, &domain.RawDocument{ID: "r2", SourceID: "csis", Success: true}))
	require.NoError(t, docStore.SaveDocument(ctx, &domain.Document{ID: "d1", Content: "body"}))
	require.NoError(t, docStore.SaveTopics(ctx, []domain.Topic{
		{ID: 0, Terms: []string{"ransomware", "payment"}, DocumentCount: 1},
	}))
	require.NoError(t, evalStore.SaveEvaluation(ctx, RunBaseline, &domain.EvaluationReport{
		Checkpoint:    "english",
		TotalExamples: 10,
		TotalAspects:  14,
	}))

	service := NewReportService(rawStore, docStore, evalStore, "")
	dir := t.TempDir()

	text, err := service.Generate(ctx, dir)
	require.NoError(t, err)
	assert.Contains(t, text, "cisa: 1 documents")
	assert.Contains(t, text, "csis: 1 documents")
	assert.Contains(t, text, "processed corpus: 1 documents")
	assert.Contains(t, text, "ransomware")
	assert.Contains(t, text, "english")

	written, err := os.ReadFile(filepath.Join(dir, ReportFilename))
	require.NoError(t, err)
	assert.Equal(t, text, string(written))
}

func TestReportService_IncludesDatasetStats(t *testing.T) {
	ctx := context.Background()
	datasetDir := t.TempDir()
	require.NoError(t, dataset.WriteStats(datasetDir, &domain.DatasetStats{
		DocumentsProcessed: 4,
		SentencesEmitted:   20,
		SkippedTooLong:     1,
		SplitSizes: map[domain.Split]int{
			domain.SplitTrain: 14,
			domain.SplitValid: 3,
			domain.SplitTest:  3,
		},
	}))

	service := NewReportService(memory.NewRawDocumentStore(), memory.NewDocumentStore(),
		memory.NewEvaluationStore(), datasetDir)

	text, err := service.Generate(ctx, t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, text, "CUSTOM DATASET:")
	assert.Contains(t, text, "4 documents processed, 20 sentences emitted")
	assert.Contains(t, text, "train: 14 sentences")
	assert.Contains(t, text, "test: 3 sentences")
}

func TestReportService_MissingDatasetStats(t *testing.T) {
	service := NewReportService(memory.NewRawDocumentStore(), memory.NewDocumentStore(),
		memory.NewEvaluationStore(), t.TempDir())

	text, err := service.Generate(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.NotContains(t, text, "CUSTOM DATASET:")
}

func TestReportService_EmptyStores(t *testing.T) {
	service := NewReportService(memory.NewRawDocumentStore(), memory.NewDocumentStore(), memory.NewEvaluationStore(), "")

	text, err := service.Generate(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, text, "no documents collected")
}
