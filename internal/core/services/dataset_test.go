package services

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seclens-labs/seclens-cli/internal/adapters/driven/storage/memory"
	"github.com/seclens-labs/seclens-cli/internal/core/domain"
	"github.com/seclens-labs/seclens-cli/internal/dataset"
)

// lineSegmenter splits documents on newlines; real segmentation is
// covered in the segment package.
type lineSegmenter struct{}

func (lineSegmenter) Segment(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

func TestDatasetService_BuildDataset(t *testing.T) {
	docStore := memory.NewDocumentStore()
	ctx := context.Background()

	require.NoError(t, docStore.SaveDocument(ctx, &domain.Document{
		ID: "doc-1",
		Content: "Firewall vulnerabilities allowed unauthorized access to the network.\n" +
			"The data breach compromised thousands of customer records.\n" +
			"Nothing relevant happened on Tuesday afternoon.",
	}))

	service := NewDatasetService(docStore, dataset.NewBuilder(lineSegmenter{}, nil))
	dir := t.TempDir()

	stats, err := service.BuildDataset(ctx, dir)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.DocumentsProcessed)
	assert.Equal(t, 2, stats.SentencesEmitted)
	assert.Equal(t, 1, stats.SkippedNoAspects)

	total := 0
	for _, split := range []domain.Split{domain.SplitTrain, domain.SplitValid, domain.SplitTest} {
		path := filepath.Join(dir, split.Filename())
		require.FileExists(t, path)
		sentences, err := dataset.ReadSplit(path)
		require.NoError(t, err)
		total += len(sentences)
		assert.Equal(t, len(sentences), stats.SplitSizes[split])
	}
	assert.Equal(t, 2, total)

	apc, err := os.ReadFile(filepath.Join(dir, "apc_export.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(apc), "|||")
}

func TestDatasetService_EmptyCorpus(t *testing.T) {
	service := NewDatasetService(memory.NewDocumentStore(), dataset.NewBuilder(lineSegmenter{}, nil))

	_, err := service.BuildDataset(context.Background(), t.TempDir())
	assert.ErrorIs(t, err, domain.ErrEmptyCorpus)
}

func TestDatasetService_NoAspectSentences(t *testing.T) {
	docStore := memory.NewDocumentStore()
	ctx := context.Background()
	require.NoError(t, docStore.SaveDocument(ctx, &domain.Document{
		ID:      "doc-1",
		Content: "Nothing relevant happened on Tuesday afternoon at all.",
	}))

	service := NewDatasetService(docStore, dataset.NewBuilder(lineSegmenter{}, nil))

	_, err := service.BuildDataset(ctx, t.TempDir())
	assert.ErrorIs(t, err, domain.ErrEmptyCorpus)
}
