package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seclens-labs/seclens-cli/internal/adapters/driven/storage/memory"
	"github.com/seclens-labs/seclens-cli/internal/core/domain"
	"github.com/seclens-labs/seclens-cli/internal/preprocess"
)

func TestPreprocessService_Preprocess(t *testing.T) {
	rawStore := memory.NewRawDocumentStore()
	docStore := memory.NewDocumentStore()
	ctx := context.Background()

	long := strings.Repeat("The ransomware attack encrypted the database servers. ", 3)
	require.NoError(t, rawStore.SaveRaw(ctx, &domain.RawDocument{
		ID: "raw-1", SourceID: "cisa", Title: "Advisory", Content: long, Success: true,
	}))
	// Duplicate body from another source is dropped.
	require.NoError(t, rawStore.SaveRaw(ctx, &domain.RawDocument{
		ID: "raw-2", SourceID: "csis", Content: long, Success: true,
	}))
	// Too short to keep.
	require.NoError(t, rawStore.SaveRaw(ctx, &domain.RawDocument{
		ID: "raw-3", SourceID: "cisa", Content: "short", Success: true,
	}))
	// Failed extraction never reaches the corpus.
	require.NoError(t, rawStore.SaveRaw(ctx, &domain.RawDocument{
		ID: "raw-4", SourceID: "cisa", Success: false, Error: "fetch failed",
	}))

	service := NewPreprocessService(rawStore, docStore, preprocess.New(preprocess.Options{
		CyberTerms: []string{"ransomware"},
	}))

	status, err := service.Preprocess(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, status.Input)
	assert.Equal(t, 1, status.Kept)
	assert.Equal(t, 1, status.Duplicates)
	assert.Equal(t, 1, status.TooShort)

	docs, err := docStore.ListDocuments(ctx, -1, 0)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "raw-1", docs[0].RawID)
	assert.Contains(t, docs[0].CyberTerms, "ransomware")
}

func TestPreprocessService_EmptyStore(t *testing.T) {
	service := NewPreprocessService(memory.NewRawDocumentStore(), memory.NewDocumentStore(),
		preprocess.New(preprocess.Options{}))

	status, err := service.Preprocess(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, status.Input)
	assert.Equal(t, 0, status.Kept)
}
