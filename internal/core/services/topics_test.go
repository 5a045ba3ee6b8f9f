package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seclens-labs/seclens-cli/internal/adapters/driven/storage/memory"
	"github.com/seclens-labs/seclens-cli/internal/core/domain"
	"github.com/seclens-labs/seclens-cli/internal/topics"
)

func TestTopicService_ModelTopics(t *testing.T) {
	docStore := memory.NewDocumentStore()
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	bodies := []string{
		"ransomware encrypted hospital servers demanding bitcoin payment",
		"ransomware gang leaked stolen files after ransom payment refused",
		"phishing campaign harvested employee credentials with fake login pages",
		"spear phishing emails delivered credential stealing malware attachments",
	}
	for i, body := range bodies {
		require.NoError(t, docStore.SaveDocument(ctx, &domain.Document{
			ID:        fmt.Sprintf("doc-%d", i),
			Content:   body,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	service := NewTopicService(docStore, &topics.Modeler{NumTopics: 2, MinDF: 1})

	fitted, err := service.ModelTopics(ctx)
	require.NoError(t, err)
	require.Len(t, fitted, 2)
	assert.Equal(t, 4, fitted[0].DocumentCount+fitted[1].DocumentCount)

	stored, err := docStore.ListTopics(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, 2)

	docs, err := docStore.ListDocuments(ctx, -1, 0)
	require.NoError(t, err)
	for _, doc := range docs {
		require.NotNil(t, doc.TopicID, "document %s has no topic", doc.ID)
	}
}

func TestTopicService_EmptyCorpus(t *testing.T) {
	service := NewTopicService(memory.NewDocumentStore(), &topics.Modeler{NumTopics: 2, MinDF: 1})

	_, err := service.ModelTopics(context.Background())
	assert.ErrorIs(t, err, domain.ErrEmptyCorpus)
}
