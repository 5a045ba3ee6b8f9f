package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDocument_Fields tests Document structure fields
func TestDocument_Fields(t *testing.T) {
	now := time.Now()
	topicID := 3

	doc := Document{
		ID:               "doc-123",
		SourceID:         "cisa",
		RawID:            "raw-456",
		Title:            "Ransomware Advisory",
		Content:          "ransomware attack encrypted patient records",
		TextLength:       43,
		CyberTerms:       []string{"ransomware"},
		TopicID:          &topicID,
		TopicProbability: 0.82,
		CreatedAt:        now,
	}

	assert.Equal(t, "doc-123", doc.ID)
	assert.Equal(t, "cisa", doc.SourceID)
	assert.Equal(t, "raw-456", doc.RawID)
	assert.Equal(t, 43, doc.TextLength)
	assert.Equal(t, []string{"ransomware"}, doc.CyberTerms)
	require.NotNil(t, doc.TopicID)
	assert.Equal(t, 3, *doc.TopicID)
	assert.InDelta(t, 0.82, doc.TopicProbability, 1e-9)
	assert.Equal(t, now, doc.CreatedAt)
}

// TestDocument_WithoutTopic tests a document before topic assignment
func TestDocument_WithoutTopic(t *testing.T) {
	doc := Document{
		ID:       "doc-123",
		SourceID: "eurepoc",
		Content:  "phishing campaign targeted financial institutions",
	}

	assert.Nil(t, doc.TopicID)
	assert.Zero(t, doc.TopicProbability)
}
