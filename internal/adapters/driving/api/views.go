package api

import (
	"time"

	"github.com/seclens-labs/seclens-cli/internal/core/domain"
)

// documentView is the wire shape of a corpus document.
type documentView struct {
	ID               string    `json:"id"`
	SourceID         string    `json:"source_id"`
	Title            string    `json:"title,omitempty"`
	Content          string    `json:"content"`
	TextLength       int       `json:"text_length"`
	CyberTerms       []string  `json:"cyber_terms,omitempty"`
	TopicID          *int      `json:"topic_id,omitempty"`
	TopicProbability float64   `json:"topic_probability,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// topicView is the wire shape of a topic cluster.
type topicView struct {
	ID            int      `json:"id"`
	Terms         []string `json:"terms"`
	DocumentCount int      `json:"document_count"`
}

// evaluationRunView is one row of the evaluation listing.
type evaluationRunView struct {
	Name       string `json:"name"`
	Checkpoint string `json:"checkpoint"`
	CreatedAt  string `json:"created_at"`
}

func toDocumentView(doc domain.Document) documentView {
	return documentView{
		ID:               doc.ID,
		SourceID:         doc.SourceID,
		Title:            doc.Title,
		Content:          doc.Content,
		TextLength:       doc.TextLength,
		CyberTerms:       doc.CyberTerms,
		TopicID:          doc.TopicID,
		TopicProbability: doc.TopicProbability,
		CreatedAt:        doc.CreatedAt,
	}
}

func toDocumentViews(docs []domain.Document) []documentView {
	views := make([]documentView, len(docs))
	for i, doc := range docs {
		views[i] = toDocumentView(doc)
	}
	return views
}
