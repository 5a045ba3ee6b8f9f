package domain

import "time"

// Document represents a cleaned, deduplicated corpus unit.
// It is the canonical representation after preprocessing and the
// input to every downstream analysis stage.
type Document struct {
	// ID is the unique identifier for the document.
	ID string

	// SourceID identifies the collector the text originated from.
	SourceID string

	// RawID links back to the RawDocument this text was derived from.
	RawID string

	// Title is carried over from the raw document.
	Title string

	// Content is the cleaned text body.
	Content string

	// TextLength is the length of Content in characters.
	TextLength int

	// CyberTerms lists the configured cybersecurity terms found in Content.
	CyberTerms []string

	// TopicID is the cluster assigned by the topic modeler.
	// Nil until the topic stage has run.
	TopicID *int

	// TopicProbability is the document's similarity to its topic centroid.
	TopicProbability float64

	// CreatedAt is when the document entered the corpus.
	CreatedAt time.Time
}
