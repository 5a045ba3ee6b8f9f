package domain

import "time"

// RawDocument represents one collected incident report or advisory.
// It is a collector's output before cleaning and deduplication.
// Raw documents are immutable once stored.
type RawDocument struct {
	// ID is the unique identifier for the raw document.
	ID string

	// SourceID identifies the collector that produced this document
	// (e.g. "eurepoc", "cisa", "csis").
	SourceID string

	// URI is the original location (URL or local file path).
	URI string

	// Title is the report title as published by the source.
	Title string

	// Content is the raw text body as extracted from the source.
	Content string

	// RetrievedAt is when the document was collected.
	RetrievedAt time.Time

	// Success records whether extraction produced usable content.
	// Failed fetches are kept for batch-level reporting.
	Success bool

	// Error holds the failure reason when Success is false.
	Error string

	// Metadata contains source-specific key-value pairs
	// (incident type, severity, countries, impact flags, ...).
	Metadata map[string]any
}
