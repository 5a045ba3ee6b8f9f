package driven

// SentenceSegmenter splits document text into sentences using a
// language-aware boundary detector.
type SentenceSegmenter interface {
	// Segment returns the sentences of text in order.
	Segment(text string) []string
}
