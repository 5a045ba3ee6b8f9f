package domain

// Sentiment is the polarity assigned to an aspect span.
type Sentiment int

const (
	// SentimentNegative marks an aspect discussed in a negative context.
	SentimentNegative Sentiment = -1

	// SentimentNeutral marks an aspect with no clear polarity.
	SentimentNeutral Sentiment = 0

	// SentimentPositive marks an aspect discussed in a positive context.
	SentimentPositive Sentiment = 1
)

// String returns the human-readable sentiment word used in the
// auxiliary APC export format.
func (s Sentiment) String() string {
	switch s {
	case SentimentNegative:
		return "Negative"
	case SentimentPositive:
		return "Positive"
	default:
		return "Neutral"
	}
}

// Label returns the numeric wire label used in the .dat.atepc format:
// "-1", "0" or "1".
func (s Sentiment) Label() string {
	switch s {
	case SentimentNegative:
		return "-1"
	case SentimentPositive:
		return "1"
	default:
		return "0"
	}
}

// IOB tags for aspect term spans.
const (
	// TagOutside marks a token outside any aspect span.
	TagOutside = "O"

	// TagBegin marks the first token of an aspect span.
	TagBegin = "B-ASP"

	// TagInside marks a continuation token of an aspect span.
	TagInside = "I-ASP"
)

// AspectSpan is a contiguous token range within a sentence identified
// as a cybersecurity aspect term.
type AspectSpan struct {
	// Start is the index of the first token of the span.
	Start int

	// End is the index one past the last token of the span.
	End int

	// Text is the surface form of the matched term.
	Text string

	// Sentiment is the single polarity assigned to the whole span.
	Sentiment Sentiment
}

// Len returns the number of tokens covered by the span.
func (a AspectSpan) Len() int {
	return a.End - a.Start
}

// AnnotatedSentence is a tokenized sentence with parallel IOB tags and
// sentiment labels. It is created once by the dataset builder and never
// mutated after serialization.
type AnnotatedSentence struct {
	// Tokens are the whitespace-delimited words of the sentence.
	Tokens []string

	// Tags holds one IOB tag per token.
	Tags []string

	// Labels holds one numeric sentiment label per token
	// ("0" for O-tagged tokens).
	Labels []string

	// Spans are the aspect spans the tags were derived from.
	Spans []AspectSpan
}

// Validate checks the structural invariants of an annotated sentence:
// the token, tag and label slices must be the same length, and an
// I-ASP tag may never open a span.
func (s AnnotatedSentence) Validate() error {
	if len(s.Tokens) != len(s.Tags) || len(s.Tokens) != len(s.Labels) {
		return ErrLabelMismatch
	}
	for i, tag := range s.Tags {
		if tag != TagInside {
			continue
		}
		if i == 0 || (s.Tags[i-1] != TagBegin && s.Tags[i-1] != TagInside) {
			return ErrDanglingInsideTag
		}
	}
	return nil
}

// Text reconstructs the sentence from its tokens.
func (s AnnotatedSentence) Text() string {
	text := ""
	for i, tok := range s.Tokens {
		if i > 0 {
			text += " "
		}
		text += tok
	}
	return text
}
