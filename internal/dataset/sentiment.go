package dataset

import (
	"strings"

	"github.com/seclens-labs/seclens-cli/internal/core/domain"
)

// AssignSentiment inspects the window of tokens on each side of a span
// and counts positive and negative cue words. The majority polarity
// wins; ties and cue-free contexts default to neutral. Tokens inside
// the span itself are counted too, so a term that is its own cue
// ("breach") pulls its polarity along.
func AssignSentiment(tokens []string, span domain.AspectSpan, lex *Lexicon) domain.Sentiment {
	start := span.Start - lex.Window
	if start < 0 {
		start = 0
	}
	end := span.End + lex.Window
	if end > len(tokens) {
		end = len(tokens)
	}

	var positive, negative int
	for _, tok := range tokens[start:end] {
		word := strings.ToLower(strings.Trim(tok, edgePunct))
		if lex.isPositiveCue(word) {
			positive++
		}
		if lex.isNegativeCue(word) {
			negative++
		}
	}

	switch {
	case positive > negative:
		return domain.SentimentPositive
	case negative > positive:
		return domain.SentimentNegative
	default:
		return domain.SentimentNeutral
	}
}
