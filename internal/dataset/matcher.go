package dataset

import (
	"strings"

	"github.com/seclens-labs/seclens-cli/internal/core/domain"
)

// MatchAspects scans tokens for the lexicon's aspect terms and returns
// the matched spans in sentence order. Matching is case-insensitive and
// longest-match-first: at each position the longest configured term
// wins, and the scan resumes past it, so overlapping shorter terms are
// suppressed. Sentiment on returned spans is left neutral; the builder
// assigns it from context.
func MatchAspects(tokens []string, lex *Lexicon) []domain.AspectSpan {
	lowered := make([]string, len(tokens))
	for i, tok := range tokens {
		lowered[i] = strings.ToLower(tok)
	}

	var spans []domain.AspectSpan
	for i := 0; i < len(lowered); {
		term := longestMatchAt(lowered, i, lex)
		if term == nil {
			i++
			continue
		}

		end := i + len(term)
		spans = append(spans, domain.AspectSpan{
			Start: i,
			End:   end,
			Text:  strings.Join(tokens[i:end], " "),
		})
		i = end
	}
	return spans
}

// longestMatchAt returns the longest lexicon term whose tokens match at
// position i, or nil. The lexicon keeps terms sorted longest first.
func longestMatchAt(lowered []string, i int, lex *Lexicon) []string {
	for _, term := range lex.terms {
		if i+len(term) > len(lowered) {
			continue
		}
		if tokensEqual(lowered[i:i+len(term)], term) {
			return term
		}
	}
	return nil
}

func tokensEqual(a, b []string) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
