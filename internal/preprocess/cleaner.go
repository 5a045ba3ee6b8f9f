package preprocess

import (
	"regexp"
	"strings"
)

var (
	// nonWord removes everything that is not a word character, hyphen,
	// period or whitespace. Hyphens and periods are kept because domain
	// terms depend on them ("denial-of-service", version numbers).
	nonWord = regexp.MustCompile(`[^\w\s.\-]`)

	whitespace = regexp.MustCompile(`\s+`)
)

// defaultStopWords is the small English stop-word list applied during
// cleaning. Domain terms are never stop words.
var defaultStopWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {},
	"be": {}, "by": {}, "for": {}, "from": {}, "has": {}, "he": {},
	"in": {}, "is": {}, "it": {}, "its": {}, "of": {}, "on": {},
	"that": {}, "the": {}, "to": {}, "was": {}, "were": {}, "will": {},
	"with": {},
}

// Clean normalizes a text body: lowercase, strip punctuation except
// hyphens and periods, drop stop words, collapse whitespace.
func Clean(text string, stopWords map[string]struct{}) string {
	if stopWords == nil {
		stopWords = defaultStopWords
	}

	text = strings.ToLower(text)
	text = nonWord.ReplaceAllString(text, " ")
	text = whitespace.ReplaceAllString(text, " ")

	words := strings.Fields(text)
	kept := words[:0]
	for _, word := range words {
		if _, stop := stopWords[word]; stop {
			continue
		}
		kept = append(kept, word)
	}

	return strings.Join(kept, " ")
}

// FindTerms returns the configured cybersecurity terms present in the
// cleaned text, in the order they are configured. Matching is simple
// substring containment; terms are expected lowercase.
func FindTerms(cleaned string, terms []string) []string {
	var found []string
	for _, term := range terms {
		if term == "" {
			continue
		}
		if strings.Contains(cleaned, strings.ToLower(term)) {
			found = append(found, term)
		}
	}
	return found
}
