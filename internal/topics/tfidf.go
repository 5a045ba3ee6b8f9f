package topics

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// DefaultMinDF prunes vocabulary terms appearing in fewer documents.
const DefaultMinDF = 2

var tokenPattern = regexp.MustCompile(`[^a-z0-9\s]+`)

// tokenizer stop words. The corpus is already stop-word filtered by the
// preprocessor; these catch what cleaning reintroduces or misses.
var stopwords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true,
	"but": true, "in": true, "on": true, "at": true, "to": true,
	"for": true, "of": true, "with": true, "by": true, "from": true,
	"as": true, "is": true, "was": true, "are": true, "were": true,
	"be": true, "been": true, "being": true, "have": true, "has": true,
	"had": true, "do": true, "does": true, "did": true, "will": true,
	"would": true, "could": true, "should": true, "may": true, "might": true,
	"can": true, "this": true, "that": true, "these": true, "those": true,
	"it": true, "its": true, "they": true, "them": true, "their": true,
}

// tokenize lowercases, strips non-alphanumerics and drops stop words
// and words under three characters.
func tokenize(text string) []string {
	text = strings.ToLower(text)
	text = tokenPattern.ReplaceAllString(text, " ")

	words := strings.Fields(text)
	filtered := words[:0]
	for _, word := range words {
		if len(word) >= 3 && !stopwords[word] {
			filtered = append(filtered, word)
		}
	}
	return filtered
}

// Vectorizer converts documents into L2-normalized TF-IDF vectors over
// a shared vocabulary.
type Vectorizer struct {
	// MinDF drops terms appearing in fewer than MinDF documents.
	// Zero means DefaultMinDF.
	MinDF int

	vocab map[string]int
	terms []string // index -> term
	idf   []float64
}

// Fit builds the vocabulary and IDF table from the corpus and returns
// the corpus vectors. Terms below the min-df threshold are pruned.
func (v *Vectorizer) Fit(texts []string) [][]float64 {
	if v.MinDF <= 0 {
		v.MinDF = DefaultMinDF
	}

	tokenized := make([][]string, len(texts))
	df := make(map[string]int)
	for i, text := range texts {
		tokenized[i] = tokenize(text)
		seen := make(map[string]bool)
		for _, token := range tokenized[i] {
			if !seen[token] {
				df[token]++
				seen[token] = true
			}
		}
	}

	// Stable vocabulary order keeps runs reproducible.
	v.terms = v.terms[:0]
	for term, count := range df {
		if count >= v.MinDF {
			v.terms = append(v.terms, term)
		}
	}
	sort.Strings(v.terms)

	v.vocab = make(map[string]int, len(v.terms))
	v.idf = make([]float64, len(v.terms))
	docCount := float64(len(texts))
	for i, term := range v.terms {
		v.vocab[term] = i
		v.idf[i] = math.Log(docCount / float64(df[term]))
	}

	vectors := make([][]float64, len(texts))
	for i, tokens := range tokenized {
		vectors[i] = v.vectorize(tokens)
	}
	return vectors
}

// Transform vectorizes a text against the fitted vocabulary.
func (v *Vectorizer) Transform(text string) []float64 {
	return v.vectorize(tokenize(text))
}

// Term returns the vocabulary term at the given vector index.
func (v *Vectorizer) Term(idx int) string {
	return v.terms[idx]
}

// VocabularySize returns the number of retained terms.
func (v *Vectorizer) VocabularySize() int {
	return len(v.terms)
}

func (v *Vectorizer) vectorize(tokens []string) []float64 {
	vector := make([]float64, len(v.terms))
	if len(tokens) == 0 {
		return vector
	}

	tf := make(map[int]float64)
	for _, token := range tokens {
		if idx, ok := v.vocab[token]; ok {
			tf[idx]++
		}
	}
	total := float64(len(tokens))
	for idx, count := range tf {
		vector[idx] = (count / total) * v.idf[idx]
	}
	return normalize(vector)
}

// normalize scales a vector to unit L2 length. Zero vectors pass
// through unchanged.
func normalize(vector []float64) []float64 {
	var norm float64
	for _, val := range vector {
		norm += val * val
	}
	norm = math.Sqrt(norm)
	if norm == 0 {
		return vector
	}
	for i := range vector {
		vector[i] /= norm
	}
	return vector
}
