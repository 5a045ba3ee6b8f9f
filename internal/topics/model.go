package topics

import (
	"fmt"
	"sort"

	"github.com/seclens-labs/seclens-cli/internal/core/domain"
	"github.com/seclens-labs/seclens-cli/internal/logger"
)

const (
	// DefaultTopics is the cluster count when none is configured.
	DefaultTopics = 8

	// topTermsPerTopic is how many centroid terms describe a topic.
	topTermsPerTopic = 10
)

// Modeler fits a topic model over the corpus.
type Modeler struct {
	// NumTopics is the cluster count k. Zero means DefaultTopics.
	NumTopics int

	// MinDF is passed to the vectorizer.
	MinDF int

	// Seed fixes the clustering. Zero means DefaultSeed.
	Seed int64
}

// Fit vectorizes the documents, clusters them and returns the topics
// plus one assignment per input document. An empty corpus is an error.
func (m *Modeler) Fit(docs []domain.Document) ([]domain.Topic, []domain.TopicAssignment, error) {
	if len(docs) == 0 {
		return nil, nil, fmt.Errorf("fitting topic model: %w", domain.ErrEmptyCorpus)
	}

	k := m.NumTopics
	if k <= 0 {
		k = DefaultTopics
	}
	seed := m.Seed
	if seed == 0 {
		seed = DefaultSeed
	}

	texts := make([]string, len(docs))
	for i, doc := range docs {
		texts[i] = doc.Content
	}

	vectorizer := &Vectorizer{MinDF: m.MinDF}
	vectors := vectorizer.Fit(texts)
	if vectorizer.VocabularySize() == 0 {
		return nil, nil, fmt.Errorf("fitting topic model: vocabulary empty after pruning: %w", domain.ErrEmptyCorpus)
	}
	logger.Debug("topics: %d documents, %d-term vocabulary, k=%d", len(docs), vectorizer.VocabularySize(), k)

	assignments, similarities, centroids := kmeans(vectors, k, seed)

	topics := make([]domain.Topic, len(centroids))
	for c, centroid := range centroids {
		topics[c] = domain.Topic{
			ID:    c,
			Terms: topTerms(centroid, vectorizer, topTermsPerTopic),
		}
	}

	out := make([]domain.TopicAssignment, len(docs))
	for i, doc := range docs {
		out[i] = domain.TopicAssignment{
			DocumentID:  doc.ID,
			TopicID:     assignments[i],
			Probability: clamp01(similarities[i]),
		}
		topics[assignments[i]].DocumentCount++
	}

	logger.Info("topics: fitted %d topics over %d documents", len(topics), len(docs))
	return topics, out, nil
}

// topTerms returns the n highest-weighted vocabulary terms of a centroid.
func topTerms(centroid []float64, v *Vectorizer, n int) []string {
	type weighted struct {
		idx    int
		weight float64
	}
	ranked := make([]weighted, 0, len(centroid))
	for idx, weight := range centroid {
		if weight > 0 {
			ranked = append(ranked, weighted{idx, weight})
		}
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].weight != ranked[j].weight {
			return ranked[i].weight > ranked[j].weight
		}
		return ranked[i].idx < ranked[j].idx
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	terms := make([]string, len(ranked))
	for i, r := range ranked {
		terms[i] = v.Term(r.idx)
	}
	return terms
}

func clamp01(val float64) float64 {
	switch {
	case val < 0:
		return 0
	case val > 1:
		return 1
	default:
		return val
	}
}
