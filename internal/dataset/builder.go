package dataset

import (
	"errors"
	"fmt"

	"github.com/seclens-labs/seclens-cli/internal/core/domain"
	"github.com/seclens-labs/seclens-cli/internal/core/ports/driven"
	"github.com/seclens-labs/seclens-cli/internal/logger"
)

// ErrNoAspects is returned by Annotate when a sentence contains none of
// the lexicon's aspect terms. Such sentences carry no training signal
// and are skipped.
var ErrNoAspects = errors.New("no aspect terms matched")

// Builder converts corpus documents into annotated sentences.
type Builder struct {
	segmenter driven.SentenceSegmenter
	lex       *Lexicon
}

// NewBuilder creates a Builder. A nil lexicon selects the default
// cybersecurity lexicon. The lexicon is compiled here, once.
func NewBuilder(segmenter driven.SentenceSegmenter, lex *Lexicon) *Builder {
	if lex == nil {
		lex = DefaultLexicon()
	}
	lex.Compile()
	return &Builder{segmenter: segmenter, lex: lex}
}

// Annotate tokenizes one sentence, matches aspect terms, assigns a
// sentiment per span from its context window and emits the IOB tag and
// label rows. Sentences over MaxSentenceTokens are skipped, not
// truncated: truncation would desynchronize span offsets from the
// serialized tokens. Sentences with no matched aspects return
// ErrNoAspects.
func (b *Builder) Annotate(sentence string) (domain.AnnotatedSentence, error) {
	tokens := Tokenize(sentence)
	if len(tokens) > MaxSentenceTokens {
		return domain.AnnotatedSentence{}, fmt.Errorf("%d tokens: %w", len(tokens), domain.ErrSentenceTooLong)
	}

	spans := MatchAspects(tokens, b.lex)
	if len(spans) == 0 {
		return domain.AnnotatedSentence{}, ErrNoAspects
	}

	tags := make([]string, len(tokens))
	labels := make([]string, len(tokens))
	for i := range tokens {
		tags[i] = domain.TagOutside
		labels[i] = domain.SentimentNeutral.Label()
	}

	for si := range spans {
		spans[si].Sentiment = AssignSentiment(tokens, spans[si], b.lex)
		for i := spans[si].Start; i < spans[si].End; i++ {
			if i == spans[si].Start {
				tags[i] = domain.TagBegin
			} else {
				tags[i] = domain.TagInside
			}
			labels[i] = spans[si].Sentiment.Label()
		}
	}

	annotated := domain.AnnotatedSentence{
		Tokens: tokens,
		Tags:   tags,
		Labels: labels,
		Spans:  spans,
	}
	if err := annotated.Validate(); err != nil {
		return domain.AnnotatedSentence{}, fmt.Errorf("annotating %q: %w", sentence, err)
	}
	return annotated, nil
}

// Build segments every document and annotates each sentence. Documents
// and sentences that cannot be used are counted and skipped; only a
// structurally invalid annotation is an error.
func (b *Builder) Build(docs []domain.Document) ([]domain.AnnotatedSentence, *domain.DatasetStats, error) {
	stats := &domain.DatasetStats{SplitSizes: make(map[domain.Split]int)}
	var sentences []domain.AnnotatedSentence

	for _, doc := range docs {
		stats.DocumentsProcessed++
		if len(doc.Content) < MinSentenceChars {
			stats.SkippedShort++
			continue
		}

		for _, sentence := range b.segmenter.Segment(doc.Content) {
			annotated, err := b.Annotate(sentence)
			switch {
			case errors.Is(err, domain.ErrSentenceTooLong):
				stats.SkippedTooLong++
				logger.Debug("dataset: skipping over-length sentence in %s", doc.ID)
				continue
			case errors.Is(err, ErrNoAspects):
				stats.SkippedNoAspects++
				continue
			case err != nil:
				return nil, nil, err
			}
			sentences = append(sentences, annotated)
		}
	}

	stats.SentencesEmitted = len(sentences)
	logger.Info("dataset: %d documents -> %d sentences (%d too long, %d without aspects, %d short)",
		stats.DocumentsProcessed, stats.SentencesEmitted,
		stats.SkippedTooLong, stats.SkippedNoAspects, stats.SkippedShort)
	return sentences, stats, nil
}
