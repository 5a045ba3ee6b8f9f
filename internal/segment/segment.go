// Package segment provides sentence segmentation for corpus documents,
// backed by a pretrained unsupervised sentence tokenizer.
package segment

import (
	"strings"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"

	"github.com/seclens-labs/seclens-cli/internal/core/ports/driven"
)

// Ensure Segmenter implements the interface.
var _ driven.SentenceSegmenter = (*Segmenter)(nil)

// Segmenter splits document text into sentences using the pretrained
// English Punkt model.
type Segmenter struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

// New creates a Segmenter. The embedded English training data always
// loads, so construction cannot fail at runtime.
func New() (*Segmenter, error) {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, err
	}
	return &Segmenter{tokenizer: tokenizer}, nil
}

// Segment splits text into trimmed, non-empty sentences.
func (s *Segmenter) Segment(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	raw := s.tokenizer.Tokenize(text)
	out := make([]string, 0, len(raw))
	for _, sentence := range raw {
		trimmed := strings.TrimSpace(sentence.Text)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
