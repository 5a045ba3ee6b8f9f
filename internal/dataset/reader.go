package dataset

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/seclens-labs/seclens-cli/internal/core/domain"
)

// ReadSplit parses a .dat.atepc file back into annotated sentences.
// Aspect spans are reconstructed from the IOB tags, so a write/read
// round trip preserves tokens, tags, labels and span boundaries.
func ReadSplit(path string) ([]domain.AnnotatedSentence, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening split file: %w", err)
	}
	defer f.Close()

	var (
		sentences []domain.AnnotatedSentence
		current   domain.AnnotatedSentence
		lineNo    int
	)

	flush := func() error {
		if len(current.Tokens) == 0 {
			return nil
		}
		current.Spans = spansFromTags(current)
		if err := current.Validate(); err != nil {
			return fmt.Errorf("%s: sentence ending at line %d: %w", path, lineNo, err)
		}
		sentences = append(sentences, current)
		current = domain.AnnotatedSentence{}
		return nil
	}

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}

		parts := strings.Split(line, "\t")
		if len(parts) != 3 {
			return nil, fmt.Errorf("%s:%d: expected 3 tab-separated fields, got %d: %w",
				path, lineNo, len(parts), domain.ErrInvalidInput)
		}
		current.Tokens = append(current.Tokens, parts[0])
		current.Tags = append(current.Tags, parts[1])
		current.Labels = append(current.Labels, parts[2])
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading split file: %w", err)
	}
	if err := flush(); err != nil {
		return nil, err
	}

	return sentences, nil
}

// spansFromTags rebuilds the aspect spans implied by a sentence's IOB
// tags and per-token labels.
func spansFromTags(s domain.AnnotatedSentence) []domain.AspectSpan {
	var spans []domain.AspectSpan
	for i := 0; i < len(s.Tags); i++ {
		if s.Tags[i] != domain.TagBegin {
			continue
		}
		end := i + 1
		for end < len(s.Tags) && s.Tags[end] == domain.TagInside {
			end++
		}
		spans = append(spans, domain.AspectSpan{
			Start:     i,
			End:       end,
			Text:      strings.Join(s.Tokens[i:end], " "),
			Sentiment: parseLabel(s.Labels[i]),
		})
		i = end - 1
	}
	return spans
}

func parseLabel(label string) domain.Sentiment {
	switch label {
	case "-1":
		return domain.SentimentNegative
	case "1":
		return domain.SentimentPositive
	default:
		return domain.SentimentNeutral
	}
}
