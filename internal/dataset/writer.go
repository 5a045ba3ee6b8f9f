package dataset

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/seclens-labs/seclens-cli/internal/core/domain"
)

// WriteSplits serializes each split to <dir>/<split>.dat.atepc, one
// `token<TAB>tag<TAB>label` line per token with a blank line between
// sentences, and writes a readme.txt describing the format. Split sizes
// are recorded on stats.
func WriteSplits(dir string, splits []domain.DatasetSplit, stats *domain.DatasetStats) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating dataset directory: %w", err)
	}

	for _, split := range splits {
		if err := writeSplit(filepath.Join(dir, split.Name.Filename()), split); err != nil {
			return err
		}
		if stats != nil {
			stats.SplitSizes[split.Name] = len(split.Sentences)
		}
	}

	if err := writeReadme(filepath.Join(dir, "readme.txt"), splits); err != nil {
		return err
	}
	if stats != nil {
		if err := WriteStats(dir, stats); err != nil {
			return err
		}
	}
	return nil
}

// StatsFilename is the build summary written next to the split files.
const StatsFilename = "stats.json"

// WriteStats serializes the build statistics to <dir>/stats.json so
// later stages can load them without rebuilding the dataset.
func WriteStats(dir string, stats *domain.DatasetStats) error {
	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding dataset stats: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(filepath.Join(dir, StatsFilename), data, 0o644); err != nil {
		return fmt.Errorf("writing dataset stats: %w", err)
	}
	return nil
}

// ReadStats loads the build statistics persisted by WriteStats.
func ReadStats(dir string) (*domain.DatasetStats, error) {
	data, err := os.ReadFile(filepath.Join(dir, StatsFilename))
	if err != nil {
		return nil, err
	}
	var stats domain.DatasetStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, fmt.Errorf("parsing dataset stats: %w", err)
	}
	return &stats, nil
}

func writeSplit(path string, split domain.DatasetSplit) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s split: %w", split.Name, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, sentence := range split.Sentences {
		for i, token := range sentence.Tokens {
			fmt.Fprintf(w, "%s\t%s\t%s\n", token, sentence.Tags[i], sentence.Labels[i])
		}
		fmt.Fprintln(w)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing %s split: %w", split.Name, err)
	}
	return nil
}

func writeReadme(path string, splits []domain.DatasetSplit) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating readme: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, "Custom Cybersecurity ATEPC Dataset (IOB Format)")
	fmt.Fprintln(w, "===============================================")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Cybersecurity texts annotated with aspect terms and sentiments")
	fmt.Fprintln(w, "using the IOB (Inside-Outside-Begin) tagging scheme.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Format:")
	fmt.Fprintln(w, "Each line contains: 'token<TAB>IOB_tag<TAB>sentiment_label'")
	fmt.Fprintln(w, "- token: a word from the original text.")
	fmt.Fprintln(w, "- IOB_tag: 'O' (outside aspect), 'B-ASP' (begin aspect), or 'I-ASP' (inside aspect).")
	fmt.Fprintln(w, "- sentiment_label: '1' (Positive), '0' (Neutral), or '-1' (Negative)")
	fmt.Fprintln(w, "  for the aspect the token belongs to, '0' for O-tagged tokens.")
	fmt.Fprintln(w, "Sentences are separated by blank lines.")
	fmt.Fprintln(w)
	for _, split := range splits {
		fmt.Fprintf(w, "%s samples (sentences): %d\n", split.Name, len(split.Sentences))
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing readme: %w", err)
	}
	return nil
}

// WriteAPC writes the auxiliary single-line APC export:
// `<text> ||| <aspect> ||| <sentiment>` with additional aspect/sentiment
// pairs appended on the same line. The layout is what the downstream
// training framework expects; when a sentence carries several aspects,
// consumers of this file may only reliably parse the first pair. That
// degradation is inherent to the format and is reproduced here, not
// worked around.
func WriteAPC(path string, sentences []domain.AnnotatedSentence) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating apc export: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, sentence := range sentences {
		if len(sentence.Spans) == 0 {
			continue
		}
		fmt.Fprint(w, sentence.Text())
		for _, span := range sentence.Spans {
			fmt.Fprintf(w, " ||| %s ||| %s", span.Text, span.Sentiment)
		}
		fmt.Fprintln(w)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing apc export: %w", err)
	}
	return nil
}
