// Package report assembles the pipeline completion report from the
// persisted outputs of the earlier stages.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/seclens-labs/seclens-cli/internal/core/domain"
)

// Summary carries the per-stage figures the report is built from.
type Summary struct {
	// GeneratedAt stamps the report. Zero means time.Now.
	GeneratedAt time.Time

	// CollectedBySource counts stored raw documents per collector.
	CollectedBySource map[string]int

	// CorpusSize is the number of documents after preprocessing.
	CorpusSize int

	// Topics are the fitted topic clusters, if the stage has run.
	Topics []domain.Topic

	// Baseline is the pretrained-checkpoint evaluation, if present.
	Baseline *domain.EvaluationReport

	// Custom is the fine-tuned-checkpoint evaluation, if present.
	Custom *domain.EvaluationReport

	// Dataset summarizes the custom dataset build, if present.
	Dataset *domain.DatasetStats
}

// Generate renders the completion report as plain text.
func Generate(s Summary) string {
	at := s.GeneratedAt
	if at.IsZero() {
		at = time.Now()
	}

	var b strings.Builder
	fmt.Fprintln(&b, "CYBERSECURITY ASPECT ANALYSIS - COMPLETION REPORT")
	fmt.Fprintln(&b, "=================================================")
	fmt.Fprintf(&b, "Completion date: %s\n", at.Format("2006-01-02 15:04:05"))
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "COLLECTION:")
	if len(s.CollectedBySource) == 0 {
		fmt.Fprintln(&b, "- no documents collected")
	}
	for _, source := range sortedKeys(s.CollectedBySource) {
		fmt.Fprintf(&b, "- %s: %d documents\n", source, s.CollectedBySource[source])
	}
	fmt.Fprintf(&b, "- processed corpus: %d documents\n", s.CorpusSize)
	fmt.Fprintln(&b)

	if len(s.Topics) > 0 {
		fmt.Fprintln(&b, "TOPIC MODELING:")
		fmt.Fprintf(&b, "- %d topics identified\n", len(s.Topics))
		for _, topic := range s.Topics {
			terms := topic.Terms
			if len(terms) > 5 {
				terms = terms[:5]
			}
			fmt.Fprintf(&b, "- topic %d (%d documents): %s\n",
				topic.ID, topic.DocumentCount, strings.Join(terms, ", "))
		}
		fmt.Fprintln(&b)
	}

	if s.Dataset != nil {
		fmt.Fprintln(&b, "CUSTOM DATASET:")
		fmt.Fprintf(&b, "- %d documents processed, %d sentences emitted\n",
			s.Dataset.DocumentsProcessed, s.Dataset.SentencesEmitted)
		fmt.Fprintf(&b, "- skipped: %d over-length, %d without aspects, %d too short\n",
			s.Dataset.SkippedTooLong, s.Dataset.SkippedNoAspects, s.Dataset.SkippedShort)
		for _, split := range []domain.Split{domain.SplitTrain, domain.SplitValid, domain.SplitTest} {
			if count, ok := s.Dataset.SplitSizes[split]; ok {
				fmt.Fprintf(&b, "- %s: %d sentences\n", split, count)
			}
		}
		fmt.Fprintln(&b)
	}

	writeEvaluation(&b, "BASELINE EVALUATION", s.Baseline)
	writeEvaluation(&b, "CUSTOM MODEL EVALUATION", s.Custom)

	fmt.Fprintln(&b, "CONCLUSION:")
	fmt.Fprintln(&b, conclusion(s))
	return b.String()
}

func writeEvaluation(b *strings.Builder, heading string, report *domain.EvaluationReport) {
	if report == nil {
		return
	}

	fmt.Fprintf(b, "%s (%s):\n", heading, report.Checkpoint)
	if report.APCF1 > 0 {
		fmt.Fprintf(b, "- APC F1: %.2f\n", report.APCF1)
	}
	fmt.Fprintf(b, "- examples: %d, aspects extracted: %d (%.2f per example)\n",
		report.TotalExamples, report.TotalAspects, report.AverageAspects)
	fmt.Fprintf(b, "- success rate: %.2f%%, errors: %d\n",
		report.SuccessRate()*100, report.ErrorCount)
	fmt.Fprintf(b, "- sentiment distribution: negative %.1f%%, neutral %.1f%%, positive %.1f%%\n",
		report.ClassPercent(domain.SentimentNegative),
		report.ClassPercent(domain.SentimentNeutral),
		report.ClassPercent(domain.SentimentPositive))
	fmt.Fprintln(b)
}

func conclusion(s Summary) string {
	switch {
	case s.Custom != nil:
		return "Custom aspect-sentiment model trained and evaluated over the held-out split."
	case s.Baseline != nil:
		return "Baseline evaluation complete; the corpus is ready for custom model training."
	case s.CorpusSize > 0:
		return "Corpus collected and preprocessed; analysis stages pending."
	default:
		return "Pipeline has not produced outputs yet; run the collection stage first."
	}
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
