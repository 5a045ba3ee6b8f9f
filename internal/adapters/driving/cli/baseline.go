package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seclens-labs/seclens-cli/internal/core/domain"
)

var baselineSample int

var baselineCmd = &cobra.Command{
	Use:   "baseline",
	Short: "Evaluate the pretrained checkpoint over the corpus",
	Long: `Runs the pretrained aspect-sentiment checkpoint over a corpus sample
and stores the aggregated report as the baseline for comparison with the
fine-tuned model.`,
	RunE: runBaseline,
}

func init() {
	baselineCmd.Flags().IntVarP(&baselineSample, "sample", "n", 0, "number of documents to evaluate (0 = whole corpus)")
	rootCmd.AddCommand(baselineCmd)
}

func runBaseline(cmd *cobra.Command, _ []string) error {
	if evaluationRunner == nil {
		return errors.New("evaluation service not configured")
	}

	cmd.Println("Running baseline evaluation...")

	report, err := evaluationRunner.Baseline(cmd.Context(), baselineSample)
	if err != nil {
		return fmt.Errorf("baseline evaluation failed: %w", err)
	}

	printEvaluation(cmd, report)
	return nil
}

// printEvaluation renders an evaluation report summary. Shared by the
// baseline and evaluate commands.
func printEvaluation(cmd *cobra.Command, report *domain.EvaluationReport) {
	cmd.Printf("Checkpoint: %s\n", report.Checkpoint)
	cmd.Printf("Examples: %d (%.1f%% successful), aspects: %d (%.2f per example)\n",
		report.TotalExamples, report.SuccessRate()*100,
		report.TotalAspects, report.AverageAspects)
	for _, sentiment := range []domain.Sentiment{domain.SentimentNegative, domain.SentimentNeutral, domain.SentimentPositive} {
		cmd.Printf("  %s: %d (%.1f%%)\n",
			sentiment, report.Distribution[sentiment], report.ClassPercent(sentiment))
	}
}
