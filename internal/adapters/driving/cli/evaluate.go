package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var evaluateDatasetDir string

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate the fine-tuned model on the test split",
	Long: `Runs the best fine-tuned checkpoint over the held-out test split and
stores the aggregated report for comparison against the baseline.`,
	RunE: runEvaluate,
}

func init() {
	evaluateCmd.Flags().StringVarP(&evaluateDatasetDir, "dataset", "d", "atepc_dataset", "dataset directory holding the test split")
	rootCmd.AddCommand(evaluateCmd)
}

func runEvaluate(cmd *cobra.Command, _ []string) error {
	if evaluationRunner == nil {
		return errors.New("evaluation service not configured")
	}

	cmd.Printf("Evaluating fine-tuned model on %s...\n", evaluateDatasetDir)

	report, err := evaluationRunner.Evaluate(cmd.Context(), evaluateDatasetDir)
	if err != nil {
		return fmt.Errorf("evaluation failed: %w", err)
	}

	printEvaluation(cmd, report)
	return nil
}
