package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/seclens-labs/seclens-cli/internal/core/domain"
)

var datasetOutDir string

var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Build the custom ATEPC dataset from the corpus",
	Long: `Annotates the corpus sentence by sentence with IOB aspect tags and
per-token sentiment labels, then writes the deterministic train/valid/test
split files plus an auxiliary APC export.`,
	RunE: runDataset,
}

func init() {
	datasetCmd.Flags().StringVarP(&datasetOutDir, "out", "o", "atepc_dataset", "output directory for the split files")
	rootCmd.AddCommand(datasetCmd)
}

func runDataset(cmd *cobra.Command, _ []string) error {
	if datasetRunner == nil {
		return errors.New("dataset service not configured")
	}

	cmd.Printf("Building ATEPC dataset in %s...\n", datasetOutDir)

	stats, err := datasetRunner.BuildDataset(cmd.Context(), datasetOutDir)
	if err != nil {
		return fmt.Errorf("dataset build failed: %w", err)
	}

	cmd.Printf("Annotated %d sentences from %d documents (skipped: %d no aspects, %d too long, %d short documents).\n",
		stats.SentencesEmitted, stats.DocumentsProcessed,
		stats.SkippedNoAspects, stats.SkippedTooLong, stats.SkippedShort)
	cmd.Printf("Splits: train %d, valid %d, test %d.\n",
		stats.SplitSizes[domain.SplitTrain],
		stats.SplitSizes[domain.SplitValid],
		stats.SplitSizes[domain.SplitTest])
	return nil
}
