package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var trainDatasetDir string

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Fine-tune the aspect-sentiment model",
	Long: `Submits the built ATEPC dataset to the model service for fine-tuning.
The run blocks until the service reports the new checkpoint.`,
	RunE: runTrain,
}

func init() {
	trainCmd.Flags().StringVarP(&trainDatasetDir, "dataset", "d", "atepc_dataset", "dataset directory to train on")
	rootCmd.AddCommand(trainCmd)
}

func runTrain(cmd *cobra.Command, _ []string) error {
	if trainRunner == nil {
		return errors.New("training service not configured")
	}

	cmd.Printf("Fine-tuning on %s (this can take hours)...\n", trainDatasetDir)

	checkpoint, err := trainRunner.Train(cmd.Context(), trainDatasetDir)
	if err != nil {
		return fmt.Errorf("training failed: %w", err)
	}

	cmd.Printf("Training complete: checkpoint %s.\n", checkpoint)
	return nil
}
