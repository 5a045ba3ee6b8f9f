package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var preprocessCmd = &cobra.Command{
	Use:   "preprocess",
	Short: "Clean and deduplicate collected documents",
	Long: `Cleans the stored raw documents, drops short and duplicate texts,
and merges the remainder into the analysis corpus.`,
	RunE: runPreprocess,
}

func init() {
	rootCmd.AddCommand(preprocessCmd)
}

func runPreprocess(cmd *cobra.Command, _ []string) error {
	if preprocessRunner == nil {
		return errors.New("preprocess service not configured")
	}

	cmd.Println("Preprocessing collected documents...")

	status, err := preprocessRunner.Preprocess(cmd.Context())
	if err != nil {
		return fmt.Errorf("preprocessing failed: %w", err)
	}

	cmd.Printf("Processed %d raw documents: %d kept, %d duplicates, %d too short.\n",
		status.Input, status.Kept, status.Duplicates, status.TooShort)
	return nil
}
