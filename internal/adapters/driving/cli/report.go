package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var reportOutDir string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate the completion report",
	Long: `Assembles the completion report from all persisted stage outputs and
writes it to the output directory. Stages that have not run are omitted.`,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVarP(&reportOutDir, "out", "o", ".", "output directory for the report")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, _ []string) error {
	if reportRunner == nil {
		return errors.New("report service not configured")
	}

	text, err := reportRunner.Generate(cmd.Context(), reportOutDir)
	if err != nil {
		return fmt.Errorf("report generation failed: %w", err)
	}

	cmd.Print(text)
	return nil
}
