package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full pipeline end to end",
	Long: `Runs collection, preprocessing, topic modeling, dataset construction,
baseline evaluation and report generation in sequence. Fine-tuning and
custom-model evaluation stay separate commands because they need the
model service and can run for hours.`,
	RunE: runPipeline,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runPipeline(cmd *cobra.Command, args []string) error {
	if collectRunner == nil {
		return errors.New("pipeline services not configured")
	}

	stages := []struct {
		name string
		run  func() error
	}{
		{"collect", func() error { return runCollect(cmd, args) }},
		{"preprocess", func() error { return runPreprocess(cmd, args) }},
		{"topics", func() error { return runTopics(cmd, args) }},
		{"dataset", func() error { return runDataset(cmd, args) }},
		{"baseline", func() error { return runBaseline(cmd, args) }},
		{"report", func() error { return runReport(cmd, args) }},
	}

	for _, stage := range stages {
		cmd.Printf("==> %s\n", stage.name)
		if err := stage.run(); err != nil {
			return fmt.Errorf("stage %s: %w", stage.name, err)
		}
	}
	return nil
}
