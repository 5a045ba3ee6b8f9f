package cli

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var collectWatch bool

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Collect incident reports from all sources",
	Long: `Runs every configured collector (EuRepoC dataset files, CISA
advisories, CSIS incident summaries) and stores the raw documents.
Failed fetches are recorded so reporting sees the full picture.

With --watch, the command then keeps running and ingests EuRepoC
dataset files as they are dropped into the raw data directory.`,
	RunE: runCollect,
}

func init() {
	collectCmd.Flags().BoolVarP(&collectWatch, "watch", "w", false, "keep watching for new dataset files after collecting")
	rootCmd.AddCommand(collectCmd)
}

func runCollect(cmd *cobra.Command, _ []string) error {
	if collectRunner == nil {
		return errors.New("collect service not configured")
	}

	cmd.Println("Collecting from all sources...")

	status, err := collectRunner.Collect(cmd.Context())
	if err != nil {
		return fmt.Errorf("collection failed: %w", err)
	}

	sources := make([]string, 0, len(status.Collected))
	for source := range status.Collected {
		sources = append(sources, source)
	}
	sort.Strings(sources)

	total := 0
	for _, source := range sources {
		cmd.Printf("  %s: %d collected, %d failed\n",
			source, status.Collected[source], status.Failed[source])
		total += status.Collected[source]
	}
	cmd.Printf("Collection complete: %d documents stored.\n", total)

	if collectWatch {
		cmd.Println("Watching for new dataset files (interrupt to stop)...")
		return collectRunner.Watch(cmd.Context())
	}
	return nil
}
