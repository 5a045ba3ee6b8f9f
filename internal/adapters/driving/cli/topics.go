package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "Cluster the corpus into topics",
	Long: `Fits the topic model over the whole corpus and records each
document's cluster assignment.`,
	RunE: runTopics,
}

func init() {
	rootCmd.AddCommand(topicsCmd)
}

func runTopics(cmd *cobra.Command, _ []string) error {
	if topicRunner == nil {
		return errors.New("topic service not configured")
	}

	cmd.Println("Modeling topics...")

	fitted, err := topicRunner.ModelTopics(cmd.Context())
	if err != nil {
		return fmt.Errorf("topic modeling failed: %w", err)
	}

	for _, topic := range fitted {
		cmd.Printf("  topic %d (%d documents): %s\n",
			topic.ID, topic.DocumentCount, strings.Join(topic.Terms, ", "))
	}
	cmd.Printf("Topic modeling complete: %d topics.\n", len(fitted))
	return nil
}
