package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/seclens-labs/seclens-cli/internal/adapters/driving/api"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the corpus and analysis results over HTTP",
	Long: `Starts the read/analyze HTTP API. Corpus documents, topics and
evaluation runs are exposed read-only; the analyze endpoints proxy the
aspect-sentiment model service.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", api.DefaultAddr, "listen address")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if docStore == nil || evalStore == nil {
		return errors.New("stores not configured")
	}

	cmd.Printf("Serving API on %s\n", serveAddr)
	return api.New(docStore, evalStore, aspectModel).Run(serveAddr)
}
