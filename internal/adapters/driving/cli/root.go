// Package cli implements the seclens command-line interface.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/seclens-labs/seclens-cli/internal/absa"
	"github.com/seclens-labs/seclens-cli/internal/adapters/driven/config/file"
	"github.com/seclens-labs/seclens-cli/internal/adapters/driven/storage/sqlite"
	"github.com/seclens-labs/seclens-cli/internal/collectors/cisa"
	"github.com/seclens-labs/seclens-cli/internal/collectors/csis"
	"github.com/seclens-labs/seclens-cli/internal/collectors/eurepoc"
	"github.com/seclens-labs/seclens-cli/internal/collectors/web"
	"github.com/seclens-labs/seclens-cli/internal/core/ports/driven"
	"github.com/seclens-labs/seclens-cli/internal/core/ports/driving"
	"github.com/seclens-labs/seclens-cli/internal/core/services"
	"github.com/seclens-labs/seclens-cli/internal/dataset"
	"github.com/seclens-labs/seclens-cli/internal/evaluation"
	"github.com/seclens-labs/seclens-cli/internal/logger"
	"github.com/seclens-labs/seclens-cli/internal/preprocess"
	"github.com/seclens-labs/seclens-cli/internal/segment"
	"github.com/seclens-labs/seclens-cli/internal/topics"
)

// version is set at build time via ldflags.
var version = "dev"

// Persistent flag values.
var (
	verbose   bool
	configDir string
	dataDir   string
)

// Pipeline services wired by bootstrap. Tests inject mocks here.
var (
	collectRunner    driving.CollectRunner
	preprocessRunner driving.PreprocessRunner
	topicRunner      driving.TopicRunner
	datasetRunner    driving.DatasetRunner
	trainRunner      driving.TrainRunner
	evaluationRunner driving.EvaluationRunner
	reportRunner     driving.ReportRunner
)

// Infrastructure handles kept for the serve command and shutdown.
var (
	store       *sqlite.Store
	rawStore    driven.RawDocumentStore
	docStore    driven.DocumentStore
	evalStore   driven.EvaluationStore
	aspectModel driven.AspectModel
)

var rootCmd = &cobra.Command{
	Use:   "seclens",
	Short: "Cybersecurity incident aspect-sentiment pipeline",
	Long: `seclens collects cybersecurity incident reports, builds a cleaned
corpus, clusters it into topics, constructs an aspect-term extraction
and polarity classification (ATEPC) dataset, and drives fine-tuning and
evaluation of an external aspect-sentiment model service.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		if !needsServices(cmd) {
			return nil
		}
		return bootstrap()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "config directory (default ~/.seclens)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (default ~/.seclens/data)")
}

// needsServices reports whether cmd requires the pipeline services.
// Already-wired services (tests, repeat invocations) are kept.
func needsServices(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "version", "help", "completion":
		return false
	}
	return !wired()
}

// wired reports whether any service has been injected or built.
func wired() bool {
	return collectRunner != nil || preprocessRunner != nil || topicRunner != nil ||
		datasetRunner != nil || trainRunner != nil || evaluationRunner != nil ||
		reportRunner != nil || docStore != nil
}

// bootstrap wires the pipeline services from configuration.
func bootstrap() error {
	cfg, err := file.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if dataDir == "" {
		dataDir = cfg.GetString("data_dir")
	}
	store, err = sqlite.NewStore(dataDir)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	rawStore = store.RawDocumentStore()
	docStore = store.DocumentStore()
	evalStore = store.EvaluationStore()

	segmenter, err := segment.New()
	if err != nil {
		return fmt.Errorf("initialising sentence segmenter: %w", err)
	}

	aspectModel = absa.New(absa.Config{
		BaseURL:    cfg.GetString("model.url"),
		Checkpoint: cfg.GetString("model.checkpoint"),
	})

	collectRunner = services.NewCollectService(rawStore, buildCollectors(cfg)...)
	preprocessRunner = services.NewPreprocessService(rawStore, docStore, preprocess.New(preprocess.Options{
		MinLength:  cfg.GetInt("preprocess.min_length"),
		CyberTerms: cfg.GetStringSlice("preprocess.cyber_terms"),
	}))
	topicRunner = services.NewTopicService(docStore, &topics.Modeler{
		NumTopics: cfg.GetInt("topics.count"),
		MinDF:     cfg.GetInt("topics.min_df"),
	})
	datasetDir := cfg.GetString("dataset.dir")
	if datasetDir == "" {
		datasetDir = "atepc_dataset"
	}
	datasetRunner = services.NewDatasetService(docStore, dataset.NewBuilder(segmenter, buildLexicon(cfg)))

	evalService := services.NewEvaluationService(docStore, evalStore, aspectModel, evaluation.DefaultBatchSize)
	if checkpoint := cfg.GetString("model.checkpoint"); checkpoint != "" {
		evalService.BaselineCheckpoint = checkpoint
	}
	trainRunner = evalService
	evaluationRunner = evalService

	reportRunner = services.NewReportService(rawStore, docStore, evalStore, datasetDir)
	return nil
}

// buildLexicon applies the configured aspect-term and cue-word
// overrides to the default annotation lexicon.
func buildLexicon(cfg driven.ConfigStore) *dataset.Lexicon {
	lex := dataset.DefaultLexicon()
	if terms := cfg.GetStringSlice("dataset.aspect_terms"); len(terms) > 0 {
		lex.AspectTerms = terms
	}
	if cues := cfg.GetStringSlice("dataset.positive_cues"); len(cues) > 0 {
		lex.PositiveCues = cues
	}
	if cues := cfg.GetStringSlice("dataset.negative_cues"); len(cues) > 0 {
		lex.NegativeCues = cues
	}
	if window := cfg.GetInt("dataset.window"); window > 0 {
		lex.Window = window
	}
	return lex
}

// buildCollectors assembles the configured collector set.
func buildCollectors(cfg driven.ConfigStore) []driven.Collector {
	rawDir := cfg.GetString("collect.raw_dir")
	if rawDir == "" {
		rawDir = filepath.Join(dataDir, "raw")
	}

	var opts []web.Option
	if n := cfg.GetInt("collect.max_reports"); n > 0 {
		opts = append(opts, web.WithMaxReports(n))
	}

	return []driven.Collector{
		eurepoc.New(rawDir),
		cisa.New(opts...),
		csis.New(opts...),
	}
}

// Execute runs the CLI. It is the entry point called from main.
func Execute() {
	err := rootCmd.Execute()
	if store != nil {
		store.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
