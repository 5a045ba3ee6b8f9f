package driven

import (
	"context"

	"github.com/seclens-labs/seclens-cli/internal/core/domain"
)

// Collector fetches raw incident reports from a data source.
// Each source (eurepoc, cisa, csis) implements this interface.
type Collector interface {
	// SourceID returns the source identifier recorded on every
	// document the collector produces.
	SourceID() string

	// Collect fetches all available documents from the source.
	// Per-item failures are emitted as unsuccessful RawDocuments on
	// the document channel so that the batch continues; only terminal
	// failures go to the error channel. Both channels are closed when
	// collection finishes.
	Collect(ctx context.Context) (<-chan domain.RawDocument, <-chan error)
}

// Watcher is implemented by collectors that can ingest documents as
// they appear (e.g. dataset files dropped into a directory).
type Watcher interface {
	// Watch emits documents for source material arriving after the
	// call. It blocks until ctx is cancelled.
	Watch(ctx context.Context) (<-chan domain.RawDocument, error)
}
