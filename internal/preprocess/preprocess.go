package preprocess

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"

	"github.com/seclens-labs/seclens-cli/internal/core/domain"
	"github.com/seclens-labs/seclens-cli/internal/core/ports/driving"
	"github.com/seclens-labs/seclens-cli/internal/logger"
)

// DefaultMinLength is the minimum cleaned-body length, in characters,
// for a document to enter the corpus.
const DefaultMinLength = 50

// Options configures a Preprocessor.
type Options struct {
	// MinLength drops documents whose cleaned body is shorter.
	// Zero means DefaultMinLength.
	MinLength int

	// CyberTerms is the lowercase domain term list counted per document.
	CyberTerms []string

	// StopWords overrides the default stop-word list. Nil keeps the default.
	StopWords map[string]struct{}
}

// Preprocessor cleans and deduplicates raw documents into corpus documents.
type Preprocessor struct {
	opts Options
}

// New creates a Preprocessor.
func New(opts Options) *Preprocessor {
	if opts.MinLength <= 0 {
		opts.MinLength = DefaultMinLength
	}
	return &Preprocessor{opts: opts}
}

// Run cleans every successful raw document and merges the sources into
// one deduplicated corpus. Duplicates are detected by cleaned-body hash;
// the first occurrence wins. Unsuccessful raw documents are skipped.
func (p *Preprocessor) Run(raws []domain.RawDocument) ([]domain.Document, *driving.PreprocessStatus) {
	status := &driving.PreprocessStatus{Input: len(raws)}
	seen := make(map[string]struct{}, len(raws))
	docs := make([]domain.Document, 0, len(raws))

	for _, raw := range raws {
		if !raw.Success {
			logger.Debug("preprocess: skipping failed extraction %s", raw.URI)
			continue
		}

		cleaned := Clean(raw.Content, p.opts.StopWords)
		if len(cleaned) < p.opts.MinLength {
			status.TooShort++
			logger.Debug("preprocess: %s too short after cleaning (%d chars)", raw.ID, len(cleaned))
			continue
		}

		digest := hashBody(cleaned)
		if _, dup := seen[digest]; dup {
			status.Duplicates++
			continue
		}
		seen[digest] = struct{}{}

		docs = append(docs, domain.Document{
			ID:         uuid.New().String(),
			SourceID:   raw.SourceID,
			RawID:      raw.ID,
			Title:      raw.Title,
			Content:    cleaned,
			TextLength: len(cleaned),
			CyberTerms: FindTerms(cleaned, p.opts.CyberTerms),
			CreatedAt:  time.Now().UTC(),
		})
		status.Kept++
	}

	logger.Info("preprocess: %d raw -> %d kept (%d duplicates, %d too short)",
		status.Input, status.Kept, status.Duplicates, status.TooShort)
	return docs, status
}

// hashBody fingerprints a cleaned body for cross-source deduplication.
func hashBody(cleaned string) string {
	sum := sha256.Sum256([]byte(cleaned))
	return hex.EncodeToString(sum[:])
}
