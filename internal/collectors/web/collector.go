// Package web provides a feed-driven collector for public advisory and
// analysis pages. Report URLs are discovered from an RSS/Atom feed with
// a configured fallback list; each page is fetched politely and reduced
// to its readable text.
package web

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/mmcdole/gofeed"

	"github.com/seclens-labs/seclens-cli/internal/core/domain"
	"github.com/seclens-labs/seclens-cli/internal/core/ports/driven"
	"github.com/seclens-labs/seclens-cli/internal/logger"
)

const (
	// DefaultTimeout is the per-request HTTP timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxReports caps the number of pages fetched per run.
	DefaultMaxReports = 25

	// maxBodyBytes bounds how much of a page is read.
	maxBodyBytes = 4 << 20

	userAgent = "seclens/1.0 (research collector)"
)

// Ensure Collector implements the interface.
var _ driven.Collector = (*Collector)(nil)

// Collector fetches advisory pages for one web source.
type Collector struct {
	sourceID     string
	feedURL      string
	fallbackURLs []string
	maxReports   int
	client       *http.Client
	parser       *gofeed.Parser
	limiter      *RateLimiter
}

// Option configures the collector.
type Option func(*Collector)

// WithMaxReports caps the number of pages fetched per run.
func WithMaxReports(n int) Option {
	return func(c *Collector) {
		if n > 0 {
			c.maxReports = n
		}
	}
}

// WithRateLimit overrides the politeness limit.
func WithRateLimit(cfg RateLimitConfig) Option {
	return func(c *Collector) {
		c.limiter = NewRateLimiter(cfg)
	}
}

// WithHTTPClient replaces the HTTP client. Useful for testing.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Collector) {
		c.client = client
	}
}

// New creates a collector for the given source. Report URLs are taken
// from feedURL when it parses, otherwise from fallbackURLs.
func New(sourceID, feedURL string, fallbackURLs []string, opts ...Option) *Collector {
	c := &Collector{
		sourceID:     sourceID,
		feedURL:      feedURL,
		fallbackURLs: fallbackURLs,
		maxReports:   DefaultMaxReports,
		client:       &http.Client{Timeout: DefaultTimeout},
		parser:       gofeed.NewParser(),
		limiter:      NewRateLimiter(DefaultRateLimit),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SourceID returns the source identifier.
func (c *Collector) SourceID() string {
	return c.sourceID
}

// Collect discovers report URLs and fetches each page. Failed downloads
// and extractions are emitted as unsuccessful RawDocuments so the batch
// continues; only context cancellation is terminal.
func (c *Collector) Collect(ctx context.Context) (<-chan domain.RawDocument, <-chan error) {
	docs := make(chan domain.RawDocument)
	errs := make(chan error, 1)

	go func() {
		defer close(docs)
		defer close(errs)

		urls := c.discoverURLs(ctx)
		if len(urls) > c.maxReports {
			urls = urls[:c.maxReports]
		}
		logger.Info("%s: fetching %d report pages", c.sourceID, len(urls))

		for _, url := range urls {
			if err := c.limiter.Wait(ctx); err != nil {
				errs <- err
				return
			}

			doc := c.fetchReport(ctx, url)
			select {
			case docs <- doc:
			case <-ctx.Done():
				errs <- ctx.Err()
				return
			}
		}
	}()

	return docs, errs
}

// discoverURLs parses the source feed for report links, falling back to
// the configured URL list when the feed is unavailable.
func (c *Collector) discoverURLs(ctx context.Context) []string {
	if c.feedURL == "" {
		return c.fallbackURLs
	}

	feed, err := c.parser.ParseURLWithContext(c.feedURL, ctx)
	if err != nil {
		logger.Warn("%s: feed parse failed (%v), using fallback URLs", c.sourceID, err)
		return c.fallbackURLs
	}

	urls := make([]string, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item.Link != "" {
			urls = append(urls, item.Link)
		}
	}
	if len(urls) == 0 {
		return c.fallbackURLs
	}
	return urls
}

// fetchReport downloads one page and extracts its text. Failures are
// recorded on the returned document, never raised.
func (c *Collector) fetchReport(ctx context.Context, url string) domain.RawDocument {
	doc := domain.RawDocument{
		ID:          uuid.New().String(),
		SourceID:    c.sourceID,
		URI:         url,
		RetrievedAt: time.Now().UTC(),
	}

	body, err := c.fetch(ctx, url)
	if err != nil {
		doc.Success = false
		doc.Error = err.Error()
		doc.Title = "Failed Extraction - Download Error"
		logger.Warn("%s: %s: %v", c.sourceID, url, err)
		return doc
	}

	text := ExtractText(body)
	if text == "" {
		doc.Success = false
		doc.Error = "no content extracted"
		doc.Title = "Failed Extraction - No Content"
		return doc
	}

	doc.Success = true
	doc.Title = ExtractTitle(body)
	doc.Content = text
	doc.Metadata = map[string]any{
		"content_length": len(text),
	}
	logger.Debug("%s: extracted %q (%d chars)", c.sourceID, doc.Title, len(text))
	return doc
}

// fetch downloads a page body.
func (c *Collector) fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetching page: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("reading body: %w", err)
	}
	return string(body), nil
}
