// Package eurepoc loads locally downloaded EuRepoC incident dataset
// files. The dataset is distributed as CSV or Excel; files matching
// *eurepoc* in the raw data directory are ingested, newest first.
package eurepoc

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"

	"github.com/seclens-labs/seclens-cli/internal/core/domain"
	"github.com/seclens-labs/seclens-cli/internal/core/ports/driven"
	"github.com/seclens-labs/seclens-cli/internal/logger"
)

// SourceID identifies documents collected from the EuRepoC dataset.
const SourceID = "eurepoc"

// Ensure Collector implements the interfaces.
var (
	_ driven.Collector = (*Collector)(nil)
	_ driven.Watcher   = (*Collector)(nil)
)

// Collector ingests EuRepoC dataset files from a local directory.
type Collector struct {
	dataDir string
}

// New creates an EuRepoC collector reading from dataDir.
func New(dataDir string) *Collector {
	return &Collector{dataDir: dataDir}
}

// SourceID returns the source identifier.
func (c *Collector) SourceID() string {
	return SourceID
}

// Collect loads the newest matching dataset file and emits one raw
// document per incident. Rows that cannot be parsed are skipped and
// counted; a missing dataset file is a terminal error.
func (c *Collector) Collect(ctx context.Context) (<-chan domain.RawDocument, <-chan error) {
	docs := make(chan domain.RawDocument)
	errs := make(chan error, 1)

	go func() {
		defer close(docs)
		defer close(errs)

		path, err := c.newestDatasetFile()
		if err != nil {
			errs <- err
			return
		}

		if err := c.emitFile(ctx, path, docs); err != nil {
			errs <- err
		}
	}()

	return docs, errs
}

// Watch ingests dataset files as they are dropped into the data
// directory. It blocks until ctx is cancelled.
func (c *Collector) Watch(ctx context.Context) (<-chan domain.RawDocument, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := watcher.Add(c.dataDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watching %s: %w", c.dataDir, err)
	}

	docs := make(chan domain.RawDocument, 100)

	go func() {
		defer close(docs)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
					continue
				}
				if !isDatasetFile(event.Name) {
					continue
				}
				logger.Info("eurepoc: ingesting dropped file %s", event.Name)
				if err := c.emitFile(ctx, event.Name, docs); err != nil {
					logger.Warn("eurepoc: %s: %v", event.Name, err)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("eurepoc: watch error: %v", err)
			}
		}
	}()

	return docs, nil
}

// emitFile parses one dataset file and sends its incidents.
func (c *Collector) emitFile(ctx context.Context, path string, docs chan<- domain.RawDocument) error {
	incidents, err := loadIncidents(path)
	if err != nil {
		return err
	}
	logger.Info("eurepoc: loaded %d incidents from %s", len(incidents), filepath.Base(path))

	now := time.Now().UTC()
	for _, inc := range incidents {
		doc := domain.RawDocument{
			ID:          uuid.New().String(),
			SourceID:    SourceID,
			URI:         "file://" + path,
			Title:       inc.Title,
			Content:     inc.Text(),
			RetrievedAt: now,
			Success:     true,
			Metadata:    inc.Metadata(),
		}
		select {
		case docs <- doc:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// newestDatasetFile finds the most recently modified matching file.
func (c *Collector) newestDatasetFile() (string, error) {
	entries, err := os.ReadDir(c.dataDir)
	if err != nil {
		return "", fmt.Errorf("reading data directory: %w", err)
	}

	type candidate struct {
		path    string
		modTime time.Time
	}
	var candidates []candidate
	for _, entry := range entries {
		if entry.IsDir() || !isDatasetFile(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		candidates = append(candidates, candidate{
			path:    filepath.Join(c.dataDir, entry.Name()),
			modTime: info.ModTime(),
		})
	}

	if len(candidates) == 0 {
		return "", fmt.Errorf("%w: no EuRepoC dataset files in %s", domain.ErrNotFound, c.dataDir)
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].modTime.After(candidates[j].modTime)
	})
	return candidates[0].path, nil
}

// isDatasetFile reports whether name looks like an EuRepoC dataset file.
func isDatasetFile(name string) bool {
	lower := strings.ToLower(filepath.Base(name))
	if !strings.Contains(lower, "eurepoc") {
		return false
	}
	switch filepath.Ext(lower) {
	case ".csv", ".xlsx", ".xls":
		return true
	}
	return false
}
