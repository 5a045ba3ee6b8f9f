package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/seclens-labs/seclens-cli/internal/core/domain"
	"github.com/seclens-labs/seclens-cli/internal/core/ports/driven"
	"github.com/seclens-labs/seclens-cli/internal/core/ports/driving"
	"github.com/seclens-labs/seclens-cli/internal/logger"
)

// Ensure CollectService implements the interface.
var _ driving.CollectRunner = (*CollectService)(nil)

// CollectService runs the registered collectors and persists their
// output. Every document, failed extractions included, is stored so the
// preprocessor and the report see the full picture.
type CollectService struct {
	collectors []driven.Collector
	rawStore   driven.RawDocumentStore
}

// NewCollectService creates a collect service.
func NewCollectService(rawStore driven.RawDocumentStore, collectors ...driven.Collector) *CollectService {
	return &CollectService{
		collectors: collectors,
		rawStore:   rawStore,
	}
}

// Collect runs every collector in sequence. A collector's terminal
// failure is logged and collection moves to the next source; only
// context cancellation aborts the run.
func (s *CollectService) Collect(ctx context.Context) (*driving.CollectStatus, error) {
	if len(s.collectors) == 0 {
		return nil, errors.New("no collectors configured")
	}

	status := &driving.CollectStatus{
		Collected: make(map[string]int),
		Failed:    make(map[string]int),
	}

	for _, collector := range s.collectors {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := s.collectSource(ctx, collector, status); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, err
			}
			logger.Warn("collect: %s: %v", collector.SourceID(), err)
		}
	}

	return status, nil
}

// Watch starts every watch-capable collector and persists documents as
// they arrive. It blocks until ctx is cancelled and the collectors have
// closed their channels.
func (s *CollectService) Watch(ctx context.Context) error {
	var wg sync.WaitGroup
	started := 0

	for _, collector := range s.collectors {
		watcher, ok := collector.(driven.Watcher)
		if !ok {
			continue
		}

		docs, err := watcher.Watch(ctx)
		if err != nil {
			return fmt.Errorf("watching %s: %w", collector.SourceID(), err)
		}
		started++
		logger.Info("collect: watching %s", collector.SourceID())

		wg.Add(1)
		go func(sourceID string, docs <-chan domain.RawDocument) {
			defer wg.Done()
			for doc := range docs {
				if err := s.rawStore.SaveRaw(ctx, &doc); err != nil {
					if errors.Is(err, domain.ErrAlreadyExists) {
						logger.Debug("collect: %s already stored", doc.URI)
						continue
					}
					logger.Warn("collect: %s: storing document: %v", sourceID, err)
					continue
				}
				logger.Info("collect: %s: stored %q", sourceID, doc.Title)
			}
		}(collector.SourceID(), docs)
	}

	if started == 0 {
		return errors.New("no watch-capable collectors configured")
	}
	wg.Wait()
	return nil
}

func (s *CollectService) collectSource(ctx context.Context, collector driven.Collector, status *driving.CollectStatus) error {
	sourceID := collector.SourceID()
	logger.Section("Collecting from " + sourceID)

	docs, errs := collector.Collect(ctx)

	// On a store failure the remaining documents are still drained so
	// the collector goroutine can finish sending and close its channels.
	var saveErr error
	for doc := range docs {
		if saveErr != nil {
			continue
		}
		if err := s.rawStore.SaveRaw(ctx, &doc); err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				logger.Debug("collect: %s already stored", doc.URI)
				continue
			}
			saveErr = fmt.Errorf("storing document from %s: %w", sourceID, err)
			continue
		}
		if doc.Success {
			status.Collected[sourceID]++
		} else {
			status.Failed[sourceID]++
		}
	}

	if err := <-errs; err != nil && saveErr == nil {
		saveErr = fmt.Errorf("collecting from %s: %w", sourceID, err)
	}
	if saveErr != nil {
		return saveErr
	}
	logger.Info("collect: %s: %d stored, %d failed",
		sourceID, status.Collected[sourceID], status.Failed[sourceID])
	return nil
}
