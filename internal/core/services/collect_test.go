package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seclens-labs/seclens-cli/internal/adapters/driven/storage/memory"
	"github.com/seclens-labs/seclens-cli/internal/core/domain"
)

// stubCollector emits a fixed document set, then optionally a terminal
// error.
type stubCollector struct {
	id   string
	docs []domain.RawDocument
	err  error
}

func (c *stubCollector) SourceID() string { return c.id }

func (c *stubCollector) Collect(_ context.Context) (<-chan domain.RawDocument, <-chan error) {
	docs := make(chan domain.RawDocument, len(c.docs))
	errs := make(chan error, 1)
	for _, doc := range c.docs {
		docs <- doc
	}
	if c.err != nil {
		errs <- c.err
	}
	close(docs)
	close(errs)
	return docs, errs
}

func TestCollectService_Collect(t *testing.T) {
	rawStore := memory.NewRawDocumentStore()
	service := NewCollectService(rawStore,
		&stubCollector{id: "cisa", docs: []domain.RawDocument{
			{ID: "cisa-1", SourceID: "cisa", Success: true, Content: "advisory"},
			{ID: "cisa-2", SourceID: "cisa", Success: false, Error: "fetch failed"},
		}},
		&stubCollector{id: "csis", docs: []domain.RawDocument{
			{ID: "csis-1", SourceID: "csis", Success: true, Content: "incident"},
		}},
	)

	status, err := service.Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, status.Collected["cisa"])
	assert.Equal(t, 1, status.Failed["cisa"])
	assert.Equal(t, 1, status.Collected["csis"])

	raws, err := rawStore.ListRaw(context.Background(), "", true)
	require.NoError(t, err)
	assert.Len(t, raws, 3)
}

func TestCollectService_DuplicatesSkipped(t *testing.T) {
	rawStore := memory.NewRawDocumentStore()
	doc := domain.RawDocument{ID: "cisa-1", SourceID: "cisa", Success: true}
	service := NewCollectService(rawStore,
		&stubCollector{id: "cisa", docs: []domain.RawDocument{doc, doc}},
	)

	status, err := service.Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, status.Collected["cisa"])
}

func TestCollectService_SourceFailureContinues(t *testing.T) {
	rawStore := memory.NewRawDocumentStore()
	service := NewCollectService(rawStore,
		&stubCollector{id: "eurepoc", err: errors.New("download failed")},
		&stubCollector{id: "cisa", docs: []domain.RawDocument{
			{ID: "cisa-1", SourceID: "cisa", Success: true},
		}},
	)

	status, err := service.Collect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, status.Collected["cisa"])
	assert.Equal(t, 0, status.Collected["eurepoc"])
}

// streamingCollector sends its documents over an unbuffered channel and
// records when the sending goroutine has finished.
type streamingCollector struct {
	id   string
	docs []domain.RawDocument
	done chan struct{}
}

func (c *streamingCollector) SourceID() string { return c.id }

func (c *streamingCollector) Collect(_ context.Context) (<-chan domain.RawDocument, <-chan error) {
	docs := make(chan domain.RawDocument)
	errs := make(chan error, 1)
	go func() {
		defer close(c.done)
		defer close(errs)
		defer close(docs)
		for _, doc := range c.docs {
			docs <- doc
		}
	}()
	return docs, errs
}

// failingRawStore rejects every save.
type failingRawStore struct {
	*memory.RawDocumentStore
}

func (s *failingRawStore) SaveRaw(_ context.Context, _ *domain.RawDocument) error {
	return errors.New("disk full")
}

func TestCollectService_StoreFailureDrainsCollector(t *testing.T) {
	collector := &streamingCollector{
		id:   "cisa",
		done: make(chan struct{}),
		docs: []domain.RawDocument{
			{ID: "a", SourceID: "cisa", Success: true},
			{ID: "b", SourceID: "cisa", Success: true},
			{ID: "c", SourceID: "cisa", Success: true},
		},
	}
	service := NewCollectService(&failingRawStore{memory.NewRawDocumentStore()}, collector)

	_, err := service.Collect(context.Background())
	require.ErrorContains(t, err, "disk full")

	select {
	case <-collector.done:
	case <-time.After(time.Second):
		t.Fatal("collector goroutine still blocked after Collect returned")
	}
}

// watchingCollector is a stub driven.Watcher whose Watch channel holds
// a fixed document set and closes immediately.
type watchingCollector struct {
	stubCollector
	watchDocs []domain.RawDocument
	watchErr  error
}

func (c *watchingCollector) Watch(_ context.Context) (<-chan domain.RawDocument, error) {
	if c.watchErr != nil {
		return nil, c.watchErr
	}
	docs := make(chan domain.RawDocument, len(c.watchDocs))
	for _, doc := range c.watchDocs {
		docs <- doc
	}
	close(docs)
	return docs, nil
}

func TestCollectService_Watch(t *testing.T) {
	rawStore := memory.NewRawDocumentStore()
	service := NewCollectService(rawStore,
		&stubCollector{id: "cisa"},
		&watchingCollector{
			stubCollector: stubCollector{id: "eurepoc"},
			watchDocs: []domain.RawDocument{
				{ID: "w1", SourceID: "eurepoc", Success: true, Title: "Incident one"},
				{ID: "w2", SourceID: "eurepoc", Success: true, Title: "Incident two"},
			},
		},
	)

	err := service.Watch(context.Background())
	require.NoError(t, err)

	raws, err := rawStore.ListRaw(context.Background(), "eurepoc", false)
	require.NoError(t, err)
	assert.Len(t, raws, 2)
}

func TestCollectService_Watch_DuplicatesSkipped(t *testing.T) {
	rawStore := memory.NewRawDocumentStore()
	doc := domain.RawDocument{ID: "w1", SourceID: "eurepoc", Success: true}
	service := NewCollectService(rawStore, &watchingCollector{
		stubCollector: stubCollector{id: "eurepoc"},
		watchDocs:     []domain.RawDocument{doc, doc},
	})

	err := service.Watch(context.Background())
	require.NoError(t, err)

	raws, err := rawStore.ListRaw(context.Background(), "", false)
	require.NoError(t, err)
	assert.Len(t, raws, 1)
}

func TestCollectService_Watch_NoWatchers(t *testing.T) {
	service := NewCollectService(memory.NewRawDocumentStore(), &stubCollector{id: "cisa"})

	err := service.Watch(context.Background())
	assert.ErrorContains(t, err, "no watch-capable collectors")
}

func TestCollectService_Watch_StartFailure(t *testing.T) {
	service := NewCollectService(memory.NewRawDocumentStore(), &watchingCollector{
		stubCollector: stubCollector{id: "eurepoc"},
		watchErr:      errors.New("directory missing"),
	})

	err := service.Watch(context.Background())
	assert.ErrorContains(t, err, "directory missing")
}

func TestCollectService_NoCollectors(t *testing.T) {
	service := NewCollectService(memory.NewRawDocumentStore())

	_, err := service.Collect(context.Background())
	assert.Error(t, err)
}

func TestCollectService_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	service := NewCollectService(memory.NewRawDocumentStore(),
		&stubCollector{id: "cisa"},
	)

	_, err := service.Collect(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
