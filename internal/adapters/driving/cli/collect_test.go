package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/seclens-labs/seclens-cli/internal/core/ports/driving"
)

// mockCollectRunner implements driving.CollectRunner for testing.
type mockCollectRunner struct {
	status  *driving.CollectStatus
	err     error
	watched bool
}

func (m *mockCollectRunner) Collect(_ context.Context) (*driving.CollectStatus, error) {
	return m.status, m.err
}

func (m *mockCollectRunner) Watch(_ context.Context) error {
	m.watched = true
	return nil
}

func setupCollectTest(runner driving.CollectRunner) func() {
	old := collectRunner
	collectRunner = runner
	return func() {
		collectRunner = old
	}
}

func TestCollectCmd_Use(t *testing.T) {
	assert.Equal(t, "collect", collectCmd.Use)
}

func TestCollectCmd_Short(t *testing.T) {
	assert.Equal(t, "Collect incident reports from all sources", collectCmd.Short)
}

func TestCollectCmd_Executes(t *testing.T) {
	cleanup := setupCollectTest(&mockCollectRunner{status: &driving.CollectStatus{
		Collected: map[string]int{"cisa": 5, "csis": 3},
		Failed:    map[string]int{"cisa": 1},
	}})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"collect"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "cisa: 5 collected, 1 failed")
	assert.Contains(t, buf.String(), "Collection complete: 8 documents stored.")
}

func TestCollectCmd_WatchFlag(t *testing.T) {
	runner := &mockCollectRunner{status: &driving.CollectStatus{
		Collected: map[string]int{"eurepoc": 2},
		Failed:    map[string]int{},
	}}
	cleanup := setupCollectTest(runner)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"collect", "--watch"})
	defer func() {
		collectWatch = false
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.True(t, runner.watched)
	assert.Contains(t, buf.String(), "Watching for new dataset files")
}

func TestCollectCmd_Error(t *testing.T) {
	cleanup := setupCollectTest(&mockCollectRunner{err: errors.New("network down")})
	defer cleanup()

	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"collect"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.ErrorContains(t, err, "network down")
}
