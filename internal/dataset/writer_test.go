package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seclens-labs/seclens-cli/internal/core/domain"
)

func annotated(t *testing.T, sentence string) domain.AnnotatedSentence {
	t.Helper()
	b := NewBuilder(stubSegmenter{}, nil)
	out, err := b.Annotate(sentence)
	require.NoError(t, err)
	return out
}

func TestWriteSplits_RoundTrip(t *testing.T) {
	dir := t.TempDir()

	sentences := []domain.AnnotatedSentence{
		annotated(t, "The firewall was breached by the intruders."),
		annotated(t, "Administrators patched the servers overnight."),
		annotated(t, "A new backup policy was announced."),
	}
	splits := []domain.DatasetSplit{
		{Name: domain.SplitTrain, Sentences: sentences[:2]},
		{Name: domain.SplitValid, Sentences: sentences[2:]},
		{Name: domain.SplitTest, Sentences: nil},
	}

	stats := &domain.DatasetStats{SplitSizes: make(map[domain.Split]int)}
	require.NoError(t, WriteSplits(dir, splits, stats))

	assert.Equal(t, 2, stats.SplitSizes[domain.SplitTrain])
	assert.Equal(t, 1, stats.SplitSizes[domain.SplitValid])
	assert.Equal(t, 0, stats.SplitSizes[domain.SplitTest])

	got, err := ReadSplit(filepath.Join(dir, domain.SplitTrain.Filename()))
	require.NoError(t, err)
	require.Len(t, got, 2)
	for i, sentence := range got {
		assert.Equal(t, sentences[i].Tokens, sentence.Tokens)
		assert.Equal(t, sentences[i].Tags, sentence.Tags)
		assert.Equal(t, sentences[i].Labels, sentence.Labels)
		assert.Equal(t, sentences[i].Spans, sentence.Spans)
	}

	empty, err := ReadSplit(filepath.Join(dir, domain.SplitTest.Filename()))
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestWriteSplits_PersistsStats(t *testing.T) {
	dir := t.TempDir()

	splits := []domain.DatasetSplit{
		{Name: domain.SplitTrain, Sentences: []domain.AnnotatedSentence{annotated(t, "The firewall failed.")}},
	}
	stats := &domain.DatasetStats{
		DocumentsProcessed: 3,
		SentencesEmitted:   1,
		SkippedNoAspects:   2,
		SplitSizes:         make(map[domain.Split]int),
	}
	require.NoError(t, WriteSplits(dir, splits, stats))

	got, err := ReadStats(dir)
	require.NoError(t, err)
	assert.Equal(t, stats, got)
}

func TestReadStats_Missing(t *testing.T) {
	_, err := ReadStats(t.TempDir())
	assert.True(t, os.IsNotExist(err))
}

func TestWriteSplits_FileFormat(t *testing.T) {
	dir := t.TempDir()

	splits := []domain.DatasetSplit{
		{Name: domain.SplitTrain, Sentences: []domain.AnnotatedSentence{
			annotated(t, "The firewall failed."),
			annotated(t, "The network recovered."),
		}},
	}
	require.NoError(t, WriteSplits(dir, splits, nil))

	raw, err := os.ReadFile(filepath.Join(dir, "train.dat.atepc"))
	require.NoError(t, err)

	lines := strings.Split(string(raw), "\n")
	assert.Equal(t, "The\tO\t0", lines[0])
	assert.Equal(t, "firewall\tB-ASP\t-1", lines[1])
	assert.Equal(t, "failed\tO\t0", lines[2])
	assert.Equal(t, ".\tO\t0", lines[3])
	assert.Equal(t, "", lines[4], "blank line separates sentences")
	assert.Equal(t, "The\tO\t0", lines[5])
}

func TestWriteSplits_Readme(t *testing.T) {
	dir := t.TempDir()

	splits := []domain.DatasetSplit{
		{Name: domain.SplitTrain, Sentences: []domain.AnnotatedSentence{annotated(t, "The firewall failed.")}},
	}
	require.NoError(t, WriteSplits(dir, splits, nil))

	raw, err := os.ReadFile(filepath.Join(dir, "readme.txt"))
	require.NoError(t, err)

	text := string(raw)
	assert.Contains(t, text, "IOB")
	assert.Contains(t, text, "train samples (sentences): 1")
}

func TestWriteAPC(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "apc.txt")

	sentences := []domain.AnnotatedSentence{
		{
			Tokens: []string{"The", "firewall", "failed", "but", "backups", "survived"},
			Tags:   []string{"O", "B-ASP", "O", "O", "B-ASP", "O"},
			Labels: []string{"0", "-1", "0", "0", "1", "0"},
			Spans: []domain.AspectSpan{
				{Start: 1, End: 2, Text: "firewall", Sentiment: domain.SentimentNegative},
				{Start: 4, End: 5, Text: "backups", Sentiment: domain.SentimentPositive},
			},
		},
		{Tokens: []string{"no", "aspects"}, Tags: []string{"O", "O"}, Labels: []string{"0", "0"}},
	}
	require.NoError(t, WriteAPC(path, sentences))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	require.Len(t, lines, 1, "span-free sentences are omitted")

	// Multiple aspects repeat on one line. Consumers may only parse the
	// first pair reliably; the layout is fixed by the training framework.
	assert.Equal(t,
		"The firewall failed but backups survived ||| firewall ||| Negative ||| backups ||| Positive",
		lines[0])
}

func TestReadSplit_MalformedLine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.dat.atepc")
	require.NoError(t, os.WriteFile(path, []byte("token\tO\n"), 0o644))

	_, err := ReadSplit(path)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReadSplit_DanglingInsideTag(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.dat.atepc")
	require.NoError(t, os.WriteFile(path, []byte("token\tI-ASP\t0\n"), 0o644))

	_, err := ReadSplit(path)
	assert.ErrorIs(t, err, domain.ErrDanglingInsideTag)
}
