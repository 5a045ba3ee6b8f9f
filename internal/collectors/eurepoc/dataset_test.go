package eurepoc

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `id,title,description,date,incident_type,severity,receiver_country,initiator_country,data_theft,disruption,impact_indicator
1,Ransomware Attack on Healthcare System,"A major ransomware attack encrypted patient records.",2024-01-15,Ransomware,3.5,Germany,Unknown,true,true,2.0
2,Phishing Campaign,"A phishing campaign targeted financial institutions.",2024-01-20,Phishing,2.0,France,Russia,false,false,1.0
3,,,,,,,,,,
`

func writeSample(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0600))
	return path
}

func TestLoadCSV(t *testing.T) {
	dir := t.TempDir()
	path := writeSample(t, dir, "eurepoc_global_database.csv")

	incidents, err := loadIncidents(path)
	require.NoError(t, err)
	require.Len(t, incidents, 2, "empty row should be dropped")

	first := incidents[0]
	assert.Equal(t, "Ransomware Attack on Healthcare System", first.Title)
	assert.Equal(t, "Ransomware", first.IncidentType)
	assert.InDelta(t, 3.5, first.Severity, 1e-9)
	assert.True(t, first.DataTheft)
	assert.True(t, first.Disruption)
	assert.Equal(t, "Germany", first.ReceiverCountry)

	second := incidents[1]
	assert.False(t, second.DataTheft)
	assert.Equal(t, "Russia", second.InitiatorCountry)
	// Missing category columns fall back to the dataset marker
	assert.Equal(t, "Unknown", second.ReceiverCategory)
}

func TestLoadIncidents_UnsupportedFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "eurepoc.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0600))

	_, err := loadIncidents(path)
	assert.Error(t, err)
}

func TestIncident_Text(t *testing.T) {
	inc := Incident{Title: "Breach", Description: "Customer data exposed."}
	assert.Equal(t, "Breach. Customer data exposed.", inc.Text())

	titleOnly := Incident{Title: "Breach"}
	assert.Equal(t, "Breach", titleOnly.Text())
}

func TestIncident_ImpactDescription(t *testing.T) {
	inc := Incident{DataTheft: true, Disruption: true, ImpactIndicator: 2.0}
	assert.Equal(t, "Data Theft | Service Disruption | Impact Level: 2.0", inc.ImpactDescription())

	none := Incident{}
	assert.Equal(t, "No significant impact", none.ImpactDescription())
}

func TestCollector_Collect(t *testing.T) {
	dir := t.TempDir()
	writeSample(t, dir, "EuRepoC_export.csv")

	c := New(dir)
	assert.Equal(t, SourceID, c.SourceID())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	docs, errs := c.Collect(ctx)

	var collected int
	for doc := range docs {
		collected++
		assert.Equal(t, SourceID, doc.SourceID)
		assert.True(t, doc.Success)
		assert.NotEmpty(t, doc.Content)
		assert.NotEmpty(t, doc.Metadata["impact_description"])
	}
	for err := range errs {
		t.Fatalf("unexpected error: %v", err)
	}
	assert.Equal(t, 2, collected)
}

func TestCollector_Collect_NoFiles(t *testing.T) {
	c := New(t.TempDir())

	docs, errs := c.Collect(context.Background())
	for range docs {
		t.Fatal("expected no documents")
	}

	err := <-errs
	assert.Error(t, err)
}

func TestCollector_Watch_IngestsDroppedFile(t *testing.T) {
	dir := t.TempDir()
	c := New(dir)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	docs, err := c.Watch(ctx)
	require.NoError(t, err)

	writeSample(t, dir, "eurepoc_drop.csv")

	var collected []string
	for len(collected) < 2 {
		select {
		case doc, ok := <-docs:
			if !ok {
				t.Fatalf("watch channel closed after %d documents", len(collected))
			}
			assert.Equal(t, SourceID, doc.SourceID)
			assert.True(t, doc.Success)
			collected = append(collected, doc.Title)
		case <-ctx.Done():
			t.Fatalf("timed out after %d documents", len(collected))
		}
	}
	assert.Contains(t, collected, "Ransomware Attack on Healthcare System")

	cancel()
	for range docs {
	}
}

func TestCollector_Watch_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	c := New(dir)

	ctx, cancel := context.WithCancel(context.Background())
	docs, err := c.Watch(ctx)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("scratch"), 0600))

	select {
	case doc, ok := <-docs:
		if ok {
			t.Fatalf("unexpected document %q from non-dataset file", doc.Title)
		}
	case <-time.After(200 * time.Millisecond):
	}

	cancel()
	for range docs {
	}
}

func TestCollector_Watch_MissingDirectory(t *testing.T) {
	c := New(filepath.Join(t.TempDir(), "absent"))

	_, err := c.Watch(context.Background())
	assert.Error(t, err)
}

func TestCollector_NewestFileWins(t *testing.T) {
	dir := t.TempDir()
	older := writeSample(t, dir, "eurepoc_old.csv")
	newer := writeSample(t, dir, "eurepoc_new.csv")

	past := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(older, past, past))

	c := New(dir)
	path, err := c.newestDatasetFile()
	require.NoError(t, err)
	assert.Equal(t, newer, path)
}

func TestIsDatasetFile(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"eurepoc_global_database.csv", true},
		{"EuRepoC-2024.xlsx", true},
		{"notes.txt", false},
		{"eurepoc.json", false},
		{"cisa_advisories.csv", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isDatasetFile(tt.name))
		})
	}
}
