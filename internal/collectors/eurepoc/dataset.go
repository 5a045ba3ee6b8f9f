package eurepoc

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/seclens-labs/seclens-cli/internal/core/domain"
)

// Incident is one EuRepoC record mapped onto the standard fields the
// pipeline expects.
type Incident struct {
	ID                string
	Title             string
	Description       string
	Date              string
	IncidentType      string
	Severity          float64
	ReceiverCountry   string
	ReceiverCategory  string
	InitiatorCountry  string
	InitiatorCategory string
	CyberIntensity    float64
	ImpactIndicator   float64
	DataTheft         bool
	Disruption        bool
	MitreTechniques   string
	SourcesURL        string
}

// Text returns the analysable text body of the incident.
func (i Incident) Text() string {
	if i.Description == "" {
		return i.Title
	}
	return i.Title + ". " + i.Description
}

// ImpactDescription aggregates the incident's impact flags into a
// short human-readable summary.
func (i Incident) ImpactDescription() string {
	var parts []string
	if i.DataTheft {
		parts = append(parts, "Data Theft")
	}
	if i.Disruption {
		parts = append(parts, "Service Disruption")
	}
	if i.ImpactIndicator > 0 {
		parts = append(parts, fmt.Sprintf("Impact Level: %.1f", i.ImpactIndicator))
	}
	if len(parts) == 0 {
		return "No significant impact"
	}
	return strings.Join(parts, " | ")
}

// Metadata returns the incident's typed fields for raw document storage.
func (i Incident) Metadata() map[string]any {
	return map[string]any{
		"incident_id":        i.ID,
		"date":               i.Date,
		"incident_type":      i.IncidentType,
		"severity":           i.Severity,
		"receiver_country":   i.ReceiverCountry,
		"receiver_category":  i.ReceiverCategory,
		"initiator_country":  i.InitiatorCountry,
		"initiator_category": i.InitiatorCategory,
		"cyber_intensity":    i.CyberIntensity,
		"impact_indicator":   i.ImpactIndicator,
		"data_theft":         i.DataTheft,
		"disruption":         i.Disruption,
		"mitre_techniques":   i.MitreTechniques,
		"impact_description": i.ImpactDescription(),
		"sources_url":        i.SourcesURL,
	}
}

// columnAliases maps standard field names onto the column headings
// observed in EuRepoC exports.
var columnAliases = map[string][]string{
	"id":                 {"id", "ID"},
	"title":              {"title", "name"},
	"description":        {"description"},
	"date":               {"date", "start_date"},
	"incident_type":      {"incident_type"},
	"severity":           {"severity", "unweighted_cyber_intensity"},
	"receiver_country":   {"receiver_country"},
	"receiver_category":  {"receiver_category"},
	"initiator_country":  {"initiator_country"},
	"initiator_category": {"initiator_category"},
	"cyber_intensity":    {"cyber_intensity", "weighted_cyber_intensity"},
	"impact_indicator":   {"impact_indicator"},
	"data_theft":         {"data_theft"},
	"disruption":         {"disruption"},
	"mitre_techniques":   {"mitre_techniques", "MITRE_initial_access"},
	"sources_url":        {"sources_url"},
}

// loadIncidents parses a dataset file by extension.
func loadIncidents(path string) ([]Incident, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return loadCSV(path)
	case ".xlsx", ".xls":
		return loadXLSX(path)
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedType, filepath.Ext(path))
	}
}

// loadCSV reads incidents from a CSV export.
func loadCSV(path string) ([]Incident, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // EuRepoC exports have ragged rows

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return rowsToIncidents(rows)
}

// loadXLSX reads incidents from the first sheet of an Excel export.
func loadXLSX(path string) ([]Incident, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", domain.ErrInvalidInput)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %s: %w", sheets[0], err)
	}
	return rowsToIncidents(rows)
}

// rowsToIncidents maps header-indexed rows onto incidents. Rows missing
// both title and description are dropped.
func rowsToIncidents(rows [][]string) ([]Incident, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: dataset has no data rows", domain.ErrInvalidInput)
	}

	index := headerIndex(rows[0])
	incidents := make([]Incident, 0, len(rows)-1)

	for _, row := range rows[1:] {
		get := func(field string) string { return cellFor(row, index, field) }

		inc := Incident{
			ID:                get("id"),
			Title:             orUnknown(get("title")),
			Description:       get("description"),
			Date:              get("date"),
			IncidentType:      orUnknown(get("incident_type")),
			Severity:          parseFloat(get("severity")),
			ReceiverCountry:   orUnknown(get("receiver_country")),
			ReceiverCategory:  orUnknown(get("receiver_category")),
			InitiatorCountry:  orUnknown(get("initiator_country")),
			InitiatorCategory: orUnknown(get("initiator_category")),
			CyberIntensity:    parseFloat(get("cyber_intensity")),
			ImpactIndicator:   parseFloat(get("impact_indicator")),
			DataTheft:         parseBool(get("data_theft")),
			Disruption:        parseBool(get("disruption")),
			MitreTechniques:   get("mitre_techniques"),
			SourcesURL:        get("sources_url"),
		}

		if inc.Title == "Unknown" && inc.Description == "" {
			continue
		}
		incidents = append(incidents, inc)
	}

	return incidents, nil
}

// headerIndex maps each standard field name to its column position.
func headerIndex(header []string) map[string]int {
	byName := make(map[string]int, len(header))
	for i, col := range header {
		byName[strings.ToLower(strings.TrimSpace(col))] = i
	}

	index := make(map[string]int)
	for field, aliases := range columnAliases {
		for _, alias := range aliases {
			if i, ok := byName[strings.ToLower(alias)]; ok {
				index[field] = i
				break
			}
		}
	}
	return index
}

// cellFor returns the trimmed cell for a standard field, empty when the
// column is absent or the row is short.
func cellFor(row []string, index map[string]int, field string) string {
	i, ok := index[field]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// orUnknown substitutes the dataset's missing-value marker.
func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}

// parseFloat converts a numeric cell, zero when unparsable.
func parseFloat(s string) float64 {
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// parseBool converts a boolean cell, false when unparsable.
func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "true", "1", "yes", "y":
		return true
	}
	return false
}
