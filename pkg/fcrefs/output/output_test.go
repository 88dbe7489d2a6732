package output

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/fcrefs-go/pkg/fcrefs/models"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

func sampleResult(n int) *models.ScanResult {
	result := &models.ScanResult{
		Reference: models.NewReference("Main", "Spreadsheet", "Value"),
		Matches:   []models.Match{},
		Documents: 2,
	}
	locations := []string{"B1", "Radius", "C7"}
	for i := 0; i < n; i++ {
		result.Matches = append(result.Matches, models.Match{
			Document: "Part.FCStd",
			Object:   "Sheet",
			Property: "cells",
			Location: locations[i%len(locations)],
		})
	}
	return result
}

func TestWriteText(t *testing.T) {
	tests := []struct {
		matches  int
		expected string
	}{
		{0, "No references to Main#Spreadsheet.Value found.\n"},
		{1, "1 reference to Main#Spreadsheet.Value found:\nPart.FCStd Sheet.B1 (cells)\n"},
		{2, "2 references to Main#Spreadsheet.Value found:\nPart.FCStd Sheet.B1 (cells)\nPart.FCStd Sheet.Radius (cells)\n"},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		require.NoError(t, WriteText(&buf, sampleResult(tt.matches)))
		assert.Equal(t, tt.expected, buf.String())
	}
}

func TestToJSON(t *testing.T) {
	data, err := ToJSON(sampleResult(1), false)
	require.NoError(t, err)

	var decoded models.ScanResult
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *sampleResult(1), decoded)

	pretty, err := ToJSON(sampleResult(1), true)
	require.NoError(t, err)
	assert.Contains(t, string(pretty), "\n  \"reference\"")
}

func TestToJSONEmptyMatchesIsArray(t *testing.T) {
	data, err := ToJSON(sampleResult(0), false)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"matches":[]`)
	assert.NotContains(t, string(data), `"skipped"`)
}

func TestToYAML(t *testing.T) {
	data, err := ToYAML(sampleResult(2), sampleResult(0))
	require.NoError(t, err)

	dec := yaml.NewDecoder(bytes.NewReader(data))
	var first, second models.ScanResult
	require.NoError(t, dec.Decode(&first))
	require.NoError(t, dec.Decode(&second))

	assert.Len(t, first.Matches, 2)
	assert.Equal(t, "Radius", first.Matches[1].Location)
	assert.Empty(t, second.Matches)
}

func TestRenderTable(t *testing.T) {
	result := sampleResult(2)
	result.Skipped = []models.SkippedDocument{{Document: "Broken.FCStd", Reason: "not a valid document archive"}}

	out, err := RenderTable(result)
	require.NoError(t, err)

	assert.Contains(t, out, "2 references to Main#Spreadsheet.Value found:")
	assert.Contains(t, out, "Radius")
	assert.Contains(t, out, "1 document(s) skipped:")
	assert.Contains(t, out, "Broken.FCStd")
}

func TestRenderTableNoMatches(t *testing.T) {
	out, err := RenderTable(sampleResult(0))
	require.NoError(t, err)
	assert.Contains(t, out, "No references to Main#Spreadsheet.Value found.")
	assert.Equal(t, 1, strings.Count(out, "\n"))
}

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	withSkip := sampleResult(1)
	withSkip.Skipped = []models.SkippedDocument{{Document: "Broken.FCStd", Reason: "malformed document"}}

	require.NoError(t, WriteXLSX(path, sampleResult(2), withSkip))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(MatchesSheet)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Reference", "Document", "Object", "Location", "Property"}, rows[0])
	assert.Equal(t, []string{"Main#Spreadsheet.Value", "Part.FCStd", "Sheet", "Radius", "cells"}, rows[2])

	skipped, err := f.GetRows(SkippedSheet)
	require.NoError(t, err)
	require.Len(t, skipped, 2)
	assert.Equal(t, "Broken.FCStd", skipped[1][1])
}

func TestWriteXLSXWithoutSkipped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, WriteXLSX(path, sampleResult(0)))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{MatchesSheet}, f.GetSheetList())
}
