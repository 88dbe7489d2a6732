package output

import (
	"fmt"

	"github.com/ukaji3/fcrefs-go/pkg/fcrefs/models"
	"github.com/xuri/excelize/v2"
)

// Sheet names used in workbook reports.
const (
	MatchesSheet = "References"
	SkippedSheet = "Skipped"
)

var (
	matchHeader   = []any{"Reference", "Document", "Object", "Location", "Property"}
	skippedHeader = []any{"Reference", "Document", "Reason"}
)

// WriteXLSX writes the results to a workbook at path. The References sheet
// has one row per match; the Skipped sheet is added only when a scan
// skipped documents.
func WriteXLSX(path string, results ...*models.ScanResult) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", MatchesSheet); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	if err := writeRows(f, MatchesSheet, matchHeader, bold, matchRows(results)); err != nil {
		return err
	}
	if err := f.SetColWidth(MatchesSheet, "A", "A", 32); err != nil {
		return err
	}

	skipped := skippedRows(results)
	if len(skipped) > 0 {
		if _, err := f.NewSheet(SkippedSheet); err != nil {
			return err
		}
		if err := writeRows(f, SkippedSheet, skippedHeader, bold, skipped); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, header []any, headerStyle int, rows [][]any) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	last, _ := excelize.CoordinatesToCellName(len(header), 1)
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return err
	}

	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func matchRows(results []*models.ScanResult) [][]any {
	var rows [][]any
	for _, r := range results {
		for _, m := range r.Matches {
			rows = append(rows, []any{r.Reference.String(), m.Document, m.Object, m.Location, m.Property})
		}
	}
	return rows
}

func skippedRows(results []*models.ScanResult) [][]any {
	var rows [][]any
	for _, r := range results {
		for _, s := range r.Skipped {
			rows = append(rows, []any{r.Reference.String(), s.Document, s.Reason})
		}
	}
	return rows
}
