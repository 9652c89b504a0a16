package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"
)

const summarySheet = "Summary"

// WriteXLSX renders the report as a workbook: a summary sheet with the run
// identifier and per-section hit counts, then one sheet per section.
func (r *Report) WriteXLSX(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), summarySheet); err != nil {
		return fmt.Errorf("failed to rename summary sheet: %w", err)
	}
	if err := r.writeSummary(f); err != nil {
		return err
	}

	for _, section := range r.sections {
		name := SheetName(section.Name)
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to add sheet %q: %w", name, err)
		}
		header := make([]interface{}, len(section.Headers))
		for i, h := range section.Headers {
			header[i] = h
		}
		if err := f.SetSheetRow(name, "A1", &header); err != nil {
			return fmt.Errorf("failed to write header of %q: %w", name, err)
		}
		for i, row := range section.Rows {
			cell, err := excelize.CoordinatesToCellName(1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(name, cell, &row); err != nil {
				return fmt.Errorf("failed to write row of %q: %w", name, err)
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func (r *Report) writeSummary(f *excelize.File) error {
	rows := [][]interface{}{
		{"Run ID", r.RunID},
		{"Generated", r.CreatedAt.Format("2006-01-02 15:04:05")},
		{},
		{"Section", "Hits"},
	}
	for _, section := range r.sections {
		rows = append(rows, []interface{}{section.Name, len(section.Rows)})
	}
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summarySheet, cell, &rows[i]); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
	}
	return nil
}

// SaveXLSX writes the workbook to path, creating parent directories as
// needed.
func (r *Report) SaveXLSX(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()
	return r.WriteXLSX(out)
}
