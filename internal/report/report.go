// =============================================================================
// glue_sql to JSON Converter - Batch Report Module
// =============================================================================
//
// This module writes the optional XLSX summary report for a directory-mode
// run: one row per processed file with its status, output path, module code
// and query count, preceded by a totals row.
//
// The report is a convenience artifact for operators reviewing large batch
// migrations; it has no effect on conversion results or exit codes.
//
// =============================================================================

package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// sheetName is the single worksheet the report is written to.
const sheetName = "Batch Summary"

// Entry is one processed file in the batch report.
type Entry struct {
	// InputFile is the path of the source query-map file.
	InputFile string

	// OutputFile is the path of the generated JSON file, if any.
	OutputFile string

	// Success indicates whether the conversion succeeded.
	Success bool

	// ModuleCode is the module key the file's queries were grouped under.
	ModuleCode string

	// Queries is the number of converted query records.
	Queries int

	// Error is the failure message for unsuccessful conversions.
	Error string
}

// Write generates the XLSX report at path from the batch entries.
func Write(path string, entries []Entry) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("failed to name report sheet: %w", err)
	}

	successes := 0
	for _, e := range entries {
		if e.Success {
			successes++
		}
	}

	rows := [][]any{
		{"Total Files", len(entries), "Successful", successes, "Failed", len(entries) - successes},
		{},
		{"Input File", "Output File", "Status", "Module", "Queries", "Error"},
	}

	for _, e := range entries {
		status := "OK"
		if !e.Success {
			status = "FAILED"
		}
		rows = append(rows, []any{e.InputFile, e.OutputFile, status, e.ModuleCode, e.Queries, e.Error})
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("failed to build report cell name: %w", err)
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write report row: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}

	return nil
}
