package library

import (
	"fmt"

	"github.com/fabula-ai/fabula/pkg/models"
	"github.com/xuri/excelize/v2"
)

const statsSheet = "Statistiche"

// ExportStatsXLSX writes the monthly table to a spreadsheet for the admin
// export endpoint: one row per calendar month plus a totals footer.
func ExportStatsXLSX(s *models.LibraryStats) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", statsSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	rows := [][]any{{"Mese", "Libri", "Pagine"}}
	for _, bucket := range s.Monthly {
		rows = append(rows, []any{bucket.Period, bucket.Count, bucket.Pages})
	}
	rows = append(rows, []any{"Totale", s.TotalBooks, s.TotalPages})

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, fmt.Errorf("failed to address row %d: %w", i+1, err)
		}
		if err := f.SetSheetRow(statsSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("failed to create style: %w", err)
	}
	if err := f.SetCellStyle(statsSheet, "A1", "C1", bold); err != nil {
		return nil, fmt.Errorf("failed to style header: %w", err)
	}
	totals := fmt.Sprintf("A%d", len(rows))
	if err := f.SetCellStyle(statsSheet, totals, fmt.Sprintf("C%d", len(rows)), bold); err != nil {
		return nil, fmt.Errorf("failed to style totals: %w", err)
	}
	if err := f.SetColWidth(statsSheet, "A", "C", 12); err != nil {
		return nil, fmt.Errorf("failed to size columns: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize spreadsheet: %w", err)
	}
	return buf.Bytes(), nil
}
