package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/meenmo/fwdcurve/grid"
	"github.com/meenmo/fwdcurve/utils"
)

// SheetName is the single sheet a workbook export writes.
const SheetName = "Forward Rates"

// WriteXLSX renders the table as a one-sheet workbook. Rates are stored
// as numbers and displayed through a 0.00% cell format.
func WriteXLSX(w io.Writer, t *grid.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName(f.GetSheetName(0), SheetName)

	if err := f.SetCellValue(SheetName, "A1", "date"); err != nil {
		return fmt.Errorf("WriteXLSX: %w", err)
	}
	for j, label := range t.Tenors() {
		cell, err := excelize.CoordinatesToCellName(j+2, 1)
		if err != nil {
			return fmt.Errorf("WriteXLSX: %w", err)
		}
		if err := f.SetCellValue(SheetName, cell, label); err != nil {
			return fmt.Errorf("WriteXLSX: %w", err)
		}
	}

	dates := t.Dates()
	for i := 0; i < t.NumRows(); i++ {
		row := i + 2
		if err := f.SetCellValue(SheetName, fmt.Sprintf("A%d", row), utils.FormatDate(dates[i])); err != nil {
			return fmt.Errorf("WriteXLSX: %w", err)
		}
		for j := 0; j < t.NumCols(); j++ {
			cell, err := excelize.CoordinatesToCellName(j+2, row)
			if err != nil {
				return fmt.Errorf("WriteXLSX: %w", err)
			}
			if err := f.SetCellValue(SheetName, cell, t.At(i, j)); err != nil {
				return fmt.Errorf("WriteXLSX: %w", err)
			}
		}
	}

	if t.NumRows() > 0 && t.NumCols() > 0 {
		// Built-in number format 10 is 0.00%.
		pct, err := f.NewStyle(&excelize.Style{NumFmt: 10})
		if err != nil {
			return fmt.Errorf("WriteXLSX: %w", err)
		}
		last, err := excelize.CoordinatesToCellName(t.NumCols()+1, t.NumRows()+1)
		if err != nil {
			return fmt.Errorf("WriteXLSX: %w", err)
		}
		if err := f.SetCellStyle(SheetName, "B2", last, pct); err != nil {
			return fmt.Errorf("WriteXLSX: %w", err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("WriteXLSX: %w", err)
	}
	return nil
}
