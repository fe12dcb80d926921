package tabfile

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/magrebiali/FixMySheet-Backend/types"
)

// Sheet pairs a sheet name with the table written to it.
type Sheet struct {
	Name  string
	Table *types.Table
}

// WriteWorkbook serializes the sheets into one XLSX workbook, in order. Each
// sheet gets a header row followed by the table rows; empty cells stay empty.
func WriteWorkbook(w io.Writer, sheets []Sheet) error {
	if len(sheets) == 0 {
		return fmt.Errorf("no sheets to write")
	}

	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	for i, sheet := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet.Name); err != nil {
				return fmt.Errorf("failed to name sheet %q: %w", sheet.Name, err)
			}
		} else if _, err := f.NewSheet(sheet.Name); err != nil {
			return fmt.Errorf("failed to add sheet %q: %w", sheet.Name, err)
		}
		if err := writeSheet(f, sheet); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet Sheet) error {
	header := make([]interface{}, len(sheet.Table.Columns))
	for c, col := range sheet.Table.Columns {
		header[c] = col.Name
	}
	if err := setRow(f, sheet.Name, 1, header); err != nil {
		return err
	}

	rowCount := sheet.Table.RowCount()
	values := make([]interface{}, len(sheet.Table.Columns))
	for r := 0; r < rowCount; r++ {
		for c, col := range sheet.Table.Columns {
			values[c] = cellValue(col.Cells[r])
		}
		if err := setRow(f, sheet.Name, r+2, values); err != nil {
			return err
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d of sheet %q: %w", row, sheet, err)
	}
	return nil
}

func cellValue(cell types.Cell) interface{} {
	switch cell.Kind {
	case types.CellText:
		return cell.Text
	case types.CellNumber:
		return cell.Number
	default:
		return nil
	}
}
