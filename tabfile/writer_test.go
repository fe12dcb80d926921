package tabfile

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/magrebiali/FixMySheet-Backend/types"
)

func TestWriteWorkbook(t *testing.T) {
	matches := &types.Table{Columns: []types.Column{
		{Name: "id", Kind: types.ColumnText, Cells: []types.Cell{types.TextCell("1")}},
		{Name: "v_A", Kind: types.ColumnText, Cells: []types.Cell{types.TextCell("x")}},
		{Name: "v_B", Kind: types.ColumnText, Cells: []types.Cell{types.TextCell("y")}},
	}}
	summary := &types.Table{Columns: []types.Column{
		{Name: "Metric", Kind: types.ColumnText, Cells: []types.Cell{types.TextCell("Matches")}},
		{Name: "Value", Kind: types.ColumnNumber, Cells: []types.Cell{types.NumberCell(1)}},
	}}

	var buf bytes.Buffer
	err := WriteWorkbook(&buf, []Sheet{
		{Name: "Matches", Table: matches},
		{Name: "Summary", Table: summary},
	})
	if err != nil {
		t.Fatalf("WriteWorkbook failed: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("generated workbook unreadable: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != "Matches" || sheets[1] != "Summary" {
		t.Fatalf("sheets = %v", sheets)
	}

	rows, err := f.GetRows("Matches")
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("Matches has %d rows, want header + 1", len(rows))
	}
	if rows[0][0] != "id" || rows[0][1] != "v_A" || rows[0][2] != "v_B" {
		t.Errorf("header = %v", rows[0])
	}
	if rows[1][1] != "x" || rows[1][2] != "y" {
		t.Errorf("data row = %v", rows[1])
	}

	value, err := f.GetCellValue("Summary", "B2")
	if err != nil {
		t.Fatalf("GetCellValue failed: %v", err)
	}
	if value != "1" {
		t.Errorf("Summary!B2 = %q, want 1", value)
	}
}

func TestWriteWorkbookEmptyCells(t *testing.T) {
	table := &types.Table{Columns: []types.Column{
		{Name: "v", Kind: types.ColumnText, Cells: []types.Cell{{}, types.TextCell("a")}},
	}}

	var buf bytes.Buffer
	if err := WriteWorkbook(&buf, []Sheet{{Name: "All_Rows", Table: table}}); err != nil {
		t.Fatalf("WriteWorkbook failed: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("generated workbook unreadable: %v", err)
	}
	defer f.Close()

	value, err := f.GetCellValue("All_Rows", "A2")
	if err != nil {
		t.Fatalf("GetCellValue failed: %v", err)
	}
	if value != "" {
		t.Errorf("empty cell serialized as %q", value)
	}
}

func TestWriteWorkbookNoSheets(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteWorkbook(&buf, nil); err == nil {
		t.Fatal("expected error for empty sheet list")
	}
}
