// Package tabfile reads uploaded tabular files into tables and writes result
// tables back out as multi-sheet XLSX workbooks.
package tabfile

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/magrebiali/FixMySheet-Backend/types"
)

const (
	errInvalidFile = "Invalid file. Upload .xlsx or .csv"
	errNoRows      = "File contains no rows to process."
)

// Read parses an uploaded file into a table, dispatching on the file
// extension: ".csv" is read as CSV, everything else is assumed to be an
// Excel workbook. The first row is the header; column types are inferred
// once, at construction.
func Read(filename string, r io.Reader) (*types.Table, error) {
	var (
		records [][]string
		err     error
	)
	if strings.EqualFold(filepath.Ext(filename), ".csv") {
		records, err = readCSV(r)
	} else {
		records, err = readExcel(r)
	}
	if err != nil {
		return nil, err
	}
	return buildTable(records)
}

func readCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, types.NewInvalidInput(errInvalidFile)
	}
	return records, nil
}

func readExcel(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, types.NewInvalidInput(errInvalidFile)
	}
	defer func() {
		_ = f.Close()
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, types.NewInvalidInput(errInvalidFile)
	}

	iter, err := f.Rows(sheets[0])
	if err != nil {
		return nil, types.NewInvalidInput(errInvalidFile)
	}
	defer iter.Close()

	var records [][]string
	for iter.Next() {
		row, err := iter.Columns()
		if err != nil {
			return nil, types.NewInvalidInput(errInvalidFile)
		}
		records = append(records, row)
	}
	return records, nil
}

// buildTable turns header+records into a typed table. Ragged rows are padded
// with empty cells; duplicate or blank header names are disambiguated so
// names stay unique.
func buildTable(records [][]string) (*types.Table, error) {
	if len(records) == 0 {
		return nil, types.NewEmptyInput(errNoRows)
	}
	header := records[0]
	rows := records[1:]
	if len(rows) == 0 {
		return nil, types.NewEmptyInput(errNoRows)
	}

	width := len(header)
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	if width == 0 {
		return nil, types.NewInvalidInput(errInvalidFile)
	}

	names := uniqueNames(header, width)

	table := &types.Table{}
	for c := 0; c < width; c++ {
		raw := make([]string, len(rows))
		for r, row := range rows {
			if c < len(row) {
				raw[r] = row[c]
			}
		}
		table.AppendColumn(inferColumn(names[c], raw))
	}
	return table, nil
}

// uniqueNames stringifies the header, fills in names for unnamed columns,
// and suffixes repeats with ".1", ".2", ... so every column name is unique.
func uniqueNames(header []string, width int) []string {
	names := make([]string, width)
	taken := make(map[string]bool, width)
	for c := 0; c < width; c++ {
		name := ""
		if c < len(header) {
			name = strings.TrimSpace(header[c])
		}
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", c)
		}
		candidate := name
		for i := 1; taken[candidate]; i++ {
			candidate = fmt.Sprintf("%s.%d", name, i)
		}
		taken[candidate] = true
		names[c] = candidate
	}
	return names
}

// inferColumn decides the column type once: numeric iff every non-blank
// value parses as a number, text otherwise.
func inferColumn(name string, raw []string) types.Column {
	numeric := false
	for _, v := range raw {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		if _, err := strconv.ParseFloat(trimmed, 64); err != nil {
			numeric = false
			break
		}
		numeric = true
	}

	cells := make([]types.Cell, len(raw))
	if numeric {
		for i, v := range raw {
			trimmed := strings.TrimSpace(v)
			if trimmed == "" {
				continue
			}
			n, _ := strconv.ParseFloat(trimmed, 64)
			cells[i] = types.NumberCell(n)
		}
		return types.Column{Name: name, Kind: types.ColumnNumber, Cells: cells}
	}
	for i, v := range raw {
		if v == "" {
			continue
		}
		cells[i] = types.TextCell(v)
	}
	return types.Column{Name: name, Kind: types.ColumnText, Cells: cells}
}
