// Package reconcile computes the inner join and the two anti-joins between
// two tables on a shared key column, plus a count summary.
package reconcile

import (
	"fmt"

	"github.com/magrebiali/FixMySheet-Backend/dedupe"
	"github.com/magrebiali/FixMySheet-Backend/types"
)

// Column-name suffixes applied to non-key columns whose names collide
// between the two files.
const (
	suffixA = "_A"
	suffixB = "_B"
)

// Result holds the four derived tables of one reconciliation.
type Result struct {
	Matches *types.Table
	OnlyInA *types.Table
	OnlyInB *types.Table
	Summary *types.Table
}

// Reconcile joins tables a and b on keyColumn. The key column is normalized
// on both sides (always-strip, string-coerce, missing-as-empty) before
// comparison, and the normalized form is what appears in the output tables.
// Duplicate key values produce the full cross-product of matching rows.
func Reconcile(a, b *types.Table, keyColumn string) (*Result, error) {
	if !a.HasColumn(keyColumn) || !b.HasColumn(keyColumn) {
		return nil, types.NewInvalidConfiguration(
			fmt.Sprintf("match column %q not found in both files", keyColumn),
			map[string]any{
				"columns_file_a": a.ColumnNames(),
				"columns_file_b": b.ColumnNames(),
			},
		)
	}

	a = withNormalizedKey(a, keyColumn)
	b = withNormalizedKey(b, keyColumn)

	keysA := columnStrings(a, keyColumn)
	keysB := columnStrings(b, keyColumn)

	rowsB := make(map[string][]int, len(keysB))
	for i, key := range keysB {
		rowsB[key] = append(rowsB[key], i)
	}
	inA := make(map[string]bool, len(keysA))
	for _, key := range keysA {
		inA[key] = true
	}

	// Join order follows the merge: A rows in order, each expanded by its
	// B matches in B order.
	type pair struct{ ai, bi int }
	var matched []pair
	var onlyA []int
	for i, key := range keysA {
		members := rowsB[key]
		if len(members) == 0 {
			onlyA = append(onlyA, i)
			continue
		}
		for _, j := range members {
			matched = append(matched, pair{ai: i, bi: j})
		}
	}
	var onlyB []int
	for j, key := range keysB {
		if !inA[key] {
			onlyB = append(onlyB, j)
		}
	}

	matches := &types.Table{}
	for _, col := range a.Columns {
		name := col.Name
		if name != keyColumn && b.HasColumn(name) {
			name += suffixA
		}
		cells := make([]types.Cell, len(matched))
		for k, p := range matched {
			cells[k] = col.Cells[p.ai]
		}
		matches.AppendColumn(types.Column{Name: name, Kind: col.Kind, Cells: cells})
	}
	for _, col := range b.Columns {
		if col.Name == keyColumn {
			continue
		}
		name := col.Name
		if a.HasColumn(name) {
			name += suffixB
		}
		cells := make([]types.Cell, len(matched))
		for k, p := range matched {
			cells[k] = col.Cells[p.bi]
		}
		matches.AppendColumn(types.Column{Name: name, Kind: col.Kind, Cells: cells})
	}

	result := &Result{
		Matches: matches,
		OnlyInA: selectRows(a, onlyA),
		OnlyInB: selectRows(b, onlyB),
	}
	result.Summary = summaryTable([]summaryRow{
		{"Rows in File A", a.RowCount()},
		{"Rows in File B", b.RowCount()},
		{"Matches", len(matched)},
		{"Only in File A", len(onlyA)},
		{"Only in File B", len(onlyB)},
	})
	return result, nil
}

// withNormalizedKey returns a copy of t whose key column is replaced by its
// normalized text form.
func withNormalizedKey(t *types.Table, keyColumn string) *types.Table {
	out := t.Clone()
	col, _ := out.Column(keyColumn)
	normalized := dedupe.NormalizeColumn(col.Cells, dedupe.Options{})
	cells := make([]types.Cell, len(normalized))
	for i, v := range normalized {
		cells[i] = types.TextCell(v)
	}
	col.Kind = types.ColumnText
	col.Cells = cells
	return out
}

func columnStrings(t *types.Table, name string) []string {
	col, _ := t.Column(name)
	out := make([]string, len(col.Cells))
	for i, cell := range col.Cells {
		out[i] = cell.Text
	}
	return out
}

// selectRows returns a table with the same columns as t holding only the
// given rows, in the given order.
func selectRows(t *types.Table, rows []int) *types.Table {
	out := &types.Table{}
	for _, col := range t.Columns {
		cells := make([]types.Cell, len(rows))
		for k, i := range rows {
			cells[k] = col.Cells[i]
		}
		out.AppendColumn(types.Column{Name: col.Name, Kind: col.Kind, Cells: cells})
	}
	return out
}

type summaryRow struct {
	metric string
	value  int
}

func summaryTable(rows []summaryRow) *types.Table {
	metrics := make([]types.Cell, len(rows))
	values := make([]types.Cell, len(rows))
	for i, r := range rows {
		metrics[i] = types.TextCell(r.metric)
		values[i] = types.NumberCell(float64(r.value))
	}
	return &types.Table{Columns: []types.Column{
		{Name: "Metric", Kind: types.ColumnText, Cells: metrics},
		{Name: "Value", Kind: types.ColumnNumber, Cells: values},
	}}
}
