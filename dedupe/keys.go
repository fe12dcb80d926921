package dedupe

import (
	"fmt"
	"strings"

	"github.com/magrebiali/FixMySheet-Backend/types"
)

// keySeparator joins per-column key fragments. The ASCII unit separator never
// survives normalization of real text, so columns ("ab","c") and ("a","bc")
// cannot compose to the same key.
const keySeparator = "\x1f"

// RowKeys computes one composite comparison key per row from the named
// columns. Text columns are normalized per opts; numeric columns contribute
// their canonical number form, with missing values as the empty string.
//
// Fails with InvalidConfiguration when a named column does not exist or when
// subsetCols is empty.
func RowKeys(t *types.Table, subsetCols []string, opts Options) ([]string, error) {
	if len(subsetCols) == 0 {
		return nil, types.NewInvalidConfiguration("no columns left to compare", map[string]any{
			"available_columns": t.ColumnNames(),
		})
	}

	parts := make([][]string, len(subsetCols))
	for i, name := range subsetCols {
		col, ok := t.Column(name)
		if !ok {
			return nil, types.NewInvalidConfiguration(
				fmt.Sprintf("column %q not found in uploaded file", name),
				map[string]any{"available_columns": t.ColumnNames()},
			)
		}
		if col.Kind == types.ColumnNumber {
			parts[i] = numericKeyStrings(col.Cells)
		} else {
			parts[i] = NormalizeColumn(col.Cells, opts)
		}
	}

	keys := make([]string, t.RowCount())
	fragment := make([]string, len(parts))
	for row := range keys {
		for i := range parts {
			fragment[i] = parts[i][row]
		}
		keys[row] = strings.Join(fragment, keySeparator)
	}
	return keys, nil
}

// numericKeyStrings renders a numeric column for key composition. Numbers are
// compared by parsed value, not by the raw text they were typed as, so "1"
// and "1.0" in a numeric column produce the same fragment.
func numericKeyStrings(cells []types.Cell) []string {
	out := make([]string, len(cells))
	for i, cell := range cells {
		if cell.IsEmpty() {
			out[i] = ""
		} else {
			out[i] = cell.String()
		}
	}
	return out
}

// DisplayKeys returns the raw, pre-normalization string form of the named
// column, used for human-readable duplicate-key output.
func DisplayKeys(t *types.Table, name string) ([]string, error) {
	col, ok := t.Column(name)
	if !ok {
		return nil, types.NewInvalidConfiguration(
			fmt.Sprintf("column %q not found in uploaded file", name),
			map[string]any{"available_columns": t.ColumnNames()},
		)
	}
	out := make([]string, len(col.Cells))
	for i, cell := range col.Cells {
		out[i] = cell.String()
	}
	return out, nil
}
