package reconcile

import (
	"testing"

	"github.com/magrebiali/FixMySheet-Backend/types"
)

func textColumn(name string, values ...string) types.Column {
	cells := make([]types.Cell, len(values))
	for i, v := range values {
		if v != "" {
			cells[i] = types.TextCell(v)
		}
	}
	return types.Column{Name: name, Kind: types.ColumnText, Cells: cells}
}

func columnValues(t *testing.T, table *types.Table, name string) []string {
	t.Helper()
	col, ok := table.Column(name)
	if !ok {
		t.Fatalf("table missing column %q (has %v)", name, table.ColumnNames())
	}
	out := make([]string, len(col.Cells))
	for i, cell := range col.Cells {
		out[i] = cell.String()
	}
	return out
}

func TestReconcileSingleMatch(t *testing.T) {
	a := &types.Table{Columns: []types.Column{
		textColumn("id", "1"),
		textColumn("v", "x"),
	}}
	b := &types.Table{Columns: []types.Column{
		textColumn("id", "1"),
		textColumn("v", "y"),
	}}

	result, err := Reconcile(a, b, "id")
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}

	if result.Matches.RowCount() != 1 {
		t.Fatalf("matches = %d rows, want 1", result.Matches.RowCount())
	}
	if got := columnValues(t, result.Matches, "v_A"); got[0] != "x" {
		t.Errorf("v_A = %q, want x", got[0])
	}
	if got := columnValues(t, result.Matches, "v_B"); got[0] != "y" {
		t.Errorf("v_B = %q, want y", got[0])
	}
	if result.OnlyInA.RowCount() != 0 || result.OnlyInB.RowCount() != 0 {
		t.Errorf("anti-joins = %d/%d rows, want empty", result.OnlyInA.RowCount(), result.OnlyInB.RowCount())
	}

	values := columnValues(t, result.Summary, "Value")
	for i, want := range []string{"1", "1", "1", "0", "0"} {
		if values[i] != want {
			t.Errorf("summary value %d = %q, want %q", i, values[i], want)
		}
	}
}

func TestReconcileCrossProduct(t *testing.T) {
	a := &types.Table{Columns: []types.Column{
		textColumn("id", "1", "1", "2"),
		textColumn("va", "x1", "x2", "x3"),
	}}
	b := &types.Table{Columns: []types.Column{
		textColumn("id", "1", "1", "3"),
		textColumn("vb", "y1", "y2", "y3"),
	}}

	result, err := Reconcile(a, b, "id")
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}

	// Two A rows join two B rows each: 4 match rows, not deduplicated.
	if result.Matches.RowCount() != 4 {
		t.Fatalf("matches = %d rows, want 4", result.Matches.RowCount())
	}

	// Merge order: A rows in order, each expanded by its B matches in order.
	va := columnValues(t, result.Matches, "va")
	vb := columnValues(t, result.Matches, "vb")
	wantVA := []string{"x1", "x1", "x2", "x2"}
	wantVB := []string{"y1", "y2", "y1", "y2"}
	for i := range wantVA {
		if va[i] != wantVA[i] || vb[i] != wantVB[i] {
			t.Errorf("match row %d = (%q,%q), want (%q,%q)", i, va[i], vb[i], wantVA[i], wantVB[i])
		}
	}

	if got := columnValues(t, result.OnlyInA, "id"); len(got) != 1 || got[0] != "2" {
		t.Errorf("OnlyInA ids = %v, want [2]", got)
	}
	if got := columnValues(t, result.OnlyInB, "id"); len(got) != 1 || got[0] != "3" {
		t.Errorf("OnlyInB ids = %v, want [3]", got)
	}
}

// Every key of A lands in exactly one of the match set or OnlyInA; row counts
// do not partition because of cross-product growth.
func TestReconcileKeyPartition(t *testing.T) {
	a := &types.Table{Columns: []types.Column{
		textColumn("id", "1", "2", "2", "3"),
	}}
	b := &types.Table{Columns: []types.Column{
		textColumn("id", "2", "2", "4"),
	}}

	result, err := Reconcile(a, b, "id")
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}

	matched := make(map[string]bool)
	for _, id := range columnValues(t, result.Matches, "id") {
		matched[id] = true
	}
	only := make(map[string]bool)
	for _, id := range columnValues(t, result.OnlyInA, "id") {
		only[id] = true
	}

	for _, id := range columnValues(t, a, "id") {
		if matched[id] == only[id] {
			t.Errorf("key %q must be in exactly one of matches/only-in-A (matched=%v, only=%v)", id, matched[id], only[id])
		}
	}
}

func TestReconcileNormalizesKeys(t *testing.T) {
	a := &types.Table{Columns: []types.Column{
		textColumn("id", "  x  "),
	}}
	b := &types.Table{Columns: []types.Column{
		textColumn("id", "x"),
	}}

	result, err := Reconcile(a, b, "id")
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}
	if result.Matches.RowCount() != 1 {
		t.Fatalf("whitespace-padded keys should match after stripping, got %d matches", result.Matches.RowCount())
	}
	if got := columnValues(t, result.Matches, "id"); got[0] != "x" {
		t.Errorf("output key = %q, want normalized form", got[0])
	}
}

func TestReconcileNumericKeyCoercion(t *testing.T) {
	a := &types.Table{Columns: []types.Column{
		{Name: "id", Kind: types.ColumnNumber, Cells: []types.Cell{types.NumberCell(1)}},
	}}
	b := &types.Table{Columns: []types.Column{
		textColumn("id", "1"),
	}}

	result, err := Reconcile(a, b, "id")
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}
	if result.Matches.RowCount() != 1 {
		t.Errorf("string-coerced keys should match, got %d matches", result.Matches.RowCount())
	}
}

func TestReconcileMissingKeyColumn(t *testing.T) {
	a := &types.Table{Columns: []types.Column{textColumn("id", "1")}}
	b := &types.Table{Columns: []types.Column{textColumn("ref", "1")}}

	_, err := Reconcile(a, b, "id")
	appErr, ok := types.AsError(err)
	if !ok || appErr.Kind != types.InvalidConfiguration {
		t.Fatalf("expected InvalidConfiguration, got %v", err)
	}
	if _, ok := appErr.Context["columns_file_a"]; !ok {
		t.Errorf("error context missing columns_file_a: %v", appErr.Context)
	}
	if _, ok := appErr.Context["columns_file_b"]; !ok {
		t.Errorf("error context missing columns_file_b: %v", appErr.Context)
	}
}

func TestReconcileDoesNotMutateInputs(t *testing.T) {
	a := &types.Table{Columns: []types.Column{textColumn("id", "  x  ")}}
	b := &types.Table{Columns: []types.Column{textColumn("id", "x")}}

	if _, err := Reconcile(a, b, "id"); err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}
	if got := columnValues(t, a, "id"); got[0] != "  x  " {
		t.Errorf("input table mutated: id = %q", got[0])
	}
}
