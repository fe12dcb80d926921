package api

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/magrebiali/FixMySheet-Backend/config"
	"github.com/magrebiali/FixMySheet-Backend/dedupe"
	"github.com/magrebiali/FixMySheet-Backend/tabfile"
	"github.com/magrebiali/FixMySheet-Backend/types"
)

// Deduplication modes accepted by the endpoint.
const (
	modeColumn = "column"
	modeRow    = "row"
)

// RegisterDedupeRoutes registers the single-file deduplication endpoint.
func RegisterDedupeRoutes(r *gin.Engine) {
	r.POST("/dedupe", handleDedupe)
}

// handleDedupe annotates an uploaded table with duplicate-group columns,
// either by a single key column or by whole-row equality minus an
// ignore-list, and returns a single-sheet workbook.
func handleDedupe(c *gin.Context) {
	mode := c.PostForm("mode")
	if mode != modeColumn && mode != modeRow {
		respondError(c, types.NewInvalidConfiguration(
			fmt.Sprintf("invalid mode %q", mode),
			map[string]any{"valid_modes": []string{modeColumn, modeRow}},
		))
		return
	}

	opts := dedupe.Options{
		IgnoreCase:       boolField(c, "ignore_case"),
		IgnoreWhitespace: boolField(c, "ignore_whitespace"),
	}
	keep := dedupe.KeepPolicy(c.DefaultPostForm("keep_policy", string(dedupe.MarkAll)))

	table, err := readUpload(c, "file")
	if err != nil {
		respondError(c, err)
		return
	}

	var audited *types.Table
	switch mode {
	case modeColumn:
		keyColumn := strings.TrimSpace(c.PostForm("key_column"))
		if keyColumn == "" {
			respondError(c, types.NewInvalidConfiguration(
				`key_column is required when mode is "column"`,
				map[string]any{"available_columns": table.ColumnNames()},
			))
			return
		}
		groupKeys, err := dedupe.RowKeys(table, []string{keyColumn}, opts)
		if err != nil {
			respondError(c, err)
			return
		}
		displayKeys, err := dedupe.DisplayKeys(table, keyColumn)
		if err != nil {
			respondError(c, err)
			return
		}
		audited, err = dedupe.Audit(table, groupKeys, displayKeys, dedupe.AuditOptions{
			Keep:               keep,
			TreatBlankAsUnique: true,
		})
		if err != nil {
			respondError(c, err)
			return
		}
	case modeRow:
		subset := subsetColumns(table, c.PostForm("ignore_columns"))
		groupKeys, err := dedupe.RowKeys(table, subset, opts)
		if err != nil {
			respondError(c, err)
			return
		}
		audited, err = dedupe.Audit(table, groupKeys, nil, dedupe.AuditOptions{
			Keep:               keep,
			TreatBlankAsUnique: false,
		})
		if err != nil {
			respondError(c, err)
			return
		}
	}

	modeCells := make([]types.Cell, audited.RowCount())
	for i := range modeCells {
		modeCells[i] = types.TextCell(mode)
	}
	audited.PrependColumn(types.Column{Name: "DuplicateMode", Kind: types.ColumnText, Cells: modeCells})

	sendWorkbook(c, []tabfile.Sheet{
		{Name: config.SheetAllRows, Table: audited},
	}, "deduplicated.xlsx")
}

// subsetColumns returns the table's column names minus the comma-separated
// ignore list. Names not present in the table are ignored silently.
func subsetColumns(t *types.Table, ignoreColumns string) []string {
	ignored := make(map[string]bool)
	for _, name := range strings.Split(ignoreColumns, ",") {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			ignored[trimmed] = true
		}
	}
	var subset []string
	for _, name := range t.ColumnNames() {
		if !ignored[name] {
			subset = append(subset, name)
		}
	}
	return subset
}

func boolField(c *gin.Context, field string) bool {
	v, err := strconv.ParseBool(c.DefaultPostForm(field, "false"))
	if err != nil {
		return false
	}
	return v
}
