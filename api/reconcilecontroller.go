package api

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/magrebiali/FixMySheet-Backend/config"
	"github.com/magrebiali/FixMySheet-Backend/reconcile"
	"github.com/magrebiali/FixMySheet-Backend/tabfile"
	"github.com/magrebiali/FixMySheet-Backend/types"
)

// RegisterReconcileRoutes registers the two-file reconciliation endpoint.
func RegisterReconcileRoutes(r *gin.Engine) {
	r.POST("/process", handleProcess)
}

// handleProcess reconciles two uploaded tables on a shared key column and
// returns a four-sheet workbook: matches, the two one-side-only tables, and
// a count summary.
func handleProcess(c *gin.Context) {
	matchColumn := strings.TrimSpace(c.PostForm("match_column"))
	if matchColumn == "" {
		respondError(c, types.NewInvalidConfiguration("match_column is required", nil))
		return
	}

	tableA, err := readUpload(c, "file_a")
	if err != nil {
		respondError(c, err)
		return
	}
	tableB, err := readUpload(c, "file_b")
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := reconcile.Reconcile(tableA, tableB, matchColumn)
	if err != nil {
		respondError(c, err)
		return
	}

	sendWorkbook(c, []tabfile.Sheet{
		{Name: config.SheetMatches, Table: result.Matches},
		{Name: config.SheetOnlyInA, Table: result.OnlyInA},
		{Name: config.SheetOnlyInB, Table: result.OnlyInB},
		{Name: config.SheetSummary, Table: result.Summary},
	}, "reconciliation.xlsx")
}
