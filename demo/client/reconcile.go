package client

import "context"

// ReconcileRequest describes one two-file reconciliation run.
type ReconcileRequest struct {
	FileA       string
	FileB       string
	MatchColumn string
	OutPath     string
}

// Reconcile uploads two files to the /process endpoint and saves the
// four-sheet reconciliation workbook to req.OutPath.
func (c *Client) Reconcile(ctx context.Context, req ReconcileRequest) error {
	return c.postMultipart(ctx, "/process",
		map[string]string{
			"file_a": req.FileA,
			"file_b": req.FileB,
		},
		map[string]string{
			"match_column": req.MatchColumn,
		},
		req.OutPath,
	)
}
