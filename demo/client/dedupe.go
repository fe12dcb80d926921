package client

import (
	"context"
	"strconv"
)

// DedupeRequest describes one single-file deduplication run.
type DedupeRequest struct {
	File             string
	Mode             string // "column" or "row"
	KeyColumn        string // column mode
	IgnoreColumns    string // row mode, comma-separated
	KeepPolicy       string // mark_all, keep_first, keep_last
	IgnoreCase       bool
	IgnoreWhitespace bool
	OutPath          string
}

// Dedupe uploads a file to the /dedupe endpoint and saves the annotated
// workbook to req.OutPath.
func (c *Client) Dedupe(ctx context.Context, req DedupeRequest) error {
	return c.postMultipart(ctx, "/dedupe",
		map[string]string{
			"file": req.File,
		},
		map[string]string{
			"mode":              req.Mode,
			"key_column":        req.KeyColumn,
			"ignore_columns":    req.IgnoreColumns,
			"keep_policy":       req.KeepPolicy,
			"ignore_case":       strconv.FormatBool(req.IgnoreCase),
			"ignore_whitespace": strconv.FormatBool(req.IgnoreWhitespace),
		},
		req.OutPath,
	)
}
