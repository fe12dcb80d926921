// Package dedupe implements the duplicate-detection core: key normalization,
// composite row keys, and duplicate-group auditing with keep policies.
package dedupe

import (
	"strings"
	"unicode"

	"github.com/magrebiali/FixMySheet-Backend/types"
)

// Options control how raw values are normalized into comparison keys.
type Options struct {
	IgnoreCase       bool
	IgnoreWhitespace bool
}

// NormalizeColumn converts a column of cells into canonical comparison
// strings, same length and order as the input. Missing values become the
// empty string, everything is stringified, and leading/trailing whitespace is
// always stripped. The remaining steps depend on opts and their order
// matters: strip, then remove internal whitespace, then lower-case.
func NormalizeColumn(cells []types.Cell, opts Options) []string {
	out := make([]string, len(cells))
	for i, cell := range cells {
		out[i] = normalizeValue(cell.String(), opts)
	}
	return out
}

func normalizeValue(raw string, opts Options) string {
	s := strings.TrimSpace(raw)
	if opts.IgnoreWhitespace {
		s = strings.Map(func(r rune) rune {
			if unicode.IsSpace(r) {
				return -1
			}
			return r
		}, s)
	}
	if opts.IgnoreCase {
		s = strings.ToLower(s)
	}
	return s
}
