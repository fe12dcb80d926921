package dedupe

import (
	"fmt"

	"github.com/magrebiali/FixMySheet-Backend/types"
)

// KeepPolicy selects which member of a duplicate group, if any, is marked as
// the one to retain.
type KeepPolicy string

const (
	MarkAll   KeepPolicy = "mark_all"
	KeepFirst KeepPolicy = "keep_first"
	KeepLast  KeepPolicy = "keep_last"
)

// Flag values written to the DuplicateFlag column.
const (
	FlagUnique    = "Unique"
	FlagDuplicate = "Duplicate"
	FlagKept      = "Kept"
)

// Derived column names appended by Audit, in output order.
const (
	ColDuplicateKey          = "DuplicateKey"
	ColDuplicateGroupID      = "DuplicateGroupID"
	ColDuplicateCount        = "DuplicateCount"
	ColDuplicateFirstSeenRow = "DuplicateFirstSeenRow"
	ColDuplicateFlag         = "DuplicateFlag"
)

// AuditOptions configure duplicate-group auditing.
type AuditOptions struct {
	Keep KeepPolicy
	// TreatBlankAsUnique forces rows with a blank group key into singleton
	// groups so blanks never cluster as duplicates of one another. Column
	// mode sets this; row mode does not, because an all-blank row can be a
	// legitimate duplicate of another all-blank row.
	TreatBlankAsUnique bool
}

// Audit groups rows by their comparison key and returns a copy of the table
// with five derived columns appended: DuplicateKey, DuplicateGroupID,
// DuplicateCount, DuplicateFirstSeenRow, DuplicateFlag. Input row order is
// preserved.
//
// displayKeys carries the raw pre-normalization values shown in
// DuplicateKey; pass nil to show the group keys themselves.
func Audit(t *types.Table, groupKeys, displayKeys []string, opts AuditOptions) (*types.Table, error) {
	switch opts.Keep {
	case MarkAll, KeepFirst, KeepLast:
	default:
		return nil, types.NewInvalidConfiguration(
			fmt.Sprintf("invalid keep_policy %q", string(opts.Keep)),
			map[string]any{"valid_policies": []string{string(MarkAll), string(KeepFirst), string(KeepLast)}},
		)
	}
	if displayKeys == nil {
		displayKeys = groupKeys
	}

	n := len(groupKeys)

	// Partition rows up front: blank-keyed rows stay out of the grouping map
	// entirely when TreatBlankAsUnique is set, so no sentinel key can ever
	// collide with real data.
	positions := make(map[string][]int, n)
	for i, key := range groupKeys {
		if opts.TreatBlankAsUnique && key == "" {
			continue
		}
		positions[key] = append(positions[key], i)
	}

	// Group ids are assigned in order of first appearance among duplicate
	// groups only; singletons carry no id.
	groupIDs := make(map[string]string, len(positions))
	nextID := 1
	for _, key := range groupKeys {
		if opts.TreatBlankAsUnique && key == "" {
			continue
		}
		if len(positions[key]) <= 1 {
			continue
		}
		if _, seen := groupIDs[key]; seen {
			continue
		}
		groupIDs[key] = fmt.Sprintf("G%06d", nextID)
		nextID++
	}

	keyCells := make([]types.Cell, n)
	idCells := make([]types.Cell, n)
	countCells := make([]types.Cell, n)
	firstSeenCells := make([]types.Cell, n)
	flagCells := make([]types.Cell, n)

	for i, key := range groupKeys {
		members := positions[key]
		blankSingleton := opts.TreatBlankAsUnique && key == ""

		size := 1
		firstSeen := i + 1
		groupID := ""
		flag := FlagUnique

		if !blankSingleton {
			size = len(members)
			firstSeen = members[0] + 1
			if size > 1 {
				groupID = groupIDs[key]
				switch opts.Keep {
				case MarkAll:
					flag = FlagDuplicate
				case KeepFirst:
					if members[0] == i {
						flag = FlagKept
					} else {
						flag = FlagDuplicate
					}
				case KeepLast:
					if members[len(members)-1] == i {
						flag = FlagKept
					} else {
						flag = FlagDuplicate
					}
				}
			}
		}

		// Blank keys show as empty regardless of how they were grouped
		// internally.
		display := displayKeys[i]
		if key == "" {
			display = ""
		}

		keyCells[i] = types.TextCell(display)
		if groupID != "" {
			idCells[i] = types.TextCell(groupID)
		} else {
			idCells[i] = types.TextCell("")
		}
		countCells[i] = types.NumberCell(float64(size))
		firstSeenCells[i] = types.NumberCell(float64(firstSeen))
		flagCells[i] = types.TextCell(flag)
	}

	out := t.Clone()
	out.AppendColumn(types.Column{Name: ColDuplicateKey, Kind: types.ColumnText, Cells: keyCells})
	out.AppendColumn(types.Column{Name: ColDuplicateGroupID, Kind: types.ColumnText, Cells: idCells})
	out.AppendColumn(types.Column{Name: ColDuplicateCount, Kind: types.ColumnNumber, Cells: countCells})
	out.AppendColumn(types.Column{Name: ColDuplicateFirstSeenRow, Kind: types.ColumnNumber, Cells: firstSeenCells})
	out.AppendColumn(types.Column{Name: ColDuplicateFlag, Kind: types.ColumnText, Cells: flagCells})
	return out, nil
}
