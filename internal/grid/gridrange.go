package grid

import (
	"fmt"
	"strings"
)

// GridRange is a two-dimensional region of cells addressed by a row range and
// a column range, optionally scoped to a specific sheet. A nil SheetID means
// the region applies to the default/active sheet of the target spreadsheet.
//
// Both dimensions use the inclusive Range semantics; translation to the
// exclusive-end wire rectangle happens at the sink boundary.
type GridRange struct {
	Rows    Range
	Columns Range
	SheetID *int64
}

// Cells returns the grid range covering the given row and column ranges on
// the default sheet.
func Cells(rows, columns Range) GridRange {
	return GridRange{Rows: rows, Columns: columns}
}

// WholeSheet returns the grid range covering every cell of the given sheet.
func WholeSheet(sheetID int64) GridRange {
	return GridRange{Rows: Unbounded(), Columns: Unbounded(), SheetID: ptr(sheetID)}
}

// OnSheet returns a copy of the grid range scoped to the given sheet.
func (g GridRange) OnSheet(sheetID int64) GridRange {
	g.SheetID = ptr(sheetID)
	return g
}

// String renders the region in 1-based R1C1 cell-reference notation, e.g.
// rows [0..4] x columns [2..3] becomes "R1C3:R5C4". Unset bounds are omitted
// from their side. The notation is what INDIRECT(ref, FALSE) consumes in
// generated formulas, so it intentionally carries no sheet qualifier.
func (g GridRange) String() string {
	var left strings.Builder
	if v, ok := g.Rows.Start(); ok {
		fmt.Fprintf(&left, "R%d", v+1)
	}
	if v, ok := g.Columns.Start(); ok {
		fmt.Fprintf(&left, "C%d", v+1)
	}

	var right strings.Builder
	if v, ok := g.Rows.End(); ok {
		fmt.Fprintf(&right, "R%d", v+1)
	}
	if v, ok := g.Columns.End(); ok {
		fmt.Fprintf(&right, "C%d", v+1)
	}

	if right.Len() == 0 {
		return left.String()
	}
	return left.String() + ":" + right.String()
}
