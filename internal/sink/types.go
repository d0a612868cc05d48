package sink

import (
	"context"
	"time"

	"github.com/teemow/sheetcal/internal/grid"
)

// Dimension selects rows or columns in dimension-level requests.
type Dimension string

const (
	Rows    Dimension = "ROWS"
	Columns Dimension = "COLUMNS"
)

// BorderStyle is the line style used by UpdateBorders.
type BorderStyle string

// BorderSolid is the only style the renderer emits.
const BorderSolid BorderStyle = "SOLID"

// Color is an RGB color with channels in [0, 1].
type Color struct {
	Red   float64
	Green float64
	Blue  float64
}

// Grey returns the neutral grey of the given intensity.
func Grey(intensity float64) Color {
	return Color{Red: intensity, Green: intensity, Blue: intensity}
}

// StructuralRequest is one element of the formatting/layout batch. The
// variants below are the closed set of requests the renderer emits; each sink
// translates them into its own wire or file format.
type StructuralRequest interface {
	structuralRequest()
}

// ClearFormatting resets all cell formatting in the range.
type ClearFormatting struct {
	Range grid.GridRange
}

// SetSheetProperties sets the frozen header pane sizes of a sheet.
type SetSheetProperties struct {
	SheetID       int64
	FrozenRows    int64
	FrozenColumns int64
}

// SetDimensionLength forces the sheet to exactly Length rows or columns.
type SetDimensionLength struct {
	SheetID   int64
	Dimension Dimension
	Length    int64
}

// UnmergeCells splits every merged region intersecting the range.
type UnmergeCells struct {
	Range grid.GridRange
}

// MergeCells merges the range into a single cell.
type MergeCells struct {
	Range grid.GridRange
}

// UpdateBorders draws the given style on all four outer edges of the range.
type UpdateBorders struct {
	Range grid.GridRange
	Style BorderStyle
}

// SetBackgroundColor fills every cell of the range with the color.
type SetBackgroundColor struct {
	Range grid.GridRange
	Color Color
}

func (ClearFormatting) structuralRequest()    {}
func (SetSheetProperties) structuralRequest() {}
func (SetDimensionLength) structuralRequest() {}
func (UnmergeCells) structuralRequest()       {}
func (MergeCells) structuralRequest()         {}
func (UpdateBorders) structuralRequest()      {}
func (SetBackgroundColor) structuralRequest() {}

// CellValue is the union of contents a value update can write into a cell.
type CellValue interface {
	cellValue()
}

// Text is a literal string cell value.
type Text string

// Formula is a cell formula including its leading "=".
type Formula string

// Date is a literal date cell value.
type Date time.Time

func (Text) cellValue()    {}
func (Formula) cellValue() {}
func (Date) cellValue()    {}

// ValueUpdate writes a row-major block of cell values into a range. The
// block's extents must match the range's computed size; sinks do not
// re-validate this, a mismatch surfaces as a sink-side error.
type ValueUpdate struct {
	Range  grid.GridRange
	Values [][]CellValue
}

// Sink applies rendered batches to a spreadsheet. Each call is a single
// atomic batch: it either fully succeeds or returns an error, and no retry
// or partial rollback is attempted by callers.
type Sink interface {
	ApplyStructuralRequests(ctx context.Context, requests []StructuralRequest) error
	ApplyValueUpdates(ctx context.Context, updates []ValueUpdate) error
}
