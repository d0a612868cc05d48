package sheets

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teemow/sheetcal/internal/grid"
	"github.com/teemow/sheetcal/internal/sink"
)

func TestToGridRange_ExclusiveEnds(t *testing.T) {
	g := grid.Cells(grid.FromBounds(0, 4), grid.FromBounds(2, 3)).OnSheet(7)

	r := toGridRange(g)
	assert.Equal(t, int64(7), r.SheetId)
	assert.Equal(t, int64(0), r.StartRowIndex)
	assert.Equal(t, int64(5), r.EndRowIndex)
	assert.Equal(t, int64(2), r.StartColumnIndex)
	assert.Equal(t, int64(4), r.EndColumnIndex)

	// Zero-valued fields must survive JSON encoding.
	assert.Contains(t, r.ForceSendFields, "StartRowIndex")
	assert.Contains(t, r.ForceSendFields, "SheetId")
}

func TestToGridRange_UnboundedStaysUnset(t *testing.T) {
	r := toGridRange(grid.WholeSheet(0))

	assert.Equal(t, int64(0), r.EndRowIndex)
	assert.Equal(t, int64(0), r.EndColumnIndex)
	assert.NotContains(t, r.ForceSendFields, "EndRowIndex")
	assert.NotContains(t, r.ForceSendFields, "StartRowIndex")
	assert.Contains(t, r.ForceSendFields, "SheetId")
}

func TestToRequests_SetDimensionLength(t *testing.T) {
	requests := toRequests([]sink.StructuralRequest{
		sink.SetDimensionLength{SheetID: 3, Dimension: sink.Rows, Length: 64},
	})

	// Exact sizing is append-then-delete-excess.
	require.Len(t, requests, 2)

	appendReq := requests[0].AppendDimension
	require.NotNil(t, appendReq)
	assert.Equal(t, int64(3), appendReq.SheetId)
	assert.Equal(t, "ROWS", appendReq.Dimension)
	assert.Equal(t, int64(64), appendReq.Length)

	deleteReq := requests[1].DeleteDimension
	require.NotNil(t, deleteReq)
	assert.Equal(t, int64(64), deleteReq.Range.StartIndex)
	assert.Equal(t, int64(0), deleteReq.Range.EndIndex) // unbounded tail
	assert.Equal(t, "ROWS", deleteReq.Range.Dimension)
}

func TestToRequests_Formatting(t *testing.T) {
	region := grid.Cells(grid.FromBounds(1, 5), grid.Single(10)).OnSheet(0)

	requests := toRequests([]sink.StructuralRequest{
		sink.ClearFormatting{Range: grid.WholeSheet(0)},
		sink.SetSheetProperties{SheetID: 0, FrozenRows: 1, FrozenColumns: 2},
		sink.UnmergeCells{Range: grid.WholeSheet(0)},
		sink.MergeCells{Range: region},
		sink.UpdateBorders{Range: region, Style: sink.BorderSolid},
		sink.SetBackgroundColor{Range: region, Color: sink.Grey(0.75)},
	})
	require.Len(t, requests, 6)

	clear := requests[0].RepeatCell
	require.NotNil(t, clear)
	assert.Equal(t, "userEnteredFormat", clear.Fields)
	assert.Nil(t, clear.Cell.UserEnteredFormat)

	props := requests[1].UpdateSheetProperties
	require.NotNil(t, props)
	assert.Equal(t, int64(1), props.Properties.GridProperties.FrozenRowCount)
	assert.Equal(t, int64(2), props.Properties.GridProperties.FrozenColumnCount)

	assert.NotNil(t, requests[2].UnmergeCells)

	merge := requests[3].MergeCells
	require.NotNil(t, merge)
	assert.Equal(t, "MERGE_ALL", merge.MergeType)
	assert.Equal(t, int64(6), merge.Range.EndRowIndex)
	assert.Equal(t, int64(11), merge.Range.EndColumnIndex)

	borders := requests[4].UpdateBorders
	require.NotNil(t, borders)
	assert.Equal(t, "SOLID", borders.Top.Style)
	assert.Equal(t, "SOLID", borders.Bottom.Style)
	assert.Equal(t, "SOLID", borders.Left.Style)
	assert.Equal(t, "SOLID", borders.Right.Style)
	assert.Nil(t, borders.InnerHorizontal)

	fill := requests[5].RepeatCell
	require.NotNil(t, fill)
	assert.Equal(t, "userEnteredFormat.backgroundColor", fill.Fields)
	assert.InDelta(t, 0.75, fill.Cell.UserEnteredFormat.BackgroundColor.Red, 1e-9)
}

func TestToUpdateCellsRequests(t *testing.T) {
	updates := []sink.ValueUpdate{{
		Range: grid.Cells(grid.FromBounds(1, 2), grid.FromBounds(0, 1)).OnSheet(7),
		Values: [][]sink.CellValue{
			{sink.Date(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)), sink.Text("hello")},
			{sink.Formula("=SUM(A1:A2)"), nil},
		},
	}}

	requests := toUpdateCellsRequests(updates)
	require.Len(t, requests, 1)

	uc := requests[0].UpdateCells
	require.NotNil(t, uc)
	assert.Equal(t, "userEnteredValue,userEnteredFormat.numberFormat", uc.Fields)
	require.Len(t, uc.Rows, 2)

	date := uc.Rows[0].Values[0]
	require.NotNil(t, date.UserEnteredValue.NumberValue)
	assert.InDelta(t, 45292, *date.UserEnteredValue.NumberValue, 1e-9)
	assert.Equal(t, "DATE", date.UserEnteredFormat.NumberFormat.Type)

	text := uc.Rows[0].Values[1]
	require.NotNil(t, text.UserEnteredValue.StringValue)
	assert.Equal(t, "hello", *text.UserEnteredValue.StringValue)

	formula := uc.Rows[1].Values[0]
	require.NotNil(t, formula.UserEnteredValue.FormulaValue)
	assert.Equal(t, "=SUM(A1:A2)", *formula.UserEnteredValue.FormulaValue)

	empty := uc.Rows[1].Values[1]
	assert.Nil(t, empty.UserEnteredValue)
}

func TestDateSerial(t *testing.T) {
	assert.InDelta(t, 0, dateSerial(time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)), 1e-9)
	assert.InDelta(t, 1, dateSerial(time.Date(1899, time.December, 31, 0, 0, 0, 0, time.UTC)), 1e-9)
	// The 1899-12-30 epoch keeps modern serials aligned with spreadsheet
	// applications despite their historical 1900 leap-year quirk.
	assert.InDelta(t, 61, dateSerial(time.Date(1900, time.March, 1, 0, 0, 0, 0, time.UTC)), 1e-9)
	assert.InDelta(t, 45292, dateSerial(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)), 1e-9)
}
