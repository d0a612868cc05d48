package sheets

import (
	"time"

	sheets_v4 "google.golang.org/api/sheets/v4"

	"github.com/teemow/sheetcal/internal/grid"
	"github.com/teemow/sheetcal/internal/sink"
)

// sheetsEpoch is day zero of the spreadsheet date serial number system.
var sheetsEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// toGridRange translates the inclusive internal range model into the wire
// rectangle, whose end indexes are exclusive. Unbounded sides stay unset.
// Zero-valued start indexes and sheet IDs are force-sent so the API does not
// drop them during JSON encoding.
func toGridRange(g grid.GridRange) *sheets_v4.GridRange {
	out := &sheets_v4.GridRange{}

	if g.SheetID != nil {
		out.SheetId = *g.SheetID
		out.ForceSendFields = append(out.ForceSendFields, "SheetId")
	}
	if v, ok := g.Rows.Start(); ok {
		out.StartRowIndex = v
		out.ForceSendFields = append(out.ForceSendFields, "StartRowIndex")
	}
	if v, ok := g.Rows.End(); ok {
		out.EndRowIndex = v + 1
	}
	if v, ok := g.Columns.Start(); ok {
		out.StartColumnIndex = v
		out.ForceSendFields = append(out.ForceSendFields, "StartColumnIndex")
	}
	if v, ok := g.Columns.End(); ok {
		out.EndColumnIndex = v + 1
	}

	return out
}

// toRequests translates the structural batch into Sheets API requests.
func toRequests(requests []sink.StructuralRequest) []*sheets_v4.Request {
	out := make([]*sheets_v4.Request, 0, len(requests))

	for _, request := range requests {
		switch r := request.(type) {
		case sink.ClearFormatting:
			out = append(out, &sheets_v4.Request{
				RepeatCell: &sheets_v4.RepeatCellRequest{
					Range:  toGridRange(r.Range),
					Cell:   &sheets_v4.CellData{},
					Fields: "userEnteredFormat",
				},
			})

		case sink.SetSheetProperties:
			out = append(out, &sheets_v4.Request{
				UpdateSheetProperties: &sheets_v4.UpdateSheetPropertiesRequest{
					Properties: &sheets_v4.SheetProperties{
						SheetId: r.SheetID,
						GridProperties: &sheets_v4.GridProperties{
							FrozenRowCount:    r.FrozenRows,
							FrozenColumnCount: r.FrozenColumns,
						},
						ForceSendFields: []string{"SheetId"},
					},
					Fields: "gridProperties.frozenRowCount,gridProperties.frozenColumnCount",
				},
			})

		case sink.SetDimensionLength:
			// The API has no "set dimension count" request. Appending Length
			// rows/columns first guarantees the sheet is longer than Length,
			// then deleting the unbounded tail from Length leaves exactly
			// Length, whatever size the sheet had before.
			out = append(out,
				&sheets_v4.Request{
					AppendDimension: &sheets_v4.AppendDimensionRequest{
						SheetId:   r.SheetID,
						Dimension: string(r.Dimension),
						Length:    r.Length,
					},
				},
				&sheets_v4.Request{
					DeleteDimension: &sheets_v4.DeleteDimensionRequest{
						Range: &sheets_v4.DimensionRange{
							SheetId:         r.SheetID,
							Dimension:       string(r.Dimension),
							StartIndex:      r.Length,
							ForceSendFields: []string{"SheetId", "StartIndex"},
						},
					},
				},
			)

		case sink.UnmergeCells:
			out = append(out, &sheets_v4.Request{
				UnmergeCells: &sheets_v4.UnmergeCellsRequest{
					Range: toGridRange(r.Range),
				},
			})

		case sink.MergeCells:
			out = append(out, &sheets_v4.Request{
				MergeCells: &sheets_v4.MergeCellsRequest{
					Range:     toGridRange(r.Range),
					MergeType: "MERGE_ALL",
				},
			})

		case sink.UpdateBorders:
			border := &sheets_v4.Border{Style: string(r.Style)}
			out = append(out, &sheets_v4.Request{
				UpdateBorders: &sheets_v4.UpdateBordersRequest{
					Range:  toGridRange(r.Range),
					Top:    border,
					Bottom: border,
					Left:   border,
					Right:  border,
				},
			})

		case sink.SetBackgroundColor:
			out = append(out, &sheets_v4.Request{
				RepeatCell: &sheets_v4.RepeatCellRequest{
					Range: toGridRange(r.Range),
					Cell: &sheets_v4.CellData{
						UserEnteredFormat: &sheets_v4.CellFormat{
							BackgroundColor: &sheets_v4.Color{
								Red:   r.Color.Red,
								Green: r.Color.Green,
								Blue:  r.Color.Blue,
							},
						},
					},
					Fields: "userEnteredFormat.backgroundColor",
				},
			})
		}
	}

	return out
}

// toUpdateCellsRequests translates the value batch into one UpdateCells
// request per (range, values) pair.
func toUpdateCellsRequests(updates []sink.ValueUpdate) []*sheets_v4.Request {
	out := make([]*sheets_v4.Request, 0, len(updates))

	for _, update := range updates {
		rows := make([]*sheets_v4.RowData, 0, len(update.Values))
		for _, row := range update.Values {
			cells := make([]*sheets_v4.CellData, 0, len(row))
			for _, value := range row {
				cells = append(cells, toCellData(value))
			}
			rows = append(rows, &sheets_v4.RowData{Values: cells})
		}

		out = append(out, &sheets_v4.Request{
			UpdateCells: &sheets_v4.UpdateCellsRequest{
				Range:  toGridRange(update.Range),
				Rows:   rows,
				Fields: "userEnteredValue,userEnteredFormat.numberFormat",
			},
		})
	}

	return out
}

func toCellData(value sink.CellValue) *sheets_v4.CellData {
	switch v := value.(type) {
	case sink.Text:
		s := string(v)
		return &sheets_v4.CellData{
			UserEnteredValue: &sheets_v4.ExtendedValue{StringValue: &s},
		}

	case sink.Formula:
		s := string(v)
		return &sheets_v4.CellData{
			UserEnteredValue: &sheets_v4.ExtendedValue{FormulaValue: &s},
		}

	case sink.Date:
		serial := dateSerial(time.Time(v))
		return &sheets_v4.CellData{
			UserEnteredValue: &sheets_v4.ExtendedValue{NumberValue: &serial},
			UserEnteredFormat: &sheets_v4.CellFormat{
				NumberFormat: &sheets_v4.NumberFormat{
					Type:    "DATE",
					Pattern: "yyyy-mm-dd",
				},
			},
		}
	}

	// A nil cell value clears the cell.
	return &sheets_v4.CellData{}
}

// dateSerial converts a date to the serial day number counted from the
// 1899-12-30 epoch.
func dateSerial(t time.Time) float64 {
	return t.Sub(sheetsEpoch).Hours() / 24
}
