package render

import (
	"context"
	"fmt"
	"time"

	"github.com/teemow/sheetcal/internal/calendar"
	"github.com/teemow/sheetcal/internal/grid"
	"github.com/teemow/sheetcal/internal/logging"
	"github.com/teemow/sheetcal/internal/sink"
)

const (
	headerRowCount  = 1
	nameColumnCount = 2 // start date, end date

	inactiveDayGrey = 0.75
)

// layout holds every row and column range of the rendered table. All ranges
// are chained from origin 0, so changing any of the count constants moves
// everything after it without further code changes.
type layout struct {
	headerRow grid.Range
	weekRows  grid.Range
	totalsRow grid.Range
	allRows   grid.Range

	nameColumns      grid.Range
	dayColumns       grid.Range
	weekTotalColumn  grid.Range
	monthTotalColumn grid.Range
	dataColumns      grid.Range // day + week-total + month-total columns
	allColumns       grid.Range
}

func computeLayout(weekCount int64) (layout, error) {
	var l layout
	var err error

	l.nameColumns = grid.FromStartAndCount(0, nameColumnCount)
	if l.dayColumns, err = l.nameColumns.NextWithCount(calendar.DaysPerWeek); err != nil {
		return layout{}, fmt.Errorf("deriving day columns: %w", err)
	}
	if l.weekTotalColumn, err = l.dayColumns.Next(); err != nil {
		return layout{}, fmt.Errorf("deriving week total column: %w", err)
	}
	if l.monthTotalColumn, err = l.weekTotalColumn.Next(); err != nil {
		return layout{}, fmt.Errorf("deriving month total column: %w", err)
	}
	if l.dataColumns, err = grid.UnionAll(l.dayColumns, l.weekTotalColumn, l.monthTotalColumn); err != nil {
		return layout{}, fmt.Errorf("joining data columns: %w", err)
	}
	if l.allColumns, err = grid.Union(l.nameColumns, l.dataColumns); err != nil {
		return layout{}, fmt.Errorf("joining all columns: %w", err)
	}

	l.headerRow = grid.FromStartAndCount(0, headerRowCount)
	if l.weekRows, err = l.headerRow.NextWithCount(weekCount); err != nil {
		return layout{}, fmt.Errorf("deriving week rows: %w", err)
	}
	if l.totalsRow, err = l.weekRows.Next(); err != nil {
		return layout{}, fmt.Errorf("deriving totals row: %w", err)
	}
	if l.allRows, err = grid.UnionAll(l.headerRow, l.weekRows, l.totalsRow); err != nil {
		return layout{}, fmt.Errorf("joining all rows: %w", err)
	}

	return l, nil
}

// Renderer turns a computed Calendar into the structural and value batches
// for one sheet.
type Renderer struct {
	cal     calendar.Calendar
	sheetID int64
	layout  layout
	logger  logging.Logger
}

// New creates a renderer for the calendar targeting the given sheet.
func New(cal calendar.Calendar, sheetID int64, logger logging.Logger) (*Renderer, error) {
	if logger == nil {
		logger = logging.DefaultLogger()
	}
	l, err := computeLayout(int64(len(cal.Weeks())))
	if err != nil {
		return nil, fmt.Errorf("computing sheet layout: %w", err)
	}
	return &Renderer{cal: cal, sheetID: sheetID, layout: l, logger: logger}, nil
}

// cells scopes a row/column pair to the renderer's target sheet.
func (r *Renderer) cells(rows, columns grid.Range) grid.GridRange {
	return grid.Cells(rows, columns).OnSheet(r.sheetID)
}

// monthRows returns the absolute week-row range of one month span.
func (r *Renderer) monthRows(span calendar.WeekSpan) grid.Range {
	return r.layout.weekRows.SubrangeWithCount(int64(span.Start), int64(span.Count))
}

// StructuralRequests builds the formatting/layout batch: reset, exact grid
// sizing, frozen header panes, month-total merges, borders and the greyed-out
// fill for days owned by neighboring months.
func (r *Renderer) StructuralRequests() ([]sink.StructuralRequest, error) {
	l := r.layout

	rowCount, err := l.allRows.Count()
	if err != nil {
		return nil, fmt.Errorf("sizing rows: %w", err)
	}
	columnCount, err := l.allColumns.Count()
	if err != nil {
		return nil, fmt.Errorf("sizing columns: %w", err)
	}

	requests := []sink.StructuralRequest{
		sink.ClearFormatting{Range: grid.WholeSheet(r.sheetID)},
		sink.SetDimensionLength{SheetID: r.sheetID, Dimension: sink.Rows, Length: rowCount},
		sink.SetDimensionLength{SheetID: r.sheetID, Dimension: sink.Columns, Length: columnCount},
		sink.SetSheetProperties{SheetID: r.sheetID, FrozenRows: headerRowCount, FrozenColumns: nameColumnCount},
		sink.UnmergeCells{Range: grid.WholeSheet(r.sheetID)},
	}

	for _, span := range r.cal.WeekNumberRanges() {
		requests = append(requests, sink.MergeCells{
			Range: r.cells(r.monthRows(span), l.monthTotalColumn),
		})
	}

	requests = append(requests,
		sink.UpdateBorders{Range: r.cells(l.allRows, l.allColumns), Style: sink.BorderSolid},
		sink.UpdateBorders{Range: r.cells(l.allRows, l.dayColumns), Style: sink.BorderSolid},
		sink.UpdateBorders{Range: r.cells(l.allRows, l.weekTotalColumn), Style: sink.BorderSolid},
	)
	for _, span := range r.cal.WeekNumberRanges() {
		requests = append(requests, sink.UpdateBorders{
			Range: r.cells(r.monthRows(span), l.allColumns),
			Style: sink.BorderSolid,
		})
	}

	for i, week := range r.cal.Weeks() {
		row := l.weekRows.SubrangeSingle(int64(i))
		for d, active := range week.DaysActive {
			if active {
				continue
			}
			requests = append(requests, sink.SetBackgroundColor{
				Range: r.cells(row, l.dayColumns.SubrangeSingle(int64(d))),
				Color: sink.Grey(inactiveDayGrey),
			})
		}
	}

	return requests, nil
}

// ValueUpdates builds the content batch: header labels, literal week dates,
// per-week and per-month totals and the bottom totals row. All aggregate
// cells are formulas over cell ranges rather than precomputed values, so the
// sheet keeps recalculating if day cells are edited.
func (r *Renderer) ValueUpdates() ([]sink.ValueUpdate, error) {
	l := r.layout
	weeks := r.cal.Weeks()

	header := []sink.CellValue{sink.Text("Start Date"), sink.Text("End Date")}
	firstDay := r.cal.FirstDayOfWeek()
	for d := 0; d < calendar.DaysPerWeek; d++ {
		name := (firstDay + time.Weekday(d)) % calendar.DaysPerWeek
		header = append(header, sink.Text(name.String()))
	}
	header = append(header, sink.Text("Week Total"), sink.Text("Month Total"))

	updates := []sink.ValueUpdate{{
		Range:  r.cells(l.headerRow, l.allColumns),
		Values: [][]sink.CellValue{header},
	}}

	dates := make([][]sink.CellValue, len(weeks))
	weekTotals := make([][]sink.CellValue, len(weeks))
	for i, week := range weeks {
		dates[i] = []sink.CellValue{sink.Date(week.StartDate), sink.Date(week.EndDate)}

		row := l.weekRows.SubrangeSingle(int64(i))
		weekTotals[i] = []sink.CellValue{sink.SumOf(grid.Cells(row, l.dayColumns))}
	}
	updates = append(updates,
		sink.ValueUpdate{Range: r.cells(l.weekRows, l.nameColumns), Values: dates},
		sink.ValueUpdate{Range: r.cells(l.weekRows, l.weekTotalColumn), Values: weekTotals},
	)

	// One SUM per month over its week totals, replicated down the merged
	// month-total region so every row of the merge carries the same value.
	for _, span := range r.cal.WeekNumberRanges() {
		rows := r.monthRows(span)
		total := sink.SumOf(grid.Cells(rows, l.weekTotalColumn))
		values := make([][]sink.CellValue, span.Count)
		for i := range values {
			values[i] = []sink.CellValue{total}
		}
		updates = append(updates, sink.ValueUpdate{
			Range:  r.cells(rows, l.monthTotalColumn),
			Values: values,
		})
	}

	columns, err := l.dataColumns.Indices()
	if err != nil {
		return nil, fmt.Errorf("listing data columns: %w", err)
	}
	totals := make([]sink.CellValue, 0, len(columns))
	for _, c := range columns {
		totals = append(totals, sink.SumOf(grid.Cells(l.weekRows, grid.Single(c))))
	}
	updates = append(updates, sink.ValueUpdate{
		Range:  r.cells(l.totalsRow, l.dataColumns),
		Values: [][]sink.CellValue{totals},
	})

	return updates, nil
}

// Render applies the two batches to the sink, structure first so that value
// formatting (e.g. date number formats) lands on a cleanly formatted grid.
func (r *Renderer) Render(ctx context.Context, s sink.Sink) error {
	structural, err := r.StructuralRequests()
	if err != nil {
		return err
	}
	values, err := r.ValueUpdates()
	if err != nil {
		return err
	}

	r.logger.Debug("applying structural batch", "requests", len(structural))
	if err := s.ApplyStructuralRequests(ctx, structural); err != nil {
		return fmt.Errorf("applying structural requests: %w", err)
	}

	r.logger.Debug("applying value batch", "updates", len(values))
	if err := s.ApplyValueUpdates(ctx, values); err != nil {
		return fmt.Errorf("applying value updates: %w", err)
	}

	r.logger.Info("rendered calendar",
		"weeks", len(r.cal.Weeks()),
		"structural_requests", len(structural),
		"value_updates", len(values))
	return nil
}
