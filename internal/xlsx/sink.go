package xlsx

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/teemow/sheetcal/internal/grid"
	"github.com/teemow/sheetcal/internal/logging"
	"github.com/teemow/sheetcal/internal/sink"
)

type coord struct {
	row int64
	col int64
}

// cellFormat accumulates per-cell formatting across structural requests.
// xlsx styles are whole-cell records, so borders and fills from overlapping
// ranges have to be collected first and materialized as one style per cell.
type cellFormat struct {
	background               *sink.Color
	top, bottom, left, right bool
	numFmt                   int
}

func (f cellFormat) key() string {
	bg := ""
	if f.background != nil {
		bg = colorHex(*f.background)
	}
	return fmt.Sprintf("%s|%t%t%t%t|%d", bg, f.top, f.bottom, f.left, f.right, f.numFmt)
}

// Sink renders the request stream into a local .xlsx workbook. It implements
// sink.Sink; the workbook is written to disk by Save.
type Sink struct {
	file       *excelize.File
	sheet      string
	path       string
	frozenRows int64
	frozenCols int64
	formats    map[coord]*cellFormat
	logger     logging.Logger
}

// New creates a workbook sink writing to path, with a single sheet of the
// given name.
func New(path, sheet string, logger logging.Logger) (*Sink, error) {
	if logger == nil {
		logger = logging.DefaultLogger()
	}

	file := excelize.NewFile()
	if err := file.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet %q: %w", sheet, err)
	}

	return &Sink{
		file:    file,
		sheet:   sheet,
		path:    path,
		formats: make(map[coord]*cellFormat),
		logger:  logger,
	}, nil
}

// ApplyStructuralRequests records the formatting/layout batch. A fresh
// workbook has no prior content, so ClearFormatting and UnmergeCells reduce
// to resetting the accumulated state, and exact dimension sizing is implicit
// in the xlsx grid model.
func (s *Sink) ApplyStructuralRequests(ctx context.Context, requests []sink.StructuralRequest) error {
	for _, request := range requests {
		switch r := request.(type) {
		case sink.ClearFormatting:
			s.formats = make(map[coord]*cellFormat)

		case sink.SetSheetProperties:
			s.frozenRows = r.FrozenRows
			s.frozenCols = r.FrozenColumns

		case sink.SetDimensionLength:
			s.logger.Debug("dimension length is implicit in xlsx",
				"dimension", string(r.Dimension), "length", r.Length)

		case sink.UnmergeCells:
			// Nothing was merged before this batch in a fresh workbook.

		case sink.MergeCells:
			if err := s.merge(r.Range); err != nil {
				return err
			}

		case sink.UpdateBorders:
			if err := s.outline(r.Range); err != nil {
				return err
			}

		case sink.SetBackgroundColor:
			if err := s.fill(r.Range, r.Color); err != nil {
				return err
			}
		}
	}

	return nil
}

// ApplyValueUpdates writes the content batch into the workbook.
func (s *Sink) ApplyValueUpdates(ctx context.Context, updates []sink.ValueUpdate) error {
	for _, update := range updates {
		startRow := update.Range.Rows.StartValue()
		startCol := update.Range.Columns.StartValue()

		for i, row := range update.Values {
			for j, value := range row {
				cell, err := cellName(startRow+int64(i), startCol+int64(j))
				if err != nil {
					return err
				}
				if err := s.setValue(cell, startRow+int64(i), startCol+int64(j), value); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

func (s *Sink) setValue(cell string, row, col int64, value sink.CellValue) error {
	switch v := value.(type) {
	case sink.Text:
		if err := s.file.SetCellValue(s.sheet, cell, string(v)); err != nil {
			return fmt.Errorf("failed to set cell %s: %w", cell, err)
		}

	case sink.Date:
		if err := s.file.SetCellValue(s.sheet, cell, time.Time(v)); err != nil {
			return fmt.Errorf("failed to set cell %s: %w", cell, err)
		}
		// 14 is the builtin short date number format.
		s.format(coord{row, col}).numFmt = 14

	case sink.Formula:
		formula := strings.TrimPrefix(string(v), "=")
		if err := s.file.SetCellFormula(s.sheet, cell, formula); err != nil {
			return fmt.Errorf("failed to set formula in %s: %w", cell, err)
		}
	}

	return nil
}

// Save materializes the accumulated formatting and frozen panes and writes
// the workbook to disk.
func (s *Sink) Save() error {
	if err := s.applyFormats(); err != nil {
		return err
	}
	if err := s.applyPanes(); err != nil {
		return err
	}
	if err := s.file.SaveAs(s.path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", s.path, err)
	}
	s.logger.Info("workbook saved", "path", s.path, "sheet", s.sheet)
	return nil
}

// Close releases the workbook without saving.
func (s *Sink) Close() error {
	return s.file.Close()
}

func (s *Sink) format(c coord) *cellFormat {
	f, ok := s.formats[c]
	if !ok {
		f = &cellFormat{}
		s.formats[c] = f
	}
	return f
}

func (s *Sink) merge(r grid.GridRange) error {
	topLeft, bottomRight, err := corners(r)
	if err != nil {
		return err
	}
	if err := s.file.MergeCell(s.sheet, topLeft, bottomRight); err != nil {
		return fmt.Errorf("failed to merge %s:%s: %w", topLeft, bottomRight, err)
	}
	return nil
}

func (s *Sink) outline(r grid.GridRange) error {
	rows, err := r.Rows.Indices()
	if err != nil {
		return fmt.Errorf("borders require bounded rows: %w", err)
	}
	cols, err := r.Columns.Indices()
	if err != nil {
		return fmt.Errorf("borders require bounded columns: %w", err)
	}

	for _, row := range rows {
		for _, col := range cols {
			f := s.format(coord{row, col})
			f.top = f.top || row == rows[0]
			f.bottom = f.bottom || row == rows[len(rows)-1]
			f.left = f.left || col == cols[0]
			f.right = f.right || col == cols[len(cols)-1]
		}
	}
	return nil
}

func (s *Sink) fill(r grid.GridRange, color sink.Color) error {
	rows, err := r.Rows.Indices()
	if err != nil {
		return fmt.Errorf("fill requires bounded rows: %w", err)
	}
	cols, err := r.Columns.Indices()
	if err != nil {
		return fmt.Errorf("fill requires bounded columns: %w", err)
	}

	for _, row := range rows {
		for _, col := range cols {
			c := color
			s.format(coord{row, col}).background = &c
		}
	}
	return nil
}

func (s *Sink) applyFormats() error {
	// One style per distinct format, shared across cells.
	styles := make(map[string]int)

	for c, f := range s.formats {
		id, ok := styles[f.key()]
		if !ok {
			var err error
			id, err = s.file.NewStyle(toStyle(f))
			if err != nil {
				return fmt.Errorf("failed to create style: %w", err)
			}
			styles[f.key()] = id
		}

		cell, err := cellName(c.row, c.col)
		if err != nil {
			return err
		}
		if err := s.file.SetCellStyle(s.sheet, cell, cell, id); err != nil {
			return fmt.Errorf("failed to style cell %s: %w", cell, err)
		}
	}
	return nil
}

func (s *Sink) applyPanes() error {
	if s.frozenRows == 0 && s.frozenCols == 0 {
		return nil
	}

	topLeft, err := cellName(s.frozenRows, s.frozenCols)
	if err != nil {
		return err
	}
	err = s.file.SetPanes(s.sheet, &excelize.Panes{
		Freeze:      true,
		XSplit:      int(s.frozenCols),
		YSplit:      int(s.frozenRows),
		TopLeftCell: topLeft,
		ActivePane:  "bottomRight",
	})
	if err != nil {
		return fmt.Errorf("failed to freeze panes: %w", err)
	}
	return nil
}

func toStyle(f *cellFormat) *excelize.Style {
	style := &excelize.Style{}

	if f.background != nil {
		style.Fill = excelize.Fill{
			Type:    "pattern",
			Pattern: 1,
			Color:   []string{colorHex(*f.background)},
		}
	}

	var borders []excelize.Border
	for edge, set := range map[string]bool{
		"top": f.top, "bottom": f.bottom, "left": f.left, "right": f.right,
	} {
		if set {
			borders = append(borders, excelize.Border{Type: edge, Style: 1, Color: "000000"})
		}
	}
	style.Border = borders

	if f.numFmt != 0 {
		style.NumFmt = f.numFmt
	}

	return style
}

func corners(r grid.GridRange) (string, string, error) {
	endRow, err := r.Rows.EndValue()
	if err != nil {
		return "", "", fmt.Errorf("merge requires bounded rows: %w", err)
	}
	endCol, err := r.Columns.EndValue()
	if err != nil {
		return "", "", fmt.Errorf("merge requires bounded columns: %w", err)
	}

	topLeft, err := cellName(r.Rows.StartValue(), r.Columns.StartValue())
	if err != nil {
		return "", "", err
	}
	bottomRight, err := cellName(endRow, endCol)
	if err != nil {
		return "", "", err
	}
	return topLeft, bottomRight, nil
}

func cellName(row, col int64) (string, error) {
	name, err := excelize.CoordinatesToCellName(int(col)+1, int(row)+1)
	if err != nil {
		return "", fmt.Errorf("invalid cell coordinates (%d, %d): %w", row, col, err)
	}
	return name, nil
}

func colorHex(c sink.Color) string {
	channel := func(v float64) int {
		return int(v*255 + 0.5)
	}
	return fmt.Sprintf("%02X%02X%02X", channel(c.Red), channel(c.Green), channel(c.Blue))
}
