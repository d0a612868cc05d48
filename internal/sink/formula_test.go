package sink

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/teemow/sheetcal/internal/grid"
)

func TestSumOf(t *testing.T) {
	r := grid.Cells(grid.Single(1), grid.FromBounds(2, 8))
	assert.Equal(t, Formula(`=SUM(INDIRECT("R2C3:R2C9", FALSE))`), SumOf(r))
}

func TestIndirect_IgnoresSheetScope(t *testing.T) {
	r := grid.Cells(grid.FromBounds(0, 4), grid.Single(9)).OnSheet(7)
	assert.Equal(t, `INDIRECT("R1C10:R5C10", FALSE)`, Indirect(r))
}

func TestGrey(t *testing.T) {
	c := Grey(0.75)
	assert.Equal(t, Color{Red: 0.75, Green: 0.75, Blue: 0.75}, c)
}
