package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGridRangeString(t *testing.T) {
	tests := []struct {
		name     string
		r        GridRange
		expected string
	}{
		{
			name:     "fully bounded",
			r:        Cells(FromBounds(0, 4), FromBounds(2, 3)),
			expected: "R1C3:R5C4",
		},
		{
			name:     "single cell",
			r:        Cells(Single(1), Single(9)),
			expected: "R2C10:R2C10",
		},
		{
			name:     "unbounded row ends",
			r:        Cells(StartingAt(0), StartingAt(2)),
			expected: "R1C3",
		},
		{
			name:     "fully unbounded",
			r:        Cells(Unbounded(), Unbounded()),
			expected: "",
		},
		{
			name:     "column only",
			r:        Cells(Unbounded(), FromBounds(3, 3)),
			expected: "C4:C4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.r.String())
		})
	}
}

func TestGridRangeSheetScope(t *testing.T) {
	r := Cells(Single(0), Single(0))
	assert.Nil(t, r.SheetID)

	scoped := r.OnSheet(7)
	if assert.NotNil(t, scoped.SheetID) {
		assert.Equal(t, int64(7), *scoped.SheetID)
	}
	// The original stays on the default sheet.
	assert.Nil(t, r.SheetID)

	whole := WholeSheet(3)
	if assert.NotNil(t, whole.SheetID) {
		assert.Equal(t, int64(3), *whole.SheetID)
	}
	_, bounded := whole.Rows.End()
	assert.False(t, bounded)
}
