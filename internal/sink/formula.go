package sink

import (
	"fmt"

	"github.com/teemow/sheetcal/internal/grid"
)

// Ref renders a grid range as the R1C1 reference string understood by
// INDIRECT in its R1C1 mode.
func Ref(r grid.GridRange) string {
	return r.String()
}

// Indirect returns an INDIRECT(ref, FALSE) expression resolving the range at
// recalculation time, so generated formulas keep tracking the underlying
// cells if they are edited.
func Indirect(r grid.GridRange) string {
	return fmt.Sprintf("INDIRECT(%q, FALSE)", Ref(r))
}

// SumOf returns a SUM formula over the given range.
func SumOf(r grid.GridRange) Formula {
	return Formula(fmt.Sprintf("=SUM(%s)", Indirect(r)))
}
