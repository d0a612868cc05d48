package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for layout-invariant violations. Both indicate a bug in
// calling layout code rather than bad external input, so callers should abort
// the computation instead of substituting a fallback range.
var (
	// ErrEndIndexUndefined is returned when a concrete end index is requested
	// from a range that is unbounded on the end side.
	ErrEndIndexUndefined = errors.New("end index undefined for unbounded range")

	// ErrRangesNotAdjacent is returned when a union is attempted on ranges
	// that are not exactly adjacent.
	ErrRangesNotAdjacent = errors.New("ranges are not adjacent")
)

// Range is a one-dimensional interval of integer indices used to address
// sheet rows or columns. Both bounds are inclusive and either bound may be
// absent, meaning the range is unbounded on that side.
//
// The zero value is the fully unbounded range.
type Range struct {
	start *int64
	end   *int64
}

// Unbounded returns a range without bounds on either side.
func Unbounded() Range {
	return Range{}
}

// StartingAt returns a range bounded below by i and unbounded above.
func StartingAt(i int64) Range {
	return Range{start: ptr(i)}
}

// EndingAt returns a range unbounded below and bounded above by i.
func EndingAt(i int64) Range {
	return Range{end: ptr(i)}
}

// FromBounds returns the inclusive range [lo, hi]. Callers must guarantee
// lo <= hi; the constructor does not enforce it.
func FromBounds(lo, hi int64) Range {
	return Range{start: ptr(lo), end: ptr(hi)}
}

// Single returns the one-element range [i, i].
func Single(i int64) Range {
	return FromBounds(i, i)
}

// FromStartAndCount returns the range of count indices beginning at start.
// count must be >= 1.
func FromStartAndCount(start, count int64) Range {
	return FromBounds(start, start+count-1)
}

// Start returns the start index and whether it is set.
func (r Range) Start() (int64, bool) {
	if r.start == nil {
		return 0, false
	}
	return *r.start, true
}

// End returns the end index and whether it is set.
func (r Range) End() (int64, bool) {
	if r.end == nil {
		return 0, false
	}
	return *r.end, true
}

// StartValue returns the start index, defaulting to 0 for an unbounded start.
func (r Range) StartValue() int64 {
	if r.start == nil {
		return 0
	}
	return *r.start
}

// EndValue returns the end index. An unbounded end has no concrete value and
// returns ErrEndIndexUndefined.
func (r Range) EndValue() (int64, error) {
	if r.end == nil {
		return 0, ErrEndIndexUndefined
	}
	return *r.end, nil
}

// Count returns the number of indices covered by the range.
func (r Range) Count() (int64, error) {
	end, err := r.EndValue()
	if err != nil {
		return 0, err
	}
	return end - r.StartValue() + 1, nil
}

// Indices returns the inclusive index sequence covered by the range.
func (r Range) Indices() ([]int64, error) {
	end, err := r.EndValue()
	if err != nil {
		return nil, err
	}
	start := r.StartValue()
	indices := make([]int64, 0, end-start+1)
	for i := start; i <= end; i++ {
		indices = append(indices, i)
	}
	return indices, nil
}

// NextWithCount returns the range of count indices immediately following r.
// Used to lay out adjacent sheet regions sequentially.
func (r Range) NextWithCount(count int64) (Range, error) {
	end, err := r.EndValue()
	if err != nil {
		return Range{}, err
	}
	return FromStartAndCount(end+1, count), nil
}

// Next returns the single-index range immediately following r.
func (r Range) Next() (Range, error) {
	return r.NextWithCount(1)
}

// SubrangeBounds returns the absolute range [r.start+lo, r.start+hi]. The
// bounds are offsets relative to r's start.
func (r Range) SubrangeBounds(lo, hi int64) Range {
	base := r.StartValue()
	return FromBounds(base+lo, base+hi)
}

// SubrangeWithCount returns the absolute range of count indices beginning at
// offset start relative to r's start.
func (r Range) SubrangeWithCount(start, count int64) Range {
	return r.SubrangeBounds(start, start+count-1)
}

// SubrangeSingle returns the absolute single-index range at offset i relative
// to r's start.
func (r Range) SubrangeSingle(i int64) Range {
	return r.SubrangeBounds(i, i)
}

// Union merges two exactly adjacent ranges into one spanning both. The second
// range must begin immediately after the first ends; anything else returns
// ErrRangesNotAdjacent.
func Union(a, b Range) (Range, error) {
	end, err := a.EndValue()
	if err != nil {
		return Range{}, err
	}
	if b.StartValue()-end != 1 {
		return Range{}, fmt.Errorf("%w: %s and %s", ErrRangesNotAdjacent, a, b)
	}
	return Range{start: a.start, end: b.end}, nil
}

// UnionAll folds Union over the given ranges in order. It fails if the list
// is empty or any consecutive pair is not adjacent.
func UnionAll(ranges ...Range) (Range, error) {
	if len(ranges) == 0 {
		return Range{}, errors.New("cannot union an empty list of ranges")
	}
	result := ranges[0]
	for _, r := range ranges[1:] {
		merged, err := Union(result, r)
		if err != nil {
			return Range{}, err
		}
		result = merged
	}
	return result, nil
}

// String renders the range for diagnostics, e.g. "[3..7]", "[3..]" or "[..]".
func (r Range) String() string {
	format := func(i *int64) string {
		if i == nil {
			return ""
		}
		return fmt.Sprintf("%d", *i)
	}
	return fmt.Sprintf("[%s..%s]", format(r.start), format(r.end))
}

func ptr(i int64) *int64 {
	return &i
}
