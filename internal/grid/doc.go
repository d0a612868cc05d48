// Package grid provides the one- and two-dimensional cell addressing used to
// lay out spreadsheet regions.
//
// A Range is an inclusive, optionally unbounded interval of row or column
// indices with combinators to derive adjacent, nested and merged ranges. A
// GridRange pairs a row range with a column range and an optional sheet
// scope.
//
// Layout code builds regions by chaining NextWithCount/Next from a fixed
// origin and carving Subrange* views out of them, so region sizes can change
// without touching any absolute coordinates. Forcing a concrete end out of
// an unbounded range, or unioning non-adjacent ranges, is always a bug in
// the calling layout code and fails fast with a sentinel error.
package grid
