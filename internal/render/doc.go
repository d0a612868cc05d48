// Package render composes a computed calendar and the grid addressing
// primitives into the request batches that draw a year calendar on one
// sheet.
//
// The table is one header row, one row per week across the whole year and a
// totals row; columns are two date columns, seven day-of-week columns, a
// week-total column and a merged month-total column. Every region is derived
// by chaining range combinators from origin 0, so none of the layout code
// contains absolute coordinates.
package render
