// Package sink defines the contract between the calendar renderer and the
// spreadsheet backends that apply its output.
//
// A rendered sheet is two independent batches: structural requests (sizing,
// merges, borders, fills, frozen panes) and value updates (literal dates,
// labels and formulas addressed by grid ranges). The Sink interface accepts
// each batch as one atomic call. Formula helpers build aggregate formulas
// over abstract grid ranges using R1C1 INDIRECT references.
package sink
