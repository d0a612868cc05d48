// Package xlsx renders the request stream into a local .xlsx workbook using
// excelize, for use without network access or Google credentials.
//
// The Sink implements the same contract as the Google Sheets client, so the
// renderer is oblivious to which backend it writes to. Formatting requests
// are accumulated per cell and materialized as shared styles when the
// workbook is saved, because xlsx styles are whole-cell records rather than
// independently applicable properties.
package xlsx
