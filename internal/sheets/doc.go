// Package sheets applies rendered batches to a Google spreadsheet through
// the Sheets v4 batchUpdate API.
//
// The Client implements sink.Sink for one spreadsheet. Translation from the
// abstract request model happens here, including the two contracts that are
// easy to get wrong on the wire: inclusive internal range ends become
// exclusive wire ends (end + 1, unbounded stays unset), and exact grid
// sizing is expressed as append-then-delete-excess because the API has no
// direct "set dimension count" request.
package sheets
