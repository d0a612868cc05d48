// Package logging provides structured logging utilities for sheetcal.
//
// It centralizes logging patterns on top of the standard library's slog
// package: a small Logger interface with an slog adapter, and attribute
// helpers for the names used across the codebase (operation, spreadsheet,
// sheet_id, batch sizes, status, error).
//
// Usage:
//
//	logger := logging.WithOperation(slog.Default(), "sheets.batch_update")
//	logger.Info("batch applied",
//	    logging.Requests(len(requests)),
//	    logging.Status(logging.StatusSuccess))
package logging
