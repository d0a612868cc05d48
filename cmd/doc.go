// Package cmd implements the command-line interface for sheetcal.
//
// This package provides the following commands:
//   - render: Compute a year calendar and write it into a spreadsheet
//   - version: Display version information
//
// The render command is the default command when no subcommand is specified.
package cmd
