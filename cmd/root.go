package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the sheetcal application
var rootCmd = &cobra.Command{
	Use:   "sheetcal",
	Short: "Renders a year calendar grid into a spreadsheet",
	Long: `sheetcal computes the week/month partition of a year for a configurable
first day of week and renders it into a spreadsheet: one row per week,
day-of-week columns, week and month totals.

It can write to a Google spreadsheet via the Sheets API or to a local
.xlsx file.`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "sheetcal version %s\n" .Version}}`)

	// If no subcommand is provided, run the render command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "render")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newVersionCmd())
}
