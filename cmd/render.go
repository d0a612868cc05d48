package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/teemow/sheetcal/internal/calendar"
	"github.com/teemow/sheetcal/internal/google"
	"github.com/teemow/sheetcal/internal/logging"
	"github.com/teemow/sheetcal/internal/render"
	"github.com/teemow/sheetcal/internal/sheets"
	"github.com/teemow/sheetcal/internal/xlsx"
)

func newRenderCmd() *cobra.Command {
	var (
		year            int
		firstDay        string
		spreadsheetID   string
		sheetID         int64
		credentialsFile string
		output          string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a year calendar into a spreadsheet",
		Long: `Compute the week/month grid for a year and write it into a spreadsheet:
one row per week, day-of-week columns, week and month totals, with days
belonging to neighboring months greyed out.

The target is either a Google spreadsheet (--spreadsheet-id, authenticated
via a service account key or Application Default Credentials) or a local
.xlsx file (--output).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseWeekday(firstDay)
			if err != nil {
				return err
			}

			logger := logging.NewSlogAdapter(logging.WithOperation(slog.Default(), "render"))
			ctx := context.Background()

			cal := calendar.Calculate(day, year)
			renderer, err := render.New(cal, sheetID, logger)
			if err != nil {
				return fmt.Errorf("failed to lay out calendar: %w", err)
			}

			if output != "" {
				err = renderToFile(ctx, renderer, output, year, logger)
			} else {
				err = renderToGoogle(ctx, renderer, spreadsheetID, sheetID, credentialsFile, logger)
			}
			if err != nil {
				logger.Error("render failed",
					logging.Err(err),
					logging.Status(logging.StatusError))
				return err
			}

			logger.Info("render complete",
				logging.SheetID(sheetID),
				logging.Status(logging.StatusSuccess))
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", time.Now().Year(), "year to render")
	cmd.Flags().StringVar(&firstDay, "first-day", "Monday", "first day of the week (name or 0=Sunday..6=Saturday)")
	cmd.Flags().StringVar(&spreadsheetID, "spreadsheet-id", "", "Google spreadsheet ID to write to")
	cmd.Flags().Int64Var(&sheetID, "sheet-id", 0, "sheet ID within the spreadsheet")
	cmd.Flags().StringVar(&credentialsFile, "credentials", "", "path to a service account JSON key (default: GOOGLE_APPLICATION_CREDENTIALS)")
	cmd.Flags().StringVar(&output, "output", "", "write a local .xlsx file instead of calling the Sheets API")

	return cmd
}

func renderToGoogle(ctx context.Context, renderer *render.Renderer, spreadsheetID string, sheetID int64, credentialsFile string, logger logging.Logger) error {
	if spreadsheetID == "" {
		return fmt.Errorf("either --spreadsheet-id or --output is required")
	}

	httpClient, err := google.NewHTTPClient(ctx, credentialsFile)
	if err != nil {
		return fmt.Errorf("failed to load Google credentials: %w", err)
	}

	client, err := sheets.NewClient(ctx, spreadsheetID, httpClient, logger)
	if err != nil {
		return fmt.Errorf("failed to create Sheets client: %w", err)
	}
	if err := client.EnsureSheet(ctx, sheetID); err != nil {
		return err
	}

	return renderer.Render(ctx, client)
}

func renderToFile(ctx context.Context, renderer *render.Renderer, path string, year int, logger logging.Logger) error {
	s, err := xlsx.New(path, fmt.Sprintf("Calendar %d", year), logger)
	if err != nil {
		return fmt.Errorf("failed to create workbook: %w", err)
	}
	defer s.Close()

	if err := renderer.Render(ctx, s); err != nil {
		return err
	}
	return s.Save()
}

// parseWeekday accepts a weekday name ("Monday", "mon") or the numeric
// convention 0=Sunday..6=Saturday.
func parseWeekday(value string) (time.Weekday, error) {
	if n, err := strconv.Atoi(value); err == nil {
		if n < 0 || n > 6 {
			return 0, fmt.Errorf("invalid weekday %d: expected 0 (Sunday) to 6 (Saturday)", n)
		}
		return time.Weekday(n), nil
	}

	for d := time.Sunday; d <= time.Saturday; d++ {
		name := d.String()
		if strings.EqualFold(value, name) || strings.EqualFold(value, name[:3]) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("invalid weekday %q", value)
}
