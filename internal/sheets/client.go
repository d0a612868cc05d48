package sheets

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/api/option"
	sheets_v4 "google.golang.org/api/sheets/v4"

	"github.com/teemow/sheetcal/internal/logging"
	"github.com/teemow/sheetcal/internal/sink"
)

// Client wraps the Google Sheets service for one spreadsheet. It implements
// sink.Sink: each Apply call is a single batchUpdate, which the API applies
// atomically (all requests succeed or the whole batch fails).
type Client struct {
	svc           *sheets_v4.Service
	spreadsheetID string
	logger        logging.Logger
}

// NewClient creates a Sheets client for the given spreadsheet using the
// provided authenticated HTTP client.
func NewClient(ctx context.Context, spreadsheetID string, httpClient *http.Client, logger logging.Logger) (*Client, error) {
	if logger == nil {
		logger = logging.DefaultLogger()
	}

	svc, err := sheets_v4.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create Sheets service: %w", err)
	}

	return &Client{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		logger:        logger,
	}, nil
}

// SpreadsheetID returns the spreadsheet this client writes to.
func (c *Client) SpreadsheetID() string {
	return c.spreadsheetID
}

// EnsureSheet verifies that the spreadsheet contains a sheet with the given
// ID, so a bad --sheet-id fails before any batch is issued.
func (c *Client) EnsureSheet(ctx context.Context, sheetID int64) error {
	spreadsheet, err := c.svc.Spreadsheets.Get(c.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to get spreadsheet %s: %w", c.spreadsheetID, err)
	}

	for _, s := range spreadsheet.Sheets {
		if s.Properties != nil && s.Properties.SheetId == sheetID {
			return nil
		}
	}
	return fmt.Errorf("spreadsheet %s has no sheet with ID %d", c.spreadsheetID, sheetID)
}

// ApplyStructuralRequests applies the formatting/layout batch.
func (c *Client) ApplyStructuralRequests(ctx context.Context, requests []sink.StructuralRequest) error {
	api := toRequests(requests)
	c.logger.Debug("submitting structural batch",
		logging.Spreadsheet(c.spreadsheetID),
		logging.Requests(len(api)))

	if err := c.batchUpdate(ctx, api); err != nil {
		return fmt.Errorf("structural batch failed: %w", err)
	}
	return nil
}

// ApplyValueUpdates applies the content batch.
func (c *Client) ApplyValueUpdates(ctx context.Context, updates []sink.ValueUpdate) error {
	api := toUpdateCellsRequests(updates)
	c.logger.Debug("submitting value batch",
		logging.Spreadsheet(c.spreadsheetID),
		logging.Requests(len(api)))

	if err := c.batchUpdate(ctx, api); err != nil {
		return fmt.Errorf("value batch failed: %w", err)
	}
	return nil
}

func (c *Client) batchUpdate(ctx context.Context, requests []*sheets_v4.Request) error {
	_, err := c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, &sheets_v4.BatchUpdateSpreadsheetRequest{
		Requests: requests,
	}).Context(ctx).Do()
	return err
}
