package google

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/sheets/v4"
)

// Scopes required by the application. Rendering rewrites sheet structure and
// values, so it needs full spreadsheet access.
var Scopes = []string{
	sheets.SpreadsheetsScope,
}

// NewHTTPClient returns an HTTP client authenticated for the Sheets API.
//
// If credentialsFile is non-empty it must point to a service account JSON
// key; otherwise the GOOGLE_APPLICATION_CREDENTIALS environment variable and
// the usual Application Default Credentials chain are consulted.
func NewHTTPClient(ctx context.Context, credentialsFile string) (*http.Client, error) {
	ts, err := tokenSource(ctx, credentialsFile)
	if err != nil {
		return nil, err
	}

	client := oauth2.NewClient(ctx, ts)

	// Force HTTP/1.1 by disabling HTTP/2. The Google API endpoints
	// occasionally reset long-lived HTTP/2 streams.
	transport := client.Transport.(*oauth2.Transport)
	transport.Base = &http.Transport{
		ForceAttemptHTTP2: false,
	}

	return client, nil
}

func tokenSource(ctx context.Context, credentialsFile string) (oauth2.TokenSource, error) {
	if credentialsFile == "" {
		credentialsFile = os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	}

	if credentialsFile != "" {
		data, err := os.ReadFile(credentialsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read credentials file %s: %w", credentialsFile, err)
		}
		creds, err := google.CredentialsFromJSON(ctx, data, Scopes...)
		if err != nil {
			return nil, fmt.Errorf("failed to parse credentials file %s: %w", credentialsFile, err)
		}
		return creds.TokenSource, nil
	}

	ts, err := google.DefaultTokenSource(ctx, Scopes...)
	if err != nil {
		return nil, fmt.Errorf("no Google credentials found: %w", err)
	}
	return ts, nil
}
