// Package google provides credential loading for the Google Sheets API.
//
// It resolves a token source from a service account JSON key file (given
// explicitly or via GOOGLE_APPLICATION_CREDENTIALS) and falls back to
// Application Default Credentials, returning an authenticated HTTP client
// for API service construction.
package google
