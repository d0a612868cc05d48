// Package calendar computes the week/month partition of a year for a
// configurable first day of week.
//
// The computation is pure: Calculate produces an immutable Calendar value
// that the renderer consumes, and nothing in this package touches any
// external service. Partial weeks at month boundaries are kept inside the
// month that owns them (never dropped or merged across months), with the
// days belonging to neighboring months flagged inactive.
package calendar
