// Package prospect keeps the client and budget proposal book of a small
// freelance practice.
//
// It is organized in three layers: the Store owns the canonical client
// collection and persists it as a single snapshot in a local database
// file; pure derivation functions (Summary, Report and the breakdowns)
// recompute dashboard figures from the collection; and the CSV
// projection flattens it for spreadsheets. Rendering lives in the
// renderer package, the CLI in cmd.
package prospect
