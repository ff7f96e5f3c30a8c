// Package dataprocessing implements the tabular cleaning and aggregation
// pipeline: load a CSV or spreadsheet table, drop incomplete rows, detect the
// date and numeric columns by fixed-priority header names, coerce values, and
// produce either a per-day aggregate, overall statistics, or the cleaned rows.
//
// All inference is best-effort: a missing column is a capability loss, not an
// error, and rows that fail coercion are silently dropped. The pipeline never
// fails a run with a panic; every fault is classified through internal/errors
// and returned as a value.
package dataprocessing
