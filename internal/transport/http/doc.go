// Package http implements the publishing server: it exposes the most recent
// JSON result document at a stable URL, plus health and metrics endpoints.
// The document itself is opaque to the server; anything the aggregator
// emitted (including an error payload) is served as-is.
package http
