// Package exporter writes the pipeline's output artifacts: the JSON result
// document (stdout and optionally a file) and CSV tables produced by the
// spreadsheet conversion step.
package exporter
