// Package errors defines the processing-error taxonomy for the aggregator.
// Every failure inside the pipeline is classified into one of a fixed set of
// kinds and surfaced as a {"error": "<message>"} payload, never as a panic.
package errors

import (
	"errors"
	"fmt"
	"os"
)

// Kind identifies a category of processing failure.
type Kind int

const (
	// KindUnexpected is the catch-all for faults with no specific handling.
	KindUnexpected Kind = iota
	// KindFileNotFound indicates the input path does not exist.
	KindFileNotFound
	// KindEmptyData indicates the input file has no header row at all.
	KindEmptyData
	// KindDataProcessing covers value and parse errors raised while
	// loading or aggregating the table.
	KindDataProcessing
	// KindUnsupportedFileType indicates an extension other than
	// .csv/.xlsx/.xls.
	KindUnsupportedFileType
)

// String returns the kind name for logging.
func (k Kind) String() string {
	switch k {
	case KindFileNotFound:
		return "file_not_found"
	case KindEmptyData:
		return "empty_data"
	case KindDataProcessing:
		return "data_processing"
	case KindUnsupportedFileType:
		return "unsupported_file_type"
	default:
		return "unexpected"
	}
}

// unsupportedDetail is the fixed detail for unsupported extensions. The
// wording is part of the output contract and must not change.
const unsupportedDetail = "Unsupported file type. Please provide a .csv or .xlsx file."

// ProcessingError is a classified pipeline failure. It carries the kind, the
// offending path where relevant, and the underlying cause for wrapping.
type ProcessingError struct {
	Kind   Kind
	Path   string
	Detail string
	Err    error
}

// Error implements the error interface with the user-facing message.
func (e *ProcessingError) Error() string {
	return e.Message()
}

// Unwrap exposes the underlying cause to errors.Is/As.
func (e *ProcessingError) Unwrap() error {
	return e.Err
}

// Message returns the kind-specific human-readable message used in the
// {"error": ...} payload.
func (e *ProcessingError) Message() string {
	switch e.Kind {
	case KindFileNotFound:
		return fmt.Sprintf("File not found: %s", e.Path)
	case KindEmptyData:
		return fmt.Sprintf("Empty data file: %s", e.Path)
	case KindUnsupportedFileType:
		return fmt.Sprintf("Data processing error: %s", unsupportedDetail)
	case KindDataProcessing:
		return fmt.Sprintf("Data processing error: %s", e.Detail)
	default:
		return fmt.Sprintf("An unexpected error occurred: %s", e.Detail)
	}
}

// Payload is the JSON shape emitted for any failed run.
type Payload struct {
	Error string `json:"error"`
}

// Payload converts the error to its output document form.
func (e *ProcessingError) Payload() Payload {
	return Payload{Error: e.Message()}
}

// FileNotFound reports a missing input file.
func FileNotFound(path string) *ProcessingError {
	return &ProcessingError{Kind: KindFileNotFound, Path: path}
}

// EmptyData reports an input file with no header row.
func EmptyData(path string) *ProcessingError {
	return &ProcessingError{Kind: KindEmptyData, Path: path}
}

// UnsupportedFileType reports an extension outside .csv/.xlsx/.xls.
func UnsupportedFileType(path string) *ProcessingError {
	return &ProcessingError{Kind: KindUnsupportedFileType, Path: path, Detail: unsupportedDetail}
}

// DataProcessing wraps a value or parse error raised during processing.
func DataProcessing(err error) *ProcessingError {
	return &ProcessingError{Kind: KindDataProcessing, Detail: err.Error(), Err: err}
}

// Unexpected wraps a fault that matched no specific kind.
func Unexpected(err error) *ProcessingError {
	return &ProcessingError{Kind: KindUnexpected, Detail: err.Error(), Err: err}
}

// Classify converts an arbitrary error into a ProcessingError. Already
// classified errors pass through unchanged; bare filesystem not-exist errors
// become KindFileNotFound.
func Classify(err error, path string) *ProcessingError {
	var perr *ProcessingError
	if errors.As(err, &perr) {
		return perr
	}
	if os.IsNotExist(err) {
		return FileNotFound(path)
	}
	return Unexpected(err)
}
