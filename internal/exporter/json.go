package exporter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteDocument serializes v as an indented JSON document followed by a
// newline. Two-space indentation is part of the output contract.
func WriteDocument(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize result: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}

// WriteDocumentFile writes the JSON document to path, creating parent
// directories as needed. Used to publish the result for the serve step.
func WriteDocumentFile(path string, v any) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := WriteDocument(f, v); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
