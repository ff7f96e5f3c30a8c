package dataprocessing

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "tabcli/internal/errors"
)

// Table is an in-memory tabular file: a header row plus raw string rows.
// The whole table is materialized at once; there is no streaming path.
type Table struct {
	Headers []string
	Rows    [][]string
}

// naTokens are cell values treated as missing in addition to the empty cell.
var naTokens = map[string]bool{
	"":     true,
	"NaN":  true,
	"nan":  true,
	"null": true,
	"NULL": true,
	"None": true,
	"N/A":  true,
	"n/a":  true,
	"#N/A": true,
}

// isMissing reports whether a cell counts as a missing value.
func isMissing(cell string) bool {
	return naTokens[strings.TrimSpace(cell)]
}

// LoadTable reads the file at path into a Table, dispatching on the file
// extension. Unknown extensions, missing files, and files without a header
// row are reported as classified processing errors.
func LoadTable(path string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return loadCSV(path)
	case ".xlsx", ".xls":
		return loadWorkbook(path)
	default:
		return nil, apperrors.UnsupportedFileType(path)
	}
}

// loadCSV reads a comma-separated file. The first record is the header row.
func loadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.FileNotFound(path)
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	// Ragged rows are handled by the cleaning pass, not rejected here.
	r.FieldsPerRecord = -1

	var records [][]string
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, apperrors.DataProcessing(fmt.Errorf("failed to parse CSV: %w", err))
		}
		records = append(records, record)
	}

	if len(records) == 0 {
		return nil, apperrors.EmptyData(path)
	}

	return &Table{Headers: records[0], Rows: records[1:]}, nil
}

// loadWorkbook reads the first sheet of a spreadsheet. The first row of the
// sheet is the header row.
func loadWorkbook(path string) (*Table, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.FileNotFound(path)
		}
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.DataProcessing(fmt.Errorf("failed to open workbook: %w", err))
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.EmptyData(path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, apperrors.DataProcessing(fmt.Errorf("failed to read sheet %q: %w", sheets[0], err))
	}
	if len(rows) == 0 {
		return nil, apperrors.EmptyData(path)
	}

	return &Table{Headers: rows[0], Rows: rows[1:]}, nil
}

// DropIncomplete returns a new table containing only rows that have a value
// for every column. Short rows and rows with any NA cell are removed; extra
// trailing cells beyond the header width are truncated.
func (t *Table) DropIncomplete() *Table {
	cleaned := &Table{Headers: t.Headers}

	for _, row := range t.Rows {
		if len(row) < len(t.Headers) {
			continue
		}
		complete := true
		for i := range t.Headers {
			if isMissing(row[i]) {
				complete = false
				break
			}
		}
		if complete {
			cleaned.Rows = append(cleaned.Rows, row[:len(t.Headers)])
		}
	}

	return cleaned
}

// RowMaps converts the rows to column-name-keyed objects, the verbatim output
// shape used when neither a date nor a numeric column is recognized.
func (t *Table) RowMaps() []map[string]string {
	out := make([]map[string]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		m := make(map[string]string, len(t.Headers))
		for i, h := range t.Headers {
			m[h] = row[i]
		}
		out = append(out, m)
	}
	return out
}
