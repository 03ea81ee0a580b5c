// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package table decodes spreadsheet exports into rows of cells and resolves
// which columns carry the fields the merge pipeline needs. Exports from
// different databases name and order their columns differently, so decoding
// and role resolution are separate steps: decode produces a RawTable, and
// ResolveColumns maps each logical role onto it once, up front.
package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// RawTable is a decoded table: an ordered header row plus data rows.
// Rows are positional and may be ragged; Cell is bounds-safe.
type RawTable struct {
	// Name identifies the table in error messages (usually the file name).
	Name string

	// Headers holds the first row's cells in sheet order.
	Headers []string

	// Rows holds the remaining rows.
	Rows [][]string
}

// Cell returns the trimmed value at (row, col), or "" when either index is
// out of range. A negative col stands for an absent column role.
func (t *RawTable) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) || col < 0 {
		return ""
	}
	r := t.Rows[row]
	if col >= len(r) {
		return ""
	}
	return strings.TrimSpace(r[col])
}

// ReadFile decodes the spreadsheet at path, choosing the decoder by file
// extension (.xlsx or .csv).
func ReadFile(path string) (*RawTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f, filepath.Base(path))
}

// Decode reads a tabular byte stream into a RawTable. The name's extension
// selects the format; a stream that cannot be parsed is a fatal input
// error for the run.
func Decode(r io.Reader, name string) (*RawTable, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xlsm":
		return decodeXLSX(r, name)
	case ".csv":
		return decodeCSV(r, name)
	default:
		return nil, fmt.Errorf("unsupported file format %q: use .xlsx or .csv", name)
	}
}

func decodeXLSX(r io.Reader, name string) (*RawTable, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing %s as a workbook: %w", name, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook %s has no sheets", name)
	}

	// Only the first sheet carries the export data.
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q of %s: %w", sheets[0], name, err)
	}
	return fromRows(rows, name)
}

func decodeCSV(r io.Reader, name string) (*RawTable, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing %s as CSV: %w", name, err)
	}
	return fromRows(rows, name)
}

var errEmptyTable = errors.New("table has no rows")

func fromRows(rows [][]string, name string) (*RawTable, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: %w", name, errEmptyTable)
	}
	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}
	return &RawTable{Name: name, Headers: headers, Rows: rows[1:]}, nil
}
