// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mergepub

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/pubmerge/internal/table"
	"github.com/pdiddy/pubmerge/pkg/types"
)

var (
	// authorDelimRe splits a multi-author cell on semicolons, commas, or
	// the word "and".
	authorDelimRe = regexp.MustCompile(`;|,|\s+and\s+`)

	// authorIDRe matches the trailing numeric author IDs Scopus appends to
	// names, e.g. "Singh A. (57201234567)".
	authorIDRe = regexp.MustCompile(`\s*\(\d+\)\s*$`)
)

// headerEchoes are author-cell values that repeat the column header instead
// of naming a person; such rows carry no data.
var headerEchoes = map[string]bool{
	"author":            true,
	"authors":           true,
	"author full names": true,
	"nan":               true,
}

// SplitAuthors splits a raw author cell into individual names, dropping
// trailing Scopus author IDs and empty fragments.
func SplitAuthors(cell string) []string {
	var names []string
	for _, part := range authorDelimRe.Split(cell, -1) {
		name := authorIDRe.ReplaceAllString(strings.TrimSpace(part), "")
		name = strings.TrimSpace(name)
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

// ExtractRecords walks the data rows of t using its resolved roles and
// emits one PublicationRecord per author per row: a row listing several
// co-authors expands so the publication appears in every co-author's list.
// Rows with no identifiable author are dropped; missing titles and
// departments pass through empty, and non-numeric years become nil.
// NormalizedTitle is left empty for the normalizer.
func ExtractRecords(t *table.RawTable, roles table.ColumnRoles, source types.SourceDatabase) []types.PublicationRecord {
	var records []types.PublicationRecord

	for i := roles.DataStart; i < len(t.Rows); i++ {
		authorCell := t.Cell(i, roles.Author)
		if authorCell == "" || headerEchoes[strings.ToLower(authorCell)] {
			continue
		}
		names := SplitAuthors(authorCell)
		if len(names) == 0 {
			continue
		}

		title := t.Cell(i, roles.Title)
		year := parseYear(t.Cell(i, roles.Year))
		dept := t.Cell(i, roles.Department)

		for _, name := range names {
			records = append(records, types.PublicationRecord{
				Author:     name,
				Title:      title,
				Year:       year,
				Source:     source,
				Department: dept,
			})
		}
	}
	return records
}

// parseYear coerces a year cell to an int, tolerating the float formatting
// some exports use ("2021.0"). Missing or non-numeric cells yield nil.
func parseYear(cell string) *int {
	s := strings.TrimSpace(cell)
	if s == "" {
		return nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return &n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		n := int(f)
		if float64(n) == f {
			return &n
		}
	}
	return nil
}
