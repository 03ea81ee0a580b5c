// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package table

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoAuthorColumn is returned when a table resolves no usable author
// column. The merge cannot attribute publications without one, so this is
// fatal for the table.
var ErrNoAuthorColumn = errors.New("no author column found")

// ColumnRoles maps each logical role to a column index in one RawTable.
// An index of -1 means no column was found for that role. ColumnRoles is
// computed once per table and passed to later stages unchanged.
type ColumnRoles struct {
	Author     int
	Title      int
	Year       int
	Source     int
	Department int

	// DataStart is the index of the first data row. It is 1 instead of 0
	// when the true header sits in the first data row and the resolver
	// shifted the data window past it.
	DataStart int
}

// matched counts how many roles resolved to a column.
func (r ColumnRoles) matched() int {
	n := 0
	for _, idx := range []int{r.Author, r.Title, r.Year, r.Source, r.Department} {
		if idx >= 0 {
			n++
		}
	}
	return n
}

// ResolveColumns inspects a table's header row and maps each role to the
// column that carries it, tolerating the naming variance between exports.
//
// Two passes: the header row is matched against role keyword sets first;
// if the first data row matches more role keywords than the header row,
// the uploaded file had its real header one row down, so that row is
// treated as the header and the data window shifts past it.
//
// A table with no keyword match for the author role falls back to the
// first column; department falls back to the second, unless another role
// already claimed it. Only a table where even the positional fallback is
// impossible fails.
func ResolveColumns(t *RawTable) (ColumnRoles, error) {
	roles := matchRoles(t.Headers)

	if len(t.Rows) > 0 {
		if alt := matchRoles(t.Rows[0]); alt.matched() > roles.matched() {
			alt.DataStart = 1
			roles = alt
		}
	}

	if roles.Author < 0 && len(t.Headers) > 0 {
		roles.Author = 0
	}
	if roles.Department < 0 && len(t.Headers) > 1 && !claimed(roles, 1) {
		roles.Department = 1
	}

	if roles.Author < 0 {
		return roles, fmt.Errorf("%s: %w", t.Name, ErrNoAuthorColumn)
	}
	return roles, nil
}

// claimed reports whether column idx is already assigned to a role.
func claimed(r ColumnRoles, idx int) bool {
	return r.Author == idx || r.Title == idx || r.Year == idx || r.Source == idx
}

// matchRoles runs the keyword pass over one row of cells. First matching
// column (left to right) wins per role, except that an author column
// naming "full names" displaces a plain "authors" match, since exports
// often carry both and the full-name column is the usable one.
func matchRoles(cells []string) ColumnRoles {
	r := ColumnRoles{Author: -1, Title: -1, Year: -1, Source: -1, Department: -1}

	for i, c := range cells {
		h := strings.ToLower(strings.TrimSpace(c))
		if h == "" {
			continue
		}
		if strings.Contains(h, "author") {
			if r.Author < 0 {
				r.Author = i
			} else if strings.Contains(h, "full names") && !strings.Contains(strings.ToLower(cells[r.Author]), "full names") {
				r.Author = i
			}
		}
		if r.Title < 0 && strings.Contains(h, "title") && !strings.Contains(h, "source") {
			r.Title = i
		}
		if r.Year < 0 && strings.Contains(h, "year") {
			r.Year = i
		}
		if r.Source < 0 && (strings.Contains(h, "source") || strings.Contains(h, "journal")) {
			r.Source = i
		}
		if r.Department < 0 && strings.Contains(h, "department") {
			r.Department = i
		}
	}
	return r
}
