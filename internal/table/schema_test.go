// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package table

import (
	"errors"
	"testing"
)

func TestResolveColumnsScopusExport(t *testing.T) {
	tbl := &RawTable{
		Name:    "scopus.xlsx",
		Headers: []string{"Authors", "Author full names", "Title", "Year", "Source title"},
		Rows:    [][]string{{"Singh A.", "Singh A. (57201234567)", "AI in Healthcare", "2021", "J. Med. AI"}},
	}

	roles, err := ResolveColumns(tbl)
	if err != nil {
		t.Fatalf("ResolveColumns: %v", err)
	}
	// The full-name column displaces the abbreviated one.
	if roles.Author != 1 {
		t.Errorf("Author = %d, want 1", roles.Author)
	}
	if roles.Title != 2 {
		t.Errorf("Title = %d, want 2", roles.Title)
	}
	if roles.Year != 3 {
		t.Errorf("Year = %d, want 3", roles.Year)
	}
	// "Source title" is a source column, not a title column.
	if roles.Source != 4 {
		t.Errorf("Source = %d, want 4", roles.Source)
	}
	// Column 1 belongs to the author role, so the positional department
	// fallback must not take it.
	if roles.Department != -1 {
		t.Errorf("Department = %d, want -1", roles.Department)
	}
	if roles.DataStart != 0 {
		t.Errorf("DataStart = %d, want 0", roles.DataStart)
	}
}

func TestResolveColumnsWoSExport(t *testing.T) {
	tbl := &RawTable{
		Name:    "wos.xlsx",
		Headers: []string{"Author Full Names", "Article Title", "Publication Year", "Source Title", "Department"},
	}

	roles, err := ResolveColumns(tbl)
	if err != nil {
		t.Fatalf("ResolveColumns: %v", err)
	}
	want := ColumnRoles{Author: 0, Title: 1, Year: 2, Source: 3, Department: 4}
	if roles != want {
		t.Errorf("roles = %+v, want %+v", roles, want)
	}
}

func TestResolveColumnsShiftedHeader(t *testing.T) {
	// The real header sits in the first data row, as happens when an export
	// carries a banner row above the column names.
	tbl := &RawTable{
		Name:    "shifted.xlsx",
		Headers: []string{"Unnamed: 0", "Unnamed: 1", "Unnamed: 2"},
		Rows: [][]string{
			{"Authors", "Title", "Year"},
			{"Rao B.", "X", "2020"},
		},
	}

	roles, err := ResolveColumns(tbl)
	if err != nil {
		t.Fatalf("ResolveColumns: %v", err)
	}
	if roles.DataStart != 1 {
		t.Errorf("DataStart = %d, want 1", roles.DataStart)
	}
	if roles.Author != 0 || roles.Title != 1 || roles.Year != 2 {
		t.Errorf("roles = %+v", roles)
	}
}

func TestResolveColumnsPositionalFallback(t *testing.T) {
	tbl := &RawTable{
		Name:    "faculty.csv",
		Headers: []string{"Name", "Dept", "Title", "Year"},
	}

	roles, err := ResolveColumns(tbl)
	if err != nil {
		t.Fatalf("ResolveColumns: %v", err)
	}
	if roles.Author != 0 {
		t.Errorf("Author = %d, want positional fallback 0", roles.Author)
	}
	if roles.Department != 1 {
		t.Errorf("Department = %d, want positional fallback 1", roles.Department)
	}
	if roles.Title != 2 || roles.Year != 3 {
		t.Errorf("roles = %+v", roles)
	}
}

func TestResolveColumnsDepartmentFallbackRespectsClaims(t *testing.T) {
	tbl := &RawTable{
		Name:    "narrow.csv",
		Headers: []string{"Title", "Publication Year"},
	}

	roles, err := ResolveColumns(tbl)
	if err != nil {
		t.Fatalf("ResolveColumns: %v", err)
	}
	if roles.Author != 0 {
		t.Errorf("Author = %d, want positional fallback 0", roles.Author)
	}
	// Column 1 is the year column; the department fallback stays absent.
	if roles.Department != -1 {
		t.Errorf("Department = %d, want -1", roles.Department)
	}
}

func TestResolveColumnsNoAuthorColumn(t *testing.T) {
	tbl := &RawTable{Name: "empty.xlsx"}

	_, err := ResolveColumns(tbl)
	if !errors.Is(err, ErrNoAuthorColumn) {
		t.Errorf("err = %v, want ErrNoAuthorColumn", err)
	}
}
