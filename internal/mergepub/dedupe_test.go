package mergepub

import (
	"testing"

	"github.com/pdiddy/pubmerge/pkg/types"
)

func rec(author, title string, source types.SourceDatabase) types.PublicationRecord {
	return types.PublicationRecord{
		Author:          author,
		Title:           title,
		Source:          source,
		NormalizedTitle: NormalizeTitle(title),
	}
}

func TestAuthorKey(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"A. Singh", "a. singh"},
		{"  A. SINGH  ", "a. singh"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := AuthorKey(tt.name); got != tt.want {
			t.Errorf("AuthorKey(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestDedupeCaseVariantTitles(t *testing.T) {
	records := []types.PublicationRecord{
		rec("A. Singh", "AI in Healthcare", types.SourceScopus),
		rec("A. Singh", "ai in healthcare", types.SourceWoS),
	}

	res := Dedupe(records, "Unknown")
	g := res.Group("A. Singh")
	if g == nil {
		t.Fatal("no group for A. Singh")
	}
	if len(g.Publications) != 1 {
		t.Fatalf("len(publications) = %d, want 1", len(g.Publications))
	}
	if res.DupsRemoved != 1 {
		t.Errorf("DupsRemoved = %d, want 1", res.DupsRemoved)
	}
	// First-seen display form wins.
	if g.Publications[0].Title != "AI in Healthcare" {
		t.Errorf("display title = %q, want first-seen form", g.Publications[0].Title)
	}
	// Both sources recorded.
	if len(g.Publications[0].Sources) != 2 {
		t.Errorf("sources = %v, want both databases", g.Publications[0].Sources)
	}
}

func TestDedupeCrossSourceYearVariant(t *testing.T) {
	records := []types.PublicationRecord{
		rec("A. Singh", "X (2021)", types.SourceScopus),
		rec("A. Singh", "x 2021", types.SourceWoS),
	}

	res := Dedupe(records, "Unknown")
	g := res.Group("a. singh")
	if g == nil {
		t.Fatal("no group for a. singh")
	}
	if len(g.Publications) != 1 {
		t.Fatalf("len(publications) = %d, want 1", len(g.Publications))
	}
	if g.Publications[0].Title != "X (2021)" {
		t.Errorf("display title = %q, want scopus form", g.Publications[0].Title)
	}
}

func TestDedupeDistinctAuthorsStayDistinct(t *testing.T) {
	// Exact AuthorKey match only: name variants are separate groups.
	records := []types.PublicationRecord{
		rec("A. Singh", "X", types.SourceScopus),
		rec("Amit Singh", "X", types.SourceWoS),
	}

	res := Dedupe(records, "Unknown")
	if len(res.Groups) != 2 {
		t.Fatalf("len(groups) = %d, want 2", len(res.Groups))
	}
	if res.DupsRemoved != 0 {
		t.Errorf("DupsRemoved = %d, want 0", res.DupsRemoved)
	}
}

func TestDedupeDepartmentFromFirstRow(t *testing.T) {
	records := []types.PublicationRecord{
		{Author: "A. Singh", Title: "X", Source: types.SourceScopus,
			Department: "Computer Science", NormalizedTitle: "x"},
		{Author: "a. singh", Title: "Y", Source: types.SourceWoS,
			Department: "Electrical Engineering", NormalizedTitle: "y"},
	}

	res := Dedupe(records, "Unknown")
	g := res.Group("A. Singh")
	if g == nil {
		t.Fatal("no group")
	}
	if g.Department != "Computer Science" {
		t.Errorf("department = %q, want the first row's value", g.Department)
	}
	if g.AuthorName != "A. Singh" {
		t.Errorf("author name = %q, want first-seen spelling", g.AuthorName)
	}
}

func TestDedupeUnknownDepartmentDefault(t *testing.T) {
	records := []types.PublicationRecord{rec("A. Singh", "X", types.SourceScopus)}

	res := Dedupe(records, "Unknown")
	if got := res.Group("A. Singh").Department; got != "Unknown" {
		t.Errorf("department = %q, want Unknown", got)
	}
}

func TestUniquePublicationDisplay(t *testing.T) {
	year := 2021
	tests := []struct {
		name string
		pub  UniquePublication
		want string
	}{
		{"year appended", UniquePublication{Title: "X", Year: &year}, "X (2021)"},
		{"no year", UniquePublication{Title: "X"}, "X"},
		{"title already carries year", UniquePublication{Title: "X (2021)", Year: &year}, "X (2021)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pub.Display(); got != tt.want {
				t.Errorf("Display() = %q, want %q", got, tt.want)
			}
		})
	}
}
