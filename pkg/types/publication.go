// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// SourceDatabase identifies the citation database a record came from.
type SourceDatabase string

const (
	SourceScopus SourceDatabase = "scopus"
	SourceWoS    SourceDatabase = "wos"
)

// PublicationRecord is one author's claim to one publication, as reported
// by a single source table. A source row listing several co-authors expands
// into one record per author. Records live only for the duration of one
// pipeline run.
type PublicationRecord struct {
	// Author is the raw author name after multi-author splitting.
	Author string `json:"author" yaml:"author"`

	// Title is the publication title exactly as the source reported it.
	Title string `json:"title" yaml:"title"`

	// Year is the publication year, or nil when the source cell was
	// missing or non-numeric.
	Year *int `json:"year,omitempty" yaml:"year,omitempty"`

	// Source is the database the record's table originated from.
	Source SourceDatabase `json:"source" yaml:"source"`

	// Department is the department cell of the source row, if any.
	Department string `json:"department,omitempty" yaml:"department,omitempty"`

	// NormalizedTitle is the comparison key filled in by the title
	// normalizer. Empty until normalization runs.
	NormalizedTitle string `json:"normalized_title,omitempty" yaml:"normalized_title,omitempty"`
}

// DisplayTitle returns the title with a year suffix when the year is known,
// e.g. `Attention Is All You Need (2017)`.
func (r PublicationRecord) DisplayTitle() string {
	if r.Year == nil {
		return r.Title
	}
	return fmt.Sprintf("%s (%d)", r.Title, *r.Year)
}

// AuthorReport is the final per-author output row.
type AuthorReport struct {
	// AuthorName is the first-seen raw spelling of the author's name.
	AuthorName string `json:"author_name" yaml:"author_name"`

	// Department is the department attributed to the author, or "Unknown".
	Department string `json:"department" yaml:"department"`

	// Publications lists the unique display titles in first-seen order.
	Publications []string `json:"publications" yaml:"publications"`

	// PublicationCount is the number of unique publications.
	PublicationCount int `json:"publication_count" yaml:"publication_count"`
}

// NumberedPublications renders the publication list as a numbered,
// newline-separated block for a single spreadsheet cell.
func (r AuthorReport) NumberedPublications() string {
	if len(r.Publications) == 0 {
		return "No publications found"
	}
	out := ""
	for i, p := range r.Publications {
		if i > 0 {
			out += "\n"
		}
		out += fmt.Sprintf("%d. %s", i+1, p)
	}
	return out
}

// RunStatistics summarizes one merge run.
type RunStatistics struct {
	// TotalAuthors is the number of author reports produced.
	TotalAuthors int `json:"total_authors" yaml:"total_authors"`

	// TotalUniquePublications is the sum of publication counts over all
	// author reports.
	TotalUniquePublications int `json:"total_unique_publications" yaml:"total_unique_publications"`

	// DepartmentCount is the number of distinct non-empty departments.
	DepartmentCount int `json:"department_count" yaml:"department_count"`

	// ElapsedDuration is the wall-clock time of the run, e.g. "0.41s".
	ElapsedDuration string `json:"elapsed_duration" yaml:"elapsed_duration"`
}

// DepartmentSummary aggregates author and publication counts for one
// department, for the workbook's summary sheet.
type DepartmentSummary struct {
	Department   string  `json:"department" yaml:"department"`
	Authors      int     `json:"authors" yaml:"authors"`
	Publications int     `json:"publications" yaml:"publications"`
	AvgPerAuthor float64 `json:"avg_publications_per_author" yaml:"avg_publications_per_author"`
}
