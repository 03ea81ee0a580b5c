// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package faculty

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/pubmerge/internal/table"
	"github.com/pdiddy/pubmerge/pkg/types"
)

// numberingRe matches the "1. " prefixes of a numbered publication cell.
var numberingRe = regexp.MustCompile(`^\d+\.\s*`)

// ParseReportTable converts a decoded merged-workbook table back into
// author reports for registry import. The merged sheet's own headers are
// fixed, so columns are matched by exact name rather than the resolver's
// keyword passes.
func ParseReportTable(t *table.RawTable) ([]types.AuthorReport, error) {
	author, dept, count, pubs := -1, -1, -1, -1
	for i, h := range t.Headers {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "author":
			author = i
		case "department":
			dept = i
		case "total_publications":
			count = i
		case "publications":
			pubs = i
		}
	}
	if author < 0 {
		return nil, fmt.Errorf("%s is not a merged report: no Author column", t.Name)
	}

	var reports []types.AuthorReport
	for i := range t.Rows {
		name := t.Cell(i, author)
		if name == "" || strings.EqualFold(name, "author") {
			continue
		}

		r := types.AuthorReport{
			AuthorName: name,
			Department: t.Cell(i, dept),
		}
		if r.Department == "" {
			r.Department = "Unknown"
		}

		if c := t.Cell(i, count); c != "" {
			if n, err := strconv.Atoi(c); err == nil {
				r.PublicationCount = n
			}
		}

		if cell := t.Cell(i, pubs); cell != "" && cell != "No publications found" {
			for _, line := range strings.Split(cell, "\n") {
				line = numberingRe.ReplaceAllString(strings.TrimSpace(line), "")
				if line != "" {
					r.Publications = append(r.Publications, line)
				}
			}
		}
		if r.PublicationCount == 0 {
			r.PublicationCount = len(r.Publications)
		}

		reports = append(reports, r)
	}
	return reports, nil
}
