// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mergepub

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/pdiddy/pubmerge/pkg/types"
)

// BuildReports assembles one AuthorReport per group, in the first-seen
// order established during deduplication, and computes run-level
// statistics. Publication lists keep their first-seen order; output is
// deterministic for identical inputs.
func BuildReports(res *DedupResult, elapsed time.Duration) ([]types.AuthorReport, types.RunStatistics) {
	reports := make([]types.AuthorReport, 0, len(res.Groups))
	totalPubs := 0
	departments := make(map[string]bool)

	for _, g := range res.Groups {
		pubs := make([]string, len(g.Publications))
		for i, p := range g.Publications {
			pubs[i] = p.Display()
		}
		reports = append(reports, types.AuthorReport{
			AuthorName:       g.AuthorName,
			Department:       g.Department,
			Publications:     pubs,
			PublicationCount: len(pubs),
		})
		totalPubs += len(pubs)
		if g.Department != "" {
			departments[g.Department] = true
		}
	}

	stats := types.RunStatistics{
		TotalAuthors:            len(reports),
		TotalUniquePublications: totalPubs,
		DepartmentCount:         len(departments),
		ElapsedDuration:         fmt.Sprintf("%.2fs", elapsed.Seconds()),
	}
	return reports, stats
}

// DepartmentSummaries aggregates author and publication counts per
// department, sorted by department name.
func DepartmentSummaries(reports []types.AuthorReport) []types.DepartmentSummary {
	byDept := make(map[string]*types.DepartmentSummary)

	for _, r := range reports {
		s, ok := byDept[r.Department]
		if !ok {
			s = &types.DepartmentSummary{Department: r.Department}
			byDept[r.Department] = s
		}
		s.Authors++
		s.Publications += r.PublicationCount
	}

	summaries := make([]types.DepartmentSummary, 0, len(byDept))
	for _, s := range byDept {
		if s.Authors > 0 {
			s.AvgPerAuthor = math.Round(float64(s.Publications)/float64(s.Authors)*100) / 100
		}
		summaries = append(summaries, *s)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Department < summaries[j].Department
	})
	return summaries
}
