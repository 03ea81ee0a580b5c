// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mergepub reconciles per-author publication lists exported
// independently by Scopus and Web of Science into one deduplicated report.
// The pipeline runs fixed stages in order (column resolution, record
// extraction, title normalization, inflation filtering, cross-source
// deduplication, report building), each consuming only the previous
// stage's output. A run holds all of its state locally, so concurrent
// invocations are fully isolated.
package mergepub

import (
	"fmt"
	"io"
	"time"

	"github.com/pdiddy/pubmerge/internal/table"
	"github.com/pdiddy/pubmerge/pkg/types"
)

// Input holds the two decoded source tables for one run.
type Input struct {
	Scopus *table.RawTable
	WoS    *table.RawTable
}

// Result is the complete output of one merge run.
type Result struct {
	Reports     []types.AuthorReport
	Departments []types.DepartmentSummary
	Stats       types.RunStatistics

	// Extracted counts records after multi-author expansion, before
	// filtering.
	Extracted int

	// Inflation counts records dropped by the inflation filter.
	Inflation int

	// DupsRemoved counts records collapsed into an existing publication.
	DupsRemoved int
}

// Run executes the merge-and-deduplication pipeline over one pair of
// source tables, writing per-stage progress to w. A failure to resolve an
// author column in either table aborts the run; row-level gaps degrade
// in place and never surface as errors.
func Run(in Input, cfg types.MergeConfig, w io.Writer) (*Result, error) {
	start := time.Now()

	scopusRecs, err := extractTable(in.Scopus, types.SourceScopus, w)
	if err != nil {
		return nil, err
	}
	wosRecs, err := extractTable(in.WoS, types.SourceWoS, w)
	if err != nil {
		return nil, err
	}

	// Scopus before WoS: first-seen display forms favor Scopus.
	records := append(scopusRecs, wosRecs...)

	kept, dropped := normalizeAndFilter(records)
	if dropped > 0 {
		fmt.Fprintf(w, "dropped %d inflation entries\n", dropped)
	}

	unknown := cfg.UnknownDepartment
	if unknown == "" {
		unknown = "Unknown"
	}
	deduped := Dedupe(kept, unknown)

	reports, stats := BuildReports(deduped, time.Since(start))

	fmt.Fprintf(w, "\nMerged %d authors: %d unique publications, %d duplicates removed, %d departments (%s)\n",
		stats.TotalAuthors, stats.TotalUniquePublications, deduped.DupsRemoved,
		stats.DepartmentCount, stats.ElapsedDuration)

	return &Result{
		Reports:     reports,
		Departments: DepartmentSummaries(reports),
		Stats:       stats,
		Extracted:   len(records),
		Inflation:   dropped,
		DupsRemoved: deduped.DupsRemoved,
	}, nil
}

// extractTable resolves one table's columns and pulls its records.
func extractTable(t *table.RawTable, source types.SourceDatabase, w io.Writer) ([]types.PublicationRecord, error) {
	roles, err := table.ResolveColumns(t)
	if err != nil {
		return nil, fmt.Errorf("resolving %s columns: %w", source, err)
	}
	recs := ExtractRecords(t, roles, source)
	fmt.Fprintf(w, "extracted %d records from %s (%d rows)\n",
		len(recs), source, len(t.Rows)-roles.DataStart)
	return recs, nil
}

// normalizeAndFilter fills each record's comparison key and drops
// inflation entries before they can reach the deduplicator.
func normalizeAndFilter(records []types.PublicationRecord) (kept []types.PublicationRecord, dropped int) {
	for _, r := range records {
		r.NormalizedTitle = NormalizeTitle(r.Title)
		if !IsMeaningful(r.NormalizedTitle) {
			dropped++
			continue
		}
		kept = append(kept, r)
	}
	return kept, dropped
}
