// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mergepub

import (
	"strings"

	"github.com/pdiddy/pubmerge/pkg/types"
)

// AuthorKey returns the canonical grouping identity for an author name:
// lowercased and whitespace-trimmed. Matching is exact; name variants such
// as "A. Singh" and "Amit Singh" form separate groups.
func AuthorKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// UniquePublication is one deduplicated publication inside a group. Title
// keeps the first-seen original form; Sources unions every database that
// reported it.
type UniquePublication struct {
	Title   string
	Year    *int
	Sources []types.SourceDatabase
}

// Display renders the publication for output, appending the year unless
// the title already ends with a year marker of its own.
func (p UniquePublication) Display() string {
	if p.Year == nil || trailingYearRe.MatchString(p.Title) {
		return p.Title
	}
	rec := types.PublicationRecord{Title: p.Title, Year: p.Year}
	return rec.DisplayTitle()
}

// DedupGroup collects the unique publications for one AuthorKey.
// Normalized titles within a group are pairwise distinct.
type DedupGroup struct {
	// AuthorName is the first-seen raw spelling of the name.
	AuthorName string

	// Department comes from the source row that established the group.
	Department string

	Publications []UniquePublication

	seen map[string]int // normalized title → index into Publications
}

// DedupResult is the deduplicator's output: groups in first-seen author
// order, plus merge counters.
type DedupResult struct {
	Groups      []*DedupGroup
	DupsRemoved int

	byKey map[string]*DedupGroup
}

// Group returns the group for an author name, or nil.
func (r *DedupResult) Group(name string) *DedupGroup {
	return r.byKey[AuthorKey(name)]
}

// Dedupe merges filtered records from both sources into per-author groups.
// Records must arrive in stable input order, Scopus before WoS, so that
// first-seen display forms favor the Scopus spelling. For a title already
// seen in a group, only the source set grows; the display form is never
// overwritten.
func Dedupe(records []types.PublicationRecord, unknownDept string) *DedupResult {
	res := &DedupResult{byKey: make(map[string]*DedupGroup)}

	for _, rec := range records {
		key := AuthorKey(rec.Author)
		if key == "" {
			continue
		}

		g, ok := res.byKey[key]
		if !ok {
			dept := rec.Department
			if dept == "" {
				dept = unknownDept
			}
			g = &DedupGroup{
				AuthorName: rec.Author,
				Department: dept,
				seen:       make(map[string]int),
			}
			res.byKey[key] = g
			res.Groups = append(res.Groups, g)
		}

		if idx, dup := g.seen[rec.NormalizedTitle]; dup {
			addSource(&g.Publications[idx], rec.Source)
			res.DupsRemoved++
			continue
		}
		g.seen[rec.NormalizedTitle] = len(g.Publications)
		g.Publications = append(g.Publications, UniquePublication{
			Title:   rec.Title,
			Year:    rec.Year,
			Sources: []types.SourceDatabase{rec.Source},
		})
	}
	return res
}

func addSource(p *UniquePublication, src types.SourceDatabase) {
	for _, s := range p.Sources {
		if s == src {
			return
		}
	}
	p.Sources = append(p.Sources, src)
}
