// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package faculty

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pubmerge/internal/table"
)

func TestParseReportTable(t *testing.T) {
	tbl := &table.RawTable{
		Name:    "merged.xlsx",
		Headers: []string{"Author", "Publications", "Department", "Total_Publications"},
		Rows: [][]string{
			{"Singh, A.", "1. Alpha (2021)\n2. Beta", "Computer Science", "2"},
			{"Rao, B.", "No publications found", "", "0"},
			{"", "1. Orphan", "Physics", "1"},
		},
	}

	reports, err := ParseReportTable(tbl)
	require.NoError(t, err)
	require.Len(t, reports, 2)

	assert.Equal(t, "Singh, A.", reports[0].AuthorName)
	assert.Equal(t, "Computer Science", reports[0].Department)
	assert.Equal(t, []string{"Alpha (2021)", "Beta"}, reports[0].Publications)
	assert.Equal(t, 2, reports[0].PublicationCount)

	assert.Equal(t, "Rao, B.", reports[1].AuthorName)
	assert.Equal(t, "Unknown", reports[1].Department)
	assert.Empty(t, reports[1].Publications)
	assert.Equal(t, 0, reports[1].PublicationCount)
}

func TestParseReportTableCountFallback(t *testing.T) {
	// No Total_Publications column: the count comes from the list itself.
	tbl := &table.RawTable{
		Name:    "merged.csv",
		Headers: []string{"Author", "Publications"},
		Rows:    [][]string{{"Verma, C.", "1. X\n2. Y\n3. Z"}},
	}

	reports, err := ParseReportTable(tbl)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, 3, reports[0].PublicationCount)
}

func TestParseReportTableRequiresAuthorColumn(t *testing.T) {
	tbl := &table.RawTable{
		Name:    "random.csv",
		Headers: []string{"Foo", "Bar"},
	}

	_, err := ParseReportTable(tbl)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no Author column")
}
