// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mergepub

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pubmerge/pkg/types"
)

const (
	// MergedSheet holds one row per author.
	MergedSheet = "Merged Publications"

	// SummarySheet holds per-department aggregates.
	SummarySheet = "Department Summary"
)

// WriteWorkbook writes a merge result to an xlsx workbook at path: the
// merged sheet with each author's numbered publication list in a single
// wrapped cell, and the department summary sheet.
func WriteWorkbook(res *Result, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", MergedSheet); err != nil {
		return fmt.Errorf("renaming sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"366092"}},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
			WrapText:   true,
		},
	})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}
	wrapStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{
			Horizontal: "left",
			Vertical:   "top",
			WrapText:   true,
		},
	})
	if err != nil {
		return fmt.Errorf("creating wrap style: %w", err)
	}

	if err := f.SetSheetRow(MergedSheet, "A1",
		&[]any{"Author", "Publications", "Department", "Total_Publications"}); err != nil {
		return fmt.Errorf("writing header row: %w", err)
	}
	f.SetCellStyle(MergedSheet, "A1", "D1", headerStyle)
	f.SetColWidth(MergedSheet, "A", "A", 30)
	f.SetColWidth(MergedSheet, "B", "B", 120)
	f.SetColWidth(MergedSheet, "C", "C", 35)
	f.SetColWidth(MergedSheet, "D", "D", 18)

	for i, r := range res.Reports {
		row := i + 2
		cell := fmt.Sprintf("A%d", row)
		if err := f.SetSheetRow(MergedSheet, cell, &[]any{
			r.AuthorName, r.NumberedPublications(), r.Department, r.PublicationCount,
		}); err != nil {
			return fmt.Errorf("writing row for %s: %w", r.AuthorName, err)
		}
		f.SetCellStyle(MergedSheet, fmt.Sprintf("B%d", row), fmt.Sprintf("B%d", row), wrapStyle)
	}

	if _, err := f.NewSheet(SummarySheet); err != nil {
		return fmt.Errorf("creating summary sheet: %w", err)
	}
	if err := f.SetSheetRow(SummarySheet, "A1",
		&[]any{"Department", "Authors", "Total_Publications", "Avg_Publications_Per_Author"}); err != nil {
		return fmt.Errorf("writing summary header: %w", err)
	}
	f.SetCellStyle(SummarySheet, "A1", "D1", headerStyle)
	f.SetColWidth(SummarySheet, "A", "A", 35)
	f.SetColWidth(SummarySheet, "B", "D", 22)

	for i, s := range res.Departments {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(SummarySheet, cell, &[]any{
			s.Department, s.Authors, s.Publications, s.AvgPerAuthor,
		}); err != nil {
			return fmt.Errorf("writing summary row for %s: %w", s.Department, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook %s: %w", path, err)
	}
	return nil
}

// WriteStats writes the run statistics sidecar next to the workbook, as
// YAML or JSON.
func WriteStats(stats types.RunStatistics, path, format string) error {
	var data []byte
	var err error

	switch format {
	case "yaml", "":
		data, err = yaml.Marshal(stats)
	case "json":
		data, err = json.MarshalIndent(stats, "", "  ")
	default:
		return fmt.Errorf("unsupported stats format %q: use yaml or json", format)
	}
	if err != nil {
		return fmt.Errorf("marshaling statistics: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing statistics %s: %w", path, err)
	}
	return nil
}
