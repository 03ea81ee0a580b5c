// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pubmerge/internal/faculty"
	"github.com/pdiddy/pubmerge/internal/table"
)

var facultyCmd = &cobra.Command{
	Use:   "faculty",
	Short: "Manage the local faculty registry (import, list, stats)",
	Long: `Faculty maintains a local SQLite registry of faculty members and their
publication counts. Use subcommands to import a merged workbook, list
members, or print registry totals.`,
}

// --- import subcommand ---

var facultyImportCmd = &cobra.Command{
	Use:   "import [workbook]",
	Short: "Import a merged workbook into the registry",
	Long: `Import reads the merged publications sheet of a workbook produced by the
merge command and applies it to the registry: rows matching an existing
member by case-insensitive name update its publication count, the rest
create new members.`,
	Args: cobra.ExactArgs(1),
	RunE: runFacultyImport,
}

func runFacultyImport(cmd *cobra.Command, args []string) error {
	store, err := openRegistry(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	t, err := table.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading report workbook: %w", err)
	}
	reports, err := faculty.ParseReportTable(t)
	if err != nil {
		return err
	}

	_, err = store.Import(context.Background(), reports, os.Stdout)
	return err
}

// --- list subcommand ---

var facultyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registry members and their publication counts",
	RunE:  runFacultyList,
}

func runFacultyList(cmd *cobra.Command, args []string) error {
	store, err := openRegistry(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	members, err := store.List(context.Background())
	if err != nil {
		return err
	}
	if len(members) == 0 {
		fmt.Println("Registry is empty.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-30s  %-35s  %s\n", "Name", "Department", "Publications")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 80))
	for _, m := range members {
		fmt.Fprintf(os.Stdout, "%-30s  %-35s  %d\n", m.Name, m.Department, m.PublicationCount)
	}
	fmt.Fprintf(os.Stdout, "\n%d members\n", len(members))
	return nil
}

// --- stats subcommand ---

var facultyStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print registry totals",
	RunE:  runFacultyStats,
}

func runFacultyStats(cmd *cobra.Command, args []string) error {
	store, err := openRegistry(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	st, err := store.Stats(context.Background())
	if err != nil {
		return err
	}
	fmt.Printf("Faculty:      %d\n", st.TotalFaculty)
	fmt.Printf("Publications: %d\n", st.TotalPublications)
	fmt.Printf("Departments:  %d\n", st.Departments)
	return nil
}

// --- shared helpers ---

func openRegistry(cmd *cobra.Command) (*faculty.Store, error) {
	dbPath, _ := cmd.Flags().GetString("db")
	if !cmd.Flags().Changed("db") {
		if v := viper.GetString("registry.db_path"); v != "" {
			dbPath = v
		}
	}
	return faculty.Open(dbPath)
}

func init() {
	facultyCmd.PersistentFlags().String("db", "faculty.db", "registry SQLite database file")

	facultyCmd.AddCommand(facultyImportCmd)
	facultyCmd.AddCommand(facultyListCmd)
	facultyCmd.AddCommand(facultyStatsCmd)

	rootCmd.AddCommand(facultyCmd)
}
