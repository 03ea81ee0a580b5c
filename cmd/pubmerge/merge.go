// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pubmerge/internal/mergepub"
	"github.com/pdiddy/pubmerge/internal/table"
	"github.com/pdiddy/pubmerge/pkg/types"
)

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge Scopus and WoS exports into one deduplicated workbook",
	Long: `Merge reads a Scopus export and a Web of Science export (.xlsx or .csv),
expands multi-author rows, drops inflation entries, deduplicates titles
across both sources per author, and writes a merged workbook with one row
per author plus a department summary sheet.

Run statistics can be written alongside the workbook with --stats.`,
	RunE: runMerge,
}

func runMerge(cmd *cobra.Command, args []string) error {
	scopusPath, _ := cmd.Flags().GetString("scopus")
	wosPath, _ := cmd.Flags().GetString("wos")
	cfg := mergeConfigFromFlags(cmd)

	scopusTbl, err := table.ReadFile(scopusPath)
	if err != nil {
		return fmt.Errorf("reading scopus export: %w", err)
	}
	wosTbl, err := table.ReadFile(wosPath)
	if err != nil {
		return fmt.Errorf("reading wos export: %w", err)
	}

	res, err := mergepub.Run(mergepub.Input{Scopus: scopusTbl, WoS: wosTbl}, cfg, os.Stdout)
	if err != nil {
		return err
	}

	if err := mergepub.WriteWorkbook(res, cfg.OutputPath); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", cfg.OutputPath)

	statsPath, _ := cmd.Flags().GetString("stats")
	if statsPath != "" {
		if err := mergepub.WriteStats(res.Stats, statsPath, cfg.StatsFormat); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", statsPath)
	}
	return nil
}

// mergeConfigFromFlags builds the merge config from defaults, the config
// file, and flags, in increasing precedence.
func mergeConfigFromFlags(cmd *cobra.Command) types.MergeConfig {
	cfg := types.DefaultMergeConfig()

	if v := viper.GetString("merge.output_path"); v != "" {
		cfg.OutputPath = v
	}
	if v := viper.GetString("merge.stats_format"); v != "" {
		cfg.StatsFormat = v
	}
	if v := viper.GetString("merge.unknown_department"); v != "" {
		cfg.UnknownDepartment = v
	}

	if cmd.Flags().Changed("output") {
		cfg.OutputPath, _ = cmd.Flags().GetString("output")
	}
	if cmd.Flags().Changed("stats-format") {
		v, _ := cmd.Flags().GetString("stats-format")
		cfg.StatsFormat = strings.ToLower(v)
	}
	return cfg
}

func init() {
	mergeCmd.Flags().String("scopus", "", "path to the Scopus export (.xlsx or .csv)")
	mergeCmd.Flags().String("wos", "", "path to the Web of Science export (.xlsx or .csv)")
	mergeCmd.Flags().String("output", "merged_publications.xlsx", "path for the merged workbook")
	mergeCmd.Flags().String("stats", "", "also write run statistics to this path")
	mergeCmd.Flags().String("stats-format", "yaml", "statistics format: yaml or json")
	mergeCmd.MarkFlagRequired("scopus")
	mergeCmd.MarkFlagRequired("wos")

	rootCmd.AddCommand(mergeCmd)
}
