package types

// MergeConfig holds settings for the merge pipeline.
type MergeConfig struct {
	// OutputPath is the destination for the merged workbook
	// (default "merged_publications.xlsx").
	OutputPath string `json:"output_path" yaml:"output_path"`

	// StatsFormat selects the statistics sidecar format: yaml or json.
	StatsFormat string `json:"stats_format" yaml:"stats_format"`

	// UnknownDepartment is the label used when a source row carries no
	// department value (default "Unknown").
	UnknownDepartment string `json:"unknown_department" yaml:"unknown_department"`
}

// RegistryConfig holds settings for the faculty registry store.
type RegistryConfig struct {
	// DBPath is the SQLite database file (default "faculty.db").
	DBPath string `json:"db_path" yaml:"db_path"`
}

// PipelineConfig groups all stage configurations.
type PipelineConfig struct {
	Merge    MergeConfig    `json:"merge" yaml:"merge"`
	Registry RegistryConfig `json:"registry" yaml:"registry"`
}

// DefaultMergeConfig returns the merge settings used when no config file
// or flags override them.
func DefaultMergeConfig() MergeConfig {
	return MergeConfig{
		OutputPath:        "merged_publications.xlsx",
		StatsFormat:       "yaml",
		UnknownDepartment: "Unknown",
	}
}
