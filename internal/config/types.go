package config

// OutputFormat represents the supported output formats
type OutputFormat string

const (
	// OutputFormatTable represents the aligned text table format
	OutputFormatTable OutputFormat = "table"

	// OutputFormatJSON represents the JSON output format
	OutputFormatJSON OutputFormat = "json"

	// OutputFormatYAML represents the YAML output format
	OutputFormatYAML OutputFormat = "yaml"
)
