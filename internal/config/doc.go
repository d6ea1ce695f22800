// Package config provides configuration management for source-tree-stats.
// It handles environment variables, defaults, and validation of all
// configuration parameters.
//
// # Configuration Loading
//
// To load the configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Environment Variables
//
// The following environment variables are supported:
//
//	STS_SUFFIXES      Comma-separated filename suffix filter (e.g. ".java,.xml")
//	STS_OUTPUT        Output format: table|json|yaml
//	STS_OUTPUT_FILE   Output file path (empty for stdout)
//	STS_SKIP_ERRORS   Skip unreadable entries instead of aborting (true/false)
//	STS_NO_COLOR      Disable colored output (true/false)
//	STS_VERBOSE       Verbosity level (number of 'v's)
//
// # Configuration Validation
//
// The package performs validation on all configuration values:
//   - Output format must be one of: table, json, yaml
//   - Verbosity must be non-negative
//
// Command-line flags take precedence over environment variables; the
// merge happens in the command layer.
package config
