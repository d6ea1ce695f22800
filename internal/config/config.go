/*
Package config provides configuration management for source-tree-stats.
It handles environment variables and validation of all configuration
parameters; command-line flags override the loaded values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Environment Variables:

	STS_SUFFIXES      Comma-separated filename suffix filter
	STS_OUTPUT        Output format: table|json|yaml
	STS_OUTPUT_FILE   Output file path (empty for stdout)
	STS_SKIP_ERRORS   Skip unreadable files/directories instead of aborting
	STS_NO_COLOR      Disable colored output
	STS_VERBOSE       Verbosity level ("vv" or a plain integer)

Default Values:

	Output:      "table"
	SkipErrors:  false (fail-fast on the first I/O error)
*/
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration parameters for the application
type Config struct {
	// Suffixes is the raw comma-separated filename suffix filter.
	// Empty means every file is counted.
	Suffixes string

	// Output specifies the output format (table, json, or yaml)
	Output string

	// OutputFile is the path to write the report (empty for stdout)
	OutputFile string

	// SkipErrors downgrades unreadable files and directories to
	// warnings instead of aborting the run
	SkipErrors bool

	// NoColor disables colored output
	NoColor bool

	// Verbose sets the verbosity level
	Verbose int
}

// validOutputFormats contains the list of supported output formats
var validOutputFormats = map[string]bool{
	"table": true,
	"json":  true,
	"yaml":  true,
}

// Load reads configuration from environment variables and validates it
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("suffixes", "")
	v.SetDefault("output", "table")
	v.SetDefault("output_file", "")
	v.SetDefault("skip_errors", false)
	v.SetDefault("no_color", false)
	v.SetDefault("verbose", 0)

	v.SetEnvPrefix("STS")
	v.AutomaticEnv()

	v.BindEnv("suffixes")
	v.BindEnv("output")
	v.BindEnv("output_file")
	v.BindEnv("skip_errors")
	v.BindEnv("no_color")
	v.BindEnv("verbose")

	// Process verbosity level from string of 'v's; plain integers
	// pass through untouched
	if verboseStr := v.GetString("verbose"); strings.Contains(verboseStr, "v") {
		v.Set("verbose", strings.Count(verboseStr, "v"))
	}

	cfg := Config{
		Suffixes:   strings.TrimSpace(v.GetString("suffixes")),
		Output:     v.GetString("output"),
		OutputFile: v.GetString("output_file"),
		SkipErrors: v.GetBool("skip_errors"),
		NoColor:    v.GetBool("no_color"),
		Verbose:    v.GetInt("verbose"),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c Config) Validate() error {
	if !validOutputFormats[c.Output] {
		return fmt.Errorf("invalid output format: must be one of [table json yaml]")
	}

	if c.Verbose < 0 {
		return fmt.Errorf("verbosity must be non-negative")
	}

	return nil
}

// String returns a string representation of the configuration
func (c Config) String() string {
	return fmt.Sprintf(
		"Config{Suffixes: %q, Output: %s, OutputFile: %s, SkipErrors: %v, "+
			"NoColor: %v, Verbose: %d}",
		c.Suffixes, c.Output, c.OutputFile, c.SkipErrors,
		c.NoColor, c.Verbose,
	)
}
