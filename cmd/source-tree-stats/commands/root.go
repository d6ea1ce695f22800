/*
Package commands implements the CLI command structure for
source-tree-stats. The root command runs the walk itself; the only
subcommand prints version information.
*/
package commands

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/sfindeisen/source-tree-stats/cmd/source-tree-stats/app"
	"github.com/sfindeisen/source-tree-stats/internal/config"
)

// rootOptions holds command-line options for the root command
type rootOptions struct {
	suffixes   string
	output     string
	outputFile string
	skipErrors bool
	noColor    bool
	verbosity  int
}

// NewRootCommand creates the root command for the application
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "source-tree-stats [flags] <path>",
		Short: "Per-directory line statistics for a source tree",
		Long: heredoc.Doc(`
			source-tree-stats walks a directory tree and reports, per directory,
			how many files it contains and how many total and non-empty lines
			they hold, both for the directory alone and including all of its
			subdirectories.

			Files can be restricted to a comma-separated list of filename
			suffixes, for example ".java,.xml". Without a filter every regular
			file is counted. Symlinks and other special entries are ignored.

			By default the first unreadable file or directory aborts the run
			without printing a report; --skip-errors downgrades those to
			warnings and leaves the affected entries uncounted.
		`),
		Example: heredoc.Doc(`
			# Count every file under the current directory
			source-tree-stats .

			# Only Java and XML files, with verbose tracing
			source-tree-stats -s .java,.xml -v /path/to/project

			# JSON report written to a file
			source-tree-stats -o json -f report.json /path/to/project
		`),
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				// Missing path prints usage and exits successfully.
				return cmd.Help()
			}

			return runWalk(cmd, args[0], opts)
		},
	}

	rootCmd.Flags().StringVarP(&opts.suffixes, "suffixes", "s", "",
		"comma-separated filename suffix filter (empty counts everything)")
	rootCmd.Flags().StringVarP(&opts.output, "output", "o", "table",
		"output format: table|json|yaml")
	rootCmd.Flags().StringVarP(&opts.outputFile, "output-file", "f", "",
		"write the report to a file instead of stdout")
	rootCmd.Flags().BoolVar(&opts.skipErrors, "skip-errors", false,
		"skip unreadable files and directories instead of aborting")
	rootCmd.Flags().BoolVar(&opts.noColor, "no-color", false,
		"disable colored output")
	rootCmd.Flags().CountVarP(&opts.verbosity, "verbose", "v",
		"verbose output (can be used multiple times)")

	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// runWalk merges flags over the environment configuration and runs the
// application.
func runWalk(cmd *cobra.Command, path string, opts *rootOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("suffixes") {
		cfg.Suffixes = opts.suffixes
	}

	if flags.Changed("output") {
		cfg.Output = opts.output
	}

	if flags.Changed("output-file") {
		cfg.OutputFile = opts.outputFile
	}

	if flags.Changed("skip-errors") {
		cfg.SkipErrors = opts.skipErrors
	}

	if flags.Changed("no-color") {
		cfg.NoColor = opts.noColor
	}

	if opts.verbosity > 0 {
		cfg.Verbose = opts.verbosity
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	return app.New(&cfg).Run(path)
}
