/*
Package app wires the application components together: logger, suffix
filter, tree walker, and report renderer. It owns the run lifecycle from
configuration to written output.

Usage:

	application := app.New(cfg)
	if err := application.Run(path); err != nil {
	    // fatal, no report was produced
	}
*/
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"

	"github.com/sfindeisen/source-tree-stats/internal/config"
	"github.com/sfindeisen/source-tree-stats/pkg/filter"
	"github.com/sfindeisen/source-tree-stats/pkg/logger"
	"github.com/sfindeisen/source-tree-stats/pkg/report"
	"github.com/sfindeisen/source-tree-stats/pkg/walker"
)

// App represents the main application container
type App struct {
	config *config.Config
	log    logger.Logger
}

// New creates a new application instance
func New(cfg *config.Config) *App {
	app := &App{
		config: cfg,
		log: logger.NewLogger(logger.Config{
			Verbosity: cfg.Verbose,
		}),
	}

	app.log.WithFields(logger.Fields{
		"suffixes": cfg.Suffixes,
		"output":   cfg.Output,
		"verbose":  cfg.Verbose,
	}).Debug("Application initialized")

	return app
}

// Run walks the tree rooted at path and writes the rendered report.
// Any I/O error during the walk is fatal and no report is produced.
func (a *App) Run(path string) error {
	path = filepath.Clean(path)

	set := filter.New(a.config.Suffixes, a.log)

	w := walker.New(afero.NewOsFs(), set, a.log, walker.Options{
		SkipErrors: a.config.SkipErrors,
	})

	start := time.Now()

	index, err := w.Walk(path)
	if err != nil {
		return fmt.Errorf("walk operation failed: %w", err)
	}

	elapsed := time.Since(start)

	renderer := report.NewRenderer(report.Config{
		Format:      report.Format(a.config.Output),
		WithColors:  a.useColors(),
		WithSummary: true,
	}, a.log)

	out, err := renderer.Render(index, path, elapsed)
	if err != nil {
		return fmt.Errorf("report rendering failed: %w", err)
	}

	return a.writeOutput(out)
}

// useColors reports whether table output should be colored. Colors are
// disabled explicitly, when writing to a file, and on non-terminals.
func (a *App) useColors() bool {
	if a.config.NoColor || a.config.OutputFile != "" {
		return false
	}

	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// writeOutput writes the rendered report to stdout or the configured file.
func (a *App) writeOutput(content string) error {
	if a.config.OutputFile == "" {
		_, err := fmt.Fprintln(os.Stdout, content)

		return err
	}

	if err := os.WriteFile(a.config.OutputFile, []byte(content), 0644); err != nil {
		a.log.WithFields(logger.Fields{
			"error": err,
			"path":  a.config.OutputFile,
		}).Error("Failed to write output file")

		return fmt.Errorf("failed to write output file: %w", err)
	}

	a.log.WithFields(logger.Fields{
		"path": a.config.OutputFile,
	}).Info("Output written successfully")

	return nil
}
