/*
Package report renders a populated stats index as a human-readable table
or as JSON/YAML. It strips the common root prefix from directory paths
for display and supports colored output and a summary block.

Basic usage:

	renderer := report.NewRenderer(report.Config{
		Format:      report.FormatTable,
		WithColors:  true,
		WithSummary: true,
	}, log)

	out, err := renderer.Render(index, root, elapsed)
*/
package report

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/sfindeisen/source-tree-stats/pkg/logger"
	"github.com/sfindeisen/source-tree-stats/pkg/stats"
)

// Format represents the output format type
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// Config holds renderer configuration
type Config struct {
	Format      Format
	WithColors  bool
	WithSummary bool
}

// Renderer defines the interface for report rendering
type Renderer interface {
	// Render produces the report for a populated index. root is the
	// original walk root, elapsed the walk duration for the summary.
	Render(index stats.Index, root string, elapsed time.Duration) (string, error)
}

// renderer implements the Renderer interface
type renderer struct {
	config Config
	log    logger.Logger
}

// NewRenderer creates a new renderer instance
func NewRenderer(config Config, log logger.Logger) Renderer {
	return &renderer{
		config: config,
		log:    log,
	}
}

// Render renders the index according to the configured format.
func (r *renderer) Render(index stats.Index, root string, elapsed time.Duration) (string, error) {
	if index == nil {
		msg := "nil index provided for rendering"
		r.log.Error(msg)

		return "", fmt.Errorf("%s", msg)
	}

	r.log.WithFields(logger.Fields{
		"format":      r.config.Format,
		"directories": len(index),
		"withColors":  r.config.WithColors,
	}).Debug("Starting render operation")

	root = filepath.Clean(root)

	switch r.config.Format {
	case FormatTable:
		return r.renderTable(index, root, elapsed)
	case FormatJSON:
		return r.renderJSON(index, root, elapsed)
	case FormatYAML:
		return r.renderYAML(index, root, elapsed)
	default:
		msg := fmt.Sprintf("unsupported format: %s", r.config.Format)
		r.log.Error(msg)

		return "", fmt.Errorf("%s", msg)
	}
}

// displayNames maps every index key to its display form. Keys are shown
// relative to root only when every key is root itself or sits under it
// on a directory boundary; otherwise full paths are kept.
func (r *renderer) displayNames(index stats.Index, root string) map[string]string {
	prefix := root + string(filepath.Separator)

	stripped := true
	for path := range index {
		if path != root && !strings.HasPrefix(path, prefix) {
			stripped = false

			break
		}
	}

	if !stripped {
		r.log.WithFields(logger.Fields{
			"root": root,
		}).Debug("Index keys diverge from root, showing full paths")
	}

	names := make(map[string]string, len(index))
	for path := range index {
		switch {
		case !stripped:
			names[path] = path
		case path == root:
			names[path] = "."
		default:
			names[path] = strings.TrimPrefix(path, prefix)
		}
	}

	return names
}
