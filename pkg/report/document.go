package report

import (
	"encoding/json"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sfindeisen/source-tree-stats/pkg/logger"
	"github.com/sfindeisen/source-tree-stats/pkg/stats"
)

// row represents one directory in JSON/YAML output
type row struct {
	Path          string `json:"path" yaml:"path"`
	Files         int    `json:"files" yaml:"files"`
	Lines         int    `json:"lines" yaml:"lines"`
	NonEmptyLines int    `json:"nonEmptyLines" yaml:"nonEmptyLines"`
	AvgLines      *int   `json:"avgLinesPerFile,omitempty" yaml:"avgLinesPerFile,omitempty"`
}

// document represents the complete structured output
type document struct {
	Root        string         `json:"root" yaml:"root"`
	Directories []row          `json:"directories" yaml:"directories"`
	Totals      stats.DirStats `json:"totals" yaml:"totals"`
	ElapsedMS   int64          `json:"elapsedMilliseconds" yaml:"elapsedMilliseconds"`
	Generated   time.Time      `json:"generated" yaml:"generated"`
}

func (r *renderer) buildDocument(index stats.Index, root string, elapsed time.Duration) *document {
	names := r.displayNames(index, root)

	doc := &document{
		Root:        root,
		Directories: make([]row, 0, len(index)),
		Totals:      index[root],
		ElapsedMS:   elapsed.Milliseconds(),
		Generated:   time.Now(),
	}

	for _, path := range index.Paths() {
		s := index[path]

		item := row{
			Path:          names[path],
			Files:         s.Files,
			Lines:         s.Lines,
			NonEmptyLines: s.NonEmpty,
		}

		if avg, ok := s.AvgLinesPerFile(); ok {
			item.AvgLines = &avg
		}

		doc.Directories = append(doc.Directories, item)
	}

	return doc
}

func (r *renderer) renderJSON(index stats.Index, root string, elapsed time.Duration) (string, error) {
	r.log.Debug("Formatting JSON output")

	bytes, err := json.MarshalIndent(r.buildDocument(index, root, elapsed), "", "  ")
	if err != nil {
		r.log.WithFields(logger.Fields{
			"error": err,
		}).Error("Failed to marshal JSON")

		return "", err
	}

	return string(bytes), nil
}

func (r *renderer) renderYAML(index stats.Index, root string, elapsed time.Duration) (string, error) {
	r.log.Debug("Formatting YAML output")

	bytes, err := yaml.Marshal(r.buildDocument(index, root, elapsed))
	if err != nil {
		r.log.WithFields(logger.Fields{
			"error": err,
		}).Error("Failed to marshal YAML")

		return "", err
	}

	return string(bytes), nil
}
