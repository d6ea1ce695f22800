/*
Package walker implements the recursive tree accumulator at the heart of
source-tree-stats.

The walker performs a single depth-first traversal of a directory tree.
For every directory it produces local stats (files directly inside) and
cumulative stats (local plus all descendants), recording the cumulative
stats of every visited directory in a stats.Index keyed by path.

Basic usage:

	set := filter.New(".go", log)
	w := walker.New(afero.NewOsFs(), set, log, walker.Options{})
	index, err := w.Walk("/path/to/tree")
*/
package walker

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/sfindeisen/source-tree-stats/pkg/counter"
	"github.com/sfindeisen/source-tree-stats/pkg/filter"
	"github.com/sfindeisen/source-tree-stats/pkg/logger"
	"github.com/sfindeisen/source-tree-stats/pkg/stats"
)

// Walker defines the interface for directory tree accumulation.
type Walker interface {
	// Walk traverses the tree rooted at root and returns an index
	// mapping every visited directory to its cumulative stats.
	Walk(root string) (stats.Index, error)
}

// Options controls walker behavior beyond the suffix filter.
type Options struct {
	// SkipErrors downgrades unreadable files and directories from fatal
	// errors to warnings, leaving them uncounted. The default (false)
	// aborts the whole walk on the first I/O error.
	SkipErrors bool
}

// walker implements the Walker interface
type walker struct {
	fs     afero.Fs
	filter *filter.SuffixSet
	log    logger.Logger
	opts   Options
}

// New creates a new Walker using the given filesystem and suffix filter.
func New(fs afero.Fs, set *filter.SuffixSet, log logger.Logger, opts Options) Walker {
	return &walker{
		fs:     fs,
		filter: set,
		log:    log,
		opts:   opts,
	}
}

// Walk performs the traversal. The returned index is complete: it holds
// one entry per visited directory, including the root and directories
// without any counted files. Under the default fail-fast policy no index
// is returned when any file or directory cannot be read.
func (w *walker) Walk(root string) (stats.Index, error) {
	root = filepath.Clean(root)

	w.log.WithFields(logger.Fields{
		"path":       root,
		"suffixes":   w.filter.Suffixes(),
		"skipErrors": w.opts.SkipErrors,
	}).Info("Starting directory walk")

	info, err := w.fs.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("accessing root directory %s: %w", root, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("path %s is not a directory", root)
	}

	index := stats.NewIndex()

	cumulative, _, err := w.walkDir(index, 0, root)
	if err != nil {
		w.log.WithFields(logger.Fields{
			"error": err,
		}).Error("Directory walk failed")

		return nil, err
	}

	w.log.WithFields(logger.Fields{
		"directories":   len(index),
		"files":         cumulative.Files,
		"lines":         cumulative.Lines,
		"nonEmptyLines": cumulative.NonEmpty,
	}).Info("Directory walk completed")

	return index, nil
}

// walkDir recursively accumulates one directory. It returns the
// directory's cumulative stats (local plus all descendants) and its
// local stats (directly contained files only).
func (w *walker) walkDir(index stats.Index, depth int, dir string) (cumulative, local stats.DirStats, err error) {
	w.log.WithFields(logger.Fields{
		"path":  dir,
		"depth": depth,
	}).Debug("Entering directory")

	// Reserve the entry up front so directories without counted files
	// still appear in the index.
	index[dir] = stats.DirStats{}

	entries, err := afero.ReadDir(w.fs, dir)
	if err != nil {
		if w.opts.SkipErrors {
			w.log.WithFields(logger.Fields{
				"error": err,
				"path":  dir,
			}).Warn("Skipping unreadable directory")

			return cumulative, local, nil
		}

		return cumulative, local, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	// afero.ReadDir returns entries sorted by name, which fixes the
	// traversal order; the sums are commutative either way.
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		switch {
		case entry.IsDir():
			if _, _, err := w.walkDir(index, depth+1, path); err != nil {
				return cumulative, local, err
			}

			child, ok := index[path]
			if !ok {
				// The recursive call records its entry before
				// returning, so this should not occur.
				w.log.WithFields(logger.Fields{
					"path": path,
				}).Warn("Subdirectory produced no stats, omitting from totals")

				continue
			}

			cumulative.Add(child)

		case entry.Mode().IsRegular():
			if !w.filter.Matches(entry.Name()) {
				w.log.WithFields(logger.Fields{
					"path": path,
				}).Trace("Filename does not match suffix filter")

				continue
			}

			lines, nonEmpty, err := counter.Count(w.fs, path)
			if err != nil {
				if w.opts.SkipErrors {
					w.log.WithFields(logger.Fields{
						"error": err,
						"path":  path,
					}).Warn("Skipping unreadable file")

					continue
				}

				return cumulative, local, err
			}

			local.Add(stats.DirStats{Files: 1, Lines: lines, NonEmpty: nonEmpty})

			w.log.WithFields(logger.Fields{
				"path":          path,
				"lines":         lines,
				"nonEmptyLines": nonEmpty,
			}).Debug("Counted file")

		default:
			// Symlinks, devices and the like are not counted anywhere.
			w.log.WithFields(logger.Fields{
				"path": path,
				"mode": entry.Mode().String(),
			}).Trace("Ignoring non-regular entry")
		}
	}

	cumulative.Add(local)
	index[dir] = cumulative

	w.log.WithFields(logger.Fields{
		"path":       dir,
		"depth":      depth,
		"localFiles": local.Files,
		"totalFiles": cumulative.Files,
	}).Debug("Leaving directory")

	return cumulative, local, nil
}
