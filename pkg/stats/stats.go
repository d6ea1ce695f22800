// Package stats defines the aggregate counters produced by a tree walk
// and the index that maps every visited directory to its totals.
package stats

import "sort"

// DirStats holds the line counting aggregates for one directory.
// NonEmpty never exceeds Lines.
type DirStats struct {
	// Files is the number of counted files
	Files int `json:"files" yaml:"files"`

	// Lines is the total number of lines across counted files
	Lines int `json:"lines" yaml:"lines"`

	// NonEmpty is the number of lines containing at least one
	// non-whitespace character
	NonEmpty int `json:"nonEmptyLines" yaml:"nonEmptyLines"`
}

// Add merges other into s componentwise.
func (s *DirStats) Add(other DirStats) {
	s.Files += other.Files
	s.Lines += other.Lines
	s.NonEmpty += other.NonEmpty
}

// AvgLinesPerFile returns the integer average of lines per counted file.
// The second return value is false when no files were counted and the
// average is undefined.
func (s DirStats) AvgLinesPerFile() (int, bool) {
	if s.Files == 0 {
		return 0, false
	}

	return s.Lines / s.Files, true
}

// Index maps every visited directory path to its cumulative stats.
// It is populated exactly once per directory during a single walk and
// is never mutated afterwards.
type Index map[string]DirStats

// NewIndex creates an empty index.
func NewIndex() Index {
	return make(Index)
}

// Paths returns all directory paths in the index in lexicographic order.
func (idx Index) Paths() []string {
	paths := make([]string, 0, len(idx))
	for path := range idx {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	return paths
}
