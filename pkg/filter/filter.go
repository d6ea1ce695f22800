/*
Package filter implements the suffix filter deciding which files take part
in line counting.

The filter is built from a comma-separated list of suffixes, for example
".java,.xml". An empty list matches every filename. Matching is a plain
anchored suffix comparison, not a glob or regex.

Basic usage:

	set := filter.New(".go,.md", log)
	if set.Matches("main.go") {
	    // count it
	}
*/
package filter

import (
	"regexp"
	"strings"

	"github.com/sfindeisen/source-tree-stats/pkg/logger"
)

// wellFormedToken matches suffix tokens made of the expected character set.
// Anything else is still matched literally, but gets flagged as a warning.
var wellFormedToken = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// SuffixSet holds an ordered list of filename suffix matchers.
type SuffixSet struct {
	suffixes []string
}

// New builds a SuffixSet from a raw comma-separated string. Empty tokens
// are dropped; an empty or blank input yields a set that matches every
// filename. Tokens containing unexpected characters are logged as a
// warning and kept as-is.
func New(raw string, log logger.Logger) *SuffixSet {
	set := &SuffixSet{}

	if strings.TrimSpace(raw) == "" {
		return set
	}

	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		if !wellFormedToken.MatchString(token) {
			log.WithFields(logger.Fields{
				"suffix": token,
			}).Warn("Suffix pattern contains unexpected characters, matching it literally")
		}

		set.suffixes = append(set.suffixes, token)
	}

	return set
}

// Matches reports whether name participates in counting. An empty set
// matches everything; otherwise name must end with at least one of the
// configured suffixes.
func (s *SuffixSet) Matches(name string) bool {
	if len(s.suffixes) == 0 {
		return true
	}

	for _, suffix := range s.suffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}

	return false
}

// Empty reports whether the set has no configured suffixes.
func (s *SuffixSet) Empty() bool {
	return len(s.suffixes) == 0
}

// Suffixes returns the configured suffixes in their original order.
func (s *SuffixSet) Suffixes() []string {
	return s.suffixes
}
