package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sfindeisen/source-tree-stats/pkg/logger"
)

// mockLogger implements logger.Logger for testing
type mockLogger struct {
	warnings []string
}

func (m *mockLogger) Info(msg string)                               {}
func (m *mockLogger) Debug(msg string)                              {}
func (m *mockLogger) Error(msg string)                              {}
func (m *mockLogger) Warn(msg string)                               { m.warnings = append(m.warnings, msg) }
func (m *mockLogger) Trace(msg string)                              {}
func (m *mockLogger) WithFields(fields logger.Fields) logger.Logger { return m }

func TestSuffixSet(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		wantSuffixes []string
		wantWarnings int
		matches      map[string]bool
	}{
		{
			name: "empty input matches everything",
			raw:  "",
			matches: map[string]bool{
				"main.go":  true,
				"README":   true,
				"file.bin": true,
			},
		},
		{
			name: "blank input matches everything",
			raw:  "  ",
			matches: map[string]bool{
				"anything": true,
			},
		},
		{
			name:         "single suffix",
			raw:          ".txt",
			wantSuffixes: []string{".txt"},
			matches: map[string]bool{
				"a.txt": true,
				"a.log": false,
				".txt":  true,
			},
		},
		{
			name:         "multiple suffixes",
			raw:          ".java,.xml",
			wantSuffixes: []string{".java", ".xml"},
			matches: map[string]bool{
				"Main.java":  true,
				"pom.xml":    true,
				"notes.md":   false,
				"Main.javax": false,
			},
		},
		{
			name:         "empty tokens are dropped",
			raw:          ".go,,.md,",
			wantSuffixes: []string{".go", ".md"},
			matches: map[string]bool{
				"a.go": true,
				"b.md": true,
				"c.rs": false,
			},
		},
		{
			name:         "odd characters warn but match literally",
			raw:          ".go,*.java",
			wantSuffixes: []string{".go", "*.java"},
			wantWarnings: 1,
			matches: map[string]bool{
				"a.go":      true,
				"Main.java": false,
				"x*.java":   true,
			},
		},
		{
			name:         "suffix without dot",
			raw:          "Makefile",
			wantSuffixes: []string{"Makefile"},
			matches: map[string]bool{
				"Makefile":     true,
				"sub.Makefile": true,
				"makefile":     false,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := &mockLogger{}
			set := New(tt.raw, log)

			assert.Equal(t, tt.wantSuffixes, set.Suffixes())
			assert.Equal(t, len(tt.wantSuffixes) == 0, set.Empty())
			assert.Len(t, log.warnings, tt.wantWarnings)

			for name, want := range tt.matches {
				assert.Equal(t, want, set.Matches(name), "Matches(%q)", name)
			}
		})
	}
}
