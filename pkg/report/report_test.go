package report

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/sfindeisen/source-tree-stats/pkg/logger"
	"github.com/sfindeisen/source-tree-stats/pkg/stats"
)

// mockLogger implements logger.Logger for testing
type mockLogger struct {
	logs []string
}

func (m *mockLogger) Info(msg string)                               { m.logs = append(m.logs, "INFO: "+msg) }
func (m *mockLogger) Debug(msg string)                              { m.logs = append(m.logs, "DEBUG: "+msg) }
func (m *mockLogger) Error(msg string)                              { m.logs = append(m.logs, "ERROR: "+msg) }
func (m *mockLogger) Warn(msg string)                               { m.logs = append(m.logs, "WARN: "+msg) }
func (m *mockLogger) Trace(msg string)                              { m.logs = append(m.logs, "TRACE: "+msg) }
func (m *mockLogger) WithFields(fields logger.Fields) logger.Logger { return m }

func testIndex() stats.Index {
	index := stats.NewIndex()
	index["/src"] = stats.DirStats{Files: 3, Lines: 12, NonEmpty: 9}
	index["/src/pkg"] = stats.DirStats{Files: 2, Lines: 7, NonEmpty: 6}
	index["/src/empty"] = stats.DirStats{}

	return index
}

func TestRenderTable(t *testing.T) {
	renderer := NewRenderer(Config{Format: FormatTable}, &mockLogger{})

	out, err := renderer.Render(testIndex(), "/src", 5*time.Millisecond)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)

	assert.Contains(t, lines[0], "DIRECTORY")
	assert.Contains(t, lines[0], "AVG/FILE")

	// Rows are sorted by path; the root shows as "." and prefixes
	// are stripped from the rest.
	assert.Regexp(t, `^\.\s+9\s+12\s+3\s+4$`, lines[1])
	assert.Regexp(t, `^empty\s+0\s+0\s+0\s+-$`, lines[2])
	assert.Regexp(t, `^pkg\s+6\s+7\s+2\s+3$`, lines[3])
}

func TestRenderTableWithSummary(t *testing.T) {
	renderer := NewRenderer(Config{Format: FormatTable, WithSummary: true}, &mockLogger{})

	out, err := renderer.Render(testIndex(), "/src", 5*time.Millisecond)
	require.NoError(t, err)

	assert.Contains(t, out, "Summary:")
	assert.Contains(t, out, "Directories: 3")
	assert.Contains(t, out, "Files:       3")
	assert.Contains(t, out, "12 (9 non-empty)")
	assert.Contains(t, out, "Elapsed:")
}

func TestRenderTableFullPathFallback(t *testing.T) {
	index := testIndex()
	// A key outside the root disables prefix stripping entirely.
	index["/elsewhere"] = stats.DirStats{Files: 1, Lines: 1, NonEmpty: 1}

	renderer := NewRenderer(Config{Format: FormatTable}, &mockLogger{})

	out, err := renderer.Render(index, "/src", 0)
	require.NoError(t, err)

	assert.Contains(t, out, "/src/pkg")
	assert.Contains(t, out, "/elsewhere")
	assert.NotContains(t, out, "\n.")
}

func TestRenderJSON(t *testing.T) {
	renderer := NewRenderer(Config{Format: FormatJSON}, &mockLogger{})

	out, err := renderer.Render(testIndex(), "/src", 5*time.Millisecond)
	require.NoError(t, err)

	var doc struct {
		Root        string `json:"root"`
		Directories []struct {
			Path          string `json:"path"`
			Files         int    `json:"files"`
			Lines         int    `json:"lines"`
			NonEmptyLines int    `json:"nonEmptyLines"`
			AvgLines      *int   `json:"avgLinesPerFile"`
		} `json:"directories"`
		Totals stats.DirStats `json:"totals"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))

	assert.Equal(t, "/src", doc.Root)
	assert.Equal(t, stats.DirStats{Files: 3, Lines: 12, NonEmpty: 9}, doc.Totals)
	require.Len(t, doc.Directories, 3)

	assert.Equal(t, ".", doc.Directories[0].Path)
	require.NotNil(t, doc.Directories[0].AvgLines)
	assert.Equal(t, 4, *doc.Directories[0].AvgLines)

	assert.Equal(t, "empty", doc.Directories[1].Path)
	assert.Nil(t, doc.Directories[1].AvgLines, "average is omitted for zero files")
}

func TestRenderYAML(t *testing.T) {
	renderer := NewRenderer(Config{Format: FormatYAML}, &mockLogger{})

	out, err := renderer.Render(testIndex(), "/src", 0)
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))

	assert.Equal(t, "/src", doc["root"])
	assert.Len(t, doc["directories"], 3)
}

func TestRenderErrors(t *testing.T) {
	log := &mockLogger{}

	_, err := NewRenderer(Config{Format: "csv"}, log).Render(testIndex(), "/src", 0)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")

	_, err = NewRenderer(Config{Format: FormatTable}, log).Render(nil, "/src", 0)
	assert.Error(t, err)
}
