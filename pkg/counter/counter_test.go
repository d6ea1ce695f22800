package counter

import (
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCount(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		wantLines    int
		wantNonEmpty int
	}{
		{
			name:         "empty file",
			content:      "",
			wantLines:    0,
			wantNonEmpty: 0,
		},
		{
			name:         "single newline",
			content:      "\n",
			wantLines:    1,
			wantNonEmpty: 0,
		},
		{
			name:         "terminated lines",
			content:      "alpha\nbeta\n",
			wantLines:    2,
			wantNonEmpty: 2,
		},
		{
			name:         "trailing line without terminator",
			content:      "alpha\nbeta",
			wantLines:    2,
			wantNonEmpty: 2,
		},
		{
			name:         "whitespace only lines are empty",
			content:      "alpha\n\n \t \nbeta\n",
			wantLines:    4,
			wantNonEmpty: 2,
		},
		{
			name:         "windows line endings",
			content:      "alpha\r\n\r\nbeta\r\n",
			wantLines:    3,
			wantNonEmpty: 2,
		},
		{
			name:         "line longer than the read buffer",
			content:      strings.Repeat("x", 1<<20+1) + "\nok\n",
			wantLines:    2,
			wantNonEmpty: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			err := afero.WriteFile(fs, "/data/file.txt", []byte(tt.content), 0644)
			require.NoError(t, err)

			lines, nonEmpty, err := Count(fs, "/data/file.txt")
			require.NoError(t, err)

			assert.Equal(t, tt.wantLines, lines)
			assert.Equal(t, tt.wantNonEmpty, nonEmpty)
			assert.LessOrEqual(t, nonEmpty, lines)
		})
	}
}

func TestCountMissingFile(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, _, err := Count(fs, "/nowhere/missing.txt")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "opening file")
}
