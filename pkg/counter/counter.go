/*
Package counter implements the per-file line counting leaf operation.

A line is empty iff it consists only of whitespace; every other line is
non-empty. A trailing line without a terminator still counts.
*/
package counter

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
)

// readBufferSize is the size of the read buffer
const readBufferSize = 64 * 1024

// Count reads the file at path line by line and returns the total number
// of lines and the number of non-empty lines. Lines may be arbitrarily
// long; a single oversized line still counts as one line. Failing to
// open or read the file returns an error; the caller decides whether
// that is fatal.
func Count(fsys afero.Fs, path string) (lines, nonEmpty int, err error) {
	file, err := fsys.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer file.Close()

	reader := bufio.NewReaderSize(file, readBufferSize)

	for {
		line, err := reader.ReadString('\n')

		if line != "" {
			lines++

			if strings.TrimSpace(line) != "" {
				nonEmpty++
			}
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return lines, nonEmpty, fmt.Errorf("reading file %s: %w", path, err)
		}
	}

	return lines, nonEmpty, nil
}
