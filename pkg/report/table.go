package report

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/sfindeisen/source-tree-stats/pkg/stats"
)

// renderTable formats the index as an aligned text table, one row per
// visited directory in lexicographic path order.
func (r *renderer) renderTable(index stats.Index, root string, elapsed time.Duration) (string, error) {
	r.log.Debug("Formatting table output")

	names := r.displayNames(index, root)

	var builder strings.Builder
	tw := tabwriter.NewWriter(&builder, 0, 4, 2, ' ', 0)

	if _, err := fmt.Fprintln(tw, "DIRECTORY\tNON-EMPTY\tTOTAL\tFILES\tAVG/FILE"); err != nil {
		return "", err
	}

	for _, path := range index.Paths() {
		s := index[path]

		name := names[path]
		if r.config.WithColors {
			name = color.New(color.FgBlue, color.Bold).Sprint(name)
		}

		avg := "-"
		if value, ok := s.AvgLinesPerFile(); ok {
			avg = fmt.Sprintf("%d", value)
		}

		if _, err := fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%s\n",
			name, s.NonEmpty, s.Lines, s.Files, avg); err != nil {
			return "", err
		}
	}

	if err := tw.Flush(); err != nil {
		return "", err
	}

	if r.config.WithSummary {
		r.log.Debug("Adding summary to output")

		total := index[root]
		builder.WriteString("\nSummary:\n")
		builder.WriteString(fmt.Sprintf("  Directories: %s\n", humanize.Comma(int64(len(index)))))
		builder.WriteString(fmt.Sprintf("  Files:       %s\n", humanize.Comma(int64(total.Files))))
		builder.WriteString(fmt.Sprintf("  Lines:       %s (%s non-empty)\n",
			humanize.Comma(int64(total.Lines)), humanize.Comma(int64(total.NonEmpty))))
		builder.WriteString(fmt.Sprintf("  Elapsed:     %s\n", elapsed.Round(time.Millisecond)))
	}

	return builder.String(), nil
}
