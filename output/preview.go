package output

import (
	"fmt"
	"strings"

	"github.com/jordanbk/pubmed-scraper/harvest"
)

// FormatPreview renders the first n rows for console display.
func FormatPreview(rows []harvest.Row, n int) string {
	if len(rows) == 0 {
		return "No rows accumulated.\n"
	}
	if n > len(rows) {
		n = len(rows)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "\nPreview (%d of %d rows):\n\n", n, len(rows))

	for _, row := range rows[:n] {
		fmt.Fprintf(&sb, "• PMID %s (%s): %s\n", row.PMID, row.Year, truncate(row.Title, 60))
		fmt.Fprintf(&sb, "  %s, %s (%s)\n", row.LastName, row.ForeName, row.Initials)
		if row.Affiliation != harvest.Missing {
			fmt.Fprintf(&sb, "  %s\n", truncate(row.Affiliation, 70))
		}
	}

	return sb.String()
}

// truncate shortens s for single-line display.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
