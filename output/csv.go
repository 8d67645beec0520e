// Package output writes harvested rows to CSV files and renders console
// previews for dry runs.
package output

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/jordanbk/pubmed-scraper/harvest"
)

// csvHeader is the fixed column set of the output file.
var csvHeader = []string{"PMID", "Title", "Year", "Last Name", "First Name", "Initials", "Affiliation"}

// WriteCSV writes the header and one line per row to path, in row order.
// An existing file is overwritten.
func WriteCSV(path string, rows []harvest.Row) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row.Fields()); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to write rows: %w", err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}
