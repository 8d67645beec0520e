package harvest

import "github.com/jordanbk/pubmed-scraper/eutils"

// Missing is the sentinel written for fields absent from the source record.
const Missing = "N/A"

// Row is one flattened (article, author) pair.
type Row struct {
	PMID        string
	Title       string
	Year        string
	LastName    string
	ForeName    string
	Initials    string
	Affiliation string
}

// Fields returns the row's columns in output order.
func (r Row) Fields() []string {
	return []string{r.PMID, r.Title, r.Year, r.LastName, r.ForeName, r.Initials, r.Affiliation}
}

// orNA substitutes the sentinel for an absent field.
func orNA(s string) string {
	if s == "" {
		return Missing
	}
	return s
}

// Flatten expands one article into one row per author, in author-list
// order. An article without authors contributes no rows.
func Flatten(article eutils.Article) []Row {
	rows := make([]Row, 0, len(article.Authors))
	for _, author := range article.Authors {
		rows = append(rows, Row{
			PMID:        orNA(article.PMID),
			Title:       orNA(article.Title),
			Year:        orNA(article.Year),
			LastName:    orNA(author.LastName),
			ForeName:    orNA(author.ForeName),
			Initials:    orNA(author.Initials),
			Affiliation: orNA(author.Affiliation),
		})
	}
	return rows
}
