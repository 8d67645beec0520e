package eutils

// SearchSession references a search result set cached on the NCBI history
// server. It is created once by Search and read-only afterwards.
type SearchSession struct {
	// Total is the number of articles matching the search.
	Total int
	// WebEnv and QueryKey are the opaque tokens fetch requests present to
	// address slices of the cached result set.
	WebEnv   string
	QueryKey string
}

// Article is one PubMed record as returned by efetch. Fields the record
// does not carry are left empty.
type Article struct {
	PMID    string
	Title   string
	Year    string
	Authors []Author
}

// Author is one entry of an article's author list.
type Author struct {
	LastName    string
	ForeName    string
	Initials    string
	Affiliation string
}

// searchResult maps the esearch XML response. Count is a pointer so an
// absent element can be told apart from a zero-hit search.
type searchResult struct {
	Count    *int   `xml:"Count"`
	WebEnv   string `xml:"WebEnv"`
	QueryKey string `xml:"QueryKey"`
}

// articleSet maps the efetch PubmedArticleSet XML response. Only the
// elements this tool extracts are bound; everything else is skipped by the
// decoder. Optional elements decode to their zero value.
type articleSet struct {
	Articles []articleRecord `xml:"PubmedArticle"`
}

type articleRecord struct {
	Citation struct {
		PMID    string `xml:"PMID"`
		Article struct {
			Title   string `xml:"ArticleTitle"`
			Journal struct {
				Issue struct {
					PubDate struct {
						Year string `xml:"Year"`
					} `xml:"PubDate"`
				} `xml:"JournalIssue"`
			} `xml:"Journal"`
			Authors struct {
				Author []authorRecord `xml:"Author"`
			} `xml:"AuthorList"`
		} `xml:"Article"`
	} `xml:"MedlineCitation"`
}

type authorRecord struct {
	LastName    string `xml:"LastName"`
	ForeName    string `xml:"ForeName"`
	Initials    string `xml:"Initials"`
	Affiliation string `xml:"AffiliationInfo>Affiliation"`
}
