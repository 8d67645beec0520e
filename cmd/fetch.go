package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jordanbk/pubmed-scraper/eutils"
	"github.com/jordanbk/pubmed-scraper/filter"
	"github.com/jordanbk/pubmed-scraper/harvest"
	"github.com/jordanbk/pubmed-scraper/output"
)

// previewRows is how many accumulated rows a dry run prints.
const previewRows = 5

var (
	keywords    []string
	logicMode   string
	customLogic string
	startDate   string
	endDate     string
	outputPath  string
	recordLimit int
	batchSize   int
	filterExpr  string
	dryRun      bool
)

// fetchCmd represents the fetch command
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Search PubMed and export author rows to a CSV file",
	Long: `Search PubMed for the given keywords and date range, retrieve every
matching article in batches, and write one CSV row per (article, author)
pair.

With --dry-run the search and retrieval still happen, but accumulation
stops after a handful of rows and a preview is printed instead of a file.`,
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().StringSliceVarP(&keywords, "keywords", "k", nil, "search keywords (repeatable or comma-separated)")
	fetchCmd.Flags().StringVar(&logicMode, "logic", "AND", "logic joining keywords: AND, OR or CUSTOM")
	fetchCmd.Flags().StringVar(&customLogic, "custom-logic", "", "boolean expression used with --logic CUSTOM")
	fetchCmd.Flags().StringVar(&startDate, "start-date", "", "earliest publication date (YYYY/MM/DD)")
	fetchCmd.Flags().StringVar(&endDate, "end-date", "", "latest publication date (YYYY/MM/DD)")
	fetchCmd.Flags().StringVarP(&outputPath, "output", "o", "pubmed_results.csv", "output CSV file")
	fetchCmd.Flags().IntVar(&recordLimit, "record-limit", 0, "maximum number of articles to retrieve (0 = all)")
	fetchCmd.Flags().IntVar(&batchSize, "batch-size", 0, "articles per fetch request (default from config)")
	fetchCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "row filter expression applied before writing")
	fetchCmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "preview a few rows without writing a file")

	fetchCmd.MarkFlagRequired("keywords")
	fetchCmd.MarkFlagRequired("start-date")
}

func runFetch(cmd *cobra.Command, args []string) error {
	term, err := buildSearchTerm()
	if err != nil {
		return err
	}
	if err := validateDates(); err != nil {
		return err
	}

	var rowFilter *filter.RowFilter
	if filterExpr != "" {
		rowFilter, err = filter.Compile(filterExpr)
		if err != nil {
			return fmt.Errorf("invalid filter expression: %w", err)
		}
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	fmt.Printf("Using search term: %s\n", term)

	ctx := context.Background()
	session, err := client.Search(ctx, term, startDate, endDate)
	if err != nil {
		return err
	}

	fmt.Printf("Found %d matching articles.\n", session.Total)
	if recordLimit > 0 {
		fmt.Printf("Retrieving up to %d records.\n", recordLimit)
	}

	size := batchSize
	if size <= 0 {
		size = cfg.Fetch.BatchSize
	}

	harvester := harvest.NewHarvester(client, logger, harvest.Options{
		RecordLimit: recordLimit,
		BatchSize:   size,
		DryRun:      dryRun,
		Delay:       time.Duration(cfg.Fetch.DelayMS) * time.Millisecond,
		OnProgress: func(processed, target int) {
			fmt.Printf("\rFetching articles: %d/%d", processed, target)
		},
	})

	rows, err := harvester.Run(ctx, session)
	fmt.Println()
	if err != nil {
		return err
	}

	if rowFilter != nil {
		before := len(rows)
		rows, err = filter.Apply(rowFilter, rows)
		if err != nil {
			return err
		}
		logger.Info().
			Int("before", before).
			Int("after", len(rows)).
			Str("filter", filterExpr).
			Msg("Applied row filter")
	}

	if dryRun {
		fmt.Println("Dry run enabled. No data will be saved.")
		fmt.Print(output.FormatPreview(rows, previewRows))
		return nil
	}

	if err := output.WriteCSV(outputPath, rows); err != nil {
		return err
	}

	fmt.Printf("Data saved to %s\n", outputPath)
	fmt.Printf("Total rows saved: %d\n", len(rows))
	return nil
}

// buildSearchTerm combines the keyword flags into one search term
func buildSearchTerm() (string, error) {
	logic, err := eutils.ParseLogic(logicMode)
	if err != nil {
		return "", err
	}
	return eutils.BuildTerm(keywords, logic, customLogic)
}

// validateDates checks the date bound flags
func validateDates() error {
	if err := eutils.ValidateDate(startDate); err != nil {
		return err
	}
	if endDate != "" {
		return eutils.ValidateDate(endDate)
	}
	return nil
}
