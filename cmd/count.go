package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// countCmd represents the count command
var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Report how many articles match a search without fetching them",
	Long: `Run only the search phase and print the total number of matching
articles. Useful to size a retrieval, and to verify the API key and
search term, before committing to a full fetch.`,
	RunE: runCount,
}

func init() {
	rootCmd.AddCommand(countCmd)

	countCmd.Flags().StringSliceVarP(&keywords, "keywords", "k", nil, "search keywords (repeatable or comma-separated)")
	countCmd.Flags().StringVar(&logicMode, "logic", "AND", "logic joining keywords: AND, OR or CUSTOM")
	countCmd.Flags().StringVar(&customLogic, "custom-logic", "", "boolean expression used with --logic CUSTOM")
	countCmd.Flags().StringVar(&startDate, "start-date", "", "earliest publication date (YYYY/MM/DD)")
	countCmd.Flags().StringVar(&endDate, "end-date", "", "latest publication date (YYYY/MM/DD)")

	countCmd.MarkFlagRequired("keywords")
	countCmd.MarkFlagRequired("start-date")
}

func runCount(cmd *cobra.Command, args []string) error {
	term, err := buildSearchTerm()
	if err != nil {
		return err
	}
	if err := validateDates(); err != nil {
		return err
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	session, err := client.Search(context.Background(), term, startDate, endDate)
	if err != nil {
		return err
	}

	fmt.Printf("Found %d matching articles for %q.\n", session.Total, term)
	return nil
}
