package availability

import (
	"fmt"

	"github.com/felixgeelhaar/pawsit/adapter/cli"
	"github.com/felixgeelhaar/pawsit/internal/availability/application/queries"
	"github.com/felixgeelhaar/pawsit/internal/availability/domain"
	"github.com/spf13/cobra"
)

var (
	checkSitter string
	checkStart  string
	checkEnd    string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check whether a sitter can take a date range",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.CheckRangeHandler == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "Availability requires database connection.")
			return nil
		}

		sitterID, err := parseSitterID(checkSitter)
		if err != nil {
			return err
		}
		if checkStart == "" || checkEnd == "" {
			return fmt.Errorf("--start and --end are required")
		}
		start, err := domain.ParseDate(checkStart)
		if err != nil {
			return fmt.Errorf("invalid --start: %w", err)
		}
		end, err := domain.ParseDate(checkEnd)
		if err != nil {
			return fmt.Errorf("invalid --end: %w", err)
		}

		requested := domain.DateRange{Start: start, End: end}
		if err := domain.CheckSpan(requested); err != nil {
			return err
		}

		result := app.CheckRangeHandler.Handle(cmd.Context(), queries.CheckRangeQuery{
			SitterID: sitterID,
			Range:    requested,
		})

		out := cmd.OutOrStdout()
		if result.Available {
			fmt.Fprintf(out, "Available: %s to %s\n", checkStart, checkEnd)
			return nil
		}
		if result.ConflictDate != "" {
			fmt.Fprintf(out, "Unavailable: %s (%s)\n", result.Reason, result.ConflictDate)
		} else {
			fmt.Fprintf(out, "Unavailable: %s\n", result.Reason)
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().StringVar(&checkSitter, "sitter", "", "sitter ID (required)")
	checkCmd.Flags().StringVar(&checkStart, "start", "", "first requested date (YYYY-MM-DD)")
	checkCmd.Flags().StringVar(&checkEnd, "end", "", "last requested date (YYYY-MM-DD)")
}
