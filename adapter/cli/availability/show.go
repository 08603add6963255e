package availability

import (
	"fmt"
	"strings"

	"github.com/felixgeelhaar/pawsit/adapter/cli"
	"github.com/felixgeelhaar/pawsit/internal/availability/application/queries"
	"github.com/spf13/cobra"
)

var (
	showSitter string
	showFrom   string
	showTo     string
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "List a sitter's blocked, booked and pending dates",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.ComputeOccupancyHandler == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "Availability requires database connection.")
			return nil
		}

		sitterID, err := parseSitterID(showSitter)
		if err != nil {
			return err
		}
		from, err := parseOptionalDate(showFrom, "from")
		if err != nil {
			return err
		}
		to, err := parseOptionalDate(showTo, "to")
		if err != nil {
			return err
		}

		result, err := app.ComputeOccupancyHandler.Handle(cmd.Context(), queries.ComputeOccupancyQuery{
			SitterID: sitterID,
			From:     from,
			To:       to,
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Sitter %s, %s to %s\n", result.SitterID, result.From, result.To)
		fmt.Fprintf(out, "  Blocked: %s\n", listOrNone(result.Blocked))
		fmt.Fprintf(out, "  Booked:  %s\n", listOrNone(result.Booked))
		fmt.Fprintf(out, "  Pending: %s\n", listOrNone(result.Pending))
		return nil
	},
}

func listOrNone(dates []string) string {
	if len(dates) == 0 {
		return "none"
	}
	return strings.Join(dates, ", ")
}

func init() {
	showCmd.Flags().StringVar(&showSitter, "sitter", "", "sitter ID (required)")
	showCmd.Flags().StringVar(&showFrom, "from", "", "window start (YYYY-MM-DD)")
	showCmd.Flags().StringVar(&showTo, "to", "", "window end (YYYY-MM-DD)")
}
