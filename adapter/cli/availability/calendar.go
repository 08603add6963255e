package availability

import (
	"fmt"

	"github.com/felixgeelhaar/pawsit/adapter/cli"
	"github.com/felixgeelhaar/pawsit/internal/availability/application/queries"
	"github.com/felixgeelhaar/pawsit/internal/availability/domain"
	"github.com/spf13/cobra"
)

var (
	calendarSitter string
	calendarFrom   string
	calendarTo     string
	calendarAll    bool
)

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Print a day-by-day calendar for a sitter",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.GetCalendarHandler == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "Availability requires database connection.")
			return nil
		}

		sitterID, err := parseSitterID(calendarSitter)
		if err != nil {
			return err
		}
		from, err := parseOptionalDate(calendarFrom, "from")
		if err != nil {
			return err
		}
		to, err := parseOptionalDate(calendarTo, "to")
		if err != nil {
			return err
		}

		days, err := app.GetCalendarHandler.Handle(cmd.Context(), queries.GetCalendarQuery{
			SitterID: sitterID,
			From:     from,
			To:       to,
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		shown := 0
		for _, day := range days {
			if !calendarAll && day.Occupancy == string(domain.OccupancyFree) {
				continue
			}
			fmt.Fprintf(out, "%s  %s\n", day.Date, day.Occupancy)
			shown++
		}
		if shown == 0 {
			fmt.Fprintln(out, "No occupied dates.")
		}
		return nil
	},
}

func init() {
	calendarCmd.Flags().StringVar(&calendarSitter, "sitter", "", "sitter ID (required)")
	calendarCmd.Flags().StringVar(&calendarFrom, "from", "", "window start (YYYY-MM-DD)")
	calendarCmd.Flags().StringVar(&calendarTo, "to", "", "window end (YYYY-MM-DD)")
	calendarCmd.Flags().BoolVar(&calendarAll, "all", false, "include free days")
}
