package cli

import (
	"fmt"
	"sort"

	"github.com/felixgeelhaar/pawsit/pkg/observability"
	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check database and cache connectivity",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil || app.Health == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "Health check requires database connection.")
			return nil
		}

		health := app.Health.Check(cmd.Context())
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "status: %s\n", health.Status)

		names := make([]string, 0, len(health.Checks))
		for name := range health.Checks {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			result := health.Checks[name]
			line := fmt.Sprintf("  %-10s %s", name, result.Status)
			if result.Message != "" {
				line += " (" + result.Message + ")"
			}
			fmt.Fprintln(out, line)
		}

		if health.Status == observability.HealthStatusUnhealthy {
			return fmt.Errorf("unhealthy")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}
